package ledger

import "rentledger/internal/core"

// Snapshot holds the two dashboard totals, recomputed in full on every
// load cycle.
type Snapshot struct {
	TotalAllTime      core.Money
	TotalCurrentMonth core.Money
}

// Aggregate computes the totals for a reference "today" in the fixed app
// timezone. Records with an absent payment date count toward the all-time
// total but can never land in a month bucket: a malformed date must not
// hide money collected.
func Aggregate(today core.Date, records []core.Record) Snapshot {
	monthStart := today.MonthStart()
	var snap Snapshot
	for _, r := range records {
		snap.TotalAllTime = snap.TotalAllTime.Add(r.Amount)
		if r.PaymentDate.Absent() {
			continue
		}
		d := r.PaymentDate
		if !d.Before(monthStart.Time) && !d.After(today.Time) {
			snap.TotalCurrentMonth = snap.TotalCurrentMonth.Add(r.Amount)
		}
	}
	return snap
}
