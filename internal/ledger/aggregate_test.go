package ledger

import (
	"testing"

	"rentledger/internal/core"
)

func rec(unit string, cents int64, date core.Date) core.Record {
	return core.Record{Unit: unit, Amount: core.Money{Cents: cents}, PaymentDate: date}
}

func TestAggregateMonthWindow(t *testing.T) {
	today := core.NewDate(2024, 3, 20)
	records := []core.Record{
		rec("1A", 150000, core.NewDate(2024, 3, 15)), // inside window
		rec("1B", 50000, core.NewDate(2024, 3, 1)),   // month start, inclusive
		rec("1C", 25000, core.NewDate(2024, 3, 20)),  // today, inclusive
		rec("1D", 10000, core.NewDate(2024, 2, 29)),  // previous month
		rec("1E", 7000, core.NewDate(2024, 3, 21)),   // after today
	}
	snap := Aggregate(today, records)
	if snap.TotalAllTime.Cents != 242000 {
		t.Fatalf("all-time: %d", snap.TotalAllTime.Cents)
	}
	if snap.TotalCurrentMonth.Cents != 225000 {
		t.Fatalf("current month: %d", snap.TotalCurrentMonth.Cents)
	}
}

func TestAggregateAbsentDateAsymmetry(t *testing.T) {
	// A malformed date must not hide money collected, but it cannot be
	// placed in a month bucket.
	today := core.NewDate(2024, 3, 20)
	records := []core.Record{
		rec("1A", 150000, core.NewDate(2024, 3, 15)),
		rec("1B", 99900, core.Date{}),
	}
	snap := Aggregate(today, records)
	if snap.TotalAllTime.Cents != 249900 {
		t.Fatalf("all-time should include absent-date records: %d", snap.TotalAllTime.Cents)
	}
	if snap.TotalCurrentMonth.Cents != 150000 {
		t.Fatalf("month total should exclude absent-date records: %d", snap.TotalCurrentMonth.Cents)
	}
}

func TestAggregateMonthNeverExceedsAllTime(t *testing.T) {
	today := core.NewDate(2024, 3, 20)
	records := []core.Record{
		rec("1A", 100, core.NewDate(2024, 3, 2)),
		rec("1B", 200, core.NewDate(2024, 1, 2)),
		rec("1C", 300, core.Date{}),
		rec("1D", 400, core.NewDate(2024, 3, 20)),
	}
	snap := Aggregate(today, records)
	if snap.TotalCurrentMonth.Cents > snap.TotalAllTime.Cents {
		t.Fatalf("month total %d exceeds all-time %d", snap.TotalCurrentMonth.Cents, snap.TotalAllTime.Cents)
	}
}

func TestFilterThenAggregateCommutes(t *testing.T) {
	today := core.NewDate(2024, 3, 20)
	records := []core.Record{
		rec("1A", 100, core.NewDate(2024, 3, 2)),
		rec("1B", 200, core.NewDate(2024, 3, 3)),
		rec("1A", 400, core.NewDate(2024, 3, 4)),
	}
	filtered := FilterByUnit(records, "1A")
	snap := Aggregate(today, filtered)

	var manual int64
	for _, r := range records {
		if r.Unit == "1A" {
			manual += r.Amount.Cents
		}
	}
	if snap.TotalAllTime.Cents != manual {
		t.Fatalf("filter/aggregate should commute: %d vs %d", snap.TotalAllTime.Cents, manual)
	}
}
