package ledger

import (
	"sort"
	"time"

	"rentledger/internal/core"
)

// AllUnits is the filter sentinel meaning "no unit filter".
const AllUnits = ""

// Units returns the sorted distinct non-empty unit values across all
// records, for the filter selector.
func Units(records []core.Record) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		if r.Unit == "" {
			continue
		}
		if _, ok := seen[r.Unit]; ok {
			continue
		}
		seen[r.Unit] = struct{}{}
		out = append(out, r.Unit)
	}
	sort.Strings(out)
	return out
}

// FilterByUnit returns the records whose unit matches the selection
// exactly. AllUnits passes everything through.
func FilterByUnit(records []core.Record, unit string) []core.Record {
	if unit == AllUnits {
		return records
	}
	var out []core.Record
	for _, r := range records {
		if r.Unit == unit {
			out = append(out, r)
		}
	}
	return out
}

// SortByTimestampDesc orders records most-recent-first by their timestamp
// string, best-effort. Timestamps in the canonical layout compare as
// times; unparsable ones sort after all parsable ones, descending
// lexically among themselves. The sort is stable, so source order breaks
// remaining ties deterministically.
func SortByTimestampDesc(records []core.Record) []core.Record {
	out := make([]core.Record, len(records))
	copy(out, records)
	parsed := make([]time.Time, len(out))
	ok := make([]bool, len(out))
	for i, r := range out {
		t, err := time.ParseInLocation(core.TimestampFormat, r.Timestamp, core.AppZone)
		parsed[i], ok[i] = t, err == nil
	}
	// Sorting the records directly would desynchronize the parallel
	// parsed/ok slices, so sort indices and rebuild.
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		switch {
		case ok[i] && ok[j]:
			return parsed[i].After(parsed[j])
		case ok[i] != ok[j]:
			return ok[i]
		default:
			return out[i].Timestamp > out[j].Timestamp
		}
	})
	sorted := make([]core.Record, len(out))
	for n, i := range idx {
		sorted[n] = out[i]
	}
	return sorted
}
