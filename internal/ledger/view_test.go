package ledger

import (
	"reflect"
	"testing"

	"rentledger/internal/core"
)

func TestUnitsDistinctSorted(t *testing.T) {
	records := []core.Record{
		{Unit: "2B"}, {Unit: "1A"}, {Unit: "2B"}, {Unit: ""}, {Unit: "10C"},
	}
	got := Units(records)
	want := []string{"10C", "1A", "2B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("units: got %v want %v", got, want)
	}
}

func TestFilterByUnitExactMatch(t *testing.T) {
	records := []core.Record{
		{Unit: "1A", TenantName: "x"},
		{Unit: "1a", TenantName: "y"}, // case-sensitive, stays out
		{Unit: "1A", TenantName: "z"},
	}
	got := FilterByUnit(records, "1A")
	if len(got) != 2 || got[0].TenantName != "x" || got[1].TenantName != "z" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if all := FilterByUnit(records, AllUnits); len(all) != 3 {
		t.Fatalf("no-filter sentinel should pass everything: %d", len(all))
	}
}

func TestSortByTimestampDesc(t *testing.T) {
	records := []core.Record{
		{Timestamp: "2024-03-01 08:00:00", Unit: "old"},
		{Timestamp: "2024-03-15 09:30:00", Unit: "new"},
		{Timestamp: "2024-03-10 12:00:00", Unit: "mid"},
	}
	got := SortByTimestampDesc(records)
	want := []string{"new", "mid", "old"}
	for i, u := range want {
		if got[i].Unit != u {
			t.Fatalf("position %d: got %q want %q", i, got[i].Unit, u)
		}
	}
	// Input untouched.
	if records[0].Unit != "old" {
		t.Fatalf("sort must not mutate its input")
	}
}

func TestSortUnparsableTimestampsGoLast(t *testing.T) {
	records := []core.Record{
		{Timestamp: "yesterday", Unit: "junk1"},
		{Timestamp: "2024-03-15 09:30:00", Unit: "ok"},
		{Timestamp: "", Unit: "junk2"},
	}
	got := SortByTimestampDesc(records)
	if got[0].Unit != "ok" {
		t.Fatalf("parsable timestamp should sort first, got %q", got[0].Unit)
	}
	// Unparsable ones compare lexically descending: "yesterday" > "".
	if got[1].Unit != "junk1" || got[2].Unit != "junk2" {
		t.Fatalf("unexpected tail order: %q, %q", got[1].Unit, got[2].Unit)
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	records := []core.Record{
		{Timestamp: "same", Unit: "first"},
		{Timestamp: "same", Unit: "second"},
	}
	got := SortByTimestampDesc(records)
	if got[0].Unit != "first" || got[1].Unit != "second" {
		t.Fatalf("equal keys must keep source order: %+v", got)
	}
}
