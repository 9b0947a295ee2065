package ledger

import "testing"

func TestCoerceAmountTotal(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"₱1,500.00", 150000},
		{"1500", 150000},
		{"  2.50 ", 250},
		{"₱ 12,345.67", 1234567},
		{"", 0},
		{"abc", 0},
		{"₱", 0},
		{"1,2,3", 12300},
		// Sign is preserved by coercion; the loader clamps.
		{"-50", -5000},
	}
	for _, tc := range cases {
		if got := CoerceAmount(tc.in); got.Cents != tc.cents {
			t.Fatalf("%q expected %d cents, got %d", tc.in, tc.cents, got.Cents)
		}
	}
}

func TestCoerceDateFixedFormat(t *testing.T) {
	if d := CoerceDate("2024-03-15"); d.Absent() || d.String() != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %v", d)
	}
	if d := CoerceDate(" 2024-03-15 "); d.Absent() {
		t.Fatalf("surrounding whitespace should be tolerated")
	}
	for _, bad := range []string{"", "not-a-date", "15/03/2024", "2024-3-15", "2024-13-40"} {
		if d := CoerceDate(bad); !d.Absent() {
			t.Fatalf("%q should coerce to the absent sentinel, got %v", bad, d)
		}
	}
}
