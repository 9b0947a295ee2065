package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1500", 150000, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyDecimal(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{150000, "1500.00"},
		{1, "0.01"},
		{0, "0.00"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Decimal(); got != tc.want {
			t.Fatalf("cents=%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyDisplay(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{150000, "₱ 1,500.00"},
		{5, "₱ 0.05"},
		{123456700, "₱ 1,234,567.00"},
		{-250, "₱ -2.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Display(); got != tc.want {
			t.Fatalf("cents=%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}
