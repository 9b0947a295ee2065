package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreAppendAndList(t *testing.T) {
	s := New(nil)
	ref, err := s.AppendRow(context.Background(), []string{"2024-03-15 10:00:00", "1A", "x", "1500.00", "2024-03-15", "Cash", "", ""})
	if err != nil || ref != "mem:2" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}
	rows, err := s.ListRows(context.Background())
	if err != nil || len(rows) != 2 {
		t.Fatalf("unexpected list: rows=%d err=%v", len(rows), err)
	}
	if rows[0][0] != "timestamp" {
		t.Fatalf("header row missing: %v", rows[0])
	}

	// The returned grid is a copy; mutating it must not leak back.
	rows[1][1] = "tampered"
	again, _ := s.ListRows(context.Background())
	if again[1][1] != "1A" {
		t.Fatalf("store leaked internal state")
	}
}

func TestNewFromFileSeedsAndFallsBack(t *testing.T) {
	dir := t.TempDir()

	// No file -> default header only.
	s := NewFromFile(dir)
	rows, _ := s.ListRows(context.Background())
	if len(rows) != 1 || rows[0][1] != "unit_number" {
		t.Fatalf("expected default header, got %v", rows)
	}

	seed := "timestamp,unit_number,tenant_name,amount_paid,payment_date,payment_mode,proof_file_url,notes\n" +
		"2024-03-15 10:00:00,1A,Juan,1500.00,2024-03-15,Cash,,\n"
	if err := os.WriteFile(filepath.Join(dir, "seed_ledger.csv"), []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	s = NewFromFile(dir)
	rows, _ = s.ListRows(context.Background())
	if len(rows) != 2 || rows[1][1] != "1A" {
		t.Fatalf("expected seeded rows, got %v", rows)
	}
}
