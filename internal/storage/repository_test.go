package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func testRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleRow(unit string) []string {
	return []string{"2024-03-15 10:00:00", unit, "Juan Dela Cruz", "1500.00", "2024-03-15", "GCash", "", "ok"}
}

func TestAppendAndListRows(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// Fresh ledger: header row only.
	rows, err := repo.ListRows(ctx)
	if err != nil || len(rows) != 1 {
		t.Fatalf("fresh ledger: rows=%d err=%v", len(rows), err)
	}
	if rows[0][1] != "unit_number" {
		t.Fatalf("header: %v", rows[0])
	}

	ref, err := repo.AppendRow(ctx, sampleRow("1A"))
	if err != nil || ref != "1" {
		t.Fatalf("append: ref=%q err=%v", ref, err)
	}
	if _, err := repo.AppendRow(ctx, sampleRow("2B")); err != nil {
		t.Fatalf("append: %v", err)
	}

	rows, err = repo.ListRows(ctx)
	if err != nil || len(rows) != 3 {
		t.Fatalf("list: rows=%d err=%v", len(rows), err)
	}
	if rows[1][1] != "1A" || rows[2][1] != "2B" {
		t.Fatalf("insertion order not preserved: %v", rows)
	}
}

func TestAppendRowRejectsWrongArity(t *testing.T) {
	repo := testRepo(t)
	if _, err := repo.AppendRow(context.Background(), []string{"too", "short"}); err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestPendingLifecycle(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, unit := range []string{"1A", "2B", "3C"} {
		if _, err := repo.AppendRow(ctx, sampleRow(unit)); err != nil {
			t.Fatalf("append %s: %v", unit, err)
		}
	}

	pending, err := repo.ListPending(ctx, 2)
	if err != nil || len(pending) != 2 {
		t.Fatalf("pending: n=%d err=%v", len(pending), err)
	}
	if pending[0].Values[1] != "1A" || pending[1].Values[1] != "2B" {
		t.Fatalf("pending should be oldest first: %v", pending)
	}

	if err := repo.MarkSynced(ctx, pending[0].ID); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	pending, err = repo.ListPending(ctx, 10)
	if err != nil || len(pending) != 2 {
		t.Fatalf("after sync: n=%d err=%v", len(pending), err)
	}
	if pending[0].Values[1] != "2B" {
		t.Fatalf("synced row still pending: %v", pending)
	}

	got, err := repo.GetPayment(ctx, pending[0].ID)
	if err != nil || got.Values[1] != "2B" {
		t.Fatalf("get payment: %+v err=%v", got, err)
	}
}
