// Package memory is an in-process ledger store used as the default
// backend and as a test double. It holds the same raw grid shape the
// Sheets adapter returns.
package memory

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	mu   sync.Mutex
	rows [][]string
}

// DefaultHeader is the persisted ledger schema used when no seed data is
// provided.
var DefaultHeader = []string{"timestamp", "unit_number", "tenant_name", "amount_paid", "payment_date", "payment_mode", "proof_file_url", "notes"}

// New creates a store pre-populated with the given grid. A nil grid
// starts with just the default header row.
func New(rows [][]string) *Store {
	if rows == nil {
		rows = [][]string{append([]string(nil), DefaultHeader...)}
	}
	return &Store{rows: rows}
}

// NewFromFile seeds the store from a CSV file (header row first). A
// missing or unreadable file falls back to the default header.
func NewFromFile(base string) *Store {
	f, err := os.Open(filepath.Join(base, "seed_ledger.csv"))
	if err != nil {
		return New(nil)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return New(nil)
	}
	return New(rows)
}

// ListRows returns a copy of the full grid, header row first.
func (s *Store) ListRows(_ context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.rows))
	for i, row := range s.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// AppendRow stores the row and returns a synthetic row reference.
func (s *Store) AppendRow(_ context.Context, values []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, append([]string(nil), values...))
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}
