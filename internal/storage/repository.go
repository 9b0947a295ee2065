// Package storage is the local SQLite ledger backend. It implements the
// same row ports as the Google Sheets adapter, so the engine cannot tell
// the two apart; a sync worker later replays locally captured rows to
// the sheet.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	ports "rentledger/internal/sheets"
)

// ledgerColumns is the persisted column order, identical to the sheet.
var ledgerColumns = []string{"timestamp", "unit_number", "tenant_name", "amount_paid", "payment_date", "payment_mode", "proof_file_url", "notes"}

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ports.RowLister   = (*SQLiteRepository)(nil)
	_ ports.RowAppender = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListRows implements sheets.RowLister: header row first, then every
// payment in insertion order.
func (r *SQLiteRepository) ListRows(ctx context.Context) ([][]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT timestamp, unit_number, tenant_name, amount_paid,
		       payment_date, payment_mode, proof_file_url, notes
		FROM payments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	out := [][]string{append([]string(nil), ledgerColumns...)}
	for rows.Next() {
		row := make([]string, len(ledgerColumns))
		if err := rows.Scan(&row[0], &row[1], &row[2], &row[3], &row[4], &row[5], &row[6], &row[7]); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

// AppendRow implements sheets.RowAppender. The row arrives in the
// persisted column order; rows are inserted unsynced so the worker can
// replay them to the sheet later.
func (r *SQLiteRepository) AppendRow(ctx context.Context, values []string) (string, error) {
	if len(values) != len(ledgerColumns) {
		return "", fmt.Errorf("expected %d columns, got %d", len(ledgerColumns), len(values))
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (timestamp, unit_number, tenant_name, amount_paid,
		                      payment_date, payment_mode, proof_file_url, notes, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		values[0], values[1], values[2], values[3], values[4], values[5], values[6], values[7])
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("payment id: %w", err)
	}
	slog.InfoContext(ctx, "Payment saved to SQLite", "id", id, "unit", values[1])
	return strconv.FormatInt(id, 10), nil
}

// PendingPayment is an unsynced local row awaiting replay to the sheet.
type PendingPayment struct {
	ID     int64
	Values []string
}

// GetPayment fetches one payment row by ID.
func (r *SQLiteRepository) GetPayment(ctx context.Context, id int64) (PendingPayment, error) {
	p := PendingPayment{ID: id, Values: make([]string, len(ledgerColumns))}
	v := p.Values
	err := r.db.QueryRowContext(ctx, `
		SELECT timestamp, unit_number, tenant_name, amount_paid,
		       payment_date, payment_mode, proof_file_url, notes
		FROM payments WHERE id = ?`, id).
		Scan(&v[0], &v[1], &v[2], &v[3], &v[4], &v[5], &v[6], &v[7])
	if err != nil {
		return PendingPayment{}, fmt.Errorf("get payment %d: %w", id, err)
	}
	return p, nil
}

// ListPending returns up to limit unsynced payments, oldest first.
func (r *SQLiteRepository) ListPending(ctx context.Context, limit int) ([]PendingPayment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, unit_number, tenant_name, amount_paid,
		       payment_date, payment_mode, proof_file_url, notes
		FROM payments WHERE synced = 0 ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending payments: %w", err)
	}
	defer rows.Close()

	var out []PendingPayment
	for rows.Next() {
		p := PendingPayment{Values: make([]string, len(ledgerColumns))}
		v := p.Values
		if err := rows.Scan(&p.ID, &v[0], &v[1], &v[2], &v[3], &v[4], &v[5], &v[6], &v[7]); err != nil {
			return nil, fmt.Errorf("scan pending payment: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending payments: %w", err)
	}
	return out, nil
}

// MarkSynced records that a payment has been replayed to the sheet.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE payments SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark payment %d synced: %w", id, err)
	}
	return nil
}
