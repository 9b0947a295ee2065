package ledger

import (
	"fmt"
	"strings"

	"context"

	"rentledger/internal/core"
	"rentledger/internal/sheets"
)

// SchemaError means a required canonical column could not be resolved
// against the sheet's actual header row. It is fatal to the current load:
// the sheet's structure changed and no partial dashboard is rendered.
type SchemaError struct {
	Missing []Field  // canonical fields that failed to resolve
	Headers []string // actual headers found in the sheet
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("ledger schema mismatch: missing required columns %s; found headers %v",
		strings.Join(names, ", "), e.Headers)
}

// Table is the result of one load cycle: the normalized records in source
// order plus which display columns the sheet actually carries.
type Table struct {
	Records []core.Record
	Present map[Field]bool
}

// Loader pulls raw rows from the ledger store and normalizes them.
type Loader struct {
	lister sheets.RowLister
}

func NewLoader(lister sheets.RowLister) *Loader {
	return &Loader{lister: lister}
}

// Load fetches the full sheet and produces the normalized table. A sheet
// with only a header row (or nothing at all) is the valid "no submissions
// yet" state, not an error. A resolvable header row with rows behind it is
// normalized row by row; malformed amount and date cells degrade to safe
// defaults instead of aborting the load.
func (l *Loader) Load(ctx context.Context) (Table, error) {
	rows, err := l.lister.ListRows(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("list ledger rows: %w", err)
	}
	if len(rows) < 2 {
		return Table{Present: map[Field]bool{}}, nil
	}

	headers := rows[0]
	resolved, present := ResolveColumns(headers)

	var missing []Field
	for _, f := range requiredFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return Table{}, &SchemaError{Missing: missing, Headers: headers}
	}

	// Column positions by actual header, first occurrence wins.
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, taken := pos[h]; !taken {
			pos[h] = i
		}
	}
	cell := func(row []string, f Field) string {
		i, ok := pos[resolved[f]]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]core.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		amount := CoerceAmount(cell(row, FieldAmount))
		if amount.Cents < 0 {
			// Coercion preserves sign; the record invariant does not.
			amount = core.Money{}
		}
		records = append(records, core.Record{
			Timestamp:   cell(row, FieldTimestamp),
			Unit:        strings.TrimSpace(cell(row, FieldUnit)),
			TenantName:  cell(row, FieldTenantName),
			Amount:      amount,
			PaymentDate: CoerceDate(cell(row, FieldPaymentDate)),
			Mode:        cell(row, FieldPaymentMode),
			ProofURL:    cell(row, FieldProofURL),
			Notes:       cell(row, FieldNotes),
		})
	}
	return Table{Records: records, Present: present}, nil
}
