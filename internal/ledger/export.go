package ledger

import (
	"encoding/csv"
	"io"

	"rentledger/internal/core"
)

// ExportCSV writes the visible records as comma-delimited UTF-8 text with
// a header row. Columns follow the fixed canonical order; columns the
// source sheet does not carry are omitted entirely, not padded. Amounts
// are written as plain two-decimal numbers so a re-parse of the output
// yields the same values.
func ExportCSV(w io.Writer, t Table) error {
	var fields []Field
	for _, spec := range Columns {
		if t.Present[spec.field] {
			fields = append(fields, spec.field)
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = DisplayHeader(f)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range t.Records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = exportCell(r, f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportCell(r core.Record, f Field) string {
	switch f {
	case FieldTimestamp:
		return r.Timestamp
	case FieldUnit:
		return r.Unit
	case FieldTenantName:
		return r.TenantName
	case FieldAmount:
		return r.Amount.Decimal()
	case FieldPaymentDate:
		return r.PaymentDate.String()
	case FieldPaymentMode:
		return r.Mode
	case FieldProofURL:
		return r.ProofURL
	case FieldNotes:
		return r.Notes
	default:
		return ""
	}
}
