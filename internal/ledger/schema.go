// Package ledger implements the ingestion, normalization and reporting
// engine over the external payment sheet: header resolution against a
// tolerant schema, defensive cell coercion, month-window aggregation,
// filtering, sorting, CSV export and the submission write path.
package ledger

import "strings"

// Field is a canonical column name, stable regardless of what the sheet's
// actual header row says.
type Field string

const (
	FieldTimestamp   Field = "timestamp"
	FieldUnit        Field = "unit"
	FieldTenantName  Field = "tenant_name"
	FieldAmount      Field = "amount"
	FieldPaymentDate Field = "payment_date"
	FieldPaymentMode Field = "payment_mode"
	FieldProofURL    Field = "proof_url"
	FieldNotes       Field = "notes"
)

// columnSpec binds a canonical field to its primary persisted header and
// the ranked synonyms tolerated in the wild.
type columnSpec struct {
	field    Field
	primary  string
	synonyms []string
}

// Columns lists all canonical columns in the persisted (and display)
// order. Synonym lists are tried in declaration order, first match wins.
var Columns = []columnSpec{
	{FieldTimestamp, "timestamp", []string{"timestamp", "submitted timestamp", "time"}},
	{FieldUnit, "unit_number", []string{"unit", "unit number", "unit_no"}},
	{FieldTenantName, "tenant_name", []string{"full name", "name", "tenant name"}},
	{FieldAmount, "amount_paid", []string{"amount", "amount paid", "amount (₱)"}},
	{FieldPaymentDate, "payment_date", []string{"date", "payment date", "date of payment"}},
	{FieldPaymentMode, "payment_mode", []string{"mode", "payment mode"}},
	{FieldProofURL, "proof_file_url", []string{"proof", "proof url", "receipt", "receipt link"}},
	{FieldNotes, "notes", []string{"notes", "remarks"}},
}

// requiredFields are the columns the loader cannot proceed without.
var requiredFields = []Field{FieldUnit, FieldAmount, FieldPaymentDate}

// headerIndex is a one-time lookup table over an actual header row:
// exact headers plus their trim/lowercase normalization.
type headerIndex struct {
	exact      map[string]struct{}
	normalized map[string]string // normalized -> actual header text
}

func indexHeaders(headers []string) headerIndex {
	idx := headerIndex{
		exact:      make(map[string]struct{}, len(headers)),
		normalized: make(map[string]string, len(headers)),
	}
	for _, h := range headers {
		idx.exact[h] = struct{}{}
		key := normalizeHeader(h)
		if _, taken := idx.normalized[key]; !taken {
			idx.normalized[key] = h
		}
	}
	return idx
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// resolve maps one canonical column to the actual header to read. Exact
// case-sensitive primary match first, then synonyms case-insensitively in
// declaration order. When nothing matches, the primary name comes back
// unchanged and the caller decides whether the column was required.
func (idx headerIndex) resolve(spec columnSpec) (header string, present bool) {
	if _, ok := idx.exact[spec.primary]; ok {
		return spec.primary, true
	}
	for _, syn := range spec.synonyms {
		if actual, ok := idx.normalized[normalizeHeader(syn)]; ok {
			return actual, true
		}
	}
	return spec.primary, false
}

// ResolveColumns resolves every canonical column against the given header
// row. The result maps fields to actual header names; presence tracks
// which fields matched a real header.
func ResolveColumns(headers []string) (resolved map[Field]string, present map[Field]bool) {
	idx := indexHeaders(headers)
	resolved = make(map[Field]string, len(Columns))
	present = make(map[Field]bool, len(Columns))
	for _, spec := range Columns {
		h, ok := idx.resolve(spec)
		resolved[spec.field] = h
		present[spec.field] = ok
	}
	return resolved, present
}

// DisplayHeader returns the persisted header name for a canonical field.
func DisplayHeader(f Field) string {
	for _, spec := range Columns {
		if spec.field == f {
			return spec.primary
		}
	}
	return string(f)
}
