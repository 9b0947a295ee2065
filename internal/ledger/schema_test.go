package ledger

import "testing"

func TestResolveColumnsExactPrimary(t *testing.T) {
	headers := []string{"timestamp", "unit_number", "tenant_name", "amount_paid", "payment_date", "payment_mode", "proof_file_url", "notes"}
	resolved, present := ResolveColumns(headers)
	for _, spec := range Columns {
		if !present[spec.field] {
			t.Fatalf("field %s not present", spec.field)
		}
		if resolved[spec.field] != spec.primary {
			t.Fatalf("field %s resolved to %q, want %q", spec.field, resolved[spec.field], spec.primary)
		}
	}
}

func TestResolveColumnsSynonyms(t *testing.T) {
	// Pretty headers as a hand-edited sheet might carry them.
	headers := []string{"Timestamp", "Unit Number", "Full Name", "Amount", "Date", "Mode", "Proof URL", "Remarks"}
	resolved, present := ResolveColumns(headers)
	cases := map[Field]string{
		FieldTimestamp:   "Timestamp",
		FieldUnit:        "Unit Number",
		FieldTenantName:  "Full Name",
		FieldAmount:      "Amount",
		FieldPaymentDate: "Date",
		FieldPaymentMode: "Mode",
		FieldProofURL:    "Proof URL",
		FieldNotes:       "Remarks",
	}
	for f, want := range cases {
		if !present[f] {
			t.Fatalf("field %s not present", f)
		}
		if resolved[f] != want {
			t.Fatalf("field %s resolved to %q, want %q", f, resolved[f], want)
		}
	}
}

func TestResolveColumnsTrimsAndIgnoresCase(t *testing.T) {
	headers := []string{"  UNIT NUMBER  ", "AMOUNT PAID", "Payment Date"}
	resolved, present := ResolveColumns(headers)
	if !present[FieldUnit] || resolved[FieldUnit] != "  UNIT NUMBER  " {
		t.Fatalf("unit: present=%v resolved=%q", present[FieldUnit], resolved[FieldUnit])
	}
	if !present[FieldAmount] || resolved[FieldAmount] != "AMOUNT PAID" {
		t.Fatalf("amount: present=%v resolved=%q", present[FieldAmount], resolved[FieldAmount])
	}
	if !present[FieldPaymentDate] {
		t.Fatalf("payment_date should resolve via synonym")
	}
}

func TestResolveColumnsDeferredFailure(t *testing.T) {
	headers := []string{"something", "else"}
	resolved, present := ResolveColumns(headers)
	if present[FieldUnit] {
		t.Fatalf("unit should be missing")
	}
	// Unresolved fields keep the primary name unchanged.
	if resolved[FieldUnit] != "unit_number" {
		t.Fatalf("expected primary name back, got %q", resolved[FieldUnit])
	}
}

func TestResolveColumnsFirstSynonymWins(t *testing.T) {
	// Both "proof" and "receipt link" present; "proof" is declared first.
	headers := []string{"Receipt Link", "Proof"}
	resolved, _ := ResolveColumns(headers)
	if resolved[FieldProofURL] != "Proof" {
		t.Fatalf("expected first-listed synonym to win, got %q", resolved[FieldProofURL])
	}
}
