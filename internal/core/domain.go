package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	Cash         PaymentMode = "Cash"
	GCash        PaymentMode = "GCash"
	BankTransfer PaymentMode = "Bank Transfer"
	OtherMode    PaymentMode = "Other"
)

type (
	PaymentMode string

	// Date is a calendar date in AppZone. The zero value is the explicit
	// "unknown date" sentinel used when a ledger cell fails to parse.
	Date struct {
		time.Time
	}

	// Record is one normalized ledger row. Timestamp, TenantName, Mode,
	// ProofURL and Notes are passed through from the sheet unmodified.
	Record struct {
		Timestamp   string
		Unit        string
		TenantName  string
		Amount      Money
		PaymentDate Date
		Mode        string
		ProofURL    string
		Notes       string
	}

	// ProofFile is an optional receipt image attached to a submission.
	ProofFile struct {
		Name     string
		MIMEType string
		Data     []byte
	}

	// Payment is a user-entered submission before it is appended to the
	// ledger. The form constrains date and mode structurally; unit, name
	// and amount still need validation.
	Payment struct {
		Unit       string
		TenantName string
		Amount     Money
		Date       Date
		Mode       PaymentMode
		Proof      *ProofFile
		Notes      string
	}

	// ValidationError is a user-correctable precondition failure. Code is a
	// stable machine token surfaced inline next to the offending field.
	ValidationError struct {
		Code  string
		Field string
	}
)

var (
	ErrUnitRequired  = &ValidationError{Code: "unit_required", Field: "unit_number"}
	ErrNameRequired  = &ValidationError{Code: "name_required", Field: "tenant_name"}
	ErrAmountInvalid = &ValidationError{Code: "amount_invalid", Field: "amount_paid"}
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Code)
}

// NewDate creates a Date from year, month, day in AppZone.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, AppZone)}
}

// DateOf truncates an instant to its calendar date in AppZone.
func DateOf(t time.Time) Date {
	y, m, d := t.In(AppZone).Date()
	return NewDate(y, int(m), d)
}

// Absent reports whether the date is the "unknown" sentinel.
func (d Date) Absent() bool {
	return d.IsZero()
}

// MonthStart returns the same month with the day reset to 1.
func (d Date) MonthStart() Date {
	y, m, _ := d.Date()
	return NewDate(y, int(m), 1)
}

// String renders the date in the canonical YYYY-MM-DD layout, or empty for
// the absent sentinel.
func (d Date) String() string {
	if d.Absent() {
		return ""
	}
	return d.Format(DateFormat)
}

// Validate checks submission preconditions in a single fail-fast pass;
// the first violated rule wins.
func (p Payment) Validate() error {
	if strings.TrimSpace(p.Unit) == "" {
		return ErrUnitRequired
	}
	if strings.TrimSpace(p.TenantName) == "" {
		return ErrNameRequired
	}
	if p.Amount.Cents <= 0 {
		return ErrAmountInvalid
	}
	return nil
}

// Valid reports whether the mode is one of the accepted payment modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case Cash, GCash, BankTransfer, OtherMode:
		return true
	default:
		return false
	}
}

// Modes lists the accepted payment modes in form display order.
func Modes() []PaymentMode {
	return []PaymentMode{Cash, GCash, BankTransfer, OtherMode}
}
