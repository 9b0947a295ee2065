// Package core holds the domain types shared by the ledger engine and its
// adapters: money in integer cents, calendar dates in the fixed app
// timezone, and the payment submission model.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a peso amount in integer cents. Calculations always stay in
// cents; Pesos is for display only.
type Money struct {
	Cents int64
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Pesos returns the amount as a float64 for display purposes.
func (m Money) Pesos() float64 {
	return float64(m.Cents) / 100.0
}

// Decimal renders the amount with two decimal places and no grouping,
// e.g. "1500.00". This is the form written to the ledger and to exports.
func (m Money) Decimal() string {
	return strconv.FormatFloat(m.Pesos(), 'f', 2, 64)
}

// Display renders the amount with the peso sign and thousands grouping,
// e.g. "₱ 1,500.00".
func (m Money) Display() string {
	neg := m.Cents < 0
	cents := m.Cents
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("₱ %s%s.%02d", sign, b.String(), frac)
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. It accepts dot and comma decimal
// separators. Used for strict form input: zero, negative and malformed
// amounts are rejected with ErrAmountInvalid.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrAmountInvalid
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrAmountInvalid
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrAmountInvalid
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrAmountInvalid
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrAmountInvalid
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrAmountInvalid
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrAmountInvalid
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrAmountInvalid
	}
	return cents, nil
}
