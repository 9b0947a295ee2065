package ledger

import (
	"strconv"
	"strings"
	"time"

	"rentledger/internal/core"
)

// CoerceAmount converts a raw amount cell to cents. It is total: the peso
// sign and grouping commas are stripped, whitespace trimmed, and anything
// that still fails to parse becomes zero. The sign is preserved here;
// clamping to non-negative happens when the loader builds the record.
func CoerceAmount(raw string) core.Money {
	s := strings.ReplaceAll(raw, "₱", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Money{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return core.Money{}
	}
	cents := int64(f*100.0 + 0.5)
	if f < 0 {
		cents = -int64(-f*100.0 + 0.5)
	}
	return core.Money{Cents: cents}
}

// CoerceDate parses a raw date cell in the fixed YYYY-MM-DD layout. Any
// failure yields the absent sentinel, never a wrong date and never an
// error.
func CoerceDate(raw string) core.Date {
	s := strings.TrimSpace(raw)
	if s == "" {
		return core.Date{}
	}
	t, err := time.ParseInLocation(core.DateFormat, s, core.AppZone)
	if err != nil {
		return core.Date{}
	}
	return core.Date{Time: t}
}
