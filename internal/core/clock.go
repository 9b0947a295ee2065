package core

import "time"

// AppZone is the fixed reference timezone for the whole application
// (Asia/Manila, UTC+8). Timestamps and month windows never use the
// system-local zone.
var AppZone = time.FixedZone("UTC+8", 8*60*60)

// Clock returns "now". Injected so handlers and tests can fix the
// reference instant; NowClock is the production implementation.
type Clock func() time.Time

// NowClock returns the current instant in AppZone.
func NowClock() time.Time {
	return time.Now().In(AppZone)
}

const (
	// DateFormat is the only accepted textual payment date layout.
	DateFormat = "2006-01-02"
	// TimestampFormat is the display layout for submission timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
	// TimestampTokenFormat is the filename-safe layout used for proof files.
	TimestampTokenFormat = "2006-01-02_150405"
)
