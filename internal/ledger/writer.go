package ledger

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rentledger/internal/blob"
	"rentledger/internal/core"
	"rentledger/internal/sheets"
)

// FallbackUnitToken names proof files whose unit sanitizes to nothing.
const FallbackUnitToken = "UNKNOWN_UNIT"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9_\-]`)
)

// SanitizeForFilename maps whitespace runs to single underscores and
// strips everything outside [A-Za-z0-9_-].
func SanitizeForFilename(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		return FallbackUnitToken
	}
	return s
}

// Writer is the submission path: validate a payment, optionally upload
// the proof file, and append the row to the ledger in the persisted
// column order. Repeated identical submissions land as separate rows;
// the ledger is append-only and carries no idempotency key.
type Writer struct {
	appender sheets.RowAppender
	uploader blob.Uploader
	clock    core.Clock
}

// NewWriter builds a submission writer. uploader may be nil when no
// binary store is configured; proof files are then skipped and the
// proof_file_url cell stays empty.
func NewWriter(appender sheets.RowAppender, uploader blob.Uploader, clock core.Clock) *Writer {
	if clock == nil {
		clock = core.NowClock
	}
	return &Writer{appender: appender, uploader: uploader, clock: clock}
}

// Result reports where a recorded payment ended up.
type Result struct {
	RowRef    string
	ProofURL  string
	Timestamp string
}

// Record validates and persists one payment. Validation failures surface
// as *core.ValidationError and block the write; upload and append
// failures surface wrapped and abandon the operation with no partial
// state.
func (w *Writer) Record(ctx context.Context, p core.Payment) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	now := w.clock()
	timestamp := now.Format(core.TimestampFormat)
	token := now.Format(core.TimestampTokenFormat)

	proofURL := ""
	if p.Proof != nil && w.uploader != nil {
		name := proofFilename(p.Unit, token, p.Proof.Name)
		url, err := w.uploader.Upload(ctx, name, p.Proof.MIMEType, p.Proof.Data)
		if err != nil {
			return Result{}, fmt.Errorf("upload proof file: %w", err)
		}
		proofURL = url
	}

	row := []string{
		timestamp,
		strings.TrimSpace(p.Unit),
		strings.TrimSpace(p.TenantName),
		p.Amount.Decimal(),
		p.Date.String(),
		string(p.Mode),
		proofURL,
		strings.TrimSpace(p.Notes),
	}
	ref, err := w.appender.AppendRow(ctx, row)
	if err != nil {
		return Result{}, fmt.Errorf("append payment row: %w", err)
	}
	return Result{RowRef: ref, ProofURL: proofURL, Timestamp: timestamp}, nil
}

// proofFilename derives "{sanitized unit}_{token}{ext}". The extension is
// taken from the uploaded name, lowercased; a name without a dot yields
// no extension.
func proofFilename(unit, token, originalName string) string {
	ext := ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		ext = strings.ToLower(originalName[i:])
	}
	return fmt.Sprintf("%s_%s%s", SanitizeForFilename(unit), token, ext)
}
