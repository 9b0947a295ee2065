// Package google implements the ledger ports against the Google Sheets
// API using a service account.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	ports "rentledger/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	worksheet     string
}

// Ensure interface conformance
var (
	_ ports.RowLister   = (*Client)(nil)
	_ ports.RowAppender = (*Client)(nil)
)

// Config carries what the client needs to reach one worksheet. Exactly
// one of CredentialsJSON or CredentialsFile must be set.
type Config struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsJSON string
	CredentialsFile string
}

// New creates a Sheets client scoped to a single worksheet. The service
// handle is safe for concurrent use and is meant to be created once per
// process.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	worksheet := strings.TrimSpace(cfg.Worksheet)
	if worksheet == "" {
		worksheet = "Tracker"
	}

	credentialsJSON, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     worksheet,
	}, nil
}

func resolveCredentials(cfg Config) ([]byte, error) {
	return ResolveCredentials(cfg.CredentialsJSON, cfg.CredentialsFile)
}

// ResolveCredentials loads the service-account JSON from an inline value
// or a file path, preferring the inline value. The same credentials are
// shared with the Drive uploader.
func ResolveCredentials(credentialsJSON, credentialsFile string) ([]byte, error) {
	switch {
	case strings.TrimSpace(credentialsJSON) != "":
		return []byte(credentialsJSON), nil
	case strings.TrimSpace(credentialsFile) != "":
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE)")
	}
}

// ListRows performs a full scan of the worksheet, header row first, and
// renders every cell as a string.
func (c *Client) ListRows(ctx context.Context) ([][]string, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.worksheet, err)
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

// AppendRow appends one row after the last populated row, letting the
// sheet interpret values as a user would have typed them.
func (c *Client) AppendRow(ctx context.Context, values []string) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	vr := &gsheet.ValueRange{Values: [][]any{cells}}
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.worksheet, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("append to %s: %w", c.worksheet, err)
	}
	ref := c.worksheet
	if resp.Updates != nil && resp.Updates.UpdatedRange != "" {
		ref = resp.Updates.UpdatedRange
	}
	slog.InfoContext(ctx, "Appended ledger row", "range", ref, "columns", len(values))
	return ref, nil
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fmt.Sprint(v)
	}
	return out
}
