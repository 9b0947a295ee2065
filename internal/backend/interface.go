// Package backend selects and wires a ledger implementation (memory,
// Google Sheets, or SQLite) from configuration.
package backend

import (
	"context"

	"rentledger/internal/blob"
	"rentledger/internal/sheets"
)

// Backend is a full ledger: readable for the dashboard, appendable for
// payment submissions.
type Backend interface {
	sheets.RowLister
	sheets.RowAppender
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// BackendResult bundles the ledger with its optional collaborators.
type BackendResult struct {
	Backend Backend

	// Uploader receives proof files; nil when uploads are disabled.
	Uploader blob.Uploader

	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// BackendType identifies one of the supported ledger implementations.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SheetsBackend BackendType = "sheets"
	SQLiteBackend BackendType = "sqlite"
)

func (t BackendType) String() string { return string(t) }

func (t BackendType) IsValid() bool {
	switch t {
	case MemoryBackend, SheetsBackend, SQLiteBackend:
		return true
	}
	return false
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// SQLite configuration
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets configuration
	SheetID                  string
	WorksheetName            string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	// Google Drive proof uploads (sheets backend only)
	DriveFolderID string

	// Memory backend seed directory
	DataDirectory string
}
