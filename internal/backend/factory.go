package backend

import (
	"context"
	"fmt"
	"log/slog"

	"rentledger/internal/amqp"
	"rentledger/internal/blob/drive"
	gsheet "rentledger/internal/sheets/google"
	"rentledger/internal/sheets/memory"
	"rentledger/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case SheetsBackend:
		return f.createSheetsBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	// AMQP is optional: without it the worker's periodic sweep still
	// finds unsynced rows.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without sync notifications", "error", err)
			amqpClient = nil
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	ledger := newNotifyingLedger(repo, amqpClient)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	cleanup := func() error {
		if amqpClient != nil {
			amqpClient.Close()
		}
		return repo.Close()
	}

	return &BackendResult{Backend: ledger, Cleanup: cleanup}, nil
}

func (f *DefaultFactory) createSheetsBackend(ctx context.Context, config Config) (*BackendResult, error) {
	cli, err := gsheet.New(ctx, gsheet.Config{
		SpreadsheetID:   config.SheetID,
		Worksheet:       config.WorksheetName,
		CredentialsJSON: config.GoogleServiceAccountJSON,
		CredentialsFile: config.GoogleServiceAccountFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	result := &BackendResult{Backend: cli}

	if config.DriveFolderID != "" {
		credentials, err := gsheet.ResolveCredentials(config.GoogleServiceAccountJSON, config.GoogleServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("resolve drive credentials: %w", err)
		}
		uploader, err := drive.New(ctx, config.DriveFolderID, credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Drive uploader: %w", err)
		}
		result.Uploader = uploader
		f.logger.Info("Initialized Drive proof uploads", "folder_id", config.DriveFolderID)
	}

	f.logger.Info("Initialized Google Sheets backend",
		"sheet_id", config.SheetID,
		"worksheet", config.WorksheetName)

	return result, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*BackendResult, error) {
	dataDir := config.DataDirectory
	if dataDir == "" {
		dataDir = "data"
	}

	store := memory.NewFromFile(dataDir)

	f.logger.Info("Initialized memory backend", "data_directory", dataDir)

	return &BackendResult{Backend: store}, nil
}
