package main

import (
	"context"
	"errors"
	"os"
	"time"

	"rentledger/internal/amqp"
	"rentledger/internal/cli"
	gsheet "rentledger/internal/sheets/google"
	"rentledger/internal/storage"
	"rentledger/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting rentledger-worker")

	if cfg.SheetID == "" {
		logger.Error("Worker requires a Google Sheet to replay into (set SHEET_ID)")
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("Worker requires an AMQP broker (set AMQP_URL)")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	sheetsClient, err := gsheet.New(context.Background(), gsheet.Config{
		SpreadsheetID:   cfg.SheetID,
		Worksheet:       cfg.WorksheetName,
		CredentialsJSON: cfg.GoogleServiceAccountJSON,
		CredentialsFile: cfg.GoogleServiceAccountFile,
	})
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized", "sheet_id", cfg.SheetID, "worksheet", cfg.WorksheetName)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	syncWorker := worker.NewSyncWorker(repo, sheetsClient, cfg.SyncBatchSize)

	// Drain anything that accumulated while the worker was down.
	logger.Info("Performing startup sync check...")
	if err := syncWorker.StartupSyncCheck(ctx); err != nil {
		logger.Error("Failed startup sync check", "error", err)
	}

	logger.Info("Worker running",
		"queue", cfg.AMQPQueue,
		"sweep_interval", cfg.SyncInterval,
		"batch_size", cfg.SyncBatchSize)
	if err := syncWorker.Run(ctx, amqpClient, cfg.SyncInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	<-done
	logger.Info("Worker shutdown complete")
}
