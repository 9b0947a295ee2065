// Package worker replays payments captured in the local SQLite ledger
// to the Google Sheet. It is driven by AMQP sync messages, with a
// periodic sweep as a backup in case messages are lost.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"rentledger/internal/amqp"
	"rentledger/internal/sheets"
	"rentledger/internal/storage"
)

// PendingStore is the slice of the SQLite repository the worker needs.
type PendingStore interface {
	GetPayment(ctx context.Context, id int64) (storage.PendingPayment, error)
	ListPending(ctx context.Context, limit int) ([]storage.PendingPayment, error)
	MarkSynced(ctx context.Context, id int64) error
}

// Consumer delivers payment sync messages until the context ends.
type Consumer interface {
	ConsumePaymentSync(ctx context.Context, handler func(*amqp.PaymentSyncMessage) error) error
}

type SyncWorker struct {
	store     PendingStore
	appender  sheets.RowAppender
	batchSize int
}

func NewSyncWorker(store PendingStore, appender sheets.RowAppender, batchSize int) *SyncWorker {
	return &SyncWorker{
		store:     store,
		appender:  appender,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single payment sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.PaymentSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message", "id", msg.ID)

	payment, err := w.store.GetPayment(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get payment from storage: %w", err)
	}

	return w.syncPaymentToSheet(ctx, payment)
}

// ProcessPendingPayments replays any payments that have not been synced
// yet. This is a backup mechanism in case AMQP messages are lost.
func (w *SyncWorker) ProcessPendingPayments(ctx context.Context) error {
	pending, err := w.store.ListPending(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending payments: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending payments", "count", len(pending))

	for _, payment := range pending {
		if err := w.syncPaymentToSheet(ctx, payment); err != nil {
			slog.ErrorContext(ctx, "Failed to sync payment", "id", payment.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupSyncCheck replays pending payments accumulated while the worker
// was down, using a larger batch than the periodic sweep.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.store.ListPending(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("list pending payments for startup check: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending payments found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending payments on startup, processing...",
		"count", len(pending))

	synced := 0
	for _, payment := range pending {
		if err := w.syncPaymentToSheet(ctx, payment); err != nil {
			slog.ErrorContext(ctx, "Failed to sync payment during startup",
				"id", payment.ID, "error", err)
			continue
		}
		synced++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(pending),
		"synced", synced,
		"errors", len(pending)-synced)

	return nil
}

// Run drives the worker until the context is cancelled: one goroutine
// consumes AMQP sync messages, another sweeps for pending payments on a
// fixed interval. The first error from either side stops both.
func (w *SyncWorker) Run(ctx context.Context, consumer Consumer, sweepInterval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.ConsumePaymentSync(ctx, func(msg *amqp.PaymentSyncMessage) error {
			return w.HandleSyncMessage(ctx, msg)
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.ProcessPendingPayments(ctx); err != nil {
					slog.ErrorContext(ctx, "Pending sweep failed", "error", err)
				}
			}
		}
	})

	return g.Wait()
}

func (w *SyncWorker) syncPaymentToSheet(ctx context.Context, payment storage.PendingPayment) error {
	ref, err := w.appender.AppendRow(ctx, payment.Values)
	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.store.MarkSynced(ctx, payment.ID); err != nil {
		// The append worked; log and move on rather than replaying it.
		slog.ErrorContext(ctx, "Failed to mark as synced", "id", payment.ID, "error", err)
		return nil
	}

	slog.InfoContext(ctx, "Successfully synced payment",
		"id", payment.ID,
		"sheet_ref", ref,
		"unit", payment.Values[1])

	return nil
}
