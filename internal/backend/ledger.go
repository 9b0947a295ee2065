package backend

import (
	"context"
	"log/slog"
	"strconv"

	"rentledger/internal/amqp"
	"rentledger/internal/storage"
)

// notifyingLedger wraps the SQLite repository so every appended payment
// also emits a sync message for the replay worker. Publish failures are
// logged, not returned: the row is safely stored and the periodic sweep
// will pick it up.
type notifyingLedger struct {
	*storage.SQLiteRepository
	publisher *amqp.Client
}

func newNotifyingLedger(repo *storage.SQLiteRepository, publisher *amqp.Client) *notifyingLedger {
	return &notifyingLedger{SQLiteRepository: repo, publisher: publisher}
}

func (l *notifyingLedger) AppendRow(ctx context.Context, values []string) (string, error) {
	ref, err := l.SQLiteRepository.AppendRow(ctx, values)
	if err != nil {
		return "", err
	}

	if l.publisher != nil {
		if id, parseErr := strconv.ParseInt(ref, 10, 64); parseErr == nil {
			if pubErr := l.publisher.PublishPaymentSync(ctx, id); pubErr != nil {
				slog.WarnContext(ctx, "Failed to publish sync message, sweep will retry",
					"id", id, "error", pubErr)
			}
		}
	}

	return ref, nil
}
