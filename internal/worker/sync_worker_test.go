package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"rentledger/internal/amqp"
	"rentledger/internal/storage"
)

type fakeStore struct {
	payments map[int64][]string
	synced   map[int64]bool
	listErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		payments: make(map[int64][]string),
		synced:   make(map[int64]bool),
	}
}

func (s *fakeStore) add(id int64, unit string) {
	s.payments[id] = []string{"2024-03-15 10:00:00", unit, "Juan Dela Cruz", "1500.00", "2024-03-15", "GCash", "", ""}
}

func (s *fakeStore) GetPayment(_ context.Context, id int64) (storage.PendingPayment, error) {
	values, ok := s.payments[id]
	if !ok {
		return storage.PendingPayment{}, fmt.Errorf("payment %d not found", id)
	}
	return storage.PendingPayment{ID: id, Values: values}, nil
}

func (s *fakeStore) ListPending(_ context.Context, limit int) ([]storage.PendingPayment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []storage.PendingPayment
	for id := int64(1); id <= int64(len(s.payments)); id++ {
		if s.synced[id] {
			continue
		}
		if values, ok := s.payments[id]; ok {
			out = append(out, storage.PendingPayment{ID: id, Values: values})
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) MarkSynced(_ context.Context, id int64) error {
	s.synced[id] = true
	return nil
}

type fakeSheet struct {
	rows [][]string
	err  error
}

func (f *fakeSheet) AppendRow(_ context.Context, values []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rows = append(f.rows, values)
	return fmt.Sprintf("sheet:%d", len(f.rows)), nil
}

func TestHandleSyncMessage(t *testing.T) {
	store := newFakeStore()
	store.add(7, "Unit 2A")
	sheet := &fakeSheet{}
	w := NewSyncWorker(store, sheet, 10)

	err := w.HandleSyncMessage(context.Background(), &amqp.PaymentSyncMessage{ID: 7})
	if err != nil {
		t.Fatalf("HandleSyncMessage: %v", err)
	}
	if len(sheet.rows) != 1 || sheet.rows[0][1] != "Unit 2A" {
		t.Fatalf("sheet rows: %v", sheet.rows)
	}
	if !store.synced[7] {
		t.Fatal("payment should be marked synced")
	}
}

func TestHandleSyncMessageUnknownID(t *testing.T) {
	w := NewSyncWorker(newFakeStore(), &fakeSheet{}, 10)
	if err := w.HandleSyncMessage(context.Background(), &amqp.PaymentSyncMessage{ID: 99}); err == nil {
		t.Fatal("expected error for unknown payment")
	}
}

func TestHandleSyncMessageAppendFailureLeavesPending(t *testing.T) {
	store := newFakeStore()
	store.add(1, "Unit 1A")
	sheet := &fakeSheet{err: errors.New("sheets unavailable")}
	w := NewSyncWorker(store, sheet, 10)

	if err := w.HandleSyncMessage(context.Background(), &amqp.PaymentSyncMessage{ID: 1}); err == nil {
		t.Fatal("expected append error to surface")
	}
	if store.synced[1] {
		t.Fatal("failed sync must not mark the payment synced")
	}
}

func TestProcessPendingPayments(t *testing.T) {
	store := newFakeStore()
	for i := int64(1); i <= 3; i++ {
		store.add(i, fmt.Sprintf("Unit %dA", i))
	}
	store.synced[2] = true
	sheet := &fakeSheet{}
	w := NewSyncWorker(store, sheet, 10)

	if err := w.ProcessPendingPayments(context.Background()); err != nil {
		t.Fatalf("ProcessPendingPayments: %v", err)
	}
	if len(sheet.rows) != 2 {
		t.Fatalf("expected 2 replayed rows, got %d", len(sheet.rows))
	}
	if sheet.rows[0][1] != "Unit 1A" || sheet.rows[1][1] != "Unit 3A" {
		t.Fatalf("replay order: %v", sheet.rows)
	}
}

func TestProcessPendingPaymentsRespectsBatchSize(t *testing.T) {
	store := newFakeStore()
	for i := int64(1); i <= 5; i++ {
		store.add(i, "Unit 1A")
	}
	sheet := &fakeSheet{}
	w := NewSyncWorker(store, sheet, 2)

	if err := w.ProcessPendingPayments(context.Background()); err != nil {
		t.Fatalf("ProcessPendingPayments: %v", err)
	}
	if len(sheet.rows) != 2 {
		t.Fatalf("batch size ignored: %d rows", len(sheet.rows))
	}
}

func TestStartupSyncCheckDrainsBacklog(t *testing.T) {
	store := newFakeStore()
	for i := int64(1); i <= 4; i++ {
		store.add(i, "Unit 1A")
	}
	sheet := &fakeSheet{}
	w := NewSyncWorker(store, sheet, 1)

	// Startup uses a 5x batch, so all four fit in one pass.
	if err := w.StartupSyncCheck(context.Background()); err != nil {
		t.Fatalf("StartupSyncCheck: %v", err)
	}
	if len(sheet.rows) != 4 {
		t.Fatalf("expected full backlog drained, got %d rows", len(sheet.rows))
	}
}
