package amqp

import (
	"encoding/json"
	"time"
)

// PaymentSyncMessage is a lightweight notification that a payment landed
// in the local database. It carries only the row ID; the worker fetches
// the full row from SQLite before replaying it to the sheet.
type PaymentSyncMessage struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewPaymentSyncMessage(id int64) *PaymentSyncMessage {
	return &PaymentSyncMessage{
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *PaymentSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func PaymentSyncMessageFromJSON(data []byte) (*PaymentSyncMessage, error) {
	var msg PaymentSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
