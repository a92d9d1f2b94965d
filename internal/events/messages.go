package events

import (
	"encoding/json"
	"time"
)

const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// ChangeEvent announces a transaction mutation that was confirmed by the
// remote service. Consumers fetch details themselves; the event carries only
// identity and the operation.
type ChangeEvent struct {
	Op            string    `json:"op"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewChangeEvent(op, transactionID string) *ChangeEvent {
	return &ChangeEvent{
		Op:            op,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (e *ChangeEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ChangeEventFromJSON(data []byte) (*ChangeEvent, error) {
	var e ChangeEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
