package amqp

import (
	"encoding/json"
	"time"
)

// ShiftSyncMessage tells the worker that the shift store was rewritten. It is
// deliberately tiny: the worker re-reads the full collection from the store,
// so the message only needs to exist, not to carry data. Count is informational.
type ShiftSyncMessage struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

func NewShiftSyncMessage(count int) *ShiftSyncMessage {
	return &ShiftSyncMessage{
		Count:     count,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ShiftSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ShiftSyncMessageFromJSON creates a message from JSON bytes
func ShiftSyncMessageFromJSON(data []byte) (*ShiftSyncMessage, error) {
	var msg ShiftSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
