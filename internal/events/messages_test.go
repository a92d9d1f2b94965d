package events

import (
	"testing"
	"time"
)

func TestChangeEventRoundTrip(t *testing.T) {
	event := NewChangeEvent(OpUpdated, "tx-42")
	if event.Timestamp.IsZero() {
		t.Fatalf("timestamp should be stamped at creation")
	}

	data, err := event.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := ChangeEventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Op != OpUpdated || decoded.TransactionID != "tx-42" {
		t.Fatalf("decoded = %+v", decoded)
	}
	if !decoded.Timestamp.Truncate(time.Second).Equal(event.Timestamp.Truncate(time.Second)) {
		t.Fatalf("timestamp drifted: %v vs %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestChangeEventFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ChangeEventFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error")
	}
}
