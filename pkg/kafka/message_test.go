package kafka

import (
	"encoding/json"
	"testing"
)

func TestMessageBuilder(t *testing.T) {
	payload := map[string]string{"inquiryId": "abc", "venueId": "def"}

	msg := NewMessage().
		WithKey("def").
		WithValue(payload).
		WithEventType("inquiry.created").
		WithSource("venuebook").
		Build()

	if msg.Key != "def" {
		t.Errorf("key = %q", msg.Key)
	}
	if msg.GetEventType() != "inquiry.created" {
		t.Errorf("event type = %q", msg.GetEventType())
	}
	if msg.GetEventID() == "" {
		t.Error("event id must be generated when not provided")
	}
	if _, ok := msg.GetHeader(HeaderTimestamp); !ok {
		t.Error("timestamp header must be set")
	}

	var decoded map[string]string
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("value is not valid JSON: %v", err)
	}
	if decoded["inquiryId"] != "abc" {
		t.Errorf("decoded payload = %v", decoded)
	}
}

func TestMessageDecodeValue(t *testing.T) {
	msg := NewMessage().WithKey("k").WithValue(map[string]int{"n": 7}).Build()

	var out map[string]int
	if err := msg.DecodeValue(&out); err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if out["n"] != 7 {
		t.Errorf("decoded = %v", out)
	}
}
