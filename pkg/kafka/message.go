package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a broker-agnostic event envelope.
type Message struct {
	Key       string            // partition key (venue id for inquiry events)
	Value     []byte            // JSON-encoded payload
	Headers   map[string]string
	Timestamp time.Time
}

// Header keys shared with downstream consumers.
const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
	HeaderTimestamp     = "timestamp"
)

type MessageBuilder struct {
	msg Message
}

func NewMessage() *MessageBuilder {
	return &MessageBuilder{
		msg: Message{
			Headers:   make(map[string]string),
			Timestamp: time.Now(),
		},
	}
}

func (mb *MessageBuilder) WithKey(key string) *MessageBuilder {
	mb.msg.Key = key
	return mb
}

// WithValue JSON-encodes the payload. An unencodable value yields a nil
// Value, which the producer rejects at publish time.
func (mb *MessageBuilder) WithValue(value any) *MessageBuilder {
	data, err := json.Marshal(value)
	if err != nil {
		mb.msg.Value = nil
		return mb
	}
	mb.msg.Value = data
	return mb
}

func (mb *MessageBuilder) WithHeader(key, value string) *MessageBuilder {
	mb.msg.Headers[key] = value
	return mb
}

func (mb *MessageBuilder) WithEventType(eventType string) *MessageBuilder {
	mb.msg.Headers[HeaderEventType] = eventType
	return mb
}

func (mb *MessageBuilder) WithCorrelationID(correlationID string) *MessageBuilder {
	mb.msg.Headers[HeaderCorrelationID] = correlationID
	return mb
}

func (mb *MessageBuilder) WithSource(source string) *MessageBuilder {
	mb.msg.Headers[HeaderSource] = source
	return mb
}

func (mb *MessageBuilder) Build() Message {
	if mb.msg.Headers[HeaderEventID] == "" {
		mb.msg.Headers[HeaderEventID] = uuid.New().String()
	}
	if mb.msg.Headers[HeaderTimestamp] == "" {
		mb.msg.Headers[HeaderTimestamp] = mb.msg.Timestamp.Format(time.RFC3339)
	}
	if mb.msg.Headers[HeaderSchemaVersion] == "" {
		mb.msg.Headers[HeaderSchemaVersion] = "1.0"
	}

	return mb.msg
}

func (m *Message) DecodeValue(v any) error {
	return json.Unmarshal(m.Value, v)
}

func (m *Message) GetHeader(key string) (string, bool) {
	value, exists := m.Headers[key]
	return value, exists
}

func (m *Message) GetEventID() string {
	return m.Headers[HeaderEventID]
}

func (m *Message) GetEventType() string {
	return m.Headers[HeaderEventType]
}
