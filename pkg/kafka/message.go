package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is the transport-independent shape published to Kafka.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// Header keys shared with downstream consumers of the booking-event topic.
const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
)

type MessageBuilder struct {
	msg Message
}

func NewMessage() *MessageBuilder {
	return &MessageBuilder{
		msg: Message{
			Headers:   make(map[string]string),
			Timestamp: time.Now().UTC(),
		},
	}
}

// WithKey sets the partition key. Keyed by booking id so events for one
// booking stay ordered.
func (b *MessageBuilder) WithKey(key string) *MessageBuilder {
	b.msg.Key = key
	return b
}

func (b *MessageBuilder) WithJSONValue(v any) (*MessageBuilder, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	b.msg.Value = data
	return b, nil
}

func (b *MessageBuilder) WithEventType(eventType string) *MessageBuilder {
	b.msg.Headers[HeaderEventType] = eventType
	return b
}

func (b *MessageBuilder) WithCorrelationID(id string) *MessageBuilder {
	b.msg.Headers[HeaderCorrelationID] = id
	return b
}

func (b *MessageBuilder) WithSource(source string) *MessageBuilder {
	b.msg.Headers[HeaderSource] = source
	return b
}

// Build stamps a fresh event id and returns the message.
func (b *MessageBuilder) Build() Message {
	b.msg.Headers[HeaderEventID] = uuid.NewString()
	if _, ok := b.msg.Headers[HeaderSchemaVersion]; !ok {
		b.msg.Headers[HeaderSchemaVersion] = "1"
	}
	return b.msg
}
