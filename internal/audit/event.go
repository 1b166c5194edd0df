// Package audit records admin actions as events on a message broker.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const TypeOrderStatusChanged = "order.status_changed"

// Envelope wraps an event with metadata for tracing and routing.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewEnvelope(key, eventType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// StatusChanged is the payload of TypeOrderStatusChanged.
type StatusChanged struct {
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	TrackingID    *string `json:"trackingId,omitempty"`
	CorrelationID string  `json:"correlationId,omitempty"`
}

// Publisher sends envelopes to a broker.
type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
	Close() error
}

// NopPublisher drops every envelope. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error { return nil }
func (NopPublisher) Close() error { return nil }
