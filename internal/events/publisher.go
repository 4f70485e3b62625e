// Package events publishes domain events to Kafka. Publishing is best
// effort: failures are logged and never surfaced to the request path.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TopicOrders  = "order_events"
	TopicCatalog = "catalog_events"
	TopicUploads = "upload_events"

	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventProductsSynced     = "products_synced"
	EventUploadReceived     = "upload_received"
)

type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, topic, eventType, key string, payload any)
	Close() error
}

type KafkaPublisher struct {
	w   *kafka.Writer
	log *slog.Logger
}

// NewPublisher returns a no-op publisher when no brokers are configured,
// so the storefront runs without Kafka.
func NewPublisher(brokers []string, log *slog.Logger) Publisher {
	if len(brokers) == 0 {
		return NopPublisher{}
	}
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
		log: log,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, eventType, key string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("event marshal failed", "topic", topic, "event_type", eventType, "error", err)
		return
	}

	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}
	value, err := json.Marshal(env)
	if err != nil {
		p.log.Error("event marshal failed", "topic", topic, "event_type", eventType, "error", err)
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		p.log.Error("event publish failed", "topic", topic, "event_type", eventType, "error", err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, string, any) {}
func (NopPublisher) Close() error                                         { return nil }
