package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher implements Publisher on a single Kafka topic. Events are
// keyed by order ID so changes to one order stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(l *slog.Logger, brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: l.With(slog.String("component", "audit"), slog.String("topic", topic)),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, env Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.Type)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "audit event published",
		slog.String("key", env.Key), slog.String("event_id", env.EventID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
