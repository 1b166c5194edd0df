//go:build integration

package testinfra

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

// KafkaContainer is a single-node broker for the audit trail.
type KafkaContainer struct {
	Container  *kafka.KafkaContainer
	Brokers    []string
	AuditTopic string
}

func NewKafka(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	// Unique per run; the publisher creates it on first write.
	topic := fmt.Sprintf("test-audit-%s", uuid.New().String()[:8])

	return &KafkaContainer{
		Container:  container,
		Brokers:    brokers,
		AuditTopic: topic,
	}, nil
}

func (c *KafkaContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
