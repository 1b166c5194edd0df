package health

import (
	"context"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker reports the audit trail as up when at least one broker
// accepts a connection. When all fail, the message names each broker and
// its dial error.
type KafkaChecker struct {
	brokers []string
	dialer  *kafka.Dialer
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{
		brokers: brokers,
		dialer:  &kafka.Dialer{ClientID: "adminrelay-health", Timeout: DefaultTimeout},
	}
}

func (c *KafkaChecker) Name() string {
	return "audit_kafka"
}

func (c *KafkaChecker) Check(ctx context.Context) Result {
	if len(c.brokers) == 0 {
		return Result{Status: StatusDown, Message: "no brokers configured"}
	}

	failures := make([]string, 0, len(c.brokers))
	for _, broker := range c.brokers {
		conn, err := c.dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", broker, err))
			continue
		}
		_ = conn.Close()
		return Result{Status: StatusUp}
	}

	return Result{Status: StatusDown, Message: strings.Join(failures, "; ")}
}
