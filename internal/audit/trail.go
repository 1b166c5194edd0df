package audit

import (
	"context"
	"log/slog"
	"time"

	"AdminRelay/pkg/correlation"
	"AdminRelay/pkg/metrics"
)

const publishTimeout = 3 * time.Second

// Trail turns admin actions into audit events. It never fails the action it
// records: publish errors are logged and counted.
type Trail struct {
	publisher Publisher
	logger    *slog.Logger
}

func NewTrail(p Publisher, l *slog.Logger) *Trail {
	return &Trail{publisher: p, logger: l.With(slog.String("component", "audit"))}
}

func (t *Trail) OrderStatusChanged(ctx context.Context, orderID, status string, trackingID *string) {
	env, err := NewEnvelope(orderID, TypeOrderStatusChanged, StatusChanged{
		OrderID:       orderID,
		Status:        status,
		TrackingID:    trackingID,
		CorrelationID: correlation.FromContext(ctx),
	})
	if err != nil {
		t.fail(ctx, orderID, err)
		return
	}

	// The request may end before the broker answers.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err = t.publisher.Publish(pubCtx, env); err != nil {
		t.fail(ctx, orderID, err)
		return
	}

	metrics.AuditEventsTotal.WithLabelValues(TypeOrderStatusChanged, "published").Inc()
}

func (t *Trail) fail(ctx context.Context, orderID string, err error) {
	metrics.AuditEventsTotal.WithLabelValues(TypeOrderStatusChanged, "failed").Inc()
	t.logger.ErrorContext(ctx, "audit event not published",
		slog.String("order_id", orderID), slog.Any("error", err))
}
