package impl

import (
	"context"
	"log/slog"

	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"
)

// eventEmitter publishes workflow events after commit. A failed publish is logged and counted.
type eventEmitter struct {
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, m *metrics.Metrics, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, metrics: m, logger: logger}
}

func (e *eventEmitter) emit(ctx context.Context, event *service.WorkflowEvent) {
	if e == nil || e.publisher == nil {
		return
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = utcNow()
	}

	outcome := metrics.OutcomeSent
	if err := e.publisher.Publish(ctx, event); err != nil {
		outcome = metrics.OutcomeFailed
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).WarnContext(ctx, "Failed to publish workflow event",
			slog.String("type", string(event.Type)),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
		)
	}

	if e.metrics != nil {
		e.metrics.WorkflowEventsTotal.WithLabelValues(string(event.Type), outcome).Inc()
	}
}
