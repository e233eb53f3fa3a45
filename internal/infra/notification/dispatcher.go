package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"

	"go.uber.org/fx"
)

const defaultSendTimeout = 15 * time.Second

// asyncDispatcher sends each mail on its own goroutine, detached from the request.
type asyncDispatcher struct {
	mailer  service.Mailer
	logger  *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration

	inflight sync.WaitGroup
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Mailer  service.Mailer
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewDispatcher creates the dispatcher and waits for in-flight sends on shutdown.
func NewDispatcher(params DispatcherParams) service.NotificationDispatcher {
	timeout := defaultSendTimeout
	if params.Config.Mail != nil && params.Config.Mail.Timeout > 0 {
		timeout = params.Config.Mail.Timeout
	}

	d := newAsyncDispatcher(params.Mailer, params.Logger, params.Metrics, timeout)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			d.wait(ctx)

			return nil
		},
	})

	return d
}

func newAsyncDispatcher(mailer service.Mailer, logger *slog.Logger, m *metrics.Metrics, timeout time.Duration) *asyncDispatcher {
	return &asyncDispatcher{
		mailer:  mailer,
		logger:  logger,
		metrics: m,
		timeout: timeout,
	}
}

// Dispatch returns immediately. Delivery failures are logged and counted, never returned.
func (d *asyncDispatcher) Dispatch(ctx context.Context, mail service.Mail) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	sendCtx := context.WithoutCancel(ctx)

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(sendCtx, d.timeout)
		defer cancel()

		result, err := d.mailer.Send(ctx, mail)
		if err != nil || result == nil || !result.Success {
			attrs := []any{slog.String("to", mail.To), slog.String("subject", mail.Subject)}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			} else if result != nil {
				attrs = append(attrs, slog.String("error", result.Error))
			}
			logger.ErrorContext(ctx, "Failed to send email", attrs...)
			d.count(metrics.OutcomeFailed)

			return
		}

		logger.InfoContext(ctx, "Email sent",
			slog.String("to", mail.To),
			slog.String("message_id", result.MessageID),
		)
		d.count(metrics.OutcomeSent)
	}()
}

func (d *asyncDispatcher) count(outcome string) {
	if d.metrics != nil {
		d.metrics.NotificationsTotal.WithLabelValues(outcome).Inc()
	}
}

// wait blocks until in-flight sends finish or ctx is done.
func (d *asyncDispatcher) wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.logger.Warn("Shutdown before all emails were sent")
	}
}
