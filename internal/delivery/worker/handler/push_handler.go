// Package handler contains the Pub/Sub push handler of the notification worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"
	"medrep/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Environments where push requests are accepted without a Google-signed token.
const (
	envLocal   = "local"
	envDevelop = "develop"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks a failure that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for the audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler emails the owning MR when a workflow event changes one of their records.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	identityRepo   repository.IdentityRepository
	mailer         service.Mailer
	templates      service.MailTemplates
	metrics        *metrics.Metrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	IdentityRepo repository.IdentityRepository
	Mailer       service.Mailer
	Templates    service.MailTemplates
	Metrics      *metrics.Metrics `optional:"true"`
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		strings.EqualFold(params.Config.PubSub.Provider, pubsub.ProviderGoogle) &&
		params.Config.Env.Env != envLocal &&
		params.Config.Env.Env != envDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		identityRepo:   params.IdentityRepo,
		mailer:         params.Mailer,
		templates:      params.Templates,
		metrics:        params.Metrics,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery (503).
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.WorkflowEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse workflow event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing workflow event",
		slog.String("type", string(event.Type)),
		slog.String("resource_id", event.ResourceID),
		slog.String("status", event.Status),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process workflow event",
			slog.String("type", string(event.Type)),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.WorkflowEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.WorkflowEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	resource, reference, ok := describe(event)
	if !ok {
		logger.Debug("[Worker] No notification for event type", slog.String("type", string(event.Type)))

		return nil
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return errors.Wrapf(err, "invalid owner id %q", event.OwnerID)
	}

	owner, err := h.identityRepo.FindByID(ctx, ownerID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return errors.WithStack(err)
	}
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to load owner"))
	}
	if !owner.IsActive {
		logger.Info("[Worker] Owner is inactive, skipping email", slog.String("owner_id", event.OwnerID))

		return nil
	}

	mail, err := h.templates.StatusUpdate(service.StatusMailData{
		Name:      owner.Name,
		Email:     owner.Email,
		Resource:  resource,
		Reference: reference,
		Status:    event.Status,
		Reason:    event.Attributes["reason"],
	})
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.mailer.Send(ctx, mail)
	if err == nil && (result == nil || !result.Success) {
		err = errors.New("mail provider rejected the message")
		if result != nil && result.Error != "" {
			err = errors.New(result.Error)
		}
	}
	if err != nil {
		h.count(metrics.OutcomeFailed)

		return newRetryableError(errors.Wrap(err, "failed to send status email"))
	}
	h.count(metrics.OutcomeSent)

	logger.Info("[Worker] Status email sent",
		slog.String("to", mail.To),
		slog.String("message_id", result.MessageID),
	)

	return nil
}

func (h *PushHandler) count(outcome string) {
	if h.metrics != nil {
		h.metrics.NotificationsTotal.WithLabelValues(outcome).Inc()
	}
}

// describe names the record an event is about. MR request events are mailed by the API itself.
func describe(event *service.WorkflowEvent) (resource, reference string, ok bool) {
	switch event.Type {
	case service.EventVisitApproved, service.EventVisitRejected:
		return "Visit report", referenceOr(event, "visit_id"), true
	case service.EventOrderStatusChanged:
		return "Order", referenceOr(event, "order_number"), true
	default:
		return "", "", false
	}
}

func referenceOr(event *service.WorkflowEvent, attribute string) string {
	if ref := event.Attributes[attribute]; ref != "" {
		return ref
	}

	return event.ResourceID
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
