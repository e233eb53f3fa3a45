// Package notification delivers transactional email.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"medrep/config"
	"medrep/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Mail providers accepted in mail.provider.
const (
	ProviderSES = "ses"
	ProviderLog = "log"
)

// MailerParams holds dependencies for the mailer, injected by Fx
type MailerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mail provider from configuration.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		cfg = &config.MailConfig{Provider: ProviderLog}
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderSES:
		params.Logger.Info("Using AWS SES mailer",
			slog.String("region", cfg.Region),
			slog.String("from", cfg.From),
		)

		return NewSESMailer(params.Ctx, cfg)
	case ProviderLog, "":
		params.Logger.Info("Using log mailer, emails are not delivered")

		return NewLogMailer(params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMailer,
		NewMailTemplates,
		NewDispatcher,
	),
)
