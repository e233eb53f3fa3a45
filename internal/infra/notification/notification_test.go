package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"medrep/config"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-123")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	mailer := newSESMailer(client, &config.MailConfig{From: "noreply@example.com", ReplyTo: "hr@example.com"})

	result, err := mailer.Send(context.Background(), service.Mail{To: "mr@example.com", Subject: "Hi", HTMLBody: "<p>x</p>"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ses-123", result.MessageID)

	require.NotNil(t, client.input)
	assert.Equal(t, "noreply@example.com", aws.ToString(client.input.FromEmailAddress))
	assert.Equal(t, []string{"mr@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, []string{"hr@example.com"}, client.input.ReplyToAddresses)
	assert.Equal(t, "<p>x</p>", aws.ToString(client.input.Content.Simple.Body.Html.Data))
}

func TestSESMailer_SendFailure(t *testing.T) {
	mailer := newSESMailer(&fakeSES{err: errors.New("throttled")}, &config.MailConfig{From: "noreply@example.com"})

	result, err := mailer.Send(context.Background(), service.Mail{To: "mr@example.com"})
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "throttled", result.Error)
}

func TestNewSESMailer_RequiresFrom(t *testing.T) {
	_, err := NewSESMailer(context.Background(), &config.MailConfig{Provider: ProviderSES})
	assert.Error(t, err)
}

func TestNewMailer_Providers(t *testing.T) {
	params := MailerParams{Ctx: context.Background(), Logger: discardLogger()}

	params.Config = &config.Config{Mail: &config.MailConfig{Provider: "log"}}
	mailer, err := NewMailer(params)
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, mailer)

	params.Config = &config.Config{Mail: &config.MailConfig{Provider: "carrier-pigeon"}}
	_, err = NewMailer(params)
	assert.ErrorContains(t, err, "unknown mail provider")
}

type recordingMailer struct {
	mu     sync.Mutex
	sent   []service.Mail
	ctxErr error
	fail   bool
}

func (m *recordingMailer) Send(ctx context.Context, mail service.Mail) (*service.MailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, mail)
	m.ctxErr = ctx.Err()
	if m.fail {
		return nil, errors.New("smtp down")
	}

	return &service.MailResult{Success: true, MessageID: "m-1"}, nil
}

func TestAsyncDispatcher_SurvivesCancelledRequest(t *testing.T) {
	mailer := &recordingMailer{}
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())
	d := newAsyncDispatcher(mailer, discardLogger(), m, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	d.Dispatch(ctx, service.Mail{To: "a@example.com", Subject: "s"})
	cancel()
	d.wait(context.Background())

	require.Len(t, mailer.sent, 1)
	assert.NoError(t, mailer.ctxErr)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.OutcomeSent)), 0)
}

func TestAsyncDispatcher_CountsFailures(t *testing.T) {
	mailer := &recordingMailer{fail: true}
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())
	d := newAsyncDispatcher(mailer, discardLogger(), m, time.Second)

	d.Dispatch(context.Background(), service.Mail{To: "a@example.com"})
	d.Dispatch(context.Background(), service.Mail{To: "b@example.com"})
	d.wait(context.Background())

	assert.InDelta(t, 2, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.OutcomeFailed)), 0)
}

func TestMailTemplates(t *testing.T) {
	templates := NewMailTemplates(&config.Config{Mail: &config.MailConfig{LoginURL: "https://app.example.com/login"}})

	mail, err := templates.Welcome(service.WelcomeMailData{
		Name:        "Asha <b>",
		Email:       "asha@example.com",
		EmployeeID:  "EMP000007",
		OneTimePass: "Xy9#pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", mail.To)
	assert.Contains(t, mail.HTMLBody, "EMP000007")
	assert.Contains(t, mail.HTMLBody, "https://app.example.com/login")
	assert.Contains(t, mail.HTMLBody, "Asha &lt;b&gt;")

	mail, err = templates.Rejection(service.RejectionMailData{Name: "Ravi", Email: "ravi@example.com"})
	require.NoError(t, err)
	assert.Equal(t, rejectionSubject, mail.Subject)
	assert.NotContains(t, mail.HTMLBody, "Reason:")
}
