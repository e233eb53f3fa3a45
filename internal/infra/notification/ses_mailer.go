package notification

import (
	"context"

	"medrep/config"
	"medrep/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/pkg/errors"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the subset of the SESv2 client the mailer calls.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesMailer struct {
	client  sesAPI
	from    string
	replyTo string
}

// NewSESMailer builds an SESv2 client from the default AWS credential chain.
func NewSESMailer(ctx context.Context, cfg *config.MailConfig) (service.Mailer, error) {
	if cfg.From == "" {
		return nil, errors.New("mail.from is required for the ses provider")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return newSESMailer(sesv2.NewFromConfig(awsCfg), cfg), nil
}

func newSESMailer(client sesAPI, cfg *config.MailConfig) *sesMailer {
	return &sesMailer{
		client:  client,
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
	}
}

// Send delivers one HTML email through SES.
func (m *sesMailer) Send(ctx context.Context, mail service.Mail) (*service.MailResult, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination:      &sestypes.Destination{ToAddresses: []string{mail.To}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(mail.Subject), Charset: aws.String(charsetUTF8)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(mail.HTMLBody), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	}
	if m.replyTo != "" {
		input.ReplyToAddresses = []string{m.replyTo}
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return &service.MailResult{Success: false, Error: err.Error()}, errors.Wrap(err, "ses send email")
	}

	return &service.MailResult{Success: true, MessageID: aws.ToString(out.MessageId)}, nil
}
