package service

import (
	"context"
)

// Mail is an outbound HTML email.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailResult reports the outcome of one send.
type MailResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Mailer delivers email through a provider.
type Mailer interface {
	Send(ctx context.Context, mail Mail) (*MailResult, error)
}

// NotificationDispatcher sends mail after the triggering change has committed.
// Dispatch never blocks on delivery and never reports delivery failures to the caller.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, mail Mail)
}

// WelcomeMailData fills the onboarding email sent when an MR request is approved.
type WelcomeMailData struct {
	Name        string
	Email       string
	EmployeeID  string
	OneTimePass string
}

// RejectionMailData fills the email sent when an MR request is rejected.
type RejectionMailData struct {
	Name   string
	Email  string
	Reason string
}

// StatusMailData fills the email telling an MR that one of their records changed state.
type StatusMailData struct {
	Name      string
	Email     string
	Resource  string
	Reference string
	Status    string
	Reason    string
}

// MailTemplates renders the transactional emails.
type MailTemplates interface {
	Welcome(data WelcomeMailData) (Mail, error)
	Rejection(data RejectionMailData) (Mail, error)
	StatusUpdate(data StatusMailData) (Mail, error)
}
