package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"medrep/config"
	"medrep/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	welcomeSubject   = "Welcome to the field force: your account is ready"
	rejectionSubject = "Update on your MR application"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Your account is ready</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Welcome, {{.Name}}</h2>
  <p>Your application has been approved and an MR account has been created for you.</p>
  <table style="background: #f8f9fa; padding: 15px; border-radius: 4px;">
    <tr><td><strong>Employee ID</strong></td><td>{{.EmployeeID}}</td></tr>
    <tr><td><strong>Login email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>One-time password</strong></td><td style="font-family: monospace;">{{.OneTimePass}}</td></tr>
  </table>
  <p>You will be asked to choose a new password after your first login.</p>
  {{if .LoginURL}}<p><a href="{{.LoginURL}}">Sign in</a></p>{{end}}
</body>
</html>`))

var rejectionTemplate = template.Must(template.New("rejection").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Application update</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Hello {{.Name}},</h2>
  <p>Thank you for your interest. After review, we are unable to approve your MR application at this time.</p>
  {{if .Reason}}<p><strong>Reason:</strong> {{.Reason}}</p>{{end}}
  <p>You are welcome to apply again in the future.</p>
</body>
</html>`))

var statusTemplate = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Resource}} update</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Hello {{.Name}},</h2>
  <p>{{.Resource}} <strong>{{.Reference}}</strong> is now <strong>{{.Status}}</strong>.</p>
  {{if .Reason}}<p><strong>Note:</strong> {{.Reason}}</p>{{end}}
  {{if .LoginURL}}<p><a href="{{.LoginURL}}">Open the app</a></p>{{end}}
</body>
</html>`))

type mailTemplates struct {
	loginURL string
}

// NewMailTemplates renders emails with the configured login link.
func NewMailTemplates(cfg *config.Config) service.MailTemplates {
	var loginURL string
	if cfg.Mail != nil {
		loginURL = cfg.Mail.LoginURL
	}

	return &mailTemplates{loginURL: loginURL}
}

func (t *mailTemplates) Welcome(data service.WelcomeMailData) (service.Mail, error) {
	body, err := render(welcomeTemplate, struct {
		service.WelcomeMailData
		LoginURL string
	}{data, t.loginURL})
	if err != nil {
		return service.Mail{}, err
	}

	return service.Mail{To: data.Email, Subject: welcomeSubject, HTMLBody: body}, nil
}

func (t *mailTemplates) Rejection(data service.RejectionMailData) (service.Mail, error) {
	body, err := render(rejectionTemplate, data)
	if err != nil {
		return service.Mail{}, err
	}

	return service.Mail{To: data.Email, Subject: rejectionSubject, HTMLBody: body}, nil
}

func (t *mailTemplates) StatusUpdate(data service.StatusMailData) (service.Mail, error) {
	body, err := render(statusTemplate, struct {
		service.StatusMailData
		LoginURL string
	}{data, t.loginURL})
	if err != nil {
		return service.Mail{}, err
	}

	subject := fmt.Sprintf("%s %s is %s", data.Resource, data.Reference, data.Status)

	return service.Mail{To: data.Email, Subject: subject, HTMLBody: body}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render %s mail", tmpl.Name())
	}

	return buf.String(), nil
}
