package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/EasonYD88/SURF-application-website/config"
	"github.com/EasonYD88/SURF-application-website/models"
)

// Mailer sends outgoing mail over the configured SMTP account.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Configured reports whether an SMTP host is set; mail endpoints and the
// follow-up worker stay inert without one.
func (m *Mailer) Configured() bool {
	return m.host != ""
}

// Send delivers one message. Body is HTML.
func (m *Mailer) Send(to []string, cc []string, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("SMTP is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	if len(cc) > 0 {
		msg.SetHeader("Cc", cc...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Embedded email templates
var digestTemplate = template.Must(template.New("followup_digest").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Follow-up reminders</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .item { margin: 12px 0; padding: 10px; border-left: 3px solid #3498db; background: #f8f9fa; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Outreach follow-ups due</h2>
    </div>

    {{range .Due}}
    <div class="item">
        <strong>{{.PIName}}</strong> ({{.Institution}})<br>
        Follow-up due: {{.NextFollowUpDate}}<br>
        {{if .NextAction}}Next action: {{.NextAction}}{{end}}
    </div>
    {{end}}

    <div class="footer">
        <p>Sent by your application tracker on {{.Now}}.</p>
    </div>
</body>
</html>`))

// RenderFollowUpDigest builds the reminder email body for contacts whose
// follow-up date has passed without a reply.
func RenderFollowUpDigest(due []models.Outreach) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, struct {
		Due []models.Outreach
		Now string
	}{
		Due: due,
		Now: time.Now().Format("2006-01-02 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render digest template: %w", err)
	}
	return buf.String(), nil
}
