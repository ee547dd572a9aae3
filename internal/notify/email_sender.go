package notify

import (
	"fmt"
	"log/slog"
	"time"

	"tariffwatch/internal/model"
	"tariffwatch/internal/report"

	gomail "gopkg.in/mail.v2"
)

// EmailConfig holds SMTP configuration for sending emails.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Enabled reports whether every field needed to send mail is set.
func (c EmailConfig) Enabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.FromEmail != "" && c.ToEmail != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender mails analysis batches via SMTP.
type EmailSender struct {
	cfg    EmailConfig
	dialer dialer
}

// NewEmailSender creates a sender with the given SMTP configuration.
func NewEmailSender(cfg EmailConfig) *EmailSender {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second
	return &EmailSender{cfg: cfg, dialer: d}
}

// Notify is a no-op when SMTP is not configured.
func (s *EmailSender) Notify(batch model.AnalysisBatch) error {
	if !s.cfg.Enabled() {
		return nil
	}

	m := Message(s.cfg, batch)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send batch email to %s: %w", s.cfg.ToEmail, err)
	}

	slog.Info("batch email sent", "to", s.cfg.ToEmail, "timestamp", batch.Timestamp, "results", len(batch.Results))
	return nil
}

// Message builds the plain-text email for a batch.
func Message(cfg EmailConfig, batch model.AnalysisBatch) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", cfg.ToEmail)
	m.SetHeader("Subject", Subject(batch))
	m.SetBody("text/plain", report.Table(batch)+"\n"+report.Pairs(batch))
	return m
}

func Subject(batch model.AnalysisBatch) string {
	return fmt.Sprintf("Tariff news alert: %d client matches (%s)", len(batch.Results), batch.Timestamp)
}
