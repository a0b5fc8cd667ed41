package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"minops/internal/metrics"
)

// Mailer delivers account emails. Implementations must be safe for
// concurrent use. Callers treat send failures as non-fatal: they are
// logged and the originating operation continues.
type Mailer interface {
	SendVerification(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
}

// SMTPMailer sends plain-text mail over a single SMTP endpoint.
type SMTPMailer struct {
	addr    string
	from    string
	baseURL string
}

// NewSMTPMailer builds a mailer pointed at addr (host:port).
func NewSMTPMailer(addr, from, baseURL string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from, baseURL: baseURL}
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, token string) error {
	subject := "Verify your minops account"
	body := fmt.Sprintf("Open this link to verify your account:\r\n%s/api/auth/verify?token=%s\r\n", m.baseURL, token)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	subject := "Reset your minops password"
	body := fmt.Sprintf("Open this link to reset your password:\r\n%s/reset-password?token=%s\r\n", m.baseURL, token)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		metrics.MailSendFailures.Inc()
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer is the development mailer: it logs instead of sending.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer builds a mailer that only logs.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerification(ctx context.Context, to, token string) error {
	m.logger.Info("verification mail (not sent)", zap.String("to", to), zap.String("token", token))
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	m.logger.Info("password reset mail (not sent)", zap.String("to", to), zap.String("token", token))
	return nil
}
