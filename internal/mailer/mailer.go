// Package mailer delivers transactional mail over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"workwire/internal/config"
)

// Mailer is implemented by anything that can deliver a plain-text email.
// Handlers depend on this interface so tests can capture outgoing mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through the configured SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	email    string
	password string
	fromName string
	fromAddr string
}

// NewSMTPMailer builds a mailer from application config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		email:    cfg.SMTPEmail,
		password: cfg.SMTPPassword,
		fromName: cfg.FromName,
		fromAddr: cfg.FromEmail,
	}
}

// Send delivers a single plain-text message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.fromName, m.fromAddr, to, subject, body)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.email, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.fromAddr, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
