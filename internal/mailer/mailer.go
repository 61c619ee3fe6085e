package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"portfolio-backend/internal/config"
)

// Mailer sends transactional mail. Only the password-reset flow uses it.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a plain-text message. Without SMTP credentials configured it
// logs the message instead, so local development does not need a mail server.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		log.Printf("SMTP not configured, would have sent to %s: %s", to, subject)
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		from, to, subject, body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}
