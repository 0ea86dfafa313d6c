package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer forwards messages to the transactional-email collaborator. Injected
// so tests can capture sends without a network.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer is the production implementation.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.Host == "" || m.From == "" {
		return fmt.Errorf("mailer is not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String()))
}
