// Package mailer is a small SMTP sender used for draw reminders.
package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rand-lottery/backoffice/src/api/config"
)

var ErrNotConfigured = errors.New("smtp settings are not configured")

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one plain-text message to every non-empty recipient.
func (m *Mailer) Send(subject string, recipients []string, body string) error {
	to := make([]string, 0, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r != "" {
			to = append(to, r)
		}
	}
	if len(to) == 0 {
		return nil
	}
	if m.cfg.Host == "" || m.cfg.FromAddress == "" {
		return ErrNotConfigured
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.FromAddress,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	client, err := m.dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.cfg.UseTLS && !m.cfg.UseSSL {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
				return err
			}
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.cfg.FromAddress); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (m *Mailer) dial(addr string) (*smtp.Client, error) {
	if m.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, m.cfg.Host)
	}
	return smtp.Dial(addr)
}
