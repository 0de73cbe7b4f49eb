//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package mailer

import (
	"context"
	"fmt"

	"gopkg.in/mail.v2"
)

type SMTPMailer struct {
	from   string
	dialer *mail.Dialer
}

func NewSMTP(from, host string, port int, user, password string) *SMTPMailer {
	d := mail.NewDialer(host, port, user, password)
	if user != "" {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}
	return &SMTPMailer{from: from, dialer: d}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(m.message(msg)); err != nil {
		return fmt.Errorf("smtp %s: %w", m.dialer.Host, err)
	}
	return nil
}

func (m *SMTPMailer) message(msg Message) *mail.Message {
	out := mail.NewMessage()
	out.SetHeader("From", m.from)
	out.SetHeader("To", msg.To)
	out.SetHeader("Subject", msg.Subject)
	out.SetBody("text/plain", msg.Body)
	return out
}
