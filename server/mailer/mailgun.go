//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package mailer

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

type MailgunMailer struct {
	from string
	mg   *mailgun.MailgunImpl
}

// NewMailgun returns a Mailgun mailer. An empty apiBase uses the Mailgun default.
func NewMailgun(from, domain, apiKey, apiBase string) *MailgunMailer {
	mg := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		mg.SetAPIBase(apiBase)
	}
	return &MailgunMailer{from: from, mg: mg}
}

func (m *MailgunMailer) Send(ctx context.Context, msg Message) error {
	message := m.mg.NewMessage(m.from, msg.Subject, msg.Body, msg.To)
	if _, _, err := m.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun: %w", err)
	}
	return nil
}
