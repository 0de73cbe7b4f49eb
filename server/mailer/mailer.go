//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package mailer delivers verification codes and reset tokens
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Func adapts a function to the Mailer interface
type Func func(ctx context.Context, msg Message) error

func (f Func) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// New returns the mailer selected by the server configuration
func New(conf *global.ServerConfig, logger interfaces.Logger) (Mailer, error) {
	from := conf.SC.Get(global.ConfigMailFrom).String()

	switch kind := conf.SC.Get(global.ConfigMailer).String(); kind {
	case global.MailerLog, "":
		return NewLog(logger), nil
	case global.MailerSMTP:
		return NewSMTP(from,
			conf.SC.Get(global.ConfigSMTPHost).String(),
			conf.SC.Get(global.ConfigSMTPPort).Int(),
			conf.SC.Get(global.ConfigSMTPUser).String(),
			conf.SC.Get(global.ConfigSMTPPassword).String()), nil
	case global.MailerMailgun:
		domain := conf.SC.Get(global.ConfigMailgunDomain).String()
		key := conf.SC.Get(global.ConfigMailgunKey).String()
		if domain == "" || key == "" {
			return nil, fmt.Errorf("mailgun requires %s and %s", global.ConfigMailgunDomain, global.ConfigMailgunKey)
		}
		return NewMailgun(from, domain, key, conf.SC.Get(global.ConfigMailgunBase).String()), nil
	default:
		return nil, fmt.Errorf("unknown mailer %q", kind)
	}
}

// VerificationMessage builds the email carrying a verification code
func VerificationMessage(to, code string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Verify your Deadlink Watchdog account",
		Body: fmt.Sprintf("Your verification code is %s\n\nThe code expires in %s.\n",
			code, ttl.Round(time.Minute)),
	}
}

// ResetMessage builds the email carrying a password reset token
func ResetMessage(to, token string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Reset your Deadlink Watchdog password",
		Body: fmt.Sprintf("Use this token to reset your password:\n\n%s\n\nThe token expires in %s. "+
			"If you did not ask for a reset, ignore this message.\n", token, ttl.Round(time.Minute)),
	}
}
