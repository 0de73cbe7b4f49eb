//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package mailer

import (
	"context"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// LogMailer writes messages to the log instead of sending them
type LogMailer struct {
	logger interfaces.Logger
}

func NewLog(logger interfaces.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info(2401, "email not sent, mailer is log", fields.NewFields(
		fields.NewField("to", msg.To),
		fields.NewField("subject", msg.Subject),
		fields.NewField("body", msg.Body)))
	return nil
}
