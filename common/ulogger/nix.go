//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

//go:build !windows

package ulogger

const lineEnding = "\n"

// osLogger is implemented by the Windows event log writer only
type osLogger interface {
	write(level, message string)
	close()
}

func (u *ULogger) osOpen() osLogger {
	return nil
}
