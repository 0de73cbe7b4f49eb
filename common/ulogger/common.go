/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package ulogger implements interfaces.Logger with an optional log file
// (rotated daily), console output, and the Windows event log.
package ulogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*ULogger)(nil)

const dateFormat = "20060102"

// ULogger writes formatted entries to a file and/or a console writer.
// It is safe for concurrent use.
type ULogger struct {
	mu               sync.Mutex
	clock            clockwork.Clock
	fileHandle       *os.File
	console          io.Writer
	logfile          string
	logConsole       bool
	logWindowsEvents bool // Ignored on non-Windows systems
	debug            bool
	prefix           string
	retainDays       int
	currentLogDate   string
	osLog            osLogger
}

// Option is a function that configures a ULogger
type Option func(*ULogger) error

// New creates a new instance of ULogger with the provided options
func New(options ...Option) (interfaces.Logger, error) {
	u := &ULogger{
		retainDays: 30,
		clock:      clockwork.NewRealClock(),
		console:    os.Stdout,
	}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}

	if err := u.open(); err != nil {
		return nil, err
	}
	return u, nil
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *ULogger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file
func WithLogFile(logfile string) Option {
	return func(u *ULogger) error {
		u.logfile = logfile
		return nil
	}
}

// WithLogStdout enables or disables console logging
func WithLogStdout(logStdout bool) Option {
	return func(u *ULogger) error {
		u.logConsole = logStdout
		return nil
	}
}

// WithWriter replaces the console writer (stdout by default). The CLI
// uses stderr so that command output stays machine readable.
func WithWriter(w io.Writer) Option {
	return func(u *ULogger) error {
		if w == nil {
			return fmt.Errorf("writer is nil")
		}
		u.console = w
		return nil
	}
}

// WithWindowsEvents enables or disables logging to the windows event log
func WithWindowsEvents(logWindowsEvents bool) Option {
	return func(u *ULogger) error {
		u.logWindowsEvents = logWindowsEvents
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *ULogger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain logs
func WithRetention(retainDays int) Option {
	return func(u *ULogger) error {
		u.retainDays = retainDays
		return nil
	}
}

// WithClock replaces the wall clock used for timestamps and rotation
func WithClock(clock clockwork.Clock) Option {
	return func(u *ULogger) error {
		if clock == nil {
			return fmt.Errorf("clock is nil")
		}
		u.clock = clock
		return nil
	}
}

// open prepares the log file, if any, and the OS-specific logger
func (u *ULogger) open() error {
	u.osLog = u.osOpen()

	if u.logfile == "" {
		// If no log file is specified, force console logging
		u.logConsole = true
		return nil
	}

	u.logfile = filepath.Clean(u.logfile)
	if err := os.MkdirAll(filepath.Dir(u.logfile), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Rotation is keyed on the date the existing file was last written
	if fileInfo, err := os.Stat(u.logfile); err == nil {
		u.currentLogDate = fileInfo.ModTime().Format(dateFormat)
	} else {
		u.currentLogDate = u.clock.Now().Format(dateFormat)
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		// If unable to log to file, force console logging
		u.fileHandle = nil
		u.logConsole = true
		return nil
	}
	u.fileHandle = fh
	return nil
}

// Close flushes and closes the logger
func (u *ULogger) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.osLog != nil {
		u.osLog.close()
	}
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
		u.fileHandle = nil
	}
}

// formatMessage formats the log message with a timestamp
func (u *ULogger) formatMessage(eid uint32, level string, message string, fields interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		u.clock.Now().Format("2006-01-02 15:04:05"),
		u.prefix, level, eid, message)

	if fields != nil {
		if text := fields.ToText(); text != "" {
			msg += ": " + text
		}
	}
	return msg
}

// writeLog writes a log message and handles rotation if necessary
func (u *ULogger) writeLog(eid uint32, level string, message string, fields interfaces.Fields) {
	if level == "DEBUG" && !u.debug {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.rotateLogs(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	tmp := u.formatMessage(eid, level, message, fields) + lineEnding

	if u.fileHandle != nil {
		_, _ = u.fileHandle.WriteString(tmp)
	}

	if u.logConsole {
		_, _ = io.WriteString(u.console, tmp)
	}

	if u.osLog != nil {
		u.osLog.write(level, tmp)
	}
}

// Debug logs a debug message
func (u *ULogger) Debug(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "DEBUG", message, fields)
}

// Info logs an informational message
func (u *ULogger) Info(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "INFO", message, fields)
}

// Warning logs a warning message
func (u *ULogger) Warning(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "WARNING", message, fields)
}

// Error logs an error message
func (u *ULogger) Error(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "ERROR", message, fields)
}

// Fatal logs a fatal error message
func (u *ULogger) Fatal(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "FATAL", message, fields)
}

func (u *ULogger) Debugf(eid uint32, format string, v ...any) {
	if u.debug {
		u.writeLog(eid, "DEBUG", fmt.Sprintf(format, v...), nil)
	}
}

func (u *ULogger) Infof(eid uint32, format string, v ...any) {
	u.writeLog(eid, "INFO", fmt.Sprintf(format, v...), nil)
}

func (u *ULogger) Warningf(eid uint32, format string, v ...any) {
	u.writeLog(eid, "WARNING", fmt.Sprintf(format, v...), nil)
}

func (u *ULogger) Errorf(eid uint32, format string, v ...any) {
	u.writeLog(eid, "ERROR", fmt.Sprintf(format, v...), nil)
}

func (u *ULogger) Fatalf(eid uint32, format string, v ...any) {
	u.writeLog(eid, "FATAL", fmt.Sprintf(format, v...), nil)
}
