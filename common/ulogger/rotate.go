/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rotateLogs renames the log file to <logfile>-YYYYMMDD when the date
// changes and prunes rotated files past the retention window.
// The caller must hold u.mu.
func (u *ULogger) rotateLogs() error {
	if u.logfile == "" || u.fileHandle == nil {
		return nil
	}

	today := u.clock.Now().Format(dateFormat)
	if u.currentLogDate == today {
		return nil
	}

	previous := u.currentLogDate
	_ = u.fileHandle.Sync()
	_ = u.fileHandle.Close()
	u.fileHandle = nil

	if err := os.Rename(u.logfile, fmt.Sprintf("%s-%s", u.logfile, previous)); err != nil {
		u.logConsole = true
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		u.logConsole = true
		return fmt.Errorf("failed to open new log file after rotating: %w", err)
	}
	u.fileHandle = fh
	u.currentLogDate = today

	if err = u.deleteOldLogs(); err != nil {
		return fmt.Errorf("failed to delete old log files: %w", err)
	}
	return nil
}

// deleteOldLogs deletes rotated log files older than retainDays
func (u *ULogger) deleteOldLogs() error {
	if u.retainDays <= 1 {
		return nil
	}

	cutoff := u.clock.Now().AddDate(0, 0, -u.retainDays).Format(dateFormat)
	dir := filepath.Dir(u.logfile)
	prefix := filepath.Base(u.logfile) + "-"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		date := strings.TrimPrefix(name, prefix)
		if len(date) != len(dateFormat) {
			continue
		}
		if date < cutoff {
			if err = os.Remove(filepath.Join(dir, name)); err != nil {
				return fmt.Errorf("failed to delete old log file: %w", err)
			}
		}
	}
	return nil
}
