/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"strings"
)

// SingleLine normalizes a string for logging:
//   - trims leading/trailing whitespace
//   - replaces newlines with a visible marker
//   - collapses runs of whitespace into single spaces
func SingleLine(s string) string {
	if s == "" {
		return s
	}

	// Trim outer whitespace first
	s = strings.TrimSpace(s)

	// Replace CRLF / LF / CR with a marker
	replacer := strings.NewReplacer(
		"\r\n", " ⏎ ",
		"\n", " ⏎ ",
		"\r", " ⏎ ",
	)

	s = replacer.Replace(s)

	// Collapse any remaining runs of whitespace
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
