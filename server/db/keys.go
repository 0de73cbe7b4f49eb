/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"regexp"
	"strings"
)

var invalidKeyChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// validateKey removes any invalid characters (anything other than a-z, A-Z, 0-9, -) from the input string
func validateKey(key string) string {
	return invalidKeyChars.ReplaceAllString(key, "")
}

// emailKey normalizes an email address for the email index
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
