/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/UnifyEM/deadlink-watchdog/common/apiclient"
)

// ErrorWrapper is a simple wrapper for CLI error handling.
// If there is an error, it prints it to stderr.
func ErrorWrapper(err error) {
	writeError(os.Stderr, err)
}

func writeError(w io.Writer, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(w, "Error: %s\n", Describe(err))
	}
}

// Describe turns an error into a message for the console. Server side
// validation failures are listed one field per line.
func Describe(err error) string {
	if errors.Is(err, apiclient.ErrAuthenticationFailed) {
		return "session expired, please log in again"
	}

	var he *apiclient.HTTPError
	if !errors.As(err, &he) {
		return err.Error()
	}

	msg := he.Error()
	problems := gjson.GetBytes(he.Payload, "errors")
	if !problems.IsObject() {
		return msg
	}

	var lines []string
	problems.ForEach(func(key, value gjson.Result) bool {
		lines = append(lines, fmt.Sprintf("  %s: %s", key.String(), value.String()))
		return true
	})
	sort.Strings(lines)
	return msg + "\n" + strings.Join(lines, "\n")
}
