/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrAuthenticationFailed is returned when a rejected request could not be
	// recovered by refreshing the token. The auth error callback has fired.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrNoRefreshToken = errors.New("no refresh token available")
	ErrRefreshFailed  = errors.New("failed to refresh token")
)

// HTTPError is returned for any non-2xx response that is not resolved by a refresh
type HTTPError struct {
	Status  int
	Payload json.RawMessage // JSON object, always with "status" set
	Message string
}

func (e *HTTPError) Error() string {
	fallback := fmt.Sprintf("HTTP %d", e.Status)
	if e.Message == "" || e.Message == fallback {
		return fallback
	}
	return fmt.Sprintf("%s: %s", fallback, e.Message)
}

// newHTTPError builds an HTTPError from a response body. A body that is
// not a JSON object is replaced with {"message":"HTTP <n>","status":<n>}.
func newHTTPError(status int, body []byte) *HTTPError {
	fallback := fmt.Sprintf("HTTP %d", status)

	var fields map[string]json.RawMessage
	if !gjson.ValidBytes(body) || json.Unmarshal(body, &fields) != nil || fields == nil {
		fields = map[string]json.RawMessage{
			"message": json.RawMessage(fmt.Sprintf("%q", fallback)),
		}
	}
	fields["status"] = json.RawMessage(fmt.Sprintf("%d", status))

	payload, err := json.Marshal(fields)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"message":%q,"status":%d}`, fallback, status))
	}

	message := gjson.GetBytes(payload, "message").String()
	if message == "" {
		message = fallback
	}

	return &HTTPError{Status: status, Payload: payload, Message: message}
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}
