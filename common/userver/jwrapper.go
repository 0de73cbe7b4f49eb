/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"encoding/json"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
)

// JWrapper wraps a JHandler to a standard http.Handler.
// It sets any cookies, marshals the JSON data and logs any errors.
// This allows APIs to avoid providing http.Handler directly.
func (s *HServer) JWrapper(name string, h JHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {

		// Call the actual handler to service the client
		respData := h(req)

		for _, c := range respData.Cookies {
			http.SetCookie(w, c)
		}

		// Set reply headers
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")

		// Send the response
		w.WriteHeader(respData.HTTPCode)
		if respData.JSONData == nil {
			return
		}
		if err := json.NewEncoder(w).Encode(respData.JSONData); err != nil {
			s.Logger.Error(s.SEid+11,
				"Error writing response",
				fields.NewFields(
					fields.Error(err),
					fields.NewField("src_ip", RemoteIP(req)),
					fields.NewField("method", req.Method),
					fields.NewField("uri", req.URL.Path),
					fields.NewField("handler", name)))
		}
	})
}
