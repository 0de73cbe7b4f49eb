/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
)

type contextKey int

const authDetailsKey contextKey = 0

// ResponseWriterWrapper wraps a http.ResponseWriter to capture the status code
type ResponseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code
func (rw *ResponseWriterWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AuthDetails returns the value the route's AuthFunc attached to the request
func AuthDetails(req *http.Request) any {
	return req.Context().Value(authDetailsKey)
}

// Wrapper wraps a http.Handler to add standard headers, logging, rate
// limiting and optionally authentication
func (s *HServer) Wrapper(handlerName string, h http.Handler, authFunc AuthFunc, limited bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {

		// Get the start time and source IP
		startTime := time.Now()
		src := RemoteIP(req)

		// Set requested reply headers
		for _, header := range s.Headers {
			w.Header().Set(header.Key, header.Value)
		}

		if limited && !s.allow(w, req, src, handlerName) {
			return
		}

		// Check for authentication
		if authFunc != nil {
			authenticated, failMsg, details := authFunc(req)
			if !authenticated {
				s.Logger.Warning(s.SEid+12,
					"authentication failure",
					fields.NewFields(
						fields.NewField("src_ip", src),
						fields.NewField("method", req.Method),
						fields.NewField("uri", req.URL.Path),
						fields.NewField("handler", handlerName)))

				// Impose a time penalty for failed authentication
				s.PenaltyBox()

				// Return unauthorized status code
				w.Header().Set("Content-Type", "application/json; charset=UTF-8")
				w.WriteHeader(http.StatusUnauthorized)

				// If a failure message is provided, send it and ignore any errors
				if failMsg != nil {
					_, _ = w.Write(failMsg)
				}
				return
			}

			ctx := context.WithValue(req.Context(), authDetailsKey, details)
			req = req.WithContext(ctx)
		}

		// Create a context with the handler timeout
		ctx, cancel := context.WithTimeout(req.Context(), time.Duration(s.HandlerTimeout)*time.Second)
		defer cancel()

		// Create a new request with the timeout context
		req = req.WithContext(ctx)

		// Wrap the ResponseWriter to capture the status code
		rw := &ResponseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		// Call the actual handler to service the client
		h.ServeHTTP(rw, req)

		// Check if the context timed out
		timeout := errors.Is(ctx.Err(), context.DeadlineExceeded)

		// Get duration of request
		duration := time.Since(startTime)

		// Log the path only to avoid logging confidential query parameters
		logFields := fields.NewFields(
			fields.NewField("code", rw.statusCode),
			fields.NewField("src_ip", src),
			fields.NewField("method", req.Method),
			fields.NewField("uri", req.URL.Path),
			fields.NewField("handler", handlerName),
			fields.NewField("duration", fmt.Sprintf("%.4f", duration.Seconds())))

		if timeout {
			logFields.Append(fields.NewField("timeout", "true"))
		}

		// Log the event
		s.Logger.Info(s.SEid+10, "HTTP", logFields)
	})
}

// allow takes a token for src and writes a 429 when none are left
func (s *HServer) allow(w http.ResponseWriter, req *http.Request, src, handlerName string) bool {
	if s.limiter == nil {
		return true
	}

	_, _, reset, ok, err := s.limiter.Take(req.Context(), src)
	if err != nil {
		s.Logger.Error(s.SEid+13, "rate limiter error",
			fields.NewFields(fields.Error(err), fields.NewField("handler", handlerName)))
		return true
	}
	if ok {
		return true
	}

	wait := time.Until(time.Unix(0, int64(reset)))
	if wait < time.Second {
		wait = time.Second
	}
	s.Logger.Warning(s.SEid+14, "rate limit exceeded",
		fields.NewFields(
			fields.NewField("src_ip", src),
			fields.NewField("uri", req.URL.Path),
			fields.NewField("handler", handlerName)))

	w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())))
	s.JWrapper(handlerName, s.Handler429).ServeHTTP(w, req)
	return false
}

// RemoteIP returns the remote IP address of the client, excluding the port number.
// The first X-Forwarded-For entry wins when a proxy supplied one.
func RemoteIP(req *http.Request) string {

	// Check for the X-Forwarded-For header first
	forwarded := req.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// The X-Forwarded-For header can contain multiple IPs, take the first one
		ip := strings.Split(forwarded, ",")[0]
		return strings.TrimSpace(ip)
	}

	// Fallback to using the remote address
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr // Return the full address if splitting fails
	}
	return host
}
