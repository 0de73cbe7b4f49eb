/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"
	"os"
)

// HandlerHealth implements a health check for load balancers, etc.
func (s *HServer) HandlerHealth(_ *http.Request) JResponse {
	// Check for presence of the file that indicates the server is down
	if s.DownFile != "" {
		if _, err := os.Stat(s.DownFile); err == nil {
			return JResponse{
				HTTPCode: http.StatusServiceUnavailable,
				JSONData: Response{Success: false, Message: "server is shutting down", Status: http.StatusServiceUnavailable}}
		}
	}
	return JResponse{
		HTTPCode: http.StatusOK,
		JSONData: Response{Success: true, Message: "health check ok", Status: http.StatusOK}}
}

func (s *HServer) Handler401(_ *http.Request) JResponse {
	s.PenaltyBox()
	return Error(http.StatusUnauthorized, "not authorized")
}

func (s *HServer) Handler404(_ *http.Request) JResponse {
	s.PenaltyBox()
	return Error(http.StatusNotFound, "object does not exist")
}

func (s *HServer) Handler405(_ *http.Request) JResponse {
	s.PenaltyBox()
	return Error(http.StatusMethodNotAllowed, "method not allowed")
}

func (s *HServer) Handler429(_ *http.Request) JResponse {
	return Error(http.StatusTooManyRequests, "Too many requests, please try again later")
}

// Error returns a JSON error envelope with the given status
func Error(code int, message string) JResponse {
	return JResponse{
		HTTPCode: code,
		JSONData: Response{Success: false, Message: message, Status: code}}
}
