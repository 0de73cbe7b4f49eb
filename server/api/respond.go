//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
)

const (
	maxBody  = 1 << 20 // bytes
	maxLimit = 100     // items per page
)

var errBody = errors.New("invalid request body")

// decode reads the JSON body into v. An empty body leaves v unchanged.
func decode(req *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBody))
	if err != nil {
		return errBody
	}
	if len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, v); err != nil {
		return errBody
	}
	return nil
}

func ok(v any) userver.JResponse {
	return userver.JResponse{HTTPCode: http.StatusOK, JSONData: v}
}

func created(v any) userver.JResponse {
	return userver.JResponse{HTTPCode: http.StatusCreated, JSONData: v}
}

func message(msg string) userver.JResponse {
	return ok(schema.MessageResponse{Success: true, Message: msg})
}

func badBody() userver.JResponse {
	return userver.JResponse{
		HTTPCode: http.StatusBadRequest,
		JSONData: schema.ErrorResponse{Success: false, Message: "Invalid request body", Status: http.StatusBadRequest}}
}

// fail converts err to an error response. Validation failures carry the
// per-field messages and server errors are logged.
func (a *API) fail(req *http.Request, err error) userver.JResponse {
	status := data.Status(err)
	resp := schema.ErrorResponse{Success: false, Message: data.Message(err), Status: status}

	var v *schema.ValidationError
	if errors.As(err, &v) {
		resp.Errors = v.Errors
	}

	if status >= http.StatusInternalServerError {
		a.logger.Error(2510, "request failed",
			fields.NewFields(
				fields.Error(err),
				fields.NewField("src_ip", userver.RemoteIP(req)),
				fields.NewField("method", req.Method),
				fields.NewField("uri", req.URL.Path)))
	}
	return userver.JResponse{HTTPCode: status, JSONData: resp}
}

// page reads the page and limit query parameters
func page(req *http.Request) data.Page {
	p := data.Page{
		Page:  userver.QueryInt(req, schema.QueryPage, 1, 1),
		Limit: userver.QueryInt(req, schema.QueryLimit, schema.DefaultPageSize, 1),
	}
	p.Limit = min(p.Limit, maxLimit)
	return p
}

func query(req *http.Request, key string) string {
	return req.URL.Query().Get(key)
}

// intParam returns 0 for an absent parameter and false when it is not an integer
func intParam(req *http.Request, key string) (int, bool) {
	v := query(req, key)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func badQuery(key string) userver.JResponse {
	return userver.JResponse{
		HTTPCode: http.StatusBadRequest,
		JSONData: schema.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Status:  http.StatusBadRequest,
			Errors:  map[string]string{key: "Must be a whole number"}}}
}
