/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
)

var authFailResponse = schema.API401{
	Success: false,
	Message: "Authentication failed",
	Status:  http.StatusUnauthorized}

// NewAuthFunc returns an AuthFunc that accepts an access token from the
// Authorization header or, failing that, the access token cookie
func (a *API) NewAuthFunc() userver.AuthFunc {
	return func(req *http.Request) (bool, []byte, any) {

		// Set up log fields of interest
		logFields := fields.NewFields(fields.NewField("src_ip", userver.RemoteIP(req)))

		tokenString := bearer(req)
		if tokenString == "" {
			a.logger.Debug(2832, "authentication failure: no access token", logFields)
			return false, a.AuthFailMessage(false), nil
		}

		// Validate the access token and check the account
		info, err := a.data.Authenticate(tokenString)
		if err != nil {

			// Check if the token is expired
			if errors.Is(err, jwt.ErrTokenExpired) {
				a.logger.Info(2833, "authentication expired", logFields)
				return false, a.AuthFailMessage(true), nil
			}
			logFields.Append(fields.Error(err))
			a.logger.Warning(2834, "authentication failure", logFields)
			return false, a.AuthFailMessage(false), nil
		}

		logFields.Append(fields.NewField("id", info.UserID), fields.NewField("role", info.Role))
		a.logger.Debug(2835, "authentication success", logFields)
		return true, nil, info
	}
}

// bearer extracts the access token from the request
func bearer(req *http.Request) string {
	if h := req.Header.Get("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		return ""
	}
	if c, err := req.Cookie(schema.CookieAccessToken); err == nil {
		return c.Value
	}
	return ""
}

// AuthFailMessage returns a generic response for authentication failures
// The only variation is for expired tokens
func (a *API) AuthFailMessage(expired bool) []byte {

	// Start with a standard auth failure response
	msg := authFailResponse

	// If expired, update the response
	if expired {
		msg.Message = "Token expired"
	}

	// Marshal the response
	response, err := json.Marshal(msg)
	if err != nil {
		a.logger.Errorf(2839, "error marshalling failure response: %s", err.Error())
		return nil
	}
	return response
}

// GetAuthDetails returns the caller attached by the AuthFunc
func GetAuthDetails(req *http.Request) *data.AuthInfo {
	details, ok := userver.AuthDetails(req).(*data.AuthInfo)
	if !ok {
		return &data.AuthInfo{}
	}
	return details
}

// admin wraps a handler so that only administrators reach it
func (a *API) admin(h userver.JHandler) userver.JHandler {
	return func(req *http.Request) userver.JResponse {
		info := GetAuthDetails(req)
		if !info.IsAdmin() {
			a.logger.Warning(2836, "authorization failure: admin role required",
				fields.NewFields(
					fields.NewField("src_ip", userver.RemoteIP(req)),
					fields.NewField("id", info.UserID),
					fields.NewField("uri", req.URL.Path)))
			return a.fail(req, data.ErrForbidden)
		}
		return h(req)
	}
}
