/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"errors"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
)

// @Summary User authentication
// @Description Authenticate a user and return access and refresh tokens. The tokens are also set as cookies.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body schema.LoginForm true "User credentials"
// @Success 200 {object} schema.AuthResponse "Authentication successful"
// @Failure 401 {object} schema.API401 "Authentication failed"
// @Failure 403 {object} schema.AuthResponse "Email not verified"
// @Failure 429 {object} schema.ErrorResponse "Too many requests"
// @Router /auth/login [post]
func (a *API) postLogin(req *http.Request) userver.JResponse {
	var form schema.LoginForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}

	// Information to be logged as fields
	logInfo := fields.NewFields(
		fields.NewField("src_ip", userver.RemoteIP(req)),
		fields.NewField("email", form.Email))

	auth, err := a.data.Login(req.Context(), form)
	if err != nil {
		logInfo.Append(fields.NewField("auth-result", "failed"), fields.Error(err))
		a.logger.Warning(2862, "login failed", logInfo)

		// Unverified accounts get the user so the client can offer verification
		if auth.RequiresVerification {
			return userver.JResponse{
				HTTPCode: data.Status(err),
				JSONData: schema.AuthResponse{Success: false, Message: data.Message(err), Data: auth}}
		}
		return a.fail(req, err)
	}

	logInfo.Append(fields.NewField("auth-result", "success"))
	a.logger.Info(2863, "successful login", logInfo)
	return a.authResponse("Login successful", auth)
}

// @Summary Verify email
// @Description Verify an email address with the emailed code and sign the user in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param verification body schema.VerifyEmailForm true "Email and code"
// @Success 200 {object} schema.AuthResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /auth/verify-email [post]
func (a *API) postVerifyEmail(req *http.Request) userver.JResponse {
	var form schema.VerifyEmailForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}

	auth, err := a.data.VerifyEmail(req.Context(), form)
	if err != nil {
		return a.fail(req, err)
	}
	return a.authResponse("Email verified successfully", auth)
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new access and refresh token pair. The token may be sent in the body or the refresh cookie. Each refresh token can be used once.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param refresh body schema.RefreshForm false "Refresh token"
// @Success 200 {object} schema.RefreshResponse
// @Failure 401 {object} schema.API401
// @Router /auth/refresh [post]
func (a *API) postRefresh(req *http.Request) userver.JResponse {
	var form schema.RefreshForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	if form.RefreshToken == "" {
		if c, err := req.Cookie(schema.CookieRefreshToken); err == nil {
			form.RefreshToken = c.Value
		}
	}

	logInfo := fields.NewFields(fields.NewField("src_ip", userver.RemoteIP(req)))
	if form.RefreshToken == "" {
		a.logger.Info(2864, "refresh without a token", logInfo)
		return a.fail(req, data.ErrUnauthorized)
	}

	auth, err := a.data.RefreshTokens(form.RefreshToken)
	if err != nil {
		logInfo.Append(fields.NewField("refresh-result", "failed"), fields.Error(err))
		a.logger.Warning(2865, "token refresh failed", logInfo)
		if errors.Is(err, data.ErrUnauthorized) {
			return userver.JResponse{
				HTTPCode: http.StatusUnauthorized,
				JSONData: authFailResponse,
				Cookies:  a.clearCookies()}
		}
		return a.fail(req, err)
	}

	logInfo.Append(fields.NewField("id", auth.User.ID), fields.NewField("refresh-result", "success"))
	a.logger.Info(2866, "successful token refresh", logInfo)
	resp := ok(schema.RefreshResponse{
		Success:    true,
		AuthTokens: *auth.Tokens,
		Message:    "Token refreshed successfully",
		Data:       auth})
	resp.Cookies = a.tokenCookies(*auth.Tokens)
	return resp
}

// authResponse wraps auth data and sets the token cookies when tokens were issued
func (a *API) authResponse(msg string, auth schema.AuthData) userver.JResponse {
	resp := ok(schema.AuthResponse{Success: true, Message: msg, Data: auth})
	if auth.Tokens != nil {
		resp.Cookies = a.tokenCookies(*auth.Tokens)
	}
	return resp
}

func (a *API) tokenCookies(t schema.AuthTokens) []*http.Cookie {
	return []*http.Cookie{
		a.cookie(schema.CookieAccessToken, t.AccessToken, schema.CookieAccessMaxAge),
		a.cookie(schema.CookieRefreshToken, t.RefreshToken, schema.CookieRefreshMaxAge),
	}
}

// clearCookies expires both token cookies
func (a *API) clearCookies() []*http.Cookie {
	return []*http.Cookie{
		a.cookie(schema.CookieAccessToken, "", -1),
		a.cookie(schema.CookieRefreshToken, "", -1),
	}
}

func (a *API) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.conf.SC.Get(global.ConfigSecureCookies).Bool(),
		SameSite: http.SameSiteLaxMode,
	}
}
