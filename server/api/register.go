/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
)

// @Summary Register
// @Description Create an account. A verification code is emailed and no tokens are issued until the address is verified.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param registration body schema.RegisterForm true "New account"
// @Success 201 {object} schema.AuthResponse
// @Failure 400 {object} schema.ErrorResponse
// @Failure 409 {object} schema.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (a *API) postRegister(req *http.Request) userver.JResponse {
	var form schema.RegisterForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}

	auth, err := a.data.Register(req.Context(), form)
	if err != nil {
		a.logger.Info(2860, "registration refused",
			fields.NewFields(
				fields.NewField("src_ip", userver.RemoteIP(req)),
				fields.NewField("email", form.Email),
				fields.Error(err)))
		return a.fail(req, err)
	}
	return created(schema.AuthResponse{
		Success: true,
		Message: "Registration successful. Please check your email for the verification code.",
		Data:    auth})
}

// @Summary Resend verification code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param email body schema.ResendVerificationForm true "Email address"
// @Success 200 {object} schema.MessageResponse
// @Router /auth/resend-verification [post]
func (a *API) postResendVerification(req *http.Request) userver.JResponse {
	var form schema.ResendVerificationForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	if err := a.data.ResendVerification(req.Context(), form.Email); err != nil {
		return a.fail(req, err)
	}
	return message("If the account exists, a new verification code has been sent")
}

// @Summary Forgot password
// @Description Email a password reset token. The response does not reveal whether the address is registered.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param email body schema.ForgotPasswordForm true "Email address"
// @Success 200 {object} schema.MessageResponse
// @Failure 429 {object} schema.ErrorResponse "Too many requests"
// @Router /auth/forgot-password [post]
func (a *API) postForgotPassword(req *http.Request) userver.JResponse {
	var form schema.ForgotPasswordForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	if err := a.data.ForgotPassword(req.Context(), form.Email); err != nil {
		return a.fail(req, err)
	}
	return message("If the account exists, a password reset email has been sent")
}

// @Summary Reset password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param reset body schema.ResetPasswordForm true "Reset token and new password"
// @Success 200 {object} schema.MessageResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /auth/reset-password [post]
func (a *API) postResetPassword(req *http.Request) userver.JResponse {
	var form schema.ResetPasswordForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	if err := a.data.ResetPassword(req.Context(), form); err != nil {
		return a.fail(req, err)
	}
	a.logger.Info(2867, "password reset", fields.NewFields(fields.NewField("src_ip", userver.RemoteIP(req))))
	return message("Password reset successfully")
}
