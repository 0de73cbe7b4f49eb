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

// @Summary Current user
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.UserResponse
// @Failure 401 {object} schema.API401
// @Router /auth/me [get]
func (a *API) getMe(req *http.Request) userver.JResponse {
	u, err := a.data.Me(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.UserResponse
	resp.Success = true
	resp.Data.User = u
	return ok(resp)
}

// @Summary Update profile
// @Description Change any of first name, last name and email
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body schema.UpdateProfileForm true "Profile fields"
// @Success 200 {object} schema.UserResponse
// @Failure 400 {object} schema.ErrorResponse
// @Failure 409 {object} schema.ErrorResponse
// @Router /auth/profile [put]
func (a *API) putProfile(req *http.Request) userver.JResponse {
	var form schema.UpdateProfileForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	u, err := a.data.UpdateProfile(GetAuthDetails(req).UserID, form)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.UserResponse
	resp.Success = true
	resp.Message = "Profile updated successfully"
	resp.Data.User = u
	return ok(resp)
}

// @Summary Change password
// @Description Change the password. Every refresh token of the user is revoked.
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param passwords body schema.ChangePasswordForm true "Current and new password"
// @Success 200 {object} schema.MessageResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /auth/change-password [put]
func (a *API) putChangePassword(req *http.Request) userver.JResponse {
	var form schema.ChangePasswordForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	info := GetAuthDetails(req)
	if err := a.data.ChangePassword(info.UserID, form); err != nil {
		return a.fail(req, err)
	}
	a.logger.Info(2868, "password changed",
		fields.NewFields(
			fields.NewField("src_ip", userver.RemoteIP(req)),
			fields.NewField("id", info.UserID)))
	return message("Password changed successfully")
}
