//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
)

// @Summary System statistics
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.AdminStatsResponse
// @Failure 403 {object} schema.ErrorResponse
// @Router /admin/stats [get]
func (a *API) getAdminStats(req *http.Request) userver.JResponse {
	stats, err := a.data.AdminStats()
	if err != nil {
		return a.fail(req, err)
	}
	return ok(schema.AdminStatsResponse{Success: true, Data: stats})
}

// @Summary List users
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param role query string false "user or admin"
// @Success 200 {object} schema.UsersResponse
// @Router /admin/users [get]
func (a *API) getAdminUsers(req *http.Request) userver.JResponse {
	users, pg, err := a.data.AdminUsers(data.UserQuery{Page: page(req), Role: query(req, schema.QueryRole)})
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.UsersResponse
	resp.Success = true
	resp.Data.Users = users
	resp.Data.Pagination = pg
	return ok(resp)
}

// @Summary Activate or suspend a user
// @Description Suspending a user revokes their sessions. Administrators cannot change their own status.
// @Tags Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param status body schema.UserStatusForm true "active or suspended"
// @Success 200 {object} schema.MessageResponse
// @Router /admin/users/{id}/status [put]
func (a *API) putUserStatus(req *http.Request) userver.JResponse {
	var form schema.UserStatusForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	info := GetAuthDetails(req)
	u, err := a.data.SetUserStatus(info.UserID, userver.GetParam(req, "id"), form)
	if err != nil {
		return a.fail(req, err)
	}
	a.audit(req, "user status changed", u.ID, form.Status)
	return message("User status updated successfully")
}

// @Summary Change a user's role
// @Tags Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body schema.UserRoleForm true "user or admin"
// @Success 200 {object} schema.MessageResponse
// @Router /admin/users/{id}/role [put]
func (a *API) putUserRole(req *http.Request) userver.JResponse {
	var form schema.UserRoleForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	u, err := a.data.SetUserRole(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), form)
	if err != nil {
		return a.fail(req, err)
	}
	a.audit(req, "user role changed", u.ID, form.Role)
	return message("User role updated successfully")
}

// @Summary Websites for moderation
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Param status query string false "all, flagged, active or inactive"
// @Success 200 {object} schema.WebsitesModerationResponse
// @Router /admin/websites/moderation [get]
func (a *API) getModeration(req *http.Request) userver.JResponse {
	websites, pg, err := a.data.ModerationWebsites(data.ModerationQuery{Page: page(req), Status: query(req, schema.QueryStatus)})
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.WebsitesModerationResponse
	resp.Success = true
	resp.Data.Websites = websites
	resp.Data.Pagination = pg
	return ok(resp)
}

// @Summary Block or unblock a website
// @Tags Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Website ID"
// @Param action body schema.ModerateForm true "block or unblock"
// @Success 200 {object} schema.MessageResponse
// @Router /admin/websites/{id}/moderate [put]
func (a *API) putModerate(req *http.Request) userver.JResponse {
	var form schema.ModerateForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	w, err := a.data.ModerateWebsite(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), form)
	if err != nil {
		return a.fail(req, err)
	}
	a.audit(req, "website moderated", w.ID, form.Action)
	if form.Action == schema.ModerateBlock {
		return message("Website blocked successfully")
	}
	return message("Website unblocked successfully")
}

// @Summary Crawl queue
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.QueueResponse
// @Router /admin/queue [get]
func (a *API) getQueue(req *http.Request) userver.JResponse {
	resp, err := a.data.Queue()
	if err != nil {
		return a.fail(req, err)
	}
	return ok(resp)
}

// @Summary Website analytics
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period such as 7d or 30d"
// @Success 200 {object} schema.WebsiteAnalytics
// @Router /admin/analytics/websites [get]
func (a *API) getWebsiteAnalytics(req *http.Request) userver.JResponse {
	resp, err := a.data.WebsiteAnalytics(query(req, schema.QueryPeriod))
	if err != nil {
		return a.fail(req, err)
	}
	return ok(resp)
}

// @Summary User analytics
// @Tags Administration
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period such as 7d or 30d"
// @Success 200 {object} schema.UserAnalytics
// @Router /admin/analytics/users [get]
func (a *API) getUserAnalytics(req *http.Request) userver.JResponse {
	resp, err := a.data.UserAnalytics(query(req, schema.QueryPeriod))
	if err != nil {
		return a.fail(req, err)
	}
	return ok(resp)
}

// audit logs an administrative change
func (a *API) audit(req *http.Request, msg, target, value string) {
	a.logger.Info(2530, msg,
		fields.NewFields(
			fields.NewField("src_ip", userver.RemoteIP(req)),
			fields.NewField("id", GetAuthDetails(req).UserID),
			fields.NewField("target", target),
			fields.NewField("value", value)))
}
