//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
)

// @Summary Dashboard overview
// @Description Totals, the websites with the lowest health and recent crawl activity
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.DashboardData
// @Router /dashboard/overview [get]
func (a *API) getOverview(req *http.Request) userver.JResponse {
	resp, err := a.data.Dashboard(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	return ok(resp)
}

// @Summary Health scores
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.HealthScoresResponse
// @Router /dashboard/health-scores [get]
func (a *API) getHealthScores(req *http.Request) userver.JResponse {
	websites, err := a.data.HealthScores(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.HealthScoresResponse
	resp.Success = true
	resp.Data.Websites = websites
	return ok(resp)
}

// @Summary Broken links summary
// @Description Broken links grouped by error type with the most recent ones
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param errorType query string false "Error type filter"
// @Param isFixed query bool false "Fixed filter"
// @Success 200 {object} schema.BrokenLinksResponse
// @Router /dashboard/broken-links-summary [get]
func (a *API) getBrokenLinksSummary(req *http.Request) userver.JResponse {
	summary, recent, err := a.data.BrokenLinksSummary(GetAuthDetails(req).UserID, brokenLinkQuery(req))
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.BrokenLinksResponse
	resp.Success = true
	resp.Data.Summary = summary
	resp.Data.RecentBrokenLinks = recent
	return ok(resp)
}

// @Summary Crawl performance
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "Days (1-365, default 7)"
// @Success 200 {object} schema.CrawlPerformanceResponse
// @Router /dashboard/crawl-performance [get]
func (a *API) getCrawlPerformance(req *http.Request) userver.JResponse {
	days, valid := intParam(req, schema.QueryDays)
	if !valid {
		return badQuery(schema.QueryDays)
	}
	perf, err := a.data.CrawlPerformance(GetAuthDetails(req).UserID, days)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.CrawlPerformanceResponse
	resp.Success = true
	resp.Data.Days = len(perf)
	resp.Data.Performance = perf
	return ok(resp)
}

// @Summary Website categories
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.WebsiteCategoriesResponse
// @Router /dashboard/website-categories [get]
func (a *API) getWebsiteCategories(req *http.Request) userver.JResponse {
	categories, err := a.data.WebsiteCategories(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.WebsiteCategoriesResponse
	resp.Success = true
	resp.Data.Categories = categories
	return ok(resp)
}

// @Summary Alerts
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.AlertsResponse
// @Router /dashboard/alerts [get]
func (a *API) getAlerts(req *http.Request) userver.JResponse {
	alerts, err := a.data.Alerts(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.AlertsResponse
	resp.Success = true
	resp.Data.Alerts = alerts
	return ok(resp)
}
