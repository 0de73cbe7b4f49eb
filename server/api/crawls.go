//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
)

// @Summary List crawls
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "pending, in_progress, completed or failed"
// @Param websiteId query string false "Website filter"
// @Success 200 {object} schema.CrawlsResponse
// @Router /crawls [get]
func (a *API) getCrawls(req *http.Request) userver.JResponse {
	q := data.CrawlQuery{
		Page:      page(req),
		Status:    query(req, schema.QueryStatus),
		WebsiteID: query(req, schema.QueryWebsiteID),
	}
	crawls, pg, err := a.data.ListCrawls(GetAuthDetails(req).UserID, q)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.CrawlsResponse
	resp.Success = true
	resp.Data.Crawls = crawls
	resp.Data.Pagination = pg
	return ok(resp)
}

// @Summary Crawl statistics
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.CrawlStatsResponse
// @Router /crawls/stats/summary [get]
func (a *API) getCrawlStats(req *http.Request) userver.JResponse {
	stats, err := a.data.CrawlStats(GetAuthDetails(req).UserID)
	if err != nil {
		return a.fail(req, err)
	}
	return ok(schema.CrawlStatsResponse{Success: true, Data: stats})
}

// @Summary Daily crawl trends
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Param days query int false "Days (1-365, default 7)"
// @Success 200 {object} schema.CrawlTrendsResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /crawls/stats/trends [get]
func (a *API) getCrawlTrends(req *http.Request) userver.JResponse {
	days, valid := intParam(req, schema.QueryDays)
	if !valid {
		return badQuery(schema.QueryDays)
	}
	trends, err := a.data.CrawlTrends(GetAuthDetails(req).UserID, days)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.CrawlTrendsResponse
	resp.Success = true
	resp.Data.Days = len(trends)
	resp.Data.Trends = trends
	return ok(resp)
}

// @Summary Get a crawl
// @Description Get a crawl result including its broken link records
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crawl ID"
// @Success 200 {object} schema.CrawlResultResponse
// @Failure 404 {object} schema.API404
// @Router /crawls/{id} [get]
func (a *API) getCrawl(req *http.Request) userver.JResponse {
	c, err := a.data.GetCrawl(GetAuthDetails(req).UserID, userver.GetParam(req, "id"))
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.CrawlResultResponse
	resp.Success = true
	resp.Data.CrawlResult = c
	return ok(resp)
}

// @Summary Broken links found by a crawl
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crawl ID"
// @Param errorType query string false "Error type filter"
// @Success 200 {object} schema.CrawlBrokenLinksResponse
// @Router /crawls/{id}/broken-links [get]
func (a *API) getCrawlBrokenLinks(req *http.Request) userver.JResponse {
	links, pg, err := a.data.CrawlBrokenLinks(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), brokenLinkQuery(req))
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.CrawlBrokenLinksResponse
	resp.Success = true
	resp.Data.BrokenLinks = links
	resp.Data.Pagination = pg
	return ok(resp)
}

// @Summary Retry a failed crawl
// @Tags Crawls
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crawl ID"
// @Success 200 {object} schema.CrawlTriggerResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /crawls/{id}/retry [post]
func (a *API) postCrawlRetry(req *http.Request) userver.JResponse {
	c, err := a.data.RetryCrawl(GetAuthDetails(req).UserID, userver.GetParam(req, "id"))
	if err != nil {
		return a.fail(req, err)
	}
	return ok(triggerResponse("Crawl retry queued successfully", c))
}
