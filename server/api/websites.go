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

// @Summary List websites
// @Tags Websites
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Category filter"
// @Param isActive query bool false "Active filter"
// @Success 200 {object} schema.WebsitesResponse
// @Router /websites [get]
func (a *API) getWebsites(req *http.Request) userver.JResponse {
	q := data.WebsiteQuery{
		Page:     page(req),
		Category: query(req, schema.QueryCategory),
		IsActive: userver.QueryBool(req, schema.QueryIsActive),
	}
	websites, pg, err := a.data.ListWebsites(GetAuthDetails(req).UserID, q)
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.WebsitesResponse
	resp.Success = true
	resp.Data.Websites = websites
	resp.Data.Pagination = pg
	return ok(resp)
}

// @Summary Get a website
// @Tags Websites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Website ID"
// @Success 200 {object} schema.WebsiteResponse
// @Failure 404 {object} schema.API404
// @Router /websites/{id} [get]
func (a *API) getWebsite(req *http.Request) userver.JResponse {
	w, err := a.data.GetWebsite(GetAuthDetails(req).UserID, userver.GetParam(req, "id"))
	if err != nil {
		return a.fail(req, err)
	}
	return ok(websiteResponse("", w))
}

// @Summary Add a website
// @Tags Websites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param website body schema.WebsiteForm true "Website"
// @Success 201 {object} schema.WebsiteResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /websites [post]
func (a *API) postWebsite(req *http.Request) userver.JResponse {
	var form schema.WebsiteForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	info := GetAuthDetails(req)
	w, err := a.data.CreateWebsite(info.UserID, form)
	if err != nil {
		return a.fail(req, err)
	}
	a.logger.Info(2520, "website added",
		fields.NewFields(
			fields.NewField("id", info.UserID),
			fields.NewField("website", w.ID),
			fields.NewField("url", w.URL)))
	return created(websiteResponse("Website added successfully", w))
}

// @Summary Update a website
// @Tags Websites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Website ID"
// @Param website body schema.WebsiteForm true "Website"
// @Success 200 {object} schema.WebsiteResponse
// @Failure 400 {object} schema.ErrorResponse
// @Failure 404 {object} schema.API404
// @Router /websites/{id} [put]
func (a *API) putWebsite(req *http.Request) userver.JResponse {
	var form schema.WebsiteForm
	if err := decode(req, &form); err != nil {
		return badBody()
	}
	w, err := a.data.UpdateWebsite(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), form)
	if err != nil {
		return a.fail(req, err)
	}
	return ok(websiteResponse("Website updated successfully", w))
}

// @Summary Delete a website
// @Description Delete a website with its crawls and broken links
// @Tags Websites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Website ID"
// @Success 200 {object} schema.MessageResponse
// @Failure 404 {object} schema.API404
// @Router /websites/{id} [delete]
func (a *API) deleteWebsite(req *http.Request) userver.JResponse {
	info := GetAuthDetails(req)
	id := userver.GetParam(req, "id")
	if err := a.data.DeleteWebsite(info.UserID, id); err != nil {
		return a.fail(req, err)
	}
	a.logger.Info(2521, "website deleted",
		fields.NewFields(fields.NewField("id", info.UserID), fields.NewField("website", id)))
	return message("Website deleted successfully")
}

// @Summary Trigger a crawl
// @Tags Websites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Website ID"
// @Param crawlDepth query int false "Crawl depth (1-10, default 3)"
// @Success 200 {object} schema.CrawlTriggerResponse
// @Failure 400 {object} schema.ErrorResponse
// @Router /websites/{id}/crawl [post]
func (a *API) postWebsiteCrawl(req *http.Request) userver.JResponse {
	depth, valid := intParam(req, schema.QueryCrawlDepth)
	if !valid {
		return badQuery(schema.QueryCrawlDepth)
	}
	c, err := a.data.TriggerCrawl(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), depth)
	if err != nil {
		return a.fail(req, err)
	}
	return ok(triggerResponse("Crawl queued successfully", c))
}

// @Summary Broken links of a website
// @Tags Websites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Website ID"
// @Param errorType query string false "Error type filter"
// @Param isFixed query bool false "Fixed filter"
// @Success 200 {object} schema.WebsiteBrokenLinksResponse
// @Router /websites/{id}/broken-links [get]
func (a *API) getWebsiteBrokenLinks(req *http.Request) userver.JResponse {
	links, pg, err := a.data.WebsiteBrokenLinks(GetAuthDetails(req).UserID, userver.GetParam(req, "id"), brokenLinkQuery(req))
	if err != nil {
		return a.fail(req, err)
	}
	var resp schema.WebsiteBrokenLinksResponse
	resp.Success = true
	resp.Data.BrokenLinks = links
	resp.Data.Pagination = pg
	return ok(resp)
}

func websiteResponse(msg string, w schema.Website) schema.WebsiteResponse {
	var resp schema.WebsiteResponse
	resp.Success = true
	resp.Message = msg
	resp.Data.Website = w
	return resp
}

func triggerResponse(msg string, c *schema.CrawlResult) schema.CrawlTriggerResponse {
	var resp schema.CrawlTriggerResponse
	resp.Success = true
	resp.Message = msg
	resp.Data.CrawlID = c.ID
	resp.Data.Status = c.Status
	return resp
}

func brokenLinkQuery(req *http.Request) data.BrokenLinkQuery {
	return data.BrokenLinkQuery{
		Page:      page(req),
		ErrorType: query(req, schema.QueryErrorType),
		IsFixed:   userver.QueryBool(req, schema.QueryIsFixed),
	}
}
