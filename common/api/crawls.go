/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

const DefaultTrendDays = 7

type CrawlsService struct {
	r interfaces.Requester
}

type CrawlFilter struct {
	Page
	Status    string
	WebsiteID string
}

func (s *CrawlsService) List(ctx context.Context, filter CrawlFilter) (*schema.CrawlsResponse, error) {
	q := filter.values()
	if filter.Status != "" {
		q.Set(schema.QueryStatus, filter.Status)
	}
	if filter.WebsiteID != "" {
		q.Set(schema.QueryWebsiteID, filter.WebsiteID)
	}

	var resp schema.CrawlsResponse
	if err := s.r.GetCached(ctx, schema.EndpointCrawls, q, CrawlTTL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CrawlsService) StatsSummary(ctx context.Context) (*schema.CrawlStats, error) {
	var resp schema.CrawlStatsResponse
	if err := s.r.GetCached(ctx, schema.EndpointCrawlStatsSummary, nil, CrawlTTL, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Trends returns daily crawl counts. Days below one use DefaultTrendDays.
func (s *CrawlsService) Trends(ctx context.Context, days int) (*schema.CrawlTrendsResponse, error) {
	var resp schema.CrawlTrendsResponse
	if err := s.r.GetCached(ctx, schema.EndpointCrawlTrends, daysQuery(days), CrawlTTL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CrawlsService) BrokenLinks(ctx context.Context, id string, filter BrokenLinkFilter) (*schema.CrawlBrokenLinksResponse, error) {
	if id == "" {
		return nil, errNoID
	}
	var resp schema.CrawlBrokenLinksResponse
	if err := s.r.GetQuery(ctx, path(schema.EndpointCrawls, id, "broken-links"), filter.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CrawlsService) Retry(ctx context.Context, id string) (*schema.CrawlTriggerResponse, error) {
	if id == "" {
		return nil, errNoID
	}
	var resp schema.CrawlTriggerResponse
	if err := s.r.Post(ctx, path(schema.EndpointCrawls, id, "retry"), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CrawlsService) Get(ctx context.Context, id string) (*schema.CrawlResult, error) {
	if id == "" {
		return nil, errNoID
	}
	var resp schema.CrawlResultResponse
	if err := s.r.Get(ctx, path(schema.EndpointCrawls, id), &resp); err != nil {
		return nil, err
	}
	return &resp.Data.CrawlResult, nil
}

func daysQuery(days int) url.Values {
	if days < 1 {
		days = DefaultTrendDays
	}
	return url.Values{schema.QueryDays: {strconv.Itoa(days)}}
}
