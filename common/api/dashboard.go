/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

type DashboardService struct {
	r interfaces.Requester
}

func (s *DashboardService) Overview(ctx context.Context) (*schema.DashboardData, error) {
	var resp schema.DashboardData
	if err := s.r.GetCached(ctx, schema.EndpointDashboardOverview, nil, DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *DashboardService) HealthScores(ctx context.Context) ([]schema.WebsiteHealth, error) {
	var resp schema.HealthScoresResponse
	if err := s.r.GetCached(ctx, schema.EndpointHealthScores, nil, DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Websites, nil
}

func (s *DashboardService) BrokenLinksSummary(ctx context.Context) (*schema.BrokenLinksResponse, error) {
	var resp schema.BrokenLinksResponse
	if err := s.r.GetCached(ctx, schema.EndpointBrokenLinksSummary, nil, DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *DashboardService) CrawlPerformance(ctx context.Context, days int) (*schema.CrawlPerformanceResponse, error) {
	var resp schema.CrawlPerformanceResponse
	if err := s.r.GetCached(ctx, schema.EndpointCrawlPerformance, daysQuery(days), DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *DashboardService) WebsiteCategories(ctx context.Context) ([]schema.CategoryCount, error) {
	var resp schema.WebsiteCategoriesResponse
	if err := s.r.GetCached(ctx, schema.EndpointWebsiteCategories, nil, DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Categories, nil
}

func (s *DashboardService) Alerts(ctx context.Context) ([]schema.DashboardAlert, error) {
	var resp schema.AlertsResponse
	if err := s.r.GetCached(ctx, schema.EndpointDashboardAlerts, nil, DashboardTTL, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Alerts, nil
}

// Summary fetches the overview, alerts and health scores concurrently. The
// first failure cancels the others and is returned.
func (s *DashboardService) Summary(ctx context.Context) (*schema.DashboardSummary, error) {
	var (
		overview *schema.DashboardData
		alerts   []schema.DashboardAlert
		health   []schema.WebsiteHealth
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview, err = s.Overview(gctx)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = s.Alerts(gctx)
		return err
	})
	g.Go(func() (err error) {
		health, err = s.HealthScores(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &schema.DashboardSummary{
		Overview:       overview.Data.Overview,
		TopIssues:      overview.Data.TopIssues,
		RecentActivity: overview.Data.RecentActivity,
		Alerts:         alerts,
		HealthScores:   health,
	}, nil
}
