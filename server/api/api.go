//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
)

// Methods
var (
	get  = []string{http.MethodGet}
	post = []string{http.MethodPost}
	put  = []string{http.MethodPut}
	del  = []string{http.MethodDelete}
)

type API struct {
	logger interfaces.Logger
	conf   *global.ServerConfig
	data   *data.Data
}

func New(config *global.ServerConfig, logger interfaces.Logger, d *data.Data) *API {
	return &API{logger: logger, conf: config, data: d}
}

// Start runs the API until ctx is cancelled, restarting it after failures
func (a *API) Start(ctx context.Context) {
	for {
		a.logger.Infof(2001, "Starting API")
		err := a.run(ctx)
		if err == nil {
			a.logger.Infof(2002, "API stopped")
			return
		}
		a.logger.Errorf(2003, "API error: %s", err.Error())

		// Sleep before trying again
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Second):
		}
	}
}

func (a *API) run(ctx context.Context) error {
	s, err := a.newServer()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	select {
	case err = <-done:
		if err != nil {
			return fmt.Errorf("userver Start(): %w", err)
		}
		return nil
	case <-ctx.Done():
		if err = s.Stop(); err != nil {
			a.logger.Warningf(2005, "API shutdown: %s", err.Error())
			return nil
		}
		return <-done
	}
}

// Handler returns the router without listening. Tests mount it on httptest.
func (a *API) Handler() (http.Handler, error) {
	s, err := a.newServer()
	if err != nil {
		return nil, err
	}
	return s.Handler()
}

func (a *API) newServer() (*userver.HServer, error) {

	// Obtain the listen address and check for command line override
	listen := a.conf.SC.Get(global.ConfigListen).String()
	if global.ListenOverride != "" {
		listen = global.ListenOverride
	}

	// Create a new HServer instance
	s, err := userver.New(
		userver.WithLogger(a.logger),
		userver.WithSEid(2500),
		userver.WithListen(listen),
		userver.WithHealthHandler(true, schema.EndpointHealth),
		userver.WithHTTPTimeout(a.conf.SC.Get(global.ConfigHTTPTimeout).Int()),
		userver.WithHTTPIdleTimeout(a.conf.SC.Get(global.ConfigHTTPIdleTimeout).Int()),
		userver.WithHandlerTimeout(a.conf.SC.Get(global.ConfigHandlerTimeout).Int()),
		userver.WithMaxConcurrent(a.conf.SC.Get(global.ConfigMaxConcurrent).Int()),
		userver.WithPenaltyBox(
			a.conf.SC.Get(global.ConfigPenaltyBoxMin).Int(),
			a.conf.SC.Get(global.ConfigPenaltyBoxMax).Int()),
		userver.WithRateLimit(
			uint64(a.conf.SC.Get(global.ConfigLoginRateTokens).Int()),
			a.conf.SC.Get(global.ConfigLoginRateWindow).Seconds()),
		userver.WithDebug(global.Debug))
	if err != nil {
		return nil, fmt.Errorf("userver New(): %w", err)
	}

	s.AddRoutes(a.routes())
	return s, nil
}

// routes is the REST surface. Admin routes authenticate like any other and
// then check the role so that a non-admin gets 403 rather than 401.
func (a *API) routes() userver.Routes {
	user := a.NewAuthFunc()
	return userver.Routes{

		// Authentication
		{Name: "register", Methods: post, Pattern: schema.EndpointRegister, JHandler: a.postRegister},
		{Name: "login", Methods: post, Pattern: schema.EndpointLogin, JHandler: a.postLogin, Limited: true},
		{Name: "verify-email", Methods: post, Pattern: schema.EndpointVerifyEmail, JHandler: a.postVerifyEmail},
		{Name: "resend-verification", Methods: post, Pattern: schema.EndpointResendVerification, JHandler: a.postResendVerification, Limited: true},
		{Name: "refresh", Methods: post, Pattern: schema.EndpointRefresh, JHandler: a.postRefresh},
		{Name: "me", Methods: get, Pattern: schema.EndpointMe, JHandler: a.getMe, AuthFunc: user},
		{Name: "profile", Methods: put, Pattern: schema.EndpointProfile, JHandler: a.putProfile, AuthFunc: user},
		{Name: "change-password", Methods: put, Pattern: schema.EndpointChangePassword, JHandler: a.putChangePassword, AuthFunc: user},
		{Name: "forgot-password", Methods: post, Pattern: schema.EndpointForgotPassword, JHandler: a.postForgotPassword, Limited: true},
		{Name: "reset-password", Methods: post, Pattern: schema.EndpointResetPassword, JHandler: a.postResetPassword},

		// Websites
		{Name: "websites", Methods: get, Pattern: schema.EndpointWebsites, JHandler: a.getWebsites, AuthFunc: user},
		{Name: "website-create", Methods: post, Pattern: schema.EndpointWebsites, JHandler: a.postWebsite, AuthFunc: user},
		{Name: "website", Methods: get, Pattern: schema.EndpointWebsites + "/{id}", JHandler: a.getWebsite, AuthFunc: user},
		{Name: "website-update", Methods: put, Pattern: schema.EndpointWebsites + "/{id}", JHandler: a.putWebsite, AuthFunc: user},
		{Name: "website-delete", Methods: del, Pattern: schema.EndpointWebsites + "/{id}", JHandler: a.deleteWebsite, AuthFunc: user},
		{Name: "website-crawl", Methods: post, Pattern: schema.EndpointWebsites + "/{id}/crawl", JHandler: a.postWebsiteCrawl, AuthFunc: user},
		{Name: "website-broken-links", Methods: get, Pattern: schema.EndpointWebsites + "/{id}/broken-links", JHandler: a.getWebsiteBrokenLinks, AuthFunc: user},

		// Crawls; the stats routes are registered before /{id}
		{Name: "crawls", Methods: get, Pattern: schema.EndpointCrawls, JHandler: a.getCrawls, AuthFunc: user},
		{Name: "crawl-stats", Methods: get, Pattern: schema.EndpointCrawlStatsSummary, JHandler: a.getCrawlStats, AuthFunc: user},
		{Name: "crawl-trends", Methods: get, Pattern: schema.EndpointCrawlTrends, JHandler: a.getCrawlTrends, AuthFunc: user},
		{Name: "crawl", Methods: get, Pattern: schema.EndpointCrawls + "/{id}", JHandler: a.getCrawl, AuthFunc: user},
		{Name: "crawl-broken-links", Methods: get, Pattern: schema.EndpointCrawls + "/{id}/broken-links", JHandler: a.getCrawlBrokenLinks, AuthFunc: user},
		{Name: "crawl-retry", Methods: post, Pattern: schema.EndpointCrawls + "/{id}/retry", JHandler: a.postCrawlRetry, AuthFunc: user},

		// Dashboard
		{Name: "dashboard-overview", Methods: get, Pattern: schema.EndpointDashboardOverview, JHandler: a.getOverview, AuthFunc: user},
		{Name: "health-scores", Methods: get, Pattern: schema.EndpointHealthScores, JHandler: a.getHealthScores, AuthFunc: user},
		{Name: "broken-links-summary", Methods: get, Pattern: schema.EndpointBrokenLinksSummary, JHandler: a.getBrokenLinksSummary, AuthFunc: user},
		{Name: "crawl-performance", Methods: get, Pattern: schema.EndpointCrawlPerformance, JHandler: a.getCrawlPerformance, AuthFunc: user},
		{Name: "website-categories", Methods: get, Pattern: schema.EndpointWebsiteCategories, JHandler: a.getWebsiteCategories, AuthFunc: user},
		{Name: "alerts", Methods: get, Pattern: schema.EndpointDashboardAlerts, JHandler: a.getAlerts, AuthFunc: user},

		// Administration
		{Name: "admin-stats", Methods: get, Pattern: schema.EndpointAdminStats, JHandler: a.admin(a.getAdminStats), AuthFunc: user},
		{Name: "admin-users", Methods: get, Pattern: schema.EndpointAdminUsers, JHandler: a.admin(a.getAdminUsers), AuthFunc: user},
		{Name: "admin-user-status", Methods: put, Pattern: schema.EndpointAdminUsers + "/{id}/status", JHandler: a.admin(a.putUserStatus), AuthFunc: user},
		{Name: "admin-user-role", Methods: put, Pattern: schema.EndpointAdminUsers + "/{id}/role", JHandler: a.admin(a.putUserRole), AuthFunc: user},
		{Name: "admin-moderation", Methods: get, Pattern: schema.EndpointAdminModeration, JHandler: a.admin(a.getModeration), AuthFunc: user},
		{Name: "admin-moderate", Methods: put, Pattern: schema.EndpointAdminWebsites + "/{id}/moderate", JHandler: a.admin(a.putModerate), AuthFunc: user},
		{Name: "admin-queue", Methods: get, Pattern: schema.EndpointAdminQueue, JHandler: a.admin(a.getQueue), AuthFunc: user},
		{Name: "admin-website-analytics", Methods: get, Pattern: schema.EndpointAdminWebsiteAnalytic, JHandler: a.admin(a.getWebsiteAnalytics), AuthFunc: user},
		{Name: "admin-user-analytics", Methods: get, Pattern: schema.EndpointAdminUserAnalytics, JHandler: a.admin(a.getUserAnalytics), AuthFunc: user},

		// OpenAPI document
		{Name: "docs", Methods: get, Pattern: schema.EndpointDocs, JHandler: a.getDocs},
	}
}

// PruneDB provides a way for the app to trigger database pruning
func (a *API) PruneDB() {
	a.data.PruneDB()
}
