//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

//goland:noinspection ALL
const (
	EndpointAuth      = "/api/auth"
	EndpointWebsites  = "/api/websites"
	EndpointCrawls    = "/api/crawls"
	EndpointDashboard = "/api/dashboard"
	EndpointAdmin     = "/api/admin"
	EndpointHealth    = "/api/health"
	EndpointDocs      = "/api/docs"

	EndpointRegister           = EndpointAuth + "/register"
	EndpointLogin              = EndpointAuth + "/login"
	EndpointVerifyEmail        = EndpointAuth + "/verify-email"
	EndpointResendVerification = EndpointAuth + "/resend-verification"
	EndpointRefresh            = EndpointAuth + "/refresh"
	EndpointMe                 = EndpointAuth + "/me"
	EndpointProfile            = EndpointAuth + "/profile"
	EndpointChangePassword     = EndpointAuth + "/change-password"
	EndpointForgotPassword     = EndpointAuth + "/forgot-password"
	EndpointResetPassword      = EndpointAuth + "/reset-password"

	EndpointCrawlStatsSummary = EndpointCrawls + "/stats/summary"
	EndpointCrawlTrends       = EndpointCrawls + "/stats/trends"

	EndpointDashboardOverview    = EndpointDashboard + "/overview"
	EndpointHealthScores         = EndpointDashboard + "/health-scores"
	EndpointBrokenLinksSummary   = EndpointDashboard + "/broken-links-summary"
	EndpointCrawlPerformance     = EndpointDashboard + "/crawl-performance"
	EndpointWebsiteCategories    = EndpointDashboard + "/website-categories"
	EndpointDashboardAlerts      = EndpointDashboard + "/alerts"
	EndpointAdminStats           = EndpointAdmin + "/stats"
	EndpointAdminUsers           = EndpointAdmin + "/users"
	EndpointAdminModeration      = EndpointAdmin + "/websites/moderation"
	EndpointAdminWebsites        = EndpointAdmin + "/websites"
	EndpointAdminQueue           = EndpointAdmin + "/queue"
	EndpointAdminWebsiteAnalytic = EndpointAdmin + "/analytics/websites"
	EndpointAdminUserAnalytics   = EndpointAdmin + "/analytics/users"
)

// Cookie names shared by the server, the browser dashboard and CookieStore
const (
	CookieAccessToken  = "accessToken-deadlink-watchdog"
	CookieRefreshToken = "refreshToken-deadlink-watchdog"

	CookieAccessMaxAge  = 24 * 60 * 60     // one day
	CookieRefreshMaxAge = 7 * 24 * 60 * 60 // seven days
)

// Query parameter names
const (
	QueryPage       = "page"
	QueryLimit      = "limit"
	QueryCategory   = "category"
	QueryIsActive   = "isActive"
	QueryIsFixed    = "isFixed"
	QueryErrorType  = "errorType"
	QueryStatus     = "status"
	QueryWebsiteID  = "websiteId"
	QueryRole       = "role"
	QueryDays       = "days"
	QueryPeriod     = "period"
	QueryCrawlDepth = "crawlDepth"
)
