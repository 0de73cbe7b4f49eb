//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

type DashboardOverview struct {
	TotalWebsites      int     `json:"totalWebsites"`
	ActiveWebsites     int     `json:"activeWebsites"`
	TotalCrawls        int     `json:"totalCrawls"`
	RecentCrawls       int     `json:"recentCrawls"`
	TotalBrokenLinks   int     `json:"totalBrokenLinks"`
	RecentBrokenLinks  int     `json:"recentBrokenLinks"`
	AverageHealthScore float64 `json:"averageHealthScore"`
}

// WebsiteHealth is a website ranked by health score
type WebsiteHealth struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	HealthScore float64 `json:"healthScore"`
	TotalLinks  int     `json:"totalLinks"`
	BrokenLinks int     `json:"brokenLinks"`
}

type CrawlActivity struct {
	ID                string       `json:"id"`
	Status            string       `json:"status"`
	BrokenLinksFound  int          `json:"brokenLinksFound"`
	TotalLinksChecked int          `json:"totalLinksChecked"`
	CreatedAt         time.Time    `json:"createdAt"`
	Website           CrawlWebsite `json:"website"`
}

type DashboardData struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Overview       DashboardOverview `json:"overview"`
		TopIssues      []WebsiteHealth   `json:"topIssues"`
		RecentActivity []CrawlActivity   `json:"recentActivity"`
	} `json:"data"`
}

type HealthScoresResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Websites []WebsiteHealth `json:"websites"`
	} `json:"data"`
}

// CrawlPerformance is one day of crawl timing
type CrawlPerformance struct {
	Date                string  `json:"date"`
	Crawls              int     `json:"crawls"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	AverageDuration     float64 `json:"averageDuration"`
	FailedCrawls        int     `json:"failedCrawls"`
}

type CrawlPerformanceResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Days        int                `json:"days"`
		Performance []CrawlPerformance `json:"performance"`
	} `json:"data"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type WebsiteCategoriesResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Categories []CategoryCount `json:"categories"`
	} `json:"data"`
}

// Alert severities
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

type DashboardAlert struct {
	Type      string    `json:"type" example:"low_health"`
	Severity  string    `json:"severity" example:"warning"`
	Message   string    `json:"message"`
	WebsiteID string    `json:"websiteId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AlertsResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Alerts []DashboardAlert `json:"alerts"`
	} `json:"data"`
}

// DashboardSummary combines the overview, alerts and health scores.
// It is assembled by the client, not returned by a single endpoint.
type DashboardSummary struct {
	Overview       DashboardOverview `json:"overview"`
	TopIssues      []WebsiteHealth   `json:"topIssues"`
	RecentActivity []CrawlActivity   `json:"recentActivity"`
	Alerts         []DashboardAlert  `json:"alerts"`
	HealthScores   []WebsiteHealth   `json:"healthScores"`
}
