//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

type CrawlSummary struct {
	JobID         string   `json:"jobId"`
	Errors        []string `json:"errors"`
	ScheduledBy   string   `json:"scheduledBy" example:"manual"`
	CrawlDuration int64    `json:"crawlDuration"` // milliseconds
}

// CrawlWebsite is the website reference embedded in crawl results
type CrawlWebsite struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

type CrawlResult struct {
	ID                  string            `json:"id" example:"C-8a1e2f3d-0b4c-4d5e-8f6a-7b8c9d0e1f2a"`
	WebsiteID           string            `json:"websiteId"`
	UserID              string            `json:"userId"`
	Status              string            `json:"status" example:"completed"`
	StartedAt           *time.Time        `json:"startedAt"`
	CompletedAt         *time.Time        `json:"completedAt"`
	TotalLinksFound     int               `json:"totalLinksFound"`
	TotalLinksChecked   int               `json:"totalLinksChecked"`
	BrokenLinksFound    int               `json:"brokenLinksFound"`
	RedirectsFound      int               `json:"redirectsFound"`
	TimeoutsFound       int               `json:"timeoutsFound"`
	AverageResponseTime float64           `json:"averageResponseTime"`
	ErrorMessage        *string           `json:"errorMessage"`
	CrawlDepth          int               `json:"crawlDepth"`
	UserAgent           string            `json:"userAgent"`
	Summary             CrawlSummary      `json:"summary"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
	Website             CrawlWebsite      `json:"website"`
	BrokenLinkRecords   []CrawlBrokenLink `json:"brokenLinkRecords,omitempty"`
}

type CrawlBrokenLink struct {
	ID              string     `json:"id"`
	WebsiteID       string     `json:"websiteId"`
	CrawlResultID   string     `json:"crawlResultId"`
	URL             string     `json:"url"`
	SourceURL       string     `json:"sourceUrl"`
	LinkText        string     `json:"linkText"`
	StatusCode      int        `json:"statusCode"`
	ErrorType       string     `json:"errorType" example:"404"`
	ErrorMessage    *string    `json:"errorMessage"`
	ResponseTime    int64      `json:"responseTime"`
	RedirectChain   []string   `json:"redirectChain"`
	IsFixed         bool       `json:"isFixed"`
	FixedAt         *time.Time `json:"fixedAt"`
	FirstDetectedAt time.Time  `json:"firstDetectedAt"`
	LastCheckedAt   time.Time  `json:"lastCheckedAt"`
	CheckCount      int        `json:"checkCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CrawlResultResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		CrawlResult CrawlResult `json:"crawlResult"`
	} `json:"data"`
}

type CrawlsResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Crawls     []CrawlResult `json:"crawls"`
		Pagination Pagination    `json:"pagination"`
	} `json:"data"`
}

type CrawlBrokenLinksResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		BrokenLinks []CrawlBrokenLink `json:"brokenLinks"`
		Pagination  Pagination        `json:"pagination"`
	} `json:"data"`
}

// CrawlStats summarizes all crawls of the current user
type CrawlStats struct {
	TotalCrawls         int            `json:"totalCrawls"`
	ByStatus            map[string]int `json:"byStatus"`
	TotalLinksChecked   int            `json:"totalLinksChecked"`
	TotalBrokenLinks    int            `json:"totalBrokenLinks"`
	AverageResponseTime float64        `json:"averageResponseTime"`
}

type CrawlStatsResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    CrawlStats `json:"data"`
}

// CrawlTrend is one day of crawl activity
type CrawlTrend struct {
	Date        string `json:"date" example:"2026-03-04"`
	Crawls      int    `json:"crawls"`
	BrokenLinks int    `json:"brokenLinks"`
	LinksFound  int    `json:"linksFound"`
}

type CrawlTrendsResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Days   int          `json:"days"`
		Trends []CrawlTrend `json:"trends"`
	} `json:"data"`
}
