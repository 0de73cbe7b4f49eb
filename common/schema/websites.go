//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

type Website struct {
	ID                string     `json:"id" example:"W-1c7d1d2e-9d3a-4c4e-9d2b-0f1e2d3c4b5a"`
	UserID            string     `json:"userId,omitempty"`
	Name              string     `json:"name" example:"Company blog"`
	URL               string     `json:"url" example:"https://blog.example.com"`
	Description       string     `json:"description,omitempty"`
	Category          string     `json:"category,omitempty" example:"blog"`
	CrawlFrequency    string     `json:"crawlFrequency,omitempty" example:"weekly"`
	NotificationEmail string     `json:"notificationEmail,omitempty"`
	WebhookURL        string     `json:"webhookUrl,omitempty"`
	IsActive          bool       `json:"isActive" example:"true"`
	IsFlagged         bool       `json:"isFlagged,omitempty"`
	HealthScore       float64    `json:"healthScore" example:"97.5"`
	TotalLinks        int        `json:"totalLinks" example:"412"`
	BrokenLinks       int        `json:"brokenLinks" example:"3"`
	LastCrawledAt     *time.Time `json:"lastCrawledAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// WebsiteForm creates or updates a website. IsActive is only honoured on update.
type WebsiteForm struct {
	Name              string `json:"name"`
	URL               string `json:"url"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	CrawlFrequency    string `json:"crawlFrequency,omitempty"`
	NotificationEmail string `json:"notificationEmail,omitempty"`
	WebhookURL        string `json:"webhookUrl,omitempty"`
	IsActive          *bool  `json:"isActive,omitempty"`
}

type WebsiteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Data    struct {
		Website Website `json:"website"`
	} `json:"data"`
}

type WebsitesResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Websites   []Website  `json:"websites"`
		Pagination Pagination `json:"pagination"`
	} `json:"data"`
}

// WebsiteBrokenLink is the per-website broken link listing entry
type WebsiteBrokenLink struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	ErrorType   string    `json:"errorType"`
	StatusCode  int       `json:"statusCode,omitempty"`
	IsFixed     bool      `json:"isFixed"`
	LastChecked time.Time `json:"lastChecked"`
}

type WebsiteBrokenLinksResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		BrokenLinks []WebsiteBrokenLink `json:"brokenLinks"`
		Pagination  Pagination          `json:"pagination"`
	} `json:"data"`
}

// CrawlTriggerResponse is returned when a crawl is queued
type CrawlTriggerResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Crawl queued"`
	Data    struct {
		CrawlID string `json:"crawlId"`
		Status  string `json:"status" example:"pending"`
	} `json:"data"`
}
