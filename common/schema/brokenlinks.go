//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

type BrokenLink struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	SourceURL  string    `json:"sourceUrl"`
	ErrorType  string    `json:"errorType" example:"404"`
	StatusCode int       `json:"statusCode" example:"404"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ErrorSummary struct {
	ErrorType string `json:"errorType" example:"404"`
	Count     int    `json:"count" example:"7"`
}

type BrokenLinksResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Summary           []ErrorSummary `json:"summary"`
		RecentBrokenLinks []BrokenLink   `json:"recentBrokenLinks"`
	} `json:"data"`
}
