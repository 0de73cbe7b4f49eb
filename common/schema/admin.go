//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

type QueueCounts struct {
	Waiting   int `json:"waiting"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Delayed   int `json:"delayed"`
}

type QueueStats struct {
	Crawl        QueueCounts `json:"crawl"`
	Notification QueueCounts `json:"notification"`
}

// UserSummary is the short user record embedded in admin responses
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type AdminStats struct {
	TotalUsers       int           `json:"totalUsers"`
	TotalWebsites    int           `json:"totalWebsites"`
	TotalCrawls      int           `json:"totalCrawls"`
	TotalBrokenLinks int           `json:"totalBrokenLinks"`
	ActiveWebsites   int           `json:"activeWebsites"`
	RecentUsers      []UserSummary `json:"recentUsers"`
	QueueStats       QueueStats    `json:"queueStats"`
}

type AdminStatsResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    AdminStats `json:"data"`
}

type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role" example:"user"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type UsersResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Users      []AdminUser `json:"users"`
		Pagination Pagination  `json:"pagination"`
	} `json:"data"`
}

type ModerationWebsite struct {
	ID        string      `json:"id"`
	URL       string      `json:"url"`
	IsActive  bool        `json:"isActive"`
	IsFlagged bool        `json:"isFlagged"`
	Reports   int         `json:"reports"`
	CreatedAt time.Time   `json:"createdAt"`
	User      UserSummary `json:"user"`
}

type WebsitesModerationResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Websites   []ModerationWebsite `json:"websites"`
		Pagination Pagination          `json:"pagination"`
	} `json:"data"`
}

type QueueJob struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type QueueResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Stats      QueueStats `json:"stats"`
		ActiveJobs []QueueJob `json:"activeJobs"`
	} `json:"data"`
}

type NewWebsite struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type WebsiteAnalytics struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		TotalWebsites      int            `json:"totalWebsites"`
		ActiveWebsites     int            `json:"activeWebsites"`
		WebsitesByCategory map[string]int `json:"websitesByCategory"`
		WebsitesByStatus   struct {
			Active   int `json:"active"`
			Inactive int `json:"inactive"`
		} `json:"websitesByStatus"`
		NewWebsites []NewWebsite `json:"newWebsites"`
	} `json:"data"`
}

type UserAnalytics struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		TotalUsers  int `json:"totalUsers"`
		ActiveUsers int `json:"activeUsers"`
		UsersByRole struct {
			User  int `json:"user"`
			Admin int `json:"admin"`
		} `json:"usersByRole"`
		NewUsers []UserSummary `json:"newUsers"`
	} `json:"data"`
}

// UserStatusForm, UserRoleForm and ModerateForm are admin mutation bodies

type UserStatusForm struct {
	Status string `json:"status"`
}

type UserRoleForm struct {
	Role string `json:"role"`
}

type ModerateForm struct {
	Action string `json:"action"`
}
