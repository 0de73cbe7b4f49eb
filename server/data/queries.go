//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Page selects a page of a list. Zero values use the defaults.
type Page struct {
	Page  int
	Limit int
}

type WebsiteQuery struct {
	Page
	Category string
	IsActive *bool
}

type BrokenLinkQuery struct {
	Page
	ErrorType string
	IsFixed   *bool
}

type CrawlQuery struct {
	Page
	Status    string
	WebsiteID string
}

type UserQuery struct {
	Page
	Role string
}

type ModerationQuery struct {
	Page
	Status string
}

// Moderation statuses accepted by ModerationQuery
const (
	ModerationAll      = "all"
	ModerationFlagged  = "flagged"
	ModerationActive   = "active"
	ModerationInactive = "inactive"
)

// paginate returns the requested page of items
func paginate[T any](items []T, p Page) ([]T, schema.Pagination) {
	if p.Limit < 1 {
		p.Limit = schema.DefaultPageSize
	}
	pg := schema.NewPagination(p.Page, p.Limit, len(items))
	start, end := pg.Window(len(items))
	out := items[start:end]
	if out == nil {
		out = []T{}
	}
	return out, pg
}

func matchBool(want *bool, have bool) bool {
	return want == nil || *want == have
}
