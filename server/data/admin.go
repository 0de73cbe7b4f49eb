//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
)

const recentUsers = 5

func (d *Data) AdminStats() (schema.AdminStats, error) {
	var stats schema.AdminStats

	users, err := d.database.ListUsers(nil)
	if err != nil {
		return stats, err
	}
	websites, err := d.database.ListWebsites(nil)
	if err != nil {
		return stats, err
	}
	crawls, err := d.database.ListCrawls(nil)
	if err != nil {
		return stats, err
	}
	links, err := d.database.ListBrokenLinks(func(l *schema.CrawlBrokenLink) bool { return !l.IsFixed })
	if err != nil {
		return stats, err
	}

	stats.TotalUsers = len(users)
	stats.TotalWebsites = len(websites)
	stats.TotalCrawls = len(crawls)
	stats.TotalBrokenLinks = len(links)
	for _, w := range websites {
		if w.IsActive {
			stats.ActiveWebsites++
		}
	}
	stats.RecentUsers = []schema.UserSummary{}
	for i := 0; i < len(users) && i < recentUsers; i++ {
		stats.RecentUsers = append(stats.RecentUsers, users[i].Summary())
	}
	stats.QueueStats = queueStats(crawls)
	return stats, nil
}

// queueStats maps crawl states onto queue counters. There is no
// notification queue, so its counters stay at zero.
func queueStats(crawls []schema.CrawlResult) schema.QueueStats {
	var q schema.QueueStats
	for _, c := range crawls {
		switch c.Status {
		case schema.CrawlPending:
			q.Crawl.Waiting++
		case schema.CrawlInProgress:
			q.Crawl.Active++
		case schema.CrawlCompleted:
			q.Crawl.Completed++
		case schema.CrawlFailed:
			q.Crawl.Failed++
		}
	}
	return q
}

func (d *Data) AdminUsers(q UserQuery) ([]schema.AdminUser, schema.Pagination, error) {
	users, err := d.database.ListUsers(func(u *db.UserRecord) bool {
		return q.Role == "" || u.Role == q.Role
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}
	page, pg := paginate(users, q.Page)
	out := make([]schema.AdminUser, len(page))
	for i := range page {
		out[i] = page[i].AdminUser()
	}
	return out, pg, nil
}

// SetUserStatus activates or suspends an account. Suspending ends its sessions.
func (d *Data) SetUserStatus(adminID, userID string, form schema.UserStatusForm) (schema.AdminUser, error) {
	if err := form.Validate(); err != nil {
		return schema.AdminUser{}, err
	}
	if adminID == userID {
		return schema.AdminUser{}, badRequest("You cannot change your own status")
	}
	u, err := d.database.UpdateUser(userID, func(rec *db.UserRecord) error {
		rec.IsActive = form.Status == schema.UserStatusActive
		return nil
	})
	if errors.Is(err, db.ErrNotFound) {
		return schema.AdminUser{}, notFound("User")
	}
	if err != nil {
		return schema.AdminUser{}, err
	}
	if !u.IsActive {
		if err = d.database.RevokeUserTokens(u.ID); err != nil {
			return schema.AdminUser{}, err
		}
	}
	d.logger.Info(2230, "user status changed", fields.NewFields(
		fields.NewField("admin", adminID),
		fields.NewField("user", userID),
		fields.NewField("status", form.Status)))
	return u.AdminUser(), nil
}

func (d *Data) SetUserRole(adminID, userID string, form schema.UserRoleForm) (schema.AdminUser, error) {
	if err := form.Validate(); err != nil {
		return schema.AdminUser{}, err
	}
	if adminID == userID {
		return schema.AdminUser{}, badRequest("You cannot change your own role")
	}
	u, err := d.database.UpdateUser(userID, func(rec *db.UserRecord) error {
		rec.Role = form.Role
		return nil
	})
	if errors.Is(err, db.ErrNotFound) {
		return schema.AdminUser{}, notFound("User")
	}
	if err != nil {
		return schema.AdminUser{}, err
	}
	d.logger.Info(2231, "user role changed", fields.NewFields(
		fields.NewField("admin", adminID),
		fields.NewField("user", userID),
		fields.NewField("role", form.Role)))
	return u.AdminUser(), nil
}

func (d *Data) ModerationWebsites(q ModerationQuery) ([]schema.ModerationWebsite, schema.Pagination, error) {
	switch q.Status {
	case "", ModerationAll, ModerationFlagged, ModerationActive, ModerationInactive:
	default:
		return nil, schema.Pagination{}, badRequest("Status must be one of all, flagged, active, inactive")
	}

	websites, err := d.database.ListWebsites(func(w *db.WebsiteRecord) bool {
		switch q.Status {
		case ModerationFlagged:
			return w.IsFlagged
		case ModerationActive:
			return w.IsActive
		case ModerationInactive:
			return !w.IsActive
		}
		return true
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}

	page, pg := paginate(websites, q.Page)
	owners := map[string]schema.UserSummary{}
	out := make([]schema.ModerationWebsite, len(page))
	for i, w := range page {
		owner, ok := owners[w.UserID]
		if !ok {
			if u, err := d.database.GetUser(w.UserID); err == nil {
				owner = u.Summary()
				owner.Role = ""
				owner.CreatedAt = time.Time{}
			}
			owners[w.UserID] = owner
		}
		out[i] = schema.ModerationWebsite{
			ID:        w.ID,
			URL:       w.URL,
			IsActive:  w.IsActive,
			IsFlagged: w.IsFlagged,
			Reports:   w.Reports,
			CreatedAt: w.CreatedAt,
			User:      owner,
		}
	}
	return out, pg, nil
}

// ModerateWebsite blocks or unblocks a website. Blocking also stops monitoring.
func (d *Data) ModerateWebsite(adminID, id string, form schema.ModerateForm) (schema.Website, error) {
	if err := form.Validate(); err != nil {
		return schema.Website{}, err
	}
	w, err := d.database.UpdateWebsite(id, func(w *db.WebsiteRecord) error {
		block := form.Action == schema.ModerateBlock
		w.IsFlagged = block
		w.IsActive = !block
		return nil
	})
	if errors.Is(err, db.ErrNotFound) {
		return schema.Website{}, notFound("Website")
	}
	if err != nil {
		return schema.Website{}, err
	}
	d.logger.Info(2232, "website moderated", fields.NewFields(
		fields.NewField("admin", adminID),
		fields.NewField("website", id),
		fields.NewField("action", form.Action)))
	return w.Website, nil
}

// Queue returns the queue counters and the crawls that are waiting or running
func (d *Data) Queue() (schema.QueueResponse, error) {
	var out schema.QueueResponse
	crawls, err := d.database.ListCrawls(nil)
	if err != nil {
		return out, err
	}
	out.Success = true
	out.Data.Stats = queueStats(crawls)
	out.Data.ActiveJobs = []schema.QueueJob{}
	for _, c := range crawls {
		if c.Status == schema.CrawlPending || c.Status == schema.CrawlInProgress {
			out.Data.ActiveJobs = append(out.Data.ActiveJobs, schema.QueueJob{
				ID:        c.ID,
				Name:      "crawl " + c.Website.URL,
				Status:    c.Status,
				CreatedAt: c.CreatedAt,
			})
		}
	}
	return out, nil
}

// since converts an analytics period such as "30d" to its start time
func (d *Data) since(period string) (time.Time, error) {
	days, err := schema.ParsePeriod(period)
	if err != nil {
		return time.Time{}, badRequest(err.Error())
	}
	return d.clock.Now().AddDate(0, 0, -days), nil
}

func (d *Data) WebsiteAnalytics(period string) (schema.WebsiteAnalytics, error) {
	var out schema.WebsiteAnalytics
	since, err := d.since(period)
	if err != nil {
		return out, err
	}
	websites, err := d.database.ListWebsites(nil)
	if err != nil {
		return out, err
	}

	out.Success = true
	out.Data.TotalWebsites = len(websites)
	out.Data.WebsitesByCategory = map[string]int{}
	for _, c := range countCategories(websites) {
		out.Data.WebsitesByCategory[c.Category] = c.Count
	}
	out.Data.NewWebsites = []schema.NewWebsite{}
	for _, w := range websites {
		if w.IsActive {
			out.Data.ActiveWebsites++
			out.Data.WebsitesByStatus.Active++
		} else {
			out.Data.WebsitesByStatus.Inactive++
		}
		if w.CreatedAt.After(since) {
			out.Data.NewWebsites = append(out.Data.NewWebsites, schema.NewWebsite{
				ID:        w.ID,
				URL:       w.URL,
				Category:  w.Category,
				IsActive:  w.IsActive,
				CreatedAt: w.CreatedAt,
			})
		}
	}
	return out, nil
}

func (d *Data) UserAnalytics(period string) (schema.UserAnalytics, error) {
	var out schema.UserAnalytics
	since, err := d.since(period)
	if err != nil {
		return out, err
	}
	users, err := d.database.ListUsers(nil)
	if err != nil {
		return out, err
	}

	out.Success = true
	out.Data.TotalUsers = len(users)
	out.Data.NewUsers = []schema.UserSummary{}
	for _, u := range users {
		if u.IsActive {
			out.Data.ActiveUsers++
		}
		switch u.Role {
		case schema.RoleAdmin:
			out.Data.UsersByRole.Admin++
		default:
			out.Data.UsersByRole.User++
		}
		if u.CreatedAt.After(since) {
			out.Data.NewUsers = append(out.Data.NewUsers, u.Summary())
		}
	}
	return out, nil
}
