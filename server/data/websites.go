//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
)

const (
	DefaultCrawlDepth = 3
	MaxCrawlDepth     = 10
	defaultUserAgent  = "DeadlinkWatchdog/1.0"
)

// website returns the website if it belongs to userID
func (d *Data) website(userID, id string) (*db.WebsiteRecord, error) {
	w, err := d.database.GetWebsite(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && w.UserID != userID) {
		return nil, notFound("Website")
	}
	return w, err
}

func (d *Data) ListWebsites(userID string, q WebsiteQuery) ([]schema.Website, schema.Pagination, error) {
	records, err := d.database.ListWebsites(func(w *db.WebsiteRecord) bool {
		return w.UserID == userID &&
			(q.Category == "" || w.Category == q.Category) &&
			matchBool(q.IsActive, w.IsActive)
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}
	page, pg := paginate(records, q.Page)
	websites := make([]schema.Website, len(page))
	for i := range page {
		websites[i] = page[i].Website
	}
	return websites, pg, nil
}

func (d *Data) GetWebsite(userID, id string) (schema.Website, error) {
	w, err := d.website(userID, id)
	if err != nil {
		return schema.Website{}, err
	}
	return w.Website, nil
}

func (d *Data) CreateWebsite(userID string, form schema.WebsiteForm) (schema.Website, error) {
	if err := form.Validate(); err != nil {
		return schema.Website{}, err
	}
	w := &db.WebsiteRecord{Website: schema.Website{
		UserID:      userID,
		IsActive:    true,
		HealthScore: 100,
		CreatedAt:   d.clock.Now(),
	}}
	applyWebsiteForm(&w.Website, form)
	if w.CrawlFrequency == "" {
		w.CrawlFrequency = schema.FrequencyWeekly
	}
	if err := d.database.CreateWebsite(w); err != nil {
		return schema.Website{}, err
	}
	d.logger.Info(2220, "website created", fields.NewFields(
		fields.NewField("id", w.ID),
		fields.NewField("url", w.URL),
		fields.NewField("user", userID)))
	return w.Website, nil
}

func (d *Data) UpdateWebsite(userID, id string, form schema.WebsiteForm) (schema.Website, error) {
	if err := form.Validate(); err != nil {
		return schema.Website{}, err
	}
	if _, err := d.website(userID, id); err != nil {
		return schema.Website{}, err
	}
	w, err := d.database.UpdateWebsite(id, func(w *db.WebsiteRecord) error {
		applyWebsiteForm(&w.Website, form)
		if form.IsActive != nil {
			w.IsActive = *form.IsActive
		}
		return nil
	})
	if err != nil {
		return schema.Website{}, err
	}
	return w.Website, nil
}

func applyWebsiteForm(w *schema.Website, form schema.WebsiteForm) {
	w.Name = form.Name
	w.URL = form.URL
	w.Description = form.Description
	w.Category = form.Category
	if form.CrawlFrequency != "" {
		w.CrawlFrequency = form.CrawlFrequency
	}
	w.NotificationEmail = form.NotificationEmail
	w.WebhookURL = form.WebhookURL
}

func (d *Data) DeleteWebsite(userID, id string) error {
	if _, err := d.website(userID, id); err != nil {
		return err
	}
	if err := d.database.DeleteWebsite(id); err != nil {
		return err
	}
	d.logger.Infof(2221, "website %s deleted by %s", id, userID)
	return nil
}

// TriggerCrawl queues a crawl of the website. A depth of 0 uses the default.
func (d *Data) TriggerCrawl(userID, id string, depth int) (*schema.CrawlResult, error) {
	w, err := d.website(userID, id)
	if err != nil {
		return nil, err
	}
	if !w.IsActive {
		return nil, badRequest("Website is not active")
	}
	if depth == 0 {
		depth = DefaultCrawlDepth
	}
	if depth < 1 || depth > MaxCrawlDepth {
		return nil, badRequest("Crawl depth must be between 1 and 10")
	}
	return d.queueCrawl(w, depth, "manual")
}

func (d *Data) queueCrawl(w *db.WebsiteRecord, depth int, by string) (*schema.CrawlResult, error) {
	c := &schema.CrawlResult{
		ID:         db.NewID(db.PrefixCrawl),
		WebsiteID:  w.ID,
		UserID:     w.UserID,
		Status:     schema.CrawlPending,
		CrawlDepth: depth,
		UserAgent:  defaultUserAgent,
		Website: schema.CrawlWebsite{
			ID:       w.ID,
			Name:     w.Name,
			URL:      w.URL,
			Category: w.Category,
		},
	}
	c.Summary = schema.CrawlSummary{JobID: c.ID, Errors: []string{}, ScheduledBy: by}
	c.CreatedAt = d.clock.Now()
	if err := d.database.CreateCrawl(c); err != nil {
		return nil, err
	}
	d.logger.Infof(2222, "crawl %s queued for %s", c.ID, w.URL)
	return c, nil
}

func (d *Data) WebsiteBrokenLinks(userID, id string, q BrokenLinkQuery) ([]schema.WebsiteBrokenLink, schema.Pagination, error) {
	if _, err := d.website(userID, id); err != nil {
		return nil, schema.Pagination{}, err
	}
	links, err := d.database.ListBrokenLinks(func(l *schema.CrawlBrokenLink) bool {
		return l.WebsiteID == id &&
			(q.ErrorType == "" || l.ErrorType == q.ErrorType) &&
			matchBool(q.IsFixed, l.IsFixed)
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}
	page, pg := paginate(links, q.Page)
	out := make([]schema.WebsiteBrokenLink, len(page))
	for i, l := range page {
		out[i] = schema.WebsiteBrokenLink{
			ID:          l.ID,
			URL:         l.URL,
			SourceURL:   l.SourceURL,
			ErrorType:   l.ErrorType,
			StatusCode:  l.StatusCode,
			IsFixed:     l.IsFixed,
			LastChecked: l.LastCheckedAt,
		}
	}
	return out, pg, nil
}
