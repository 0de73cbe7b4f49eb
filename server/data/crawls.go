//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"math"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
)

const dayFormat = "2006-01-02"

// crawl returns the crawl if it belongs to userID
func (d *Data) crawl(userID, id string) (*schema.CrawlResult, error) {
	c, err := d.database.GetCrawl(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && c.UserID != userID) {
		return nil, notFound("Crawl result")
	}
	return c, err
}

func (d *Data) userCrawls(userID string) ([]schema.CrawlResult, error) {
	return d.database.ListCrawls(func(c *schema.CrawlResult) bool {
		return c.UserID == userID
	})
}

func (d *Data) ListCrawls(userID string, q CrawlQuery) ([]schema.CrawlResult, schema.Pagination, error) {
	crawls, err := d.database.ListCrawls(func(c *schema.CrawlResult) bool {
		return c.UserID == userID &&
			(q.Status == "" || c.Status == q.Status) &&
			(q.WebsiteID == "" || c.WebsiteID == q.WebsiteID)
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}
	page, pg := paginate(crawls, q.Page)
	return page, pg, nil
}

// GetCrawl returns the crawl with its broken link records
func (d *Data) GetCrawl(userID, id string) (schema.CrawlResult, error) {
	c, err := d.crawl(userID, id)
	if err != nil {
		return schema.CrawlResult{}, err
	}
	links, err := d.database.ListBrokenLinks(func(l *schema.CrawlBrokenLink) bool {
		return l.CrawlResultID == c.ID
	})
	if err != nil {
		return schema.CrawlResult{}, err
	}
	c.BrokenLinkRecords = links
	return *c, nil
}

func (d *Data) CrawlBrokenLinks(userID, id string, q BrokenLinkQuery) ([]schema.CrawlBrokenLink, schema.Pagination, error) {
	if _, err := d.crawl(userID, id); err != nil {
		return nil, schema.Pagination{}, err
	}
	links, err := d.database.ListBrokenLinks(func(l *schema.CrawlBrokenLink) bool {
		return l.CrawlResultID == id && (q.ErrorType == "" || l.ErrorType == q.ErrorType)
	})
	if err != nil {
		return nil, schema.Pagination{}, err
	}
	page, pg := paginate(links, q.Page)
	return page, pg, nil
}

// RetryCrawl queues a new crawl with the settings of a failed one
func (d *Data) RetryCrawl(userID, id string) (*schema.CrawlResult, error) {
	c, err := d.crawl(userID, id)
	if err != nil {
		return nil, err
	}
	if c.Status != schema.CrawlFailed {
		return nil, badRequest("Only failed crawls can be retried")
	}
	w, err := d.website(userID, c.WebsiteID)
	if err != nil {
		return nil, err
	}
	return d.queueCrawl(w, c.CrawlDepth, "retry")
}

// CrawlReport is the outcome of a crawl, supplied by whatever ran it
type CrawlReport struct {
	StartedAt           time.Time
	TotalLinksFound     int
	TotalLinksChecked   int
	RedirectsFound      int
	TimeoutsFound       int
	AverageResponseTime float64
	BrokenLinks         []schema.CrawlBrokenLink
	Error               string
}

// CompleteCrawl records the result of a crawl and updates the website's
// link counts and health score. A report with Error marks the crawl failed.
func (d *Data) CompleteCrawl(id string, r CrawlReport) (*schema.CrawlResult, error) {
	now := d.clock.Now()
	c, err := d.database.UpdateCrawl(id, func(c *schema.CrawlResult) error {
		if c.Status == schema.CrawlCompleted || c.Status == schema.CrawlFailed {
			return badRequest("Crawl already finished")
		}
		started := r.StartedAt
		if started.IsZero() {
			started = now
		}
		c.StartedAt = &started
		c.CompletedAt = &now
		c.TotalLinksFound = r.TotalLinksFound
		c.TotalLinksChecked = r.TotalLinksChecked
		c.BrokenLinksFound = len(r.BrokenLinks)
		c.RedirectsFound = r.RedirectsFound
		c.TimeoutsFound = r.TimeoutsFound
		c.AverageResponseTime = r.AverageResponseTime
		c.Summary.CrawlDuration = now.Sub(started).Milliseconds()
		c.Status = schema.CrawlCompleted
		if r.Error != "" {
			msg := r.Error
			c.Status = schema.CrawlFailed
			c.ErrorMessage = &msg
			c.Summary.Errors = append(c.Summary.Errors, msg)
		}
		return nil
	})
	if errors.Is(err, db.ErrNotFound) {
		return nil, notFound("Crawl result")
	}
	if err != nil {
		return nil, err
	}

	for i := range r.BrokenLinks {
		l := r.BrokenLinks[i]
		l.WebsiteID = c.WebsiteID
		l.CrawlResultID = c.ID
		l.LastCheckedAt = now
		l.CheckCount++
		if err = d.database.PutBrokenLink(&l); err != nil {
			return nil, err
		}
	}

	if c.Status == schema.CrawlCompleted {
		_, err = d.database.UpdateWebsite(c.WebsiteID, func(w *db.WebsiteRecord) error {
			w.TotalLinks = c.TotalLinksChecked
			w.BrokenLinks = c.BrokenLinksFound
			w.HealthScore = healthScore(c.TotalLinksChecked, c.BrokenLinksFound)
			w.LastCrawledAt = &now
			return nil
		})
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
	}

	d.logger.Info(2223, "crawl finished", fields.NewFields(
		fields.NewField("id", c.ID),
		fields.NewField("status", c.Status),
		fields.NewField("broken", c.BrokenLinksFound)))
	return c, nil
}

// healthScore is the percentage of working links, rounded to one decimal
func healthScore(checked, broken int) float64 {
	if checked <= 0 {
		return 100
	}
	score := 100 * float64(checked-broken) / float64(checked)
	return math.Round(math.Max(score, 0)*10) / 10
}

func (d *Data) CrawlStats(userID string) (schema.CrawlStats, error) {
	crawls, err := d.userCrawls(userID)
	if err != nil {
		return schema.CrawlStats{}, err
	}
	stats := schema.CrawlStats{ByStatus: map[string]int{}}
	for _, s := range schema.CrawlStatusAll {
		stats.ByStatus[s] = 0
	}
	var timed int
	for _, c := range crawls {
		stats.TotalCrawls++
		stats.ByStatus[c.Status]++
		stats.TotalLinksChecked += c.TotalLinksChecked
		stats.TotalBrokenLinks += c.BrokenLinksFound
		if c.Status == schema.CrawlCompleted {
			stats.AverageResponseTime += c.AverageResponseTime
			timed++
		}
	}
	if timed > 0 {
		stats.AverageResponseTime = math.Round(stats.AverageResponseTime/float64(timed)*100) / 100
	}
	return stats, nil
}

// days returns the last n calendar days, oldest first, ending today
func (d *Data) days(n int) []string {
	today := d.clock.Now().UTC()
	out := make([]string, n)
	for i := range n {
		out[i] = today.AddDate(0, 0, i-n+1).Format(dayFormat)
	}
	return out
}

func checkDays(days int) (int, error) {
	if days == 0 {
		return 7, nil
	}
	if days < 1 || days > 365 {
		return 0, badRequest("Days must be between 1 and 365")
	}
	return days, nil
}

func (d *Data) CrawlTrends(userID string, days int) ([]schema.CrawlTrend, error) {
	days, err := checkDays(days)
	if err != nil {
		return nil, err
	}
	crawls, err := d.userCrawls(userID)
	if err != nil {
		return nil, err
	}

	trends := make([]schema.CrawlTrend, days)
	index := map[string]int{}
	for i, day := range d.days(days) {
		trends[i].Date = day
		index[day] = i
	}
	for _, c := range crawls {
		if i, ok := index[c.CreatedAt.UTC().Format(dayFormat)]; ok {
			trends[i].Crawls++
			trends[i].BrokenLinks += c.BrokenLinksFound
			trends[i].LinksFound += c.TotalLinksFound
		}
	}
	return trends, nil
}
