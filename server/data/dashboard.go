//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
)

const (
	recentWindow     = 7 * 24 * time.Hour
	topIssues        = 5
	recentActivity   = 10
	warningHealth    = 80
	criticalHealth   = 50
	uncategorized    = "uncategorized"
	maxRecentBroken  = 100
	alertFailedCrawl = "crawl_failed"
	alertLowHealth   = "low_health"
	alertInactive    = "inactive_website"
)

func (d *Data) userWebsites(userID string) ([]db.WebsiteRecord, error) {
	return d.database.ListWebsites(func(w *db.WebsiteRecord) bool {
		return w.UserID == userID
	})
}

func (d *Data) userBrokenLinks(websites []db.WebsiteRecord, keep func(*schema.CrawlBrokenLink) bool) ([]schema.CrawlBrokenLink, error) {
	owned := map[string]bool{}
	for _, w := range websites {
		owned[w.ID] = true
	}
	return d.database.ListBrokenLinks(func(l *schema.CrawlBrokenLink) bool {
		return owned[l.WebsiteID] && (keep == nil || keep(l))
	})
}

func (d *Data) Overview(userID string) (schema.DashboardOverview, error) {
	websites, err := d.userWebsites(userID)
	if err != nil {
		return schema.DashboardOverview{}, err
	}
	crawls, err := d.userCrawls(userID)
	if err != nil {
		return schema.DashboardOverview{}, err
	}
	links, err := d.userBrokenLinks(websites, func(l *schema.CrawlBrokenLink) bool { return !l.IsFixed })
	if err != nil {
		return schema.DashboardOverview{}, err
	}

	since := d.clock.Now().Add(-recentWindow)
	o := schema.DashboardOverview{
		TotalWebsites:    len(websites),
		TotalCrawls:      len(crawls),
		TotalBrokenLinks: len(links),
	}
	var health float64
	for _, w := range websites {
		if w.IsActive {
			o.ActiveWebsites++
		}
		health += w.HealthScore
	}
	if len(websites) > 0 {
		o.AverageHealthScore = math.Round(health/float64(len(websites))*10) / 10
	}
	for _, c := range crawls {
		if c.CreatedAt.After(since) {
			o.RecentCrawls++
		}
	}
	for _, l := range links {
		if l.FirstDetectedAt.After(since) {
			o.RecentBrokenLinks++
		}
	}
	return o, nil
}

// Dashboard returns the overview with the least healthy websites and recent crawls
func (d *Data) Dashboard(userID string) (schema.DashboardData, error) {
	var out schema.DashboardData
	var err error
	if out.Data.Overview, err = d.Overview(userID); err != nil {
		return out, err
	}

	health, err := d.HealthScores(userID)
	if err != nil {
		return out, err
	}
	out.Data.TopIssues = []schema.WebsiteHealth{}
	for _, h := range health {
		if len(out.Data.TopIssues) == topIssues {
			break
		}
		if h.BrokenLinks > 0 {
			out.Data.TopIssues = append(out.Data.TopIssues, h)
		}
	}

	crawls, err := d.userCrawls(userID)
	if err != nil {
		return out, err
	}
	out.Data.RecentActivity = []schema.CrawlActivity{}
	for i := 0; i < len(crawls) && i < recentActivity; i++ {
		c := crawls[i]
		out.Data.RecentActivity = append(out.Data.RecentActivity, schema.CrawlActivity{
			ID:                c.ID,
			Status:            c.Status,
			BrokenLinksFound:  c.BrokenLinksFound,
			TotalLinksChecked: c.TotalLinksChecked,
			CreatedAt:         c.CreatedAt,
			Website:           c.Website,
		})
	}
	out.Success = true
	return out, nil
}

// HealthScores lists websites from least to most healthy
func (d *Data) HealthScores(userID string) ([]schema.WebsiteHealth, error) {
	websites, err := d.userWebsites(userID)
	if err != nil {
		return nil, err
	}
	out := make([]schema.WebsiteHealth, len(websites))
	for i, w := range websites {
		out[i] = schema.WebsiteHealth{
			ID:          w.ID,
			Name:        w.Name,
			URL:         w.URL,
			HealthScore: w.HealthScore,
			TotalLinks:  w.TotalLinks,
			BrokenLinks: w.BrokenLinks,
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].HealthScore < out[j].HealthScore })
	return out, nil
}

// BrokenLinksSummary counts unfixed broken links by error type and
// returns a page of the most recent ones matching q
func (d *Data) BrokenLinksSummary(userID string, q BrokenLinkQuery) ([]schema.ErrorSummary, []schema.BrokenLink, error) {
	websites, err := d.userWebsites(userID)
	if err != nil {
		return nil, nil, err
	}
	links, err := d.userBrokenLinks(websites, func(l *schema.CrawlBrokenLink) bool {
		return (q.ErrorType == "" || l.ErrorType == q.ErrorType) && matchBool(q.IsFixed, l.IsFixed)
	})
	if err != nil {
		return nil, nil, err
	}

	counts := map[string]int{}
	for _, l := range links {
		counts[l.ErrorType]++
	}
	summary := make([]schema.ErrorSummary, 0, len(counts))
	for t, n := range counts {
		summary = append(summary, schema.ErrorSummary{ErrorType: t, Count: n})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].ErrorType < summary[j].ErrorType
	})

	if q.Limit > maxRecentBroken {
		q.Limit = maxRecentBroken
	}
	page, _ := paginate(links, q.Page)
	recent := make([]schema.BrokenLink, len(page))
	for i, l := range page {
		recent[i] = schema.BrokenLink{
			ID:         l.ID,
			URL:        l.URL,
			SourceURL:  l.SourceURL,
			ErrorType:  l.ErrorType,
			StatusCode: l.StatusCode,
			CreatedAt:  l.CreatedAt,
		}
	}
	return summary, recent, nil
}

func (d *Data) CrawlPerformance(userID string, days int) ([]schema.CrawlPerformance, error) {
	days, err := checkDays(days)
	if err != nil {
		return nil, err
	}
	crawls, err := d.userCrawls(userID)
	if err != nil {
		return nil, err
	}

	out := make([]schema.CrawlPerformance, days)
	index := map[string]int{}
	for i, day := range d.days(days) {
		out[i].Date = day
		index[day] = i
	}
	completed := make([]int, days)
	for _, c := range crawls {
		i, ok := index[c.CreatedAt.UTC().Format(dayFormat)]
		if !ok {
			continue
		}
		out[i].Crawls++
		switch c.Status {
		case schema.CrawlFailed:
			out[i].FailedCrawls++
		case schema.CrawlCompleted:
			completed[i]++
			out[i].AverageResponseTime += c.AverageResponseTime
			out[i].AverageDuration += float64(c.Summary.CrawlDuration)
		}
	}
	for i, n := range completed {
		if n > 0 {
			out[i].AverageResponseTime = math.Round(out[i].AverageResponseTime/float64(n)*100) / 100
			out[i].AverageDuration = math.Round(out[i].AverageDuration/float64(n)*100) / 100
		}
	}
	return out, nil
}

func (d *Data) WebsiteCategories(userID string) ([]schema.CategoryCount, error) {
	websites, err := d.userWebsites(userID)
	if err != nil {
		return nil, err
	}
	return countCategories(websites), nil
}

func countCategories(websites []db.WebsiteRecord) []schema.CategoryCount {
	counts := map[string]int{}
	for _, w := range websites {
		c := w.Category
		if c == "" {
			c = uncategorized
		}
		counts[c]++
	}
	out := make([]schema.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, schema.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Alerts reports failed crawls from the last week, unhealthy websites
// and inactive websites, most severe first
func (d *Data) Alerts(userID string) ([]schema.DashboardAlert, error) {
	websites, err := d.userWebsites(userID)
	if err != nil {
		return nil, err
	}
	crawls, err := d.userCrawls(userID)
	if err != nil {
		return nil, err
	}

	now := d.clock.Now()
	alerts := []schema.DashboardAlert{}
	for _, c := range crawls {
		if c.Status == schema.CrawlFailed && c.CreatedAt.After(now.Add(-recentWindow)) {
			alerts = append(alerts, schema.DashboardAlert{
				Type:      alertFailedCrawl,
				Severity:  schema.SeverityCritical,
				Message:   fmt.Sprintf("Crawl of %s failed", c.Website.Name),
				WebsiteID: c.WebsiteID,
				CreatedAt: c.CreatedAt,
			})
		}
	}
	for _, w := range websites {
		switch {
		case !w.IsActive:
			alerts = append(alerts, schema.DashboardAlert{
				Type:      alertInactive,
				Severity:  schema.SeverityInfo,
				Message:   fmt.Sprintf("%s is not being monitored", w.Name),
				WebsiteID: w.ID,
				CreatedAt: w.UpdatedAt,
			})
		case w.HealthScore < criticalHealth:
			alerts = append(alerts, healthAlert(w, schema.SeverityCritical))
		case w.HealthScore < warningHealth:
			alerts = append(alerts, healthAlert(w, schema.SeverityWarning))
		}
	}

	rank := map[string]int{schema.SeverityCritical: 0, schema.SeverityWarning: 1, schema.SeverityInfo: 2}
	sort.SliceStable(alerts, func(i, j int) bool {
		return rank[alerts[i].Severity] < rank[alerts[j].Severity]
	})
	return alerts, nil
}

func healthAlert(w db.WebsiteRecord, severity string) schema.DashboardAlert {
	return schema.DashboardAlert{
		Type:      alertLowHealth,
		Severity:  severity,
		Message:   fmt.Sprintf("%s health score is %.1f%% with %d broken links", w.Name, w.HealthScore, w.BrokenLinks),
		WebsiteID: w.ID,
		CreatedAt: w.UpdatedAt,
	}
}
