/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func Overview(w io.Writer, resp *schema.DashboardData) error {
	return Output(w, resp, func(w io.Writer) {
		overview(w, resp.Data.Overview)
		_, _ = fmt.Fprintln(w, "\nTop issues")
		healthTable(w, resp.Data.TopIssues)
		_, _ = fmt.Fprintln(w, "\nRecent activity")
		activity(w, resp.Data.RecentActivity)
	})
}

func overview(w io.Writer, o schema.DashboardOverview) {
	keyValue(w, [][]string{
		{"Websites", number(o.TotalWebsites)},
		{"Active websites", number(o.ActiveWebsites)},
		{"Crawls", number(o.TotalCrawls)},
		{"Crawls (7 days)", number(o.RecentCrawls)},
		{"Broken links", number(o.TotalBrokenLinks)},
		{"Broken links (7 days)", number(o.RecentBrokenLinks)},
		{"Average health", percent(o.AverageHealthScore)},
	})
}

func activity(w io.Writer, items []schema.CrawlActivity) {
	table := newTable(w, "Crawl", "Website", "Status", "Checked", "Broken", "Created")
	for _, a := range items {
		table.Append([]string{a.ID, a.Website.Name, label(a.Status), number(a.TotalLinksChecked), number(a.BrokenLinksFound), when(a.CreatedAt)})
	}
	table.Render()
}

func healthTable(w io.Writer, websites []schema.WebsiteHealth) {
	table := newTable(w, "ID", "Name", "URL", "Health", "Links", "Broken")
	for _, s := range websites {
		table.Append([]string{s.ID, s.Name, s.URL, percent(s.HealthScore), number(s.TotalLinks), number(s.BrokenLinks)})
	}
	table.Render()
}

func HealthScores(w io.Writer, websites []schema.WebsiteHealth) error {
	return Output(w, websites, func(w io.Writer) {
		healthTable(w, websites)
	})
}

func BrokenLinksSummary(w io.Writer, resp *schema.BrokenLinksResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "Error type", "Count")
		for _, s := range resp.Data.Summary {
			table.Append([]string{s.ErrorType, number(s.Count)})
		}
		table.Render()

		_, _ = fmt.Fprintln(w, "\nMost recent")
		table = newTable(w, "URL", "Source", "Error", "Status", "Found")
		for _, l := range resp.Data.RecentBrokenLinks {
			table.Append([]string{l.URL, l.SourceURL, l.ErrorType, status(l.StatusCode), when(l.CreatedAt)})
		}
		table.Render()
	})
}

func CrawlPerformance(w io.Writer, resp *schema.CrawlPerformanceResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "Date", "Crawls", "Failed", "Avg response", "Avg duration")
		for _, p := range resp.Data.Performance {
			table.Append([]string{p.Date, number(p.Crawls), number(p.FailedCrawls), millis(p.AverageResponseTime), millis(p.AverageDuration)})
		}
		table.Render()
	})
}

func Categories(w io.Writer, categories []schema.CategoryCount) error {
	return Output(w, categories, func(w io.Writer) {
		table := newTable(w, "Category", "Websites")
		for _, c := range categories {
			table.Append([]string{label(c.Category), number(c.Count)})
		}
		table.Render()
	})
}

func Alerts(w io.Writer, alerts []schema.DashboardAlert) error {
	return Output(w, alerts, func(w io.Writer) {
		if len(alerts) == 0 {
			_, _ = fmt.Fprintln(w, "No alerts")
			return
		}
		table := newTable(w, "Severity", "Type", "Message", "Website", "Created")
		for _, a := range alerts {
			table.Append([]string{label(a.Severity), label(a.Type), a.Message, orDash(a.WebsiteID), when(a.CreatedAt)})
		}
		table.Render()
	})
}

func Summary(w io.Writer, s *schema.DashboardSummary) error {
	return Output(w, s, func(w io.Writer) {
		overview(w, s.Overview)
		_, _ = fmt.Fprintln(w, "\nAlerts")
		if len(s.Alerts) == 0 {
			_, _ = fmt.Fprintln(w, "No alerts")
		}
		for _, a := range s.Alerts {
			_, _ = fmt.Fprintf(w, "  [%s] %s\n", label(a.Severity), a.Message)
		}
		_, _ = fmt.Fprintln(w, "\nHealth scores")
		healthTable(w, s.HealthScores)
		_, _ = fmt.Fprintln(w, "\nRecent activity")
		activity(w, s.RecentActivity)
	})
}
