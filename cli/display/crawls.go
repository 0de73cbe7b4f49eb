/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"io"
	"sort"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func Crawls(w io.Writer, resp *schema.CrawlsResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "ID", "Website", "Status", "Checked", "Broken", "Depth", "Created")
		for _, c := range resp.Data.Crawls {
			table.Append([]string{
				c.ID, orDash(c.Website.Name), label(c.Status), number(c.TotalLinksChecked),
				number(c.BrokenLinksFound), number(c.CrawlDepth), when(c.CreatedAt),
			})
		}
		table.Render()
		pagination(w, resp.Data.Pagination)
	})
}

func Crawl(w io.Writer, c *schema.CrawlResult) error {
	return Output(w, c, func(w io.Writer) {
		errMsg := "-"
		if c.ErrorMessage != nil {
			errMsg = *c.ErrorMessage
		}
		keyValue(w, [][]string{
			{"ID", c.ID},
			{"Website", c.Website.Name + " " + c.Website.URL},
			{"Status", label(c.Status)},
			{"Started", whenPtr(c.StartedAt)},
			{"Completed", whenPtr(c.CompletedAt)},
			{"Duration", (time.Duration(c.Summary.CrawlDuration) * time.Millisecond).String()},
			{"Links found", number(c.TotalLinksFound)},
			{"Links checked", number(c.TotalLinksChecked)},
			{"Broken", number(c.BrokenLinksFound)},
			{"Redirects", number(c.RedirectsFound)},
			{"Timeouts", number(c.TimeoutsFound)},
			{"Average response", millis(c.AverageResponseTime)},
			{"Depth", number(c.CrawlDepth)},
			{"Scheduled by", orDash(c.Summary.ScheduledBy)},
			{"Error", errMsg},
		})
		if len(c.BrokenLinkRecords) > 0 {
			crawlBrokenLinks(w, c.BrokenLinkRecords)
		}
	})
}

func CrawlBrokenLinks(w io.Writer, resp *schema.CrawlBrokenLinksResponse) error {
	return Output(w, resp, func(w io.Writer) {
		crawlBrokenLinks(w, resp.Data.BrokenLinks)
		pagination(w, resp.Data.Pagination)
	})
}

func crawlBrokenLinks(w io.Writer, links []schema.CrawlBrokenLink) {
	table := newTable(w, "URL", "Source", "Text", "Error", "Status", "Fixed")
	for _, l := range links {
		table.Append([]string{l.URL, l.SourceURL, orDash(l.LinkText), l.ErrorType, status(l.StatusCode), yesNo(l.IsFixed)})
	}
	table.Render()
}

func CrawlStats(w io.Writer, s *schema.CrawlStats) error {
	return Output(w, s, func(w io.Writer) {
		rows := [][]string{
			{"Total crawls", number(s.TotalCrawls)},
			{"Links checked", number(s.TotalLinksChecked)},
			{"Broken links", number(s.TotalBrokenLinks)},
			{"Average response", millis(s.AverageResponseTime)},
		}
		statuses := make([]string, 0, len(s.ByStatus))
		for k := range s.ByStatus {
			statuses = append(statuses, k)
		}
		sort.Strings(statuses)
		for _, k := range statuses {
			rows = append(rows, []string{label(k), number(s.ByStatus[k])})
		}
		keyValue(w, rows)
	})
}

func CrawlTrends(w io.Writer, resp *schema.CrawlTrendsResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "Date", "Crawls", "Links found", "Broken")
		for _, t := range resp.Data.Trends {
			table.Append([]string{t.Date, number(t.Crawls), number(t.LinksFound), number(t.BrokenLinks)})
		}
		table.Render()
	})
}
