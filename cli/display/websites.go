/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func Websites(w io.Writer, resp *schema.WebsitesResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "ID", "Name", "URL", "Category", "Active", "Health", "Broken", "Last crawled")
		for _, s := range resp.Data.Websites {
			table.Append([]string{
				s.ID, s.Name, s.URL, orDash(s.Category), yesNo(s.IsActive),
				percent(s.HealthScore), number(s.BrokenLinks), whenPtr(s.LastCrawledAt),
			})
		}
		table.Render()
		pagination(w, resp.Data.Pagination)
	})
}

func Website(w io.Writer, s *schema.Website) error {
	return Output(w, s, func(w io.Writer) {
		keyValue(w, [][]string{
			{"ID", s.ID},
			{"Name", s.Name},
			{"URL", s.URL},
			{"Description", orDash(s.Description)},
			{"Category", orDash(s.Category)},
			{"Crawl frequency", label(s.CrawlFrequency)},
			{"Notification email", orDash(s.NotificationEmail)},
			{"Webhook", orDash(s.WebhookURL)},
			{"Active", yesNo(s.IsActive)},
			{"Health score", percent(s.HealthScore)},
			{"Links", number(s.TotalLinks)},
			{"Broken links", number(s.BrokenLinks)},
			{"Last crawled", whenPtr(s.LastCrawledAt)},
			{"Created", when(s.CreatedAt)},
		})
	})
}

func CrawlTriggered(w io.Writer, resp *schema.CrawlTriggerResponse) error {
	return Output(w, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "%s\nCrawl %s is %s\n", resp.Message, resp.Data.CrawlID, label(resp.Data.Status))
	})
}

func WebsiteBrokenLinks(w io.Writer, resp *schema.WebsiteBrokenLinksResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "URL", "Source", "Error", "Status", "Fixed", "Last checked")
		for _, l := range resp.Data.BrokenLinks {
			table.Append([]string{l.URL, orDash(l.SourceURL), l.ErrorType, status(l.StatusCode), yesNo(l.IsFixed), when(l.LastChecked)})
		}
		table.Render()
		pagination(w, resp.Data.Pagination)
	})
}

func status(code int) string {
	if code == 0 {
		return "-"
	}
	return strconv.Itoa(code)
}
