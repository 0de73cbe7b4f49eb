/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func AdminStats(w io.Writer, s *schema.AdminStats) error {
	return Output(w, s, func(w io.Writer) {
		keyValue(w, [][]string{
			{"Users", number(s.TotalUsers)},
			{"Websites", number(s.TotalWebsites)},
			{"Active websites", number(s.ActiveWebsites)},
			{"Crawls", number(s.TotalCrawls)},
			{"Broken links", number(s.TotalBrokenLinks)},
		})
		_, _ = fmt.Fprintln(w, "\nQueues")
		queues(w, s.QueueStats)
		_, _ = fmt.Fprintln(w, "\nRecent users")
		table := newTable(w, "ID", "Email", "Name", "Created")
		for _, u := range s.RecentUsers {
			table.Append([]string{u.ID, u.Email, u.FirstName + " " + u.LastName, when(u.CreatedAt)})
		}
		table.Render()
	})
}

func queues(w io.Writer, q schema.QueueStats) {
	table := newTable(w, "Queue", "Waiting", "Active", "Completed", "Failed", "Delayed")
	for _, row := range []struct {
		name string
		c    schema.QueueCounts
	}{{"Crawl", q.Crawl}, {"Notification", q.Notification}} {
		table.Append([]string{row.name, number(row.c.Waiting), number(row.c.Active), number(row.c.Completed), number(row.c.Failed), number(row.c.Delayed)})
	}
	table.Render()
}

func Queue(w io.Writer, resp *schema.QueueResponse) error {
	return Output(w, resp, func(w io.Writer) {
		queues(w, resp.Data.Stats)
		if len(resp.Data.ActiveJobs) == 0 {
			return
		}
		_, _ = fmt.Fprintln(w, "\nActive jobs")
		table := newTable(w, "ID", "Name", "Status", "Created")
		for _, j := range resp.Data.ActiveJobs {
			table.Append([]string{j.ID, j.Name, label(j.Status), when(j.CreatedAt)})
		}
		table.Render()
	})
}

func Moderation(w io.Writer, resp *schema.WebsitesModerationResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "ID", "URL", "Owner", "Active", "Flagged", "Reports", "Created")
		for _, s := range resp.Data.Websites {
			table.Append([]string{s.ID, s.URL, s.User.Email, yesNo(s.IsActive), yesNo(s.IsFlagged), number(s.Reports), when(s.CreatedAt)})
		}
		table.Render()
		pagination(w, resp.Data.Pagination)
	})
}

func WebsiteAnalytics(w io.Writer, resp *schema.WebsiteAnalytics) error {
	return Output(w, resp, func(w io.Writer) {
		d := resp.Data
		rows := [][]string{
			{"Websites", number(d.TotalWebsites)},
			{"Active", number(d.WebsitesByStatus.Active)},
			{"Inactive", number(d.WebsitesByStatus.Inactive)},
		}
		categories := make([]string, 0, len(d.WebsitesByCategory))
		for k := range d.WebsitesByCategory {
			categories = append(categories, k)
		}
		sort.Strings(categories)
		for _, k := range categories {
			rows = append(rows, []string{"Category " + label(k), number(d.WebsitesByCategory[k])})
		}
		keyValue(w, rows)

		_, _ = fmt.Fprintln(w, "\nNew websites")
		table := newTable(w, "ID", "URL", "Category", "Active", "Created")
		for _, s := range d.NewWebsites {
			table.Append([]string{s.ID, s.URL, orDash(s.Category), yesNo(s.IsActive), when(s.CreatedAt)})
		}
		table.Render()
	})
}

func UserAnalytics(w io.Writer, resp *schema.UserAnalytics) error {
	return Output(w, resp, func(w io.Writer) {
		d := resp.Data
		keyValue(w, [][]string{
			{"Users", number(d.TotalUsers)},
			{"Active", number(d.ActiveUsers)},
			{"Role user", number(d.UsersByRole.User)},
			{"Role admin", number(d.UsersByRole.Admin)},
		})
		_, _ = fmt.Fprintln(w, "\nNew users")
		table := newTable(w, "ID", "Email", "Name", "Created")
		for _, u := range d.NewUsers {
			table.Append([]string{u.ID, u.Email, u.FirstName + " " + u.LastName, when(u.CreatedAt)})
		}
		table.Render()
	})
}
