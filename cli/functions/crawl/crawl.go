/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package crawl

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
)

// Register returns the crawl command with subcommands
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crawl",
		Aliases: []string{"crawls"},
		Short:   "crawl history and statistics",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(getCmd())
	cmd.AddCommand(retryCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(trendsCmd())
	cmd.AddCommand(brokenLinksCmd())
	return cmd
}

func listCmd() *cobra.Command {
	var filter api.CrawlFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list crawls",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Crawls.List(ctx, filter)
				if err != nil {
					return err
				}
				return display.Crawls(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.Status, "status", "", "pending, in_progress, completed or failed")
	cmd.Flags().StringVar(&filter.WebsiteID, "website", "", "website ID filter")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <crawl_id>",
		Short: "show a crawl result and its broken links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				result, err := c.Crawls.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return display.Crawl(cmd.OutOrStdout(), result)
			})
		},
	}
}

func retryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <crawl_id>",
		Short: "queue a failed crawl again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Crawls.Retry(ctx, args[0])
				if err != nil {
					return err
				}
				return display.CrawlTriggered(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "crawl totals by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				stats, err := c.Crawls.StatsSummary(ctx)
				if err != nil {
					return err
				}
				return display.CrawlStats(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func trendsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "daily crawl counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Crawls.Trends(ctx, days)
				if err != nil {
					return err
				}
				return display.CrawlTrends(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", api.DefaultTrendDays, "number of days (1-365)")
	return cmd
}

func brokenLinksCmd() *cobra.Command {
	var filter api.BrokenLinkFilter

	cmd := &cobra.Command{
		Use:   "broken-links <crawl_id>",
		Short: "list broken links found by a crawl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Crawls.BrokenLinks(ctx, args[0], filter)
				if err != nil {
					return err
				}
				return display.CrawlBrokenLinks(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.ErrorType, "error-type", "", "error type filter")
	return cmd
}
