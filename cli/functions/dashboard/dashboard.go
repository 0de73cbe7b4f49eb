/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dashboard

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
)

// Register returns the dashboard command. Without a subcommand it prints the summary.
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "dashboard overview and charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return summary(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "totals, top issues and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Dashboard.Overview(ctx)
				if err != nil {
					return err
				}
				return display.Overview(cmd.OutOrStdout(), resp)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "health",
		Short: "website health scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				websites, err := c.Dashboard.HealthScores(ctx)
				if err != nil {
					return err
				}
				return display.HealthScores(cmd.OutOrStdout(), websites)
			})
		},
	})

	cmd.AddCommand(performanceCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "websites per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				categories, err := c.Dashboard.WebsiteCategories(ctx)
				if err != nil {
					return err
				}
				return display.Categories(cmd.OutOrStdout(), categories)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "alerts",
		Short: "current alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				alerts, err := c.Dashboard.Alerts(ctx)
				if err != nil {
					return err
				}
				return display.Alerts(cmd.OutOrStdout(), alerts)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "overview, alerts and health scores together",
		RunE: func(cmd *cobra.Command, args []string) error {
			return summary(cmd)
		},
	})
	return cmd
}

func performanceCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "daily crawl performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Dashboard.CrawlPerformance(ctx, days)
				if err != nil {
					return err
				}
				return display.CrawlPerformance(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", api.DefaultTrendDays, "number of days (1-365)")
	return cmd
}

func summary(cmd *cobra.Command) error {
	return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
		s, err := c.Dashboard.Summary(ctx)
		if err != nil {
			return err
		}
		return display.Summary(cmd.OutOrStdout(), s)
	})
}
