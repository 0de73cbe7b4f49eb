/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package brokenlinks

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "brokenlinks",
		Aliases: []string{"broken-links"},
		Short:   "broken links across all websites",
	}

	cmd.AddCommand(summaryCmd())
	return cmd
}

func summaryCmd() *cobra.Command {
	var filter api.BrokenLinkFilter
	var fixed string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "broken links grouped by error type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.IsFixed, err = util.OptionalBool("fixed", fixed); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.BrokenLinks.Summary(ctx, filter)
				if err != nil {
					return err
				}
				return display.BrokenLinksSummary(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.ErrorType, "error-type", "", "error type filter")
	cmd.Flags().StringVar(&fixed, "fixed", "", "fixed filter (true or false)")
	return cmd
}
