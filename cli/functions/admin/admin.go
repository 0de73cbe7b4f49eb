/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Register returns the admin command. The server rejects these for non-admin users.
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "administration commands",
		Long:  "system statistics, user management, website moderation and the crawl queue",
	}

	cmd.AddCommand(statsCmd())
	cmd.AddCommand(usersCmd())
	cmd.AddCommand(userStatusCmd())
	cmd.AddCommand(userRoleCmd())
	cmd.AddCommand(moderationCmd())
	cmd.AddCommand(moderateCmd())
	cmd.AddCommand(queueCmd())
	cmd.AddCommand(analyticsCmd())
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "system statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				stats, err := c.Admin.Stats(ctx)
				if err != nil {
					return err
				}
				return display.AdminStats(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func usersCmd() *cobra.Command {
	var filter api.UserFilter

	cmd := &cobra.Command{
		Use:   "users",
		Short: "list users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Admin.Users(ctx, filter)
				if err != nil {
					return err
				}
				return display.AdminUsers(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.Role, "role", "", "user or admin")
	return cmd
}

func userStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "user-status <user_id> <active|suspended>",
		Short:     "activate or suspend a user",
		Args:      cobra.ExactArgs(2),
		ValidArgs: schema.UserStatusAll,
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == schema.UserStatusSuspended {
				if err := util.Confirm(fmt.Sprintf("Suspend user %s and end their sessions", args[0])); err != nil {
					return err
				}
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Admin.UpdateUserStatus(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func userRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-role <user_id> <user|admin>",
		Short: "change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.Confirm(fmt.Sprintf("Change the role of user %s to %s", args[0], args[1])); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Admin.UpdateUserRole(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func moderationCmd() *cobra.Command {
	var filter api.ModerationFilter

	cmd := &cobra.Command{
		Use:   "moderation",
		Short: "websites for moderation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Admin.WebsitesModeration(ctx, filter)
				if err != nil {
					return err
				}
				return display.Moderation(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.Status, "status", "", "all, flagged, active or inactive")
	return cmd
}

func moderateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moderate <website_id> <block|unblock>",
		Short: "block or unblock a website",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == schema.ModerateBlock {
				if err := util.Confirm(fmt.Sprintf("Block website %s", args[0])); err != nil {
					return err
				}
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Admin.ModerateWebsite(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func queueCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "crawl and notification queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				show := func(ctx context.Context) error {
					resp, err := c.Admin.Queue(ctx)
					if err != nil {
						return err
					}
					if watch && !global.JSONOutput {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", time.Now().Format(time.DateTime))
					}
					return display.Queue(cmd.OutOrStdout(), resp)
				}
				if !watch {
					return show(ctx)
				}
				interval := c.Config.CC.Get(global.ConfigPollInterval).Seconds()
				return util.Watch(ctx, clockwork.NewRealClock(), interval, show)
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "refresh until interrupted")
	return cmd
}

func analyticsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:       "analytics <websites|users>",
		Short:     "website or user analytics",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"websites", "users"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				switch args[0] {
				case "websites":
					resp, err := c.Admin.WebsiteAnalytics(ctx, period)
					if err != nil {
						return err
					}
					return display.WebsiteAnalytics(cmd.OutOrStdout(), resp)
				case "users":
					resp, err := c.Admin.UserAnalytics(ctx, period)
					if err != nil {
						return err
					}
					return display.UserAnalytics(cmd.OutOrStdout(), resp)
				}
				return fmt.Errorf("unknown analytics %q, use websites or users", args[0])
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", schema.DefaultPeriod, "period such as 7d or 30d")
	return cmd
}
