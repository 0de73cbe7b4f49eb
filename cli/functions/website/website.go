/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package website

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Register returns the website command with subcommands
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "website",
		Aliases: []string{"websites"},
		Short:   "manage monitored websites",
		Long:    "list, add, update, delete and crawl monitored websites",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(getCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(updateCmd())
	cmd.AddCommand(deleteCmd())
	cmd.AddCommand(crawlCmd())
	cmd.AddCommand(brokenLinksCmd())
	return cmd
}

func listCmd() *cobra.Command {
	var filter api.WebsiteFilter
	var active string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list websites",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.IsActive, err = util.OptionalBool("active", active); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Websites.List(ctx, filter)
				if err != nil {
					return err
				}
				return display.Websites(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.Category, "category", "", "category filter")
	cmd.Flags().StringVar(&active, "active", "", "active filter (true or false)")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <website_id>",
		Short: "show a website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				w, err := c.Websites.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return display.Website(cmd.OutOrStdout(), w)
			})
		},
	}
}

// formFlags binds the website form fields shared by add and update
func formFlags(cmd *cobra.Command, form *schema.WebsiteForm, active *string) {
	cmd.Flags().StringVarP(&form.Name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&form.URL, "url", "u", "", "http or https URL")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	cmd.Flags().StringVar(&form.Category, "category", "", "category")
	cmd.Flags().StringVar(&form.CrawlFrequency, "frequency", "", "crawl frequency: daily, weekly or monthly")
	cmd.Flags().StringVar(&form.NotificationEmail, "notify", "", "notification email")
	cmd.Flags().StringVar(&form.WebhookURL, "webhook", "", "webhook URL")
	cmd.Flags().StringVar(active, "active", "", "active (true or false)")
}

func addCmd() *cobra.Command {
	var form schema.WebsiteForm
	var active string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a website",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.IsActive, err = util.OptionalBool("active", active); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				w, err := c.Websites.Create(ctx, form)
				if err != nil {
					return err
				}
				return display.Website(cmd.OutOrStdout(), w)
			})
		},
	}

	formFlags(cmd, &form, &active)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func updateCmd() *cobra.Command {
	var form schema.WebsiteForm
	var active string

	cmd := &cobra.Command{
		Use:   "update <website_id>",
		Short: "update a website",
		Long:  "update a website. Fields that are not given keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.IsActive, err = util.OptionalBool("active", active); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				current, err := c.Websites.Get(ctx, args[0])
				if err != nil {
					return err
				}
				w, err := c.Websites.Update(ctx, args[0], merge(*current, form))
				if err != nil {
					return err
				}
				return display.Website(cmd.OutOrStdout(), w)
			})
		},
	}

	formFlags(cmd, &form, &active)
	return cmd
}

// merge overlays the given fields on the current website
func merge(current schema.Website, form schema.WebsiteForm) schema.WebsiteForm {
	pick := func(given, existing string) string {
		if given != "" {
			return given
		}
		return existing
	}
	out := schema.WebsiteForm{
		Name:              pick(form.Name, current.Name),
		URL:               pick(form.URL, current.URL),
		Description:       pick(form.Description, current.Description),
		Category:          pick(form.Category, current.Category),
		CrawlFrequency:    pick(form.CrawlFrequency, current.CrawlFrequency),
		NotificationEmail: pick(form.NotificationEmail, current.NotificationEmail),
		WebhookURL:        pick(form.WebhookURL, current.WebhookURL),
		IsActive:          form.IsActive,
	}
	if out.IsActive == nil {
		active := current.IsActive
		out.IsActive = &active
	}
	return out
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <website_id>",
		Short: "delete a website with its crawls and broken links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.Confirm(fmt.Sprintf("Delete website %s and all of its crawl history", args[0])); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				if err := c.Websites.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Website deleted")
				return nil
			})
		},
	}
}

func crawlCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "crawl <website_id>",
		Short: "queue a crawl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Websites.TriggerCrawl(ctx, args[0], depth)
				if err != nil {
					return err
				}
				return display.CrawlTriggered(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "crawl depth 1-10 (server default when omitted)")
	return cmd
}

func brokenLinksCmd() *cobra.Command {
	var filter api.BrokenLinkFilter
	var fixed string

	cmd := &cobra.Command{
		Use:   "broken-links <website_id>",
		Short: "list broken links found on a website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.IsFixed, err = util.OptionalBool("fixed", fixed); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Websites.BrokenLinks(ctx, args[0], filter)
				if err != nil {
					return err
				}
				return display.WebsiteBrokenLinks(cmd.OutOrStdout(), resp)
			})
		},
	}

	util.PageFlags(cmd, &filter.Page)
	cmd.Flags().StringVar(&filter.ErrorType, "error-type", "", "error type filter, such as 404 or timeout")
	cmd.Flags().StringVar(&fixed, "fixed", "", "fixed filter (true or false)")
	return cmd
}
