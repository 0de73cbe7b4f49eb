//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/admin"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/auth"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/brokenlinks"
	configCmd "github.com/UnifyEM/deadlink-watchdog/cli/functions/config"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/crawl"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/dashboard"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/version"
	"github.com/UnifyEM/deadlink-watchdog/cli/functions/website"
	"github.com/UnifyEM/deadlink-watchdog/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:           progName,
		Short:         global.Description,
		Long:          global.LongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("a subcommand is required")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&global.JSONOutput, "json", false, "print JSON instead of tables")
	flags.BoolVarP(&global.AssumeYes, "yes", "y", false, "do not ask for confirmation")
	flags.BoolVar(&global.Debug, "debug", false, "log requests to stderr")
	flags.StringVarP(&global.ServerOverride, "server", "s", "", "API server URL, overriding DLW_SERVER and the configuration")

	// Add the functions
	rootCmd.AddCommand(auth.Register())
	rootCmd.AddCommand(website.Register())
	rootCmd.AddCommand(crawl.Register())
	rootCmd.AddCommand(brokenlinks.Register())
	rootCmd.AddCommand(dashboard.Register())
	rootCmd.AddCommand(admin.Register())
	rootCmd.AddCommand(configCmd.Register())
	rootCmd.AddCommand(version.Register())

	// Interrupts cancel in-flight requests and stop --watch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Execute the CLI
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		display.ErrorWrapper(err)
		os.Exit(1)
	}
}
