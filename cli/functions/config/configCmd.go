/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package configCmd

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "client configuration",
		Long:  "show or set the client configuration in ~/.dlw/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Assume show
				return show(cmd.OutOrStdout())
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "show the client configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set arg1=value1 [arg2=value2] ...",
		Short: "set client configuration values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return set(cmd.OutOrStdout(), util.NewNVPairs(args))
		},
	})

	return cmd
}

func show(w io.Writer) error {
	conf, err := global.Config("")
	if err != nil {
		return err
	}

	login.LoadEnv(conf)
	values := conf.CC.GetMap()
	return display.Output(w, values, func(w io.Writer) {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		_, _ = fmt.Fprintf(w, "File: %s\nServer in use: %s\n\n", conf.C.File(), login.ServerURL(conf))
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, "%-24s %s\n", k, values[k])
		}
	})
}

func set(w io.Writer, pairs *util.NVPairs) error {
	conf, err := global.Config("")
	if err != nil {
		return err
	}
	if len(pairs.Pairs) == 0 {
		return fmt.Errorf("expected one or more key=value arguments")
	}

	keys := conf.CC.Keys()
	for n := range pairs.Pairs {
		if !slices.Contains(keys, n) {
			return fmt.Errorf("unknown configuration key %q", n)
		}
	}

	for n, v := range pairs.Pairs {
		conf.CC.Set(n, v)
	}
	if err = conf.Checkpoint(); err != nil {
		return fmt.Errorf("unable to save configuration: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Saved %s\n", conf.C.File())
	return nil
}
