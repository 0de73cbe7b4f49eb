/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package util

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/common/api"
)

// PageFlags adds --page and --limit bound to p
func PageFlags(cmd *cobra.Command, p *api.Page) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "items per page (server default when omitted)")
}

// OptionalBool parses a tri-state flag where empty means unset
func OptionalBool(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("--%s must be true or false", name)
	}
	return &b, nil
}
