/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

// Output writes v as JSON when --json is set, otherwise calls table
func Output(w io.Writer, v any, table func(io.Writer)) error {
	if global.JSONOutput {
		return global.Pretty(w, v)
	}
	table(w)
	return nil
}

// Message prints a server message, or the response as JSON with --json
func Message(w io.Writer, resp *schema.MessageResponse) error {
	return Output(w, resp, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, resp.Message)
	})
}

// newTable returns a borderless table with the given header
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

// keyValue prints rows of name/value pairs
func keyValue(w io.Writer, rows [][]string) {
	table := newTable(w, "Field", "Value")
	table.AppendBulk(rows)
	table.Render()
}

func pagination(w io.Writer, p schema.Pagination) {
	if p.Pages > 1 {
		_, _ = fmt.Fprintf(w, "Page %d of %d (%s total)\n", p.Page, p.Pages, number(p.Total))
	}
}

func number(n int) string {
	return printer.Sprintf("%d", n)
}

func percent(f float64) string {
	return printer.Sprintf("%.1f%%", f)
}

func millis(f float64) string {
	return printer.Sprintf("%.0f ms", f)
}

// label title-cases an identifier such as in_progress
func label(s string) string {
	return title.String(strings.ReplaceAll(s, "_", " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func whenPtr(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return when(*t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
