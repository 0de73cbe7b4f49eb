//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

//goland:noinspection SpellCheckingInspection
const (
	CodeDigits      = "0123456789"
	CodeLength      = 6
	MinPasswordLen  = 6
	MinNameLen      = 2
	MaxNameLen      = 50
	MaxWebsiteName  = 100
	DefaultPeriod   = "7d"
	DefaultPageSize = 10
)
