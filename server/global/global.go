//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package global

import "github.com/UnifyEM/deadlink-watchdog/common"

const (
	Version          = common.Version
	Build            = common.Build
	Name             = "DLWServer"
	LogName          = "dlw-server"
	Description      = "Deadlink Watchdog development server"
	ConfigFileName   = "dlw-server.json"
	DatabaseName     = "dlw-server.db"
	TaskTicker       = 60 // seconds between housekeeping runs
	ConsoleExitDelay = 10 // seconds to wait so that user can read the console output when exiting
	TokenLength      = 64 // Length of the JWT signing key prior to base-64 encoding
)

var (
	Debug          = false
	ListenOverride = ""
)
