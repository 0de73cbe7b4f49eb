/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/UnifyEM/deadlink-watchdog/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "DLW"
	Description     = "Deadlink Watchdog CLI"
	LongDescription = "Deadlink Watchdog command line interface"
	Copyright       = "Copyright (c) 2024-2026 Tenebris Technologies Inc."
	HomeDir         = ".dlw"
	ConfigFileName  = "config.json"
	SessionFileName = "session.db"
	EnvFileName     = ".env"
)

// Environment variables read from the process or ~/.dlw/.env
const (
	EnvServer    = "DLW_SERVER"
	EnvServerAlt = "NEXT_PUBLIC_API_URL"
	EnvUser      = "DLW_USER"
	EnvPass      = "DLW_PASS"
)

// Persistent flags shared by every command
var (
	JSONOutput     bool
	AssumeYes      bool
	Debug          bool
	ServerOverride string
)
