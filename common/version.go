/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

// Version and Build are shared by the CLI and the development server
const (
	Version = "0.4.2"
	Build   = 118
)
