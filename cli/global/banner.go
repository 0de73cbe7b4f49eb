//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package global

import (
	"github.com/UnifyEM/deadlink-watchdog/common"
)

func Banner() {
	common.Banner(Description, Version, Build)
}
