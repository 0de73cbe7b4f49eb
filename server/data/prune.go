/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"time"

	"github.com/UnifyEM/deadlink-watchdog/server/codes"
)

// PruneDB removes expired refresh tokens and codes from the database.
// It is intended to run from the service task ticker and therefore
// logs and handles its own errors.
func (d *Data) PruneDB() {
	startTime := time.Now()
	d.logger.Debug(2240, "Pruning database started", nil)

	tokens, err := d.database.PruneRefresh(d.clock.Now())
	d.pruneError(err)

	// Redis expires codes on its own
	var expired int
	if s, ok := d.codes.(*codes.BoltStore); ok {
		expired, err = s.Prune()
		d.pruneError(err)
	}

	d.logger.Debugf(2241, "Pruning database completed in %.2f seconds, removed %d tokens and %d codes",
		time.Since(startTime).Seconds(), tokens, expired)
}

func (d *Data) pruneError(err error) {
	if err != nil {
		d.logger.Warningf(2242, "error pruning database: %s", err.Error())
	}
}
