/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package util

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Watch calls f now and then once per interval until ctx is done or f fails
func Watch(ctx context.Context, clock clockwork.Clock, interval time.Duration, f func(context.Context) error) error {
	if err := f(ctx); err != nil {
		return err
	}

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if err := f(ctx); err != nil {
				return err
			}
		}
	}
}
