/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

import (
	"context"
	"net/url"
	"time"
)

// Requester is implemented by apiclient.Client and consumed by the API service
// packages. Results are decoded from JSON into the supplied value, which may be nil.
type Requester interface {
	Get(ctx context.Context, endpoint string, result any) error
	GetQuery(ctx context.Context, endpoint string, query url.Values, result any) error
	GetCached(ctx context.Context, endpoint string, query url.Values, ttl time.Duration, result any) error
	Post(ctx context.Context, endpoint string, payload any, result any) error
	Put(ctx context.Context, endpoint string, payload any, result any) error
	Patch(ctx context.Context, endpoint string, payload any, result any) error
	Delete(ctx context.Context, endpoint string, result any) error
}
