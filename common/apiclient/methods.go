/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Get sends a GET request and decodes the response into result (which may be nil)
func (c *Client) Get(ctx context.Context, endpoint string, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, result)
}

// GetQuery appends the encoded query to endpoint. Empty values are dropped.
func (c *Client) GetQuery(ctx context.Context, endpoint string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, withQuery(endpoint, query), nil, result)
}

// GetCached is GetQuery with responses kept in the configured cache for
// ttl. Entries are keyed by the full URL since a disk cache may be shared
// by clients of different servers.
func (c *Client) GetCached(ctx context.Context, endpoint string, query url.Values, ttl time.Duration, result any) error {
	path := withQuery(endpoint, query)
	if c.cache == nil || ttl < time.Second {
		return c.do(ctx, http.MethodGet, path, nil, result)
	}

	key := c.baseURL + path
	if data := c.cache.Get(key); data != nil {
		c.logger.Debugf(3020, "cache hit for %s", key)
		return decode(data, result)
	}

	data, err := c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if data != nil {
		c.cache.SetFor(key, data, int(ttl/time.Second))
	}
	return decode(data, result)
}

func (c *Client) Post(ctx context.Context, endpoint string, payload any, result any) error {
	return c.do(ctx, http.MethodPost, endpoint, payload, result)
}

func (c *Client) Put(ctx context.Context, endpoint string, payload any, result any) error {
	return c.do(ctx, http.MethodPut, endpoint, payload, result)
}

func (c *Client) Patch(ctx context.Context, endpoint string, payload any, result any) error {
	return c.do(ctx, http.MethodPatch, endpoint, payload, result)
}

func (c *Client) Delete(ctx context.Context, endpoint string, result any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, result any) error {
	data, err := c.Request(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	return decode(data, result)
}

func decode(data []byte, result any) error {
	if result == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to deserialize response: %w", err)
	}
	return nil
}

func withQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}
	clean := url.Values{}
	for k, values := range query {
		for _, v := range values {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if len(clean) == 0 {
		return endpoint
	}
	return endpoint + "?" + clean.Encode()
}
