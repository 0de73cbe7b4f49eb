/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common"
	"github.com/UnifyEM/deadlink-watchdog/common/fields"
)

// Request sends payload (if not nil) as JSON to baseURL+endpoint and returns
// the raw response body of a 2xx response, which may be empty.
//
// A 401 for a request that carried an access token starts (or joins) a
// refresh and the request is retried once with the new token. If the
// refresh fails the error matches ErrAuthenticationFailed. Any other
// non-2xx response is returned as *HTTPError.
func (c *Client) Request(ctx context.Context, method, endpoint string, payload any) (json.RawMessage, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("failed to serialize request: %w", err)
		}
	}

	epoch := c.coord.epoch()
	token := c.tokens.GetAccessToken()

	status, data, err := c.send(ctx, method, endpoint, body, token)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && token != "" {
		tokens, err := c.awaitRefresh(ctx, epoch, token)
		if err != nil {
			return nil, err
		}

		c.logger.Debug(3013, "retrying request with refreshed token",
			fields.NewFields(fields.NewField("method", method), fields.NewField("endpoint", endpoint)))

		status, data, err = c.send(ctx, method, endpoint, body, tokens.AccessToken)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status > 299 {
		he := newHTTPError(status, data)
		c.logger.Debug(3002, "request failed",
			fields.NewFields(
				fields.NewField("method", method),
				fields.NewField("endpoint", endpoint),
				fields.NewField("status", status),
				fields.NewField("message", common.SingleLine(he.Message))))
		return nil, he
	}

	if method != http.MethodGet {
		c.ClearCache()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

// send performs one HTTP exchange. An empty token omits the Authorization header.
func (c *Client) send(ctx context.Context, method, endpoint string, body []byte, token string) (int, []byte, error) {
	url := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(3001, "transport error",
			fields.NewFields(fields.NewField("url", url), fields.Error(err)))
		return 0, nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug(3000, "request complete",
		fields.NewFields(
			fields.NewField("method", method),
			fields.NewField("endpoint", endpoint),
			fields.NewField("status", resp.StatusCode)))

	return resp.StatusCode, data, nil
}
