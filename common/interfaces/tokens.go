/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

// TokenSource supplies the current session credentials to the API client.
// An empty string means the credential is not available. Implementations
// must be safe for concurrent use.
type TokenSource interface {
	GetAccessToken() string
	GetRefreshToken() string
}
