//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package apiclient

import (
	"github.com/tidwall/gjson"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

type tokenFuncs struct {
	access  func() string
	refresh func() string
}

// TokenFuncs adapts a pair of getters to interfaces.TokenSource. A nil
// getter reports an absent token.
func TokenFuncs(access, refresh func() string) interfaces.TokenSource {
	return tokenFuncs{access: access, refresh: refresh}
}

func (t tokenFuncs) GetAccessToken() string {
	if t.access == nil {
		return ""
	}
	return t.access()
}

func (t tokenFuncs) GetRefreshToken() string {
	if t.refresh == nil {
		return ""
	}
	return t.refresh()
}

// tokenPaths are probed in order. Servers return the pair at the top
// level, nested under data.tokens like login, or directly under data.
var tokenPaths = []string{"", "data.tokens.", "data."}

// parseTokens extracts the token pair from a refresh response
func parseTokens(body []byte) schema.AuthTokens {
	var t schema.AuthTokens
	for _, prefix := range tokenPaths {
		access := gjson.GetBytes(body, prefix+"accessToken")
		if access.Type != gjson.String || access.String() == "" {
			continue
		}
		t.AccessToken = access.String()
		t.RefreshToken = gjson.GetBytes(body, prefix+"refreshToken").String()
		return t
	}
	return t
}
