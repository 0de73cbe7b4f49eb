//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package session

import (
	"errors"

	"golang.org/x/oauth2"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

type oauth2Source struct {
	ts oauth2.TokenSource
}

// FromOAuth2 adapts an oauth2.TokenSource so that hosts which already
// manage tokens with golang.org/x/oauth2 can drive the API client
func FromOAuth2(ts oauth2.TokenSource) interfaces.TokenSource {
	return oauth2Source{ts: ts}
}

func (o oauth2Source) GetAccessToken() string {
	t, err := o.ts.Token()
	if err != nil || t == nil {
		return ""
	}
	return t.AccessToken
}

func (o oauth2Source) GetRefreshToken() string {
	t, err := o.ts.Token()
	if err != nil || t == nil {
		return ""
	}
	return t.RefreshToken
}

// Token implements oauth2.TokenSource so that the session can authorize
// other HTTP clients through oauth2.NewClient
func (s *Session) Token() (*oauth2.Token, error) {
	access := s.GetAccessToken()
	if access == "" {
		return nil, errors.New("not signed in")
	}
	return &oauth2.Token{
		AccessToken:  access,
		RefreshToken: s.GetRefreshToken(),
		TokenType:    "Bearer",
	}, nil
}
