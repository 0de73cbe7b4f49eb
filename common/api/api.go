/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package api wraps the Deadlink Watchdog REST endpoints in typed services.
// Every service sends its requests through an interfaces.Requester, normally
// an *apiclient.Client, so token refresh and caching happen underneath.
package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Default cache lifetimes for GetCached
const (
	UserTTL      = 300 * time.Second
	CrawlTTL     = 60 * time.Second
	DashboardTTL = 60 * time.Second
)

// Session receives the outcome of authentication calls
type Session interface {
	Login(user schema.User, tokens schema.AuthTokens) error
	Logout() error
	UpdateUser(user schema.User) error
}

// API bundles one instance of every service
type API struct {
	Auth        *AuthService
	Websites    *WebsitesService
	Crawls      *CrawlsService
	BrokenLinks *BrokenLinksService
	Dashboard   *DashboardService
	Admin       *AdminService
}

// New returns services bound to r. sess may be nil when no session needs updating.
func New(r interfaces.Requester, sess Session) *API {
	return &API{
		Auth:        &AuthService{r: r, session: sess},
		Websites:    &WebsitesService{r: r},
		Crawls:      &CrawlsService{r: r},
		BrokenLinks: &BrokenLinksService{r: r},
		Dashboard:   &DashboardService{r: r},
		Admin:       &AdminService{r: r},
	}
}

// Page selects a page of a paginated listing. Zero values are omitted from
// the query so the server defaults apply.
type Page struct {
	Page  int
	Limit int
}

func (p Page) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set(schema.QueryPage, strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set(schema.QueryLimit, strconv.Itoa(p.Limit))
	}
	return q
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func path(base string, elem ...string) string {
	for _, e := range elem {
		base += "/" + url.PathEscape(e)
	}
	return base
}

// clearCache drops cached responses when r supports it
func clearCache(r interfaces.Requester) {
	if c, ok := r.(interface{ ClearCache() }); ok {
		c.ClearCache()
	}
}
