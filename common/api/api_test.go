//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/apiclient"
	"github.com/UnifyEM/deadlink-watchdog/common/cache"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/session"
)

// recorder serves canned JSON bodies keyed by "METHOD /path" and remembers
// every request URI it saw
type recorder struct {
	mu     sync.Mutex
	seen   []string
	bodies map[string]any
	status map[string]int
	posted map[string]json.RawMessage
}

func newRecorder(t *testing.T) (*recorder, *apiclient.Client) {
	rec := &recorder{
		bodies: map[string]any{},
		status: map[string]int{},
		posted: map[string]json.RawMessage{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		var body json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)

		rec.mu.Lock()
		rec.seen = append(rec.seen, r.Method+" "+r.URL.RequestURI())
		rec.posted[key] = body
		resp, ok := rec.bodies[key]
		status := rec.status[key]
		rec.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))
			return
		}
		if status != 0 {
			w.WriteHeader(status)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c, err := apiclient.New(apiclient.WithBaseURL(srv.URL), apiclient.WithCache(cache.New(60)))
	require.NoError(t, err)
	return rec, c
}

func (r *recorder) on(key string, body any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies[key] = body
}

func (r *recorder) fail(key string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies[key] = map[string]any{"success": false, "message": "failed"}
	r.status[key] = status
}

func (r *recorder) requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

var bob = map[string]any{"id": "U-2", "email": "bob@example.com", "firstName": "Bob", "lastName": "Jones", "role": "user"}

func TestLoginStartsSession(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("POST /api/auth/login", map[string]any{
		"success": true,
		"message": "Login successful",
		"data": map[string]any{
			"user":   bob,
			"tokens": map[string]string{"accessToken": "a1", "refreshToken": "r1"},
		},
	})

	sess, err := session.New(session.NewMemoryStore(), nil)
	require.NoError(t, err)
	a := New(c, sess)

	resp, err := a.Auth.Login(context.Background(), schema.LoginForm{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "r1", sess.GetRefreshToken())
	assert.Equal(t, "bob@example.com", sess.User().Email)

	require.NoError(t, a.Auth.Logout())
	assert.False(t, sess.IsAuthenticated())
}

func TestRegisterAwaitingVerification(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("POST /api/auth/register", map[string]any{
		"success": true,
		"data":    map[string]any{"user": bob, "requiresVerification": true},
	})

	sess, err := session.New(session.NewMemoryStore(), nil)
	require.NoError(t, err)

	resp, err := New(c, sess).Auth.Register(context.Background(), schema.RegisterForm{
		Email: "bob@example.com", Password: "secret1", FirstName: " Bob ", LastName: "Jones"})
	require.NoError(t, err)
	assert.True(t, resp.Data.RequiresVerification)
	assert.False(t, sess.IsAuthenticated())

	var sent schema.RegisterForm
	require.NoError(t, json.Unmarshal(rec.posted["POST /api/auth/register"], &sent))
	assert.Equal(t, "Bob", sent.FirstName)
}

func TestValidationStopsRequest(t *testing.T) {
	rec, c := newRecorder(t)
	a := New(c, nil)

	_, err := a.Auth.Login(context.Background(), schema.LoginForm{Email: "nope"})
	assert.ErrorIs(t, err, schema.ErrValidation)

	_, err = a.Auth.VerifyEmail(context.Background(), schema.VerifyEmailForm{Email: "bob@example.com", Code: "12a456"})
	assert.ErrorIs(t, err, schema.ErrValidation)

	_, err = a.Admin.UpdateUserRole(context.Background(), "U-2", "root")
	assert.ErrorIs(t, err, schema.ErrValidation)

	_, err = a.Websites.Get(context.Background(), "")
	assert.Error(t, err)

	_, err = a.Admin.UserAnalytics(context.Background(), "week")
	assert.Error(t, err)

	assert.Empty(t, rec.requests())
}

func TestCurrentUserIsCached(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/auth/me", map[string]any{"success": true, "data": map[string]any{"user": bob}})
	a := New(c, nil)

	for range 3 {
		u, err := a.Auth.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bob Jones", u.FullName())
	}
	assert.Len(t, rec.requests(), 1)
}

func TestUpdateProfileUpdatesSession(t *testing.T) {
	rec, c := newRecorder(t)
	renamed := map[string]any{"id": "U-2", "email": "bob@example.com", "firstName": "Robert", "lastName": "Jones"}
	rec.on("PUT /api/auth/profile", map[string]any{"success": true, "data": map[string]any{"user": renamed}})
	rec.on("GET /api/auth/me", map[string]any{"success": true, "data": map[string]any{"user": bob}})

	sess, err := session.New(session.NewMemoryStore(), nil)
	require.NoError(t, err)
	require.NoError(t, sess.Login(schema.User{ID: "U-2", FirstName: "Bob"}, schema.AuthTokens{AccessToken: "a1"}))
	a := New(c, sess)

	// Prime the cache so that the update must invalidate it
	_, err = a.Auth.CurrentUser(context.Background())
	require.NoError(t, err)

	u, err := a.Auth.UpdateProfile(context.Background(), schema.UpdateProfileForm{FirstName: "Robert"})
	require.NoError(t, err)
	assert.Equal(t, "Robert", u.FirstName)
	assert.Equal(t, "Robert", sess.User().FirstName)

	_, err = a.Auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Len(t, rec.requests(), 3)
}

func TestWebsiteQueries(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/websites", map[string]any{"success": true, "data": map[string]any{
		"websites":   []any{map[string]any{"id": "W-1", "name": "Blog", "url": "https://blog.example.com"}},
		"pagination": map[string]int{"page": 2, "pages": 2, "total": 11},
	}})
	rec.on("POST /api/websites/W-1/crawl", map[string]any{"success": true, "data": map[string]string{"crawlId": "C-1", "status": "pending"}})
	rec.on("GET /api/websites/W-1/broken-links", map[string]any{"success": true})
	a := New(c, nil)
	ctx := context.Background()

	active := true
	list, err := a.Websites.List(ctx, WebsiteFilter{Page: Page{Page: 2, Limit: 10}, Category: "blog", IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, "W-1", list.Data.Websites[0].ID)
	assert.Equal(t, 11, list.Data.Pagination.Total)

	crawl, err := a.Websites.TriggerCrawl(ctx, "W-1", 3)
	require.NoError(t, err)
	assert.Equal(t, "C-1", crawl.Data.CrawlID)

	_, err = a.Websites.TriggerCrawl(ctx, "W-1", 0)
	require.NoError(t, err)

	fixed := false
	_, err = a.Websites.BrokenLinks(ctx, "W-1", BrokenLinkFilter{ErrorType: "404", IsFixed: &fixed})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/websites?category=blog&isActive=true&limit=10&page=2",
		"POST /api/websites/W-1/crawl?crawlDepth=3",
		"POST /api/websites/W-1/crawl",
		"GET /api/websites/W-1/broken-links?errorType=404&isFixed=false",
	}, rec.requests())
}

func TestCrawlEndpoints(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/crawls/stats/trends", map[string]any{"success": true, "data": map[string]any{"days": 7, "trends": []any{}}})
	rec.on("GET /api/crawls/stats/summary", map[string]any{"success": true, "data": map[string]any{"totalCrawls": 12}})
	rec.on("POST /api/crawls/C-1/retry", map[string]any{"success": true})
	a := New(c, nil)
	ctx := context.Background()

	trends, err := a.Crawls.Trends(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, trends.Data.Days)

	stats, err := a.Crawls.StatsSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalCrawls)

	_, err = a.Crawls.Retry(ctx, "C-1")
	require.NoError(t, err)

	_, err = a.Crawls.Get(ctx, "C-404")
	assert.Equal(t, http.StatusNotFound, apiclient.StatusCode(err))

	assert.Equal(t, []string{
		"GET /api/crawls/stats/trends?days=7",
		"GET /api/crawls/stats/summary",
		"POST /api/crawls/C-1/retry",
		"GET /api/crawls/C-404",
	}, rec.requests())
}

func TestDashboardSummary(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/dashboard/overview", map[string]any{"success": true, "data": map[string]any{
		"overview": map[string]any{"totalWebsites": 4, "averageHealthScore": 91.5},
	}})
	rec.on("GET /api/dashboard/alerts", map[string]any{"success": true, "data": map[string]any{
		"alerts": []any{map[string]string{"type": "low_health", "severity": "warning"}},
	}})
	rec.on("GET /api/dashboard/health-scores", map[string]any{"success": true, "data": map[string]any{
		"websites": []any{map[string]any{"id": "W-1", "healthScore": 80}},
	}})

	sum, err := New(c, nil).Dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Overview.TotalWebsites)
	assert.Len(t, sum.Alerts, 1)
	assert.Equal(t, "W-1", sum.HealthScores[0].ID)
	assert.Len(t, rec.requests(), 3)
}

func TestDashboardSummaryFailure(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/dashboard/overview", map[string]any{"success": true})
	rec.on("GET /api/dashboard/health-scores", map[string]any{"success": true})
	rec.fail("GET /api/dashboard/alerts", http.StatusInternalServerError)

	_, err := New(c, nil).Dashboard.Summary(context.Background())
	var httpErr *apiclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestAdminRequests(t *testing.T) {
	rec, c := newRecorder(t)
	rec.on("GET /api/admin/analytics/websites", map[string]any{"success": true})
	rec.on("GET /api/admin/analytics/users", map[string]any{"success": true})
	rec.on("PUT /api/admin/users/U-2/status", map[string]any{"success": true, "message": "updated"})
	rec.on("PUT /api/admin/websites/W-1/moderate", map[string]any{"success": true})
	rec.on("GET /api/admin/users", map[string]any{"success": true})
	a := New(c, nil)
	ctx := context.Background()

	_, err := a.Admin.WebsiteAnalytics(ctx, "")
	require.NoError(t, err)
	_, err = a.Admin.UserAnalytics(ctx, "30d")
	require.NoError(t, err)
	msg, err := a.Admin.UpdateUserStatus(ctx, "U-2", schema.UserStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, "updated", msg.Message)
	_, err = a.Admin.ModerateWebsite(ctx, "W-1", schema.ModerateBlock)
	require.NoError(t, err)
	_, err = a.Admin.Users(ctx, UserFilter{Role: schema.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/admin/analytics/websites?period=7d",
		"GET /api/admin/analytics/users?period=30d",
		"PUT /api/admin/users/U-2/status",
		"PUT /api/admin/websites/W-1/moderate",
		"GET /api/admin/users?role=admin",
	}, rec.requests())
	assert.JSONEq(t, `{"action":"block"}`, string(rec.posted["PUT /api/admin/websites/W-1/moderate"]))
}
