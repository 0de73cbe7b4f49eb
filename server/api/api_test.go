//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	dlw "github.com/UnifyEM/deadlink-watchdog/common/api"
	"github.com/UnifyEM/deadlink-watchdog/common/apiclient"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/session"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
	"github.com/UnifyEM/deadlink-watchdog/server/mailer"
)

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

type testServer struct {
	srv   *httptest.Server
	data  *data.Data
	clock clockwork.FakeClock

	mu   sync.Mutex
	mail []mailer.Message
}

func (ts *testServer) send(_ context.Context, msg mailer.Message) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.mail = append(ts.mail, msg)
	return nil
}

func (ts *testServer) code(t *testing.T) string {
	t.Helper()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.NotEmpty(t, ts.mail)
	code := codePattern.FindString(ts.mail[len(ts.mail)-1].Body)
	require.NotEmpty(t, code)
	return code
}

// newTestServer runs the full router on httptest. configure may adjust the
// server configuration before the router is built.
func newTestServer(t *testing.T, configure func(*global.ServerConfig)) *testServer {
	t.Helper()
	conf, err := global.Config(filepath.Join(t.TempDir(), global.ConfigFileName))
	require.NoError(t, err)
	conf.SC.Set(global.ConfigPenaltyBoxMin, 0)
	conf.SC.Set(global.ConfigPenaltyBoxMax, 0)
	if configure != nil {
		configure(conf)
	}

	ts := &testServer{clock: clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))}
	ts.data, err = data.New(conf, null.Logger(),
		data.WithMailer(mailer.Func(ts.send)),
		data.WithClock(ts.clock))
	require.NoError(t, err)
	t.Cleanup(ts.data.Close)

	handler, err := New(conf, null.Logger(), ts.data).Handler()
	require.NoError(t, err)
	ts.srv = httptest.NewServer(handler)
	t.Cleanup(ts.srv.Close)
	return ts
}

// client returns typed services backed by a memory session
func (ts *testServer) client(t *testing.T) (*dlw.API, *session.Session) {
	t.Helper()
	sess, err := session.New(session.NewMemoryStore(), nil)
	require.NoError(t, err)
	c, err := apiclient.New(
		apiclient.WithBaseURL(ts.srv.URL),
		apiclient.WithTokenSource(sess),
		apiclient.WithOnTokenRefresh(sess.Refreshed),
		apiclient.WithOnAuthError(sess.AuthError))
	require.NoError(t, err)
	return dlw.New(c, sess), sess
}

// signUp registers and verifies an account through the API
func (ts *testServer) signUp(t *testing.T, email string) (*dlw.API, *session.Session) {
	t.Helper()
	ctx := context.Background()
	services, sess := ts.client(t)

	resp, err := services.Auth.Register(ctx, schema.RegisterForm{
		Email: email, Password: "secret1", FirstName: "Alice", LastName: "Smith"})
	require.NoError(t, err)
	require.True(t, resp.Data.RequiresVerification)
	require.False(t, sess.IsAuthenticated())

	_, err = services.Auth.VerifyEmail(ctx, schema.VerifyEmailForm{Email: email, Code: ts.code(t)})
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated())
	return services, sess
}

func (ts *testServer) do(t *testing.T, method, path, body string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, ts.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestWebsiteFlow(t *testing.T) {
	ts := newTestServer(t, nil)
	services, sess := ts.signUp(t, "alice@example.com")
	ctx := context.Background()

	me, err := services.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.True(t, me.EmailVerified)
	assert.Equal(t, me.ID, sess.User().ID)

	w, err := services.Websites.Create(ctx, schema.WebsiteForm{Name: "Blog", URL: "https://blog.example.com", Category: "blog"})
	require.NoError(t, err)
	assert.Equal(t, schema.FrequencyWeekly, w.CrawlFrequency)

	list, err := services.Websites.List(ctx, dlw.WebsiteFilter{})
	require.NoError(t, err)
	require.Len(t, list.Data.Websites, 1)
	assert.Equal(t, 1, list.Data.Pagination.Total)

	trigger, err := services.Websites.TriggerCrawl(ctx, w.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, schema.CrawlPending, trigger.Data.Status)

	crawl, err := services.Crawls.Get(ctx, trigger.Data.CrawlID)
	require.NoError(t, err)
	assert.Equal(t, 2, crawl.CrawlDepth)
	assert.Equal(t, w.ID, crawl.Website.ID)

	_, err = services.Websites.TriggerCrawl(ctx, w.ID, 11)
	assert.Equal(t, http.StatusBadRequest, apiclient.StatusCode(err))

	summary, err := services.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Overview.TotalWebsites)
	assert.Len(t, summary.HealthScores, 1)

	trends, err := services.Crawls.Trends(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, trends.Data.Days)

	// Another user cannot see the website
	other, _ := ts.signUp(t, "bob@example.com")
	_, err = other.Websites.Get(ctx, w.ID)
	assert.Equal(t, http.StatusNotFound, apiclient.StatusCode(err))

	require.NoError(t, services.Websites.Delete(ctx, w.ID))
	_, err = services.Websites.Get(ctx, w.ID)
	assert.Equal(t, http.StatusNotFound, apiclient.StatusCode(err))
}

func TestRefreshOnExpiredAccessToken(t *testing.T) {
	ts := newTestServer(t, nil)
	services, sess := ts.signUp(t, "alice@example.com")
	ctx := context.Background()

	oldAccess := sess.GetAccessToken()
	oldRefresh := sess.GetRefreshToken()

	// The access token lives 15 minutes, the refresh token 7 days
	ts.clock.Advance(16 * time.Minute)

	_, err := services.Websites.List(ctx, dlw.WebsiteFilter{})
	require.NoError(t, err)
	assert.NotEqual(t, oldAccess, sess.GetAccessToken())
	assert.NotEqual(t, oldRefresh, sess.GetRefreshToken())
	assert.True(t, sess.IsAuthenticated())

	// Presenting the rotated refresh token again revokes the whole family
	resp, _ := ts.do(t, http.MethodPost, schema.EndpointRefresh, `{"refreshToken":"`+oldRefresh+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, schema.EndpointRefresh, `{"refreshToken":"`+sess.GetRefreshToken()+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshReturnsPairAtTopLevel(t *testing.T) {
	ts := newTestServer(t, nil)
	_, sess := ts.signUp(t, "alice@example.com")

	resp, body := ts.do(t, http.MethodPost, schema.EndpointRefresh, `{"refreshToken":"`+sess.GetRefreshToken()+`"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	access := gjson.GetBytes(body, "accessToken").String()
	refresh := gjson.GetBytes(body, "refreshToken").String()
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, access, gjson.GetBytes(body, "data.tokens.accessToken").String())
	assert.Equal(t, refresh, gjson.GetBytes(body, "data.tokens.refreshToken").String())
	assert.Equal(t, sess.User().ID, gjson.GetBytes(body, "data.user.id").String())
}

func TestFailedRefreshSignsOut(t *testing.T) {
	ts := newTestServer(t, nil)
	services, sess := ts.signUp(t, "alice@example.com")

	// Past the refresh token lifetime nothing can be renewed
	ts.clock.Advance(8 * 24 * time.Hour)

	_, err := services.Websites.List(context.Background(), dlw.WebsiteFilter{})
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestLoginAndCookies(t *testing.T) {
	ts := newTestServer(t, nil)
	require.NoError(t, ts.data.SetAdmin("admin@example.com", "secret1"))

	resp, body := ts.do(t, http.MethodPost, schema.EndpointLogin, `{"email":"admin@example.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", gjson.GetBytes(body, "data.user.role").String())
	assert.NotEmpty(t, gjson.GetBytes(body, "data.tokens.accessToken").String())

	var access *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == schema.CookieAccessToken {
			access = c
		}
	}
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)

	// The cookie alone authenticates
	resp, body = ts.do(t, http.MethodGet, schema.EndpointMe, "", http.Header{"Cookie": {access.String()}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@example.com", gjson.GetBytes(body, "data.user.email").String())

	resp, body = ts.do(t, http.MethodPost, schema.EndpointLogin, `{"email":"admin@example.com","password":"wrong12"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, gjson.GetBytes(body, "success").Bool())

	resp, _ = ts.do(t, http.MethodGet, schema.EndpointMe, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnverifiedLogin(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, _ := ts.do(t, http.MethodPost, schema.EndpointRegister,
		`{"email":"carol@example.com","password":"secret1","firstName":"Carol","lastName":"Jones"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := ts.do(t, http.MethodPost, schema.EndpointLogin, `{"email":"carol@example.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.True(t, gjson.GetBytes(body, "data.requiresVerification").Bool())
	assert.False(t, gjson.GetBytes(body, "data.tokens").Exists())
}

func TestValidationErrors(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := ts.do(t, http.MethodPost, schema.EndpointRegister, `{"email":"nope","password":"1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", gjson.GetBytes(body, "message").String())
	assert.True(t, gjson.GetBytes(body, "errors.email").Exists())
	assert.True(t, gjson.GetBytes(body, "errors.password").Exists())

	resp, _ = ts.do(t, http.MethodPost, schema.EndpointRegister, `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminRequiresRole(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	user, sess := ts.signUp(t, "alice@example.com")

	_, err := user.Admin.Stats(ctx)
	assert.Equal(t, http.StatusForbidden, apiclient.StatusCode(err))

	require.NoError(t, ts.data.SetAdmin("admin@example.com", "secret1"))
	admin, _ := ts.client(t)
	_, err = admin.Auth.Login(ctx, schema.LoginForm{Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)

	stats, err := admin.Admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)

	_, err = admin.Admin.UpdateUserStatus(ctx, sess.User().ID, schema.UserStatusSuspended)
	require.NoError(t, err)

	// Suspension takes effect on the next request
	_, err = user.Websites.List(ctx, dlw.WebsiteFilter{})
	assert.Error(t, err)

	analytics, err := admin.Admin.UserAnalytics(ctx, "30d")
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.Data.UsersByRole.Admin)
}

func TestLoginRateLimit(t *testing.T) {
	ts := newTestServer(t, func(conf *global.ServerConfig) {
		conf.SC.Set(global.ConfigLoginRateTokens, 2)
	})

	for range 2 {
		resp, _ := ts.do(t, http.MethodPost, schema.EndpointLogin, `{"email":"x@example.com","password":"secret1"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, _ := ts.do(t, http.MethodPost, schema.EndpointLogin, `{"email":"x@example.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	// Unlimited routes are unaffected
	resp, _ = ts.do(t, http.MethodGet, schema.EndpointHealth, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocs(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, body := ts.do(t, http.MethodGet, schema.EndpointDocs, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Deadlink Watchdog API", gjson.GetBytes(body, "info.title").String())
	assert.Equal(t, "User authentication", gjson.GetBytes(body, `paths./auth/login.post.summary`).String())
}
