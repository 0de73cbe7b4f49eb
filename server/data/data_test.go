//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"context"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
	"github.com/UnifyEM/deadlink-watchdog/server/mailer"
)

type outbox struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (o *outbox) send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.messages)
}

func (o *outbox) last(t *testing.T) mailer.Message {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.messages)
	return o.messages[len(o.messages)-1]
}

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

func (o *outbox) code(t *testing.T) string {
	code := codePattern.FindString(o.last(t).Body)
	require.NotEmpty(t, code)
	return code
}

// resetToken returns the token line of the last reset message
func (o *outbox) resetToken(t *testing.T) string {
	lines := strings.Split(o.last(t).Body, "\n")
	require.Greater(t, len(lines), 2)
	return lines[2]
}

func newTestData(t *testing.T, options ...Option) (*Data, *outbox) {
	t.Helper()
	conf, err := global.Config(filepath.Join(t.TempDir(), global.ConfigFileName))
	require.NoError(t, err)

	box := &outbox{}
	options = append([]Option{WithMailer(mailer.Func(box.send))}, options...)
	d, err := New(conf, null.Logger(), options...)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d, box
}

// login creates a verified account and signs it in
func login(t *testing.T, d *Data, email, role string) schema.AuthData {
	t.Helper()
	_, err := d.database.SetAuth(email, "secret1", role)
	require.NoError(t, err)
	auth, err := d.Login(context.Background(), schema.LoginForm{Email: email, Password: "secret1"})
	require.NoError(t, err)
	require.NotNil(t, auth.Tokens)
	return auth
}

func TestRegisterVerifyLogin(t *testing.T) {
	d, box := newTestData(t)
	ctx := context.Background()

	auth, err := d.Register(ctx, schema.RegisterForm{
		Email: "alice@example.com", Password: "secret1", FirstName: " Alice ", LastName: "Smith"})
	require.NoError(t, err)
	assert.True(t, auth.RequiresVerification)
	assert.Nil(t, auth.Tokens)
	assert.Equal(t, "Alice", auth.User.FirstName)
	assert.Equal(t, "alice@example.com", box.last(t).To)

	_, err = d.Register(ctx, schema.RegisterForm{
		Email: "alice@example.com", Password: "secret1", FirstName: "Alice", LastName: "Smith"})
	assert.Equal(t, http.StatusConflict, Status(err))

	auth, err = d.Login(ctx, schema.LoginForm{Email: "alice@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusForbidden, Status(err))
	assert.True(t, auth.RequiresVerification)

	_, err = d.VerifyEmail(ctx, schema.VerifyEmailForm{Email: "alice@example.com", Code: "000000"})
	if box.code(t) != "000000" {
		assert.Equal(t, http.StatusBadRequest, Status(err))
	}

	auth, err = d.VerifyEmail(ctx, schema.VerifyEmailForm{Email: "alice@example.com", Code: box.code(t)})
	require.NoError(t, err)
	require.NotNil(t, auth.Tokens)
	assert.True(t, auth.User.EmailVerified)

	info, err := d.Authenticate(auth.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, info.UserID)
	assert.False(t, info.IsAdmin())

	_, err = d.Login(ctx, schema.LoginForm{Email: "alice@example.com", Password: "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, Status(err))

	auth, err = d.Login(ctx, schema.LoginForm{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotNil(t, auth.User.LastLoginAt)

	// Verified accounts get no more codes
	sent := box.count()
	assert.Equal(t, http.StatusBadRequest, Status(d.ResendVerification(ctx, "alice@example.com")))
	assert.NoError(t, d.ResendVerification(ctx, "nobody@example.com"))
	assert.Equal(t, sent, box.count())
}

func TestValidationIsBadRequest(t *testing.T) {
	d, _ := newTestData(t)
	_, err := d.Register(context.Background(), schema.RegisterForm{Email: "bad"})
	assert.ErrorIs(t, err, schema.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, Status(err))
	assert.Equal(t, "Validation failed", Message(err))
}

func TestRefreshRotation(t *testing.T) {
	d, _ := newTestData(t)
	auth := login(t, d, "bob@example.com", schema.RoleUser)

	next, err := d.RefreshTokens(auth.Tokens.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, next.Tokens)
	assert.NotEqual(t, auth.Tokens.RefreshToken, next.Tokens.RefreshToken)

	// Replaying the first token revokes the family, including the new token
	_, err = d.RefreshTokens(auth.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = d.RefreshTokens(next.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Tokens are not interchangeable
	_, err = d.RefreshTokens(next.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = d.Authenticate(next.Tokens.RefreshToken)
	assert.Error(t, err)
}

func TestAccessTokenExpires(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Now())
	d, _ := newTestData(t, WithClock(clock))
	auth := login(t, d, "carol@example.com", schema.RoleUser)

	_, err := d.Authenticate(auth.Tokens.AccessToken)
	require.NoError(t, err)

	clock.Advance(16 * time.Minute)
	_, err = d.Authenticate(auth.Tokens.AccessToken)
	assert.Error(t, err)

	_, err = d.RefreshTokens(auth.Tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestPasswordReset(t *testing.T) {
	d, box := newTestData(t)
	ctx := context.Background()
	auth := login(t, d, "dave@example.com", schema.RoleUser)

	require.NoError(t, d.ForgotPassword(ctx, "nobody@example.com"))
	assert.Equal(t, 0, box.count())

	require.NoError(t, d.ForgotPassword(ctx, "dave@example.com"))
	token := box.resetToken(t)

	require.NoError(t, d.ResetPassword(ctx, schema.ResetPasswordForm{Token: token, NewPassword: "secret2"}))
	assert.Equal(t, http.StatusBadRequest,
		Status(d.ResetPassword(ctx, schema.ResetPasswordForm{Token: token, NewPassword: "secret3"})))

	_, err := d.Login(ctx, schema.LoginForm{Email: "dave@example.com", Password: "secret2"})
	assert.NoError(t, err)

	// A reset ends existing sessions
	_, err = d.RefreshTokens(auth.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProfileAndPassword(t *testing.T) {
	d, _ := newTestData(t)
	auth := login(t, d, "erin@example.com", schema.RoleUser)
	login(t, d, "frank@example.com", schema.RoleUser)

	u, err := d.UpdateProfile(auth.User.ID, schema.UpdateProfileForm{FirstName: "Erin"})
	require.NoError(t, err)
	assert.Equal(t, "Erin", u.FirstName)

	_, err = d.UpdateProfile(auth.User.ID, schema.UpdateProfileForm{Email: "frank@example.com"})
	assert.Equal(t, http.StatusConflict, Status(err))

	err = d.ChangePassword(auth.User.ID, schema.ChangePasswordForm{CurrentPassword: "nope", NewPassword: "secret2"})
	assert.Equal(t, http.StatusBadRequest, Status(err))
	assert.Equal(t, "Current password is incorrect", Message(err))

	require.NoError(t, d.ChangePassword(auth.User.ID, schema.ChangePasswordForm{CurrentPassword: "secret1", NewPassword: "secret2"}))
	me, err := d.Me(auth.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", me.Email)
}

func TestWebsitesAndCrawls(t *testing.T) {
	d, _ := newTestData(t)
	owner := login(t, d, "gina@example.com", schema.RoleUser).User.ID
	other := login(t, d, "hank@example.com", schema.RoleUser).User.ID

	w, err := d.CreateWebsite(owner, schema.WebsiteForm{Name: "Blog", URL: "https://blog.example.com", Category: "blog"})
	require.NoError(t, err)
	assert.Equal(t, schema.FrequencyWeekly, w.CrawlFrequency)
	assert.True(t, w.IsActive)
	_, err = d.CreateWebsite(owner, schema.WebsiteForm{Name: "Shop", URL: "https://shop.example.com", Category: "shop"})
	require.NoError(t, err)

	_, err = d.GetWebsite(other, w.ID)
	assert.Equal(t, http.StatusNotFound, Status(err))

	list, pg, err := d.ListWebsites(owner, WebsiteQuery{Category: "blog"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, pg.Total)

	_, err = d.TriggerCrawl(owner, w.ID, 11)
	assert.Equal(t, http.StatusBadRequest, Status(err))

	c, err := d.TriggerCrawl(owner, w.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, schema.CrawlPending, c.Status)
	assert.Equal(t, DefaultCrawlDepth, c.CrawlDepth)

	_, err = d.RetryCrawl(owner, c.ID)
	assert.Equal(t, http.StatusBadRequest, Status(err))

	done, err := d.CompleteCrawl(c.ID, CrawlReport{
		TotalLinksFound:   40,
		TotalLinksChecked: 40,
		BrokenLinks: []schema.CrawlBrokenLink{
			{URL: "https://blog.example.com/a", ErrorType: "404", StatusCode: 404},
			{URL: "https://blog.example.com/b", ErrorType: "404", StatusCode: 404},
			{URL: "https://cdn.example.com/c", ErrorType: "timeout"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, schema.CrawlCompleted, done.Status)
	assert.Equal(t, 3, done.BrokenLinksFound)

	_, err = d.CompleteCrawl(c.ID, CrawlReport{})
	assert.Equal(t, http.StatusBadRequest, Status(err))

	w, err = d.GetWebsite(owner, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 92.5, w.HealthScore)
	assert.Equal(t, 3, w.BrokenLinks)

	full, err := d.GetCrawl(owner, c.ID)
	require.NoError(t, err)
	assert.Len(t, full.BrokenLinkRecords, 3)

	links, _, err := d.CrawlBrokenLinks(owner, c.ID, BrokenLinkQuery{ErrorType: "404"})
	require.NoError(t, err)
	assert.Len(t, links, 2)

	wlinks, _, err := d.WebsiteBrokenLinks(owner, w.ID, BrokenLinkQuery{Page: Page{Limit: 2}})
	require.NoError(t, err)
	assert.Len(t, wlinks, 2)

	summary, recent, err := d.BrokenLinksSummary(owner, BrokenLinkQuery{})
	require.NoError(t, err)
	assert.Equal(t, []schema.ErrorSummary{{ErrorType: "404", Count: 2}, {ErrorType: "timeout", Count: 1}}, summary)
	assert.Len(t, recent, 3)

	failed, err := d.TriggerCrawl(owner, w.ID, 2)
	require.NoError(t, err)
	_, err = d.CompleteCrawl(failed.ID, CrawlReport{Error: "connection refused"})
	require.NoError(t, err)
	retry, err := d.RetryCrawl(owner, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retry.CrawlDepth)
	assert.Equal(t, "retry", retry.Summary.ScheduledBy)

	stats, err := d.CrawlStats(owner)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCrawls)
	assert.Equal(t, 1, stats.ByStatus[schema.CrawlFailed])
	assert.Equal(t, 1, stats.ByStatus[schema.CrawlPending])

	trends, err := d.CrawlTrends(owner, 0)
	require.NoError(t, err)
	require.Len(t, trends, 7)
	assert.Equal(t, 3, trends[6].Crawls)

	_, err = d.CrawlTrends(owner, 400)
	assert.Equal(t, http.StatusBadRequest, Status(err))

	overview, err := d.Overview(owner)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalWebsites)
	assert.Equal(t, 3, overview.TotalBrokenLinks)
	assert.Equal(t, 96.3, overview.AverageHealthScore)

	dash, err := d.Dashboard(owner)
	require.NoError(t, err)
	require.Len(t, dash.Data.TopIssues, 1)
	assert.Equal(t, w.ID, dash.Data.TopIssues[0].ID)
	assert.Len(t, dash.Data.RecentActivity, 3)

	alerts, err := d.Alerts(owner)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity)

	categories, err := d.WebsiteCategories(owner)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	// Nothing leaks to other users
	overview, err = d.Overview(other)
	require.NoError(t, err)
	assert.Equal(t, schema.DashboardOverview{}, overview)

	require.NoError(t, d.DeleteWebsite(owner, w.ID))
	_, err = d.GetCrawl(owner, c.ID)
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestAdmin(t *testing.T) {
	d, _ := newTestData(t)
	require.NoError(t, d.SetAdmin("root@example.com", "secret1"))
	admin, err := d.Login(context.Background(), schema.LoginForm{Email: "root@example.com", Password: "secret1"})
	require.NoError(t, err)
	user := login(t, d, "ivy@example.com", schema.RoleUser)

	info, err := d.Authenticate(admin.Tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, info.IsAdmin())

	users, pg, err := d.AdminUsers(UserQuery{Role: schema.RoleUser})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 1, pg.Total)

	_, err = d.SetUserStatus(admin.User.ID, admin.User.ID, schema.UserStatusForm{Status: schema.UserStatusSuspended})
	assert.Equal(t, http.StatusBadRequest, Status(err))

	au, err := d.SetUserStatus(admin.User.ID, user.User.ID, schema.UserStatusForm{Status: schema.UserStatusSuspended})
	require.NoError(t, err)
	assert.False(t, au.IsActive)
	_, err = d.Authenticate(user.Tokens.AccessToken)
	assert.Error(t, err)
	_, err = d.RefreshTokens(user.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	au, err = d.SetUserRole(admin.User.ID, user.User.ID, schema.UserRoleForm{Role: schema.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, schema.RoleAdmin, au.Role)

	w, err := d.CreateWebsite(user.User.ID, schema.WebsiteForm{Name: "Spam", URL: "https://spam.example.com"})
	require.NoError(t, err)
	_, err = d.TriggerCrawl(user.User.ID, w.ID, 1)
	require.NoError(t, err)

	queue, err := d.Queue()
	require.NoError(t, err)
	assert.Equal(t, 1, queue.Data.Stats.Crawl.Waiting)
	assert.Len(t, queue.Data.ActiveJobs, 1)

	blocked, err := d.ModerateWebsite(admin.User.ID, w.ID, schema.ModerateForm{Action: schema.ModerateBlock})
	require.NoError(t, err)
	assert.True(t, blocked.IsFlagged)
	assert.False(t, blocked.IsActive)

	flagged, _, err := d.ModerationWebsites(ModerationQuery{Status: ModerationFlagged})
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, "ivy@example.com", flagged[0].User.Email)

	_, _, err = d.ModerationWebsites(ModerationQuery{Status: "weird"})
	assert.Equal(t, http.StatusBadRequest, Status(err))

	stats, err := d.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 0, stats.ActiveWebsites)

	wa, err := d.WebsiteAnalytics("")
	require.NoError(t, err)
	assert.Equal(t, 1, wa.Data.WebsitesByStatus.Inactive)
	assert.Len(t, wa.Data.NewWebsites, 1)

	ua, err := d.UserAnalytics("30d")
	require.NoError(t, err)
	assert.Equal(t, 2, ua.Data.UsersByRole.Admin)
	assert.Equal(t, 1, ua.Data.ActiveUsers)

	_, err = d.UserAnalytics("week")
	assert.Equal(t, http.StatusBadRequest, Status(err))
}

func TestPrune(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Now())
	d, _ := newTestData(t, WithClock(clock))
	login(t, d, "jack@example.com", schema.RoleUser)
	require.NoError(t, d.ForgotPassword(context.Background(), "jack@example.com"))

	clock.Advance(8 * 24 * time.Hour)
	d.PruneDB()

	n, err := d.database.PruneRefresh(clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
