//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	scryptN = 1024
	d, err := Open(filepath.Join(t.TempDir(), "test.db"), null.Logger())
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func TestHash(t *testing.T) {
	scryptN = 1024
	hash, err := GenerateHash("secret1")
	require.NoError(t, err)

	ok, err := VerifyHash("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyHash("secret2", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyHash("x", "no-separator")
	assert.Error(t, err)

	ok, err = VerifyHash("x", dummyHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsers(t *testing.T) {
	d := openTest(t)

	u := &UserRecord{Email: "Alice@Example.com", FirstName: "Alice", Role: schema.RoleUser, IsActive: true}
	require.NoError(t, u.SetPassword("secret1"))
	require.NoError(t, d.CreateUser(u))
	assert.Contains(t, u.ID, PrefixUser)

	dup := &UserRecord{Email: "alice@example.com"}
	assert.ErrorIs(t, d.CreateUser(dup), ErrExists)

	got, err := d.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = d.CheckAuth("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = d.CheckAuth("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrBadCredentials)

	got, err = d.CheckAuth("alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotNil(t, got.LastLoginAt)

	// Changing the email moves the index
	_, err = d.UpdateUser(u.ID, func(rec *UserRecord) error {
		rec.Email = "alice2@example.com"
		return nil
	})
	require.NoError(t, err)
	_, err = d.GetUserByEmail("alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = d.GetUserByEmail("alice2@example.com")
	assert.NoError(t, err)

	_, err = d.UpdateUser(u.ID, func(rec *UserRecord) error {
		rec.IsActive = false
		return nil
	})
	require.NoError(t, err)
	_, err = d.CheckAuth("alice2@example.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSetAuth(t *testing.T) {
	d := openTest(t)

	u, err := d.SetAuth("root@example.com", "secret1", schema.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, u.EmailVerified)

	again, err := d.SetAuth("root@example.com", "secret2", schema.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)

	_, err = d.CheckAuth("root@example.com", "secret2")
	assert.NoError(t, err)
}

func TestDeleteWebsiteCascades(t *testing.T) {
	d := openTest(t)

	keep := &WebsiteRecord{Website: schema.Website{Name: "keep", URL: "https://keep.example.com"}}
	drop := &WebsiteRecord{Website: schema.Website{Name: "drop", URL: "https://drop.example.com"}}
	require.NoError(t, d.CreateWebsite(keep))
	require.NoError(t, d.CreateWebsite(drop))

	for _, w := range []*WebsiteRecord{keep, drop} {
		c := &schema.CrawlResult{WebsiteID: w.ID, Status: schema.CrawlCompleted}
		require.NoError(t, d.CreateCrawl(c))
		require.NoError(t, d.PutBrokenLink(&schema.CrawlBrokenLink{WebsiteID: w.ID, CrawlResultID: c.ID, URL: w.URL + "/x"}))
	}

	require.NoError(t, d.DeleteWebsite(drop.ID))
	assert.ErrorIs(t, d.DeleteWebsite(drop.ID), ErrNotFound)

	websites, err := d.ListWebsites(nil)
	require.NoError(t, err)
	require.Len(t, websites, 1)
	assert.Equal(t, keep.ID, websites[0].ID)

	crawls, err := d.ListCrawls(nil)
	require.NoError(t, err)
	require.Len(t, crawls, 1)
	assert.Equal(t, keep.ID, crawls[0].WebsiteID)

	links, err := d.ListBrokenLinks(nil)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, keep.ID, links[0].WebsiteID)
}

func TestListNewestFirst(t *testing.T) {
	d := openTest(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		require.NoError(t, d.CreateCrawl(&schema.CrawlResult{CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}
	crawls, err := d.ListCrawls(nil)
	require.NoError(t, err)
	require.Len(t, crawls, 3)
	assert.Equal(t, base.Add(2*time.Hour), crawls[0].CreatedAt.UTC())
	assert.Equal(t, base, crawls[2].CreatedAt.UTC())
}

func TestRefreshRotation(t *testing.T) {
	d := openTest(t)
	now := time.Now()
	first := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-1", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	other := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-1", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, d.StoreRefresh(first))
	require.NoError(t, d.StoreRefresh(other))

	second := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-1", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, d.RotateRefresh(first.ID, second, now))

	assert.ErrorIs(t, d.RotateRefresh("T-unknown", second, now), ErrTokenUnknown)

	// Presenting the replaced token again revokes the whole family
	third := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-1", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	assert.ErrorIs(t, d.RotateRefresh(first.ID, third, now), ErrTokenReuse)
	assert.ErrorIs(t, d.RotateRefresh(second.ID, third, now), ErrTokenReuse)
	assert.ErrorIs(t, d.RotateRefresh(other.ID, third, now), ErrTokenReuse)

	expired := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-2", IssuedAt: now, ExpiresAt: now.Add(-time.Minute)}
	require.NoError(t, d.StoreRefresh(expired))
	next := RefreshRecord{ID: NewID(PrefixToken), UserID: "U-2", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	assert.ErrorIs(t, d.RotateRefresh(expired.ID, next, now), ErrTokenExpired)

	n, err := d.PruneRefresh(now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
