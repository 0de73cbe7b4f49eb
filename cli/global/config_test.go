//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package global

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	conf, err := Config(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), conf.C.File())
	assert.Equal(t, "http://localhost:3001", conf.CC.Get(ConfigServerURL).String())
	assert.Equal(t, "/api/auth/refresh", conf.CC.Get(ConfigRefreshPath).String())
	assert.Equal(t, StoreFile, conf.CC.Get(ConfigSessionStore).String())
	assert.Equal(t, 30*time.Second, conf.CC.Get(ConfigPollInterval).Seconds())
	assert.Equal(t, filepath.Join(dir, "cache"), conf.CC.Get(ConfigCacheDir).String())
	assert.Equal(t, filepath.Join(dir, SessionFileName), conf.SessionFile())
	assert.Equal(t, filepath.Join(dir, EnvFileName), conf.EnvFile())
}

func TestConfigPersists(t *testing.T) {
	dir := t.TempDir()
	conf, err := Config(dir)
	require.NoError(t, err)

	conf.CC.Set(ConfigServerURL, "https://dlw.example.com")
	conf.CC.Set(ConfigPollInterval, 1) // below the minimum
	require.NoError(t, conf.Checkpoint())

	again, err := Config(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://dlw.example.com", again.CC.Get(ConfigServerURL).String())
	assert.Equal(t, 30, again.CC.Get(ConfigPollInterval).Int())
}
