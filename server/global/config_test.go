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

func TestConfigCreatesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFileName)

	conf, err := Config(file)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3001", conf.SC.Get(ConfigListen).String())
	assert.Equal(t, 15*time.Minute, conf.SC.Get(ConfigAccessLife).Seconds())
	assert.Equal(t, 7*24*time.Hour, conf.SC.Get(ConfigRefreshLife).Seconds())
	assert.Equal(t, MailerLog, conf.SC.Get(ConfigMailer).String())
	assert.Equal(t, filepath.Join(filepath.Dir(file), LogName, DatabaseName), conf.SC.Get(ConfigDBPath).String())

	key := conf.SP.Get(ConfigJWTKey).String()
	assert.NotEmpty(t, key)

	// The key survives a reload
	again, err := Config(file)
	require.NoError(t, err)
	assert.Equal(t, key, again.SP.Get(ConfigJWTKey).String())
}
