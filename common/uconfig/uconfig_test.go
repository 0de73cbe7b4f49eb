//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package uconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

func defaults(c interfaces.Config) {
	s := c.NewSet("client")
	s.SetDefault("server", "http://localhost:3001")
	s.SetConstraint("poll_interval", 5, 3600, 30)
}

func TestLoadOrCreate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sub", "config.json")

	c, err := New(WithDefaults(defaults), WithLoadOrCreate(file))
	require.NoError(t, err)
	assert.Equal(t, file, c.File())

	_, err = os.Stat(file)
	require.NoError(t, err)

	c.GetSet("client").Set("server", "https://api.example.com")
	c.GetSet("client").Set("poll_interval", 2)
	require.NoError(t, c.Checkpoint())

	c2, err := New(WithDefaults(defaults), WithLoad(file))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c2.GetSet("client").Get("server").String())
	assert.Equal(t, 30, c2.GetSet("client").Get("poll_interval").Int())
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	_, err := New(WithFind([]string{filepath.Join(dir, "none.json")}))
	assert.Error(t, err)

	file := filepath.Join(dir, "found.json")
	c, err := New(WithFindOrCreate([]string{file}))
	require.NoError(t, err)
	assert.Nil(t, c.GetSet("client"))
	assert.NotNil(t, c.NewSet("client"))

	require.NoError(t, c.Delete(""))
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestCheckpointRequiresFile(t *testing.T) {
	assert.Error(t, Null().Checkpoint())
}
