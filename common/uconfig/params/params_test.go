//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstraints(t *testing.T) {
	p := New()
	p.SetConstraint("timeout", 1, 300, 30)

	assert.Equal(t, 30, p.Get("timeout").Int())

	p.Set("timeout", 60)
	assert.Equal(t, 60, p.Get("timeout").Int())

	p.Set("timeout", 9000)
	assert.Equal(t, 30, p.Get("timeout").Int())

	p.Set("timeout", "")
	assert.Equal(t, 30, p.Get("timeout").Int())
}

func TestValues(t *testing.T) {
	p := New()
	p.Set("debug", true)
	p.Set("ttl", "90")
	p.Set("refresh", "15m")
	p.Set("hosts", " a, b,,c ")

	assert.True(t, p.Get("debug").Bool())
	assert.Equal(t, 90*time.Second, p.Get("ttl").Seconds())
	assert.Equal(t, 15*time.Minute, p.Get("refresh").Seconds())
	assert.Equal(t, []string{"a", "b", "c"}, p.Get("hosts").SplitList())
	assert.Equal(t, "", p.Get("missing").String())
	assert.False(t, p.Exists("missing"))
}

func TestKeysAndMap(t *testing.T) {
	p := New()
	p.SetDefault("b", "two")
	p.Set("a", 1)
	p.Delete("a")

	assert.Equal(t, []string{"a", "b"}, p.Keys())
	assert.Equal(t, map[string]string{"a": "", "b": "two"}, p.GetMap())
}
