//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package fields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	f := NewFields(
		NewField("code", 401),
		NewField("uri", "/api/auth/me"),
		NewField("message", "token expired"))
	f.AppendKV("retry", true)

	assert.Equal(t, `code=401 uri=/api/auth/me message="token expired" retry=true`, f.ToText())
}

func TestToTextEmpty(t *testing.T) {
	var f *Fields
	assert.Equal(t, "", f.ToText())
	assert.Equal(t, "", NewFields().ToText())
	assert.Nil(t, f.ToPairs())
}

func TestErrorField(t *testing.T) {
	assert.Equal(t, "boom", Error(errors.New("boom")).Value())
	assert.Equal(t, "", Error(nil).Value())
	assert.Equal(t, "error", Error(nil).Name())
}

func TestToPairs(t *testing.T) {
	pairs := NewFields(NewField("a", 1), NewField("b", "two")).ToPairs()
	if assert.Len(t, pairs, 2) {
		assert.Equal(t, "a", pairs[0].Name())
		assert.Equal(t, "two", pairs[1].Value())
	}
}
