//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "", SingleLine(""))
	assert.Equal(t, "a b", SingleLine("  a \t  b  "))
	assert.Equal(t, "line one ⏎ line two ⏎ three", SingleLine("line one\r\nline two\nthree\n"))
}
