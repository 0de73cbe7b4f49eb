//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package params

import (
	"strconv"
	"strings"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// Ensure Value implements the ParameterValue interface
var _ interfaces.ParameterValue = (*Value)(nil)

type Value string

// NewValue is a convenience function that returns a "" as a ParameterValue
func NewValue() interfaces.ParameterValue {
	return Value("")
}

// String converts a Value to a string type
func (v Value) String() string {
	return string(v)
}

// Bytes converts a Value to a byte slice
func (v Value) Bytes() []byte {
	return []byte(v.String())
}

// Int converts a Value to an int type
func (v Value) Int() int {
	i, err := strconv.Atoi(v.String())
	if err != nil {
		return 0
	}
	return i
}

// Int64 converts a Value to an int64 type
func (v Value) Int64() int64 {
	i, err := strconv.ParseInt(v.String(), 10, 64)
	if err != nil {
		return 0
	}
	return i
}

// Bool converts a Value to a bool type
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(v.String())
	if err != nil {
		return false
	}
	return b
}

// Seconds interprets the Value as a number of seconds. A value with a unit
// suffix such as "90s" or "15m" is parsed as a duration instead.
func (v Value) Seconds() time.Duration {
	if i, err := strconv.Atoi(v.String()); err == nil {
		return time.Duration(i) * time.Second
	}
	d, err := time.ParseDuration(v.String())
	if err != nil {
		return 0
	}
	return d
}

// SplitList converts a comma-separated Value to a []string, dropping empty entries
func (v Value) SplitList() []string {
	var list []string
	for _, part := range strings.Split(v.String(), ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
