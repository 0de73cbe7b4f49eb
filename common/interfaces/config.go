/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

import "time"

// Config defines the methods for configuration management
type Config interface {
	Init()
	Load(string) error
	Save(string) error
	Delete(string) error
	Checkpoint() error
	File() string
	NewSet(string) Parameters
	GetSet(s string) Parameters
}

// Parameters is a named set of constrained key/value pairs
type Parameters interface {
	Exists(key string) bool
	Set(key string, value any)
	SetDefault(key string, value any)
	SetConstraint(key string, min, max int, def any)
	SetStringMap(data map[string]string)
	Delete(key string)
	Get(key string) ParameterValue
	GetMap() map[string]string
	Keys() []string
}

// ParameterValue converts a stored value to the type the caller needs
type ParameterValue interface {
	String() string
	Bytes() []byte
	Int() int
	Int64() int64
	Bool() bool
	Seconds() time.Duration
	SplitList() []string
}
