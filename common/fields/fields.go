/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package fields provides structured name/value pairs for log entries
package fields

import (
	"fmt"
	"strings"

	"github.com/UnifyEM/deadlink-watchdog/common"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

type Fields struct {
	Fields []Field
}

type Field struct {
	K string
	V any
}

// Name returns the key of the field to implement the NVPair interface
func (f Field) Name() string {
	return f.K
}

// Value returns the value of the field to implement the NVPair interface
func (f Field) Value() any {
	return f.V
}

func NewFields(fields ...Field) *Fields {
	return &Fields{Fields: fields}
}

func (f *Fields) Append(fields ...Field) {
	f.Fields = append(f.Fields, fields...)
}

func (f *Fields) AppendKV(key string, value any) {
	f.Fields = append(f.Fields, Field{K: key, V: value})
}

func (f *Fields) AppendMapString(m map[string]string) {
	for k, v := range m {
		f.Fields = append(f.Fields, Field{K: k, V: v})
	}
}

func NewField(key string, value any) Field {
	return Field{K: key, V: value}
}

// Error returns a field named "error" holding the error text, or "" for a nil error
func Error(err error) Field {
	if err == nil {
		return Field{K: "error", V: ""}
	}
	return Field{K: "error", V: common.SingleLine(err.Error())}
}

// ToText converts the Fields to a string of key=value pairs. Values
// containing whitespace or quotes are quoted so that lines stay parseable.
func (f *Fields) ToText() string {
	if f == nil || len(f.Fields) == 0 {
		return ""
	}

	var b strings.Builder
	for i, field := range f.Fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		v := fmt.Sprintf("%v", field.V)
		if strings.ContainsAny(v, " \t\"=") {
			v = fmt.Sprintf("%q", v)
		}
		b.WriteString(field.K)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}

// ToPairs implements the ToPairs method
func (f *Fields) ToPairs() []interfaces.NVPair {
	if f == nil {
		return nil
	}
	pairs := make([]interfaces.NVPair, len(f.Fields))
	for i, field := range f.Fields {
		pairs[i] = field
	}
	return pairs
}
