/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package params implements a simple key/value store with constraints that can be serialized to JSON.
package params

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// Ensure Params implements the Parameters interface
var _ interfaces.Parameters = (*Params)(nil)

type Element struct {
	Value   Value `json:"value"`
	Default Value `json:"default"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
}

type Params struct {
	mu   sync.RWMutex
	Data map[string]Element
}

// New returns an initialized Params object
func New() *Params {
	return &Params{Data: make(map[string]Element)}
}

// Exists checks if a key exists in the Params object
func (p *Params) Exists(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.Data[key]
	return ok
}

// Set a key/value pair in the Params object
func (p *Params) Set(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	element := p.Data[key]

	// enforceAny deals with empty strings and out of range ints and returns a string
	element.Value = enforceAny(value, element.Min, element.Max, element.Default)
	p.Data[key] = element
}

// SetDefault sets a default value for a key in the Params object
func (p *Params) SetDefault(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	element := p.Data[key]
	element.Default = Value(fmt.Sprintf("%v", value))
	p.Data[key] = element
}

// SetConstraint sets a min and max constraint and a default for a key in the Params object
func (p *Params) SetConstraint(key string, min, max int, def any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	element := p.Data[key]
	element.Default = Value(fmt.Sprintf("%v", def))
	element.Min = min
	element.Max = max
	p.Data[key] = element
}

// SetStringMap sets multiple key/value pairs in the Params object
func (p *Params) SetStringMap(data map[string]string) {
	for key, value := range data {
		// Use set for constraint enforcement
		p.Set(key, value)
	}
}

// Delete the value for a key, do not enforce constraints, but leave them in place
func (p *Params) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	element := p.Data[key]
	element.Value = ""
	p.Data[key] = element
}

// Get a Value from the Params object with constraints enforced
func (p *Params) Get(key string) interfaces.ParameterValue {
	p.mu.RLock()
	defer p.mu.RUnlock()

	element, ok := p.Data[key]
	if !ok {
		return NewValue()
	}
	return enforce(element)
}

// GetMap converts the Params object to a map[string]string
// Constraints are enforced
func (p *Params) GetMap() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r := make(map[string]string, len(p.Data))
	for key, element := range p.Data {
		r[key] = enforce(element).String()
	}
	return r
}

// Keys returns the sorted key names
func (p *Params) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.Data))
}
