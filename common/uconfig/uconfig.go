/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package uconfig stores named parameter sets in a JSON file
package uconfig

import (
	"fmt"
	"os"
	"sync"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/uconfig/params"
)

// Ensure UConfig implements the Config interface
var _ interfaces.Config = (*UConfig)(nil)

// UConfig holds all configuration data
type UConfig struct {
	mu sync.Mutex

	// Path to configuration file
	file string

	Sets map[string]*params.Params `json:"sets"`
}

// Null returns an empty UConfig instance for testing
func Null() interfaces.Config {
	return &UConfig{Sets: make(map[string]*params.Params)}
}

// New returns an UConfig instance
func New(options ...func(*UConfig) error) (interfaces.Config, error) {
	c := &UConfig{Sets: make(map[string]*params.Params)}

	// Process options (see options.go)
	for _, op := range options {
		if err := op(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Init clears the values of every known set
func (c *UConfig) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.Sets {
		c.Sets[key] = params.New()
	}
}

// File returns the path of the last loaded or saved file
func (c *UConfig) File() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file
}

// Save the configuration to the specified file, or the current one if empty
func (c *UConfig) Save(filename string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if filename != "" {
		c.file = filename
	}
	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.saveFile()
}

// Delete the configuration file
func (c *UConfig) Delete(filename string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if filename != "" {
		c.file = filename
	}
	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	if err := os.Remove(c.file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting %s: %w", c.file, err)
	}
	return nil
}

// Load the configuration from the specified file. Values found in the
// file are applied on top of sets and constraints already registered.
func (c *UConfig) Load(filename string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if filename != "" {
		c.file = filename
	}
	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.loadFile()
}

// Checkpoint saves the configuration to the last loaded file
func (c *UConfig) Checkpoint() error {
	if c.File() == "" {
		return fmt.Errorf("checkpoint requires a loaded configuration")
	}
	return c.Save("")
}

// GetSet returns a specific configuration set or nil
func (c *UConfig) GetSet(set string) interfaces.Parameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.Sets[set]; ok {
		return p
	}
	return nil
}

// NewSet returns the named set, creating it if necessary
func (c *UConfig) NewSet(key string) interfaces.Parameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.Sets[key]; !ok {
		c.Sets[key] = params.New()
	}
	return c.Sets[key]
}
