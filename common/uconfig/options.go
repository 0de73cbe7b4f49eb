/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"fmt"
	"os"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// WithDefaults runs f before any file is loaded so that sets, defaults
// and constraints exist when the file values are applied
func WithDefaults(f func(interfaces.Config)) func(*UConfig) error {
	return func(c *UConfig) error {
		if f == nil {
			return fmt.Errorf("defaults function is nil")
		}
		f(c)
		return nil
	}
}

func WithLoad(filename string) func(*UConfig) error {
	return func(c *UConfig) error {
		return c.Load(filename)
	}
}

func WithLoadOrCreate(filename string) func(*UConfig) error {
	return func(c *UConfig) error {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return c.Save(filename)
		}
		return c.Load(filename)
	}
}

func WithFind(filenames []string) func(*UConfig) error {
	return func(c *UConfig) error {
		for _, filename := range filenames {
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}
		return fmt.Errorf("no configuration file found")
	}
}

func WithFindOrCreate(filenames []string) func(*UConfig) error {
	return func(c *UConfig) error {
		for _, filename := range filenames {
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}

		// file was not found, so create the first one that can be written
		for _, filename := range filenames {
			if err := c.Save(filename); err == nil {
				return nil
			}
		}
		return fmt.Errorf("could not create configuration file")
	}
}
