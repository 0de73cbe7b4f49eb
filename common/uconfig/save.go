/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveFile writes the effective values of every set. The file is written
// to a temporary name first and renamed into place.
func (c *UConfig) saveFile() error {
	f := fileFormat{Sets: make(map[string]map[string]string, len(c.Sets))}
	for name, p := range c.Sets {
		f.Sets[name] = p.GetMap()
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode to JSON: %w", err)
	}

	if !CreateDir(filepath.Dir(c.file)) {
		return fmt.Errorf("could not create directory for %s", c.file)
	}

	tmp := c.file + ".tmp"
	if err = os.WriteFile(tmp, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err = os.Rename(tmp, c.file); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", c.file, err)
	}
	return nil
}
