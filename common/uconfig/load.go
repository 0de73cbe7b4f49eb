/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/UnifyEM/deadlink-watchdog/common/uconfig/params"
)

// fileFormat is the on-disk layout: set name to key/value pairs
type fileFormat struct {
	Sets map[string]map[string]string `json:"sets"`
}

// loadFile merges the file into the existing sets. Constraints registered
// before loading are kept and enforced on the loaded values.
func (c *UConfig) loadFile() error {
	data, err := os.ReadFile(c.file)
	if err != nil {
		return fmt.Errorf("error opening file %s: %w", c.file, err)
	}

	var f fileFormat
	if err = json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("deserialization error in %s: %w", c.file, err)
	}

	for name, values := range f.Sets {
		p, ok := c.Sets[name]
		if !ok {
			p = params.New()
			c.Sets[name] = p
		}
		p.SetStringMap(values)
	}
	return nil
}
