/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"encoding/json"
	"fmt"
	"io"
)

// Pretty writes v to w as indented JSON
func Pretty(w io.Writer, v any) error {

	// Marshal the interface into a JSON string with indentation
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling to JSON: %w", err)
	}

	// Print the pretty JSON string
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
