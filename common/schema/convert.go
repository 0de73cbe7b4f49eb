/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "fmt"

// ConvertMapString flattens a decoded JSON object into strings for display.
// Whole numbers are printed without a fractional part.
func ConvertMapString(data any) (map[string]string, error) {
	dataMap, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("data is not a map[string]any, got %T", data)
	}

	// Convert the map to map[string]string
	result := make(map[string]string)
	for key, value := range dataMap {
		switch v := value.(type) {
		case string:
			result[key] = v
		case int:
			result[key] = fmt.Sprintf("%d", v)
		case float64:
			if v == float64(int64(v)) {
				result[key] = fmt.Sprintf("%d", int64(v))
			} else {
				result[key] = fmt.Sprintf("%.2f", v)
			}
		case bool:
			result[key] = fmt.Sprintf("%t", v)
		default:
			result[key] = fmt.Sprintf("%v", v)
		}
	}
	return result, nil
}
