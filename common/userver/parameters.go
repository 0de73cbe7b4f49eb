/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// GetParam retrieves a path variable from the request URL
func GetParam(r *http.Request, param string) string {
	vars := mux.Vars(r)
	if value, ok := vars[param]; ok {
		return value
	}
	return ""
}

// QueryInt returns a query parameter as an int, or def when it is
// missing, malformed or below min
func QueryInt(r *http.Request, key string, def, min int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < min {
		return def
	}
	return v
}

// QueryBool returns nil when the parameter is absent or not a boolean
func QueryBool(r *http.Request, key string) *bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return nil
	}
	return &v
}
