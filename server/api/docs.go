//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"encoding/json"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/userver"
	"github.com/UnifyEM/deadlink-watchdog/server/docs"
)

// getDocs serves the OpenAPI document
func (a *API) getDocs(req *http.Request) userver.JResponse {
	doc := docs.SwaggerInfo.ReadDoc()
	if !json.Valid([]byte(doc)) {
		a.logger.Error(2540, "OpenAPI document is not valid JSON", nil)
		return userver.Error(http.StatusInternalServerError, "Internal server error")
	}
	return ok(json.RawMessage(doc))
}
