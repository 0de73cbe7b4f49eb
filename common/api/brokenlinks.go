//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"context"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

type BrokenLinksService struct {
	r interfaces.Requester
}

// Summary lists broken links across all of the user's websites, grouped by error type
func (s *BrokenLinksService) Summary(ctx context.Context, filter BrokenLinkFilter) (*schema.BrokenLinksResponse, error) {
	var resp schema.BrokenLinksResponse
	if err := s.r.GetQuery(ctx, schema.EndpointBrokenLinksSummary, filter.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
