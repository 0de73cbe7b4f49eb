/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

var errNoID = errors.New("id is required")

type WebsitesService struct {
	r interfaces.Requester
}

type WebsiteFilter struct {
	Page
	Category string
	IsActive *bool
}

type BrokenLinkFilter struct {
	Page
	ErrorType string
	IsFixed   *bool
}

func (f BrokenLinkFilter) values() url.Values {
	q := f.Page.values()
	if f.ErrorType != "" {
		q.Set(schema.QueryErrorType, f.ErrorType)
	}
	setBool(q, schema.QueryIsFixed, f.IsFixed)
	return q
}

func (s *WebsitesService) List(ctx context.Context, filter WebsiteFilter) (*schema.WebsitesResponse, error) {
	q := filter.values()
	if filter.Category != "" {
		q.Set(schema.QueryCategory, filter.Category)
	}
	setBool(q, schema.QueryIsActive, filter.IsActive)

	var resp schema.WebsitesResponse
	if err := s.r.GetQuery(ctx, schema.EndpointWebsites, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *WebsitesService) Get(ctx context.Context, id string) (*schema.Website, error) {
	if id == "" {
		return nil, errNoID
	}
	var resp schema.WebsiteResponse
	if err := s.r.Get(ctx, path(schema.EndpointWebsites, id), &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Website, nil
}

func (s *WebsitesService) Create(ctx context.Context, form schema.WebsiteForm) (*schema.Website, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.WebsiteResponse
	if err := s.r.Post(ctx, schema.EndpointWebsites, form, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Website, nil
}

func (s *WebsitesService) Update(ctx context.Context, id string, form schema.WebsiteForm) (*schema.Website, error) {
	if id == "" {
		return nil, errNoID
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.WebsiteResponse
	if err := s.r.Put(ctx, path(schema.EndpointWebsites, id), form, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Website, nil
}

func (s *WebsitesService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errNoID
	}
	return s.r.Delete(ctx, path(schema.EndpointWebsites, id), nil)
}

// TriggerCrawl queues a manual crawl. A depth of zero leaves it to the server.
func (s *WebsitesService) TriggerCrawl(ctx context.Context, id string, depth int) (*schema.CrawlTriggerResponse, error) {
	if id == "" {
		return nil, errNoID
	}
	endpoint := path(schema.EndpointWebsites, id, "crawl")
	if depth > 0 {
		endpoint += "?" + url.Values{schema.QueryCrawlDepth: {strconv.Itoa(depth)}}.Encode()
	}

	var resp schema.CrawlTriggerResponse
	if err := s.r.Post(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *WebsitesService) BrokenLinks(ctx context.Context, id string, filter BrokenLinkFilter) (*schema.WebsiteBrokenLinksResponse, error) {
	if id == "" {
		return nil, errNoID
	}
	var resp schema.WebsiteBrokenLinksResponse
	if err := s.r.GetQuery(ctx, path(schema.EndpointWebsites, id, "broken-links"), filter.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
