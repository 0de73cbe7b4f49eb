/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"context"
	"net/url"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// AdminService requires a session with role admin; the server answers 403 otherwise
type AdminService struct {
	r interfaces.Requester
}

type UserFilter struct {
	Page
	Role string
}

type ModerationFilter struct {
	Page
	Status string
}

func (s *AdminService) Stats(ctx context.Context) (*schema.AdminStats, error) {
	var resp schema.AdminStatsResponse
	if err := s.r.Get(ctx, schema.EndpointAdminStats, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *AdminService) Users(ctx context.Context, filter UserFilter) (*schema.UsersResponse, error) {
	q := filter.values()
	if filter.Role != "" {
		q.Set(schema.QueryRole, filter.Role)
	}
	var resp schema.UsersResponse
	if err := s.r.GetQuery(ctx, schema.EndpointAdminUsers, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AdminService) UpdateUserStatus(ctx context.Context, id, status string) (*schema.MessageResponse, error) {
	form := schema.UserStatusForm{Status: status}
	return s.put(ctx, id, path(schema.EndpointAdminUsers, id, "status"), &form)
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (*schema.MessageResponse, error) {
	form := schema.UserRoleForm{Role: role}
	return s.put(ctx, id, path(schema.EndpointAdminUsers, id, "role"), &form)
}

func (s *AdminService) WebsitesModeration(ctx context.Context, filter ModerationFilter) (*schema.WebsitesModerationResponse, error) {
	q := filter.values()
	if filter.Status != "" {
		q.Set(schema.QueryStatus, filter.Status)
	}
	var resp schema.WebsitesModerationResponse
	if err := s.r.GetQuery(ctx, schema.EndpointAdminModeration, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AdminService) ModerateWebsite(ctx context.Context, id, action string) (*schema.MessageResponse, error) {
	form := schema.ModerateForm{Action: action}
	return s.put(ctx, id, path(schema.EndpointAdminWebsites, id, "moderate"), &form)
}

// Queue is never cached; it backs the watch display
func (s *AdminService) Queue(ctx context.Context) (*schema.QueueResponse, error) {
	var resp schema.QueueResponse
	if err := s.r.Get(ctx, schema.EndpointAdminQueue, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WebsiteAnalytics reports on a period such as "30d". An empty period means 7d.
func (s *AdminService) WebsiteAnalytics(ctx context.Context, period string) (*schema.WebsiteAnalytics, error) {
	q, err := periodQuery(period)
	if err != nil {
		return nil, err
	}
	var resp schema.WebsiteAnalytics
	if err = s.r.GetQuery(ctx, schema.EndpointAdminWebsiteAnalytic, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AdminService) UserAnalytics(ctx context.Context, period string) (*schema.UserAnalytics, error) {
	q, err := periodQuery(period)
	if err != nil {
		return nil, err
	}
	var resp schema.UserAnalytics
	if err = s.r.GetQuery(ctx, schema.EndpointAdminUserAnalytics, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AdminService) put(ctx context.Context, id, endpoint string, form validator) (*schema.MessageResponse, error) {
	if id == "" {
		return nil, errNoID
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.MessageResponse
	if err := s.r.Put(ctx, endpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func periodQuery(period string) (url.Values, error) {
	if period == "" {
		period = schema.DefaultPeriod
	}
	if _, err := schema.ParsePeriod(period); err != nil {
		return nil, err
	}
	return url.Values{schema.QueryPeriod: {period}}, nil
}
