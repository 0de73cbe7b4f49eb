/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Every API response carries success and, for most endpoints, a message.
// Errors add the HTTP status so that clients can rely on the body alone.

// MessageResponse is returned by endpoints that carry no data
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"request processed"`
}

// ErrorResponse is the body of every 4xx and 5xx response
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"bad request"`
	Status  int               `json:"status" example:"400"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// API401 and friends exist solely to give swag distinct examples

type API401 struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"authentication failed"`
	Status  int    `json:"status" example:"401"`
}

type API404 struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"not found"`
	Status  int    `json:"status" example:"404"`
}

type API500 struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"internal server error"`
	Status  int    `json:"status" example:"500"`
}

// Pagination describes a page of a list response. Limit is omitted by
// the websites and crawls endpoints.
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Pages int `json:"pages" example:"3"`
	Total int `json:"total" example:"42"`
	Limit int `json:"limit,omitempty" example:"20"`
}

// NewPagination computes the page count for total items and a page size
func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:  page,
		Pages: (total + limit - 1) / limit,
		Total: total,
		Limit: limit,
	}
}

// Window returns the slice bounds of this page within n items
func (p Pagination) Window(n int) (start, end int) {
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}
	start = (p.Page - 1) * limit
	if start > n {
		start = n
	}
	end = start + limit
	if end > n {
		end = n
	}
	return start, end
}
