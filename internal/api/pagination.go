package api

import (
	"math"
	"net/http"

	"github.com/orgchart/orgchart-backend/internal/api/apierror"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
	maxOffset    = math.MaxInt32
)

type Pagination struct {
	limit  *int
	offset *int
}

type PageInfo struct {
	TotalCount      int  `json:"totalCount"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is a slice of a list together with its position in the full list
type Page[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

func NewPagination(limit, offset *int) (*Pagination, error) {
	if limit != nil && (*limit < 1 || *limit > maxLimit) {
		return nil, apierror.New(http.StatusBadRequest, "invalid_pagination", "limit must be between 1 and %d.", maxLimit)
	}
	if offset != nil && *offset < 0 {
		return nil, apierror.New(http.StatusBadRequest, "invalid_pagination", "offset cannot be negative.")
	}
	if offset != nil && *offset > maxOffset {
		return nil, apierror.New(http.StatusBadRequest, "invalid_pagination", "offset cannot be greater than %d.", maxOffset)
	}

	return &Pagination{
		limit:  limit,
		offset: offset,
	}, nil
}

func paginationFromRequest(r *http.Request) (*Pagination, error) {
	toInt := func(v *int64) *int {
		if v == nil {
			return nil
		}
		i := int(*v)
		return &i
	}

	limit, err := queryInt(r, "limit", "invalid_pagination")
	if err != nil {
		return nil, err
	}
	offset, err := queryInt(r, "offset", "invalid_pagination")
	if err != nil {
		return nil, err
	}
	if limit != nil && *limit > maxLimit {
		return nil, apierror.New(http.StatusBadRequest, "invalid_pagination", "limit must be between 1 and %d.", maxLimit)
	}
	if offset != nil && *offset > maxOffset {
		return nil, apierror.New(http.StatusBadRequest, "invalid_pagination", "offset cannot be greater than %d.", maxOffset)
	}
	return NewPagination(toInt(limit), toInt(offset))
}

func (p *Pagination) Limit() int {
	if p.limit == nil {
		return defaultLimit
	}
	return *p.limit
}

func (p *Pagination) Offset() int {
	if p.offset == nil {
		return 0
	}
	return *p.offset
}

// ForSlice returns the bounds of the page within a slice of length
func (p *Pagination) ForSlice(length int) (start, end int) {
	start = min(p.Offset(), length)
	end = min(start+p.Limit(), length)
	return start, end
}

func (p *Pagination) PageInfo(total int) PageInfo {
	return PageInfo{
		TotalCount:      total,
		HasNextPage:     p.Offset()+p.Limit() < total,
		HasPreviousPage: p.Offset() > 0,
	}
}
