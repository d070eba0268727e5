package domain

const (
	DefaultPageSize = 9
	MaxPageSize     = 50
)

// PageRequest is a 1-based page selector.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to >= 1. A limit outside [1, MaxPageSize]
// falls back to DefaultPageSize.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

type Paginated[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func NewPaginated[T any](items []T, total int, req PageRequest) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Paginated[T]{
		Items:      items,
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: pages,
	}
}
