package shared

import (
	"net/http"
	"strconv"
)

// ListFilters captures the common list query parameters used by the
// master data modules.
type ListFilters struct {
	Search  string
	SortBy  string
	SortDir string
	Page    int
	Limit   int
}

// FiltersFromRequest extracts list filters from the query string.
func FiltersFromRequest(r *http.Request) ListFilters {
	q := r.URL.Query()
	filters := ListFilters{
		Search:  q.Get("search"),
		SortBy:  q.Get("sort_by"),
		SortDir: q.Get("sort_dir"),
		Page:    1,
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filters.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	return filters
}

// ListResult wraps a page of rows with the total row count.
type ListResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
