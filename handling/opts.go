package handling

import (
	"net/http"
	"strconv"
)

// ListOptions carries the pagination parameters shared by listing endpoints.
type ListOptions struct {
	Page     int
	PageSize int
}

// ParseListOptions parses page/page_size query parameters. Missing or invalid
// values fall back to defaults; page_size is capped at maxPageSize.
func ParseListOptions(r *http.Request, defaultPageSize, maxPageSize int) *ListOptions {
	opts := &ListOptions{Page: 1, PageSize: defaultPageSize}
	query := r.URL.Query()

	if page := query.Get("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil && n >= 1 {
			opts.Page = n
		}
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if n, err := strconv.Atoi(pageSize); err == nil && n >= 1 {
			opts.PageSize = n
		}
	}

	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	return opts
}
