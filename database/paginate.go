package database

import "context"

// Pagination describes the page window of a paginated result
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// PaginatedResult wraps a page of rows with its pagination metadata
type PaginatedResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate runs the query twice, once for the total count and once for the
// requested page. Page numbers start at 1.
func Paginate[T any](q *QueryBuilder[T], ctx context.Context, page, pageSize int) (*PaginatedResult[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	data, err := q.Limit(pageSize).Offset(offset).All(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &PaginatedResult[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}
