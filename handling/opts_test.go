package handling_test

import (
	"net/http/httptest"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/handling"

	"github.com/stretchr/testify/assert"
)

func TestParseListOptions(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/posts", 1, 10},
		{"explicit values", "/posts?page=3&page_size=25", 3, 25},
		{"page size capped", "/posts?page_size=500", 1, 50},
		{"invalid values ignored", "/posts?page=zero&page_size=-5", 1, 10},
		{"zero page ignored", "/posts?page=0", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			opts := handling.ParseListOptions(r, 10, 50)

			assert.Equal(t, tt.wantPage, opts.Page)
			assert.Equal(t, tt.wantPageSize, opts.PageSize)
		})
	}
}
