package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pghive/internal/pkg/pagination"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: pagination.DefaultLimit, wantOffset: 0},
		{name: "second page", page: 2, limit: 10, wantPage: 2, wantLimit: 10, wantOffset: 10},
		{name: "limit capped", page: 1, limit: 1000, wantPage: 1, wantLimit: pagination.MaxLimit, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.NewParams(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestWindowAndMeta(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := pagination.NewParams(2, 2)
	assert.Equal(t, []int{3, 4}, pagination.Window(items, p))

	meta := pagination.GetMeta(p, int64(len(items)))
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	last := pagination.NewParams(3, 2)
	assert.Equal(t, []int{5}, pagination.Window(items, last))

	assert.Empty(t, pagination.Window(items, pagination.NewParams(9, 2)))
}
