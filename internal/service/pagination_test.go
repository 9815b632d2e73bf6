package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkip(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{page: 1, limit: 20, want: 0},
		{page: 2, limit: 2, want: 2},
		{page: 3, limit: 10, want: 20},
		{page: 7, limit: 1, want: 6},
		{page: math.MaxInt, limit: 1, want: math.MaxInt - 1},
		{page: 92233720368547760, limit: 100, want: math.MaxInt},
		{page: math.MaxInt, limit: 100, want: math.MaxInt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Skip(tt.page, tt.limit), "page=%d limit=%d", tt.page, tt.limit)
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		wantTotalPages     int
	}{
		{name: "empty result still one page", page: 1, limit: 20, total: 0, wantTotalPages: 1},
		{name: "exact multiple", page: 1, limit: 5, total: 10, wantTotalPages: 2},
		{name: "partial last page", page: 2, limit: 2, total: 5, wantTotalPages: 3},
		{name: "fewer than limit", page: 1, limit: 10, total: 3, wantTotalPages: 1},
		{name: "limit one", page: 4, limit: 1, total: 9, wantTotalPages: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, PageMeta{Page: tt.page, Limit: tt.limit, Total: tt.total, TotalPages: tt.wantTotalPages}, got)
		})
	}
}

func TestNewPageMeta_MatchesCeil(t *testing.T) {
	for limit := 1; limit <= 7; limit++ {
		for total := 0; total <= 50; total++ {
			want := 1
			if total > 0 {
				want = total / limit
				if total%limit != 0 {
					want++
				}
			}
			assert.Equal(t, want, NewPageMeta(1, limit, total).TotalPages, "limit=%d total=%d", limit, total)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	page, limit := withDefaults(0, 0, DefaultHistoryLimit)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = withDefaults(-3, -1, DefaultAdminLimit)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = withDefaults(4, 7, DefaultAdminLimit)
	assert.Equal(t, 4, page)
	assert.Equal(t, 7, limit)
}
