package service

import "math"

const (
	DefaultPage         = 1
	DefaultHistoryLimit = 20
	DefaultAdminLimit   = 10
)

// PageMeta describes the page returned alongside listing data.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Skip is the row offset of page. Callers guarantee page >= 1 and limit >= 1.
// An offset past math.MaxInt saturates so it never wraps negative.
func Skip(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// NewPageMeta computes page metadata; an empty result still reports one page.
func NewPageMeta(page, limit, total int) PageMeta {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func withDefaults(page, limit, defaultLimit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}
