package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds 1-based page and per-page limit for list queries.
type Params struct {
	Page  int
	Limit int
}

// FromQuery parses page/limit query strings, applying defaults and clamps.
func FromQuery(pageStr, limitStr string) Params {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
