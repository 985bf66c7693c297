// Package pagination parses page-numbered listing parameters.
package pagination

import (
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// Params is a validated page/limit pair.
type Params struct {
	Page  int
	Limit int
}

// Offset converts the page number into a row offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse interprets raw query values, falling back to defaults for anything
// missing or malformed and clamping limit to MaxLimit. Listing endpoints never
// fail on bad paging input; they just serve the first page.
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
