package pagination

import (
	"errors"
)

// Paging defaults and limits.
const (
	DefaultPageSize   = 10
	MinPageSize       = 1
	MaxPageSize       = 1000
	DefaultPage       = 1
	MinPage           = 1
	DefaultMaxButtons = 4
	// MinMaxButtons leaves room for the first page, the last page and the current page.
	MinMaxButtons = 3
)

// Common validation errors.
var (
	ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage     = errors.New("page must be >= 1")
)

// Params holds a 1-based page number and a page size.
type Params struct {
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of rows per page.
	PageSize int
}

// NewParams creates Params for the first page with the default page size.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks user supplied values. Derivations never need it; it guards CLI input.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return ErrInvalidPage
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}

// Offset returns the index of the first row on the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns the number of pages needed for totalItems rows.
// It returns 0 for an empty set or a non-positive page size.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// Page returns items[(page-1)*pageSize : page*pageSize], clipped to the slice.
// Pages outside the available range (including page < 1) yield an empty, non-nil slice.
// The result shares its backing array with items.
func Page[T any](items []T, page, pageSize int) []T {
	if page < MinPage || pageSize < MinPageSize {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
