package pagination

// Meta contains metadata about a paginated result set.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata from params and the total row count.
// CurrentPage is reported as given, even when it lies past the last page.
func NewMeta(params Params, totalCount int) Meta {
	totalPages := TotalPages(totalCount, params.PageSize)

	return Meta{
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: params.Page > 1,
		HasNext:     params.Page < totalPages,
	}
}

// IsOutOfRange reports whether the current page lies past the last page of a
// non-empty set, which renders as an empty table.
func (m Meta) IsOutOfRange() bool {
	return m.TotalPages > 0 && m.CurrentPage > m.TotalPages
}
