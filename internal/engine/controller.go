// Package engine holds the list controller: it owns the country dataset and the
// region/sort/page selection and derives the rows and page buttons to render.
package engine

import (
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/pagination"
)

// ListView is one derived snapshot of the controller state.
type ListView struct {
	Region country.Region     `json:"region"      yaml:"region"`
	Sort   country.SortOption `json:"sort"        yaml:"sort"`
	Rows   []country.Record   `json:"rows"        yaml:"rows"`
	Window []int              `json:"page_window" yaml:"page_window"`
	Meta   pagination.Meta    `json:"pagination"  yaml:"pagination"`
}

// ListController owns the raw dataset and the filter, sort and page selection.
// Everything it shows is recomputed from that state; nothing derived is cached.
// It is not safe for concurrent use and needs no locking: all mutations happen on
// the UI event loop.
type ListController struct {
	records    []country.Record
	region     country.Region
	sortOpt    country.SortOption
	page       int
	pageSize   int
	maxButtons int
	resetPage  bool
}

// Option configures a ListController.
type Option func(*ListController)

// WithPageSize sets the number of rows per page. Values below 1 are ignored.
func WithPageSize(size int) Option {
	return func(c *ListController) {
		if size >= pagination.MinPageSize {
			c.pageSize = size
		}
	}
}

// WithMaxButtons sets the page-number button budget of the page window.
func WithMaxButtons(n int) Option {
	return func(c *ListController) {
		c.maxButtons = n
	}
}

// WithPageReset controls whether changing the region or sort option moves the
// view back to page 1. It is enabled by default.
func WithPageReset(enabled bool) Option {
	return func(c *ListController) {
		c.resetPage = enabled
	}
}

// NewListController creates a controller over records, showing the first page
// with no filter and no sort.
func NewListController(records []country.Record, opts ...Option) *ListController {
	c := &ListController{
		records:    records,
		page:       pagination.DefaultPage,
		pageSize:   pagination.DefaultPageSize,
		maxButtons: pagination.DefaultMaxButtons,
		resetPage:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetRecords replaces the dataset, typically once the initial fetch resolves.
func (c *ListController) SetRecords(records []country.Record) {
	c.records = records
}

// Records returns the raw dataset.
func (c *ListController) Records() []country.Record {
	return c.records
}

// SetRegionFilter sets the region filter. Unrecognized regions are accepted
// and simply match no records.
func (c *ListController) SetRegionFilter(region country.Region) {
	if c.resetPage && region != c.region {
		c.page = pagination.DefaultPage
	}
	c.region = region
}

// SetSortOption sets the sort option. Unknown options behave like SortNone.
func (c *ListController) SetSortOption(opt country.SortOption) {
	if c.resetPage && opt != c.sortOpt {
		c.page = pagination.DefaultPage
	}
	c.sortOpt = opt
}

// SetPage sets the current page without clamping. A page outside the result
// range renders as an empty page.
func (c *ListController) SetPage(n int) {
	c.page = n
}

// NextPage advances one page unless the current page is the last one.
func (c *ListController) NextPage() {
	if c.Meta().HasNext {
		c.page++
	}
}

// PreviousPage goes back one page unless the current page is the first one.
func (c *ListController) PreviousPage() {
	if c.Meta().HasPrevious {
		c.page--
	}
}

// LastPage moves to the last page of the current result set, or page 1 when it is empty.
func (c *ListController) LastPage() {
	c.page = max(pagination.DefaultPage, c.Meta().TotalPages)
}

// Region returns the active region filter.
func (c *ListController) Region() country.Region { return c.region }

// SortOption returns the active sort option.
func (c *ListController) SortOption() country.SortOption { return c.sortOpt }

// Page returns the current page number.
func (c *ListController) Page() int { return c.page }

// PageSize returns the number of rows per page.
func (c *ListController) PageSize() int { return c.pageSize }

// filtered returns the records passing the current region and threshold filters.
// Sorted, Meta and View all derive from it.
func (c *ListController) filtered() []country.Record {
	return FilterRecords(c.records, c.region, c.sortOpt)
}

// Sorted returns the filtered and sorted result set.
func (c *ListController) Sorted() []country.Record {
	return SortRecords(c.filtered(), c.sortOpt)
}

// Meta returns pagination metadata for the current result set. Sorting does not
// change the count, so it is skipped.
func (c *ListController) Meta() pagination.Meta {
	return c.metaFor(len(c.filtered()))
}

// View derives the visible rows, page window and metadata from the current state.
func (c *ListController) View() ListView {
	sorted := c.Sorted()
	meta := c.metaFor(len(sorted))

	return ListView{
		Region: c.region,
		Sort:   c.sortOpt,
		Rows:   pagination.Page(sorted, c.page, c.pageSize),
		Window: pagination.Window(meta.TotalPages, c.page, c.maxButtons),
		Meta:   meta,
	}
}

func (c *ListController) metaFor(total int) pagination.Meta {
	return pagination.NewMeta(c.params(), total)
}

func (c *ListController) params() pagination.Params {
	return pagination.Params{Page: c.page, PageSize: c.pageSize}
}
