package country

import (
	"errors"
	"fmt"
	"strings"
)

// SortOption selects the ordering of the list. SortSmallerThanReference is a
// combined filter and sort directive: it keeps only countries smaller than
// ReferenceArea and orders them by ascending area.
type SortOption string

// Supported sort options.
const (
	SortNone                 SortOption = ""
	SortNameAsc              SortOption = "name_asc"
	SortNameDesc             SortOption = "name_desc"
	SortRegionAsc            SortOption = "region_asc"
	SortRegionDesc           SortOption = "region_desc"
	SortAreaAsc              SortOption = "area_asc"
	SortAreaDesc             SortOption = "area_desc"
	SortSmallerThanReference SortOption = "smaller_than_reference"
)

// Sort columns and directions.
const (
	ColumnName   = "name"
	ColumnRegion = "region"
	ColumnArea   = "area"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// legacySmallerThanKey is the key older bookmarks and scripts use for SortSmallerThanReference.
const legacySmallerThanKey = "smaller_than_lthn"

// ErrUnknownSortOption is returned by ParseSortOption for keys outside the fixed option list.
var ErrUnknownSortOption = errors.New("unknown sort option")

//nolint:gochecknoglobals // Fixed display labels.
var sortLabels = map[SortOption]string{
	SortNone:                 "Sort by",
	SortNameAsc:              "Name (A-Z)",
	SortNameDesc:             "Name (Z-A)",
	SortRegionAsc:            "Region (A-Z)",
	SortRegionDesc:           "Region (Z-A)",
	SortAreaAsc:              "Area (smallest to largest)",
	SortAreaDesc:             "Area (largest to smallest)",
	SortSmallerThanReference: "Countries smaller than Lithuania",
}

// SortOptions returns every sort option in display order.
func SortOptions() []SortOption {
	return []SortOption{
		SortNone,
		SortNameAsc,
		SortNameDesc,
		SortRegionAsc,
		SortRegionDesc,
		SortAreaAsc,
		SortAreaDesc,
		SortSmallerThanReference,
	}
}

// Label returns the text shown for the option in the sort picker.
func (s SortOption) Label() string {
	if label, ok := sortLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsKnown reports whether s is one of the fixed sort options.
func (s SortOption) IsKnown() bool {
	_, ok := sortLabels[s]
	return ok
}

// Column returns the record column the option sorts on, or "" when the option does not sort.
func (s SortOption) Column() string {
	switch s {
	case SortNameAsc, SortNameDesc:
		return ColumnName
	case SortRegionAsc, SortRegionDesc:
		return ColumnRegion
	case SortAreaAsc, SortAreaDesc, SortSmallerThanReference:
		return ColumnArea
	case SortNone:
		return ""
	default:
		return ""
	}
}

// Order returns OrderAsc or OrderDesc, or "" when the option does not sort.
func (s SortOption) Order() string {
	switch s {
	case SortNameAsc, SortRegionAsc, SortAreaAsc, SortSmallerThanReference:
		return OrderAsc
	case SortNameDesc, SortRegionDesc, SortAreaDesc:
		return OrderDesc
	case SortNone:
		return ""
	default:
		return ""
	}
}

// ParseSortOption parses an option key. Besides the canonical keys it accepts
// "none" for SortNone, "column:order" expressions such as "area:desc", and
// the legacy key "smaller_than_lthn".
func ParseSortOption(s string) (SortOption, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "", "none":
		return SortNone, nil
	case legacySmallerThanKey:
		return SortSmallerThanReference, nil
	}

	if column, order, found := strings.Cut(key, ":"); found {
		key = strings.TrimSpace(column) + "_" + strings.TrimSpace(order)
	}

	opt := SortOption(key)
	if !opt.IsKnown() {
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortOption, s)
	}
	return opt, nil
}
