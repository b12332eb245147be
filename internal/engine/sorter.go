package engine

import (
	"sort"

	"github.com/rshade/countrylist/internal/country"
)

// FilterRecords returns the records matching region (when non-empty) and, when
// sortOpt is SortSmallerThanReference, the area threshold. Both filters are
// conjunctive. A region outside the fixed list matches nothing, even when
// records carry it (the upstream data has "Polar", for example). The input is
// not modified.
func FilterRecords(raw []country.Record, region country.Region, sortOpt country.SortOption) []country.Record {
	if region != country.RegionAll && !region.IsKnown() {
		return []country.Record{}
	}

	filtered := make([]country.Record, 0, len(raw))
	for _, r := range raw {
		if region != country.RegionAll && country.Region(r.Region) != region {
			continue
		}
		if sortOpt == country.SortSmallerThanReference && !r.SmallerThanReference() {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SortRecords returns a new slice ordered by sortOpt; the input is not modified.
// The sort is stable, so records with equal keys keep their relative order.
// SortNone and unknown options keep the input order.
func SortRecords(filtered []country.Record, sortOpt country.SortOption) []country.Record {
	sorted := make([]country.Record, len(filtered))
	copy(sorted, filtered)

	less := lessFunc(sortOpt.Column())
	if less == nil {
		return sorted
	}

	desc := sortOpt.Order() == country.OrderDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if desc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// lessFunc returns the ascending comparison for column, or nil for no ordering.
func lessFunc(column string) func(a, b country.Record) bool {
	switch column {
	case country.ColumnName:
		return func(a, b country.Record) bool { return a.Name < b.Name }
	case country.ColumnRegion:
		return func(a, b country.Record) bool { return a.Region < b.Region }
	case country.ColumnArea:
		return func(a, b country.Record) bool { return a.Area < b.Area }
	default:
		return nil
	}
}
