// Package country defines the country record model and the fixed option lists
// (sort options and region filters) the list view offers.
package country

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ReferenceArea is the area of Lithuania in square kilometers. The
// SortSmallerThanReference option keeps only countries strictly smaller than it.
const ReferenceArea = 65300.0

// Record is a single country as returned by the upstream data source.
// Records are immutable once fetched.
type Record struct {
	Name   string  `json:"name"   yaml:"name"`
	Region string  `json:"region" yaml:"region"`
	Area   float64 `json:"area"   yaml:"area"`
	// HasArea is false when the upstream object carried no area value.
	HasArea bool `json:"-" yaml:"-"`
}

// recordDoc is the encoded form of Record: a missing area is null rather than 0.
type recordDoc struct {
	Name   string   `json:"name"   yaml:"name"`
	Region string   `json:"region" yaml:"region"`
	Area   *float64 `json:"area"   yaml:"area"`
}

func (r Record) doc() recordDoc {
	d := recordDoc{Name: r.Name, Region: r.Region}
	if r.HasArea {
		area := r.Area
		d.Area = &area
	}
	return d
}

// MarshalJSON writes a missing area as null.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.doc())
}

// UnmarshalJSON reads a null or absent area as unknown.
func (r *Record) UnmarshalJSON(data []byte) error {
	var d recordDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*r = Record{Name: d.Name, Region: d.Region}
	if d.Area != nil {
		r.Area = *d.Area
		r.HasArea = true
	}
	return nil
}

// MarshalYAML writes a missing area as null.
func (r Record) MarshalYAML() (any, error) {
	return r.doc(), nil
}

// SmallerThanReference reports whether the record has a known area below ReferenceArea.
func (r Record) SmallerThanReference() bool {
	return r.HasArea && r.Area < ReferenceArea
}

// Region is a continental grouping used as an equality filter. The zero value
// means "no filter".
type Region string

// Supported region filters.
const (
	RegionAll      Region = ""
	RegionAfrica   Region = "Africa"
	RegionAmericas Region = "Americas"
	RegionAsia     Region = "Asia"
	RegionEurope   Region = "Europe"
	RegionOceania  Region = "Oceania"
)

// ErrUnknownRegion is returned by ParseRegion for values outside the fixed region list.
var ErrUnknownRegion = errors.New("unknown region")

// Label returns the text shown for the region in the region picker.
func (r Region) Label() string {
	if r == RegionAll {
		return "All regions"
	}
	return string(r)
}

// IsKnown reports whether r is one of the fixed region filters.
func (r Region) IsKnown() bool {
	for _, known := range Regions() {
		if r == known {
			return true
		}
	}
	return false
}

// Regions returns the region filters in display order.
func Regions() []Region {
	return []Region{RegionAll, RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania}
}

// ParseRegion matches s case-insensitively against the fixed region list.
// "all" and the empty string both select RegionAll.
func ParseRegion(s string) (Region, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return RegionAll, nil
	}
	for _, r := range Regions() {
		if strings.EqualFold(string(r), trimmed) {
			return r, nil
		}
	}
	return RegionAll, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}
