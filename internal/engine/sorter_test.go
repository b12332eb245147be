package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrylist/internal/country"
)

func rec(name, region string, area float64) country.Record {
	return country.Record{Name: name, Region: region, Area: area, HasArea: true}
}

// sampleRecords returns 12 countries, 3 of them in Europe, in non-sorted order.
func sampleRecords() []country.Record {
	return []country.Record{
		rec("Kenya", "Africa", 580367),
		rec("Lithuania", "Europe", 65300),
		rec("Chile", "Americas", 756102),
		rec("Nepal", "Asia", 147181),
		rec("Fiji", "Oceania", 18272),
		rec("Belgium", "Europe", 30528),
		rec("Ghana", "Africa", 238533),
		rec("Jamaica", "Americas", 10991),
		rec("Bhutan", "Asia", 38394),
		rec("Samoa", "Oceania", 2842),
		rec("France", "Europe", 640679),
		rec("Rwanda", "Africa", 26338),
	}
}

func names(records []country.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestFilterRecords_Region(t *testing.T) {
	raw := sampleRecords()

	for _, region := range country.Regions() {
		t.Run(region.Label(), func(t *testing.T) {
			filtered := FilterRecords(raw, region, country.SortNone)
			if region == country.RegionAll {
				assert.Equal(t, raw, filtered)
				return
			}
			require.NotEmpty(t, filtered)
			for _, r := range filtered {
				assert.Equal(t, string(region), r.Region)
			}
		})
	}
}

func TestFilterRecords_UnknownRegionIsEmpty(t *testing.T) {
	filtered := FilterRecords(sampleRecords(), country.Region("Atlantis"), country.SortNone)
	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilterRecords_RegionOutsideListIsEmptyEvenWhenPresent(t *testing.T) {
	raw := append(sampleRecords(), rec("Antarctica", "Polar", 14000000))

	filtered := FilterRecords(raw, country.Region("Polar"), country.SortNone)
	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)

	all := FilterRecords(raw, country.RegionAll, country.SortNone)
	assert.Contains(t, names(all), "Antarctica", "all regions still lists it")
}

func TestFilterRecords_Threshold(t *testing.T) {
	raw := append(sampleRecords(), country.Record{Name: "Nowhere", Region: "Europe"})

	filtered := FilterRecords(raw, country.RegionAll, country.SortSmallerThanReference)
	require.NotEmpty(t, filtered)
	for _, r := range filtered {
		assert.Less(t, r.Area, country.ReferenceArea, r.Name)
		assert.True(t, r.HasArea, r.Name)
	}
	assert.NotContains(t, names(filtered), "Lithuania", "threshold is strict")
	assert.NotContains(t, names(filtered), "Nowhere", "unknown area never passes the threshold")
}

func TestFilterRecords_RegionAndThresholdAreConjunctive(t *testing.T) {
	filtered := FilterRecords(sampleRecords(), country.RegionEurope, country.SortSmallerThanReference)
	assert.Equal(t, []string{"Belgium"}, names(filtered))
}

func TestFilterRecords_ThresholdScenario(t *testing.T) {
	raw := []country.Record{rec("Small", "Europe", 50000), rec("Large", "Europe", 100000)}
	filtered := FilterRecords(raw, country.RegionAll, country.SortSmallerThanReference)
	assert.Equal(t, []string{"Small"}, names(filtered))
}

func TestSortRecords(t *testing.T) {
	raw := sampleRecords()

	tests := []struct {
		opt  country.SortOption
		want []string
	}{
		{
			opt: country.SortNameAsc,
			want: []string{
				"Belgium", "Bhutan", "Chile", "Fiji", "France", "Ghana",
				"Jamaica", "Kenya", "Lithuania", "Nepal", "Rwanda", "Samoa",
			},
		},
		{
			opt: country.SortAreaAsc,
			want: []string{
				"Samoa", "Jamaica", "Fiji", "Rwanda", "Belgium", "Bhutan",
				"Lithuania", "Nepal", "Ghana", "Kenya", "France", "Chile",
			},
		},
		{
			opt: country.SortAreaDesc,
			want: []string{
				"Chile", "France", "Kenya", "Ghana", "Nepal", "Lithuania",
				"Bhutan", "Belgium", "Rwanda", "Fiji", "Jamaica", "Samoa",
			},
		},
		{
			// Stable: within a region the input order is kept.
			opt: country.SortRegionAsc,
			want: []string{
				"Kenya", "Ghana", "Rwanda", "Chile", "Jamaica", "Nepal",
				"Bhutan", "Lithuania", "Belgium", "France", "Fiji", "Samoa",
			},
		},
		{
			opt: country.SortRegionDesc,
			want: []string{
				"Fiji", "Samoa", "Lithuania", "Belgium", "France", "Nepal",
				"Bhutan", "Chile", "Jamaica", "Kenya", "Ghana", "Rwanda",
			},
		},
		{opt: country.SortNone, want: names(raw)},
		{opt: country.SortOption("bogus"), want: names(raw)},
	}

	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			assert.Equal(t, tt.want, names(SortRecords(raw, tt.opt)))
		})
	}
}

func TestSortRecords_DoesNotModifyInput(t *testing.T) {
	raw := sampleRecords()
	before := names(raw)
	_ = SortRecords(raw, country.SortNameDesc)
	assert.Equal(t, before, names(raw))
}

func TestSortRecords_NameDescIsReverseOfAsc(t *testing.T) {
	raw := sampleRecords()
	asc := SortRecords(raw, country.SortNameAsc)
	desc := SortRecords(raw, country.SortNameDesc)

	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, desc)
}

func TestSortRecords_SmallerThanReferenceMatchesAreaAsc(t *testing.T) {
	filtered := FilterRecords(sampleRecords(), country.RegionAll, country.SortSmallerThanReference)
	assert.Equal(t,
		SortRecords(filtered, country.SortAreaAsc),
		SortRecords(filtered, country.SortSmallerThanReference),
	)
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	raw := sampleRecords()
	for _, opt := range country.SortOptions() {
		for _, region := range country.Regions() {
			once := SortRecords(FilterRecords(raw, region, opt), opt)
			twice := SortRecords(FilterRecords(once, region, opt), opt)
			assert.Equal(t, once, twice, "region=%q sort=%q", region, opt)
		}
	}
}
