// Package source fetches the country dataset. The dataset is fetched once; a
// failed fetch is logged and resolves to an empty dataset rather than an error
// the list view has to handle.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/logging"
)

// Fetcher retrieves the full country list in one call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]country.Record, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]country.Record, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) ([]country.Record, error) {
	return f(ctx)
}

// Result is a resolved fetch: either the records or the error that replaced them.
type Result struct {
	Records  []country.Record
	Err      error
	Duration time.Duration
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Dataset returns the fetched records, or an empty dataset when the fetch failed.
func (r Result) Dataset() []country.Record {
	if r.Err != nil || r.Records == nil {
		return []country.Record{}
	}
	return r.Records
}

// Load runs one fetch and resolves it. Failures are logged at warn level and
// are not retried.
func Load(ctx context.Context, f Fetcher) Result {
	log := logging.FromContext(ctx)
	start := time.Now()

	records, err := f.Fetch(ctx)
	result := Result{Records: records, Err: err, Duration: time.Since(start)}

	if err != nil {
		log.Warn().
			Str("component", "source").
			Err(err).
			Dur("duration", result.Duration).
			Msg("country fetch failed, continuing with an empty dataset")
		return result
	}

	log.Debug().
		Str("component", "source").
		Int("records", len(records)).
		Dur("duration", result.Duration).
		Msg("country fetch complete")
	return result
}

// wireRecord is the upstream JSON shape. Area is a pointer so a missing or null
// area can be told apart from zero.
type wireRecord struct {
	Name   string   `json:"name"`
	Region string   `json:"region"`
	Area   *float64 `json:"area"`
}

// DecodeRecords parses a JSON array of country objects.
func DecodeRecords(data []byte) ([]country.Record, error) {
	var wire []wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding countries: %w", err)
	}

	records := make([]country.Record, 0, len(wire))
	for _, w := range wire {
		r := country.Record{Name: w.Name, Region: w.Region}
		if w.Area != nil {
			r.Area = *w.Area
			r.HasArea = true
		}
		records = append(records, r)
	}
	return records, nil
}

// FileSource reads the dataset from a JSON file in the upstream format.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(ctx context.Context) ([]country.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return DecodeRecords(data)
}
