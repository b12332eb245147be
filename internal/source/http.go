package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rshade/countrylist/internal/country"
)

// ErrUnexpectedStatus is returned when the upstream answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// HTTPSource fetches the dataset with a single GET request.
type HTTPSource struct {
	client   *resty.Client
	endpoint string
}

// NewHTTPSource creates an HTTPSource for endpoint. Requests are never retried.
func NewHTTPSource(endpoint string, timeout time.Duration, userAgent string) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &HTTPSource{client: client, endpoint: endpoint}
}

// Endpoint returns the URL the source queries.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch performs the GET and decodes the body.
func (s *HTTPSource) Fetch(ctx context.Context) ([]country.Record, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.endpoint, err)
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, s.endpoint, resp.StatusCode())
	}

	return DecodeRecords(resp.Body())
}
