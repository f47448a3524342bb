package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker/v2"
)

// ErrUnexpectedStatus is wrapped into errors returned for non-2xx responses
// from the catalog service.
var ErrUnexpectedStatus = errors.New("unexpected status from catalog service")

// Service is the catalog retrieval boundary. Implementations return the
// ordered product collection for each retrieval mode; callers own what happens
// to the result.
type Service interface {
	FetchAll(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, text string) ([]Product, error)
	Filter(ctx context.Context, fc FilterCriteria) ([]Product, error)
}

// HTTPClient talks to the catalog service over HTTP. The zero value is not
// usable; construct with NewHTTPClient.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]Product]
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithBreaker wraps every retrieval in a circuit breaker. An open breaker
// surfaces as an ordinary retrieval error, so callers keep their previous
// snapshot exactly as they would on a network failure.
func WithBreaker(settings gobreaker.Settings) Option {
	return func(c *HTTPClient) {
		c.breaker = gobreaker.NewCircuitBreaker[[]Product](settings)
	}
}

// NewHTTPClient builds a catalog client for the given base URL. The http
// client is shared with the caller; pass one with the upstream timeout set.
func NewHTTPClient(baseURL string, httpClient *http.Client, opts ...Option) *HTTPClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid catalog base url %q: %v", baseURL, err))
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &HTTPClient{baseURL: u, http: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) FetchAll(ctx context.Context) ([]Product, error) {
	return c.execute(func() ([]Product, error) {
		return c.fetchList(ctx, ComposeAll())
	})
}

// Search issues a text search. The service answers with a {results: [...]}
// envelope; any body that parses as JSON but is not an object carrying a
// results collection yields an empty result, not an error.
func (c *HTTPClient) Search(ctx context.Context, text string) ([]Product, error) {
	req := ComposeSearch(text)
	if req.Path != "/search" {
		// Empty search collapses to the unfiltered listing.
		return c.FetchAll(ctx)
	}
	return c.execute(func() ([]Product, error) {
		body, err := c.get(ctx, req)
		if err != nil {
			return nil, err
		}
		defer body.Close()

		var raw json.RawMessage
		if err := json.NewDecoder(body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode search response: %w", err)
		}
		var env struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			// Parsed JSON but not an object: no results to show.
			return []Product{}, nil
		}
		if len(env.Results) == 0 || string(env.Results) == "null" {
			return []Product{}, nil
		}
		var products []Product
		if err := json.Unmarshal(env.Results, &products); err != nil {
			// results present but not a collection: treat as empty
			return []Product{}, nil
		}
		return products, nil
	})
}

func (c *HTTPClient) Filter(ctx context.Context, fc FilterCriteria) ([]Product, error) {
	return c.execute(func() ([]Product, error) {
		return c.fetchList(ctx, ComposeFilter(fc))
	})
}

func (c *HTTPClient) execute(fetch func() ([]Product, error)) ([]Product, error) {
	if c.breaker == nil {
		return fetch()
	}
	return c.breaker.Execute(fetch)
}

func (c *HTTPClient) fetchList(ctx context.Context, req Request) ([]Product, error) {
	body, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var products []Product
	if err := json.NewDecoder(body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (c *HTTPClient) get(ctx context.Context, r Request) (io.ReadCloser, error) {
	rel := &url.URL{Path: r.Path, RawQuery: r.Encode()}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, r.Path, resp.StatusCode)
	}
	return resp.Body, nil
}
