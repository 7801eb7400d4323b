package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

// Source supplies the full, unfiltered car collection.
type Source interface {
	FetchCars(ctx context.Context) ([]Car, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Car, error)

func (f SourceFunc) FetchCars(ctx context.Context) ([]Car, error) {
	return f(ctx)
}

// Fetcher performs a single catalog read and records its outcome. It never
// retries; callers build a new Fetcher for every page view, so the catalog
// is always refetched.
type Fetcher struct {
	source Source

	mu      sync.RWMutex
	loading bool
	err     error
	cars    []Car
}

// NewFetcher returns a Fetcher in the loading state.
func NewFetcher(source Source) *Fetcher {
	return &Fetcher{source: source, loading: true, cars: []Car{}}
}

// Load reads the catalog once. On failure the message is kept and the data
// stays empty.
func (f *Fetcher) Load(ctx context.Context) {
	cars, err := f.source.FetchCars(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		log.Printf("[catalog] Fetch failed: %v", err)
		f.err = err
		f.cars = []Car{}
		return
	}
	if cars == nil {
		cars = []Car{}
	}
	f.err = nil
	f.cars = cars
}

// Loading is true until the first response arrives.
func (f *Fetcher) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Err returns the failure message, or "" after a successful read.
func (f *Fetcher) Err() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.err == nil {
		return ""
	}
	return f.err.Error()
}

// Cause returns the error behind Err, or nil.
func (f *Fetcher) Cause() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// Cars returns the fetched collection, empty until loaded.
func (f *Fetcher) Cars() []Car {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cars
}

// ErrStatus is returned when the endpoint answers with a non-success envelope.
var ErrStatus = errors.New("catalog request was not successful")

// HTTPSource reads the catalog from a remote JSON endpoint.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
	Client  *fasthttp.Client
}

// NewHTTPSource returns a source for url with its own fasthttp client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:     url,
		Timeout: timeout,
		Client: &fasthttp.Client{
			Name:                "showroom-catalog",
			MaxIdleConnDuration: time.Minute,
		},
	}
}

// FetchCars issues a GET and decodes the {status, data, message} envelope.
func (s *HTTPSource) FetchCars(ctx context.Context) ([]Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.URL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	timeout := s.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if err := s.Client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("could not reach the catalog: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if code := resp.StatusCode(); code < 200 || code > 299 {
			return nil, fmt.Errorf("%w: HTTP %d", ErrStatus, code)
		}
		return nil, fmt.Errorf("could not read the catalog: %w", err)
	}

	if env.Status != StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %q", env.Status)
		}
		return nil, fmt.Errorf("%w: %s", ErrStatus, msg)
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrStatus, code)
	}
	return env.Data, nil
}
