// Package httpclient reads the city/store directory from a remote HTTP service.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/retry"
)

// SourceName is the unique identifier of the HTTP directory.
const SourceName = "http"

// DefaultTimeout bounds a single request attempt.
const DefaultTimeout = 3 * time.Second

// maxBodyBytes caps the directory document size.
const maxBodyBytes = 4 << 20

// Adapter fetches GET {baseURL}/cities with retries on transient failures.
type Adapter struct {
	baseURL string
	client  *http.Client
	retry   retry.Config
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		if c != nil {
			a.client = c
		}
	}
}

// WithRetry replaces the retry policy.
func WithRetry(cfg retry.Config) Option {
	return func(a *Adapter) {
		a.retry = cfg
	}
}

// NewAdapter creates an HTTP directory for baseURL.
func NewAdapter(baseURL string, timeout time.Duration, opts ...Option) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	a := &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retry:   retry.DefaultConfig,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.retry.RetryIf = domain.IsRetryable
	return a
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Cities fetches and normalizes the directory document.
func (a *Adapter) Cities(ctx context.Context) ([]domain.City, error) {
	return retry.Do(ctx, a.retry, a.fetch)
}

func (a *Adapter) fetch(ctx context.Context) ([]domain.City, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/cities", nil)
	if err != nil {
		return nil, domain.NewDirectoryError(SourceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, domain.NewDirectoryError(SourceName, err)
		}
		return nil, domain.NewRetryableDirectoryError(SourceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewRetryableDirectoryError(SourceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewDirectoryError(SourceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewRetryableDirectoryError(SourceName, err)
	}

	cities, err := directory.Decode(data)
	if err != nil {
		return nil, domain.NewDirectoryError(SourceName, err)
	}
	return cities, nil
}

var _ domain.StoreDirectory = (*Adapter)(nil)
