// Package mock provides test doubles for the rental search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

// Directory is a configurable mock implementation of domain.StoreDirectory.
// It supports configurable delays, errors, and responses for testing
// timeouts and directory outages.
type Directory struct {
	name      string
	cities    []domain.City
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewDirectory creates a new mock directory with the given name.
// The directory is configured using the builder pattern methods.
func NewDirectory(name string) *Directory {
	return &Directory{name: name}
}

// WithCities configures the directory to return the given cities.
func (d *Directory) WithCities(cities []domain.City) *Directory {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cities = cities
	return d
}

// WithError configures the directory to return the given error.
func (d *Directory) WithError(err error) *Directory {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
	return d
}

// WithDelay configures the directory to wait the given duration before responding.
func (d *Directory) WithDelay(delay time.Duration) *Directory {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
	return d
}

// Name returns the directory's source name.
func (d *Directory) Name() string {
	return d.name
}

// Cities implements domain.StoreDirectory.Cities.
// It respects context cancellation, applies the configured delay,
// and returns the configured cities or error.
func (d *Directory) Cities(ctx context.Context) ([]domain.City, error) {
	d.mu.Lock()
	d.callCount++
	delay, cities, err := d.delay, d.cities, d.err
	d.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, domain.NewDirectoryError(d.name, ctx.Err())
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return nil, domain.NewDirectoryError(d.name, ctx.Err())
	}

	if err != nil {
		return nil, err
	}

	return cities, nil
}

// CallCount returns the number of times Cities was called.
func (d *Directory) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.callCount
}

// Reset resets the call count to zero.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callCount = 0
}

// Ensure Directory implements domain.StoreDirectory at compile time.
var _ domain.StoreDirectory = (*Directory)(nil)

// SampleCities returns cities with realistic store data. Pune has two stores,
// Mumbai one, and Goa is delivery-only.
func SampleCities() []domain.City {
	return []domain.City{
		{
			ID:   "pune",
			Name: "Pune",
			Stores: []domain.Store{
				{ID: "pune-1", Name: "Pune Station", Address: "Station Road, Agarkar Nagar", Capacity: 40},
				{ID: "pune-2", Name: "Hinjewadi", Address: "Phase 1, Hinjewadi", Capacity: 25},
			},
		},
		{
			ID:   "mumbai",
			Name: "Mumbai",
			Stores: []domain.Store{
				{ID: "mumbai-1", Name: "Andheri East", Address: "Chakala, Andheri East", Capacity: 30},
			},
		},
		{ID: "goa", Name: "Goa"},
	}
}
