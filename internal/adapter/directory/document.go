// Package directory holds the city/store directory adapters: the shared JSON
// document format, a file source, an HTTP source, and a caching decorator.
package directory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

// Document is the JSON body served by every directory source.
type Document struct {
	Cities []RawCity `json:"cities"`
}

// RawCity is a city as written in the document.
type RawCity struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Stores []RawStore `json:"stores"`
}

// RawStore is a store as written in the document.
type RawStore struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// Decode parses a directory document and normalizes it into domain cities.
func Decode(data []byte) ([]domain.City, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode directory document: %w", err)
	}
	return Normalize(doc), nil
}

// Normalize converts raw cities to domain cities. Entries without an ID are
// skipped and the first occurrence of a duplicate ID wins.
func Normalize(doc Document) []domain.City {
	cities := make([]domain.City, 0, len(doc.Cities))
	seen := make(map[string]bool, len(doc.Cities))

	for _, rc := range doc.Cities {
		id := strings.TrimSpace(rc.ID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		name := strings.TrimSpace(rc.Name)
		if name == "" {
			name = id
		}
		cities = append(cities, domain.City{
			ID:     id,
			Name:   name,
			Stores: normalizeStores(rc.Stores),
		})
	}

	return cities
}

func normalizeStores(raw []RawStore) []domain.Store {
	stores := make([]domain.Store, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, rs := range raw {
		id := strings.TrimSpace(rs.ID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		stores = append(stores, domain.Store{
			ID:       id,
			Name:     strings.TrimSpace(rs.Name),
			Address:  strings.TrimSpace(rs.Address),
			Capacity: max(rs.Capacity, 0),
		})
	}

	return stores
}
