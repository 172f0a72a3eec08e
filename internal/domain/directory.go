package domain

//go:generate mockgen -source=directory.go -destination=mock_directory.go -package=domain

import "context"

// Store is a physical pickup location inside a city.
type Store struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// City is a rental city together with its stores.
type City struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stores []Store `json:"stores"`
}

// FindStore returns the store with the given ID.
func (c City) FindStore(id string) (Store, bool) {
	for _, s := range c.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

// StoreDirectory lists the cities and stores rentals can start from.
type StoreDirectory interface {
	// Name identifies the directory source in logs and errors.
	Name() string

	// Cities returns every rental city with its stores.
	Cities(ctx context.Context) ([]City, error)
}

// FindCity returns the city with the given ID from a list.
func FindCity(cities []City, id string) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}
