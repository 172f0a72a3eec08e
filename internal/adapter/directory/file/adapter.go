// Package file reads the city/store directory from a JSON document on disk.
package file

import (
	"context"
	"os"

	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

// SourceName is the unique identifier of the file directory.
const SourceName = "file"

// DefaultPath is the bundled directory document.
const DefaultPath = "data/cities.json"

// Adapter reads the directory document on every call.
type Adapter struct {
	path string
}

// NewAdapter creates a file directory. An empty path uses DefaultPath.
func NewAdapter(path string) *Adapter {
	if path == "" {
		path = DefaultPath
	}
	return &Adapter{path: path}
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Cities reads and normalizes the document. Read failures are retryable;
// a malformed document is not.
func (a *Adapter) Cities(ctx context.Context) ([]domain.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewDirectoryError(SourceName, err)
	}

	data, err := os.ReadFile(a.path)
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
