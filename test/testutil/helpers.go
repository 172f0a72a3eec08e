// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// projectRoot returns the module root (testutil is in test/testutil).
func projectRoot(t *testing.T) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// LoadDataJSON loads a JSON file from the data directory.
func LoadDataJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(DataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load data file %s: %v", filename, err)
	}
	return data
}

// DataPath returns the absolute path of a file in the data directory.
func DataPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "data", filename)
}

// India returns the booking timezone used across the tests.
func India(t *testing.T) *time.Location {
	t.Helper()
	loc, err := timeutil.LoadLocation(timeutil.IST)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", timeutil.IST, err)
	}
	return loc
}

// MustParseLocal parses "YYYY-MM-DD HH:MM" as wall-clock time in loc.
// It fails the test if parsing fails.
func MustParseLocal(t *testing.T, s string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		t.Fatalf("Failed to parse local time %s: %v", s, err)
	}
	return parsed
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// NewClockAt returns a mock clock fixed at "YYYY-MM-DD HH:MM" India time.
func NewClockAt(t *testing.T, s string) *timeutil.MockClock {
	t.Helper()
	return timeutil.NewMockClock(MustParseLocal(t, s, India(t)))
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
