package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/cache"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

var puneOnly = []domain.City{{ID: "pune", Name: "Pune", Stores: []domain.Store{{ID: "pune-1", Name: "Station", Capacity: 10}}}}

type lookupRecorder struct {
	results []string
}

func (r *lookupRecorder) ObserveDirectory(_ string, result string) {
	r.results = append(r.results, result)
}

// failingCache returns the same error from every operation.
type failingCache struct{ err error }

func (f failingCache) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return f.err
}
func (f failingCache) Delete(context.Context, string) error { return f.err }
func (f failingCache) Name() string                         { return "failing" }

func TestCached_HitAfterMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("file").AnyTimes()
	src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil).Times(1)

	obs := &lookupRecorder{}
	cd := NewCached(src, cache.NewMemory(nil), time.Minute, WithObserver(obs))

	for i := 0; i < 3; i++ {
		cities, err := cd.Cities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, puneOnly, cities)
	}

	assert.Equal(t, []string{"miss", "hit", "hit"}, obs.results)
	assert.Equal(t, "file", cd.Name())
}

func TestCached_ExpiryReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("file").AnyTimes()
	src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil).Times(2)

	clock := timeutil.NewMockClock(time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC))
	cd := NewCached(src, cache.NewMemory(clock), 5*time.Minute)

	_, err := cd.Cities(context.Background())
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = cd.Cities(context.Background())
	require.NoError(t, err)
}

func TestCached_InvalidateReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("file").AnyTimes()
	src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil).Times(2)

	cd := NewCached(src, cache.NewMemory(nil), time.Hour)
	ctx := context.Background()

	_, _ = cd.Cities(ctx)
	require.NoError(t, cd.Invalidate(ctx))
	_, _ = cd.Cities(ctx)
}

func TestCached_SourceErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("http").AnyTimes()

	srcErr := domain.NewRetryableDirectoryError("http", errors.New("503"))
	gomock.InOrder(
		src.EXPECT().Cities(gomock.Any()).Return(nil, srcErr),
		src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil),
	)

	obs := &lookupRecorder{}
	cd := NewCached(src, cache.NewMemory(nil), time.Minute, WithObserver(obs))

	_, err := cd.Cities(context.Background())
	assert.ErrorIs(t, err, domain.ErrDirectoryUnavailable)

	cities, err := cd.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puneOnly, cities)
	assert.Equal(t, []string{"error", "miss"}, obs.results)
}

func TestCached_BrokenCacheFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("file").AnyTimes()
	src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil).Times(2)

	cd := NewCached(src, failingCache{err: errors.New("redis down")}, time.Minute)

	for i := 0; i < 2; i++ {
		cities, err := cd.Cities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, puneOnly, cities)
	}
}

func TestCached_UnreadableEntryIsReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := domain.NewMockStoreDirectory(ctrl)
	src.EXPECT().Name().Return("file").AnyTimes()
	src.EXPECT().Cities(gomock.Any()).Return(puneOnly, nil).Times(1)

	mem := cache.NewMemory(nil)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, "directory:file:cities", []byte("not json"), 0))

	cd := NewCached(src, mem, time.Minute)
	cities, err := cd.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, puneOnly, cities)

	cities, err = cd.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, puneOnly, cities)
}
