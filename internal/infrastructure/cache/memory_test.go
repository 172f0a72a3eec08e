package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(timeutil.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, c.Set(ctx, "cities", []byte(`[{"id":"pune"}]`), time.Minute))

	got, err := c.Get(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"pune"}]`, string(got))
	assert.Equal(t, "memory", c.Name())
}

func TestMemory_Miss(t *testing.T) {
	_, err := NewMemory(nil).Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	c := NewMemory(clock)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 5*time.Minute))

	clock.Advance(4*time.Minute + 59*time.Second)
	_, err := c.Get(ctx, "k")
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Equal(t, 0, c.Len())
}

func TestMemory_NoTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	c := NewMemory(clock)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	clock.AdvanceDays(365)

	_, err := c.Get(ctx, "k")
	assert.NoError(t, err)
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(nil)
	value := []byte("abc")

	require.NoError(t, c.Set(ctx, "k", value, 0))
	value[0] = 'x'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(nil)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = c.Set(ctx, key, []byte("v"), time.Minute)
			_, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
}

// hookClock runs hook once, on the next Now call after it is set.
type hookClock struct {
	now  time.Time
	hook func()
}

func (c *hookClock) Now() time.Time {
	if h := c.hook; h != nil {
		c.hook = nil
		h()
	}
	return c.now
}

func TestMemory_ExpiredReadKeepsConcurrentSet(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := &hookClock{now: start}
	c := NewMemory(clock)

	require.NoError(t, c.Set(ctx, "cities", []byte("old"), time.Minute))
	clock.now = start.Add(2 * time.Minute)

	// The fresh entry lands between the expired read and the eviction.
	clock.hook = func() {
		_ = c.Set(ctx, "cities", []byte("fresh"), time.Minute)
	}
	_, err := c.Get(ctx, "cities")
	assert.ErrorIs(t, err, ErrMiss)

	got, err := c.Get(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}

func TestNewRedis_DefaultPrefix(t *testing.T) {
	r := NewRedis(nil, "  ")
	assert.Equal(t, "rental-search:cities", r.key("cities"))
	assert.Equal(t, "redis", r.Name())

	assert.Equal(t, "rs:cities", NewRedis(nil, "rs").key("cities"))
}
