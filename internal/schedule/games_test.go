package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-engine/internal/cache"
	"github.com/stitts-dev/roster-engine/internal/types"
)

type countingProvider struct {
	inner GamesProvider
	calls int
}

func (c *countingProvider) GamesFor(date string) (types.DayGameSet, error) {
	c.calls++
	return c.inner.GamesFor(date)
}

func TestStaticGamesProvider_EmptyDate(t *testing.T) {
	provider := NewStaticGamesProvider(nil)
	day, err := provider.GamesFor("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", day.Date)
	assert.Empty(t, day.Games)
}

func TestCachedGamesProvider_ServesFromCache(t *testing.T) {
	inner := &countingProvider{inner: NewStaticGamesProvider(map[string]types.DayGameSet{
		"2026-01-05": {Date: "2026-01-05", Games: []types.ScheduledGame{{Home: "BOS", Away: "NYK"}}},
	})}
	provider := NewCachedGamesProvider(inner, cache.NewMemoryProvider(), time.Minute)

	first, err := provider.GamesFor("2026-01-05")
	require.NoError(t, err)
	second, err := provider.GamesFor("2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, first.Games, second.Games)
	assert.Equal(t, 1, inner.calls, "second read must come from cache")
}

func TestCachedGamesProvider_DistinctDates(t *testing.T) {
	inner := &countingProvider{inner: NewStaticGamesProvider(nil)}
	provider := NewCachedGamesProvider(inner, cache.NewMemoryProvider(), time.Minute)

	_, err := provider.GamesFor("2026-01-05")
	require.NoError(t, err)
	_, err = provider.GamesFor("2026-01-06")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
