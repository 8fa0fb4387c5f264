package schedule

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/cache"
	"github.com/stitts-dev/roster-engine/internal/types"
)

// DefaultGamesTTL bounds how stale a cached day of games may get. Tipoff
// times and statuses move during the day, so this stays short.
const DefaultGamesTTL = 5 * time.Minute

// GamesProvider supplies the game calendar for a single date. The engine
// core consumes it through the optimizer.GamesSource interface.
type GamesProvider interface {
	GamesFor(date string) (types.DayGameSet, error)
}

// StaticGamesProvider serves an in-memory calendar, the shape used for tests
// and for pre-resolved calendars handed over by the caller.
type StaticGamesProvider struct {
	days map[string]types.DayGameSet
}

// NewStaticGamesProvider builds a provider over a date-keyed calendar.
func NewStaticGamesProvider(days map[string]types.DayGameSet) *StaticGamesProvider {
	return &StaticGamesProvider{days: days}
}

// GamesFor returns the day's games; a date with no games is an empty set,
// not an error.
func (p *StaticGamesProvider) GamesFor(date string) (types.DayGameSet, error) {
	if day, ok := p.days[date]; ok {
		return day, nil
	}
	return types.DayGameSet{Date: date, Games: []types.ScheduledGame{}}, nil
}

// CachedGamesProvider wraps another provider with an explicit TTL cache.
// The cache object is owned by whoever constructs this provider; nothing is
// memoized in hidden module state.
type CachedGamesProvider struct {
	inner  GamesProvider
	cache  cache.Provider
	ttl    time.Duration
	logger *logrus.Entry
}

// NewCachedGamesProvider wraps inner with store. A non-positive ttl falls
// back to DefaultGamesTTL.
func NewCachedGamesProvider(inner GamesProvider, store cache.Provider, ttl time.Duration) *CachedGamesProvider {
	if ttl <= 0 {
		ttl = DefaultGamesTTL
	}
	return &CachedGamesProvider{
		inner:  inner,
		cache:  store,
		ttl:    ttl,
		logger: logrus.WithField("component", "games_provider"),
	}
}

// GamesFor serves from cache when fresh, falling through to the inner
// provider otherwise. A failed cache write is logged, not surfaced; the
// fetched day is still good.
func (p *CachedGamesProvider) GamesFor(date string) (types.DayGameSet, error) {
	ctx := context.Background()
	key := "games:" + date

	var cached types.DayGameSet
	if err := p.cache.Get(ctx, key, &cached); err == nil {
		p.logger.WithField("date", date).Debug("Game calendar cache hit")
		return cached, nil
	}

	day, err := p.inner.GamesFor(date)
	if err != nil {
		return types.DayGameSet{}, err
	}

	if err := p.cache.Set(ctx, key, day, p.ttl); err != nil {
		p.logger.WithError(err).WithField("date", date).Warn("Failed to cache game calendar")
	}
	return day, nil
}
