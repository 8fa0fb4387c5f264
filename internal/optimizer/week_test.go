package optimizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-engine/internal/types"
)

type stubGames struct {
	days map[string]types.DayGameSet
}

func (s *stubGames) GamesFor(date string) (types.DayGameSet, error) {
	day, ok := s.days[date]
	if !ok {
		return types.DayGameSet{Date: date}, nil
	}
	return day, nil
}

func weekRoster() []types.RosterSlot {
	return []types.RosterSlot{
		{Kind: types.SlotKindStarter, Player: types.Player{ID: "p1", Name: "A", Team: "BOS", Positions: []string{"PG"}}},
		{Kind: types.SlotKindStarter, Player: types.Player{ID: "p2", Name: "B", Team: "NYK", Positions: []string{"C"}}},
	}
}

func TestWeekAggregator_PartitionsDates(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	games := &stubGames{days: map[string]types.DayGameSet{
		"2026-01-05": {Date: "2026-01-05", Games: []types.ScheduledGame{{Home: "BOS", Away: "MIA", Status: types.GameStatusFinal}}},
		"2026-01-07": {Date: "2026-01-07", Games: []types.ScheduledGame{{
			Home: "BOS", Away: "NYK", Status: types.GameStatusScheduled,
			Tipoff: time.Date(2026, 1, 7, 19, 0, 0, 0, time.UTC),
		}}},
		"2026-01-09": {Date: "2026-01-09", Games: []types.ScheduledGame{{Home: "NYK", Away: "CHI", Status: types.GameStatusScheduled}}},
	}}

	agg := NewWeekAggregator(NewDailyEvaluator(DefaultLineupSlots(), identityCodes("BOS", "NYK", "MIA", "CHI")), games)
	stats, err := agg.Aggregate(weekRoster(), []string{"2026-01-05", "2026-01-07", "2026-01-09"}, now)
	require.NoError(t, err)

	// Jan 5 is past; Jan 7's earliest tipoff is 19:00, so at noon today is
	// still remaining; Jan 9 is future.
	require.Len(t, stats.Elapsed, 1)
	require.Len(t, stats.Remaining, 2)
	assert.Equal(t, "2026-01-05", stats.Elapsed[0].Date)
	assert.Equal(t, 1, stats.ElapsedTotals.Starts)
	assert.Equal(t, 3, stats.RosterGamesRemaining)
}

func TestWeekAggregator_TodayBegun(t *testing.T) {
	tipoff := time.Date(2026, 1, 7, 19, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		now     time.Time
		status  types.GameStatus
		elapsed bool
	}{
		{"before tipoff", tipoff.Add(-2 * time.Hour), types.GameStatusScheduled, false},
		{"at tipoff", tipoff, types.GameStatusScheduled, true},
		{"live game", tipoff.Add(-2 * time.Hour), types.GameStatusLive, true},
		{"final game", tipoff.Add(-2 * time.Hour), types.GameStatusFinal, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := types.DayGameSet{Date: "2026-01-07", Games: []types.ScheduledGame{{
				Home: "BOS", Away: "NYK", Status: tc.status, Tipoff: tipoff,
			}}}
			assert.Equal(t, tc.elapsed, todayHasBegun(day, tc.now))
		})
	}
}
