package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-engine/internal/types"
)

func standingsFixture() (types.LeagueSchedule, map[string]TeamSeason) {
	schedule := types.LeagueSchedule{
		Season: "2025-26",
		Matchups: []types.ScheduledMatchup{
			{Week: 1, Home: "Sharks", Away: "Wolves"},
			{Week: 2, Home: "Sharks", Away: "Bears"},
			{Week: 2, Home: "Wolves", Away: "Bears"},
		},
	}
	teams := map[string]TeamSeason{
		"Sharks": {Name: "Sharks", Record: types.Record{Wins: 5, Losses: 2},
			PerGame: types.CategoryStats{Points: 130, Rebounds: 55, Assists: 30, Steals: 10, Blocks: 8, ThreePointers: 14, Turnovers: 12}},
		"Wolves": {Name: "Wolves", Record: types.Record{Wins: 4, Losses: 3},
			PerGame: types.CategoryStats{Points: 115, Rebounds: 48, Assists: 24, Steals: 8, Blocks: 5, ThreePointers: 11, Turnovers: 16}},
		"Bears": {Name: "Bears", Record: types.Record{Wins: 2, Losses: 5},
			PerGame: types.CategoryStats{Points: 100, Rebounds: 40, Assists: 18, Steals: 5, Blocks: 3, ThreePointers: 8, Turnovers: 20}},
	}
	return schedule, teams
}

func TestStandingsProjector_ProjectsRemainingMatchups(t *testing.T) {
	schedule, teams := standingsFixture()
	settings := types.DefaultForecastSettings()
	settings.CurrentWeekCutoff = 2 // week 1 already played

	result := NewStandingsProjector(NewEngine()).Project(schedule, teams, settings)
	require.Len(t, result.Standings, 3)
	assert.Empty(t, result.Gaps)

	// Sharks sweep their remaining game, Wolves beat Bears; totals put
	// Sharks first on the better current record.
	top := result.Standings[0]
	assert.Equal(t, "Sharks", top.Team)
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, types.Record{Wins: 1}, top.Projected)
	assert.Equal(t, 6, top.Total.Wins)

	assert.Equal(t, "Wolves", result.Standings[1].Team)
	assert.Equal(t, 2, result.Standings[1].Rank)
	assert.Equal(t, "Bears", result.Standings[2].Team)
	assert.Equal(t, types.Record{Losses: 2}, result.Standings[2].Projected)
}

func TestStandingsProjector_IncludeCompletedWeeks(t *testing.T) {
	schedule, teams := standingsFixture()
	settings := types.DefaultForecastSettings()
	settings.CurrentWeekCutoff = 2
	settings.IncludeCompletedWeeks = true

	result := NewStandingsProjector(NewEngine()).Project(schedule, teams, settings)

	// All three matchups simulate, so Sharks project two extra wins.
	for _, s := range result.Standings {
		if s.Team == "Sharks" {
			assert.Equal(t, types.Record{Wins: 2}, s.Projected)
		}
	}
}

func TestStandingsProjector_IgnoresCurrentRecords(t *testing.T) {
	schedule, teams := standingsFixture()
	settings := types.DefaultForecastSettings()
	settings.StartFromCurrentRecords = false

	result := NewStandingsProjector(NewEngine()).Project(schedule, teams, settings)

	for _, s := range result.Standings {
		assert.Equal(t, types.Record{}, s.Current)
		assert.Equal(t, s.Projected, s.Total)
	}
}

func TestStandingsProjector_MissingTeamIsGapNotError(t *testing.T) {
	schedule, teams := standingsFixture()
	schedule.Matchups = append(schedule.Matchups, types.ScheduledMatchup{Week: 3, Home: "Sharks", Away: "Ghosts"})

	result := NewStandingsProjector(NewEngine()).Project(schedule, teams, types.DefaultForecastSettings())

	require.Len(t, result.Gaps, 1)
	assert.Equal(t, types.CodeOppRosterMissing, result.Gaps[0].Code)
}
