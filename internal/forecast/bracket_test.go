package forecast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-engine/internal/types"
)

func equalSeeds(k int) []SeededTeam {
	seeds := make([]SeededTeam, k)
	for i := range seeds {
		seeds[i] = SeededTeam{Seed: i + 1, Name: fmt.Sprintf("Team %d", i+1)}
	}
	return seeds
}

func TestBracket_SixSeedsAllEqual(t *testing.T) {
	result, err := NewBracketSimulator(NewEngine()).Simulate(equalSeeds(6), types.DefaultForecastSettings())
	require.NoError(t, err)

	// Every pairing ties, so the higher seed advances throughout and seed 1
	// takes the title.
	require.Len(t, result.Rounds, 3)
	assert.Equal(t, "Quarterfinals", result.Rounds[0].Name)
	assert.Len(t, result.Rounds[0].Matchups, 2)
	assert.Equal(t, 3, result.Rounds[0].Matchups[0].WinningSeed)
	assert.Equal(t, 4, result.Rounds[0].Matchups[1].WinningSeed)
	assert.Len(t, result.Rounds[1].Matchups, 2)
	assert.Len(t, result.Rounds[2].Matchups, 1)
	assert.Equal(t, "Team 1", result.Champion)
	assert.Equal(t, 1, result.ChampionSeed)
}

func TestBracket_FourSeeds(t *testing.T) {
	seeds := equalSeeds(4)
	// Give seed 3 a line that beats everyone.
	seeds[2].PerGame = types.CategoryStats{Points: 200, Rebounds: 80, Assists: 50,
		Steals: 20, Blocks: 12, ThreePointers: 25}

	result, err := NewBracketSimulator(NewEngine()).Simulate(seeds, types.DefaultForecastSettings())
	require.NoError(t, err)

	require.Len(t, result.Rounds, 2)
	assert.Equal(t, "Semifinals", result.Rounds[0].Name)
	assert.Len(t, result.Rounds[0].Matchups, 2)

	// Seed 3 upsets 2 in the semifinal and 1 in the final.
	assert.Equal(t, 3, result.Rounds[0].Matchups[1].WinningSeed)
	assert.Equal(t, "Team 3", result.Champion)
	assert.Equal(t, 3, result.ChampionSeed)
}

func TestBracket_SixSeedPairings(t *testing.T) {
	result, err := NewBracketSimulator(NewEngine()).Simulate(equalSeeds(6), types.DefaultForecastSettings())
	require.NoError(t, err)

	quarters := result.Rounds[0].Matchups
	assert.Equal(t, [2]int{3, 6}, [2]int{quarters[0].SeedA, quarters[0].SeedB})
	assert.Equal(t, [2]int{4, 5}, [2]int{quarters[1].SeedA, quarters[1].SeedB})

	// Quarterfinal winners meet seeds 1 and 2 in order.
	semis := result.Rounds[1].Matchups
	assert.Equal(t, 1, semis[0].SeedA)
	assert.Equal(t, 2, semis[1].SeedA)
}

func TestBracket_RejectsOtherSizes(t *testing.T) {
	for _, k := range []int{0, 2, 5, 8} {
		_, err := NewBracketSimulator(NewEngine()).Simulate(equalSeeds(k), types.DefaultForecastSettings())
		assert.Error(t, err, "bracket size %d must be rejected", k)
	}
}

func TestBracket_AlwaysOneChampion(t *testing.T) {
	seeds := equalSeeds(6)
	for i := range seeds {
		seeds[i].PerGame = types.CategoryStats{Points: float64(100 + 10*i), Rebounds: float64(40 + 5*i),
			Turnovers: float64(20 - i)}
	}

	result, err := NewBracketSimulator(NewEngine()).Simulate(seeds, types.DefaultForecastSettings())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Champion)
	total := 0
	for _, round := range result.Rounds {
		total += len(round.Matchups)
	}
	// 6 entrants, single elimination: exactly 5 matchups and one survivor.
	assert.Equal(t, 5, total)
}
