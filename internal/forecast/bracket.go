package forecast

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// SeededTeam is one playoff entrant, seed 1 being the best.
type SeededTeam struct {
	Seed    int                 `json:"seed"`
	Name    string              `json:"name"`
	PerGame types.CategoryStats `json:"per_game"`
}

// BracketSimulator resolves a single-elimination playoff from projected
// seeds. Supported field sizes are 4 and 6.
type BracketSimulator struct {
	engine *Engine
	logger *logrus.Entry
}

// NewBracketSimulator creates a simulator over one forecast engine.
func NewBracketSimulator(engine *Engine) *BracketSimulator {
	return &BracketSimulator{
		engine: engine,
		logger: logrus.WithField("component", "bracket_simulator"),
	}
}

// Simulate resolves the bracket round by round. Each pairing is decided by
// the category comparison's win/loss majority; a tied comparison goes to the
// higher seed. Seeds must be ordered 1..K.
func (s *BracketSimulator) Simulate(seeds []SeededTeam, settings types.ForecastSettings) (types.BracketResult, error) {
	switch len(seeds) {
	case 4:
		return s.simulateFour(seeds, settings), nil
	case 6:
		return s.simulateSix(seeds, settings), nil
	default:
		return types.BracketResult{}, fmt.Errorf("unsupported bracket size %d: want 4 or 6 seeds", len(seeds))
	}
}

func (s *BracketSimulator) simulateFour(seeds []SeededTeam, settings types.ForecastSettings) types.BracketResult {
	semiA := s.resolve("Semifinal", seeds[0], seeds[3], settings)
	semiB := s.resolve("Semifinal", seeds[1], seeds[2], settings)

	finalists := [2]SeededTeam{s.winnerOf(seeds, semiA), s.winnerOf(seeds, semiB)}
	final := s.resolve("Final", finalists[0], finalists[1], settings)

	champion := s.winnerOf(seeds, final)
	s.logger.WithFields(logrus.Fields{"seeds": 4, "champion": champion.Name}).Debug("Bracket simulated")

	return types.BracketResult{
		Rounds: []types.BracketRound{
			{Name: "Semifinals", Matchups: []types.BracketMatchup{semiA, semiB}},
			{Name: "Final", Matchups: []types.BracketMatchup{final}},
		},
		Champion:     champion.Name,
		ChampionSeed: champion.Seed,
	}
}

func (s *BracketSimulator) simulateSix(seeds []SeededTeam, settings types.ForecastSettings) types.BracketResult {
	// Seeds 1 and 2 sit out the opening round.
	quarterA := s.resolve("Quarterfinal", seeds[2], seeds[5], settings)
	quarterB := s.resolve("Quarterfinal", seeds[3], seeds[4], settings)

	semiA := s.resolve("Semifinal", seeds[0], s.winnerOf(seeds, quarterA), settings)
	semiB := s.resolve("Semifinal", seeds[1], s.winnerOf(seeds, quarterB), settings)

	final := s.resolve("Final", s.winnerOf(seeds, semiA), s.winnerOf(seeds, semiB), settings)

	champion := s.winnerOf(seeds, final)
	s.logger.WithFields(logrus.Fields{"seeds": 6, "champion": champion.Name}).Debug("Bracket simulated")

	return types.BracketResult{
		Rounds: []types.BracketRound{
			{Name: "Quarterfinals", Matchups: []types.BracketMatchup{quarterA, quarterB}},
			{Name: "Semifinals", Matchups: []types.BracketMatchup{semiA, semiB}},
			{Name: "Final", Matchups: []types.BracketMatchup{final}},
		},
		Champion:     champion.Name,
		ChampionSeed: champion.Seed,
	}
}

func (s *BracketSimulator) resolve(round string, a, b SeededTeam, settings types.ForecastSettings) types.BracketMatchup {
	outcome := s.engine.CompareProjected(a.PerGame, b.PerGame, settings)

	matchup := types.BracketMatchup{
		Round: round,
		SeedA: a.Seed, SeedB: b.Seed,
		TeamA: a.Name, TeamB: b.Name,
		Outcome: fmt.Sprintf("%d-%d-%d", outcome.Wins, outcome.Losses, outcome.TossUps),
	}

	switch {
	case outcome.Wins > outcome.Losses:
		matchup.Winner, matchup.WinningSeed = a.Name, a.Seed
	case outcome.Wins < outcome.Losses:
		matchup.Winner, matchup.WinningSeed = b.Name, b.Seed
	default:
		// Dead even comparison defaults to the better seed.
		if a.Seed < b.Seed {
			matchup.Winner, matchup.WinningSeed = a.Name, a.Seed
		} else {
			matchup.Winner, matchup.WinningSeed = b.Name, b.Seed
		}
		matchup.Outcome += " (higher seed advances)"
	}

	return matchup
}

func (s *BracketSimulator) winnerOf(seeds []SeededTeam, matchup types.BracketMatchup) SeededTeam {
	for _, team := range seeds {
		if team.Seed == matchup.WinningSeed {
			return team
		}
	}
	panic(fmt.Sprintf("bracket winner seed %d not among entrants", matchup.WinningSeed))
}
