package forecast

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// TeamSeason carries one team's current record and aggregate stat line.
type TeamSeason struct {
	Name    string              `json:"name"`
	Record  types.Record        `json:"record"`
	PerGame types.CategoryStats `json:"per_game"`
}

// StandingsResult is the projection output plus any matchups that could not
// be simulated.
type StandingsResult struct {
	Standings []types.TeamStanding `json:"standings"`
	Gaps      []types.Unavailable  `json:"gaps,omitempty"`
}

// StandingsProjector simulates every remaining scheduled matchup to project
// final season records and ranks.
type StandingsProjector struct {
	engine *Engine
	logger *logrus.Entry
}

// NewStandingsProjector creates a projector over one forecast engine.
func NewStandingsProjector(engine *Engine) *StandingsProjector {
	return &StandingsProjector{
		engine: engine,
		logger: logrus.WithField("component", "standings_projector"),
	}
}

type teamAccumulator struct {
	projected   types.Record
	catWins     int
	catContests int
}

// Project walks the schedule, classifying each remaining matchup for both
// sides and accumulating projected records on top of current ones.
func (p *StandingsProjector) Project(schedule types.LeagueSchedule, teams map[string]TeamSeason, settings types.ForecastSettings) StandingsResult {
	acc := make(map[string]*teamAccumulator, len(teams))
	for name := range teams {
		acc[name] = &teamAccumulator{}
	}

	var gaps []types.Unavailable
	for _, matchup := range schedule.Matchups {
		if p.completed(matchup.Week, settings) && !settings.IncludeCompletedWeeks {
			continue
		}

		home, okHome := teams[matchup.Home]
		away, okAway := teams[matchup.Away]
		if !okHome || !okAway {
			gaps = append(gaps, *types.NewUnavailable(types.CodeOppRosterMissing,
				fmt.Sprintf("week %d %s vs %s: missing team data", matchup.Week, matchup.Home, matchup.Away)))
			continue
		}

		outcome := p.engine.CompareProjected(home.PerGame, away.PerGame, settings)

		homeAcc, awayAcc := acc[matchup.Home], acc[matchup.Away]
		switch {
		case outcome.Wins > outcome.Losses:
			homeAcc.projected.Wins++
			awayAcc.projected.Losses++
		case outcome.Wins < outcome.Losses:
			homeAcc.projected.Losses++
			awayAcc.projected.Wins++
		default:
			homeAcc.projected.Ties++
			awayAcc.projected.Ties++
		}

		homeAcc.catWins += outcome.Wins
		homeAcc.catContests += 9
		awayAcc.catWins += outcome.Losses
		awayAcc.catContests += 9
	}

	standings := make([]types.TeamStanding, 0, len(teams))
	for name, team := range teams {
		current := team.Record
		if !settings.StartFromCurrentRecords {
			current = types.Record{}
		}
		a := acc[name]
		catPct := 0.0
		if a.catContests > 0 {
			catPct = float64(a.catWins) / float64(a.catContests)
		}
		standings = append(standings, types.TeamStanding{
			Team:           name,
			Current:        current,
			Projected:      a.projected,
			Total:          current.Add(a.projected),
			CategoryWinPct: catPct,
		})
	}

	// Name order first so equal sort keys resolve the same way every run.
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].Team < standings[j].Team
	})
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Total.Wins != standings[j].Total.Wins {
			return standings[i].Total.Wins > standings[j].Total.Wins
		}
		return standings[i].CategoryWinPct > standings[j].CategoryWinPct
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	p.logger.WithFields(logrus.Fields{
		"teams":    len(standings),
		"matchups": len(schedule.Matchups),
		"gaps":     len(gaps),
	}).Debug("Standings projected")

	return StandingsResult{Standings: standings, Gaps: gaps}
}

func (p *StandingsProjector) completed(week int, settings types.ForecastSettings) bool {
	if week < settings.CurrentWeekCutoff {
		return true
	}
	for _, w := range settings.CompletedWeeks {
		if w == week {
			return true
		}
	}
	return false
}
