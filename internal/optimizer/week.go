package optimizer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// GamesSource supplies the game calendar for a single date.
type GamesSource interface {
	GamesFor(date string) (types.DayGameSet, error)
}

// WeekAggregator runs the daily evaluator across a matchup week, splitting
// dates into what already happened and what is still projectable.
type WeekAggregator struct {
	eval   *DailyEvaluator
	games  GamesSource
	logger *logrus.Entry
}

// NewWeekAggregator creates an aggregator over one evaluator and calendar
// source.
func NewWeekAggregator(eval *DailyEvaluator, games GamesSource) *WeekAggregator {
	return &WeekAggregator{
		eval:   eval,
		games:  games,
		logger: logrus.WithField("component", "week_aggregator"),
	}
}

// Aggregate evaluates every date of the matchup period against the roster.
// Dates strictly before now's date are elapsed; today joins the elapsed
// partition once its games have begun.
func (a *WeekAggregator) Aggregate(roster []types.RosterSlot, dates []string, now time.Time) (types.WeekStats, error) {
	stats := types.WeekStats{
		Elapsed:   []types.DayStartsBreakdown{},
		Remaining: []types.DayStartsBreakdown{},
	}
	today := now.Format(types.DateLayout)

	for _, date := range dates {
		day, err := a.games.GamesFor(date)
		if err != nil {
			return types.WeekStats{}, fmt.Errorf("loading games for %s: %w", date, err)
		}

		breakdown := a.eval.Evaluate(roster, day)

		elapsed := date < today
		if date == today {
			elapsed = todayHasBegun(day, now)
		}

		if elapsed {
			stats.Elapsed = append(stats.Elapsed, breakdown)
			stats.ElapsedTotals.Starts += breakdown.StartsUsed
			stats.ElapsedTotals.Overflow += breakdown.ScheduleOverflow
			stats.ElapsedTotals.Unused += breakdown.UnusedSlots
		} else {
			stats.Remaining = append(stats.Remaining, breakdown)
			stats.RemainingTotals.Starts += breakdown.StartsUsed
			stats.RemainingTotals.Overflow += breakdown.ScheduleOverflow
			stats.RemainingTotals.Unused += breakdown.UnusedSlots
			stats.RosterGamesRemaining += breakdown.Candidates
		}
	}

	a.logger.WithFields(logrus.Fields{
		"dates":           len(dates),
		"elapsed_days":    len(stats.Elapsed),
		"remaining_days":  len(stats.Remaining),
		"games_remaining": stats.RosterGamesRemaining,
	}).Debug("Week aggregated")

	return stats, nil
}

// todayHasBegun reports whether today belongs to the elapsed partition: any
// game is live or final, or now is at or past the earliest scheduled tipoff.
func todayHasBegun(day types.DayGameSet, now time.Time) bool {
	var earliest time.Time
	for _, game := range day.Games {
		if game.Status == types.GameStatusLive || game.Status == types.GameStatusFinal {
			return true
		}
		if game.Tipoff.IsZero() {
			continue
		}
		if earliest.IsZero() || game.Tipoff.Before(earliest) {
			earliest = game.Tipoff
		}
	}
	return !earliest.IsZero() && !now.Before(earliest)
}
