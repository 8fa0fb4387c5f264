package forecast

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// Default indifference margins. A category closer than its threshold is a
// toss-up rather than a projected win or loss.
const (
	DefaultPercentThreshold  = 0.015
	DefaultCountingThreshold = 5.0
)

// Engine classifies head-to-head category comparisons and aggregates them
// into a match outcome.
type Engine struct {
	pctThreshold   float64
	countThreshold float64
	logger         *logrus.Entry
}

// NewEngine creates an engine with the default thresholds.
func NewEngine() *Engine {
	return NewEngineWithThresholds(DefaultPercentThreshold, DefaultCountingThreshold)
}

// NewEngineWithThresholds creates an engine with custom margins.
func NewEngineWithThresholds(pctThreshold, countThreshold float64) *Engine {
	return &Engine{
		pctThreshold:   pctThreshold,
		countThreshold: countThreshold,
		logger:         logrus.WithField("component", "forecast_engine"),
	}
}

// Compare classifies all nine categories for the reference team against an
// opponent. Every category lands in exactly one of win, loss, or toss-up;
// the match is won when category wins outnumber losses.
func (e *Engine) Compare(mine, opponent types.CategoryStats) types.MatchOutcome {
	outcome := types.MatchOutcome{
		Categories: make([]types.CategoryResult, 0, 9),
	}

	narrowest := types.Category("")
	narrowestMargin := math.Inf(1)

	for _, category := range types.Categories() {
		my := mine.Value(category)
		opp := opponent.Value(category)
		diff := my - opp

		threshold := e.countThreshold
		if category.IsPercentage() {
			threshold = e.pctThreshold
		}

		result := types.CategoryResult{Category: category, Mine: my, Opponent: opp}
		switch {
		case math.Abs(diff) <= threshold:
			result.Winner = types.WinnerTie
			outcome.TossUps++
			outcome.SwingCategories = append(outcome.SwingCategories, category)
		case (diff > 0) != category.LowerIsBetter():
			result.Winner = types.WinnerMine
			outcome.Wins++
		default:
			result.Winner = types.WinnerOpponent
			outcome.Losses++
		}

		if result.Winner != types.WinnerTie {
			if margin := math.Abs(diff) / threshold; margin < narrowestMargin {
				narrowestMargin = margin
				narrowest = category
			}
		}

		outcome.Categories = append(outcome.Categories, result)
	}

	// With no toss-ups, the narrowest decided category is the one most
	// likely to flip.
	if len(outcome.SwingCategories) == 0 && narrowest != "" {
		outcome.SwingCategories = []types.Category{narrowest}
	}

	outcome.Won = outcome.Wins > outcome.Losses

	e.logger.WithFields(logrus.Fields{
		"wins":    outcome.Wins,
		"losses":  outcome.Losses,
		"tossups": outcome.TossUps,
	}).Debug("Matchup compared")

	return outcome
}

// CompareProjected projects both sides by the settings' scale units before
// comparing, the common path for "rest of week" and "rest of season" views.
func (e *Engine) CompareProjected(mine, opponent types.CategoryStats, settings types.ForecastSettings) types.MatchOutcome {
	units := settings.SimulationScaleUnits
	if units <= 0 {
		units = 1
	}
	return e.Compare(Project(mine, units), Project(opponent, units))
}
