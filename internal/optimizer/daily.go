package optimizer

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// DailyEvaluator filters a roster down to the players who can start on a
// given day and runs the slot matcher on them.
type DailyEvaluator struct {
	slots     []types.LineupSlot
	teamCodes map[string]string
	logger    *logrus.Entry
}

// NewDailyEvaluator creates an evaluator for one slot universe. teamCodes
// maps roster team codes to game-calendar codes; an identity mapping is fine
// when both sources use the same codes.
func NewDailyEvaluator(slots []types.LineupSlot, teamCodes map[string]string) *DailyEvaluator {
	return &DailyEvaluator{
		slots:     slots,
		teamCodes: teamCodes,
		logger:    logrus.WithField("component", "daily_evaluator"),
	}
}

// Evaluate produces the start breakdown for one (roster, date) pair.
// Exclusions are recorded with reason codes rather than silently dropped.
func (e *DailyEvaluator) Evaluate(roster []types.RosterSlot, day types.DayGameSet) types.DayStartsBreakdown {
	playing := make(map[string]bool, len(day.Games)*2)
	for _, game := range day.Games {
		playing[game.Home] = true
		playing[game.Away] = true
	}

	var excluded []types.ExcludedPlayer
	var candidates []types.Player
	for _, entry := range roster {
		player := entry.Player
		switch {
		case entry.Kind == types.SlotKindReserve:
			excluded = append(excluded, types.ExcludedPlayer{
				PlayerID: player.ID, PlayerName: player.Name, Reason: types.ReasonReserveSlot,
			})
			continue
		case len(player.Positions) == 0:
			excluded = append(excluded, types.ExcludedPlayer{
				PlayerID: player.ID, PlayerName: player.Name, Reason: types.ReasonNoPositions,
			})
			continue
		}

		code, ok := e.teamCodes[player.Team]
		if !ok {
			excluded = append(excluded, types.ExcludedPlayer{
				PlayerID: player.ID, PlayerName: player.Name, Reason: types.ReasonMissingTeamMapping,
			})
			continue
		}

		if playing[code] {
			candidates = append(candidates, player)
		}
	}

	result := MatchSlots(candidates, e.slots)

	overflow := len(candidates) - result.Matched
	if overflow < 0 {
		overflow = 0
	}
	unused := len(e.slots) - result.Matched
	if unused < 0 {
		unused = 0
	}

	e.logger.WithFields(logrus.Fields{
		"date":       day.Date,
		"candidates": len(candidates),
		"excluded":   len(excluded),
		"matched":    result.Matched,
		"overflow":   overflow,
	}).Debug("Daily schedule evaluated")

	return types.DayStartsBreakdown{
		Date:             day.Date,
		Candidates:       len(candidates),
		Excluded:         excluded,
		Assignments:      result.Assignments,
		StartsUsed:       result.Matched,
		ScheduleOverflow: overflow,
		UnusedSlots:      unused,
	}
}
