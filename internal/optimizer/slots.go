package optimizer

import "github.com/stitts-dev/roster-engine/internal/types"

// DefaultLineupSlots returns the standard 8-slot daily universe for a
// 9-category league. Concrete positions first, flex slots last, matching the
// order leagues fill and display them in.
func DefaultLineupSlots() []types.LineupSlot {
	return []types.LineupSlot{
		{Label: "PG", Eligible: []string{"PG"}},
		{Label: "SG", Eligible: []string{"SG"}},
		{Label: "SF", Eligible: []string{"SF"}},
		{Label: "PF", Eligible: []string{"PF"}},
		{Label: "C", Eligible: []string{"C"}},
		{Label: "G", Eligible: []string{"PG", "SG"}},
		{Label: "F", Eligible: []string{"SF", "PF"}},
		{Label: "UTIL", Eligible: []string{"PG", "SG", "SF", "PF", "C"}},
	}
}
