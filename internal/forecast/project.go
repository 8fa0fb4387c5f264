package forecast

import "github.com/stitts-dev/roster-engine/internal/types"

// Project linearly scales a per-unit baseline stat vector by units (for
// example a roster's per-game averages by remaining starts). Percentage
// categories pass through unchanged; a rate does not grow with volume.
func Project(base types.CategoryStats, units float64) types.CategoryStats {
	projected := types.CategoryStats{}
	for _, category := range types.Categories() {
		value := base.Value(category)
		if !category.IsPercentage() {
			value *= units
		}
		projected.SetValue(category, value)
	}
	return projected
}
