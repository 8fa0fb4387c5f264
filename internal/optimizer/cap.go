package optimizer

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// CapAllocator distributes a fixed weekly start budget across the remaining
// days of a matchup period. Earlier days always get first claim on the
// shared cap; the allocation is never reordered.
type CapAllocator struct {
	weeklyCap int
	logger    *logrus.Entry
}

// NewCapAllocator creates an allocator for one period-wide cap.
func NewCapAllocator(weeklyCap int) *CapAllocator {
	return &CapAllocator{
		weeklyCap: weeklyCap,
		logger:    logrus.WithField("component", "cap_allocator"),
	}
}

// Allocate walks the remaining days in date order, clamping each day's
// optimized starts against the budget left. A nil startsSoFar means the
// consumed count is unknown; no clamping happens and each day mirrors its
// optimized starts.
func (a *CapAllocator) Allocate(remaining []types.DayStartsBreakdown, startsSoFar *int) types.CapAllocation {
	alloc := types.CapAllocation{Days: make([]types.CapDay, 0, len(remaining))}

	if startsSoFar == nil {
		alloc.Reason = types.NewUnavailable(types.CodeCapUnknown,
			"starts consumed so far are unknown; weekly cap not applied")
		for _, day := range remaining {
			alloc.Days = append(alloc.Days, types.CapDay{
				Date: day.Date,
				Used: day.StartsUsed,
			})
			alloc.ProjectedAdditional += day.StartsUsed
		}
		alloc.ProjectedFinal = alloc.ProjectedAdditional
		return alloc
	}

	alloc.CapKnown = true
	alloc.StartsSoFar = *startsSoFar
	budget := a.weeklyCap - alloc.StartsSoFar
	if budget < 0 {
		budget = 0
	}

	for _, day := range remaining {
		used := day.StartsUsed
		if used > budget {
			used = budget
		}
		alloc.Days = append(alloc.Days, types.CapDay{
			Date:          day.Date,
			Used:          used,
			OverflowByCap: day.StartsUsed - used,
			CapBefore:     budget,
			CapAfter:      budget - used,
		})
		alloc.ProjectedAdditional += used
		alloc.TotalOverflow += day.StartsUsed - used
		budget -= used
	}

	alloc.RemainingCap = budget
	alloc.ProjectedFinal = alloc.StartsSoFar + alloc.ProjectedAdditional

	a.logger.WithFields(logrus.Fields{
		"weekly_cap":           a.weeklyCap,
		"starts_so_far":        alloc.StartsSoFar,
		"projected_additional": alloc.ProjectedAdditional,
		"total_overflow":       alloc.TotalOverflow,
	}).Debug("Weekly cap allocated")

	return alloc
}
