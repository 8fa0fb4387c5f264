package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-engine/internal/types"
)

func capDays(wanted ...int) []types.DayStartsBreakdown {
	days := make([]types.DayStartsBreakdown, len(wanted))
	for i, w := range wanted {
		days[i] = types.DayStartsBreakdown{Date: "day", StartsUsed: w}
	}
	return days
}

func TestCapAllocator_ClampsInDateOrder(t *testing.T) {
	startsSoFar := 30
	alloc := NewCapAllocator(32).Allocate(capDays(3, 3), &startsSoFar)

	require.True(t, alloc.CapKnown)
	require.Len(t, alloc.Days, 2)

	// Only 2 starts left under the cap: day one takes both, day two gets
	// nothing.
	assert.Equal(t, 2, alloc.Days[0].Used)
	assert.Equal(t, 1, alloc.Days[0].OverflowByCap)
	assert.Equal(t, 2, alloc.Days[0].CapBefore)
	assert.Equal(t, 0, alloc.Days[0].CapAfter)

	assert.Equal(t, 0, alloc.Days[1].Used)
	assert.Equal(t, 3, alloc.Days[1].OverflowByCap)

	assert.Equal(t, 2, alloc.ProjectedAdditional)
	assert.Equal(t, 32, alloc.ProjectedFinal)
	assert.Equal(t, 4, alloc.TotalOverflow)
	assert.Equal(t, 0, alloc.RemainingCap)
}

func TestCapAllocator_UnknownStartsSoFar(t *testing.T) {
	alloc := NewCapAllocator(32).Allocate(capDays(5, 4), nil)

	assert.False(t, alloc.CapKnown)
	require.NotNil(t, alloc.Reason)
	assert.Equal(t, types.CodeCapUnknown, alloc.Reason.Code)

	// Without a known consumed count the allocator mirrors each day.
	assert.Equal(t, 5, alloc.Days[0].Used)
	assert.Equal(t, 4, alloc.Days[1].Used)
	assert.Equal(t, 0, alloc.TotalOverflow)
	assert.Equal(t, 9, alloc.ProjectedAdditional)
}

func TestCapAllocator_Conservation(t *testing.T) {
	cases := []struct {
		name        string
		wanted      []int
		startsSoFar int
	}{
		{"under cap", []int{3, 2, 4}, 10},
		{"exactly at cap", []int{8, 8, 8, 8}, 0},
		{"cap already blown", []int{3, 3}, 40},
		{"empty week", nil, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			soFar := tc.startsSoFar
			alloc := NewCapAllocator(32).Allocate(capDays(tc.wanted...), &soFar)

			budget := 32 - tc.startsSoFar
			if budget < 0 {
				budget = 0
			}

			total := 0
			for i, day := range alloc.Days {
				total += day.Used
				assert.Equal(t, tc.wanted[i], day.Used+day.OverflowByCap,
					"used + overflow must equal the optimized starts")
				assert.Equal(t, day.CapBefore-day.Used, day.CapAfter)
			}
			assert.LessOrEqual(t, total, budget)
			assert.Equal(t, total, alloc.ProjectedAdditional)
		})
	}
}
