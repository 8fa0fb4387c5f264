package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_CanonicalOrder(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 9)
	assert.Equal(t, CategoryFieldGoalPct, cats[0])
	assert.Equal(t, CategoryPoints, cats[8])
}

func TestCategory_Flags(t *testing.T) {
	assert.True(t, CategoryFieldGoalPct.IsPercentage())
	assert.True(t, CategoryFreeThrowPct.IsPercentage())
	assert.False(t, CategoryPoints.IsPercentage())

	assert.True(t, CategoryTurnovers.LowerIsBetter())
	assert.False(t, CategoryRebounds.LowerIsBetter())
}

func TestCategoryStats_ValueRoundTrip(t *testing.T) {
	var s CategoryStats
	for i, c := range Categories() {
		s.SetValue(c, float64(i+1))
	}
	for i, c := range Categories() {
		assert.Equal(t, float64(i+1), s.Value(c))
	}
}

func TestPercentage_ZeroAttempts(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.InDelta(t, 0.5, Percentage(9, 18), 1e-9)
}
