package ranker

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// DefaultCategoryWeights returns the per-category weight table. Every
// category starts at parity; turnovers carry full weight too since the
// inversion is handled by the rank direction, not the weight sign.
func DefaultCategoryWeights() map[types.Category]float64 {
	weights := make(map[types.Category]float64, 9)
	for _, category := range types.Categories() {
		weights[category] = 1
	}
	return weights
}

// WeightState is the caller-owned smoothing state for adaptive category
// weights. The engine never retains it between calls; pass the previous
// value in and store the returned one.
type WeightState struct {
	Weights map[types.Category]float64 `json:"weights"`
}

// SmoothWeights nudges category weights toward the categories that have been
// deciding matchups. observedMargins carries the normalized margin (|mine -
// opp| / threshold) seen per category; tight categories should gain weight.
//
// Margins are standardized across the nine categories and blended into the
// previous weights with exponential smoothing factor alpha in (0, 1]. The
// returned weights are rescaled so their sum stays at 9, keeping weighted
// composites comparable across calls.
func SmoothWeights(prev WeightState, observedMargins map[types.Category]float64, alpha float64) WeightState {
	if prev.Weights == nil {
		prev.Weights = DefaultCategoryWeights()
	}
	if len(observedMargins) == 0 || alpha <= 0 {
		return WeightState{Weights: cloneWeights(prev.Weights)}
	}
	if alpha > 1 {
		alpha = 1
	}

	categories := types.Categories()
	margins := make([]float64, len(categories))
	for i, category := range categories {
		margins[i] = observedMargins[category]
	}

	mean, std := stat.MeanStdDev(margins, nil)
	if std == 0 {
		return WeightState{Weights: cloneWeights(prev.Weights)}
	}

	next := make(map[types.Category]float64, len(categories))
	raw := make([]float64, len(categories))
	for i, category := range categories {
		// Tighter than average margin means the category swings matchups.
		z := (margins[i] - mean) / std
		target := 1 - z/4
		if target < 0 {
			target = 0
		}
		raw[i] = (1-alpha)*prev.Weights[category] + alpha*target
	}

	total := floats.Sum(raw)
	if total == 0 {
		return WeightState{Weights: DefaultCategoryWeights()}
	}
	scale := float64(len(categories)) / total
	for i, category := range categories {
		next[category] = raw[i] * scale
	}

	return WeightState{Weights: next}
}

func cloneWeights(weights map[types.Category]float64) map[types.Category]float64 {
	out := make(map[types.Category]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}
