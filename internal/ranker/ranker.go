package ranker

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// Entity is anything rankable: a player or a whole team's aggregate line.
type Entity struct {
	ID    string              `json:"id"`
	Stats types.CategoryStats `json:"stats"`
}

// Ranker converts per-category stat vectors into rank-based composite scores.
type Ranker struct {
	weights map[types.Category]float64
	logger  *logrus.Entry
}

// NewRanker creates a ranker. A nil weight table falls back to the default
// weights.
func NewRanker(weights map[types.Category]float64) *Ranker {
	if weights == nil {
		weights = DefaultCategoryWeights()
	}
	return &Ranker{
		weights: weights,
		logger:  logrus.WithField("component", "category_ranker"),
	}
}

// Rank scores every entity across the nine categories. Per category the
// entities are stably sorted (ascending for turnovers, descending otherwise),
// ranked 1..N, and invertedRank = N+1-rank feeds both composites. Tied raw
// values share the rank of the first tied entity, so a tied pair at the top
// ranks [1, 1, 3].
//
// Results are returned in the input order.
func (r *Ranker) Rank(entities []Entity) []types.RankResult {
	n := len(entities)
	results := make([]types.RankResult, n)
	for i, e := range entities {
		results[i] = types.RankResult{EntityID: e.ID}
	}
	if n == 0 {
		return results
	}

	order := make([]int, n)
	for _, category := range types.Categories() {
		for i := range order {
			order[i] = i
		}
		lowerWins := category.LowerIsBetter()
		sort.SliceStable(order, func(a, b int) bool {
			va := entities[order[a]].Stats.Value(category)
			vb := entities[order[b]].Stats.Value(category)
			if lowerWins {
				return va < vb
			}
			return va > vb
		})

		prevRank := 0
		prevValue := 0.0
		for pos, idx := range order {
			rank := pos + 1
			value := entities[idx].Stats.Value(category)
			if pos > 0 && value == prevValue {
				rank = prevRank
			}
			prevRank = rank
			prevValue = value

			inverted := n + 1 - rank
			results[idx].Composite += inverted
			results[idx].WeightedComposite += float64(inverted) * r.weights[category]
		}
	}

	r.logger.WithFields(logrus.Fields{
		"entities": n,
	}).Debug("Category ranking computed")

	return results
}
