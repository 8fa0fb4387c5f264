package types

// Category identifies one of the nine scoring categories.
type Category string

const (
	CategoryFieldGoalPct  Category = "fg_pct"
	CategoryFreeThrowPct  Category = "ft_pct"
	CategoryThreePointers Category = "threes"
	CategoryRebounds      Category = "rebounds"
	CategoryAssists       Category = "assists"
	CategorySteals        Category = "steals"
	CategoryBlocks        Category = "blocks"
	CategoryTurnovers     Category = "turnovers"
	CategoryPoints        Category = "points"
)

// Categories returns the nine scoring categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryFieldGoalPct,
		CategoryFreeThrowPct,
		CategoryThreePointers,
		CategoryRebounds,
		CategoryAssists,
		CategorySteals,
		CategoryBlocks,
		CategoryTurnovers,
		CategoryPoints,
	}
}

// IsPercentage reports whether the category is a shooting percentage.
// Percentage categories are never scaled during projection.
func (c Category) IsPercentage() bool {
	return c == CategoryFieldGoalPct || c == CategoryFreeThrowPct
}

// LowerIsBetter reports whether a smaller value wins the category.
func (c Category) LowerIsBetter() bool {
	return c == CategoryTurnovers
}

// CategoryStats is the per-game (or projected-total) stat vector over the
// nine categories.
type CategoryStats struct {
	FieldGoalPct  float64 `json:"fg_pct"`
	FreeThrowPct  float64 `json:"ft_pct"`
	ThreePointers float64 `json:"threes"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
	Steals        float64 `json:"steals"`
	Blocks        float64 `json:"blocks"`
	Turnovers     float64 `json:"turnovers"`
	Points        float64 `json:"points"`
}

// Value returns the stat for a single category.
func (s CategoryStats) Value(c Category) float64 {
	switch c {
	case CategoryFieldGoalPct:
		return s.FieldGoalPct
	case CategoryFreeThrowPct:
		return s.FreeThrowPct
	case CategoryThreePointers:
		return s.ThreePointers
	case CategoryRebounds:
		return s.Rebounds
	case CategoryAssists:
		return s.Assists
	case CategorySteals:
		return s.Steals
	case CategoryBlocks:
		return s.Blocks
	case CategoryTurnovers:
		return s.Turnovers
	case CategoryPoints:
		return s.Points
	}
	return 0
}

// SetValue writes the stat for a single category.
func (s *CategoryStats) SetValue(c Category, v float64) {
	switch c {
	case CategoryFieldGoalPct:
		s.FieldGoalPct = v
	case CategoryFreeThrowPct:
		s.FreeThrowPct = v
	case CategoryThreePointers:
		s.ThreePointers = v
	case CategoryRebounds:
		s.Rebounds = v
	case CategoryAssists:
		s.Assists = v
	case CategorySteals:
		s.Steals = v
	case CategoryBlocks:
		s.Blocks = v
	case CategoryTurnovers:
		s.Turnovers = v
	case CategoryPoints:
		s.Points = v
	}
}

// Percentage computes makes/attempts, defined as 0 when attempts is 0.
func Percentage(makes, attempts float64) float64 {
	if attempts == 0 {
		return 0
	}
	return makes / attempts
}
