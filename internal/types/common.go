package types

import "time"

// DateLayout is the wire format for calendar dates throughout the engine.
const DateLayout = "2006-01-02"

// Player represents a rostered player for one computation cycle. Instances
// are treated as immutable once built by the ingestion layer.
type Player struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Team           string        `json:"team"`
	Positions      []string      `json:"positions"`
	InjuryStatus   string        `json:"injury_status,omitempty"`
	PerGame        CategoryStats `json:"per_game"`
	MinutesPerGame float64       `json:"minutes_per_game"`
}

// SlotKind classifies a roster entry.
type SlotKind string

const (
	SlotKindStarter SlotKind = "starter"
	SlotKindBench   SlotKind = "bench"
	SlotKindReserve SlotKind = "reserve"
)

// RosterSlot is one roster entry as produced by the external roster parser.
type RosterSlot struct {
	Label  string   `json:"label"`
	Kind   SlotKind `json:"kind"`
	Player Player   `json:"player"`
}

// LineupSlot is one position in the daily slot universe.
type LineupSlot struct {
	Label    string   `json:"label"`
	Eligible []string `json:"eligible"`
}

// GameStatus is the reported state of a scheduled game.
type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusLive      GameStatus = "live"
	GameStatusFinal     GameStatus = "final"
)

// ScheduledGame is one team pairing on a calendar day.
type ScheduledGame struct {
	Home   string     `json:"home"`
	Away   string     `json:"away"`
	Status GameStatus `json:"status"`
	Tipoff time.Time  `json:"tipoff"`
}

// DayGameSet is the game calendar for a single date.
type DayGameSet struct {
	Date  string          `json:"date"`
	Games []ScheduledGame `json:"games"`
}

// ExclusionReason is a machine-readable code for a roster entry excluded
// from lineup optimization.
type ExclusionReason string

const (
	ReasonReserveSlot        ExclusionReason = "reserve_slot"
	ReasonNoPositions        ExclusionReason = "no_positions"
	ReasonMissingTeamMapping ExclusionReason = "missing_team_mapping"
)

// ExcludedPlayer records one exclusion with its reason.
type ExcludedPlayer struct {
	PlayerID   string          `json:"player_id"`
	PlayerName string          `json:"player_name"`
	Reason     ExclusionReason `json:"reason"`
}

// SlotAssignment binds one player to one lineup slot.
type SlotAssignment struct {
	SlotLabel  string `json:"slot"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// DayStartsBreakdown is the optimization result for one (roster, date) pair.
type DayStartsBreakdown struct {
	Date             string               `json:"date"`
	Candidates       int                  `json:"candidates"`
	Excluded         []ExcludedPlayer     `json:"excluded,omitempty"`
	Assignments      []SlotAssignment     `json:"assignments"`
	StartsUsed       int                  `json:"starts_used"`
	ScheduleOverflow int                  `json:"schedule_overflow"`
	UnusedSlots      int                  `json:"unused_slots"`
}

// PartitionTotals sums breakdown counters over one date partition.
type PartitionTotals struct {
	Starts   int `json:"starts"`
	Overflow int `json:"overflow"`
	Unused   int `json:"unused"`
}

// WeekStats aggregates daily breakdowns over a matchup week, split into the
// elapsed and remaining partitions.
type WeekStats struct {
	Elapsed              []DayStartsBreakdown `json:"elapsed"`
	Remaining            []DayStartsBreakdown `json:"remaining"`
	ElapsedTotals        PartitionTotals      `json:"elapsed_totals"`
	RemainingTotals      PartitionTotals      `json:"remaining_totals"`
	RosterGamesRemaining int                  `json:"roster_games_remaining"`
}

// CapDay is the allocator output for one remaining day.
type CapDay struct {
	Date          string `json:"date"`
	Used          int    `json:"used"`
	OverflowByCap int    `json:"overflow_by_cap"`
	CapBefore     int    `json:"cap_before"`
	CapAfter      int    `json:"cap_after"`
}

// CapAllocation is the weekly start-budget distribution over remaining days.
type CapAllocation struct {
	CapKnown            bool         `json:"cap_known"`
	Reason              *Unavailable `json:"reason,omitempty"`
	Days                []CapDay     `json:"days"`
	StartsSoFar         int          `json:"starts_so_far"`
	RemainingCap        int          `json:"remaining_cap"`
	ProjectedAdditional int          `json:"projected_additional"`
	ProjectedFinal      int          `json:"projected_final"`
	TotalOverflow       int          `json:"total_overflow"`
}

// RankResult is the composite ranking for one entity in a ranked set.
type RankResult struct {
	EntityID          string  `json:"entity_id"`
	Composite         int     `json:"composite"`
	WeightedComposite float64 `json:"weighted_composite"`
}

// ForecastSettings is passed through every forecast call and never mutated.
type ForecastSettings struct {
	UseCompositeIndex       bool    `json:"use_composite_index"`
	SimulationScaleUnits    float64 `json:"simulation_scale_units"`
	IncludeCompletedWeeks   bool    `json:"include_completed_weeks"`
	StartFromCurrentRecords bool    `json:"start_from_current_records"`
	CompletedWeeks          []int   `json:"completed_weeks"`
	CurrentWeekCutoff       int     `json:"current_week_cutoff"`
}

// DefaultForecastSettings returns the settings used when the caller supplies
// none.
func DefaultForecastSettings() ForecastSettings {
	return ForecastSettings{
		UseCompositeIndex:       false,
		SimulationScaleUnits:    1,
		IncludeCompletedWeeks:   false,
		StartFromCurrentRecords: true,
		CurrentWeekCutoff:       1,
	}
}

// CategoryWinner identifies which side of a comparison took a category.
type CategoryWinner string

const (
	WinnerMine     CategoryWinner = "mine"
	WinnerOpponent CategoryWinner = "opponent"
	WinnerTie      CategoryWinner = "tie"
)

// CategoryResult is the classification of one category in a head-to-head
// comparison.
type CategoryResult struct {
	Category Category       `json:"category"`
	Mine     float64        `json:"mine"`
	Opponent float64        `json:"opponent"`
	Winner   CategoryWinner `json:"winner"`
}

// MatchOutcome aggregates the nine category classifications for one matchup.
type MatchOutcome struct {
	Categories      []CategoryResult `json:"categories"`
	Wins            int              `json:"wins"`
	Losses          int              `json:"losses"`
	TossUps         int              `json:"toss_ups"`
	Won             bool             `json:"won"`
	SwingCategories []Category       `json:"swing_categories"`
}

// Record is a win/loss/tie tally.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Add returns the element-wise sum of two records.
func (r Record) Add(o Record) Record {
	return Record{Wins: r.Wins + o.Wins, Losses: r.Losses + o.Losses, Ties: r.Ties + o.Ties}
}

// TeamStanding is one row of the projected final standings.
type TeamStanding struct {
	Team           string  `json:"team"`
	Current        Record  `json:"current"`
	Projected      Record  `json:"projected"`
	Total          Record  `json:"total"`
	CategoryWinPct float64 `json:"category_win_pct"`
	Rank           int     `json:"rank"`
}

// ScheduledMatchup is one head-to-head pairing in the season schedule.
type ScheduledMatchup struct {
	Week      int    `json:"week"`
	DateRange string `json:"date_range"`
	Home      string `json:"home"`
	Away      string `json:"away"`
}

// LeagueSchedule is the parsed season schedule.
type LeagueSchedule struct {
	Season   string             `json:"season"`
	Matchups []ScheduledMatchup `json:"matchups"`
}

// BracketMatchup is one resolved pairing in a playoff bracket.
type BracketMatchup struct {
	Round       string `json:"round"`
	SeedA       int    `json:"seed_a"`
	SeedB       int    `json:"seed_b"`
	TeamA       string `json:"team_a"`
	TeamB       string `json:"team_b"`
	Winner      string `json:"winner"`
	WinningSeed int    `json:"winning_seed"`
	Outcome     string `json:"outcome"`
}

// BracketRound groups the matchups of one elimination round.
type BracketRound struct {
	Name     string           `json:"name"`
	Matchups []BracketMatchup `json:"matchups"`
}

// BracketResult is the full round-by-round bracket plus the champion.
type BracketResult struct {
	Rounds       []BracketRound `json:"rounds"`
	Champion     string         `json:"champion"`
	ChampionSeed int            `json:"champion_seed"`
}
