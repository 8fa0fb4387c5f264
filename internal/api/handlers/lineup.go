package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/config"
	"github.com/stitts-dev/roster-engine/internal/optimizer"
	"github.com/stitts-dev/roster-engine/internal/types"
	"github.com/stitts-dev/roster-engine/pkg/logger"
)

// LineupHandler serves the lineup-optimization endpoints.
type LineupHandler struct {
	cfg    *config.Config
	games  optimizer.GamesSource
	codes  map[string]string
	logger *logrus.Logger
}

// NewLineupHandler creates a lineup handler over one game-calendar source.
func NewLineupHandler(cfg *config.Config, games optimizer.GamesSource, codes map[string]string, log *logrus.Logger) *LineupHandler {
	return &LineupHandler{cfg: cfg, games: games, codes: codes, logger: log}
}

// DayRequest asks for one day's optimal lineup.
type DayRequest struct {
	Date   string             `json:"date" binding:"required"`
	Roster []types.RosterSlot `json:"roster" binding:"required"`
	Slots  []types.LineupSlot `json:"slots"`
}

// WeekRequest asks for a full matchup-week breakdown.
type WeekRequest struct {
	Dates  []string           `json:"dates" binding:"required"`
	Roster []types.RosterSlot `json:"roster" binding:"required"`
	Slots  []types.LineupSlot `json:"slots"`
}

// CapRequest asks for the week breakdown plus the start-cap allocation.
type CapRequest struct {
	Dates       []string           `json:"dates" binding:"required"`
	Roster      []types.RosterSlot `json:"roster" binding:"required"`
	Slots       []types.LineupSlot `json:"slots"`
	StartsSoFar *int               `json:"starts_so_far"`
}

// CapResponse bundles the week stats with the allocation over its remaining
// days.
type CapResponse struct {
	Week       types.WeekStats     `json:"week"`
	Allocation types.CapAllocation `json:"allocation"`
}

func (h *LineupHandler) slotsOrDefault(slots []types.LineupSlot) []types.LineupSlot {
	if len(slots) > 0 {
		return slots
	}
	return optimizer.DefaultLineupSlots()
}

// OptimizeDay handles POST /lineup/day.
func (h *LineupHandler) OptimizeDay(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	log := logger.WithRequestContext(uuid.New().String(), "lineup_day")

	day, err := h.games.GamesFor(req.Date)
	if err != nil {
		log.WithError(err).Error("Failed to load game calendar")
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error: "Game calendar unavailable", Code: "CALENDAR_UNAVAILABLE",
		})
		return
	}

	eval := optimizer.NewDailyEvaluator(h.slotsOrDefault(req.Slots), h.codes)
	breakdown := eval.Evaluate(req.Roster, day)

	log.WithFields(logrus.Fields{
		"date":        req.Date,
		"starts_used": breakdown.StartsUsed,
	}).Info("Daily lineup optimized")

	c.JSON(http.StatusOK, breakdown)
}

// OptimizeWeek handles POST /lineup/week.
func (h *LineupHandler) OptimizeWeek(c *gin.Context) {
	var req WeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	stats, ok := h.aggregateWeek(c, req.Dates, req.Roster, req.Slots)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AllocateCap handles POST /lineup/cap.
func (h *LineupHandler) AllocateCap(c *gin.Context) {
	var req CapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	stats, ok := h.aggregateWeek(c, req.Dates, req.Roster, req.Slots)
	if !ok {
		return
	}

	allocation := optimizer.NewCapAllocator(h.cfg.WeeklyStartCap).Allocate(stats.Remaining, req.StartsSoFar)
	c.JSON(http.StatusOK, CapResponse{Week: stats, Allocation: allocation})
}

func (h *LineupHandler) aggregateWeek(c *gin.Context, dates []string, roster []types.RosterSlot, slots []types.LineupSlot) (types.WeekStats, bool) {
	log := logger.WithRequestContext(uuid.New().String(), "lineup_week")

	eval := optimizer.NewDailyEvaluator(h.slotsOrDefault(slots), h.codes)
	agg := optimizer.NewWeekAggregator(eval, h.games)

	stats, err := agg.Aggregate(roster, dates, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to aggregate week")
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error: "Game calendar unavailable", Code: "CALENDAR_UNAVAILABLE",
		})
		return types.WeekStats{}, false
	}

	log.WithFields(logrus.Fields{
		"dates":            len(dates),
		"remaining_starts": stats.RemainingTotals.Starts,
	}).Info("Week aggregated")

	return stats, true
}
