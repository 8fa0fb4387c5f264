package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/forecast"
	"github.com/stitts-dev/roster-engine/internal/ranker"
	"github.com/stitts-dev/roster-engine/internal/schedule"
	"github.com/stitts-dev/roster-engine/internal/types"
	"github.com/stitts-dev/roster-engine/pkg/logger"
)

// ForecastHandler serves ranking, comparison, standings, bracket, and
// schedule-parsing endpoints.
type ForecastHandler struct {
	engine *forecast.Engine
	logger *logrus.Logger
}

// NewForecastHandler creates a handler over one forecast engine.
func NewForecastHandler(engine *forecast.Engine, log *logrus.Logger) *ForecastHandler {
	return &ForecastHandler{engine: engine, logger: log}
}

// RankingsRequest ranks a set of entities across the nine categories.
type RankingsRequest struct {
	Entities []ranker.Entity            `json:"entities" binding:"required"`
	Weights  map[types.Category]float64 `json:"weights"`
}

// CompareRequest asks for a head-to-head category classification.
type CompareRequest struct {
	Mine     types.CategoryStats     `json:"mine"`
	Opponent types.CategoryStats     `json:"opponent"`
	Settings *types.ForecastSettings `json:"settings"`
}

// StandingsRequest projects final standings over a season schedule.
type StandingsRequest struct {
	Schedule types.LeagueSchedule    `json:"schedule"`
	Teams    []forecast.TeamSeason   `json:"teams" binding:"required"`
	Settings *types.ForecastSettings `json:"settings"`
}

// BracketRequest simulates a playoff bracket from seeded teams.
type BracketRequest struct {
	Seeds    []forecast.SeededTeam   `json:"seeds" binding:"required"`
	Settings *types.ForecastSettings `json:"settings"`
}

// ParseScheduleRequest parses pasted season-schedule text.
type ParseScheduleRequest struct {
	Text       string            `json:"text" binding:"required"`
	KnownTeams []string          `json:"known_teams" binding:"required"`
	Aliases    map[string]string `json:"aliases"`
}

func settingsOrDefault(s *types.ForecastSettings) types.ForecastSettings {
	if s == nil {
		return types.DefaultForecastSettings()
	}
	return *s
}

// Rankings handles POST /rankings.
func (h *ForecastHandler) Rankings(c *gin.Context) {
	var req RankingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	results := ranker.NewRanker(req.Weights).Rank(req.Entities)

	logger.WithRequestContext(uuid.New().String(), "rankings").
		WithField("entities", len(req.Entities)).Info("Rankings computed")

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Compare handles POST /forecast/compare.
func (h *ForecastHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	outcome := h.engine.CompareProjected(req.Mine, req.Opponent, settingsOrDefault(req.Settings))

	c.JSON(http.StatusOK, outcome)
}

// Standings handles POST /forecast/standings.
func (h *ForecastHandler) Standings(c *gin.Context) {
	var req StandingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	teams := make(map[string]forecast.TeamSeason, len(req.Teams))
	for _, team := range req.Teams {
		teams[team.Name] = team
	}

	result := forecast.NewStandingsProjector(h.engine).Project(req.Schedule, teams, settingsOrDefault(req.Settings))

	logger.WithRequestContext(uuid.New().String(), "standings").WithFields(logrus.Fields{
		"teams": len(teams),
		"gaps":  len(result.Gaps),
	}).Info("Standings projected")

	c.JSON(http.StatusOK, result)
}

// Bracket handles POST /forecast/bracket.
func (h *ForecastHandler) Bracket(c *gin.Context) {
	var req BracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	result, err := forecast.NewBracketSimulator(h.engine).Simulate(req.Seeds, settingsOrDefault(req.Settings))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: err.Error(), Code: "INVALID_BRACKET_SIZE",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseSchedule handles POST /schedule/parse.
func (h *ForecastHandler) ParseSchedule(c *gin.Context) {
	var req ParseScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request format", Code: "INVALID_REQUEST",
			Details: map[string]string{"validation_error": err.Error()},
		})
		return
	}

	result := schedule.NewParser(req.KnownTeams, req.Aliases).Parse(req.Text)

	c.JSON(http.StatusOK, result)
}
