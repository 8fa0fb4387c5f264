package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// Parser turns pasted season-schedule text into a LeagueSchedule, resolving
// team names against the known league teams.
type Parser struct {
	knownTeams []string
	aliases    map[string]string
	logger     *logrus.Entry
}

// NewParser creates a parser. aliases maps alternate spellings to canonical
// team names and is applied before fuzzy matching.
func NewParser(knownTeams []string, aliases map[string]string) *Parser {
	normalized := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		normalized[strings.ToLower(strings.TrimSpace(alias))] = canonical
	}
	return &Parser{
		knownTeams: knownTeams,
		aliases:    normalized,
		logger:     logrus.WithField("component", "schedule_parser"),
	}
}

// ParseResult is a parsed schedule plus the lines that could not be
// resolved. Unresolvable lines are gaps, never errors; the caller chooses
// whether to surface them.
type ParseResult struct {
	Schedule types.LeagueSchedule `json:"schedule"`
	Gaps     []types.Unavailable  `json:"gaps,omitempty"`
}

var (
	seasonLine  = regexp.MustCompile(`(?i)^season[:\s]+(.+)$`)
	matchupLine = regexp.MustCompile(`(?i)^week\s+(\d+)\s*[|(]\s*([^|)]+?)\s*[|)]\s*[:\s]*(.+?)\s+(?:vs\.?|@|v)\s+(.+)$`)
)

// Parse reads the pasted text line by line. Expected shape per matchup:
//
//	Week 12 | Jan 6 - Jan 12 | Sharks vs Wolves
//
// with an optional leading "Season: 2025-26" header.
func (p *Parser) Parse(text string) ParseResult {
	result := ParseResult{Schedule: types.LeagueSchedule{Matchups: []types.ScheduledMatchup{}}}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := seasonLine.FindStringSubmatch(line); m != nil {
			result.Schedule.Season = strings.TrimSpace(m[1])
			continue
		}

		m := matchupLine.FindStringSubmatch(line)
		if m == nil {
			result.Gaps = append(result.Gaps, *types.NewUnavailable(types.CodeScheduleMappingFailed,
				fmt.Sprintf("unrecognized schedule line: %q", line)))
			continue
		}

		week, _ := strconv.Atoi(m[1])
		home, okHome := p.resolveTeam(m[3])
		away, okAway := p.resolveTeam(m[4])
		if !okHome || !okAway {
			unresolved := m[3]
			if okHome {
				unresolved = m[4]
			}
			result.Gaps = append(result.Gaps, *types.NewUnavailable(types.CodeScheduleMappingFailed,
				fmt.Sprintf("week %d: cannot resolve team %q", week, strings.TrimSpace(unresolved))))
			continue
		}

		result.Schedule.Matchups = append(result.Schedule.Matchups, types.ScheduledMatchup{
			Week:      week,
			DateRange: strings.TrimSpace(m[2]),
			Home:      home,
			Away:      away,
		})
	}

	p.logger.WithFields(logrus.Fields{
		"matchups": len(result.Schedule.Matchups),
		"gaps":     len(result.Gaps),
	}).Debug("League schedule parsed")

	return result
}

// resolveTeam maps a pasted name onto a known team: exact match first, then
// the manual alias table, then the closest fuzzy match. Priority order
// matters; an alias must beat a fuzzy hit.
func (p *Parser) resolveTeam(name string) (string, bool) {
	name = strings.TrimSpace(name)

	for _, team := range p.knownTeams {
		if strings.EqualFold(team, name) {
			return team, true
		}
	}

	if canonical, ok := p.aliases[strings.ToLower(name)]; ok {
		return canonical, true
	}

	matches := fuzzy.RankFindNormalizedFold(name, p.knownTeams)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best.Target, true
}
