package optimizer

import (
	"fmt"
	"sort"

	"github.com/stitts-dev/roster-engine/internal/types"
)

// MatchResult is the outcome of one maximum-matching run.
type MatchResult struct {
	Matched     int
	Assignments []types.SlotAssignment
}

// MatchSlots finds a maximum bipartite matching between candidate players and
// lineup slots using depth-first augmenting paths.
//
// Candidates are re-sorted by id then name before matching and slots are
// iterated in their configured order, so identical inputs always produce the
// identical assignment list.
func MatchSlots(candidates []types.Player, slots []types.LineupSlot) MatchResult {
	if len(candidates) == 0 || len(slots) == 0 {
		return MatchResult{Assignments: []types.SlotAssignment{}}
	}

	ordered := make([]types.Player, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ID != ordered[j].ID {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Name < ordered[j].Name
	})

	// adjacency[i] holds slot indices player i is eligible for, in slot order
	adjacency := make([][]int, len(ordered))
	for i, player := range ordered {
		for s, slot := range slots {
			if positionsOverlap(player.Positions, slot.Eligible) {
				adjacency[i] = append(adjacency[i], s)
			}
		}
	}

	// slotOwner[s] is the index of the player currently matched to slot s
	slotOwner := make([]int, len(slots))
	for s := range slotOwner {
		slotOwner[s] = -1
	}

	var augment func(player int, visited []bool) bool
	augment = func(player int, visited []bool) bool {
		for _, s := range adjacency[player] {
			if visited[s] {
				continue
			}
			visited[s] = true
			if slotOwner[s] == -1 || augment(slotOwner[s], visited) {
				slotOwner[s] = player
				return true
			}
		}
		return false
	}

	matched := 0
	for i := range ordered {
		visited := make([]bool, len(slots))
		if augment(i, visited) {
			matched++
		}
	}

	assignments := make([]types.SlotAssignment, 0, matched)
	seen := make(map[string]bool, matched)
	for s, slot := range slots {
		owner := slotOwner[s]
		if owner == -1 {
			continue
		}
		player := ordered[owner]
		if seen[player.ID] {
			panic(fmt.Sprintf("slot matcher produced duplicate assignment for player %s", player.ID))
		}
		seen[player.ID] = true
		assignments = append(assignments, types.SlotAssignment{
			SlotLabel:  slot.Label,
			PlayerID:   player.ID,
			PlayerName: player.Name,
		})
	}

	if len(assignments) != matched {
		panic(fmt.Sprintf("slot matcher bookkeeping mismatch: %d assignments, %d matched", len(assignments), matched))
	}

	return MatchResult{Matched: matched, Assignments: assignments}
}

func positionsOverlap(positions, eligible []string) bool {
	for _, p := range positions {
		for _, e := range eligible {
			if p == e {
				return true
			}
		}
	}
	return false
}
