// Package insight renders a recommended lineup into human-readable rationale
// by comparing it against the currently rostered lineup.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/lineupiq/optimizer-service/pkg/logger"
	"github.com/lineupiq/optimizer-service/pkg/optimizer"
)

// Insight summarizes how the recommended lineup compares to the current one.
type Insight struct {
	DeltaPoints         float64  `json:"delta_points"`
	RecommendedStarters []string `json:"recommended_starters"`
	Rationale           []string `json:"rationale"`
}

// Statuses that do not warrant an injury advisory. An empty status means the
// feed carried no availability news, which is not the same as bad news.
var healthyStatuses = map[string]bool{
	"":       true,
	"ACTIVE": true,
	"OK":     true,
}

// maxChangeLines caps how many slot swaps are called out in the rationale.
const maxChangeLines = 2

type slotChange struct {
	slotName string
	next     optimizer.Player
	nextPts  float64
	prev     optimizer.Player
	gain     float64
}

// Explain compares the optimization result against the current occupants and
// produces ranked rationale lines. currentOccupants maps slot id to the
// player currently rostered there; projections maps player id to the player
// snapshot used for the run.
func Explain(result *optimizer.Result, currentOccupants map[string]string, projections map[string]optimizer.Player) Insight {
	log := logger.WithComponent("insight")

	currentTotal := currentLineupTotal(currentOccupants, projections)
	deltaPoints := math.Round((result.TotalPoints-currentTotal)*10) / 10
	if deltaPoints < 0 {
		// A worse recommendation is surfaced as "no improvement", never as
		// a penalty figure.
		deltaPoints = 0
	}

	changes := rankChanges(result, currentOccupants, projections)

	rationale := make([]string, 0, maxChangeLines+2)
	for i, change := range changes {
		if i >= maxChangeLines {
			break
		}
		rationale = append(rationale, fmt.Sprintf(
			"%s: start %s (%.1f) over %s (%.1f) for +%.1f pts",
			change.slotName,
			change.next.DisplayName(), change.nextPts,
			change.prev.DisplayName(), change.prev.ProjectedPoints,
			change.gain,
		))
	}

	if deltaPoints == 0 && len(changes) == 0 {
		rationale = append(rationale, "Lineup already optimal for current projections")
	}

	if advisory, ok := statusAdvisory(result, projections); ok {
		rationale = append(rationale, advisory)
	}

	if result.UsedFallback {
		rationale = append(rationale, "Exact optimization unavailable; recommendation built with the greedy fallback")
	}

	log.WithField("delta_points", deltaPoints).Debug("Insight composed")

	return Insight{
		DeltaPoints:         deltaPoints,
		RecommendedStarters: recommendedStarters(result, projections),
		Rationale:           rationale,
	}
}

// currentLineupTotal sums projections for the current occupants. Slots with
// no occupant or an unknown player id are skipped. Slot ids are visited in
// sorted order so the float sum is reproducible.
func currentLineupTotal(currentOccupants map[string]string, projections map[string]optimizer.Player) float64 {
	slotIDs := make([]string, 0, len(currentOccupants))
	for slotID := range currentOccupants {
		slotIDs = append(slotIDs, slotID)
	}
	sort.Strings(slotIDs)

	total := 0.0
	for _, slotID := range slotIDs {
		if player, ok := projections[currentOccupants[slotID]]; ok {
			total += player.ProjectedPoints
		}
	}
	return total
}

// rankChanges collects the slots whose recommendation differs from a known
// current occupant, largest point gain first.
func rankChanges(result *optimizer.Result, currentOccupants map[string]string, projections map[string]optimizer.Player) []slotChange {
	var changes []slotChange
	for _, assignment := range result.Assignments {
		currentID, ok := currentOccupants[assignment.SlotID]
		if !ok || currentID == "" || currentID == assignment.PlayerID {
			continue
		}
		current, ok := projections[currentID]
		if !ok {
			continue
		}
		next, ok := projections[assignment.PlayerID]
		if !ok {
			next = optimizer.Player{ID: assignment.PlayerID}
		}
		gain := assignment.ProjectedPoints - current.ProjectedPoints
		if gain <= 0 {
			continue
		}
		changes = append(changes, slotChange{
			slotName: assignment.SlotName,
			next:     next,
			nextPts:  assignment.ProjectedPoints,
			prev:     current,
			gain:     gain,
		})
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].gain > changes[j].gain
	})
	return changes
}

// statusAdvisory flags the first recommended starter carrying availability
// news worth checking before lock.
func statusAdvisory(result *optimizer.Result, projections map[string]optimizer.Player) (string, bool) {
	for _, assignment := range result.Assignments {
		player, ok := projections[assignment.PlayerID]
		if !ok {
			continue
		}
		if !healthyStatuses[player.Status] {
			return fmt.Sprintf("Monitor %s (%s) before lineups lock", player.DisplayName(), player.Status), true
		}
	}
	return "", false
}

// recommendedStarters lists the recommended players, highest projection
// first, matching how lineups are presented to users.
func recommendedStarters(result *optimizer.Result, projections map[string]optimizer.Player) []string {
	assignments := make([]optimizer.Assignment, len(result.Assignments))
	copy(assignments, result.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].ProjectedPoints > assignments[j].ProjectedPoints
	})

	starters := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		if player, ok := projections[assignment.PlayerID]; ok {
			starters = append(starters, player.DisplayName())
		} else {
			starters = append(starters, assignment.PlayerID)
		}
	}
	return starters
}
