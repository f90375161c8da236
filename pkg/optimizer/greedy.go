package optimizer

import (
	"gonum.org/v1/gonum/floats"
)

// greedySolver fills slots in their given order with the highest projected
// player remaining in the pool. It is single pass: earlier picks are never
// revisited, so the result is deterministic but not guaranteed optimal.
type greedySolver struct{}

func (greedySolver) Solve(players []Player, slots []Slot) (*Result, error) {
	remaining := make([]Player, len(players))
	copy(remaining, players)

	assignments := make([]Assignment, 0, len(slots))
	scores := make([]float64, 0, len(slots))

	for _, slot := range slots {
		eligible := make([]Player, 0, len(remaining))
		for _, player := range remaining {
			if player.Positions.Intersects(slot.Eligible) {
				eligible = append(eligible, player)
			}
		}
		if len(eligible) == 0 {
			eligible = remaining
		}
		if len(eligible) == 0 {
			// Pool exhausted, slot stays unfilled.
			continue
		}

		// First encountered wins on ties.
		chosen := eligible[0]
		for _, player := range eligible[1:] {
			if player.ProjectedPoints > chosen.ProjectedPoints {
				chosen = player
			}
		}

		assignments = append(assignments, Assignment{
			SlotID:          slot.ID,
			SlotName:        slot.DisplayName,
			PlayerID:        chosen.ID,
			ProjectedPoints: chosen.ProjectedPoints,
		})
		scores = append(scores, chosen.ProjectedPoints)

		next := remaining[:0]
		for _, player := range remaining {
			if player.ID != chosen.ID {
				next = append(next, player)
			}
		}
		remaining = next
	}

	return &Result{
		Assignments:  assignments,
		TotalPoints:  floats.Sum(scores),
		UsedFallback: true,
	}, nil
}
