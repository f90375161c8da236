// Package optimizer computes the highest scoring slot-to-player assignment
// for a roster of lineup slots, with an exact solver and a greedy fallback.
package optimizer

import (
	"fmt"

	"github.com/lineupiq/optimizer-service/pkg/positions"
)

// Player is a candidate considered by the optimizer. Immutable for the
// duration of an optimization run.
type Player struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Positions       positions.Set `json:"positions"`
	ProjectedPoints float64       `json:"projected_points"`
	Status          string        `json:"status,omitempty"`
}

// NewPlayer validates and constructs a Player. The optimizer's invariants
// assume non-empty position sets and non-negative projections, so contract
// violations are rejected here rather than tolerated downstream.
func NewPlayer(id, name string, pos positions.Set, projectedPoints float64, status string) (Player, error) {
	if id == "" {
		return Player{}, fmt.Errorf("player id must not be empty")
	}
	if pos.Len() == 0 {
		return Player{}, fmt.Errorf("player %s has an empty position set", id)
	}
	if projectedPoints < 0 {
		return Player{}, fmt.Errorf("player %s has negative projected points %.2f", id, projectedPoints)
	}
	return Player{
		ID:              id,
		Name:            name,
		Positions:       pos,
		ProjectedPoints: projectedPoints,
		Status:          status,
	}, nil
}

// DisplayName returns the player's name, falling back to the id when the
// upstream feed did not carry one.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Slot is a starting lineup slot to fill during optimization.
type Slot struct {
	ID              string        `json:"id"`
	DisplayName     string        `json:"display_name"`
	Eligible        positions.Set `json:"eligible_positions"`
	CurrentPlayerID string        `json:"current_player_id,omitempty"`
}

// NewSlot validates and constructs a Slot.
func NewSlot(id, displayName string, eligible positions.Set, currentPlayerID string) (Slot, error) {
	if id == "" {
		return Slot{}, fmt.Errorf("slot id must not be empty")
	}
	if eligible.Len() == 0 {
		return Slot{}, fmt.Errorf("slot %s (%s) has an empty eligible position set", id, displayName)
	}
	return Slot{
		ID:              id,
		DisplayName:     displayName,
		Eligible:        eligible,
		CurrentPlayerID: currentPlayerID,
	}, nil
}

// Assignment maps a slot to the player selected for it. ProjectedPoints is a
// snapshot of the player's projection at assignment time.
type Assignment struct {
	SlotID          string  `json:"slot_id"`
	SlotName        string  `json:"slot_name"`
	PlayerID        string  `json:"player_id"`
	ProjectedPoints float64 `json:"projected_points"`
}

// Result is the outcome of an optimization run.
type Result struct {
	Assignments  []Assignment `json:"assignments"`
	TotalPoints  float64      `json:"total_points"`
	UsedFallback bool         `json:"used_fallback"`
}

// RecommendedPlayerIDs returns the players selected for the starting lineup.
func (r *Result) RecommendedPlayerIDs() map[string]bool {
	ids := make(map[string]bool, len(r.Assignments))
	for _, assignment := range r.Assignments {
		ids[assignment.PlayerID] = true
	}
	return ids
}
