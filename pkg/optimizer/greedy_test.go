package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineupiq/optimizer-service/pkg/positions"
)

func TestGreedy_TiesBrokenByEncounterOrder(t *testing.T) {
	players := []Player{
		testPlayer(t, "p1", "", "WR", 10.0),
		testPlayer(t, "p2", "", "WR", 10.0),
	}
	slots := []Slot{testSlot(t, "s1", "WR", positions.NewSet("WR"), "")}

	result, err := greedySolver{}.Solve(players, slots)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "p1", result.Assignments[0].PlayerID)
	assert.True(t, result.UsedFallback)
}

func TestGreedy_WidensToWholePoolWhenNoEligibleMatch(t *testing.T) {
	players := []Player{
		testPlayer(t, "qb1", "", "QB", 18.0),
		testPlayer(t, "qb2", "", "QB", 20.0),
	}
	slots := []Slot{testSlot(t, "s1", "K", positions.NewSet("K"), "")}

	result, err := greedySolver{}.Solve(players, slots)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "qb2", result.Assignments[0].PlayerID)
}

func TestGreedy_ExhaustedPoolLeavesSlotsUnfilled(t *testing.T) {
	players := []Player{testPlayer(t, "p1", "", "WR", 10.0)}
	slots := []Slot{
		testSlot(t, "s1", "WR", positions.NewSet("WR"), ""),
		testSlot(t, "s2", "WR2", positions.NewSet("WR"), ""),
		testSlot(t, "s3", "FLEX", positions.NewSet("RB", "WR", "TE"), ""),
	}

	result, err := greedySolver{}.Solve(players, slots)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "s1", result.Assignments[0].SlotID)
	assert.InDelta(t, 10.0, result.TotalPoints, 1e-9)
}

func TestGreedy_SinglePassDoesNotRevisitEarlierSlots(t *testing.T) {
	// The best back lands in FLEX because FLEX comes first; the RB slot is
	// left with the weaker back. Greedy never goes back to swap them.
	players := []Player{
		testPlayer(t, "rb1", "", "RB", 12.0),
		testPlayer(t, "wr1", "", "WR", 11.0),
		testPlayer(t, "rb2", "", "RB", 5.0),
	}
	slots := []Slot{
		testSlot(t, "s1", "FLEX", positions.NewSet("RB", "WR", "TE"), ""),
		testSlot(t, "s2", "RB", positions.NewSet("RB"), ""),
	}

	result, err := greedySolver{}.Solve(players, slots)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 2)
	assert.Equal(t, "rb1", result.Assignments[0].PlayerID)
	assert.Equal(t, "rb2", result.Assignments[1].PlayerID)
	assert.InDelta(t, 17.0, result.TotalPoints, 1e-9)
}
