package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single position", "WR", []string{"WR"}},
		{"slash and comma separated", "RB/WR,TE", []string{"RB", "TE", "WR"}},
		{"whitespace separated", "QB RB", []string{"QB", "RB"}},
		{"single letter synonyms", "W/R", []string{"RB", "WR"}},
		{"kicker synonym", "PK", []string{"K"}},
		{"defense synonym", "DST", []string{"DEF"}},
		{"idp synonyms", "DE,EDGE,CB", []string{"DB", "DL"}},
		{"lowercase input", "rb/wr", []string{"RB", "WR"}},
		{"unknown token passes through", "WR/XX", []string{"WR", "XX"}},
		{"blank input", "   ", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw)
			if tc.expected == nil {
				assert.Equal(t, 0, got.Len())
				return
			}
			assert.Equal(t, tc.expected, got.Members())
		})
	}
}

func TestIsReserveSlot(t *testing.T) {
	reserve := []string{"BN", "Bench", "IR", "IR-R", "PUP", "Taxi", "RES", "COVID-19", "NFI"}
	for _, slot := range reserve {
		assert.True(t, IsReserveSlot(slot), "%s should be a reserve slot", slot)
	}

	starting := []string{"QB", "FLEX", "WR2", "SUPERFLEX", "D/ST", "OP"}
	for _, slot := range starting {
		assert.False(t, IsReserveSlot(slot), "%s should not be a reserve slot", slot)
	}
}

func TestEligibleForSlot(t *testing.T) {
	available := NewSet("QB", "RB", "WR", "TE", "K", "DEF")

	testCases := []struct {
		name     string
		slot     string
		expected []string
	}{
		{"flex override", "Flex", []string{"RB", "TE", "WR"}},
		{"superflex override", "SUPERFLEX", []string{"QB", "RB", "TE", "WR"}},
		{"op override", "OP", []string{"QB", "RB", "TE", "WR"}},
		{"wr rb composite", "W/R", []string{"RB", "WR"}},
		{"numbered single position", "RB1", []string{"RB"}},
		{"numbered wideout", "WR2", []string{"WR"}},
		{"plain single position", "TE", []string{"TE"}},
		{"defense slot", "D/ST", []string{"DEF"}},
		{"kicker slot", "K", []string{"K"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EligibleForSlot(tc.slot, available)
			assert.Equal(t, tc.expected, got.Members())
		})
	}
}

func TestEligibleForSlot_SlashCompositeIntersectsAvailable(t *testing.T) {
	available := NewSet("DL", "LB", "DB")

	got := EligibleForSlot("DL/LB", available)
	assert.Equal(t, []string{"DL", "LB"}, got.Members())

	// Tokens missing from the pool drop out of the composite.
	got = EligibleForSlot("DL/XX", available)
	assert.Equal(t, []string{"DL"}, got.Members())
}

func TestEligibleForSlot_UnknownFallsBackToAvailable(t *testing.T) {
	available := NewSet("QB", "RB", "WR", "TE")

	for _, slot := range []string{"UTIL", "STARTER", "LEAGUE-SPECIAL"} {
		got := EligibleForSlot(slot, available)
		assert.Equal(t, available.Members(), got.Members(), "unknown slot %s should accept all available positions", slot)
	}
}

func TestSet_Intersects(t *testing.T) {
	a := NewSet("RB", "WR")
	b := NewSet("WR", "TE")
	c := NewSet("QB")

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
	assert.False(t, NewSet().Intersects(a))
}

func TestSet_Intersect(t *testing.T) {
	a := NewSet("RB", "WR", "TE")
	b := NewSet("WR", "TE", "QB")

	assert.Equal(t, []string{"TE", "WR"}, a.Intersect(b).Members())
	assert.Equal(t, 0, a.Intersect(NewSet()).Len())
}
