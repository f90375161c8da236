// Package positions normalizes raw roster position and slot vocabulary into
// canonical position sets used by the lineup optimizer.
package positions

import "strings"

// Slot prefixes that indicate the player is not eligible for the starting
// lineup optimization.
var reserveSlotPrefixes = []string{
	"BENCH",
	"BN",
	"RESERVE",
	"RES",
	"IR",
	"PUP",
	"NFI",
	"COVID",
	"TAXI",
}

var positionSynonyms = map[string]string{
	"W":    "WR",
	"R":    "RB",
	"T":    "TE",
	"Q":    "QB",
	"QB":   "QB",
	"RB":   "RB",
	"WR":   "WR",
	"TE":   "TE",
	"K":    "K",
	"PK":   "K",
	"DST":  "DEF",
	"D/ST": "DEF",
	"DEF":  "DEF",
	"DL":   "DL",
	"DE":   "DL",
	"DT":   "DL",
	"LB":   "LB",
	"EDGE": "DL",
	"DB":   "DB",
	"CB":   "DB",
	"S":    "DB",
	"IDP":  "IDP",
}

var slotOverrides = map[string]Set{
	"FLEX":       NewSet("RB", "WR", "TE"),
	"W/R":        NewSet("WR", "RB"),
	"R/W":        NewSet("WR", "RB"),
	"W/T":        NewSet("WR", "TE"),
	"WR/RB":      NewSet("WR", "RB"),
	"RB/WR":      NewSet("WR", "RB"),
	"WR/TE":      NewSet("WR", "TE"),
	"RB/WR/TE":   NewSet("RB", "WR", "TE"),
	"W/R/T":      NewSet("WR", "RB", "TE"),
	"SUPERFLEX":  NewSet("QB", "RB", "WR", "TE"),
	"SUPER FLEX": NewSet("QB", "RB", "WR", "TE"),
	"OP":         NewSet("QB", "RB", "WR", "TE"),
	"Q/W/R":      NewSet("QB", "WR", "RB"),
	"Q/W/R/T":    NewSet("QB", "WR", "RB", "TE"),
	"WR":         NewSet("WR"),
	"WR1":        NewSet("WR"),
	"WR2":        NewSet("WR"),
	"WR3":        NewSet("WR"),
	"RB":         NewSet("RB"),
	"RB1":        NewSet("RB"),
	"RB2":        NewSet("RB"),
	"RB3":        NewSet("RB"),
	"TE":         NewSet("TE"),
	"TE1":        NewSet("TE"),
	"QB":         NewSet("QB"),
	"QB1":        NewSet("QB"),
}

// NormalizeSlotName normalizes a roster slot name for table lookups. Only
// letters and '/' survive.
func NormalizeSlotName(slotName string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(slotName) {
		if (r >= 'A' && r <= 'Z') || r == '/' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsReserveSlot returns true if the slot is a bench or reserve position.
func IsReserveSlot(slotName string) bool {
	var b strings.Builder
	for _, r := range strings.ToUpper(slotName) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	for _, prefix := range reserveSlotPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

// Normalize splits a raw position string into canonical tokens. Unknown
// tokens pass through uppercased rather than being dropped.
func Normalize(raw string) Set {
	tokens := strings.FieldsFunc(strings.ToUpper(raw), func(r rune) bool {
		return r == '/' || r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	normalized := make(Set)
	for _, token := range tokens {
		if canonical, ok := positionSynonyms[token]; ok {
			normalized[canonical] = struct{}{}
		} else {
			normalized[token] = struct{}{}
		}
	}
	return normalized
}

// EligibleForSlot returns the set of eligible positions for a roster slot.
func EligibleForSlot(slotName string, available Set) Set {
	normalizedSlot := NormalizeSlotName(slotName)
	if override, ok := slotOverrides[normalizedSlot]; ok {
		return override
	}

	if strings.Contains(normalizedSlot, "/") {
		eligible := make(Set)
		for _, token := range strings.Split(normalizedSlot, "/") {
			canonical, ok := positionSynonyms[token]
			if !ok {
				canonical = token
			}
			if available.Has(canonical) {
				eligible[canonical] = struct{}{}
			}
		}
		if len(eligible) > 0 {
			return eligible
		}
	}

	stripped := strings.TrimRight(normalizedSlot, "0123456789")
	if override, ok := slotOverrides[stripped]; ok {
		return override
	}

	canonical, ok := positionSynonyms[stripped]
	if !ok {
		canonical = stripped
	}
	if available.Has(canonical) {
		return NewSet(canonical)
	}

	// Fall back to all available positions when the slot type is unknown.
	fallback := make(Set, len(available))
	for token := range available {
		fallback[token] = struct{}{}
	}
	return fallback
}
