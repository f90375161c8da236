package positions

import "sort"

// Set is an order-independent collection of canonical position tokens.
type Set map[string]struct{}

// NewSet builds a Set from the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, token := range tokens {
		s[token] = struct{}{}
	}
	return s
}

// Has reports whether the token is in the set.
func (s Set) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Intersects reports whether the two sets share any token.
func (s Set) Intersects(other Set) bool {
	// Iterate the smaller set
	a, b := s, other
	if len(b) < len(a) {
		a, b = b, a
	}
	for token := range a {
		if b.Has(token) {
			return true
		}
	}
	return false
}

// Intersect returns the tokens present in both sets.
func (s Set) Intersect(other Set) Set {
	result := make(Set)
	for token := range s {
		if other.Has(token) {
			result[token] = struct{}{}
		}
	}
	return result
}

// Members returns the tokens in sorted order for deterministic iteration.
func (s Set) Members() []string {
	members := make([]string, 0, len(s))
	for token := range s {
		members = append(members, token)
	}
	sort.Strings(members)
	return members
}

// Len returns the number of tokens in the set.
func (s Set) Len() int {
	return len(s)
}
