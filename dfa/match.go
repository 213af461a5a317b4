package dfa

// Match drives the DFA across input and reports whether the whole input is
// accepted.
//
// The cursor is a local value, never a field: Match does not mutate the DFA,
// repeated calls with the same input return the same verdict, and concurrent
// calls on one DFA are safe.
//
// Subset construction yields a single start state, but Match iterates every
// state flagged as a start and accepts if any of them yields acceptance.
func (d *DFA) Match(input []byte) bool {
	for _, id := range d.starts {
		if d.matchFrom(id, input) {
			return true
		}
	}
	return false
}

// MatchString is like Match but operates on a string
func (d *DFA) MatchString(input string) bool {
	return d.Match([]byte(input))
}

// matchFrom walks the DFA from the given state. A missing transition rejects
// immediately without consuming the remaining input.
func (d *DFA) matchFrom(start StateID, input []byte) bool {
	cur := d.states[start]
	for _, b := range input {
		next, ok := cur.transitions[b]
		if !ok {
			return false
		}
		cur = d.states[next]
	}
	return cur.isMatch
}

// LongestPrefixMatch returns the length of the longest prefix of input the
// DFA accepts, and whether any prefix (possibly empty) is accepted. This is
// the primitive behind unanchored containment search.
func (d *DFA) LongestPrefixMatch(input []byte) (int, bool) {
	best := 0
	found := false
	for _, id := range d.starts {
		cur := d.states[id]
		if cur.isMatch {
			found = true
		}
		for i, b := range input {
			next, ok := cur.transitions[b]
			if !ok {
				break
			}
			cur = d.states[next]
			if cur.isMatch {
				found = true
				if i+1 > best {
					best = i + 1
				}
			}
		}
	}
	return best, found
}
