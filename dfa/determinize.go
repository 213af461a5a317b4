package dfa

import (
	"github.com/coregx/tinyregex/internal/sparse"
	"github.com/coregx/tinyregex/nfa"
)

// Config configures determinization
type Config struct {
	// MaxStates caps the number of DFA states created during subset
	// construction. 0 means unlimited; the powerset bound still guarantees
	// termination.
	MaxStates int
}

// DefaultConfig returns a configuration with no state cap
func DefaultConfig() Config {
	return Config{MaxStates: 0}
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// EpsilonClosure returns the set of NFA states reachable from seed using
// only epsilon edges, seed included. The result is sorted by label.
//
// Closure is idempotent: closing an already-closed set returns the same set.
func EpsilonClosure(n *nfa.NFA, seed []nfa.StateID) []nfa.StateID {
	set := sparse.NewSet(uint32(n.StateCount()))
	for _, id := range seed {
		set.Insert(uint32(id))
	}

	// Fixed-point over the dense slice: elements inserted during the scan
	// extend the slice and are themselves scanned.
	for i := 0; i < set.Len(); i++ {
		id := nfa.StateID(set.At(i))
		for _, e := range n.EpsilonEdgesFrom(id) {
			set.Insert(uint32(e.To))
		}
	}

	closure := make([]nfa.StateID, 0, set.Len())
	for _, v := range set.Values() {
		closure = append(closure, nfa.StateID(v))
	}
	sortLabels(closure)
	return closure
}

// Determinize converts an NFA into an equivalent DFA using subset
// construction. It is total over any NFA produced by nfa.Builder: the
// accepted language does not depend on construction order, only the state
// numbering does.
func Determinize(n *nfa.NFA) *DFA {
	// DefaultConfig never fails validation and sets no state cap.
	d, _ := DeterminizeWithConfig(n, DefaultConfig())
	return d
}

// DeterminizeWithConfig converts an NFA into an equivalent DFA, failing with
// ErrStateLimitExceeded if cfg.MaxStates > 0 and subset construction needs
// more states than allowed.
func DeterminizeWithConfig(n *nfa.NFA, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &DFA{}
	index := make(map[StateKey][]StateID)

	addState := func(labels []nfa.StateID) *State {
		s := &State{
			id:          StateID(len(d.states)),
			labels:      labels,
			transitions: make(map[byte]StateID, 4),
		}
		for _, lbl := range labels {
			ns := n.State(lbl)
			if ns.IsStart() {
				s.isStart = true
			}
			if ns.IsGoal() {
				s.isMatch = true
			}
		}
		d.states = append(d.states, s)
		key := ComputeStateKey(labels)
		index[key] = append(index[key], s.id)
		return s
	}

	lookup := func(labels []nfa.StateID) (StateID, bool) {
		for _, id := range index[ComputeStateKey(labels)] {
			if equalLabels(d.states[id].labels, labels) {
				return id, true
			}
		}
		return InvalidState, false
	}

	start := addState(EpsilonClosure(n, []nfa.StateID{n.Start()}))

	// Breadth-first over subsets; each subset is enqueued exactly once.
	queue := []StateID{start.id}
	for len(queue) > 0 {
		cur := d.states[queue[0]]
		queue = queue[1:]

		// Group the non-epsilon edges leaving the subset by input byte.
		// Bytes are processed in first-seen order so state numbering is
		// reproducible across runs.
		var order []byte
		targets := make(map[byte][]nfa.StateID)
		for _, lbl := range cur.labels {
			for _, e := range n.EdgesFrom(lbl) {
				if e.Label.IsEpsilon() {
					continue
				}
				b := e.Label.Byte()
				if _, seen := targets[b]; !seen {
					order = append(order, b)
				}
				targets[b] = append(targets[b], e.To)
			}
		}

		for _, b := range order {
			labels := EpsilonClosure(n, targets[b])
			next, ok := lookup(labels)
			if !ok {
				if cfg.MaxStates > 0 && len(d.states) >= cfg.MaxStates {
					return nil, ErrStateLimitExceeded
				}
				ns := addState(labels)
				queue = append(queue, ns.id)
				next = ns.id
			}
			// One transition per (state, byte): grouping above guarantees
			// this loop visits each byte once, so no duplicate edge can be
			// recorded.
			cur.transitions[b] = next
			d.edges = append(d.edges, Edge{From: cur.id, To: next, Input: b})
		}
	}

	for _, s := range d.states {
		if s.isStart {
			d.starts = append(d.starts, s.id)
		}
	}
	return d, nil
}
