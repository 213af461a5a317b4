// Package dfa converts NFAs built by package nfa into deterministic finite
// automata via epsilon-closure and subset construction, and drives the
// resulting DFA across inputs for linear-time matching.
package dfa

import (
	"fmt"
	"strings"

	"github.com/coregx/tinyregex/nfa"
)

// StateID uniquely identifies a DFA state.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// State is a DFA state. Its identity is the set of NFA state labels it
// aggregates (its epsilon-closure): two DFA states are equal iff their label
// sets are equal. The start and match flags are derived from the constituent
// NFA states.
//
// A State is immutable after determinization completes.
type State struct {
	id StateID

	// labels is the sorted set of NFA states this DFA state represents.
	labels []nfa.StateID

	// transitions maps input byte -> next state. At most one target per
	// byte; this is the determinism invariant subset construction
	// establishes and Match relies on.
	transitions map[byte]StateID

	isStart bool
	isMatch bool
}

// ID returns the state's identifier
func (s *State) ID() StateID {
	return s.id
}

// Labels returns the sorted NFA state labels this state aggregates.
// The returned slice must not be modified.
func (s *State) Labels() []nfa.StateID {
	return s.labels
}

// IsStart returns true if any constituent NFA state is a start state
func (s *State) IsStart() bool {
	return s.isStart
}

// IsMatch returns true if any constituent NFA state is a goal state
func (s *State) IsMatch() bool {
	return s.isMatch
}

// Transition returns the next state for the given input byte.
// Returns (InvalidState, false) if no transition exists.
func (s *State) Transition(b byte) (StateID, bool) {
	next, ok := s.transitions[b]
	if !ok {
		return InvalidState, false
	}
	return next, true
}

// TransitionCount returns the number of outgoing transitions
func (s *State) TransitionCount() int {
	return len(s.transitions)
}

// String renders the state with its label set for debugging and golden
// tests, e.g. "<State:{0,1} start>".
func (s *State) String() string {
	var b strings.Builder
	b.WriteString("<State:{")
	for i, lbl := range s.labels {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", lbl)
	}
	b.WriteString("}")
	if s.isStart {
		b.WriteString(" start")
	}
	if s.isMatch {
		b.WriteString(" goal")
	}
	b.WriteString(">")
	return b.String()
}

// Edge is a deterministic transition between two DFA states on a literal
// input byte. Epsilon edges never survive determinization.
type Edge struct {
	From  StateID
	To    StateID
	Input byte
}

// String returns a human-readable representation of the edge
func (e Edge) String() string {
	return fmt.Sprintf("%d --%q--> %d", e.From, e.Input, e.To)
}

// DFA is a deterministic finite automaton produced by Determinize.
//
// A DFA is immutable after construction; Match keeps its cursor local, so a
// single DFA is safe for concurrent use from multiple goroutines.
type DFA struct {
	states []*State
	edges  []Edge

	// starts holds every state flagged as a start state. Subset
	// construction yields exactly one, but Match iterates all of them and
	// accepts if any yields acceptance.
	starts []StateID
}

// Start returns the designated start state's identifier.
// The initial state of subset construction is always state 0.
func (d *DFA) Start() StateID {
	return 0
}

// State returns the state with the given identifier, or nil if out of range
func (d *DFA) State(id StateID) *State {
	if int(id) >= len(d.states) {
		return nil
	}
	return d.states[id]
}

// States returns the deduplicated collection of states.
// The returned slice must not be modified.
func (d *DFA) States() []*State {
	return d.states
}

// Edges returns the deduplicated collection of edges.
// The returned slice must not be modified.
func (d *DFA) Edges() []Edge {
	return d.edges
}

// StateCount returns the number of states
func (d *DFA) StateCount() int {
	return len(d.states)
}

// EdgeCount returns the number of edges
func (d *DFA) EdgeCount() int {
	return len(d.edges)
}

// String returns a compact summary for debugging
func (d *DFA) String() string {
	return fmt.Sprintf("DFA(states=%d, edges=%d)", len(d.states), len(d.edges))
}
