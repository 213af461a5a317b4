package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies an NFA state.
// Labels are assigned monotonically from 0 by the Builder and are unique
// within one automaton, which allows dense slice-based indexing.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Pattern metacharacters recognized by the Builder.
const (
	// Star is the zero-or-more repetition operator. It applies to the
	// immediately preceding literal.
	Star byte = '*'

	// Alt is the alternation operator. It is right-associative and has the
	// lowest precedence: everything after it is the right-hand branch.
	Alt byte = '|'
)

// Token labels an NFA edge: either a literal input byte or Epsilon.
type Token uint16

// Epsilon is the reserved token for transitions that consume no input.
const Epsilon Token = 0x100

// ByteToken returns the token for a literal input byte.
func ByteToken(b byte) Token {
	return Token(b)
}

// IsEpsilon returns true if the token is the epsilon marker
func (t Token) IsEpsilon() bool {
	return t == Epsilon
}

// Byte returns the literal byte for a non-epsilon token.
// Returns 0 for Epsilon.
func (t Token) Byte() byte {
	if t.IsEpsilon() {
		return 0
	}
	return byte(t)
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.IsEpsilon() {
		return "eps"
	}
	return fmt.Sprintf("%q", t.Byte())
}

// State is a single NFA state. States are created by the Builder and are
// immutable after the build completes; the start/goal flags are adjusted
// only while alternation branches are spliced together.
type State struct {
	id    StateID
	start bool
	goal  bool
}

// ID returns the state's unique label
func (s *State) ID() StateID {
	return s.id
}

// IsStart returns true if this is the automaton's start state
func (s *State) IsStart() bool {
	return s.start
}

// IsGoal returns true if this is an accepting state
func (s *State) IsGoal() bool {
	return s.goal
}

// String returns a human-readable representation of the state,
// e.g. "<State:3 start>" or "<State:7 goal>".
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<State:%d", s.id)
	if s.start {
		b.WriteString(" start")
	}
	if s.goal {
		b.WriteString(" goal")
	}
	b.WriteString(">")
	return b.String()
}

// Edge is a directed transition between two NFA states.
// Multiple edges may share the same From/To pair.
type Edge struct {
	From  StateID
	To    StateID
	Label Token
}

// String returns a human-readable representation of the edge
func (e Edge) String() string {
	return fmt.Sprintf("%d --%s--> %d", e.From, e.Label, e.To)
}

// NFA is a nondeterministic finite automaton over byte tokens with epsilon
// transitions. It owns an ordered collection of states and a collection of
// edges, with exactly one start state and exactly one goal state.
//
// An NFA is immutable after construction and safe for concurrent use.
type NFA struct {
	states []*State
	edges  []Edge

	// Adjacency indexes, built once at construction. Labels are dense
	// (0..len(states)-1) so plain slices serve as the lookup tables.
	edgesFrom [][]Edge
	epsFrom   [][]Edge

	start StateID
	goal  StateID
}

// newNFA assembles an NFA from a completed builder fragment and indexes its
// edges for per-state lookup.
func newNFA(states []*State, edges []Edge) *NFA {
	n := &NFA{
		states:    states,
		edges:     edges,
		edgesFrom: make([][]Edge, len(states)),
		epsFrom:   make([][]Edge, len(states)),
		start:     InvalidState,
		goal:      InvalidState,
	}
	for _, e := range edges {
		n.edgesFrom[e.From] = append(n.edgesFrom[e.From], e)
		if e.Label.IsEpsilon() {
			n.epsFrom[e.From] = append(n.epsFrom[e.From], e)
		}
	}
	for _, s := range states {
		if s.start {
			n.start = s.id
		}
		if s.goal {
			n.goal = s.id
		}
	}
	return n
}

// Start returns the unique start state's label
func (n *NFA) Start() StateID {
	return n.start
}

// Goal returns the unique accepting state's label
func (n *NFA) Goal() StateID {
	return n.goal
}

// State returns the state with the given label, or nil if out of range
func (n *NFA) State(id StateID) *State {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id]
}

// States returns the ordered collection of states.
// The returned slice must not be modified.
func (n *NFA) States() []*State {
	return n.states
}

// Edges returns all edges of the automaton.
// The returned slice must not be modified.
func (n *NFA) Edges() []Edge {
	return n.edges
}

// EdgesFrom returns every edge leaving the given state, epsilon included.
func (n *NFA) EdgesFrom(id StateID) []Edge {
	if int(id) >= len(n.edgesFrom) {
		return nil
	}
	return n.edgesFrom[id]
}

// EpsilonEdgesFrom returns only the epsilon edges leaving the given state.
func (n *NFA) EpsilonEdgesFrom(id StateID) []Edge {
	if int(id) >= len(n.epsFrom) {
		return nil
	}
	return n.epsFrom[id]
}

// StateCount returns the number of states
func (n *NFA) StateCount() int {
	return len(n.states)
}

// EdgeCount returns the number of edges
func (n *NFA) EdgeCount() int {
	return len(n.edges)
}

// String returns a compact summary for debugging
func (n *NFA) String() string {
	return fmt.Sprintf("NFA(states=%d, edges=%d, start=%d, goal=%d)",
		len(n.states), len(n.edges), n.start, n.goal)
}
