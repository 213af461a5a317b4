package dfa

import (
	"math"
	"testing"

	"github.com/coregx/tinyregex/nfa"
)

func mustNFA(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	n, err := nfa.NewBuilder().Build(pattern)
	if err != nil {
		t.Fatalf("Build(%q): %v", pattern, err)
	}
	return n
}

// TestDeterminize_Shape tests the known shape of the a*bcd* automaton:
// 3 states and 4 edges (an 'a' self-loop, 'b', 'c', and a 'd' self-loop).
func TestDeterminize_Shape(t *testing.T) {
	d := Determinize(mustNFA(t, "a*bcd*"))

	if d.StateCount() != 3 {
		t.Fatalf("expected 3 states, got %d", d.StateCount())
	}
	if d.EdgeCount() != 4 {
		t.Fatalf("expected 4 edges, got %d", d.EdgeCount())
	}

	selfLoops := make(map[byte]bool)
	for _, e := range d.Edges() {
		if e.From == e.To {
			selfLoops[e.Input] = true
		}
	}
	if !selfLoops['a'] || !selfLoops['d'] {
		t.Errorf("expected self-loops on 'a' and 'd', got %v", selfLoops)
	}
}

// TestEpsilonClosure_Idempotent tests that closing an already-closed set
// changes nothing
func TestEpsilonClosure_Idempotent(t *testing.T) {
	patterns := []string{"a*", "a*bcd*", "abc|de", "a|b|c", "b*a*bcd*"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n := mustNFA(t, pattern)

			closed := EpsilonClosure(n, []nfa.StateID{n.Start()})
			again := EpsilonClosure(n, closed)
			if !equalLabels(closed, again) {
				t.Errorf("closure not idempotent: %v vs %v", closed, again)
			}
		})
	}
}

// TestDeterminize_Determinism tests that no two edges share a (from, input)
// pair and no (from, to, input) triple repeats
func TestDeterminize_Determinism(t *testing.T) {
	patterns := []string{"a", "a*bcd*", "abc|de", "a|b|c", "b*a*bcd*", "ab*|cd|e"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			d := Determinize(mustNFA(t, pattern))

			type fromInput struct {
				from  StateID
				input byte
			}
			seen := make(map[fromInput]bool)
			for _, e := range d.Edges() {
				k := fromInput{e.From, e.Input}
				if seen[k] {
					t.Errorf("duplicate edge for (state %d, input %q)", e.From, e.Input)
				}
				seen[k] = true
			}

			for _, s := range d.States() {
				if s.TransitionCount() != countEdgesFrom(d, s.ID()) {
					t.Errorf("state %d: transition map and edge list disagree", s.ID())
				}
			}
		})
	}
}

func countEdgesFrom(d *DFA, id StateID) int {
	n := 0
	for _, e := range d.Edges() {
		if e.From == id {
			n++
		}
	}
	return n
}

// TestDeterminize_StateBound tests the powerset bound on the DFA state count
func TestDeterminize_StateBound(t *testing.T) {
	patterns := []string{"a", "a*bcd*", "abc|de", "a|b|c", "b*a*bcd*"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n := mustNFA(t, pattern)
			d := Determinize(n)

			bound := math.Pow(2, float64(n.StateCount()))
			if float64(d.StateCount()) > bound {
				t.Errorf("%d DFA states exceeds 2^%d", d.StateCount(), n.StateCount())
			}
		})
	}
}

// TestDeterminize_DerivedFlags tests that DFA flags derive from the
// constituent NFA states
func TestDeterminize_DerivedFlags(t *testing.T) {
	n := mustNFA(t, "ab")
	d := Determinize(n)

	start := d.State(d.Start())
	if !start.IsStart() {
		t.Error("initial state must carry the start flag")
	}
	if start.IsMatch() {
		t.Error("initial state of \"ab\" must not accept")
	}

	matches := 0
	for _, s := range d.States() {
		if s.IsMatch() {
			matches++
			if !containsLabel(s.Labels(), n.Goal()) {
				t.Error("accepting DFA state lacks the NFA goal state")
			}
		}
	}
	if matches == 0 {
		t.Error("no accepting DFA state")
	}
}

func containsLabel(labels []nfa.StateID, want nfa.StateID) bool {
	for _, lbl := range labels {
		if lbl == want {
			return true
		}
	}
	return false
}

// TestDeterminize_ClosedStates tests that every DFA state's label set is
// closed under epsilon reachability
func TestDeterminize_ClosedStates(t *testing.T) {
	n := mustNFA(t, "b*a*bcd*")
	d := Determinize(n)

	for _, s := range d.States() {
		closed := EpsilonClosure(n, s.Labels())
		if !equalLabels(s.Labels(), closed) {
			t.Errorf("state %v not epsilon-closed: closure is %v", s, closed)
		}
	}
}

// TestDeterminizeWithConfig_StateLimit tests the optional state cap
func TestDeterminizeWithConfig_StateLimit(t *testing.T) {
	n := mustNFA(t, "abc")

	if _, err := DeterminizeWithConfig(n, Config{MaxStates: 2}); err != ErrStateLimitExceeded {
		t.Errorf("expected ErrStateLimitExceeded, got %v", err)
	}

	d, err := DeterminizeWithConfig(n, Config{MaxStates: 100})
	if err != nil {
		t.Fatalf("expected success under generous cap: %v", err)
	}
	if d.StateCount() != 4 {
		t.Errorf("expected 4 states for \"abc\", got %d", d.StateCount())
	}
}

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if err := (Config{MaxStates: -1}).Validate(); err != ErrInvalidConfig {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := DeterminizeWithConfig(mustNFA(t, "a"), Config{MaxStates: -1}); err != ErrInvalidConfig {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

// TestState_String tests the label-set rendering used in golden output
func TestState_String(t *testing.T) {
	d := Determinize(mustNFA(t, "a*"))

	// closure(start) of "a*" is {0,1}; state 0 is both start and accepting.
	if got := d.State(0).String(); got != "<State:{0,1} start goal>" {
		t.Errorf("State(0).String() = %q", got)
	}

	e := Edge{From: 0, To: 0, Input: 'a'}
	if got := e.String(); got != `0 --'a'--> 0` {
		t.Errorf("Edge.String() = %q", got)
	}
}
