// Package meta selects and drives the execution strategy for a compiled
// pattern.
//
// Every pattern is compiled through the full NFA pipeline so malformed
// patterns fail uniformly, but execution picks the cheapest engine the
// pattern admits: a single byte comparison for one literal, an Aho-Corasick
// automaton for alternations of literals, and the determinized DFA for
// everything else.
package meta

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/tinyregex/dfa"
	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
)

// Strategy identifies the execution engine selected for a pattern
type Strategy uint8

const (
	// UseDFA runs the determinized automaton (the general case)
	UseDFA Strategy = iota

	// UseLiteral compares against a single complete literal
	UseLiteral

	// UseAhoCorasick serves containment search for alternations of
	// complete literals from an Aho-Corasick automaton
	UseAhoCorasick
)

// String returns a human-readable strategy name
func (s Strategy) String() string {
	switch s {
	case UseDFA:
		return "DFA"
	case UseLiteral:
		return "Literal"
	case UseAhoCorasick:
		return "AhoCorasick"
	default:
		return "Unknown"
	}
}

// Engine is a compiled pattern bound to its execution strategy.
//
// An Engine is immutable after compilation and safe for concurrent use.
type Engine struct {
	pattern  string
	strategy Strategy

	nfa      *nfa.NFA
	dfa      *dfa.DFA
	literals *literal.Seq

	// ahoCorasick is set only under UseAhoCorasick
	ahoCorasick *ahocorasick.Automaton
}

// Pattern returns the source pattern
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the selected execution strategy
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled NFA
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// DFA returns the determinized automaton, or nil when the literal strategies
// made determinization unnecessary.
func (e *Engine) DFA() *dfa.DFA {
	return e.dfa
}

// IsMatch reports whether the pattern accepts the entire input.
func (e *Engine) IsMatch(input []byte) bool {
	switch e.strategy {
	case UseLiteral, UseAhoCorasick:
		// Full-string acceptance of a literal alternation is exact
		// equality against one of the branches.
		for i := 0; i < e.literals.Len(); i++ {
			if bytes.Equal(e.literals.Get(i).Bytes, input) {
				return true
			}
		}
		return false
	default:
		return e.dfa.Match(input)
	}
}

// IsMatchString is like IsMatch but operates on a string
func (e *Engine) IsMatchString(input string) bool {
	return e.IsMatch([]byte(input))
}

// Contains reports whether any substring of input is accepted by the
// pattern (unanchored search).
func (e *Engine) Contains(input []byte) bool {
	switch e.strategy {
	case UseAhoCorasick:
		return e.ahoCorasick.IsMatch(input)
	case UseLiteral:
		return bytes.Contains(input, e.literals.Get(0).Bytes)
	default:
		for at := 0; at <= len(input); at++ {
			if _, ok := e.dfa.LongestPrefixMatch(input[at:]); ok {
				return true
			}
		}
		return false
	}
}

// ContainsString is like Contains but operates on a string
func (e *Engine) ContainsString(input string) bool {
	return e.Contains([]byte(input))
}

// FindIndices returns the byte offsets [start, end) of a leftmost substring
// of input accepted by the pattern. On the DFA path the match is
// leftmost-longest. Returns (-1, -1, false) when nothing matches.
func (e *Engine) FindIndices(input []byte) (int, int, bool) {
	switch e.strategy {
	case UseAhoCorasick:
		m := e.ahoCorasick.Find(input, 0)
		if m == nil {
			return -1, -1, false
		}
		return m.Start, m.End, true
	case UseLiteral:
		lit := e.literals.Get(0).Bytes
		idx := bytes.Index(input, lit)
		if idx < 0 {
			return -1, -1, false
		}
		return idx, idx + len(lit), true
	default:
		for at := 0; at <= len(input); at++ {
			if n, ok := e.dfa.LongestPrefixMatch(input[at:]); ok {
				return at, at + n, true
			}
		}
		return -1, -1, false
	}
}
