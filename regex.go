// Package tinyregex compiles a restricted pattern language into finite
// automata for linear-time matching.
//
// The grammar is deliberately small:
//   - a plain byte matches itself
//   - '*' repeats the immediately preceding literal zero or more times
//   - '|' alternates; it is right-associative and lowest-precedence, so
//     "a|b|c" parses as "a|(b|c)"
//
// There is no grouping, no character classes, no anchors and no captures.
// Patterns compile through a Thompson-style NFA which is determinized via
// subset construction; matching drives the DFA and never backtracks, so the
// worst case is O(len(input)).
//
// Basic usage:
//
//	re, err := tinyregex.Compile("a*bcd*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.IsMatchString("aabc")   // true
//	re.IsMatchString("abx")    // false
//
// Patterns that are alternations of plain literals skip the automaton
// entirely: the engine compares bytes directly, or builds an Aho-Corasick
// automaton for containment search over many branches.
package tinyregex

import (
	"github.com/coregx/tinyregex/meta"
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe for concurrent use from multiple goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// Returns a *nfa.ParseError when the pattern is malformed: empty, a '*' with
// no preceding literal, or a '|' with an empty branch.
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// CompileWithConfig compiles a pattern with custom engine configuration.
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Pattern returns the source pattern
func (r *Regex) Pattern() string {
	return r.pattern
}

// String returns the source pattern
func (r *Regex) String() string {
	return r.pattern
}

// IsMatch reports whether the pattern accepts the entire input.
func (r *Regex) IsMatch(input []byte) bool {
	return r.engine.IsMatch(input)
}

// IsMatchString is like IsMatch but operates on a string
func (r *Regex) IsMatchString(input string) bool {
	return r.engine.IsMatchString(input)
}

// Contains reports whether any substring of input is accepted by the
// pattern.
func (r *Regex) Contains(input []byte) bool {
	return r.engine.Contains(input)
}

// ContainsString is like Contains but operates on a string
func (r *Regex) ContainsString(input string) bool {
	return r.engine.ContainsString(input)
}

// FindIndices returns the byte offsets [start, end) of a leftmost substring
// of input accepted by the pattern, or (-1, -1, false) when nothing matches.
func (r *Regex) FindIndices(input []byte) (int, int, bool) {
	return r.engine.FindIndices(input)
}
