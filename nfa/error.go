// Package nfa provides the automaton data model and the recursive-descent
// builder for a restricted pattern language: literal bytes, zero-or-more
// repetition ('*') on the preceding literal, and right-associative
// alternation ('|') that consumes the remainder of the pattern.
//
// The Builder produces a Thompson-style NFA with epsilon transitions. The
// NFA is the input to subset construction in package dfa.
package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed patterns
var (
	// ErrEmptyPattern indicates the pattern contained no symbols
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrDanglingStar indicates a repetition operator with no preceding
	// literal to apply to
	ErrDanglingStar = errors.New("repetition operator has no preceding literal")

	// ErrEmptyBranch indicates an alternation operator with an empty branch
	// on either side
	ErrEmptyBranch = errors.New("alternation has an empty branch")
)

// ParseError reports a malformed pattern. It carries the source pattern and,
// when one applies, the offending operator, for diagnostics.
//
// ParseError supports errors.Is against the sentinel errors above:
//
//	_, err := nfa.NewBuilder().Build("*")
//	if errors.Is(err, nfa.ErrDanglingStar) {
//	    // handle
//	}
type ParseError struct {
	Pattern string
	Op      byte // offending operator, 0 when none applies
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Op != 0 {
		return fmt.Sprintf("parse error in pattern %q at operator %q: %v", e.Pattern, e.Op, e.Err)
	}
	return fmt.Sprintf("parse error in pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *ParseError) Unwrap() error {
	return e.Err
}
