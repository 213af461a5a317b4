package meta

import "errors"

// ErrInvalidConfig indicates invalid engine configuration
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Config tunes engine compilation
type Config struct {
	// MaxDFAStates caps subset construction. 0 means unlimited; the DFA
	// state space is bounded by 2^n for an n-state NFA regardless.
	MaxDFAStates int

	// MinAhoLiterals is the minimum number of alternation branches before
	// the engine builds an Aho-Corasick automaton for containment search.
	// Literal alternations below the threshold run on the DFA.
	MinAhoLiterals int
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxDFAStates:   10000,
		MinAhoLiterals: 2,
	}
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if c.MaxDFAStates < 0 {
		return ErrInvalidConfig
	}
	if c.MinAhoLiterals < 2 {
		return ErrInvalidConfig
	}
	return nil
}
