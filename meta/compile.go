package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/tinyregex/dfa"
	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
)

// Compile compiles a pattern into an executable Engine.
//
// Steps:
//  1. Compile the pattern to an NFA (validates the pattern)
//  2. Extract complete literals when the pattern is star-free
//  3. Select a strategy
//  4. Build the DFA or the Aho-Corasick automaton the strategy needs
//
// Returns a *nfa.ParseError when the pattern is malformed.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxDFAStates = 50000
//	engine, err := meta.CompileWithConfig("a*bc", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n, err := nfa.NewBuilder().Build(pattern)
	if err != nil {
		return nil, err
	}

	literals := literal.Extract(pattern)

	e := &Engine{
		pattern:  pattern,
		strategy: selectStrategy(literals, config),
		nfa:      n,
		literals: literals,
	}

	if e.strategy == UseAhoCorasick {
		builder := ahocorasick.NewBuilder()
		for i := 0; i < literals.Len(); i++ {
			builder.AddPattern(literals.Get(i).Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			// Fall back to the general engine rather than failing the
			// compile; the DFA accepts the same language.
			e.strategy = UseDFA
		} else {
			e.ahoCorasick = auto
		}
	}

	if e.strategy == UseDFA {
		d, err := dfa.DeterminizeWithConfig(n, dfa.Config{MaxStates: config.MaxDFAStates})
		if err != nil {
			return nil, err
		}
		e.dfa = d
	}

	return e, nil
}

// selectStrategy picks the cheapest engine the pattern admits.
func selectStrategy(literals *literal.Seq, config Config) Strategy {
	switch {
	case literals == nil || literals.IsEmpty():
		return UseDFA
	case literals.Len() == 1:
		return UseLiteral
	case literals.Len() >= config.MinAhoLiterals:
		return UseAhoCorasick
	default:
		return UseDFA
	}
}
