package meta

import (
	"errors"
	"testing"

	"github.com/coregx/tinyregex/nfa"
)

// TestCompile_StrategySelection tests that patterns land on the expected
// execution strategy
func TestCompile_StrategySelection(t *testing.T) {
	tests := []struct {
		pattern string
		want    Strategy
	}{
		{"abc", UseLiteral},
		{"a", UseLiteral},
		{"abc|de", UseAhoCorasick},
		{"a|b|c", UseAhoCorasick},
		{"a*", UseDFA},
		{"a*bcd*", UseDFA},
		{"ab*|cd|e", UseDFA},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e, err := Compile(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if e.Strategy() != tt.want {
				t.Errorf("Strategy() = %v, want %v", e.Strategy(), tt.want)
			}
			if e.NFA() == nil {
				t.Error("engine must always carry the compiled NFA")
			}
			if tt.want == UseDFA && e.DFA() == nil {
				t.Error("DFA strategy without a DFA")
			}
			if tt.want != UseDFA && e.DFA() != nil {
				t.Error("literal strategy should not build a DFA")
			}
		})
	}
}

// TestCompile_Malformed tests that malformed patterns fail compilation
func TestCompile_Malformed(t *testing.T) {
	for _, pattern := range []string{"", "*", "a|", "|a"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile(pattern)
			var perr *nfa.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("expected *nfa.ParseError, got %v", err)
			}
		})
	}
}

// TestEngine_IsMatch tests full-string acceptance across all strategies
func TestEngine_IsMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		// Literal strategy
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"abc", "abcd", false},
		// Aho-Corasick strategy: acceptance is still exact equality
		{"abc|de", "abc", true},
		{"abc|de", "de", true},
		{"abc|de", "ab", false},
		{"abc|de", "d", false},
		{"abc|de", "abcde", false},
		// DFA strategy
		{"b*a*bcd*", "abcdd", true},
		{"b*a*bcd*", "ab", false},
		{"b*a*bcd*", "acdd", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			e, err := Compile(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.IsMatchString(tt.input); got != tt.want {
				t.Errorf("IsMatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestEngine_Contains tests unanchored containment across strategies
func TestEngine_Contains(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc|de", "xxabcxx", true},
		{"abc|de", "xxdexx", true},
		{"abc|de", "xxabxx", false},
		{"abc", "xabcx", true},
		{"abc", "xx", false},
		{"ab*", "xxaxx", true},
		{"ab", "xxx", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			e, err := Compile(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.ContainsString(tt.input); got != tt.want {
				t.Errorf("ContainsString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestEngine_FindIndices tests leftmost occurrence reporting
func TestEngine_FindIndices(t *testing.T) {
	tests := []struct {
		pattern   string
		input     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"abc", "xxabcxx", 2, 5, true},
		{"abc", "xx", -1, -1, false},
		{"abc|de", "xxdexx", 2, 4, true},
		{"abc|de", "xx", -1, -1, false},
		{"ab*", "xabbby", 1, 5, true}, // leftmost-longest on the DFA path
		{"ab", "xxx", -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			e, err := Compile(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			start, end, ok := e.FindIndices([]byte(tt.input))
			if start != tt.wantStart || end != tt.wantEnd || ok != tt.wantOK {
				t.Errorf("FindIndices(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.input, start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

// TestConfig_Validate tests engine configuration validation
func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := []Config{
		{MaxDFAStates: -1, MinAhoLiterals: 2},
		{MaxDFAStates: 0, MinAhoLiterals: 1},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidConfig", cfg, err)
		}
	}

	if _, err := CompileWithConfig("a", Config{MaxDFAStates: -1, MinAhoLiterals: 2}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("CompileWithConfig should reject invalid config, got %v", err)
	}
}

// TestCompileWithConfig_AhoThreshold tests that raising the threshold sends
// small literal alternations to the DFA
func TestCompileWithConfig_AhoThreshold(t *testing.T) {
	config := DefaultConfig()
	config.MinAhoLiterals = 5

	e, err := CompileWithConfig("abc|de", config)
	if err != nil {
		t.Fatal(err)
	}
	if e.Strategy() != UseDFA {
		t.Errorf("Strategy() = %v, want UseDFA below threshold", e.Strategy())
	}
	if !e.IsMatchString("abc") || e.IsMatchString("ab") {
		t.Error("DFA fallback disagrees with literal semantics")
	}
	if !e.ContainsString("xxdexx") {
		t.Error("DFA fallback containment failed")
	}
}

// TestStrategy_String tests strategy names
func TestStrategy_String(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{UseDFA, "DFA"},
		{UseLiteral, "Literal"},
		{UseAhoCorasick, "AhoCorasick"},
		{Strategy(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
