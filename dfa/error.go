package dfa

import "fmt"

// ErrStateLimitExceeded indicates that determinization reached the maximum
// number of allowed states.
//
// The subset-construction state space is bounded by 2^n for an n-state NFA,
// so construction always terminates; the limit exists to cap memory for
// pathological patterns when a caller opts into one.
var ErrStateLimitExceeded = &DFAError{
	Kind:    StateLimitExceeded,
	Message: "DFA state limit exceeded",
}

// ErrInvalidConfig indicates that the provided configuration is invalid
var ErrInvalidConfig = &DFAError{
	Kind:    InvalidConfig,
	Message: "invalid DFA configuration",
}

// ErrorKind classifies DFA errors into categories
type ErrorKind uint8

const (
	// StateLimitExceeded indicates too many states were created
	StateLimitExceeded ErrorKind = iota

	// InvalidConfig indicates configuration validation failed
	InvalidConfig
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case StateLimitExceeded:
		return "StateLimitExceeded"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// DFAError is an error produced during determinization
type DFAError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *DFAError) Error() string {
	return fmt.Sprintf("dfa: %s: %s", e.Kind, e.Message)
}
