package literal

import (
	"strings"

	"github.com/coregx/tinyregex/nfa"
)

// Extract returns the complete literal alternatives denoted by a star-free
// pattern, or nil when the pattern needs an automaton.
//
// Because alternation is right-associative and consumes the remainder of the
// pattern, splitting on every '|' yields exactly the branch list. A branch
// containing '*' is not a plain literal, and an empty branch (or an empty
// pattern) is malformed; both disqualify extraction.
//
// Example:
//
//	seq := literal.Extract("abc|de")
//	// seq.Len() == 2: "abc" and "de", both complete
func Extract(pattern string) *Seq {
	if pattern == "" {
		return nil
	}

	branches := strings.Split(pattern, string(nfa.Alt))
	seq := NewSeq()
	for _, branch := range branches {
		if branch == "" {
			return nil
		}
		if strings.IndexByte(branch, nfa.Star) >= 0 {
			return nil
		}
		seq.Push(NewLiteral([]byte(branch), true))
	}
	return seq
}
