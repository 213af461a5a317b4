// Package literal represents literal byte sequences extracted from patterns.
//
// A pattern in the restricted grammar that contains no repetition operator is
// just an alternation of plain literals; such patterns never need an
// automaton. The extractor recognizes them and hands the literal sequence to
// the engine, which serves matches by byte comparison or, for larger
// alternations, an Aho-Corasick automaton.
package literal

// Literal is a concrete byte sequence extracted from a pattern. Complete
// indicates the literal covers an entire alternation branch, so matching it
// alone decides acceptance of that branch.
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents an entire branch.
	Complete bool
}

// NewLiteral creates a new Literal
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a sequence of alternative literals, one per alternation branch.
type Seq struct {
	literals []Literal
}

// NewSeq creates an empty sequence
func NewSeq() *Seq {
	return &Seq{}
}

// Push appends a literal to the sequence
func (s *Seq) Push(l Literal) {
	s.literals = append(s.literals, l)
}

// Len returns the number of literals
func (s *Seq) Len() int {
	return len(s.literals)
}

// IsEmpty returns true if the sequence holds no literals
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Get returns the i-th literal
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// AllComplete returns true if every literal covers its entire branch
func (s *Seq) AllComplete() bool {
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}
