package nfa

// Builder compiles pattern strings into NFAs.
//
// The builder owns the label counter, so builds are independent and
// reproducible: every call to Build starts labeling from 0 and the resulting
// labels are unique within the returned automaton. A Builder is not safe for
// concurrent use; create one per goroutine.
type Builder struct {
	next StateID
}

// NewBuilder creates a new NFA builder
func NewBuilder() *Builder {
	return &Builder{}
}

// fragment is a partially built automaton: an ordered list of states whose
// last element is the current tail, plus the edges added so far.
type fragment struct {
	states []*State
	edges  []Edge
}

func (f *fragment) tail() *State {
	return f.states[len(f.states)-1]
}

// startState returns the state currently flagged as the fragment's start.
func (f *fragment) startState() *State {
	for _, s := range f.states {
		if s.start {
			return s
		}
	}
	return nil
}

// goalState returns the state currently flagged as the fragment's goal.
func (f *fragment) goalState() *State {
	for _, s := range f.states {
		if s.goal {
			return s
		}
	}
	return nil
}

// Build compiles a pattern into an NFA.
//
// The grammar is a sequence of literal bytes, where '*' repeats the
// immediately preceding literal zero or more times and '|' splits the
// pattern into alternatives. '|' is right-associative and consumes the
// entire remainder: "a|b|c" parses as "a|(b|c)".
//
// Build fails with a *ParseError when the pattern is empty, when '*' has no
// preceding literal, or when '|' has an empty branch on either side.
//
// Example:
//
//	n, err := nfa.NewBuilder().Build("a*bcd*")
//	if err != nil {
//	    log.Fatal(err)
//	}
func (b *Builder) Build(pattern string) (*NFA, error) {
	b.next = 0

	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Err: ErrEmptyPattern}
	}

	frag, err := b.build(pattern, []byte(pattern))
	if err != nil {
		return nil, err
	}
	return newNFA(frag.states, frag.edges), nil
}

// build constructs a fragment for rest, a suffix of pattern. It is invoked
// recursively for the right-hand side of an alternation. The full pattern is
// threaded through only for error reporting.
func (b *Builder) build(pattern string, rest []byte) (*fragment, error) {
	frag := &fragment{}

	start := b.newState()
	start.start = true
	frag.states = append(frag.states, start)

	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; c {
		case Star:
			// The cycle needs the repeated literal's edge between tail and
			// its predecessor, so at least two states must exist.
			if len(frag.states) < 2 {
				return nil, &ParseError{Pattern: pattern, Op: Star, Err: ErrDanglingStar}
			}
			tail := frag.states[len(frag.states)-1]
			prev := frag.states[len(frag.states)-2]
			frag.edges = append(frag.edges,
				Edge{From: tail.id, To: prev.id, Label: Epsilon},
				Edge{From: prev.id, To: tail.id, Label: Epsilon},
			)

		case Alt:
			// Alternation consumes the whole remainder; splice returns the
			// completed fragment.
			return b.splice(pattern, frag, rest[i+1:])

		default:
			tail := frag.tail()
			next := b.newState()
			frag.edges = append(frag.edges, Edge{From: tail.id, To: next.id, Label: ByteToken(c)})
			frag.states = append(frag.states, next)
		}
	}

	frag.tail().goal = true
	return frag, nil
}

// splice joins the fragment built so far (the left branch) with a
// recursively built right branch under a new shared start and goal state.
func (b *Builder) splice(pattern string, left *fragment, rest []byte) (*fragment, error) {
	// An alternation needs a nonempty branch on each side.
	if len(left.states) < 2 {
		return nil, &ParseError{Pattern: pattern, Op: Alt, Err: ErrEmptyBranch}
	}
	if len(rest) == 0 {
		return nil, &ParseError{Pattern: pattern, Op: Alt, Err: ErrEmptyBranch}
	}

	leftStart := left.states[0]
	leftStart.start = false
	leftGoal := left.tail()

	right, err := b.build(pattern, rest)
	if err != nil {
		return nil, err
	}
	rightStart := right.startState()
	rightStart.start = false
	rightGoal := right.goalState()
	rightGoal.goal = false

	merged := &fragment{
		states: append(left.states, right.states...),
		edges:  append(left.edges, right.edges...),
	}

	sharedStart := b.newState()
	sharedStart.start = true
	sharedGoal := b.newState()
	sharedGoal.goal = true

	merged.edges = append(merged.edges,
		Edge{From: sharedStart.id, To: leftStart.id, Label: Epsilon},
		Edge{From: sharedStart.id, To: rightStart.id, Label: Epsilon},
		Edge{From: leftGoal.id, To: sharedGoal.id, Label: Epsilon},
		Edge{From: rightGoal.id, To: sharedGoal.id, Label: Epsilon},
	)
	merged.states = append(merged.states, sharedStart, sharedGoal)
	return merged, nil
}

func (b *Builder) newState() *State {
	s := &State{id: b.next}
	b.next++
	return s
}
