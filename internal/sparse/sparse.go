// Package sparse provides a sparse set over dense uint32 values.
//
// The set supports O(1) insertion and membership testing and keeps a dense
// slice of its elements in insertion order. NFA state labels are dense
// (0..n-1), which makes this the natural structure for epsilon-closure
// computation: the dense slice doubles as the worklist.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// The sparse slice maps a value to its index in the dense slice; a value v
// is a member iff sparse[v] points at a dense entry holding v. This is the
// classic trick that makes Clear O(1) without zeroing the sparse slice.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates an empty set accepting values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. Inserting a present value is a no-op.
// Values at or above capacity are ignored.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	if value >= uint32(len(s.sparse)) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains returns true if the value is in the set
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements in the set
func (s *Set) Len() int {
	return len(s.dense)
}

// At returns the i-th inserted element. Indexing the dense slice while
// inserting is safe, which is what closure fixed-point loops rely on.
func (s *Set) At(i int) uint32 {
	return s.dense[i]
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Clear removes all elements in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}
