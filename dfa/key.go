package dfa

import (
	"hash/fnv"

	"github.com/coregx/tinyregex/nfa"
)

// StateKey identifies a DFA state by its NFA label set for cache lookups.
//
// The same label set produces the same key regardless of insertion order
// because the labels are sorted before hashing. Keys are only a fast path:
// lookups verify label-set equality to rule out hash collisions.
type StateKey uint64

// ComputeStateKey hashes a sorted label set with FNV-1a.
func ComputeStateKey(labels []nfa.StateID) StateKey {
	h := fnv.New64a()
	for _, lbl := range labels {
		// hash.Hash.Write never returns an error per documentation
		_, _ = h.Write([]byte{
			byte(lbl),
			byte(lbl >> 8),
			byte(lbl >> 16),
			byte(lbl >> 24),
		})
	}
	return StateKey(h.Sum64())
}

// sortLabels performs insertion sort on NFA state labels.
//
// Label sets are small and usually nearly sorted already (epsilon closures
// emit labels in worklist order), so insertion sort beats the general-purpose
// sort and allocates nothing.
func sortLabels(labels []nfa.StateID) {
	for i := 1; i < len(labels); i++ {
		key := labels[i]
		j := i - 1
		for j >= 0 && labels[j] > key {
			labels[j+1] = labels[j]
			j--
		}
		labels[j+1] = key
	}
}

// equalLabels reports whether two sorted label sets are identical.
func equalLabels(a, b []nfa.StateID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
