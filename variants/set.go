package variants

import (
	"sort"
)

// Set is a deduplicated, unordered collection of sequences. Iteration
// order over the underlying map is not stable; callers that need
// determinism should use Sorted.
type Set map[string]bool

// Creates a set from the specified sequences
func NewSet(seqs ...string) Set {
	s := make(Set)
	for _, sq := range seqs {
		s[sq] = true
	}

	return s
}

func (s Set) Add(seq string) {
	s[seq] = true
}

func (s Set) Contains(seq string) bool {
	return s[seq]
}

func (s Set) Len() int {
	return len(s)
}

// Adds all sequences from the other set
func (s Set) Merge(other Set) {
	for sq := range other {
		s[sq] = true
	}
}

// Returns the members in lexicographic order
func (s Set) Sorted() []string {
	ret := make([]string, 0, len(s))
	for sq := range s {
		ret = append(ret, sq)
	}

	sort.Strings(ret)
	return ret
}
