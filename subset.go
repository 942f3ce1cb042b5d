package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// frozenSubset is an immutable snapshot of a discovered subset of NFA
// states, together with the DFA state assigned to it on first discovery.
// Subsets are frozen once named and never merged or renamed afterwards.
type frozenSubset struct {
	members *bitset.BitSet
	values  []int // ascending NFA state ids
	state   int   // assigned DFA state
}

func freezeSubset(members *bitset.BitSet, state int) *frozenSubset {
	values := make([]int, 0, members.Count())
	for i, ok := members.NextSet(0); ok; i, ok = members.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return &frozenSubset{members: members, values: values, state: state}
}

// subsetKey canonicalizes a subset for map lookup. Two subsets get the same
// key iff they are set-equal, so the builtin map replaces the hashed subset
// keys a mutable set type would need.
func subsetKey(set *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(i)))
	}
	return sb.String()
}
