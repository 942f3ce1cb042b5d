package automaton

import "github.com/bits-and-blooms/bitset"

// closure returns the set of states reachable from state by zero or more
// epsilon transitions, always including state itself. The traversal is a
// plain worklist: pop a state, push every epsilon successor not seen before.
// The membership check before pushing is what guarantees termination on
// cyclic epsilon chains.
func (n *NFA) closure(state int) *bitset.BitSet {
	result := bitset.New(uint(len(n.states)))
	result.Set(uint(state))

	stack := []int{state}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		eps := n.destinations(current, Epsilon)
		if eps == nil {
			continue
		}
		for i, ok := eps.NextSet(0); ok; i, ok = eps.NextSet(i + 1) {
			if !result.Test(i) {
				result.Set(i)
				stack = append(stack, int(i))
			}
		}
	}

	return result
}

// closureSet returns the union of closure(s) over every state s in set.
func (n *NFA) closureSet(set *bitset.BitSet) *bitset.BitSet {
	result := bitset.New(uint(len(n.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		result.InPlaceUnion(n.closure(int(i)))
	}
	return result
}

// Closure returns the epsilon closure of the named state as sorted state
// names. Unknown names yield an UnknownStateError.
func (n *NFA) Closure(state string) ([]string, error) {
	i, ok := n.index[state]
	if !ok {
		return nil, &UnknownStateError{State: state}
	}
	return n.subsetNames(n.closure(i)), nil
}
