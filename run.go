package automaton

import "github.com/bits-and-blooms/bitset"

// Run reports whether the NFA accepts the input, i.e. whether some run over
// the input, honoring epsilon transitions, ends in an accepting state. The
// simulation tracks the full set of states the automaton could be in after
// each symbol, closing it under epsilon moves.
func (n *NFA) Run(input string) bool {
	current := n.closure(n.start)
	for _, symbol := range input {
		move := bitset.New(uint(len(n.states)))
		for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
			if dests := n.destinations(int(i), symbol); dests != nil {
				move.InPlaceUnion(dests)
			}
		}
		if move.Count() == 0 {
			return false
		}
		current = n.closureSet(move)
	}
	return current.IntersectionCardinality(n.accept) > 0
}
