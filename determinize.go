package automaton

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit is a decent work limit for Determinize when
// the caller has no better bound for its inputs.
const DefaultDeterminizeWorkLimit = 10000

// Determinize converts the NFA into an equivalent DFA by subset
// construction. The start subset is the epsilon closure of the NFA start
// state, and every move set is closed under epsilon transitions before it is
// named, so acceptance semantics are preserved for automata with epsilon
// moves. Subsets are explored breadth-first; each distinct subset is
// assigned the next canonical name (q0, q1, ...) on first discovery.
// States, symbols and subset members are always iterated in sorted order,
// so identical inputs produce byte-identical automata.
//
// Worst case complexity: exponential in the number of NFA states. workLimit
// bounds how many subsets may be discovered before construction gives up
// with an ExplorationLimitError; values < 1 mean
// DefaultDeterminizeWorkLimit.
func Determinize(n *NFA, workLimit int) (*DFA, error) {
	if workLimit < 1 {
		workLimit = DefaultDeterminizeWorkLimit
	}

	initial := n.closure(n.start)
	if initial.Count() == 0 {
		// Cannot happen: closure always contains its seed.
		return nil, &InvalidAutomatonError{Reason: "start state has empty closure"}
	}

	// Append-only list of discovered subsets; the canonicalized subset key
	// indexes into it, so set-equal subsets always resolve to the same DFA
	// state.
	discovered := []*frozenSubset{freezeSubset(initial, 0)}
	byKey := map[string]int{subsetKey(initial): 0}

	trans := []map[rune]int{make(map[rune]int)}
	accept := bitset.New(uint(workLimit))
	if initial.IntersectionCardinality(n.accept) > 0 {
		accept.Set(0)
	}

	worklist := []*frozenSubset{discovered[0]}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range n.alphabet {
			move := bitset.New(uint(len(n.states)))
			for _, s := range current.values {
				if dests := n.destinations(s, symbol); dests != nil {
					move.InPlaceUnion(dests)
				}
			}
			if move.Count() == 0 {
				continue
			}

			closed := n.closureSet(move)
			key := subsetKey(closed)
			id, ok := byKey[key]
			if !ok {
				if len(discovered) >= workLimit {
					return nil, &ExplorationLimitError{Limit: workLimit}
				}
				id = len(discovered)
				next := freezeSubset(closed, id)
				discovered = append(discovered, next)
				byKey[key] = id
				trans = append(trans, make(map[rune]int))
				if closed.IntersectionCardinality(n.accept) > 0 {
					accept.Set(uint(id))
				}
				worklist = append(worklist, next)
			}
			trans[current.state][symbol] = id
		}
	}

	names := make([]string, len(discovered))
	subsets := make([][]string, len(discovered))
	for i, sub := range discovered {
		names[i] = canonicalName(i)
		subsets[i] = n.subsetNames(sub.members)
	}

	return &DFA{
		names:    names,
		subsets:  subsets,
		alphabet: n.Alphabet(),
		trans:    trans,
		accept:   accept,
	}, nil
}

func canonicalName(id int) string {
	return "q" + strconv.Itoa(id)
}
