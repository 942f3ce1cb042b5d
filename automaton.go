package automaton

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved symbol for transitions that consume no input. It
// is always a valid transition label and must never be declared as part of
// an automaton's alphabet.
const Epsilon = '#'

// NFA represents a non-deterministic finite automaton over single-rune
// symbols. States are declared up front by name and held in sorted order;
// internally each state is addressed by its index into that order, so that
// every traversal of the automaton is reproducible. Transitions are added
// with AddTransition and may include epsilon moves.
type NFA struct {
	// Sorted state names; index into this slice is the internal state id.
	states []string
	index  map[string]int

	// Sorted alphabet, epsilon excluded.
	alphabet []rune

	start  int
	accept *bitset.BitSet

	// trans[state][symbol] is the set of destination state ids.
	trans []map[rune]*bitset.BitSet
}

// NewNFA declares an automaton with the given states, alphabet, start state
// and accepting states. All structural problems are reported eagerly: an
// empty state set, a start state or accepting state that was never declared,
// or an alphabet claiming the reserved epsilon symbol. Multiple violations
// are joined into a single error.
func NewNFA(states []string, alphabet []rune, start string, accepting []string) (*NFA, error) {
	if len(states) == 0 {
		return nil, &InvalidAutomatonError{Reason: "no states declared"}
	}

	sorted := slices.Clone(states)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	index := make(map[string]int, len(sorted))
	for i, name := range sorted {
		index[name] = i
	}

	symbols := slices.Clone(alphabet)
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	var errs []error
	if slices.Contains(symbols, Epsilon) {
		errs = append(errs, &InvalidAutomatonError{
			Reason: fmt.Sprintf("alphabet contains the reserved epsilon symbol %q", Epsilon),
		})
	}

	startIdx, ok := index[start]
	if !ok {
		errs = append(errs, &InvalidAutomatonError{
			Reason: fmt.Sprintf("start state %q is not a declared state", start),
		})
	}

	accept := bitset.New(uint(len(sorted)))
	for _, name := range accepting {
		i, ok := index[name]
		if !ok {
			errs = append(errs, &UnknownStateError{State: name})
			continue
		}
		accept.Set(uint(i))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	trans := make([]map[rune]*bitset.BitSet, len(sorted))
	for i := range trans {
		trans[i] = make(map[rune]*bitset.BitSet)
	}

	return &NFA{
		states:   sorted,
		index:    index,
		alphabet: symbols,
		start:    startIdx,
		accept:   accept,
		trans:    trans,
	}, nil
}

// AddTransition inserts to into the destination set for (from, symbol).
// Both states must be declared and the symbol must be in the alphabet or be
// Epsilon; otherwise the transition relation is left untouched and a typed
// error is returned.
func (n *NFA) AddTransition(from string, symbol rune, to string) error {
	src, ok := n.index[from]
	if !ok {
		return &UnknownStateError{State: from}
	}
	dst, ok := n.index[to]
	if !ok {
		return &UnknownStateError{State: to}
	}
	if symbol != Epsilon && !slices.Contains(n.alphabet, symbol) {
		return &UnknownSymbolError{Symbol: symbol}
	}

	dests := n.trans[src][symbol]
	if dests == nil {
		dests = bitset.New(uint(len(n.states)))
		n.trans[src][symbol] = dests
	}
	dests.Set(uint(dst))
	return nil
}

// States returns the declared state names in sorted order.
func (n *NFA) States() []string {
	return slices.Clone(n.states)
}

// Alphabet returns the declared symbols in sorted order, epsilon excluded.
func (n *NFA) Alphabet() []rune {
	return slices.Clone(n.alphabet)
}

// Start returns the start state name.
func (n *NFA) Start() string {
	return n.states[n.start]
}

// IsAccept reports whether the named state is accepting. Unknown names are
// simply not accepting.
func (n *NFA) IsAccept(state string) bool {
	i, ok := n.index[state]
	if !ok {
		return false
	}
	return n.accept.Test(uint(i))
}

// NumStates returns how many states this automaton has.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// destinations returns the destination set for (state, symbol), or nil if
// the state has no such transition.
func (n *NFA) destinations(state int, symbol rune) *bitset.BitSet {
	return n.trans[state][symbol]
}

// subsetNames maps a set of internal state ids to their names, ascending.
func (n *NFA) subsetNames(set *bitset.BitSet) []string {
	names := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		names = append(names, n.states[i])
	}
	return names
}
