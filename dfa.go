package automaton

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DFA is the result of determinizing an NFA. Each DFA state is a distinct
// reachable subset of NFA states, named q0, q1, ... in discovery order;
// q0 is always the start state. The transition table maps every (state,
// symbol) pair to at most one destination, and there are no epsilon moves.
type DFA struct {
	names    []string   // canonical names, index is the DFA state id
	subsets  [][]string // member NFA state names, ascending, per state
	alphabet []rune     // sorted, inherited from the NFA
	trans    []map[rune]int
	accept   *bitset.BitSet
}

// NumStates returns how many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.names)
}

// States returns the canonical state names in discovery order.
func (d *DFA) States() []string {
	return slices.Clone(d.names)
}

// Start returns the name of the start state.
func (d *DFA) Start() string {
	return d.names[0]
}

// Alphabet returns the symbols of the automaton in sorted order.
func (d *DFA) Alphabet() []rune {
	return slices.Clone(d.alphabet)
}

// Subset returns the NFA states underlying the named DFA state, ascending,
// or nil if no such state exists.
func (d *DFA) Subset(name string) []string {
	i, ok := d.stateID(name)
	if !ok {
		return nil
	}
	return slices.Clone(d.subsets[i])
}

// IsAccept reports whether the named state is accepting, i.e. whether its
// underlying subset intersects the NFA's accepting states.
func (d *DFA) IsAccept(name string) bool {
	i, ok := d.stateID(name)
	if !ok {
		return false
	}
	return d.accept.Test(uint(i))
}

// Step performs a single deterministic transition lookup. It returns the
// destination state name, or false if the state has no successor for the
// symbol.
func (d *DFA) Step(state string, symbol rune) (string, bool) {
	i, ok := d.stateID(state)
	if !ok {
		return "", false
	}
	next, ok := d.trans[i][symbol]
	if !ok {
		return "", false
	}
	return d.names[next], true
}

// Run reports whether the automaton accepts the input, following exactly
// one transition per symbol from the start state. A missing transition
// rejects immediately.
func (d *DFA) Run(input string) bool {
	state := 0
	for _, symbol := range input {
		next, ok := d.trans[state][symbol]
		if !ok {
			return false
		}
		state = next
	}
	return d.accept.Test(uint(state))
}

// String renders the per-state transition listing, one block per state in
// discovery order, with symbols in sorted order.
func (d *DFA) String() string {
	var sb strings.Builder
	for i, name := range d.names {
		fmt.Fprintf(&sb, "State %s %s", name, subsetLabel(d.subsets[i]))
		if d.accept.Test(uint(i)) {
			sb.WriteString(" (accepting)")
		}
		sb.WriteString(":\n")
		for _, symbol := range d.alphabet {
			next, ok := d.trans[i][symbol]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "    On symbol '%c' -> %s %s\n",
				symbol, d.names[next], subsetLabel(d.subsets[next]))
		}
	}
	return sb.String()
}

func (d *DFA) stateID(name string) (int, bool) {
	i := slices.Index(d.names, name)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// subsetLabel formats member NFA states as {A B}.
func subsetLabel(members []string) string {
	return "{" + strings.Join(members, " ") + "}"
}
