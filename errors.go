package automaton

import "fmt"

// UnknownStateError reports a transition that references a state which was
// never declared on the automaton.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.State)
}

// UnknownSymbolError reports a transition over a symbol outside the declared
// alphabet. Epsilon is always a valid transition symbol and never triggers
// this error.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
}

// InvalidAutomatonError reports an automaton whose declared structure is
// unusable: empty state set, missing start state, or an alphabet that claims
// the reserved epsilon symbol as a real input.
type InvalidAutomatonError struct {
	Reason string
}

func (e *InvalidAutomatonError) Error() string {
	return "invalid automaton: " + e.Reason
}

// ExplorationLimitError is returned by Determinize when subset construction
// discovers more DFA states than the caller's work limit allows. Subset
// construction is exponential in the number of NFA states in the worst case,
// so callers handling untrusted input should keep the limit finite.
type ExplorationLimitError struct {
	Limit int
}

func (e *ExplorationLimitError) Error() string {
	return fmt.Sprintf("determinize exceeded %d explored subsets", e.Limit)
}
