package automaton

import (
	"fmt"
	"strings"
)

// Dot renders the DFA as a Graphviz digraph for an external layout tool.
// One node per state, labeled with its member NFA subset; accepting states
// get a double border; a synthetic point node marks the start state. Nodes
// are emitted in discovery order and edges per state in symbol order, so
// the output is deterministic.
func (d *DFA) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph DFA {\n")
	sb.WriteString("    rankdir=LR;\n")

	for i, name := range d.names {
		shape := "circle"
		if d.accept.Test(uint(i)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    %s [label=%q, shape=%s];\n",
			name, subsetLabel(d.subsets[i]), shape)
	}

	sb.WriteString("    start [shape=point];\n")
	fmt.Fprintf(&sb, "    start -> %s;\n", d.names[0])

	// The table holds one destination per (state, symbol), but guard
	// against emitting the same triple twice anyway.
	type edge struct {
		from, to int
		symbol   rune
	}
	seen := make(map[edge]struct{})
	for i := range d.names {
		for _, symbol := range d.alphabet {
			next, ok := d.trans[i][symbol]
			if !ok {
				continue
			}
			e := edge{from: i, to: next, symbol: symbol}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			fmt.Fprintf(&sb, "    %s -> %s [label=%q];\n",
				d.names[i], d.names[next], string(symbol))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
