package automaton

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Definition is the structured boundary description of an automaton, as
// produced by an external collaborator (a form, or an AI diagram
// extractor). It carries the declared states, alphabet, start state,
// accepting states and the transition triples. The referenced-state
// invariant is expected to hold already, but Compile re-validates it.
type Definition struct {
	States      []string     `json:"states" yaml:"states"`
	Symbols     []string     `json:"symbols" yaml:"symbols"`
	Start       string       `json:"start" yaml:"start"`
	Accepting   []string     `json:"accepting" yaml:"accepting"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// Transition is one (from, symbol, to) triple. Symbol "#" denotes epsilon.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// DecodeDefinition reads a YAML (or JSON) encoded Definition.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode automaton definition: %w", err)
	}
	return &def, nil
}

// ParseDefinition reads the line-oriented wire format used by the diagram
// extractor and the input form:
//
//	Enter number of states: 3
//	Enter states: A B C
//	Enter number of symbols: 2
//	Enter symbols (separate by space): 0 1
//	Enter start state: A
//	Enter number of accepting states: 1
//	Enter accepting states: C
//	Enter number of transitions: 2
//	Enter transition (fromState symbol toState): A 0 B
//	Enter transition (fromState symbol toState): B 1 C
//
// Count lines are advisory and skipped; each labeled line's value is what
// counts.
func ParseDefinition(text string) (*Definition, error) {
	def := &Definition{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed definition line %q", line)
		}
		value = strings.TrimSpace(value)

		switch {
		case strings.HasPrefix(label, "Enter number of"):
			// Advisory counts only.
		case strings.HasPrefix(label, "Enter states"):
			def.States = strings.Fields(value)
		case strings.HasPrefix(label, "Enter symbols"):
			def.Symbols = strings.Fields(value)
		case strings.HasPrefix(label, "Enter start state"):
			def.Start = value
		case strings.HasPrefix(label, "Enter accepting states"):
			def.Accepting = strings.Fields(value)
		case strings.HasPrefix(label, "Enter transition"):
			parts := strings.Fields(value)
			if len(parts) != 3 {
				return nil, fmt.Errorf("malformed transition %q", value)
			}
			def.Transitions = append(def.Transitions, Transition{
				From:   parts[0],
				Symbol: parts[1],
				To:     parts[2],
			})
		default:
			return nil, fmt.Errorf("unrecognized definition line %q", line)
		}
	}

	if len(def.States) == 0 {
		return nil, &InvalidAutomatonError{Reason: "definition declares no states"}
	}
	return def, nil
}

// Compile builds the NFA from the definition, validating states, alphabet
// and every transition triple eagerly.
func (d *Definition) Compile() (*NFA, error) {
	alphabet := make([]rune, 0, len(d.Symbols))
	for _, s := range d.Symbols {
		r, err := symbolRune(s)
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, r)
	}

	nfa, err := NewNFA(d.States, alphabet, d.Start, d.Accepting)
	if err != nil {
		return nil, err
	}

	for _, t := range d.Transitions {
		r, err := symbolRune(t.Symbol)
		if err != nil {
			return nil, err
		}
		if err := nfa.AddTransition(t.From, r, t.To); err != nil {
			return nil, err
		}
	}
	return nfa, nil
}

func symbolRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, &InvalidAutomatonError{
			Reason: fmt.Sprintf("symbol %q must be a single character", s),
		}
	}
	return r, nil
}
