package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wireDefinition = `Enter number of states: 3
Enter states: A B C
Enter number of symbols: 2
Enter symbols (separate by space): 0 1
Enter start state: A
Enter number of accepting states: 1
Enter accepting states: C
Enter number of transitions: 4
Enter transition (fromState symbol toState): A 0 A
Enter transition (fromState symbol toState): A 0 B
Enter transition (fromState symbol toState): A 1 A
Enter transition (fromState symbol toState): B 1 C
`

func TestParseDefinition(t *testing.T) {
	t.Run("wireFormat", func(t *testing.T) {
		def, err := ParseDefinition(wireDefinition)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, def.States)
		assert.Equal(t, []string{"0", "1"}, def.Symbols)
		assert.Equal(t, "A", def.Start)
		assert.Equal(t, []string{"C"}, def.Accepting)
		require.Len(t, def.Transitions, 4)
		assert.Equal(t, Transition{From: "B", Symbol: "1", To: "C"}, def.Transitions[3])
	})

	t.Run("malformedTransition", func(t *testing.T) {
		_, err := ParseDefinition("Enter states: A\nEnter transition (fromState symbol toState): A 0\n")
		assert.Error(t, err)
	})

	t.Run("unrecognizedLine", func(t *testing.T) {
		_, err := ParseDefinition("Enter states: A\nsomething else: 1\n")
		assert.Error(t, err)
	})

	t.Run("noStates", func(t *testing.T) {
		_, err := ParseDefinition("Enter start state: A\n")
		var invalid *InvalidAutomatonError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestDecodeDefinition(t *testing.T) {
	doc := `
states: [A, B, C]
symbols: ["0", "1"]
start: A
accepting: [C]
transitions:
  - {from: A, symbol: "0", to: A}
  - {from: A, symbol: "0", to: B}
  - {from: A, symbol: "1", to: A}
  - {from: B, symbol: "1", to: C}
`
	def, err := DecodeDefinition(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "A", def.Start)
	assert.Len(t, def.Transitions, 4)

	nfa, err := def.Compile()
	require.NoError(t, err)
	assert.True(t, nfa.Run("001"))
}

func TestDefinitionCompile(t *testing.T) {
	t.Run("endToEnd", func(t *testing.T) {
		def, err := ParseDefinition(wireDefinition)
		require.NoError(t, err)
		nfa, err := def.Compile()
		require.NoError(t, err)

		dfa, err := Determinize(nfa, DefaultDeterminizeWorkLimit)
		require.NoError(t, err)
		assert.Equal(t, []string{"q0", "q1", "q2"}, dfa.States())
		assert.True(t, dfa.Run("001"))
	})

	t.Run("epsilonTransition", func(t *testing.T) {
		def := &Definition{
			States:    []string{"A", "B", "C"},
			Symbols:   []string{"1"},
			Start:     "A",
			Accepting: []string{"C"},
			Transitions: []Transition{
				{From: "A", Symbol: "#", To: "B"},
				{From: "B", Symbol: "1", To: "C"},
			},
		}
		nfa, err := def.Compile()
		require.NoError(t, err)
		assert.True(t, nfa.Run("1"))
	})

	t.Run("multiCharSymbol", func(t *testing.T) {
		def := &Definition{States: []string{"A"}, Symbols: []string{"ab"}, Start: "A"}
		_, err := def.Compile()
		var invalid *InvalidAutomatonError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("undeclaredTransitionState", func(t *testing.T) {
		def := &Definition{
			States:      []string{"A"},
			Symbols:     []string{"0"},
			Start:       "A",
			Transitions: []Transition{{From: "A", Symbol: "0", To: "Z"}},
		}
		_, err := def.Compile()
		var unknown *UnknownStateError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Z", unknown.State)
	})

	t.Run("undeclaredTransitionSymbol", func(t *testing.T) {
		def := &Definition{
			States:      []string{"A"},
			Symbols:     []string{"0"},
			Start:       "A",
			Transitions: []Transition{{From: "A", Symbol: "9", To: "A"}},
		}
		_, err := def.Compile()
		var unknown *UnknownSymbolError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, '9', unknown.Symbol)
	})
}
