// Package nfa holds the compiled automaton: a flat sequence of states with
// ordered transition lists, produced once by Compile and immutable
// afterwards. States are referred to by integer id, so the Kleene
// back-edges never form owning cycles.
package nfa

import (
	"fmt"

	"github.com/regexplay/rex/syntax"
)

// StateID indexes a state within the automaton. State 0 is the start
// state; the highest id is the single accept state.
type StateID int

// TransitionKind discriminates transition predicates.
type TransitionKind uint8

const (
	// KindEpsilon consumes no input.
	KindEpsilon TransitionKind = iota

	// KindGroupEnter and KindGroupExit are epsilon transitions tagged
	// with a capture group boundary.
	KindGroupEnter
	KindGroupExit

	// KindSymbol consumes exactly one codepoint accepted by Set.
	KindSymbol
)

// Transition is one outgoing edge: a predicate plus a target state.
type Transition struct {
	Kind   TransitionKind
	Group  int             // KindGroupEnter / KindGroupExit
	Set    *syntax.CharSet // KindSymbol
	Target StateID
}

// IsEpsilon reports whether the transition consumes no input. Group
// boundary tags are epsilon transitions.
func (t Transition) IsEpsilon() bool {
	return t.Kind != KindSymbol
}

// Accepts reports whether a symbol transition consumes ch.
func (t Transition) Accepts(ch rune) bool {
	return t.Kind == KindSymbol && t.Set.CharIn(ch)
}

// Label renders the predicate for display on a graph edge.
func (t Transition) Label() string {
	switch t.Kind {
	case KindEpsilon:
		return "ε"
	case KindGroupEnter, KindGroupExit:
		return fmt.Sprintf("ε[g=%d]", t.Group)
	default:
		return t.Set.String()
	}
}

// NFA is a compiled epsilon-NFA. It is safe for concurrent read-only use.
type NFA struct {
	states   [][]Transition
	capCount int
	capNames []string
}

// New builds an automaton from raw transition tables. It is the entry
// point for generated code; Compile is the normal constructor.
func New(states [][]Transition, capCount int, capNames []string) *NFA {
	return &NFA{states: states, capCount: capCount, capNames: capNames}
}

// Start returns the start state id.
func (n *NFA) Start() StateID {
	return 0
}

// Accept returns the single accept state id.
func (n *NFA) Accept() StateID {
	return StateID(len(n.states) - 1)
}

// StateCount returns the number of states.
func (n *NFA) StateCount() int {
	return len(n.states)
}

// StateIDs returns the ordered list of state ids.
func (n *NFA) StateIDs() []StateID {
	ids := make([]StateID, len(n.states))
	for i := range ids {
		ids[i] = StateID(i)
	}
	return ids
}

// TransitionsOf returns the ordered outgoing transitions of s. The slice
// is owned by the automaton and must not be modified.
func (n *NFA) TransitionsOf(s StateID) []Transition {
	if s < 0 || int(s) >= len(n.states) {
		return nil
	}
	return n.states[s]
}

// CaptureCount returns the number of capture slots including group 0.
func (n *NFA) CaptureCount() int {
	return n.capCount
}

// SubexpNames returns the names of the capture groups. Index 0 is always
// "" (the whole match); unnamed groups are "".
func (n *NFA) SubexpNames() []string {
	names := make([]string, len(n.capNames))
	copy(names, n.capNames)
	return names
}

// String returns a short description of the automaton.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, captures: %d}", len(n.states), n.capCount)
}
