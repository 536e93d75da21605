package nfa

import (
	"fmt"
	"strings"
)

// Dot renders the automaton as a Graphviz digraph: a bare arrow into the
// start state, a double-circled accept state, and one labeled edge per
// transition. The output feeds graph viewers directly.
func (n *NFA) Dot(name string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %s {\n", dotID(name))
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=circle];\n")
	fmt.Fprintf(&b, "\t%d [shape=doublecircle];\n", n.Accept())
	b.WriteString("\t__start [shape=none, label=\"\"];\n")
	fmt.Fprintf(&b, "\t__start -> %d;\n", n.Start())

	for s, transitions := range n.states {
		for _, t := range transitions {
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", s, t.Target, t.Label())
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func dotID(name string) string {
	if name == "" {
		return "nfa"
	}
	clean := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return '_'
	}, name)
	if clean[0] >= '0' && clean[0] <= '9' {
		clean = "_" + clean
	}
	return clean
}
