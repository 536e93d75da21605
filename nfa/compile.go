package nfa

import (
	"github.com/regexplay/rex/syntax"
)

// Compile lowers a parse tree into an epsilon-NFA by Thompson
// construction. Every subpattern becomes a fragment with a single entry
// and a single exit; the whole pattern is wrapped in the group 0 boundary
// so the match span is tracked like any other capture. The accept state is
// created last, which pins it to the highest id.
func Compile(tree *syntax.RegexTree) *NFA {
	c := &compiler{}

	start := c.newState()
	frag := c.compile(tree.Root)
	accept := c.newState()

	c.add(start, Transition{Kind: KindGroupEnter, Group: 0, Target: frag.entry})
	c.add(frag.exit, Transition{Kind: KindGroupExit, Group: 0, Target: accept})

	names := make([]string, len(tree.Caplist))
	copy(names, tree.Caplist)

	return &NFA{
		states:   c.states,
		capCount: tree.Captop,
		capNames: names,
	}
}

// fragment is a compiled subautomaton with one entry and one exit state.
type fragment struct {
	entry, exit StateID
}

type compiler struct {
	states [][]Transition
}

func (c *compiler) newState() StateID {
	c.states = append(c.states, nil)
	return StateID(len(c.states) - 1)
}

func (c *compiler) add(from StateID, t Transition) {
	c.states[from] = append(c.states[from], t)
}

func (c *compiler) epsilon(from, to StateID) {
	c.add(from, Transition{Kind: KindEpsilon, Target: to})
}

func (c *compiler) compile(node *syntax.RegexNode) fragment {
	switch node.T {
	case syntax.NtEmpty:
		return c.emptyFragment()

	case syntax.NtLiteral:
		return c.symbolFragment(syntax.CharClass(node.Ch))

	case syntax.NtSet:
		return c.symbolFragment(node.Set)

	case syntax.NtConcat:
		a := c.compile(node.Children[0])
		b := c.compile(node.Children[1])
		c.epsilon(a.exit, b.entry)
		return fragment{a.entry, b.exit}

	case syntax.NtAlternate:
		q0 := c.newState()
		a := c.compile(node.Children[0])
		b := c.compile(node.Children[1])
		q1 := c.newState()
		c.epsilon(q0, a.entry)
		c.epsilon(q0, b.entry)
		c.epsilon(a.exit, q1)
		c.epsilon(b.exit, q1)
		return fragment{q0, q1}

	case syntax.NtLoop:
		return c.compileLoop(node)

	case syntax.NtCapture:
		q0 := c.newState()
		inner := c.compile(node.Children[0])
		q1 := c.newState()
		c.add(q0, Transition{Kind: KindGroupEnter, Group: node.CapIndex, Target: inner.entry})
		c.add(inner.exit, Transition{Kind: KindGroupExit, Group: node.CapIndex, Target: q1})
		return fragment{q0, q1}

	default: // syntax.NtGroup, transparent
		return c.compile(node.Children[0])
	}
}

func (c *compiler) emptyFragment() fragment {
	q0 := c.newState()
	q1 := c.newState()
	c.epsilon(q0, q1)
	return fragment{q0, q1}
}

func (c *compiler) symbolFragment(set *syntax.CharSet) fragment {
	q0 := c.newState()
	q1 := c.newState()
	c.add(q0, Transition{Kind: KindSymbol, Set: set, Target: q1})
	return fragment{q0, q1}
}

// compileLoop lowers a repetition: the mandatory minimum as a chain of
// fresh copies, then either one Kleene-looped copy (unbounded) or a chain
// of optional copies up to the maximum. Copies are fresh fragments, never
// shared, so group boundaries inside the body fire on every traversal of
// their lexical location.
func (c *compiler) compileLoop(node *syntax.RegexNode) fragment {
	inner := node.Children[0]
	min, max := node.M, node.N

	var frags []fragment
	for i := 0; i < min; i++ {
		frags = append(frags, c.compile(inner))
	}

	if max == -1 {
		t := c.compile(inner)
		q0 := c.newState()
		q1 := c.newState()
		c.epsilon(q0, t.entry)
		c.epsilon(q0, q1)
		c.epsilon(t.exit, q0)
		c.epsilon(t.exit, q1)
		frags = append(frags, fragment{q0, q1})
	} else {
		for i := min; i < max; i++ {
			t := c.compile(inner)
			q0 := c.newState()
			q1 := c.newState()
			c.epsilon(q0, t.entry)
			c.epsilon(q0, q1)
			c.epsilon(t.exit, q1)
			frags = append(frags, fragment{q0, q1})
		}
	}

	if len(frags) == 0 { // {0} repeats: the empty string
		return c.emptyFragment()
	}

	for i := 1; i < len(frags); i++ {
		c.epsilon(frags[i-1].exit, frags[i].entry)
	}
	return fragment{frags[0].entry, frags[len(frags)-1].exit}
}
