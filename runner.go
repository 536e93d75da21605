package rex

import (
	"github.com/regexplay/rex/nfa"
)

// span is a capture in progress. end is -1 while the group is still open.
type span struct {
	start, end int
}

// capmap carries the capture spans of one live simulation path, keyed by
// group id. Maps are copied on branch: a path only ever mutates a private
// clone, so paths sharing an ancestor map stay independent.
type capmap map[int]span

func (m capmap) clone() capmap {
	c := make(capmap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// stateList is one generation of the breadth-first simulation: the live
// states in insertion order, each with its capture map. The first path to
// reach a state wins; later arrivals are dropped, which makes captures
// deterministic and keeps the list bounded by the state count.
type stateList struct {
	order []nfa.StateID
	caps  map[nfa.StateID]capmap
}

func newStateList() *stateList {
	return &stateList{caps: make(map[nfa.StateID]capmap)}
}

func (l *stateList) add(id nfa.StateID, caps capmap) bool {
	if _, ok := l.caps[id]; ok {
		return false
	}
	l.order = append(l.order, id)
	l.caps[id] = caps
	return true
}

func (l *stateList) lookup(id nfa.StateID) (capmap, bool) {
	caps, ok := l.caps[id]
	return caps, ok
}

func (l *stateList) empty() bool {
	return len(l.order) == 0
}

// runner executes one evaluation of a compiled expression against one
// input. All scratch state lives here and dies with the call.
type runner struct {
	re    *Regexp
	input []rune
}

func newRunner(re *Regexp, input string) *runner {
	return &runner{re: re, input: []rune(input)}
}

// closure expands the generation in place under epsilon and group-tag
// transitions. The order slice doubles as the BFS queue. Traversing a
// group tag records the boundary at pos in a cloned capture map.
func (r *runner) closure(list *stateList, pos int) {
	for i := 0; i < len(list.order); i++ {
		id := list.order[i]
		caps := list.caps[id]

		for _, t := range r.re.prog.TransitionsOf(id) {
			if !t.IsEpsilon() {
				continue
			}
			if _, seen := list.caps[t.Target]; seen {
				continue
			}

			next := caps
			switch t.Kind {
			case nfa.KindGroupEnter:
				next = caps.clone()
				next[t.Group] = span{start: pos, end: -1}
			case nfa.KindGroupExit:
				next = caps.clone()
				sp := next[t.Group]
				sp.end = pos
				next[t.Group] = sp
			}
			list.add(t.Target, next)
		}
	}
}

// find locates the leftmost match starting at or after from. For each
// candidate start it runs the set simulation to exhaustion and keeps the
// longest accepting position, so quantifiers behave greedily.
func (r *runner) find(from int) (Match, capmap, bool) {
	prog := r.re.prog

	for s := from; s <= len(r.input); s++ {
		cur := newStateList()
		cur.add(prog.Start(), capmap{})
		r.closure(cur, s)

		bestEnd := -1
		var bestCaps capmap
		if caps, ok := cur.lookup(prog.Accept()); ok {
			bestEnd = s
			bestCaps = caps.clone()
		}

		for pos := s; pos < len(r.input) && !cur.empty(); pos++ {
			ch := r.input[pos]
			next := newStateList()
			for _, id := range cur.order {
				caps := cur.caps[id]
				for _, t := range prog.TransitionsOf(id) {
					if t.Accepts(ch) {
						next.add(t.Target, caps)
					}
				}
			}
			r.closure(next, pos+1)
			cur = next

			if caps, ok := cur.lookup(prog.Accept()); ok {
				bestEnd = pos + 1
				bestCaps = caps.clone()
			}
		}

		if bestEnd >= 0 {
			return Match{Start: s, End: bestEnd}, bestCaps, true
		}
	}
	return Match{}, nil, false
}

// findAll scans the whole input. A zero-width match advances the scan by
// one position so the loop always terminates.
func (r *runner) findAll() ([]Match, []capmap) {
	var matches []Match
	var caps []capmap

	from := 0
	for from <= len(r.input) {
		m, cm, ok := r.find(from)
		if !ok {
			break
		}
		matches = append(matches, m)
		caps = append(caps, cm)

		if m.End > m.Start {
			from = m.End
		} else {
			from = m.Start + 1
		}
	}
	return matches, caps
}

// captureList flattens a winning path's capture map into Captures ordered
// by group id. Groups never traversed, or entered but not exited, are
// absent.
func (r *runner) captureList(caps capmap) []Capture {
	var out []Capture
	for g := 0; g < r.re.capsize; g++ {
		sp, ok := caps[g]
		if !ok || sp.end < 0 {
			continue
		}
		out = append(out, Capture{
			Group: g,
			Name:  r.re.capslist[g],
			Start: sp.start,
			End:   sp.end,
		})
	}
	return out
}
