/*
Package rex is a regular expression engine built on Thompson construction
and breadth-first epsilon-NFA simulation.

It trades the feature surface of backtracking engines (no anchors, no
backreferences, no lookaround) for simulation cost that is independent of
pattern ambiguity, and it exposes the compiled automaton's topology so the
state graph can be rendered directly.

Positions reported in matches, captures and compile errors are codepoint
offsets, not byte offsets.
*/
package rex

import (
	"strconv"

	"github.com/regexplay/rex/nfa"
	"github.com/regexplay/rex/syntax"
)

// Regexp is the representation of a compiled regular expression.
// A Regexp is immutable and safe for concurrent use by multiple
// goroutines; every evaluation allocates its own scratch state.
type Regexp struct {
	// read-only after Compile
	pattern string
	prog    *nfa.NFA

	capnames map[string]int // capture group name -> group number
	capslist []string       // capslist[i] is the name of group i, "" if unnamed
	capsize  int            // number of capture slots, including group 0
}

// Compile parses a regular expression and returns, if successful, a Regexp
// that can be evaluated against text. No partial engine is returned on
// error.
func Compile(expr string) (*Regexp, error) {
	if re := getEngineRegexp(expr); re != nil {
		return re, nil
	}

	tree, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern:  expr,
		prog:     nfa.Compile(tree),
		capnames: tree.Capnames,
		capslist: tree.Caplist,
		capsize:  tree.Captop,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be
// parsed. It simplifies safe initialization of global variables holding
// compiled regular expressions.
func MustCompile(str string) *Regexp {
	regexp, err := Compile(str)
	if err != nil {
		panic(`rex: Compile(` + quote(str) + `): ` + err.Error())
	}
	return regexp
}

// String returns the source text used to compile the regular expression.
func (re *Regexp) String() string {
	return re.pattern
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// Test reports whether the expression matches anywhere in input.
func (re *Regexp) Test(input string) bool {
	_, _, ok := newRunner(re, input).find(0)
	return ok
}

// Find returns the leftmost match in input, preferring the longest of the
// accepting end positions reachable from that start. It returns nil when
// there is no match.
func (re *Regexp) Find(input string) *Match {
	m, _, ok := newRunner(re, input).find(0)
	if !ok {
		return nil
	}
	return &m
}

// FindAll returns every non-overlapping match, scanning left to right and
// stepping past zero-width matches.
func (re *Regexp) FindAll(input string) []Match {
	matches, _ := newRunner(re, input).findAll()
	return matches
}

// Captures returns the captures of the leftmost match, ordered by group
// id. Group 0 is always present on success; groups not traversed on the
// winning path are absent. It returns nil when there is no match.
func (re *Regexp) Captures(input string) []Capture {
	r := newRunner(re, input)
	_, caps, ok := r.find(0)
	if !ok {
		return nil
	}
	return r.captureList(caps)
}

// CapturesAll returns the captures of every non-overlapping match, in
// match order.
func (re *Regexp) CapturesAll(input string) [][]Capture {
	r := newRunner(re, input)
	matches, caps := r.findAll()

	out := make([][]Capture, 0, len(matches))
	for _, cm := range caps {
		out = append(out, r.captureList(cm))
	}
	return out
}

// States returns the ordered state ids of the compiled automaton. State 0
// is the start state; the last id is the accept state.
func (re *Regexp) States() []nfa.StateID {
	return re.prog.StateIDs()
}

// Transitions returns the ordered outgoing transitions of state s, each
// carrying a display label for graph rendering.
func (re *Regexp) Transitions(s nfa.StateID) []nfa.Transition {
	return re.prog.TransitionsOf(s)
}

// Dot renders the compiled automaton as a Graphviz digraph.
func (re *Regexp) Dot() string {
	return re.prog.Dot(re.pattern)
}

// GetGroupNames returns the set of strings used to name capturing groups
// in the expression. Unnamed groups are reported as the decimal string of
// their number.
func (re *Regexp) GetGroupNames() []string {
	result := make([]string, re.capsize)
	for i := 0; i < re.capsize; i++ {
		if re.capslist[i] != "" {
			result[i] = re.capslist[i]
		} else {
			result[i] = strconv.Itoa(i)
		}
	}
	return result
}

// GroupNameFromNumber retrieves a group name that corresponds to a group
// number. It will return "" for an unknown group number. Unnamed groups
// automatically receive a name that is the decimal string equivalent of
// their number.
func (re *Regexp) GroupNameFromNumber(i int) string {
	if i < 0 || i >= re.capsize {
		return ""
	}
	if re.capslist[i] != "" {
		return re.capslist[i]
	}
	return strconv.Itoa(i)
}

// GroupNumberFromName returns a group number that corresponds to a group
// name. Returns -1 if the name is not a recognized group name. Numbered
// groups automatically get a group name that is the decimal string
// equivalent of their number.
func (re *Regexp) GroupNumberFromName(name string) int {
	if k, ok := re.capnames[name]; ok {
		return k
	}

	result := 0
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch > '9' || ch < '0' {
			return -1
		}
		result *= 10
		result += int(ch - '0')
	}
	if len(name) > 0 && result >= 0 && result < re.capsize {
		return result
	}
	return -1
}
