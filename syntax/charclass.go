package syntax

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/regexplay/rex/helpers"
)

// CharSet is a set of runes expressed as inclusive ranges with an optional
// top-level negation. A negated set matches the complement over all
// codepoints. The zero value is the empty set; a negated empty set matches
// any codepoint.
type CharSet struct {
	negate bool
	ranges []CharRange

	// display label override for shorthand-built sets ("\\d", ".", ...)
	label string
}

// CharRange is an inclusive range of runes.
type CharRange struct {
	First, Last rune
}

var (
	digitRanges = []CharRange{{'0', '9'}}
	wordRanges  = []CharRange{{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}}
	spaceRanges = []CharRange{{'\t', '\r'}, {' ', ' '}} // \t \n \v \f \r and space
)

// NewCharSet assembles a set from explicit ranges. It is the constructor
// used by generated code; the parser builds sets incrementally instead.
func NewCharSet(negate bool, ranges ...CharRange) *CharSet {
	c := &CharSet{negate: negate}
	c.ranges = append(c.ranges, ranges...)
	return c
}

// AnyClass returns the set matching any single codepoint, newline included.
func AnyClass() *CharSet {
	return &CharSet{negate: true, label: "."}
}

// CharClass returns the set matching exactly ch.
func CharClass(ch rune) *CharSet {
	return &CharSet{ranges: []CharRange{{ch, ch}}}
}

// DigitClass returns \d or, if negate is set, \D.
func DigitClass(negate bool) *CharSet {
	return shorthand(digitRanges, negate, `\d`, `\D`)
}

// WordClass returns \w or, if negate is set, \W.
func WordClass(negate bool) *CharSet {
	return shorthand(wordRanges, negate, `\w`, `\W`)
}

// SpaceClass returns \s or, if negate is set, \S.
func SpaceClass(negate bool) *CharSet {
	return shorthand(spaceRanges, negate, `\s`, `\S`)
}

func shorthand(ranges []CharRange, negate bool, label, negLabel string) *CharSet {
	c := &CharSet{ranges: ranges, negate: negate, label: label}
	if negate {
		c.label = negLabel
	}
	return c
}

// Negate marks the set as matching the complement of its members.
func (c *CharSet) Negate() {
	c.negate = true
	c.label = ""
}

// IsNegated reports whether the set matches the complement of its ranges.
func (c *CharSet) IsNegated() bool {
	return c.negate
}

// Ranges returns the member ranges in insertion order.
func (c *CharSet) Ranges() []CharRange {
	return c.ranges
}

// AddChar adds a single rune to the set.
func (c *CharSet) AddChar(ch rune) {
	c.AddRange(ch, ch)
}

// AddRange adds the inclusive range [first, last]. The caller guarantees
// first <= last.
func (c *CharSet) AddRange(first, last rune) {
	c.ranges = append(c.ranges, CharRange{First: first, Last: last})
	c.label = ""
}

// AddSet merges the members of other into c. A negated other is folded in
// as its complement ranges so that bracket classes like [\D] stay pure
// range sets.
func (c *CharSet) AddSet(other *CharSet) {
	if other.negate {
		c.ranges = append(c.ranges, complementRanges(other.ranges)...)
	} else {
		c.ranges = append(c.ranges, other.ranges...)
	}
	c.label = ""
}

// complementRanges computes the rune ranges not covered by rs. rs need not
// be sorted; the result is over [0, unicode.MaxRune].
func complementRanges(rs []CharRange) []CharRange {
	sorted := make([]CharRange, len(rs))
	copy(sorted, rs)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].First < sorted[j-1].First; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var out []CharRange
	next := rune(0)
	for _, r := range sorted {
		if r.First > next {
			out = append(out, CharRange{First: next, Last: r.First - 1})
		}
		if r.Last+1 > next {
			next = r.Last + 1
		}
	}
	if next <= unicode.MaxRune {
		out = append(out, CharRange{First: next, Last: unicode.MaxRune})
	}
	return out
}

// CharIn reports whether ch is a member of the set.
func (c *CharSet) CharIn(ch rune) bool {
	in := false
	for _, r := range c.ranges {
		if helpers.IsBetween(ch, r.First, r.Last) {
			in = true
			break
		}
	}
	return in != c.negate
}

// IsEmpty reports whether the set matches no codepoint: it has no member
// ranges and is not negated.
func (c *CharSet) IsEmpty() bool {
	return len(c.ranges) == 0 && !c.negate
}

// String renders the set for display: the bare character for singletons,
// the backslash form for shorthands, a bracket listing otherwise.
func (c *CharSet) String() string {
	if c.label != "" {
		return c.label
	}
	if !c.negate && len(c.ranges) == 1 && c.ranges[0].First == c.ranges[0].Last {
		return charDescription(c.ranges[0].First)
	}

	buf := &bytes.Buffer{}
	buf.WriteRune('[')
	if c.negate {
		buf.WriteRune('^')
	}
	for _, r := range c.ranges {
		if r.First == r.Last {
			buf.WriteString(charDescription(r.First))
		} else {
			buf.WriteString(charDescription(r.First))
			buf.WriteRune('-')
			buf.WriteString(charDescription(r.Last))
		}
	}
	buf.WriteRune(']')
	return buf.String()
}

func charDescription(ch rune) string {
	switch ch {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}
	if unicode.IsPrint(ch) {
		return string(ch)
	}
	return fmt.Sprintf(`\x{%04x}`, ch)
}
