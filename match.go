package rex

// Match is a half-open span of the input. Start and End are codepoint
// offsets, End >= Start. Zero-width matches are legal.
type Match struct {
	Start int
	End   int
}

// Length returns the number of codepoints covered by the match.
func (m Match) Length() int {
	return m.End - m.Start
}

// Text returns the matched substring of input.
func (m Match) Text(input string) string {
	return string([]rune(input)[m.Start:m.End])
}

// Capture is the reported span of one capture group. Group 0 is the whole
// match; Name is empty for unnamed groups.
type Capture struct {
	Group int
	Name  string
	Start int
	End   int
}

// Text returns the captured substring of input.
func (c Capture) Text(input string) string {
	return string([]rune(input)[c.Start:c.End])
}

// ByName returns the capture belonging to the named group, or nil if the
// group was not traversed on the matched path.
func ByName(caps []Capture, name string) *Capture {
	for i := range caps {
		if caps[i].Name == name && name != "" {
			return &caps[i]
		}
	}
	return nil
}

// ByGroup returns the capture of group number g, or nil.
func ByGroup(caps []Capture, g int) *Capture {
	for i := range caps {
		if caps[i].Group == g {
			return &caps[i]
		}
	}
	return nil
}
