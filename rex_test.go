package rex

import (
	"testing"
)

func TestRegexp_Basic(t *testing.T) {
	r, err := Compile("test(?<named>ing)?")
	if err != nil {
		t.Errorf("unexpected compile err: %v", err)
	}
	m := r.Find("this is a testing stuff")
	if m == nil {
		t.Fatal("Nil match, expected success")
	}
	if want, got := 10, m.Start; want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	// greedy-longest: the optional tail is taken
	if want, got := 17, m.End; want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "testing", m.Text("this is a testing stuff"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
}

func TestCapture_Basic(t *testing.T) {
	r := MustCompile(`(\w+) (\w+)`)
	caps := r.Captures("hello world")
	if caps == nil {
		t.Fatal("Should have matched")
	}
	if want, got := 3, len(caps); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}

	// group 0 is always the match
	if want, got := 0, caps[0].Group; want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "hello world", caps[0].Text("hello world"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "hello", caps[1].Text("hello world"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "world", caps[2].Text("hello world"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}

	m := r.Find("hello world")
	if m == nil {
		t.Fatal("Should have matched")
	}
	if m.Start != caps[0].Start || m.End != caps[0].End {
		t.Fatalf("group 0 span %d-%d does not equal match span %d-%d",
			caps[0].Start, caps[0].End, m.Start, m.End)
	}
}

func TestCapture_Named(t *testing.T) {
	r := MustCompile(`(?<day>\d{2})-(?<month>\d{2})-(?<year>\d{4})`)
	input := "07-01-2024"

	caps := r.Captures(input)
	if caps == nil {
		t.Fatal("Should have matched")
	}
	for name, want := range map[string]string{"day": "07", "month": "01", "year": "2024"} {
		c := ByName(caps, name)
		if c == nil {
			t.Fatalf("missing capture for %q", name)
		}
		if got := c.Text(input); want != got {
			t.Fatalf("%s: Wanted '%v'\nGot '%v'", name, want, got)
		}
	}
}

func TestCapture_UntraversedGroupAbsent(t *testing.T) {
	r := MustCompile("(a)|(b)")
	caps := r.Captures("b")
	if caps == nil {
		t.Fatal("Should have matched")
	}
	if ByGroup(caps, 1) != nil {
		t.Fatal("group 1 was not on the matched path, must be absent")
	}
	if c := ByGroup(caps, 2); c == nil || c.Start != 0 || c.End != 1 {
		t.Fatalf("wanted group 2 at (0,1), got %+v", c)
	}
}

func TestFind_NoMatch(t *testing.T) {
	r := MustCompile("abc")
	if m := r.Find("abd"); m != nil {
		t.Fatalf("wanted nil match, got %+v", m)
	}
	if caps := r.Captures("abd"); caps != nil {
		t.Fatalf("wanted nil captures, got %+v", caps)
	}
	if r.Test("abd") {
		t.Fatal("wanted Test false")
	}
}

func TestFindAll_ZeroWidth(t *testing.T) {
	r := MustCompile("a*")
	matches := r.FindAll("bbb")
	if want, got := 4, len(matches); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v': %v", want, got, matches)
	}
	for i, m := range matches {
		if m.Start != i || m.End != i {
			t.Fatalf("match %d: wanted (%d,%d), got (%d,%d)", i, i, i, m.Start, m.End)
		}
	}
}

func TestFindAll_Advance(t *testing.T) {
	r := MustCompile("aa")
	matches := r.FindAll("aaaa")
	if want, got := 2, len(matches); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v': %v", want, got, matches)
	}
	if matches[0].Start != 0 || matches[0].End != 2 || matches[1].Start != 2 || matches[1].End != 4 {
		t.Fatalf("wanted non-overlapping (0,2) (2,4), got %v", matches)
	}
}

func TestRegexp_Unicode(t *testing.T) {
	r := MustCompile("日+")
	m := r.Find("ab日日本")
	if m == nil {
		t.Fatal("Should have matched")
	}
	// codepoint offsets, not bytes
	if m.Start != 2 || m.End != 4 {
		t.Fatalf("wanted (2,4), got (%d,%d)", m.Start, m.End)
	}

	// '.' matches newline
	if !MustCompile("a.b").Test("a\nb") {
		t.Fatal("wanted '.' to match a newline")
	}
}

func TestRegexp_GroupAccessors(t *testing.T) {
	r := MustCompile("(a)(?<x>b)")

	names := r.GetGroupNames()
	if len(names) != 3 || names[0] != "0" || names[1] != "1" || names[2] != "x" {
		t.Fatalf("wanted [0 1 x], got %v", names)
	}
	if want, got := 2, r.GroupNumberFromName("x"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := 1, r.GroupNumberFromName("1"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := -1, r.GroupNumberFromName("nope"); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "x", r.GroupNameFromNumber(2); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
	if want, got := "", r.GroupNameFromNumber(7); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
}

func TestRegexp_Introspection(t *testing.T) {
	r := MustCompile("a|b")
	states := r.States()
	if len(states) == 0 || states[0] != 0 {
		t.Fatalf("wanted states starting at 0, got %v", states)
	}
	for i, s := range states {
		if int(s) != i {
			t.Fatalf("state ids must be dense, got %v", states)
		}
	}
	if transitions := r.Transitions(states[len(states)-1]); len(transitions) != 0 {
		t.Fatal("accept state must have no outgoing transitions")
	}
	if transitions := r.Transitions(0); len(transitions) == 0 {
		t.Fatal("start state must have outgoing transitions")
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("wanted panic for invalid pattern")
		}
	}()
	MustCompile("(")
}

func TestCompile_Determinism(t *testing.T) {
	a := MustCompile("(x|y)+z{2,3}")
	b := MustCompile("(x|y)+z{2,3}")

	for _, input := range []string{"", "xz", "xyzz", "yxzzz", "zzz", "xyxyzzzq"} {
		am, bm := a.Find(input), b.Find(input)
		if (am == nil) != (bm == nil) {
			t.Fatalf("%q: engines disagree on match presence", input)
		}
		if am != nil && *am != *bm {
			t.Fatalf("%q: engines disagree: %+v vs %+v", input, am, bm)
		}
	}
}

func TestRegexp_String(t *testing.T) {
	if want, got := "a|b", MustCompile("a|b").String(); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
}
