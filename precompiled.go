package rex

import (
	"github.com/regexplay/rex/nfa"
)

// RegisterEngine installs a prebuilt automaton for a pattern. Code emitted
// by the rexgen generator calls this from init; Compile then returns the
// registered engine without parsing or constructing anything.
func RegisterEngine(pattern string, prog *nfa.NFA) {
	names := prog.SubexpNames()
	capnames := make(map[string]int)
	for i, name := range names {
		if name != "" {
			capnames[name] = i
		}
	}

	engines[pattern] = &Regexp{
		pattern:  pattern,
		prog:     prog,
		capnames: capnames,
		capslist: names,
		capsize:  prog.CaptureCount(),
	}
}

func getEngineRegexp(pattern string) *Regexp {
	return engines[pattern]
}

var engines = map[string]*Regexp{}
