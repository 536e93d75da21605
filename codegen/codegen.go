// Package codegen renders a compiled expression as a Go source file. The
// generated file rebuilds the automaton from literal tables and registers
// it with rex.RegisterEngine in init, so hot patterns pay their parse and
// construction cost at build time instead of at runtime.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/regexplay/rex/nfa"
	"github.com/regexplay/rex/syntax"
)

const (
	rexPath    = "github.com/regexplay/rex"
	nfaPath    = "github.com/regexplay/rex/nfa"
	syntaxPath = "github.com/regexplay/rex/syntax"
)

// Config describes one generated engine.
type Config struct {
	// Pattern is the regular expression to precompile.
	Pattern string

	// Name is the Go-identifier base name for the generated declarations.
	Name string

	// Package is the package name of the generated file.
	Package string
}

// Generate compiles cfg.Pattern and renders the registration source. The
// output is gofmt-formatted by the renderer.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("codegen: empty engine name")
	}
	if cfg.Package == "" {
		return nil, fmt.Errorf("codegen: empty package name")
	}

	tree, err := syntax.Parse(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	prog := nfa.Compile(tree)

	builderName := "new" + upperFirst(cfg.Name) + "NFA"

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by rexgen. DO NOT EDIT.")
	f.HeaderComment("Pattern: " + cfg.Pattern)

	f.Func().Id("init").Params().Block(
		jen.Qual(rexPath, "RegisterEngine").Call(
			jen.Lit(cfg.Pattern),
			jen.Id(builderName).Call(),
		),
	)

	f.Func().Id(builderName).Params().Op("*").Qual(nfaPath, "NFA").Block(
		jen.Id("states").Op(":=").Index().Index().Qual(nfaPath, "Transition").Values(stateTable(prog)...),
		jen.Return(jen.Qual(nfaPath, "New").Call(
			jen.Id("states"),
			jen.Lit(prog.CaptureCount()),
			namesLiteral(prog.SubexpNames()),
		)),
	)

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	return buf.Bytes(), nil
}

func stateTable(prog *nfa.NFA) []jen.Code {
	var rows []jen.Code
	for _, id := range prog.StateIDs() {
		var cells []jen.Code
		for _, t := range prog.TransitionsOf(id) {
			cells = append(cells, transitionLiteral(t))
		}
		if cells == nil {
			rows = append(rows, jen.Nil())
			continue
		}
		rows = append(rows, jen.Values(cells...))
	}
	return rows
}

func transitionLiteral(t nfa.Transition) jen.Code {
	fields := jen.Dict{
		jen.Id("Kind"):   jen.Qual(nfaPath, kindName(t.Kind)),
		jen.Id("Target"): jen.Lit(int(t.Target)),
	}
	switch t.Kind {
	case nfa.KindGroupEnter, nfa.KindGroupExit:
		fields[jen.Id("Group")] = jen.Lit(t.Group)
	case nfa.KindSymbol:
		fields[jen.Id("Set")] = setLiteral(t.Set)
	}
	return jen.Values(fields)
}

func setLiteral(set *syntax.CharSet) jen.Code {
	args := []jen.Code{jen.Lit(set.IsNegated())}
	for _, r := range set.Ranges() {
		args = append(args, jen.Qual(syntaxPath, "CharRange").Values(jen.Dict{
			jen.Id("First"): jen.LitRune(r.First),
			jen.Id("Last"):  jen.LitRune(r.Last),
		}))
	}
	return jen.Qual(syntaxPath, "NewCharSet").Call(args...)
}

func namesLiteral(names []string) jen.Code {
	var lits []jen.Code
	for _, name := range names {
		lits = append(lits, jen.Lit(name))
	}
	return jen.Index().String().Values(lits...)
}

func kindName(k nfa.TransitionKind) string {
	switch k {
	case nfa.KindEpsilon:
		return "KindEpsilon"
	case nfa.KindGroupEnter:
		return "KindGroupEnter"
	case nfa.KindGroupExit:
		return "KindGroupExit"
	default:
		return "KindSymbol"
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
