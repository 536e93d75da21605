// rexgen precompiles a regular expression into a Go source file that
// registers the ready-built automaton with the rex runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regexplay/rex/codegen"
)

func main() {
	var (
		pattern = flag.String("pattern", "", "regular expression to precompile (required)")
		name    = flag.String("name", "", "Go-identifier base name for the generated engine (required)")
		pkg     = flag.String("package", "main", "package name of the generated file")
		output  = flag.String("output", "", "output file; stdout when empty")
		verbose = flag.Bool("verbose", false, "log generation progress to stderr")
	)
	flag.Parse()

	if *pattern == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "rexgen: -pattern and -name are required")
		flag.Usage()
		os.Exit(2)
	}

	logf := func(format string, args ...interface{}) {
		if *verbose {
			fmt.Fprintf(os.Stderr, "rexgen: "+format+"\n", args...)
		}
	}

	logf("compiling pattern %q", *pattern)
	src, err := codegen.Generate(codegen.Config{
		Pattern: *pattern,
		Name:    *name,
		Package: *pkg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rexgen: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "rexgen: %v\n", err)
		os.Exit(1)
	}
	logf("wrote %s (%d bytes)", *output, len(src))
}
