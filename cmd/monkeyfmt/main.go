// cmd/monkeyfmt/main.go — the `monkeyfmt` binary: format Monkey source files.
//
// A small driver in the teacher's cmd/msg style: read, format, and either
// print to stdout or overwrite the file in place with -r.
package main

import (
	"flag"
	"fmt"
	"os"

	monkey "github.com/daios-ai/monkey"
)

func main() {
	rewrite := flag.Bool("r", false, "rewrite the file in place instead of printing to stdout")
	flag.Parse()

	// flag stops at the first non-flag argument, so a -r written after the
	// path (`monkeyfmt <file> -r`) is picked out of the remaining arguments.
	var paths []string
	for _, arg := range flag.Args() {
		if arg == "-r" {
			*rewrite = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: monkeyfmt [-r] <file> [file...]")
		os.Exit(2)
	}

	exit := 0
	for _, path := range paths {
		if err := formatFile(path, *rewrite); err != nil {
			fmt.Fprintf(os.Stderr, "monkeyfmt: %v\n", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func formatFile(path string, rewrite bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := monkey.Format(string(src))
	if err != nil {
		return monkey.WrapErrorWithName(err, path, string(src))
	}

	if rewrite {
		return os.WriteFile(path, []byte(formatted), 0644)
	}
	fmt.Print(formatted)
	return nil
}
