// cmd/monkey/main.go — the `monkey` binary: script runner and REPL.
//
// Adapted from the teacher's cmd/msg/main.go: same liner-backed REPL with
// history-file persistence and a parse-probe read loop so a line ending
// mid-expression (an open brace, paren, or string) continues onto the next
// prompt instead of erroring immediately. `--mode` selects which stage of
// the pipeline a script is run through, for inspecting intermediate output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	monkey "github.com/daios-ai/monkey"
)

const (
	appName     = "monkey"
	historyFile = ".monkey_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

var banner = fmt.Sprintf("Monkey %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", monkey.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	// An empty mode runs a script with the evaluator and the REPL with the VM.
	mode := ""
	var file string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--mode" && i+1 < len(args):
			mode = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--mode="):
			mode = strings.TrimPrefix(args[i], "--mode=")
		case args[i] == "-h" || args[i] == "--help":
			usage()
			return
		default:
			file = args[i]
		}
	}

	if file == "" {
		os.Exit(runRepl(mode))
	}
	os.Exit(runFile(file, mode))
}

func usage() {
	fmt.Printf(`Monkey %s

Usage:
  %s                      Start the REPL (input runs on the VM)
  %s --mode <mode>        Start the REPL inspecting one pipeline stage
  %s <file>               Run a script with the tree-walking evaluator
  %s --mode <mode> <file> Run a script, printing the chosen stage's output instead

modes: lexer, parser, interpreter (script default), compiler, vm (REPL default)
`, monkey.Version, appName, appName, appName, appName)
}

func runFile(file, mode string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	out, err := inspect(string(src), mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, monkey.WrapErrorWithName(err, file, string(src)))
		return 1
	}
	if out != "" {
		fmt.Println(out)
	}
	return 0
}

// inspect runs src through the pipeline stage named by mode and renders its
// output as a string, or returns the first error encountered.
func inspect(src, mode string) (string, error) {
	switch mode {
	case "lexer":
		toks := monkey.NewLexer(src).Scan()
		var b strings.Builder
		for _, t := range toks {
			fmt.Fprintf(&b, "%s %q\n", t.Type, t.Literal)
		}
		return b.String(), nil
	case "parser":
		program, errs := monkey.Parse(src)
		if len(errs) > 0 {
			return "", errs[0]
		}
		return program.String(), nil
	case "compiler":
		return monkey.Disassemble(src)
	case "interpreter", "":
		in := monkey.NewInterpreter()
		val, err := in.Run(src)
		if err != nil {
			return "", err
		}
		return monkey.FormatValue(val), nil
	case "vm":
		in := monkey.NewInterpreter()
		val, err := in.RunVM(src)
		if err != nil {
			return "", err
		}
		return monkey.FormatValue(val), nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func runRepl(mode string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	in := monkey.NewInterpreter()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}

		out, err := runReplLine(in, code, mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(monkey.WrapErrorWithSource(err, code).Error()))
			continue
		}
		if out != "" {
			fmt.Println(blue(out))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

func runReplLine(in *monkey.Interpreter, code, mode string) (string, error) {
	switch mode {
	case "interpreter":
		val, err := in.RunPersistent(code)
		if err != nil {
			return "", err
		}
		return monkey.FormatValue(val), nil
	case "compiler":
		return monkey.Disassemble(code)
	case "parser":
		program, errs := monkey.Parse(code)
		if len(errs) > 0 {
			return "", errs[0]
		}
		return program.String(), nil
	case "lexer":
		toks := monkey.NewLexer(code).Scan()
		var b strings.Builder
		for _, t := range toks {
			fmt.Fprintf(&b, "%s %q\n", t.Type, t.Literal)
		}
		return b.String(), nil
	default:
		val, err := in.RunVMPersistent(code)
		if err != nil {
			return "", err
		}
		return monkey.FormatValue(val), nil
	}
}

// readByParseProbe reads lines until looksIncomplete reports the buffered
// source as balanced (no open brace, bracket, paren or string), so
// multi-line function/if/while bodies don't need a trailing backslash or
// explicit continuation marker. The buffer is not parsed here.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !looksIncomplete(src) {
			return src, true
		}
	}
}

// looksIncomplete reports whether src ends with unbalanced braces,
// brackets, parens, or an unterminated string literal, in which case the
// REPL should keep reading instead of parsing (and likely erroring) now.
func looksIncomplete(src string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		}
	}
	return inString || depth > 0
}
