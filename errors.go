// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// Turns low-level lexer/parser/compiler diagnostics into readable,
// Python-style error snippets with a caret pointing at the offending
// column. The entry point is WrapErrorWithSource, which recognizes
// *LexError (lexer.go), *ParseError (parser.go), and *CompileError
// (compiler.go). A *CompileError carries no position and becomes a one-line
// message; the other two become a multi-line snippet:
//
//	PARSE ERROR at 3:12: unexpected token ')'
//
//	   2 | let x = (1 + 2
//	   3 |              )
//	     |            ^
//	   4 | end
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places a caret under the 1-based column.
// Runtime errors (object.go's *Error) are not routed through here: they
// carry no source position by design (see Non-goals), since the
// tree-walking evaluator and VM both operate past the point where a
// precise source column is still available.
package monkey

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments err with a caret-annotated snippet of src.
// Errors it does not recognize are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a named source (e.g. a file
// path) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *CompileError:
		return fmt.Errorf("COMPILE ERROR%s: %s", sourceSuffix(srcName), e.Msg)
	default:
		return err
	}
}

func sourceSuffix(srcName string) string {
	if srcName == "" {
		return ""
	}
	return " in " + srcName
}

// prettyErrorStringLabeled builds a Python-like snippet with a header and a
// caret. It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
