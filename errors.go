// errors.go: user-facing error wrapping and caret-snippet rendering
//
// WrapErrorWithSource turns the typed errors produced by the pipeline into
// readable messages. Lexical errors carry a position, so they get a
// Python-style snippet with a caret under the offending column:
//
//	LEXICAL ERROR on line 2: Unexpected character (#) on line 2
//
//	   1 | print "ok";
//	   2 | #
//	     | ^
//
// Parse and runtime errors have no positions (tokens and AST nodes carry
// none), so they only get a labeled header. Any other error is returned
// unchanged. The renderer clamps out-of-range coordinates instead of
// crashing on short sources.
package interpreter

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments err with context from the source text it was
// produced for. Unknown error types pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Col is 0-based internally; render as 1-based.
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("PARSE ERROR: %s", e.Msg)
	case *RuntimeError:
		return fmt.Errorf("RUNTIME ERROR: %s", e.Msg)
	default:
		return err
	}
}

// snippet builds the header plus up to one line of context on each side of
// the error line, with a caret under the 1-based column.
func snippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	if col > len(lines[line-1])+1 {
		col = len(lines[line-1]) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s on line %d: %s\n\n", header, line, msg)

	width := len(fmt.Sprintf("%d", min(line+1, len(lines))))
	writeLine := func(n int) {
		fmt.Fprintf(&b, "  %*d | %s\n", width, n, lines[n-1])
	}

	if line > 1 {
		writeLine(line - 1)
	}
	writeLine(line)
	fmt.Fprintf(&b, "  %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", col-1))
	if line < len(lines) {
		writeLine(line + 1)
	}
	return strings.TrimRight(b.String(), "\n")
}
