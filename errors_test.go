// errors_test.go
package interpreter

import (
	"errors"
	"strings"
	"testing"
)

func Test_WrapErrorWithSource_LexErrorSnippet(t *testing.T) {
	src := "print \"ok\";\n#"
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatal("expected scan error")
	}

	wrapped := WrapErrorWithSource(err, src)
	msg := wrapped.Error()

	if !strings.HasPrefix(msg, "LEXICAL ERROR on line 2: Unexpected character (#) on line 2") {
		t.Fatalf("wrong header:\n%s", msg)
	}
	if !strings.Contains(msg, "2 | #") {
		t.Fatalf("snippet missing source line:\n%s", msg)
	}
	if !strings.Contains(msg, "| ^") {
		t.Fatalf("snippet missing caret:\n%s", msg)
	}
	if !strings.Contains(msg, `1 | print "ok";`) {
		t.Fatalf("snippet missing context line:\n%s", msg)
	}
}

func Test_WrapErrorWithSource_CaretColumn(t *testing.T) {
	src := "print ~1;"
	_, err := NewLexer(src).Scan()
	wrapped := WrapErrorWithSource(err, src)

	// caret under column 7 (after "print ")
	want := "| " + strings.Repeat(" ", 6) + "^"
	if !strings.Contains(wrapped.Error(), want) {
		t.Fatalf("caret misplaced:\n%s", wrapped.Error())
	}
}

func Test_WrapErrorWithSource_ParseError(t *testing.T) {
	wrapped := WrapErrorWithSource(&ParseError{Msg: "Unexpected end of input"}, "(1")
	if wrapped.Error() != "PARSE ERROR: Unexpected end of input" {
		t.Fatalf("got %q", wrapped.Error())
	}
}

func Test_WrapErrorWithSource_RuntimeError(t *testing.T) {
	wrapped := WrapErrorWithSource(&RuntimeError{Msg: "Cannot add boolean and nil values"}, "true + nil;")
	if wrapped.Error() != "RUNTIME ERROR: Cannot add boolean and nil values" {
		t.Fatalf("got %q", wrapped.Error())
	}
}

func Test_WrapErrorWithSource_OtherErrorsPassThrough(t *testing.T) {
	sentinel := errors.New("disk on fire")
	if got := WrapErrorWithSource(sentinel, "x;"); got != sentinel {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func Test_WrapErrorWithSource_ClampsOutOfRangePositions(t *testing.T) {
	// a caret past the end of a short line must not panic the renderer
	wrapped := WrapErrorWithSource(&LexError{Line: 99, Col: 99, Msg: "Unterminated string"}, `"x`)
	if !strings.Contains(wrapped.Error(), "Unterminated string") {
		t.Fatalf("got %q", wrapped.Error())
	}
}
