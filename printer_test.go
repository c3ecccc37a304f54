// printer_test.go
package interpreter

import (
	"strings"
	"testing"
)

func Test_FormatValue_PlainWithoutColor(t *testing.T) {
	EnableColor = false
	if got := FormatValue(Str("hi")); got != `"hi"` {
		t.Fatalf("got %q", got)
	}
	if got := FormatValue(Num(1.5)); got != "1.5" {
		t.Fatalf("got %q", got)
	}
}

func Test_FormatValue_ColorWrapsValue(t *testing.T) {
	EnableColor = true
	defer func() { EnableColor = false }()

	got := FormatValue(Nil)
	if !strings.HasPrefix(got, colorBlue) || !strings.HasSuffix(got, colorReset) {
		t.Fatalf("expected ANSI-wrapped value, got %q", got)
	}
	if !strings.Contains(got, "nil") {
		t.Fatalf("payload missing: %q", got)
	}
}

func Test_ColorHelpersAreNoOpsWhenDisabled(t *testing.T) {
	EnableColor = false
	if Red("x") != "x" || Green("x") != "x" || Blue("x") != "x" {
		t.Fatal("color helpers must be identity with color disabled")
	}
}
