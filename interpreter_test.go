// interpreter_test.go
package interpreter

import (
	"bytes"
	"strings"
	"testing"
)

func newTestInterp() (*Interpreter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewInterpreterWithOutput(&buf), &buf
}

func runSrc(t *testing.T, src string) string {
	t.Helper()
	ip, buf := newTestInterp()
	if err := ip.RunSource(src); err != nil {
		t.Fatalf("RunSource error: %v\nsource:\n%s", err, src)
	}
	return buf.String()
}

func wantOutput(t *testing.T, src, want string) {
	t.Helper()
	if got := runSrc(t, src); got != want {
		t.Fatalf("\nsource:\n%s\nwant output:\n%q\ngot output:\n%q", src, want, got)
	}
}

func wantRuntimeError(t *testing.T, src, substr string) {
	t.Helper()
	ip, _ := newTestInterp()
	err := ip.RunSource(src)
	if err == nil {
		t.Fatalf("expected runtime error for %q", src)
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("want error containing %q, got %q", substr, err.Error())
	}
}

func Test_Interpreter_PrintNumber(t *testing.T) {
	wantOutput(t, "print 42;", "42\n")
}

func Test_Interpreter_PrintString(t *testing.T) {
	wantOutput(t, `print "Hello World!";`, "Hello World!\n")
}

func Test_Interpreter_PrintBooleanAndNil(t *testing.T) {
	wantOutput(t, "print true; print false; print nil;", "true\nfalse\nnil\n")
}

func Test_Interpreter_BareExpressionUsesDiagnosticForm(t *testing.T) {
	wantOutput(t, `"hi";`, "\"hi\"\n")
	wantOutput(t, "1+2;", "3\n")
}

func Test_Interpreter_Equality(t *testing.T) {
	wantOutput(t, "print 1==1;", "true\n")
	wantOutput(t, "print 1!=1;", "false\n")
	wantOutput(t, "print 1==2;", "false\n")
	wantOutput(t, "print 1!=2;", "true\n")
	wantOutput(t, "print 1==true;", "false\n")
}

func Test_Interpreter_StringRepetition(t *testing.T) {
	wantOutput(t, `print "Hello "*3;`, "Hello Hello Hello \n")
	wantOutput(t, `print 3*"Hello ";`, "Hello Hello Hello \n")
	wantOutput(t, `print "Hello "*-3;`, "\n")
}

func Test_Interpreter_NumbersHave32BitPrecision(t *testing.T) {
	// 0.1 + 0.2 rounds to exactly the nearest 32-bit float of 0.3
	wantOutput(t, "print 0.1 + 0.2;", "0.3\n")
	// 2^24 + 1 is not representable in 32 bits; the addition is absorbed
	wantOutput(t, "print 16777216 + 1;", "1.6777216e+07\n")
}

func Test_Interpreter_DivisionBindsTighterThanAddition(t *testing.T) {
	wantOutput(t, "print 1+2/4;", "1.5\n")
}

func Test_Interpreter_GroupingOverridesPrecedence(t *testing.T) {
	wantOutput(t, "print (1+2)/4;", "0.75\n")
}

func Test_Interpreter_ComplexExpression(t *testing.T) {
	wantOutput(t, "print !false == 5 > (1 - 2 + 5 / 2) * 100 - 10;", "false\n")
}

func Test_Interpreter_AssignmentRoundTrip(t *testing.T) {
	ip, buf := newTestInterp()
	if err := ip.RunSource("x = 5; print x;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "5\n" {
		t.Fatalf("want \"5\\n\", got %q", buf.String())
	}
	if got := ip.Environment().Resolve("x"); got != Num(5) {
		t.Fatalf("want Num(5) in environment, got %#v", got)
	}
}

func Test_Interpreter_UnboundNameResolvesToNil(t *testing.T) {
	wantOutput(t, "print unbound;", "nil\n")
}

func Test_Interpreter_AssignmentWithoutDeclarationIsLegal(t *testing.T) {
	wantOutput(t, "y = 1; y = y + 1; print y;", "2\n")
}

func Test_Interpreter_ReassignmentBetweenUsesIsVisible(t *testing.T) {
	wantOutput(t, "x = 1; print x; x = 2; print x;", "1\n2\n")
}

func Test_Interpreter_ResolveIsIdempotent(t *testing.T) {
	wantOutput(t, "x = 3; print x; print x;", "3\n3\n")
}

func Test_Interpreter_TruthinessBoundary(t *testing.T) {
	wantOutput(t, `if 0 { print "a"; }`, "")
	wantOutput(t, `if "" { print "a"; }`, "")
	wantOutput(t, `if "x" { print "a"; }`, "a\n")
	wantOutput(t, `if 1 { print "a"; }`, "a\n")
	wantOutput(t, `if nil { print "a"; }`, "")
	wantOutput(t, `if true { print "a"; }`, "a\n")
	wantOutput(t, `if false { print "a"; }`, "")
}

func Test_Interpreter_IfBodyIsSingleDeclaration(t *testing.T) {
	wantOutput(t, "if 1 print 2;", "2\n")
}

func Test_Interpreter_BlocksShareTheFlatEnvironment(t *testing.T) {
	// a block does not open a child scope; assignments escape it
	wantOutput(t, "{ x = 5; } print x;", "5\n")
	wantOutput(t, "x = 1; { x = 2; } print x;", "2\n")
}

func Test_Interpreter_NestedBlocks(t *testing.T) {
	wantOutput(t, "{ { { x = 7; } } } print x;", "7\n")
}

func Test_Interpreter_AssignmentInsideIf(t *testing.T) {
	wantOutput(t, `if true { x = 9; } print x;`, "9\n")
}

func Test_Interpreter_VersionIsSeeded(t *testing.T) {
	wantOutput(t, "print VERSION;", Version+"\n")
}

func Test_Interpreter_HostSeededBindings(t *testing.T) {
	ip, buf := newTestInterp()
	ip.Environment().Assign("ARG0", Num(42))
	ip.Environment().Assign("ARG1", Str("hello"))
	if err := ip.RunSource("print ARG0; print ARG1;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "42\nhello\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func Test_Interpreter_UnaryOperators(t *testing.T) {
	wantOutput(t, "print -5;", "-5\n")
	wantOutput(t, "print !true;", "false\n")
	wantOutput(t, "print !0;", "true\n")
	wantOutput(t, `print !"";`, "true\n")
	wantOutput(t, `print !"x";`, "false\n")
	wantOutput(t, "print !nil;", "true\n")
	wantOutput(t, "print !-99;", "false\n")
	wantOutput(t, "print +5;", "5\n")
}

func Test_Interpreter_TypeErrors(t *testing.T) {
	wantRuntimeError(t, `"a" - "b";`, "Cannot subtract")
	wantRuntimeError(t, "true + false;", "Cannot add")
	wantRuntimeError(t, "nil * 2;", "Cannot multiply")
	wantRuntimeError(t, `"a" / 2;`, "Cannot divide")
	wantRuntimeError(t, "-true;", "Cannot negate boolean values")
	wantRuntimeError(t, `-"x";`, "Cannot negate string values")
	wantRuntimeError(t, "-nil;", "Cannot negate nil values")
	wantRuntimeError(t, `1 > "a";`, "Cannot order")
}

func Test_Interpreter_ErrorAbortsRunButOutputBeforeItStays(t *testing.T) {
	ip, buf := newTestInterp()
	err := ip.RunSource(`print "before"; 1 - "x"; print "after";`)
	if err == nil {
		t.Fatal("expected runtime error")
	}
	if buf.String() != "before\n" {
		t.Fatalf("want output up to the error only, got %q", buf.String())
	}
}

func Test_Interpreter_RecoversAcrossRuns(t *testing.T) {
	// REPL contract: a failed line leaves the environment usable
	ip, buf := newTestInterp()
	if err := ip.RunSource("x = 1;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ip.RunSource("x + nil;"); err == nil {
		t.Fatal("expected runtime error")
	}
	if err := ip.RunSource("print x;"); err != nil {
		t.Fatalf("interpreter unusable after error: %v", err)
	}
	if buf.String() != "1\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func Test_Interpreter_RunSourceSurfacesLexAndParseErrors(t *testing.T) {
	ip, _ := newTestInterp()
	if _, ok := ip.RunSource("#").(*LexError); !ok {
		t.Fatal("expected *LexError")
	}
	if _, ok := ip.RunSource("(1").(*ParseError); !ok {
		t.Fatal("expected *ParseError")
	}
}

func Test_Interpreter_InvalidBinaryOperatorPairing(t *testing.T) {
	_, err := applyBinary(OpBang, Num(1), Num(2))
	if err == nil || !strings.Contains(err.Error(), "Invalid binary operator") {
		t.Fatalf("want invalid binary operator error, got %v", err)
	}
}

func Test_Interpreter_InvalidUnaryOperatorPairing(t *testing.T) {
	_, err := applyUnary(OpStar, Num(1))
	if err == nil || !strings.Contains(err.Error(), "Invalid unary operator") {
		t.Fatalf("want invalid unary operator error, got %v", err)
	}
}

func Test_Interpreter_GrammarCompleteness(t *testing.T) {
	// balanced, grammatical inputs must parse and run
	srcs := []string{
		"x = (1 + (2 * (3 - 4))) / 5; print x;",
		`if (x == nil) { if (1 < 2) { print "deep"; } }`,
		"a = 1; b = a + 1; { c = b * 2; } print a + b + c;",
		"!!!!true;",
	}
	for _, src := range srcs {
		ip, _ := newTestInterp()
		if err := ip.RunSource(src); err != nil {
			t.Fatalf("source %q failed: %v", src, err)
		}
	}
}
