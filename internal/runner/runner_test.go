package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/monkeylang/monkey/internal/object"
)

func TestTokenizeLetStatementScenario(t *testing.T) {
	tokens := Tokenize("let x = 1;")
	want := []string{
		"LET('let') @ 1:1",
		"IDENT('x') @ 1:5",
		"ASSIGN('=') @ 1:7",
		"INT('1') @ 1:9",
		"SEMICOLON(';') @ 1:10",
		"EOF('') @ 1:11",
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if got := tok.String(); got != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestFormatTokensJoinsWithNewlines(t *testing.T) {
	got := FormatTokens(Tokenize("1;"))
	if !strings.Contains(got, "\n") {
		t.Fatalf("FormatTokens output has no newline separator: %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (INT, SEMICOLON, EOF), got %d: %q", len(lines), got)
	}
}

func TestRunSourceShortCircuitsOnParseErrors(t *testing.T) {
	env := object.NewEnvironment()
	var out bytes.Buffer
	program, val, rtErr := RunSource("let x 5;", env, &out)

	if len(program.Errors) == 0 {
		t.Fatalf("expected parse errors")
	}
	if val != nil {
		t.Fatalf("val = %v, want nil (evaluator must not run on parse errors)", val)
	}
	if rtErr != nil {
		t.Fatalf("rtErr = %v, want nil", rtErr)
	}
}

func TestRunSourceEvaluatesOnSuccess(t *testing.T) {
	env := object.NewEnvironment()
	var out bytes.Buffer
	program, val, rtErr := RunSource("1 + 1", env, &out)

	if len(program.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", program.Errors)
	}
	if rtErr != nil {
		t.Fatalf("unexpected runtime error: %v", rtErr.Error())
	}
	i, ok := val.(*object.Integer)
	if !ok || i.Value != 2 {
		t.Fatalf("val = %v, want Integer(2)", val)
	}
}

func TestFormatParseErrorsSingleDashPrefix(t *testing.T) {
	got := FormatParseErrors([]string{"first error", "second error"})
	want := "- first error\n- second error"
	if got != want {
		t.Fatalf("FormatParseErrors() = %q, want %q", got, want)
	}
}

func TestFormatExecutionTime(t *testing.T) {
	got := FormatExecutionTime(1.5)
	want := "Execution time: 1.50 ms"
	if got != want {
		t.Fatalf("FormatExecutionTime(1.5) = %q, want %q", got, want)
	}
}

func TestDumpASTRoundTripsCanonicalForm(t *testing.T) {
	program := Parse("let x = 1 + 2;")
	if len(program.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", program.Errors)
	}
	want := "let x = (1 + 2);"
	if got := DumpAST(program); got != want {
		t.Fatalf("DumpAST() = %q, want %q", got, want)
	}
}

func TestFormatRuntimeErrorAndTrace(t *testing.T) {
	env := object.NewEnvironment()
	var out bytes.Buffer
	_, _, rtErr := RunSource("break;", env, &out)
	if rtErr == nil {
		t.Fatalf("expected a runtime error")
	}

	single := FormatRuntimeError(rtErr)
	if !strings.HasPrefix(single, "Error[INVALID_CONTROL_FLOW]") {
		t.Fatalf("FormatRuntimeError() = %q, want INVALID_CONTROL_FLOW prefix", single)
	}

	multi := FormatRuntimeErrorTrace(rtErr)
	if !strings.HasSuffix(multi, "    at <repl>(0 args) @ 1:1") {
		t.Fatalf("FormatRuntimeErrorTrace() = %q, must end with the root frame", multi)
	}
}
