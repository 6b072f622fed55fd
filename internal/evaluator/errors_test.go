package evaluator

import (
	"testing"

	"github.com/monkeylang/monkey/internal/token"
)

func TestRuntimeErrorSingleLineFormat(t *testing.T) {
	err := newError(DivisionByZero, token.Position{Line: 3, Column: 7}, []Frame{RootFrame}, "division by zero")
	want := "Error[DIVISION_BY_ZERO] at 3:7: division by zero"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestRuntimeErrorStackTraceSingleFrame(t *testing.T) {
	err := newError(UnknownIdentifier, token.Position{Line: 1, Column: 1}, []Frame{RootFrame}, "identifier not found: x")
	want := "Error[UNKNOWN_IDENTIFIER] at 1:1: identifier not found: x\n" +
		"Stack trace:\n" +
		"    at <repl>(0 args) @ 1:1"
	if got := err.StackTrace(); got != want {
		t.Fatalf("StackTrace() = %q, want %q", got, want)
	}
}

func TestFrameStringFormat(t *testing.T) {
	f := Frame{Name: "add", Args: 2, Position: token.Position{Line: 4, Column: 9}}
	want := "    at add(2 args) @ 4:9"
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
