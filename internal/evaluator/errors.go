package evaluator

import (
	"fmt"
	"strings"

	"github.com/monkeylang/monkey/internal/token"
)

// Error kind constants. The set is closed; every RuntimeError raised by
// Eval carries exactly one of these.
const (
	TypeMismatch         = "TYPE_MISMATCH"
	UnknownIdentifier    = "UNKNOWN_IDENTIFIER"
	NotCallable          = "NOT_CALLABLE"
	WrongArgumentCount   = "WRONG_ARGUMENT_COUNT"
	InvalidArgumentType  = "INVALID_ARGUMENT_TYPE"
	InvalidControlFlow   = "INVALID_CONTROL_FLOW"
	InvalidIndex         = "INVALID_INDEX"
	Unhashable           = "UNHASHABLE"
	DivisionByZero       = "DIVISION_BY_ZERO"
	UnsupportedOperation = "UNSUPPORTED_OPERATION"
)

// Frame is one entry of a RuntimeError's call stack: the callee name,
// the number of arguments it was invoked with, and the position of the
// call site (not the callee's own definition site).
type Frame struct {
	Name     string
	Args     int
	Position token.Position
}

func (f Frame) String() string {
	return fmt.Sprintf("    at %s(%d args) @ %s", f.Name, f.Args, f.Position)
}

// RootFrame is always the outermost entry of any RuntimeError's stack,
// representing top-level program evaluation.
var RootFrame = Frame{Name: "<repl>", Args: 0, Position: token.Position{Line: 1, Column: 1}}

// RuntimeError is raised by Eval on any evaluation failure. It carries
// the offending position and a snapshot of the call stack at the point
// of failure, outermost frame first.
type RuntimeError struct {
	Kind     string
	Message  string
	Position token.Position
	Frames   []Frame
}

// Error satisfies the standard error interface with the single-line
// rendering: Error[KIND] at line:col: message
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Error[%s] at %s: %s", e.Kind, e.Position, e.Message)
}

// StackTrace renders the full multi-line form: the single-line message
// followed by "Stack trace:" and one "    at name(n args) @ line:col"
// line per frame, innermost first. The outermost (root) frame is
// therefore always the last line.
func (e *RuntimeError) StackTrace() string {
	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteString("\nStack trace:")
	for i := len(e.Frames) - 1; i >= 0; i-- {
		b.WriteByte('\n')
		b.WriteString(e.Frames[i].String())
	}
	return b.String()
}

func newError(kind string, pos token.Position, frames []Frame, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Frames:   append([]Frame(nil), frames...),
	}
}
