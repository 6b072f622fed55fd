// Package runner wires the lexer, parser, and evaluator together into
// the entry points a driver (CLI or REPL) calls: tokenizing, parsing,
// evaluating, and rendering tokens/AST/errors in the exact textual
// formats downstream tooling compares against.
package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/monkeylang/monkey/internal/evaluator"
	"github.com/monkeylang/monkey/internal/lexer"
	"github.com/monkeylang/monkey/internal/object"
	"github.com/monkeylang/monkey/internal/parser"
	"github.com/monkeylang/monkey/internal/token"
)

// Tokenize lexes src fully, including the trailing EOF token.
func Tokenize(src string) []token.Token {
	return lexer.Lex(src)
}

// Parse lexes and parses src into a Program. Check Program.Errors
// before evaluating; the evaluator must never run against a Program
// with non-empty errors.
func Parse(src string) *parser.Program {
	l := lexer.New(src)
	p := parser.New(l)
	return p.ParseProgram()
}

// Eval evaluates an already-parsed, error-free Program against env,
// writing any `puts` output to out.
func Eval(program *parser.Program, env *object.Environment, out io.Writer) (object.Value, *evaluator.RuntimeError) {
	ev := evaluator.New(out)
	return ev.Eval(program, env)
}

// RunSource parses and, if parsing succeeded, evaluates src in one
// step. Parse errors short-circuit evaluation entirely, matching the
// rule that the evaluator never runs when Program.Errors is non-empty.
func RunSource(src string, env *object.Environment, out io.Writer) (*parser.Program, object.Value, *evaluator.RuntimeError) {
	program := Parse(src)
	if len(program.Errors) > 0 {
		return program, nil, nil
	}
	val, err := Eval(program, env, out)
	return program, val, err
}

// FormatTokens renders the --tokens output contract: one
// `TYPE('literal') @ line:col` line per token, EOF included.
func FormatTokens(tokens []token.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// DumpAST renders the --ast output contract: the canonical
// stringification of every top-level statement, one per line.
func DumpAST(program *parser.Program) string {
	var b strings.Builder
	for i, stmt := range program.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

// FormatParseErrors renders the `Parse errors in <path>:` block body
// (the prefix line itself is the caller's responsibility, since the
// REPL uses a different banner for the same error list).
func FormatParseErrors(errs []string) string {
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(e)
	}
	return b.String()
}

// FormatRuntimeError renders the single-line `Error[KIND] at line:col:
// message` form.
func FormatRuntimeError(err *evaluator.RuntimeError) string {
	return err.Error()
}

// FormatRuntimeErrorTrace renders the full multiline form: the
// single-line message, `Stack trace:`, then one frame line per call,
// innermost first, ending with the synthetic root frame.
func FormatRuntimeErrorTrace(err *evaluator.RuntimeError) string {
	return err.StackTrace()
}

// FormatExecutionTime renders the full bench-mode timing line,
// `Execution time:` prefix included (the caller writes it to the chosen
// stream).
func FormatExecutionTime(ms float64) string {
	return fmt.Sprintf("Execution time: %.2f ms", ms)
}
