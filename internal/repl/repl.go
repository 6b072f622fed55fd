// Package repl implements the interactive session's state machine: the
// completeness predicate, meta-command dispatch, and multiline input
// buffering. It stays free of any terminal/line-editing library so it
// remains a plain, unit-testable buffering layer — the line reader
// loop itself lives in cmd/monkey.
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/monkeylang/monkey/internal/evaluator"
	"github.com/monkeylang/monkey/internal/object"
	"github.com/monkeylang/monkey/internal/parser"
	"github.com/monkeylang/monkey/internal/runner"
)

const monkeyFace = "            __,____\n" +
	"   .--.  .-\"     \"-.  .--.\n" +
	"  / .. \\/  .-. .-.  \\/ .. \\\n" +
	" | |  '|  /   Y   \\  |'  | |\n" +
	" | \\   \\  \\ 0 | 0 /  /   / |\n" +
	"  \\ '- ,\\.-\"`` ``\"-./, -' /\n" +
	"   `'-' /_   ^ ^   _\\ '-'`\n" +
	"       |  \\._   _./  |\n" +
	"       \\   \\ `~` /   /\n" +
	"        '._ '-=-' _.'\n" +
	"           '-----'"

// Outcome is what one HandleLine call produces. Empty is true for a
// blank line or a still-incomplete multiline input; Text is the full
// response body to print otherwise; Quit asks the driver to stop.
type Outcome struct {
	Empty bool
	Text  string
	Quit  bool
}

// Session is a stateful REPL: one persistent Environment threaded
// across every submitted input, plus the set of every top-level `let`
// name ever bound (for `:env`, which must reflect names even after
// they've been shadowed by a later rebinding).
type Session struct {
	env      *object.Environment
	out      io.Writer
	bindings map[string]struct{}
	pending  []string
	lastLine string
}

// NewSession creates a Session with a fresh root Environment. puts
// output during evaluation is written to out.
func NewSession(out io.Writer) *Session {
	return &Session{
		env:      object.NewEnvironment(),
		out:      out,
		bindings: map[string]struct{}{},
	}
}

// LoadPrelude evaluates src into the session's own environment ahead
// of any interactive input, so `let` bindings it makes are visible for
// the rest of the session. Parse errors are reported via the returned
// Program's Errors; a runtime error is returned directly.
func (s *Session) LoadPrelude(src string) (*parser.Program, object.Value, *evaluator.RuntimeError) {
	program, val, rtErr := runner.RunSource(src, s.env, s.out)
	if rtErr == nil && len(program.Errors) == 0 {
		s.rememberBindings(program)
	}
	return program, val, rtErr
}

// HandleLine feeds one line of input (as read by the driver's line
// reader, newline already stripped or not — both are accepted) into
// the session.
func (s *Session) HandleLine(line string) Outcome {
	raw := strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Outcome{Empty: true}
	}

	if len(s.pending) == 0 && strings.HasPrefix(trimmed, ":") {
		return s.evalMeta(trimmed)
	}

	s.pending = append(s.pending, raw)
	pendingSource := strings.Join(s.pending, "\n")
	if !IsComplete(pendingSource) {
		return Outcome{Empty: true}
	}
	s.pending = nil

	program, val, rtErr := runner.RunSource(pendingSource, s.env, s.out)
	if len(program.Errors) > 0 {
		return Outcome{Text: formatParseErrorBanner(program.Errors)}
	}
	if rtErr != nil {
		return Outcome{Text: rtErr.StackTrace()}
	}

	s.lastLine = raw
	s.rememberBindings(program)
	return Outcome{Text: val.Inspect()}
}

func (s *Session) rememberBindings(program *parser.Program) {
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*parser.LetStatement); ok {
			s.bindings[let.Name.Name] = struct{}{}
		}
	}
}

func (s *Session) evalMeta(line string) Outcome {
	body := line[1:]
	cmd, arg := splitCommand(body)

	switch cmd {
	case "help":
		return Outcome{Text: "Commands: :help, :tokens [input], :ast [input], :env, :quit, :exit"}
	case "tokens":
		return Outcome{Text: s.renderTokens(arg)}
	case "ast":
		return Outcome{Text: s.renderAST(arg)}
	case "env":
		return Outcome{Text: s.renderEnv()}
	case "quit", "exit":
		return Outcome{Quit: true}
	default:
		return Outcome{Text: fmt.Sprintf("Unknown command: :%s", cmd)}
	}
}

func splitCommand(body string) (cmd, arg string) {
	i := strings.IndexFunc(body, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return body, ""
	}
	return body[:i], strings.TrimSpace(body[i+1:])
}

func (s *Session) renderTokens(arg string) string {
	src := arg
	if src == "" {
		src = s.lastLine
	}
	if src == "" {
		return "TOKENS:\n  (no input)"
	}
	lines := strings.Split(runner.FormatTokens(runner.Tokenize(src)), "\n")
	return "TOKENS:\n" + indentLines(lines)
}

func (s *Session) renderAST(arg string) string {
	src := arg
	if src == "" {
		src = s.lastLine
	}
	if src == "" {
		return "AST:\n  (no input)"
	}
	program := runner.Parse(src)
	if len(program.Errors) > 0 {
		lines := make([]string, len(program.Errors))
		for i, e := range program.Errors {
			lines[i] = "- " + e
		}
		return "AST parse errors:\n" + indentLines(lines)
	}
	return "AST:\n  " + runner.DumpAST(program)
}

func (s *Session) renderEnv() string {
	if len(s.bindings) == 0 {
		return "ENV:\n  (empty)"
	}
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := []string{"ENV:"}
	for _, name := range names {
		val, ok := s.env.Get(name)
		rendered := "<unbound>"
		if ok {
			rendered = val.Inspect()
		}
		lines = append(lines, fmt.Sprintf("  %s = %s", name, rendered))
	}
	return strings.Join(lines, "\n")
}

func indentLines(lines []string) string {
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func formatParseErrorBanner(errs []string) string {
	lines := []string{
		monkeyFace,
		"Woops! We ran into some monkey business here!",
		" parser errors:",
	}
	for _, e := range errs {
		lines = append(lines, "  - "+e)
	}
	return strings.Join(lines, "\n")
}

// IsComplete reports whether source has balanced, non-negative bracket
// counters for ()/[]/{} and no currently-open string literal. A
// counter going negative makes the input complete immediately, so a
// stray closing bracket surfaces as a parse error instead of hanging
// the REPL waiting for more input.
func IsComplete(source string) bool {
	var paren, brace, bracket int
	inString := false

	for _, line := range strings.Split(source, "\n") {
	chars:
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if inString {
				if ch == '"' {
					inString = false
				}
				continue
			}
			switch ch {
			case '#':
				break chars
			case '"':
				inString = true
			case '(':
				paren++
			case ')':
				paren--
				if paren < 0 {
					return true
				}
			case '{':
				brace++
			case '}':
				brace--
				if brace < 0 {
					return true
				}
			case '[':
				bracket++
			case ']':
				bracket--
				if bracket < 0 {
					return true
				}
			}
		}
	}

	return !inString && paren == 0 && brace == 0 && bracket == 0
}
