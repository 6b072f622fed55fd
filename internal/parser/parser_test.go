package parser

import (
	"testing"

	"github.com/monkeylang/monkey/internal/lexer"
	"github.com/monkeylang/monkey/internal/token"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	if len(program.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, program.Errors)
	}
	return program
}

func TestLetStatementString(t *testing.T) {
	program := parseProgram(t, "let x = 5;")
	if len(program.Statements) != 1 {
		t.Fatalf("statements = %d, want 1", len(program.Statements))
	}
	want := "let x = 5;"
	if got := program.Statements[0].String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestReturnStatementString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"return 5;", "return 5;"},
		{"return;", "return;"},
	}
	for _, tc := range tests {
		program := parseProgram(t, tc.input)
		if got := program.Statements[0].String(); got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestOperatorPrecedenceString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b);"},
		{"!-a", "(!(-a));"},
		{"a + b + c", "((a + b) + c);"},
		{"a + b - c", "((a + b) - c);"},
		{"a * b * c", "((a * b) * c);"},
		{"a + b * c", "(a + (b * c));"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f);"},
		{"3 > 5 == false", "((3 > 5) == false);"},
		{"3 < 5 == true", "((3 < 5) == true);"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4);"},
		{"(5 + 5) * 2", "((5 + 5) * 2);"},
		{"-(5 + 5)", "(-(5 + 5));"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d);"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d);"},
		{"true && false || true", "((true && false) || true);"},
		{"a < b && b < c", "((a < b) && (b < c));"},
	}

	for _, tc := range tests {
		program := parseProgram(t, tc.input)
		if got := program.String(); got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIfExpressionString(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	want := "if (x < y) { x; };"
	if got := program.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestIfElseExpressionString(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	want := "if (x < y) { x; } else { y; };"
	if got := program.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestElseIfChainPositionUsesNestedIfToken(t *testing.T) {
	l := lexer.New("if (a) { 1 } else if (b) { 2 }")
	p := New(l)
	program := p.ParseProgram()
	if len(program.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", program.Errors)
	}

	stmt := program.Statements[0].(*ExpressionStatement)
	outer := stmt.Expression.(*IfExpression)
	nestedStmt := outer.Alternative.Statements[0].(*ExpressionStatement)
	nestedIf := nestedStmt.Expression.(*IfExpression)

	if nestedIf.Pos() != outer.Alternative.Token.Position {
		t.Fatalf("nested if position = %v, alternative block token position = %v, want equal",
			nestedIf.Pos(), outer.Alternative.Token.Position)
	}
	if nestedIf.Pos().Column == outer.Pos().Column && nestedIf.Pos().Line == outer.Pos().Line {
		t.Fatalf("nested if position should not equal outer if's own position")
	}
}

func TestFunctionLiteralString(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	want := "fn(x, y) { (x + y); };"
	if got := program.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestHashLiteralPreservesInsertionOrder(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	want := `{"one": 1, "two": 2, "three": 3};`
	if got := program.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestWhileBreakContinueString(t *testing.T) {
	program := parseProgram(t, "while (true) { break; continue; }")
	want := "while (true) { break; continue; }"
	if got := program.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseErrorsAccumulateRatherThanAbort(t *testing.T) {
	l := lexer.New("let x 5; let y = 10;")
	p := New(l)
	program := p.ParseProgram()

	if len(program.Errors) == 0 {
		t.Fatalf("expected at least one error")
	}
	want := "expected next token to be ASSIGN, got INT instead"
	if program.Errors[0] != want {
		t.Fatalf("Errors[0] = %q, want %q", program.Errors[0], want)
	}
}

func TestNoPrefixParseFnError(t *testing.T) {
	l := lexer.New(")")
	p := New(l)
	program := p.ParseProgram()

	if len(program.Errors) == 0 {
		t.Fatalf("expected an error")
	}
	want := "no prefix parse function for " + string(token.RPAREN) + " found"
	if program.Errors[0] != want {
		t.Fatalf("Errors[0] = %q, want %q", program.Errors[0], want)
	}
}
