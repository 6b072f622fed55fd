package lexer

import (
	"testing"

	"github.com/monkeylang/monkey/internal/token"
)

func TestNextTokenBasicSource(t *testing.T) {
	input := `let x = 1;`

	expected := []struct {
		typ token.Type
		lit string
		pos token.Position
	}{
		{token.LET, "let", token.Position{Line: 1, Column: 1}},
		{token.IDENT, "x", token.Position{Line: 1, Column: 5}},
		{token.ASSIGN, "=", token.Position{Line: 1, Column: 7}},
		{token.INT, "1", token.Position{Line: 1, Column: 9}},
		{token.SEMICOLON, ";", token.Position{Line: 1, Column: 10}},
		{token.EOF, "", token.Position{Line: 1, Column: 11}},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Errorf("token[%d] type = %v, want %v", i, tok.Type, exp.typ)
		}
		if tok.Literal != exp.lit {
			t.Errorf("token[%d] literal = %q, want %q", i, tok.Literal, exp.lit)
		}
		if tok.Position != exp.pos {
			t.Errorf("token[%d] position = %v, want %v", i, tok.Position, exp.pos)
		}
	}
}

func TestNextTokenOperatorsAndDelimiters(t *testing.T) {
	input := `=+-!*/<><=>=&&||==!=,;:(){}[]`

	expected := []token.Type{
		token.ASSIGN, token.PLUS, token.MINUS, token.BANG, token.ASTERISK, token.SLASH,
		token.LT, token.GT, token.LE, token.GE, token.AND, token.OR, token.EQ, token.NOT_EQ,
		token.COMMA, token.SEMICOLON, token.COLON,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token[%d] type = %v, want %v", i, tok.Type, want)
		}
	}
}

func TestNextTokenKeywords(t *testing.T) {
	input := `fn let true false if else return while break continue`
	expected := []token.Type{
		token.FUNCTION, token.LET, token.TRUE, token.FALSE, token.IF, token.ELSE,
		token.RETURN, token.WHILE, token.BREAK, token.CONTINUE, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token[%d] type = %v, want %v", i, tok.Type, want)
		}
	}
}

func TestNextTokenString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello world"`, "hello world"},
		{`""`, ""},
		{`"unterminated`, "unterminated"},
	}

	for _, tc := range tests {
		l := New(tc.input)
		tok := l.NextToken()
		if tok.Type != token.STRING {
			t.Errorf("Lex(%q): type = %v, want STRING", tc.input, tok.Type)
		}
		if tok.Literal != tc.want {
			t.Errorf("Lex(%q): literal = %q, want %q", tc.input, tok.Literal, tc.want)
		}
	}
}

func TestNextTokenIllegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %v, want ILLEGAL", tok.Type)
	}
	if tok.Literal != "@" {
		t.Fatalf("literal = %q, want %q", tok.Literal, "@")
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	input := "1 # this is ignored\n2"
	l := New(input)

	first := l.NextToken()
	if first.Type != token.INT || first.Literal != "1" {
		t.Fatalf("first token = %+v, want INT(1)", first)
	}
	second := l.NextToken()
	if second.Type != token.INT || second.Literal != "2" {
		t.Fatalf("second token = %+v, want INT(2)", second)
	}
	if second.Position.Line != 2 {
		t.Fatalf("second token line = %d, want 2", second.Position.Line)
	}
}

func TestLexIncludesTrailingEOF(t *testing.T) {
	tokens := Lex("5;")
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		t.Fatalf("Lex output does not end with EOF: %+v", tokens)
	}
}

func TestTokenStringFormat(t *testing.T) {
	tok := token.Token{Type: token.LET, Literal: "let", Position: token.Position{Line: 1, Column: 1}}
	want := "LET('let') @ 1:1"
	if got := tok.String(); got != want {
		t.Fatalf("Token.String() = %q, want %q", got, want)
	}
}
