package parser

import (
	"strings"

	"github.com/monkeylang/monkey/internal/token"
)

// Node is implemented by every AST node; it exposes the position of the
// node's leading token.
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root AST node: an ordered list of statements plus the
// ordered list of parse-error strings accumulated while parsing it.
type Program struct {
	Statements []Statement
	Errors     []string
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Identifier is both a standalone expression and the name half of a
// Let statement.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) Pos() token.Position  { return i.Token.Position }
func (i *Identifier) String() string       { return i.Name }

// IntegerLiteral is a decimal integer literal expression.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) expressionNode()     {}
func (i *IntegerLiteral) Pos() token.Position  { return i.Token.Position }
func (i *IntegerLiteral) String() string       { return i.Token.Literal }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()    {}
func (b *BooleanLiteral) Pos() token.Position { return b.Token.Position }
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringLiteral holds the raw, unescaped string payload.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()    {}
func (s *StringLiteral) Pos() token.Position { return s.Token.Position }
func (s *StringLiteral) String() string      { return "\"" + s.Value + "\"" }

// PrefixExpression is a unary `!` or `-` application.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) expressionNode()    {}
func (p *PrefixExpression) Pos() token.Position { return p.Token.Position }
func (p *PrefixExpression) String() string {
	return "(" + p.Operator + p.Right.String() + ")"
}

// InfixExpression is a binary operator application.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (i *InfixExpression) expressionNode()    {}
func (i *InfixExpression) Pos() token.Position { return i.Token.Position }
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}

// BlockStatement is a brace-delimited sequence of statements.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) statementNode()    {}
func (b *BlockStatement) Pos() token.Position { return b.Token.Position }
func (b *BlockStatement) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, s := range b.Statements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// IfExpression is `if (cond) cons else alt`, with alt optional.
type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (i *IfExpression) expressionNode()    {}
func (i *IfExpression) Pos() token.Position { return i.Token.Position }
func (i *IfExpression) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(i.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(i.Alternative.String())
	}
	return sb.String()
}

// FunctionLiteral is `fn(params) body`.
type FunctionLiteral struct {
	Token      token.Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (f *FunctionLiteral) expressionNode()    {}
func (f *FunctionLiteral) Pos() token.Position { return f.Token.Position }
func (f *FunctionLiteral) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// CallExpression applies a callable expression to a list of arguments.
type CallExpression struct {
	Token     token.Token
	Function  Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode()    {}
func (c *CallExpression) Pos() token.Position { return c.Token.Position }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// ArrayLiteral is `[elems]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()    {}
func (a *ArrayLiteral) Pos() token.Position { return a.Token.Position }
func (a *ArrayLiteral) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// HashPair is one key/value entry of a HashLiteral, in source order.
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral is `{ key: value, ... }`, with pairs preserved in source
// (insertion) order.
type HashLiteral struct {
	Token token.Token
	Pairs []HashPair
}

func (h *HashLiteral) expressionNode()    {}
func (h *HashLiteral) Pos() token.Position { return h.Token.Position }
func (h *HashLiteral) String() string {
	pairs := make([]string, len(h.Pairs))
	for i, p := range h.Pairs {
		pairs[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// IndexExpression is `target[idx]`.
type IndexExpression struct {
	Token token.Token
	Left  Expression
	Index Expression
}

func (i *IndexExpression) expressionNode()    {}
func (i *IndexExpression) Pos() token.Position { return i.Token.Position }
func (i *IndexExpression) String() string {
	return "(" + i.Left.String() + "[" + i.Index.String() + "])"
}

// LetStatement binds Value to Name in the innermost scope.
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (l *LetStatement) statementNode()    {}
func (l *LetStatement) Pos() token.Position { return l.Token.Position }
func (l *LetStatement) String() string {
	return "let " + l.Name.String() + " = " + l.Value.String() + ";"
}

// ReturnStatement unwinds to the enclosing function (or program) value.
// Value is nil when the statement omits an expression.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (r *ReturnStatement) statementNode()    {}
func (r *ReturnStatement) Pos() token.Position { return r.Token.Position }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// WhileStatement loops Body while Condition evaluates truthy.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (w *WhileStatement) statementNode()    {}
func (w *WhileStatement) Pos() token.Position { return w.Token.Position }
func (w *WhileStatement) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// BreakStatement exits the nearest enclosing while loop.
type BreakStatement struct {
	Token token.Token
}

func (b *BreakStatement) statementNode()    {}
func (b *BreakStatement) Pos() token.Position { return b.Token.Position }
func (b *BreakStatement) String() string      { return "break;" }

// ContinueStatement skips to the next iteration of the nearest
// enclosing while loop.
type ContinueStatement struct {
	Token token.Token
}

func (c *ContinueStatement) statementNode()    {}
func (c *ContinueStatement) Pos() token.Position { return c.Token.Position }
func (c *ContinueStatement) String() string      { return "continue;" }

// ExpressionStatement wraps an expression evaluated for its value.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()    {}
func (e *ExpressionStatement) Pos() token.Position { return e.Token.Position }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ""
	}
	return e.Expression.String() + ";"
}
