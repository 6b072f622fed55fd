// Package object defines the runtime value model: tagged Value
// variants, hashability, Inspect rendering, and the lexical
// Environment that binds identifiers to values.
package object

import (
	"fmt"
	"strings"

	"github.com/monkeylang/monkey/internal/parser"
)

// Type names used in error messages and Hashable discrimination.
const (
	IntegerType  = "Integer"
	BooleanType  = "Boolean"
	StringType   = "String"
	NullType     = "Null"
	ArrayType    = "Array"
	HashType     = "Hash"
	FunctionType = "Function"
	BuiltinType  = "Builtin"
)

// Value is implemented by every runtime value variant.
type Value interface {
	Type() string
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i *Integer) Type() string    { return IntegerType }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is `true` or `false`.
type Boolean struct{ Value bool }

func (b *Boolean) Type() string { return BooleanType }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// String is a raw byte string; no escape interpretation occurs anywhere
// in the pipeline.
type String struct{ Value string }

func (s *String) Type() string    { return StringType }
func (s *String) Inspect() string { return s.Value }

// Null is the single absent-value sentinel.
type Null struct{}

func (n *Null) Type() string    { return NullType }
func (n *Null) Inspect() string { return "null" }

var NullValue = &Null{}

// Array is an ordered, mutable-by-replacement sequence of values.
type Array struct{ Elements []Value }

func (a *Array) Type() string { return ArrayType }
func (a *Array) Inspect() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.Inspect()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// HashKey identifies a hashable value for use as a Hash key. Only
// Integer, Boolean, and String values are hashable.
type HashKey struct {
	Type  string
	Value uint64
}

// Hashable is implemented by value variants that may key a Hash.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: IntegerType, Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: BooleanType, Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv64a(s.Value)
	return HashKey{Type: StringType, Value: h}
}

func fnv64a(s string) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	var h uint64 = offset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// HashPair is one key/value entry of a Hash, retaining the original key
// Value (not just its HashKey) for Inspect rendering.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash is an insertion-order-preserving mapping from HashKey to
// (key, value) pairs. Duplicate keys use last-write-wins for the value
// while keeping the key's first-seen position in iteration order.
type Hash struct {
	index map[HashKey]int
	order []HashPair
}

// NewHash constructs an empty Hash.
func NewHash() *Hash {
	return &Hash{index: map[HashKey]int{}}
}

// Set inserts or updates a key/value pair.
func (h *Hash) Set(key HashKey, pair HashPair) {
	if idx, ok := h.index[key]; ok {
		h.order[idx] = pair
		return
	}
	h.index[key] = len(h.order)
	h.order = append(h.order, pair)
}

// Get looks up a value by its HashKey.
func (h *Hash) Get(key HashKey) (Value, bool) {
	idx, ok := h.index[key]
	if !ok {
		return nil, false
	}
	return h.order[idx].Value, true
}

// Pairs returns the stored pairs in insertion order.
func (h *Hash) Pairs() []HashPair { return h.order }

func (h *Hash) Type() string { return HashType }
func (h *Hash) Inspect() string {
	pairs := make([]string, len(h.order))
	for i, p := range h.order {
		pairs[i] = p.Key.Inspect() + ": " + p.Value.Inspect()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// Function is a user-defined closure: parameters and body shared by
// reference with the AST, plus the environment captured at definition
// time (what makes closures work, including cyclic self-reference).
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *Environment
}

func (f *Function) Type() string { return FunctionType }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// BuiltinFunction is the native Go implementation behind a Builtin
// value. A non-nil error is always surfaced by the evaluator as
// INVALID_ARGUMENT_TYPE; arity is checked by the evaluator before Fn is
// ever invoked.
type BuiltinFunction func(args []Value) (Value, error)

// Builtin wraps one of the six native functions. Arity of -1 marks a
// variadic builtin (only `puts`).
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunction
}

func (b *Builtin) Type() string    { return BuiltinType }
func (b *Builtin) Inspect() string { return "builtin function" }

// Environment is a lexical binding store with an optional parent chain.
// Resolution walks outward; new bindings always land in the innermost
// scope, i.e. the Environment Let is evaluated against.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: map[string]Value{}}
}

// NewEnclosedEnvironment creates a child environment, used for function
// calls. Blocks do not get one; they run in the enclosing environment.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: map[string]Value{}, outer: outer}
}

// Get resolves name by walking the environment chain outward.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return v, ok
}

// Set binds name to val in this environment (the innermost scope for
// whatever call site holds this Environment).
func (e *Environment) Set(name string, val Value) Value {
	e.store[name] = val
	return val
}
