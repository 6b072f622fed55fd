package evaluator

import (
	"fmt"
	"io"

	"github.com/monkeylang/monkey/internal/object"
)

// newBuiltins constructs the six native functions. puts writes to out,
// which the caller (REPL or file runner) controls.
func newBuiltins(out io.Writer) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"len": {
			Name:  "len",
			Arity: 1,
			Fn: func(args []object.Value) (object.Value, error) {
				switch v := args[0].(type) {
				case *object.String:
					return &object.Integer{Value: int64(len(v.Value))}, nil
				case *object.Array:
					return &object.Integer{Value: int64(len(v.Elements))}, nil
				default:
					return nil, fmt.Errorf("argument to `len` not supported, got %s", v.Type())
				}
			},
		},
		"first": {
			Name:  "first",
			Arity: 1,
			Fn: func(args []object.Value) (object.Value, error) {
				arr, ok := args[0].(*object.Array)
				if !ok {
					return nil, fmt.Errorf("argument to `first` must be Array, got %s", args[0].Type())
				}
				if len(arr.Elements) == 0 {
					return object.NullValue, nil
				}
				return arr.Elements[0], nil
			},
		},
		"last": {
			Name:  "last",
			Arity: 1,
			Fn: func(args []object.Value) (object.Value, error) {
				arr, ok := args[0].(*object.Array)
				if !ok {
					return nil, fmt.Errorf("argument to `last` must be Array, got %s", args[0].Type())
				}
				if len(arr.Elements) == 0 {
					return object.NullValue, nil
				}
				return arr.Elements[len(arr.Elements)-1], nil
			},
		},
		"rest": {
			Name:  "rest",
			Arity: 1,
			Fn: func(args []object.Value) (object.Value, error) {
				arr, ok := args[0].(*object.Array)
				if !ok {
					return nil, fmt.Errorf("argument to `rest` must be Array, got %s", args[0].Type())
				}
				if len(arr.Elements) == 0 {
					return object.NullValue, nil
				}
				rest := make([]object.Value, len(arr.Elements)-1)
				copy(rest, arr.Elements[1:])
				return &object.Array{Elements: rest}, nil
			},
		},
		"push": {
			Name:  "push",
			Arity: 2,
			Fn: func(args []object.Value) (object.Value, error) {
				arr, ok := args[0].(*object.Array)
				if !ok {
					return nil, fmt.Errorf("argument to `push` must be Array, got %s", args[0].Type())
				}
				next := make([]object.Value, len(arr.Elements)+1)
				copy(next, arr.Elements)
				next[len(arr.Elements)] = args[1]
				return &object.Array{Elements: next}, nil
			},
		},
		"puts": {
			Name:  "puts",
			Arity: -1,
			Fn: func(args []object.Value) (object.Value, error) {
				for _, a := range args {
					fmt.Fprintln(out, a.Inspect())
				}
				return object.NullValue, nil
			},
		},
	}
}
