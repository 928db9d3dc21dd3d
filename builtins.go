// builtins.go — the fixed built-in function table.
//
// The teacher exposes built-ins through RegisterNative/ParamSpec/CallCtx, a
// name-addressable registry meant for a large, pluggable standard library.
// The VM's GetBuiltin opcode instead needs built-ins addressable by a small
// integer operand fixed at compile time, so this file collapses that system
// down to the fixed slice every Monkey implementation in the corpus uses:
// len/first/last/rest/push/puts. Builtins is the index-addressable view the
// compiler's symbol table and the VM use; builtinsByName is what the
// evaluator uses to go from an identifier to its built-in.
package monkey

import "fmt"

// Builtins is the fixed, order-significant table of built-in functions. The
// compiler's symbol table assigns each one a Builtin-scope index equal to
// its position here, and the VM's OpGetBuiltin operand is that index.
var Builtins = []*Builtin{
	{Name: "len", Fn: builtinLen},
	{Name: "first", Fn: builtinFirst},
	{Name: "last", Fn: builtinLast},
	{Name: "rest", Fn: builtinRest},
	{Name: "push", Fn: builtinPush},
	{Name: "puts", Fn: builtinPuts},
}

var builtinsByName = func() map[string]*Builtin {
	m := make(map[string]*Builtin, len(Builtins))
	for _, b := range Builtins {
		m[b.Name] = b
	}
	return m
}()

// BuiltinIndex returns the slot of the named builtin in Builtins, or -1.
func BuiltinIndex(name string) int {
	for i, b := range Builtins {
		if b.Name == name {
			return i
		}
	}
	return -1
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	n := len(arr.Elements)
	if n == 0 {
		return NULL
	}
	newElems := make([]Object, n-1)
	copy(newElems, arr.Elements[1:])
	return &Array{Elements: newElems}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	n := len(arr.Elements)
	newElems := make([]Object, n+1)
	copy(newElems, arr.Elements)
	newElems[n] = args[1]
	return &Array{Elements: newElems}
}

func builtinPuts(args ...Object) Object {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return NULL
}
