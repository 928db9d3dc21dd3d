// interpreter.go — SINGLE PUBLIC API SURFACE for the Monkey runtime.
//
// OVERVIEW
// ========
// This file exposes the entire public surface most callers need. An
// Interpreter wraps the two execution backends (tree-walking Eval and the
// compile-to-bytecode VM) behind narrow entry points, without requiring a
// caller to know about Environment, SymbolTable, or Frame directly. This
// mirrors the teacher's "single public API surface" file, which hides
// bytecode generation and the VM behind one type constructed once and
// reused across calls.
//
// Entry points differ in whether they start a fresh session or continue a
// previous one, the same ephemeral-vs-persistent distinction the teacher
// draws between EvalSource and EvalPersistentSource:
//   - Ephemeral (Run/RunVM): evaluate src in a throwaway child Environment
//     (tree-walking) or a freshly compiled, freshly globalled VM run, so
//     nothing persists afterward.
//   - Persistent (RunPersistent/RunVMPersistent): evaluate in the
//     Interpreter's own retained Environment, or compile against its own
//     retained SymbolTable/globals, so a later call sees names bound by an
//     earlier one. This is what the REPL uses.
package monkey

import "fmt"

// Interpreter is a reusable handle onto one Monkey runtime session.
type Interpreter struct {
	env *Environment

	symbolTable *SymbolTable
	constants   []Object
	globals     []Object
}

// NewInterpreter creates an Interpreter with a fresh global environment and
// VM state.
func NewInterpreter() *Interpreter {
	symbolTable := NewSymbolTable()
	for i, b := range Builtins {
		symbolTable.DefineBuiltin(i, b.Name)
	}

	return &Interpreter{
		env:         NewEnvironment(),
		symbolTable: symbolTable,
		globals:     make([]Object, GlobalsSize),
	}
}

// Parse lexes and parses src, returning the AST and any collected errors.
// A non-empty error slice does not necessarily mean parsing produced no
// usable AST: the parser recovers at statement boundaries and keeps going.
func Parse(src string) (*Program, []error) {
	return ParseSource(src)
}

// Run evaluates src with the tree-walking evaluator in a fresh child scope
// of the Interpreter's global environment; bindings made during the run do
// not persist to later calls.
func (in *Interpreter) Run(src string) (Object, error) {
	program, errs := ParseSource(src)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	result := Eval(program, NewEnclosedEnvironment(in.env))
	if IsError(result) {
		return nil, fmt.Errorf("%s", result.(*Error).Message)
	}
	return result, nil
}

// RunPersistent evaluates src directly in the Interpreter's own global
// environment, so later calls observe bindings this call made.
func (in *Interpreter) RunPersistent(src string) (Object, error) {
	program, errs := ParseSource(src)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	result := Eval(program, in.env)
	if IsError(result) {
		return nil, fmt.Errorf("%s", result.(*Error).Message)
	}
	return result, nil
}

// CompileSource parses and compiles src into Bytecode using a fresh
// top-level compiler; it does not touch the Interpreter's retained VM
// state.
func CompileSource(src string) (*Bytecode, error) {
	program, errs := ParseSource(src)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	comp := NewCompiler()
	if err := comp.Compile(program); err != nil {
		return nil, err
	}
	return comp.Bytecode(), nil
}

// RunVM compiles and runs src on a fresh VM; nothing persists afterward.
func (in *Interpreter) RunVM(src string) (Object, error) {
	bytecode, err := CompileSource(src)
	if err != nil {
		return nil, err
	}
	machine := NewVM(bytecode)
	if err := machine.Run(); err != nil {
		return nil, err
	}
	return machine.LastPoppedStackElem(), nil
}

// RunVMPersistent compiles src against the Interpreter's retained
// SymbolTable/constants and runs it against its retained globals, so later
// calls see this call's global bindings and constants.
func (in *Interpreter) RunVMPersistent(src string) (Object, error) {
	program, errs := ParseSource(src)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	comp := NewCompilerWithState(in.symbolTable, in.constants)
	if err := comp.Compile(program); err != nil {
		return nil, err
	}
	code := comp.Bytecode()
	in.constants = code.Constants

	machine := NewVMWithGlobalsStore(code, in.globals)
	if err := machine.Run(); err != nil {
		return nil, err
	}
	in.globals = machine.Globals()

	return machine.LastPoppedStackElem(), nil
}

// Disassemble compiles src and renders its instruction stream as text, for
// the CLI's --mode=compiler inspection dump.
func Disassemble(src string) (string, error) {
	bytecode, err := CompileSource(src)
	if err != nil {
		return "", err
	}
	return bytecode.Instructions.String(), nil
}
