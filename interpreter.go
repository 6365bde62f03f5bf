// Package scarab wires the value, parser and eval packages into a single
// embeddable interpreter, the same "thin driver over the core packages"
// role cli/main.go plays over sqlparser in the teacher repo.
package scarab

import (
	"os"

	"github.com/pianohacker/scarab/eval"
	"github.com/pianohacker/scarab/parser"
	"github.com/pianohacker/scarab/value"
)

// Interpreter is one scarab execution environment: a parser-agnostic
// wrapper around an eval.Context that callers (the REPL, `run`, tests) use
// instead of touching eval/parser directly.
type Interpreter struct {
	ctx *eval.Context
}

// New creates an Interpreter with a fresh global scope.
func New(opts ...eval.Option) *Interpreter {
	return &Interpreter{ctx: eval.NewContext(opts...)}
}

// Context exposes the underlying evaluation context, for callers (such as
// `scarab run`) that evaluate parsed forms themselves and read the error slot.
func (in *Interpreter) Context() *eval.Context {
	return in.ctx
}

// RunString parses source (attributed to file for error positions) as a
// full program and evaluates each top-level form in order, stopping at the
// first failure.
func (in *Interpreter) RunString(source string, file parser.FileRef) ([]value.Value, error) {
	forms, err := parser.ParseProgram(source, file)
	if err != nil {
		return nil, err
	}

	in.ctx.ClearError()
	results, ok := eval.EvalAll(in.ctx, forms)
	if !ok {
		return nil, eval.ErrorFromValue(in.ctx.Error())
	}
	return results, nil
}

// RunFile reads path and runs it as a program, attributing errors to path.
func (in *Interpreter) RunFile(path string) ([]value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return in.RunString(string(data), parser.FileRef(path))
}
