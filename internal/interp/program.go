package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/value"
)

// Run evaluates a full program (spec §4.3, Program handler). If the
// program is the root/main script, the global frame was already
// pre-populated with the `global` hash binding by New(); statements
// execute sequentially and the last statement's value is the result.
func (i *Interpreter) Run(prog *ast.Program) (value.Value, error) {
	root := i.Stack.Root()
	var result value.Value = value.Null{}
	for _, stmt := range prog.Body {
		v, err := i.evaluateStatement(stmt, root)
		if err != nil {
			if exit, ok := err.(exitSignal); ok {
				i.exitRequested = true
				i.exitCode = exit.code
				return result, nil
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}
