package interp

import (
	"fmt"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluateStatement dispatches on node kind (spec §4.3). Expressions are
// statements too (every expression node satisfies ast.Statement); the
// default case below routes them to evaluateExpression.
func (i *Interpreter) evaluateStatement(node ast.Statement, f *frame.Frame) (value.Value, error) {
	switch n := node.(type) {
	case *ast.IfStatement:
		return i.evaluateIf(n, f)
	case *ast.CaseStatement:
		return i.evaluateCase(n, f)
	case *ast.WhileStatement:
		return i.evaluateWhile(n, f)
	case *ast.RepeatStatement:
		return i.evaluateRepeat(n, f)
	case *ast.ForStatement:
		return i.evaluateFor(n, f)
	case *ast.TryStatement:
		return i.evaluateTry(n, f)
	case *ast.PrintStatement:
		return i.evaluatePrint(n, f)
	case *ast.BreakStatement:
		return i.evaluateBreak(n, f)
	case *ast.NextStatement:
		return i.evaluateNext(n, f)
	case *ast.ReturnStatement:
		return i.evaluateReturn(n, f)
	case *ast.ThrowStatement:
		return i.evaluateThrow(n, f)
	case *ast.ExitStatement:
		return i.evaluateExit(n, f)
	case *ast.FunctionDeclaration:
		return i.evaluateFunctionDeclaration(n, f)
	case *ast.ClassDeclaration:
		return i.evaluateClassDeclaration(n, f)
	case *ast.PackageDeclaration:
		return i.evaluatePackageDeclaration(n, f)
	case *ast.ImportStatement:
		return i.evaluateImport(n, f)
	case *ast.ExportStatement:
		return i.evaluateExport(n, f)
	case ast.Expression:
		return i.evaluateExpression(n, f)
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// evaluateBody runs a sequence of statements directly in the given frame
// (no child scope pushed) and returns the last value. If/case, try,
// callable and package bodies call this; loop bodies go through
// runLoopBody instead.
func (i *Interpreter) evaluateBody(body []ast.Statement, f *frame.Frame) (value.Value, error) {
	var result value.Value = value.Null{}
	for _, stmt := range body {
		v, err := i.evaluateStatement(stmt, f)
		if err != nil {
			return nil, err
		}
		if f.Flags.Has(frame.FlagReturn) {
			return f.ReturnValue, nil
		}
		result = v
	}
	return result, nil
}

func (i *Interpreter) evaluateReturn(n *ast.ReturnStatement, f *frame.Frame) (value.Value, error) {
	var v value.Value = value.Null{}
	if n.Value != nil {
		var err error
		v, err = i.evaluateExpression(n.Value, f)
		if err != nil {
			return nil, err
		}
	}
	f.ReturnValue = v
	f.Flags |= frame.FlagReturn
	return nil, returnSignal{value: v}
}

func (i *Interpreter) evaluateThrow(n *ast.ThrowStatement, f *frame.Frame) (value.Value, error) {
	v, err := i.evaluateExpression(n.Value, f)
	if err != nil {
		return nil, err
	}
	return nil, raiseSignal{value: v}
}

func (i *Interpreter) evaluateExit(n *ast.ExitStatement, f *frame.Frame) (value.Value, error) {
	if n.Condition != nil {
		cond, err := i.evaluateExpression(n.Condition, f)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return value.Null{}, nil
		}
	}
	var v value.Value = value.Integer(0)
	if n.Value != nil {
		var err error
		v, err = i.evaluateExpression(n.Value, f)
		if err != nil {
			return nil, err
		}
	}
	code := 1
	if iv, ok := v.(value.Integer); ok {
		code = int(iv)
	}
	return nil, exitSignal{code: code}
}

func (i *Interpreter) evaluatePrint(n *ast.PrintStatement, f *frame.Frame) (value.Value, error) {
	v, err := i.evaluateExpression(n.Value, f)
	if err != nil {
		return nil, err
	}
	if !i.Options.Silent {
		s := value.Stringify(v)
		if n.Newline {
			fmt.Fprintln(i.Stdout, s)
		} else {
			fmt.Fprint(i.Stdout, s)
		}
	}
	return v, nil
}
