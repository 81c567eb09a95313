package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluateIf implements spec §4.3: evaluate conditions left-to-right,
// execute the first truthy branch's body, otherwise the else body.
func (i *Interpreter) evaluateIf(n *ast.IfStatement, f *frame.Frame) (value.Value, error) {
	cond, err := i.evaluateExpression(n.Condition, f)
	if err != nil {
		return nil, err
	}
	if mathvisitor.IsTruthy(cond) {
		return i.evaluateBody(n.Body, f)
	}
	for _, ei := range n.ElseIfs {
		c, err := i.evaluateExpression(ei.Condition, f)
		if err != nil {
			return nil, err
		}
		if mathvisitor.IsTruthy(c) {
			return i.evaluateBody(ei.Body, f)
		}
	}
	if n.ElseBody != nil {
		return i.evaluateBody(n.ElseBody, f)
	}
	return value.Null{}, nil
}

// evaluateCase implements spec §4.3: evaluate the test value, then run
// the first `when` whose condition is structurally equal to it; else the
// else body.
func (i *Interpreter) evaluateCase(n *ast.CaseStatement, f *frame.Frame) (value.Value, error) {
	test, err := i.evaluateExpression(n.Test, f)
	if err != nil {
		return nil, err
	}
	for _, when := range n.Whens {
		c, err := i.evaluateExpression(when.Condition, f)
		if err != nil {
			return nil, err
		}
		if value.DeepEqual(test, c) {
			return i.evaluateBody(when.Body, f)
		}
	}
	if n.ElseBody != nil {
		return i.evaluateBody(n.ElseBody, f)
	}
	return value.Null{}, nil
}

func (i *Interpreter) evaluateBreak(n *ast.BreakStatement, f *frame.Frame) (value.Value, error) {
	if n.Condition != nil {
		cond, err := i.evaluateExpression(n.Condition, f)
		if err != nil {
			return nil, err
		}
		if !mathvisitor.IsTruthy(cond) {
			return value.Null{}, nil
		}
	}
	return nil, breakSignal{}
}

func (i *Interpreter) evaluateNext(n *ast.NextStatement, f *frame.Frame) (value.Value, error) {
	if n.Condition != nil {
		cond, err := i.evaluateExpression(n.Condition, f)
		if err != nil {
			return nil, err
		}
		if !mathvisitor.IsTruthy(cond) {
			return value.Null{}, nil
		}
	}
	return nil, nextSignal{}
}
