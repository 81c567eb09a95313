package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/value"
)

// runLoopBody executes body statement-by-statement in f (no new frame —
// spec §4.4). It returns (stop=true) when the loop should terminate
// entirely: on an uncaught break, a propagating Return, or any error.
// `next` is absorbed here and simply ends the current iteration.
func (i *Interpreter) runLoopBody(body []ast.Statement, f *frame.Frame) (stop bool, err error) {
	for _, stmt := range body {
		_, err := i.evaluateStatement(stmt, f)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return true, nil
			case nextSignal:
				return false, nil
			default:
				return true, err
			}
		}
		if f.Flags.Has(frame.FlagReturn) {
			return true, nil
		}
	}
	return false, nil
}

func (i *Interpreter) evaluateWhile(n *ast.WhileStatement, f *frame.Frame) (value.Value, error) {
	for {
		cond, err := i.evaluateExpression(n.Condition, f)
		if err != nil {
			return nil, err
		}
		if !mathvisitor.IsTruthy(cond) {
			break
		}
		stop, err := i.runLoopBody(n.Body, f)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return value.Null{}, nil
}

// evaluateRepeat implements spec §4.4: bind the optional alias to 1..N
// inclusive; erase it on loop exit if it was introduced.
func (i *Interpreter) evaluateRepeat(n *ast.RepeatStatement, f *frame.Frame) (value.Value, error) {
	countVal, err := i.evaluateExpression(n.Count, f)
	if err != nil {
		return nil, err
	}
	count, ok := countVal.(value.Integer)
	if !ok {
		return nil, kerrRangeBounds(n.Pos())
	}

	introduced := n.Alias != "" && !f.Env.HasLocal(n.Alias)
	for v := value.Integer(1); v <= count; v++ {
		if n.Alias != "" {
			f.Env.Define(n.Alias, v)
		}
		stop, err := i.runLoopBody(n.Body, f)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	if introduced {
		f.Env.Erase(n.Alias)
	}
	return value.Null{}, nil
}

// evaluateFor implements spec §4.4's list and hash iteration, including
// the intentional naming mismatch for hash iteration (the "index
// iterator" binds to the value, not an index; see ast.ForStatement).
func (i *Interpreter) evaluateFor(n *ast.ForStatement, f *frame.Frame) (value.Value, error) {
	iterable, err := i.evaluateExpression(n.Iterable, f)
	if err != nil {
		return nil, err
	}

	switch container := iterable.(type) {
	case *value.List:
		for idx, elem := range container.Elements {
			f.Env.Define(n.ValueIterator, elem)
			if n.IndexIterator != "" {
				f.Env.Define(n.IndexIterator, value.Integer(idx))
			}
			stop, err := i.runLoopBody(n.Body, f)
			if err != nil {
				return nil, i.eraseForIterators(n, f, err)
			}
			if stop {
				break
			}
		}
	case *value.Hash:
		for _, key := range container.Keys() {
			f.Env.Define(n.ValueIterator, value.String(key))
			if n.IndexIterator != "" {
				v, _ := container.Get(key)
				f.Env.Define(n.IndexIterator, v)
			}
			stop, err := i.runLoopBody(n.Body, f)
			if err != nil {
				return nil, i.eraseForIterators(n, f, err)
			}
			if stop {
				break
			}
		}
	default:
		return nil, kerrForNotIterable(n.Pos(), iterable)
	}

	f.Env.Erase(n.ValueIterator)
	if n.IndexIterator != "" {
		f.Env.Erase(n.IndexIterator)
	}
	return value.Null{}, nil
}

func (i *Interpreter) eraseForIterators(n *ast.ForStatement, f *frame.Frame, err error) error {
	f.Env.Erase(n.ValueIterator)
	if n.IndexIterator != "" {
		f.Env.Erase(n.IndexIterator)
	}
	return err
}
