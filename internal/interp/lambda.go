package interp

import (
	"sort"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluateLambdaLiteral implements spec §4.7's lambda value: the body is
// stored under a fresh id, and the identity mapping id→id is installed in
// the indirection table. Parameter defaults are not evaluated here; they
// are evaluated each time the lambda runs, against the frame it runs in.
func (i *Interpreter) evaluateLambdaLiteral(n *ast.LambdaLiteral, f *frame.Frame) (value.Value, error) {
	id := i.Registry.DefineLambda(n)
	return value.LambdaRef{ID: id}, nil
}

// resolveLambdaArg evaluates an argument expression that must name a
// lambda — either an inline literal or an identifier bound to one — and
// returns its body.
func (i *Interpreter) resolveLambdaArg(expr ast.Expression, f *frame.Frame) (*ast.LambdaLiteral, error) {
	v, err := i.evaluateExpression(expr, f)
	if err != nil {
		return nil, err
	}
	lr, ok := v.(value.LambdaRef)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(expr.Pos()), "expected a lambda, got %s", v.Kind())
	}
	lit, ok := i.Registry.Lambda(lr.ID)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(expr.Pos()), "lambda %q is no longer registered", lr.ID)
	}
	return lit, nil
}

// runInlineLambda executes lit's body directly in f (no frame pushed, per
// spec §4.7's list-lambda built-ins note), binding params positionally and
// erasing any names it introduced on the way out.
func (i *Interpreter) runInlineLambda(lit *ast.LambdaLiteral, args []value.Value, f *frame.Frame) (value.Value, error) {
	introduced := make([]string, 0, len(lit.Params))
	for idx, p := range lit.Params {
		if !f.Env.HasLocal(p.Name) {
			introduced = append(introduced, p.Name)
		}
		var v value.Value
		if idx < len(args) {
			v = args[idx]
		} else if p.Default != nil {
			dv, err := i.evaluateExpression(p.Default, f)
			if err != nil {
				return nil, err
			}
			v = dv
		} else {
			v = value.Null{}
		}
		f.Env.Define(p.Name, v)
	}
	defer func() {
		for _, name := range introduced {
			f.Env.Erase(name)
		}
	}()

	var result value.Value = value.Null{}
	for _, stmt := range lit.Body {
		v, err := i.evaluateStatement(stmt, f)
		if err != nil {
			return nil, err
		}
		result = v
		if f.Flags.Has(frame.FlagReturn) {
			break
		}
	}
	return result, nil
}

// callListBuiltin implements spec §4.7's list-lambda built-ins plus the
// value-only List helpers (max/min/sort/sum) named in spec §6's closed
// built-in enum. Returns handled=false for any other method name so the
// caller can report UnknownBuiltinError.
func (i *Interpreter) callListBuiltin(pos ast.Position, recv *value.List, method string, argExprs []ast.Expression, f *frame.Frame) (value.Value, bool, error) {
	switch method {
	case "each":
		v, err := i.listEach(pos, recv, argExprs, f)
		return v, true, err
	case "map":
		v, err := i.listMap(recv, argExprs, f)
		return v, true, err
	case "select":
		v, err := i.listSelect(recv, argExprs, f)
		return v, true, err
	case "none":
		v, err := i.listNone(recv, argExprs, f)
		return v, true, err
	case "reduce":
		v, err := i.listReduce(pos, recv, argExprs, f)
		return v, true, err
	case "max":
		v, err := listMax(pos, recv)
		return v, true, err
	case "min":
		v, err := listMin(pos, recv)
		return v, true, err
	case "sum":
		v, err := listSum(pos, recv)
		return v, true, err
	case "sort":
		v, err := listSort(pos, recv)
		return v, true, err
	default:
		return nil, false, nil
	}
}

// listEach executes the lambda body once per element for its side effects,
// ignoring results; yields Integer(0) (spec §8's boundary behavior and
// §3's "integer zero as unit result").
func (i *Interpreter) listEach(pos ast.Position, recv *value.List, argExprs []ast.Expression, f *frame.Frame) (value.Value, error) {
	if len(argExprs) != 1 {
		return nil, kerr.ParameterCountMismatch(kpos(pos), 1, len(argExprs))
	}
	lit, err := i.resolveLambdaArg(argExprs[0], f)
	if err != nil {
		return nil, err
	}
	for _, elem := range recv.Elements {
		if _, err := i.runInlineLambda(lit, []value.Value{elem}, f); err != nil {
			return nil, err
		}
	}
	return value.Integer(0), nil
}

// listMap collects each invocation's result into a fresh list (spec §8:
// empty input yields an empty list).
func (i *Interpreter) listMap(recv *value.List, argExprs []ast.Expression, f *frame.Frame) (value.Value, error) {
	lit, err := i.resolveLambdaArg(argExprs[0], f)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(recv.Elements))
	for _, elem := range recv.Elements {
		v, err := i.runInlineLambda(lit, []value.Value{elem}, f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return &value.List{Elements: out}, nil
}

func (i *Interpreter) listSelect(recv *value.List, argExprs []ast.Expression, f *frame.Frame) (value.Value, error) {
	lit, err := i.resolveLambdaArg(argExprs[0], f)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(recv.Elements))
	for _, elem := range recv.Elements {
		v, err := i.runInlineLambda(lit, []value.Value{elem}, f)
		if err != nil {
			return nil, err
		}
		if mathvisitor.IsTruthy(v) {
			out = append(out, elem)
		}
	}
	return &value.List{Elements: out}, nil
}

// listNone reports whether select would have returned an empty list (spec
// §4.7: "none: select returned empty").
func (i *Interpreter) listNone(recv *value.List, argExprs []ast.Expression, f *frame.Frame) (value.Value, error) {
	selected, err := i.listSelect(recv, argExprs, f)
	if err != nil {
		return nil, err
	}
	return value.Boolean(len(selected.(*value.List).Elements) == 0), nil
}

// listReduce runs a two-parameter (accum, value) lambda, seeded by
// argExprs[0]; the lambda body is argExprs[1]. Each run's body result
// becomes the accumulator passed to the next element, and the last body
// result is returned; assignments the body makes to the accumulator
// parameter are not read back.
func (i *Interpreter) listReduce(pos ast.Position, recv *value.List, argExprs []ast.Expression, f *frame.Frame) (value.Value, error) {
	if len(argExprs) != 2 {
		return nil, kerr.ParameterCountMismatch(kpos(pos), 2, len(argExprs))
	}
	seed, err := i.evaluateExpression(argExprs[0], f)
	if err != nil {
		return nil, err
	}
	lit, err := i.resolveLambdaArg(argExprs[1], f)
	if err != nil {
		return nil, err
	}
	accum := seed
	for _, elem := range recv.Elements {
		v, err := i.runInlineLambda(lit, []value.Value{accum, elem}, f)
		if err != nil {
			return nil, err
		}
		accum = v
	}
	return accum, nil
}

func listMax(pos ast.Position, recv *value.List) (value.Value, error) {
	if len(recv.Elements) == 0 {
		return nil, kerr.EmptyList(kpos(pos))
	}
	best := recv.Elements[0]
	for _, elem := range recv.Elements[1:] {
		gt, err := mathvisitor.DoBinaryOp(pos, ast.OpGt, elem, best)
		if err != nil {
			return nil, err
		}
		if mathvisitor.IsTruthy(gt) {
			best = elem
		}
	}
	return best, nil
}

func listMin(pos ast.Position, recv *value.List) (value.Value, error) {
	if len(recv.Elements) == 0 {
		return nil, kerr.EmptyList(kpos(pos))
	}
	best := recv.Elements[0]
	for _, elem := range recv.Elements[1:] {
		lt, err := mathvisitor.DoBinaryOp(pos, ast.OpLt, elem, best)
		if err != nil {
			return nil, err
		}
		if mathvisitor.IsTruthy(lt) {
			best = elem
		}
	}
	return best, nil
}

func listSum(pos ast.Position, recv *value.List) (value.Value, error) {
	var total value.Value = value.Integer(0)
	for _, elem := range recv.Elements {
		v, err := mathvisitor.DoBinaryOp(pos, ast.OpAdd, total, elem)
		if err != nil {
			return nil, err
		}
		total = v
	}
	return total, nil
}

// listSort returns a new ascending-sorted list; elements must be pairwise
// comparable via the math facade's Lt.
func listSort(pos ast.Position, recv *value.List) (value.Value, error) {
	out := make([]value.Value, len(recv.Elements))
	copy(out, recv.Elements)
	var sortErr error
	sort.SliceStable(out, func(a, b int) bool {
		if sortErr != nil {
			return false
		}
		lt, err := mathvisitor.DoBinaryOp(pos, ast.OpLt, out[a], out[b])
		if err != nil {
			sortErr = err
			return false
		}
		return mathvisitor.IsTruthy(lt)
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return &value.List{Elements: out}, nil
}
