package interp

import (
	"fmt"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/value"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, f *frame.Frame) (value.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return value.Integer(n.Value), nil
	case *ast.FloatLiteral:
		return value.Float(n.Value), nil
	case *ast.StringLiteral:
		return value.String(n.Value), nil
	case *ast.BooleanLiteral:
		return value.Boolean(n.Value), nil
	case *ast.NullLiteral:
		return value.Null{}, nil
	case *ast.ListLiteral:
		return i.evaluateListLiteral(n, f)
	case *ast.HashLiteral:
		return i.evaluateHashLiteral(n, f)
	case *ast.RangeLiteral:
		return i.evaluateRangeLiteral(n, f)
	case *ast.Identifier:
		return i.resolveIdentifier(n, f)
	case *ast.SelfExpression:
		if f.ObjectContext == nil {
			return nil, kerrInvalidContextSelf(n.Pos())
		}
		return f.ObjectContext, nil
	case *ast.InstanceVarExpression:
		return i.resolveInstanceVar(n, f)
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, f)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, f)
	case *ast.TernaryExpression:
		return i.evaluateTernary(n, f)
	case *ast.MemberAccess:
		return i.evaluateMemberAccess(n, f)
	case *ast.IndexExpression:
		return i.evaluateIndexRead(n, f)
	case *ast.SliceExpression:
		return i.evaluateSliceRead(n, f)
	case *ast.CallExpression:
		return i.evaluateCall(n, f)
	case *ast.MethodCallExpression:
		return i.evaluateMethodCall(n, f)
	case *ast.LambdaLiteral:
		return i.evaluateLambdaLiteral(n, f)
	case *ast.Assignment:
		return i.evaluateAssignment(n, f)
	case *ast.IndexAssignment:
		return i.evaluateIndexAssignment(n, f)
	case *ast.SliceAssignment:
		return i.evaluateSliceAssignment(n, f)
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
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateListLiteral(n *ast.ListLiteral, f *frame.Frame) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for idx, el := range n.Elements {
		v, err := i.evaluateExpression(el, f)
		if err != nil {
			return nil, err
		}
		elems[idx] = v
	}
	return value.NewList(elems...), nil
}

func (i *Interpreter) evaluateHashLiteral(n *ast.HashLiteral, f *frame.Frame) (value.Value, error) {
	h := value.NewHash()
	for _, entry := range n.Entries {
		kv, err := i.evaluateExpression(entry.Key, f)
		if err != nil {
			return nil, err
		}
		key, ok := kv.(value.String)
		if !ok {
			return nil, kerrInvalidKey(entry.Key.Pos())
		}
		vv, err := i.evaluateExpression(entry.Value, f)
		if err != nil {
			return nil, err
		}
		h.Set(string(key), vv)
	}
	return h, nil
}

// evaluateRangeLiteral realizes `a..b` eagerly to a List, inclusive on
// both ends, stepping +1 or -1 by the sign of b-a (spec §4.3).
func (i *Interpreter) evaluateRangeLiteral(n *ast.RangeLiteral, f *frame.Frame) (value.Value, error) {
	startV, err := i.evaluateExpression(n.Start, f)
	if err != nil {
		return nil, err
	}
	stopV, err := i.evaluateExpression(n.Stop, f)
	if err != nil {
		return nil, err
	}
	start, ok1 := startV.(value.Integer)
	stop, ok2 := stopV.(value.Integer)
	if !ok1 || !ok2 {
		return nil, kerrRangeBounds(n.Pos())
	}
	if i.Options.MaxRangeSize > 0 {
		diff := int(stop - start)
		if diff < 0 {
			diff = -diff
		}
		size := diff + 1
		if size > i.Options.MaxRangeSize {
			return nil, kerrRangeTooLarge(n.Pos(), size, i.Options.MaxRangeSize)
		}
	}
	out := value.NewList()
	if stop >= start {
		for v := start; v <= stop; v++ {
			out.Elements = append(out.Elements, v)
		}
	} else {
		for v := start; v >= stop; v-- {
			out.Elements = append(out.Elements, v)
		}
	}
	return out, nil
}

func (i *Interpreter) evaluateUnary(n *ast.UnaryExpression, f *frame.Frame) (value.Value, error) {
	v, err := i.evaluateExpression(n.Operand, f)
	if err != nil {
		return nil, err
	}
	return mathvisitor.DoUnaryOp(n.Pos(), n.Op, v)
}

// evaluateBinary short-circuits `and`/`or` before evaluating the right
// operand (spec §4.3).
func (i *Interpreter) evaluateBinary(n *ast.BinaryExpression, f *frame.Frame) (value.Value, error) {
	left, err := i.evaluateExpression(n.Left, f)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.OpAnd && !mathvisitor.IsTruthy(left) {
		return value.Boolean(false), nil
	}
	if n.Op == ast.OpOr && mathvisitor.IsTruthy(left) {
		return value.Boolean(true), nil
	}
	right, err := i.evaluateExpression(n.Right, f)
	if err != nil {
		return nil, err
	}
	return mathvisitor.DoBinaryOp(n.Pos(), n.Op, left, right)
}

func (i *Interpreter) evaluateTernary(n *ast.TernaryExpression, f *frame.Frame) (value.Value, error) {
	cond, err := i.evaluateExpression(n.Condition, f)
	if err != nil {
		return nil, err
	}
	if mathvisitor.IsTruthy(cond) {
		return i.evaluateExpression(n.WhenTrue, f)
	}
	return i.evaluateExpression(n.WhenFalse, f)
}

// resolveIdentifier implements spec §4.3's resolution order: frame local,
// class registry, lambda registry, lambda indirection table. Unresolved
// identifiers yield Integer 0, never an error (assignment sites enforce
// VariableUndefinedError separately).
func (i *Interpreter) resolveIdentifier(n *ast.Identifier, f *frame.Frame) (value.Value, error) {
	if v, ok := f.Env.Get(n.Name); ok {
		return v, nil
	}
	if _, ok := i.Registry.Class(n.Name); ok {
		return value.ClassRef{Name: n.Name}, nil
	}
	if _, ok := i.Registry.Lambda(n.Name); ok {
		return value.LambdaRef{ID: n.Name}, nil
	}
	if id, ok := i.Registry.ResolveIndirection(n.Name); ok {
		return value.LambdaRef{ID: id}, nil
	}
	return value.Integer(0), nil
}

func (i *Interpreter) resolveInstanceVar(n *ast.InstanceVarExpression, f *frame.Frame) (value.Value, error) {
	if f.ObjectContext == nil {
		return nil, kerrInvalidContextIVar(n.Pos(), n.Name)
	}
	if v, ok := f.ObjectContext.InstanceVariables[n.Name]; ok {
		return v, nil
	}
	return value.Integer(0), nil
}
