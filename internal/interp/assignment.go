package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/sliceop"
	"github.com/kelidra/kiwiscript/internal/value"
)

func binaryOpForAssign(op ast.AssignOp) (ast.BinaryOp, bool) {
	switch op {
	case ast.AssignAdd:
		return ast.OpAdd, true
	case ast.AssignSubtract:
		return ast.OpSubtract, true
	case ast.AssignMultiply:
		return ast.OpMultiply, true
	case ast.AssignDivide:
		return ast.OpDivide, true
	case ast.AssignModulo:
		return ast.OpModulo, true
	case ast.AssignPower:
		return ast.OpPower, true
	case ast.AssignBitAnd:
		return ast.OpBitAnd, true
	case ast.AssignBitOr:
		return ast.OpBitOr, true
	case ast.AssignBitXor:
		return ast.OpBitXor, true
	case ast.AssignConcat:
		return ast.OpConcat, true
	default:
		return "", false
	}
}

// evaluateAssignment implements spec §4.6's simple-assignment rules.
func (i *Interpreter) evaluateAssignment(n *ast.Assignment, f *frame.Frame) (value.Value, error) {
	rhs, err := i.evaluateExpression(n.Value, f)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		return i.assignIdentifier(n.Pos(), target.Name, n.Op, rhs, f)
	case *ast.InstanceVarExpression:
		return i.assignInstanceVar(n.Pos(), target.Name, n.Op, rhs, f)
	default:
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "unsupported assignment target")
	}
}

func (i *Interpreter) assignIdentifier(pos ast.Position, name string, op ast.AssignOp, rhs value.Value, f *frame.Frame) (value.Value, error) {
	if name == "global" {
		return nil, kerr.IllegalName(kpos(pos), name)
	}

	if op == ast.AssignSet {
		if lr, ok := rhs.(value.LambdaRef); ok {
			// Assigning a lambda value renames it in the registry
			// rather than copying its body (spec §4.6).
			i.Registry.RenameLambda(lr.ID, name)
		}
		f.Env.Define(name, rhs)
		return rhs, nil
	}

	if op == ast.AssignBitNot {
		old, ok := f.Env.Get(name)
		if !ok {
			return nil, kerr.VariableUndefined(kpos(pos), name)
		}
		result, err := mathvisitor.DoBitwiseNot(pos, old)
		if err != nil {
			return nil, err
		}
		f.Env.Define(name, result)
		return result, nil
	}

	binOp, ok := binaryOpForAssign(op)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(pos), "unsupported compound assignment operator %q", op)
	}
	old, ok := f.Env.Get(name)
	if !ok {
		return nil, kerr.VariableUndefined(kpos(pos), name)
	}
	result, err := mathvisitor.DoBinaryOp(pos, binOp, old, rhs)
	if err != nil {
		return nil, err
	}
	if !f.Env.Assign(name, result) {
		f.Env.Define(name, result)
	}
	return result, nil
}

func (i *Interpreter) assignInstanceVar(pos ast.Position, name string, op ast.AssignOp, rhs value.Value, f *frame.Frame) (value.Value, error) {
	if f.ObjectContext == nil {
		return nil, kerrInvalidContextIVar(pos, name)
	}
	obj := f.ObjectContext

	if op == ast.AssignSet {
		obj.InstanceVariables[name] = rhs
		return rhs, nil
	}
	if op == ast.AssignBitNot {
		old, ok := obj.InstanceVariables[name]
		if !ok {
			return nil, kerr.VariableUndefined(kpos(pos), "@"+name)
		}
		result, err := mathvisitor.DoBitwiseNot(pos, old)
		if err != nil {
			return nil, err
		}
		obj.InstanceVariables[name] = result
		return result, nil
	}
	binOp, ok := binaryOpForAssign(op)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(pos), "unsupported compound assignment operator %q", op)
	}
	old, ok := obj.InstanceVariables[name]
	if !ok {
		return nil, kerr.VariableUndefined(kpos(pos), "@"+name)
	}
	result, err := mathvisitor.DoBinaryOp(pos, binOp, old, rhs)
	if err != nil {
		return nil, err
	}
	obj.InstanceVariables[name] = result
	return result, nil
}

// evaluateIndexAssignment implements spec §4.6's index-assignment rules,
// including nested indexing (`a[i][j] op= v`) by resolving the innermost
// container first.
func (i *Interpreter) evaluateIndexAssignment(n *ast.IndexAssignment, f *frame.Frame) (value.Value, error) {
	container, err := i.evaluateExpression(n.Target, f)
	if err != nil {
		return nil, err
	}
	idxVal, err := i.evaluateExpression(n.Index, f)
	if err != nil {
		return nil, err
	}
	rhs, err := i.evaluateExpression(n.Value, f)
	if err != nil {
		return nil, err
	}
	return i.storeIndex(n.Pos(), container, idxVal, n.Op, rhs)
}

func (i *Interpreter) storeIndex(pos ast.Position, container, idxVal value.Value, op ast.AssignOp, rhs value.Value) (value.Value, error) {
	switch c := container.(type) {
	case *value.List:
		idx, ok := idxVal.(value.Integer)
		if !ok {
			return nil, kerr.InvalidOperation(kpos(pos), "list index must be an Integer")
		}
		real := int(idx)
		if real < 0 {
			real += len(c.Elements)
		}
		if real < 0 || real >= len(c.Elements) {
			return nil, kerr.IndexOutOfRange(kpos(pos), int(idx), len(c.Elements))
		}
		result, err := computeStoreValue(pos, op, c.Elements[real], rhs)
		if err != nil {
			return nil, err
		}
		c.Elements[real] = result
		return result, nil
	case *value.Hash:
		key, ok := idxVal.(value.String)
		if !ok {
			return nil, kerr.InvalidOperation(kpos(pos), "hash index must be a String")
		}
		if op == ast.AssignSet {
			c.Set(string(key), rhs)
			return rhs, nil
		}
		old, ok := c.Get(string(key))
		if !ok {
			return nil, kerr.HashKeyMissing(kpos(pos), string(key))
		}
		result, err := computeStoreValue(pos, op, old, rhs)
		if err != nil {
			return nil, err
		}
		c.Set(string(key), result)
		return result, nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "index assignment is not defined for %s", container.Kind())
	}
}

func computeStoreValue(pos ast.Position, op ast.AssignOp, old, rhs value.Value) (value.Value, error) {
	if op == ast.AssignSet {
		return rhs, nil
	}
	if op == ast.AssignBitNot {
		return mathvisitor.DoBitwiseNot(pos, old)
	}
	binOp, ok := binaryOpForAssign(op)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(pos), "unsupported compound assignment operator %q", op)
	}
	return mathvisitor.DoBinaryOp(pos, binOp, old, rhs)
}

// evaluateSliceAssignment implements spec §4.6's slice-assignment rules.
func (i *Interpreter) evaluateSliceAssignment(n *ast.SliceAssignment, f *frame.Frame) (value.Value, error) {
	target, err := i.evaluateExpression(n.Target, f)
	if err != nil {
		return nil, err
	}
	list, ok := target.(*value.List)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "slice assignment is only defined for List, got %s", target.Kind())
	}
	rhsVal, err := i.evaluateExpression(n.Value, f)
	if err != nil {
		return nil, err
	}
	var rhsElems []value.Value
	if rhsList, ok := rhsVal.(*value.List); ok {
		rhsElems = rhsList.Elements
	} else {
		rhsElems = []value.Value{rhsVal}
	}

	start, hasStart, err := evalIntComponent(f, i, n.Start)
	if err != nil {
		return nil, err
	}
	stop, hasStop, err := evalIntComponent(f, i, n.Stop)
	if err != nil {
		return nil, err
	}
	step, hasStep, err := evalIntComponent(f, i, n.Step)
	if err != nil {
		return nil, err
	}
	if hasStep && step == 0 {
		return nil, kerr.New(kerr.KindIndexError, kpos(n.Pos()), "slice step must not be 0")
	}
	bounds := sliceop.Normalize(len(list.Elements), start, stop, step, hasStart, hasStop, hasStep, n.InsertOp)
	sliceop.AssignList(list, bounds, rhsElems)
	return list, nil
}
