package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/sliceop"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluateMemberAccess implements spec §4.3: member access is only
// defined on hashes; a missing key fails HashKeyError.
func (i *Interpreter) evaluateMemberAccess(n *ast.MemberAccess, f *frame.Frame) (value.Value, error) {
	target, err := i.evaluateExpression(n.Target, f)
	if err != nil {
		return nil, err
	}
	h, ok := target.(*value.Hash)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "member access is only defined on Hash, got %s", target.Kind())
	}
	v, ok := h.Get(n.Key)
	if !ok {
		return nil, kerr.HashKeyMissing(kpos(n.Pos()), n.Key)
	}
	return v, nil
}

func (i *Interpreter) evaluateIndexRead(n *ast.IndexExpression, f *frame.Frame) (value.Value, error) {
	target, err := i.evaluateExpression(n.Target, f)
	if err != nil {
		return nil, err
	}
	idxVal, err := i.evaluateExpression(n.Index, f)
	if err != nil {
		return nil, err
	}
	return i.indexRead(n.Pos(), target, idxVal)
}

func (i *Interpreter) indexRead(pos ast.Position, target, idxVal value.Value) (value.Value, error) {
	switch container := target.(type) {
	case *value.List:
		idx, ok := idxVal.(value.Integer)
		if !ok {
			return nil, kerr.InvalidOperation(kpos(pos), "list index must be an Integer")
		}
		real := int(idx)
		if real < 0 {
			real += len(container.Elements)
		}
		if real < 0 || real >= len(container.Elements) {
			return nil, kerr.RangeOutOfRange(kpos(pos), int(idx), len(container.Elements))
		}
		return container.Elements[real], nil
	case value.String:
		idx, ok := idxVal.(value.Integer)
		if !ok {
			return nil, kerr.InvalidOperation(kpos(pos), "string index must be an Integer")
		}
		runes := []rune(string(container))
		real := int(idx)
		if real < 0 {
			real += len(runes)
		}
		if real < 0 || real >= len(runes) {
			return nil, kerr.RangeOutOfRange(kpos(pos), int(idx), len(runes))
		}
		return value.String(string(runes[real])), nil
	case *value.Hash:
		key, ok := idxVal.(value.String)
		if !ok {
			return nil, kerr.InvalidOperation(kpos(pos), "hash index must be a String")
		}
		v, ok := container.Get(string(key))
		if !ok {
			return nil, kerr.HashKeyMissing(kpos(pos), string(key))
		}
		return v, nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "indexing is not defined for %s", target.Kind())
	}
}

func evalSliceBounds(pos ast.Position, f *frame.Frame, i *Interpreter, target value.Value, startE, stopE, stepE ast.Expression) (sliceop.Bounds, int, error) {
	var length int
	switch t := target.(type) {
	case *value.List:
		length = len(t.Elements)
	case value.String:
		length = len([]rune(string(t)))
	default:
		return sliceop.Bounds{}, 0, kerr.InvalidOperation(kpos(pos), "slicing is not defined for %s", target.Kind())
	}

	start, hasStart, err := evalIntComponent(f, i, startE)
	if err != nil {
		return sliceop.Bounds{}, 0, err
	}
	stop, hasStop, err := evalIntComponent(f, i, stopE)
	if err != nil {
		return sliceop.Bounds{}, 0, err
	}
	step, hasStep, err := evalIntComponent(f, i, stepE)
	if err != nil {
		return sliceop.Bounds{}, 0, err
	}
	if hasStep && step == 0 {
		return sliceop.Bounds{}, 0, kerr.New(kerr.KindIndexError, kpos(pos), "slice step must not be 0")
	}
	return sliceop.Normalize(length, start, stop, step, hasStart, hasStop, hasStep, false), length, nil
}

func evalIntComponent(f *frame.Frame, i *Interpreter, e ast.Expression) (int, bool, error) {
	if e == nil {
		return 0, false, nil
	}
	v, err := i.evaluateExpression(e, f)
	if err != nil {
		return 0, false, err
	}
	iv, ok := v.(value.Integer)
	if !ok {
		return 0, false, kerr.InvalidOperation(kpos(e.Pos()), "slice components must be Integers")
	}
	return int(iv), true, nil
}

func (i *Interpreter) evaluateSliceRead(n *ast.SliceExpression, f *frame.Frame) (value.Value, error) {
	target, err := i.evaluateExpression(n.Target, f)
	if err != nil {
		return nil, err
	}
	bounds, _, err := evalSliceBounds(n.Pos(), f, i, target, n.Start, n.Stop, n.Step)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *value.List:
		return sliceop.ReadList(kpos(n.Pos()), t, bounds), nil
	case value.String:
		return sliceop.ReadString(kpos(n.Pos()), t, bounds), nil
	default:
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "slicing is not defined for %s", target.Kind())
	}
}
