// Package mathvisitor implements the pure operator functions of spec §4.1:
// total functions over value.Value that either return a Value or signal a
// typed *kerr.KiwiError. Grounded on the teacher's dispatch-by-variant
// style (pkg/interpreter/eval_expressions.go's binary/unary handlers),
// generalized to the language's own operator set and promotion rules.
package mathvisitor

import (
	"math"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

func kpos(p ast.Position) kerr.Position {
	return kerr.Position{Line: p.Line, Column: p.Column, File: p.File}
}

// IsTruthy implements spec §4.1: non-zero numbers, non-empty
// strings/lists/hashes, true booleans; otherwise false.
func IsTruthy(v value.Value) bool {
	switch val := v.(type) {
	case value.Integer:
		return val != 0
	case value.Float:
		return val != 0
	case value.Boolean:
		return bool(val)
	case value.String:
		return len(val) > 0
	case value.Null:
		return false
	case *value.List:
		return len(val.Elements) > 0
	case *value.Hash:
		return val.Len() > 0
	default:
		return true
	}
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case value.Integer, value.Float:
		return true
	}
	return false
}

func asFloat(v value.Value) float64 {
	switch val := v.(type) {
	case value.Integer:
		return float64(val)
	case value.Float:
		return float64(val)
	}
	return 0
}

// DoUnaryOp implements spec §4.1: numeric negation and logical not.
func DoUnaryOp(pos ast.Position, op ast.UnaryOp, v value.Value) (value.Value, error) {
	switch op {
	case ast.UnaryNegate:
		switch val := v.(type) {
		case value.Integer:
			return -val, nil
		case value.Float:
			return -val, nil
		}
		return nil, kerr.InvalidOperation(kpos(pos), "cannot negate a %s", v.Kind())
	case ast.UnaryNot:
		return value.Boolean(!IsTruthy(v)), nil
	case ast.UnaryBitNot:
		return DoBitwiseNot(pos, v)
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "unknown unary operator %q", op)
	}
}

// DoBitwiseNot implements spec §4.1 over integers only.
func DoBitwiseNot(pos ast.Position, v value.Value) (value.Value, error) {
	i, ok := v.(value.Integer)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(pos), "bitwise not requires an Integer, got %s", v.Kind())
	}
	return ^i, nil
}

// DoEqComparison implements spec §4.1: structural comparison, returning a
// Boolean Value.
func DoEqComparison(a, b value.Value) value.Value {
	if isNumeric(a) && isNumeric(b) {
		return value.Boolean(asFloat(a) == asFloat(b))
	}
	return value.Boolean(value.DeepEqual(a, b))
}

// DoBinaryOp implements spec §4.1's full operator set, promoting
// Integer→Float on mixed numeric operands, concatenating strings and
// lists with `+`, and short-circuiting and/or at the caller (this
// function always evaluates both sides; the evaluator must not call it
// for `and`/`or` until it has decided the right side is needed — see
// spec §4.3).
func DoBinaryOp(pos ast.Position, op ast.BinaryOp, a, b value.Value) (value.Value, error) {
	switch op {
	case ast.OpEq:
		return DoEqComparison(a, b), nil
	case ast.OpNeq:
		eq := DoEqComparison(a, b).(value.Boolean)
		return value.Boolean(!bool(eq)), nil
	case ast.OpAnd:
		return value.Boolean(IsTruthy(a) && IsTruthy(b)), nil
	case ast.OpOr:
		return value.Boolean(IsTruthy(a) || IsTruthy(b)), nil
	case ast.OpConcat:
		return value.String(value.Stringify(a) + value.Stringify(b)), nil
	}

	if op == ast.OpAdd {
		if as, ok := a.(value.String); ok {
			bs, ok := b.(value.String)
			if !ok {
				return nil, kerr.InvalidOperation(kpos(pos), "cannot add String and %s", b.Kind())
			}
			return as + bs, nil
		}
		if al, ok := a.(*value.List); ok {
			bl, ok := b.(*value.List)
			if !ok {
				return nil, kerr.InvalidOperation(kpos(pos), "cannot add List and %s", b.Kind())
			}
			out := make([]value.Value, 0, len(al.Elements)+len(bl.Elements))
			out = append(out, al.Elements...)
			out = append(out, bl.Elements...)
			return value.NewList(out...), nil
		}
	}

	switch op {
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return compare(pos, op, a, b)
	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpBitShl, ast.OpBitShr:
		return bitwise(pos, op, a, b)
	}

	if !isNumeric(a) || !isNumeric(b) {
		return nil, kerr.InvalidOperation(kpos(pos), "operator %q is not defined for %s and %s", op, a.Kind(), b.Kind())
	}

	ai, aIsInt := a.(value.Integer)
	bi, bIsInt := b.(value.Integer)
	if aIsInt && bIsInt {
		return integerArith(pos, op, ai, bi)
	}
	return floatArith(pos, op, asFloat(a), asFloat(b))
}

func integerArith(pos ast.Position, op ast.BinaryOp, a, b value.Integer) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return a + b, nil
	case ast.OpSubtract:
		return a - b, nil
	case ast.OpMultiply:
		return a * b, nil
	case ast.OpDivide:
		if b == 0 {
			return nil, kerr.DivideByZero(kpos(pos))
		}
		return a / b, nil
	case ast.OpModulo:
		if b == 0 {
			return nil, kerr.DivideByZero(kpos(pos))
		}
		return a % b, nil
	case ast.OpPower:
		return value.Integer(int64(math.Pow(float64(a), float64(b)))), nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "unknown binary operator %q", op)
	}
}

func floatArith(pos ast.Position, op ast.BinaryOp, a, b float64) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return value.Float(a + b), nil
	case ast.OpSubtract:
		return value.Float(a - b), nil
	case ast.OpMultiply:
		return value.Float(a * b), nil
	case ast.OpDivide:
		if b == 0 {
			return nil, kerr.DivideByZero(kpos(pos))
		}
		return value.Float(a / b), nil
	case ast.OpModulo:
		if b == 0 {
			return nil, kerr.DivideByZero(kpos(pos))
		}
		return value.Float(math.Mod(a, b)), nil
	case ast.OpPower:
		return value.Float(math.Pow(a, b)), nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "unknown binary operator %q", op)
	}
}

func bitwise(pos ast.Position, op ast.BinaryOp, a, b value.Value) (value.Value, error) {
	ai, ok1 := a.(value.Integer)
	bi, ok2 := b.(value.Integer)
	if !ok1 || !ok2 {
		return nil, kerr.InvalidOperation(kpos(pos), "bitwise operator %q requires two Integers", op)
	}
	switch op {
	case ast.OpBitAnd:
		return ai & bi, nil
	case ast.OpBitOr:
		return ai | bi, nil
	case ast.OpBitXor:
		return ai ^ bi, nil
	case ast.OpBitShl:
		return ai << uint(bi), nil
	case ast.OpBitShr:
		return ai >> uint(bi), nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "unknown bitwise operator %q", op)
	}
}

func compare(pos ast.Position, op ast.BinaryOp, a, b value.Value) (value.Value, error) {
	var cmp float64
	switch {
	case isNumeric(a) && isNumeric(b):
		cmp = asFloat(a) - asFloat(b)
	case a.Kind() == value.KindString && b.Kind() == value.KindString:
		as, bs := string(a.(value.String)), string(b.(value.String))
		switch {
		case as < bs:
			cmp = -1
		case as > bs:
			cmp = 1
		default:
			cmp = 0
		}
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "operator %q is not defined for %s and %s", op, a.Kind(), b.Kind())
	}
	switch op {
	case ast.OpLt:
		return value.Boolean(cmp < 0), nil
	case ast.OpLe:
		return value.Boolean(cmp <= 0), nil
	case ast.OpGt:
		return value.Boolean(cmp > 0), nil
	case ast.OpGe:
		return value.Boolean(cmp >= 0), nil
	default:
		return nil, kerr.InvalidOperation(kpos(pos), "unknown comparison operator %q", op)
	}
}
