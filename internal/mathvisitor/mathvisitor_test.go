package mathvisitor

import (
	"math"
	"testing"

	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

var pos = ast.Position{Line: 1, Column: 1, File: "<test>"}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"zero int", value.Integer(0), false},
		{"nonzero int", value.Integer(1), true},
		{"zero float", value.Float(0), false},
		{"empty string", value.String(""), false},
		{"nonempty string", value.String("x"), true},
		{"empty list", value.NewList(), false},
		{"nonempty list", value.NewList(value.Integer(1)), true},
		{"empty hash", value.NewHash(), false},
		{"false", value.Boolean(false), false},
		{"null", value.Null{}, false},
	}
	for _, tc := range cases {
		if got := IsTruthy(tc.v); got != tc.want {
			t.Errorf("%s: IsTruthy(%v) = %v, want %v", tc.name, tc.v, got, tc.want)
		}
	}
}

func TestDoBinaryOpIntegerPromotesToFloatOnMix(t *testing.T) {
	got, err := DoBinaryOp(pos, ast.OpAdd, value.Integer(1), value.Float(2.5))
	if err != nil {
		t.Fatalf("DoBinaryOp: %v", err)
	}
	if got != value.Float(3.5) {
		t.Errorf("got %v, want 3.5", got)
	}
}

func TestDoBinaryOpDivideByZero(t *testing.T) {
	_, err := DoBinaryOp(pos, ast.OpDivide, value.Integer(1), value.Integer(0))
	if err == nil {
		t.Fatal("expected an error")
	}
	kind, ok := kerr.KindOf(err)
	if !ok || kind != kerr.KindDivideByZero {
		t.Errorf("got kind %v, ok=%v, want DivideByZeroError", kind, ok)
	}
}

func TestDoBinaryOpIntegerOverflowWraps(t *testing.T) {
	got, err := DoBinaryOp(pos, ast.OpAdd, value.Integer(math.MaxInt64), value.Integer(1))
	if err != nil {
		t.Fatalf("DoBinaryOp: %v", err)
	}
	if got != value.Integer(math.MinInt64) {
		t.Errorf("got %v, want wraparound to MinInt64", got)
	}
}

func TestDoBinaryOpStringConcat(t *testing.T) {
	got, err := DoBinaryOp(pos, ast.OpAdd, value.String("foo"), value.String("bar"))
	if err != nil {
		t.Fatalf("DoBinaryOp: %v", err)
	}
	if got != value.String("foobar") {
		t.Errorf("got %v, want foobar", got)
	}
}

func TestDoBinaryOpListConcat(t *testing.T) {
	a := value.NewList(value.Integer(1))
	b := value.NewList(value.Integer(2))
	got, err := DoBinaryOp(pos, ast.OpAdd, a, b)
	if err != nil {
		t.Fatalf("DoBinaryOp: %v", err)
	}
	list, ok := got.(*value.List)
	if !ok || len(list.Elements) != 2 {
		t.Fatalf("got %v, want a two-element list", got)
	}
}

func TestDoEqComparisonStructural(t *testing.T) {
	a := value.NewList(value.Integer(1), value.Integer(2))
	b := value.NewList(value.Integer(1), value.Integer(2))
	if got := DoEqComparison(a, b); got != value.Boolean(true) {
		t.Errorf("got %v, want true", got)
	}
}

func TestDoBitwiseNotRequiresInteger(t *testing.T) {
	_, err := DoBitwiseNot(pos, value.String("x"))
	if err == nil {
		t.Fatal("expected an error for non-integer bitwise-not")
	}
}
