package kerr

import (
	"errors"
	"testing"
)

var pos = Position{Line: 3, Column: 5, File: "prog.kiwi"}

func TestErrorFormatsLocation(t *testing.T) {
	err := DivideByZero(pos)
	want := "DivideByZeroError: division by zero (at prog.kiwi:3:5)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorFormatsDefaultLocationWhenFileEmpty(t *testing.T) {
	err := VariableUndefined(Position{Line: 1, Column: 1}, "x")
	if got := err.Error(); got != `VariableUndefinedError: variable "x" is undefined (at <input>:1:1)` {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindOfReportsErrKind(t *testing.T) {
	err := IndexOutOfRange(pos, 5, 3)
	kind, ok := KindOf(err)
	if !ok || kind != KindIndexError {
		t.Errorf("KindOf() = %v, %v, want IndexError, true", kind, ok)
	}
}

func TestKindOfFalseForNonKiwiError(t *testing.T) {
	_, ok := KindOf(errors.New("plain error"))
	if ok {
		t.Error("KindOf() = true for a non-KiwiError, want false")
	}
}

func TestIsComparesByKindIgnoringMessage(t *testing.T) {
	a := ClassUndefined(pos, "Foo")
	b := ClassUndefined(Position{Line: 99}, "Bar")
	if !errors.Is(a, b) {
		t.Error("expected two ClassUndefinedErrors to compare equal via errors.Is regardless of message")
	}

	c := PackageUndefined(pos, "foo")
	if errors.Is(a, c) {
		t.Error("expected errors of different kinds not to compare equal")
	}
}

func TestSentinelConstructorsSetExpectedKind(t *testing.T) {
	cases := []struct {
		name string
		err  *KiwiError
		want Kind
	}{
		{"DivideByZero", DivideByZero(pos), KindDivideByZero},
		{"IndexOutOfRange", IndexOutOfRange(pos, 1, 2), KindIndexError},
		{"RangeOutOfRange", RangeOutOfRange(pos, 1, 2), KindRangeError},
		{"HashKeyMissing", HashKeyMissing(pos, "k"), KindHashKeyError},
		{"VariableUndefined", VariableUndefined(pos, "x"), KindVariableUndefined},
		{"IllegalName", IllegalName(pos, "global"), KindIllegalName},
		{"FunctionUndefined", FunctionUndefined(pos, "f"), KindFunctionUndefined},
		{"ParameterCountMismatch", ParameterCountMismatch(pos, 1, 2), KindParameterCountMismatch},
		{"ClassUndefined", ClassUndefined(pos, "C"), KindClassUndefined},
		{"InvalidContext", InvalidContext(pos, "bad"), KindInvalidContext},
		{"InvalidOperation", InvalidOperation(pos, "bad"), KindInvalidOperation},
		{"EmptyList", EmptyList(pos), KindEmptyList},
		{"UnimplementedMethod", UnimplementedMethod(pos, "C", "m"), KindUnimplementedMethod},
		{"PackageUndefined", PackageUndefined(pos, "p"), KindPackageUndefined},
		{"UnknownBuiltin", UnknownBuiltin(pos, "b"), KindUnknownBuiltin},
	}
	for _, tc := range cases {
		if tc.err.ErrKind != tc.want {
			t.Errorf("%s: ErrKind = %v, want %v", tc.name, tc.err.ErrKind, tc.want)
		}
	}
}
