// Package kerr implements the KiwiError taxonomy of spec §7: a root error
// kind plus a closed set of subtypes, each carrying a source position and
// message. Grounded on the teacher's control-flow error types
// (returnSignal/raiseSignal/breakSignal/continueSignal in
// pkg/interpreter/interpreter.go), generalized here to a full typed-error
// hierarchy rather than just loop/return signals.
package kerr

import (
	"errors"
	"fmt"
)

// Kind is the closed enum of KiwiError subtypes (spec §7).
type Kind string

const (
	KindSyntaxError               Kind = "SyntaxError"
	KindUnknownBuiltin            Kind = "UnknownBuiltinError"
	KindBuiltinUnexpectedArgument Kind = "BuiltinUnexpectedArgumentError"
	KindConversionError           Kind = "ConversionError"
	KindInvalidOperation          Kind = "InvalidOperationError"
	KindInvalidContext            Kind = "InvalidContextError"
	KindIndexError                Kind = "IndexError"
	KindRangeError                Kind = "RangeError"
	KindHashKeyError              Kind = "HashKeyError"
	KindVariableUndefined         Kind = "VariableUndefinedError"
	KindIllegalName               Kind = "IllegalNameError"
	KindFunctionUndefined         Kind = "FunctionUndefinedError"
	KindParameterCountMismatch    Kind = "ParameterCountMismatchError"
	KindClassUndefined            Kind = "ClassUndefinedError"
	KindUnimplementedMethod       Kind = "UnimplementedMethodError"
	KindPackageUndefined          Kind = "PackageUndefinedError"
	KindDivideByZero              Kind = "DivideByZeroError"
	KindEmptyList                 Kind = "EmptyListError"
)

// Position is the opaque source-location the evaluator threads through
// errors; it mirrors ast.Position without importing the ast package, to
// keep this package a leaf dependency.
type Position struct {
	Line   int
	Column int
	File   string
}

// KiwiError is the root of the taxonomy: every evaluator failure that a
// `try`/`catch` can absorb implements this.
type KiwiError struct {
	ErrKind  Kind
	Message  string
	Position Position
}

func New(kind Kind, pos Position, format string, args ...any) *KiwiError {
	return &KiwiError{ErrKind: kind, Message: fmt.Sprintf(format, args...), Position: pos}
}

func (e *KiwiError) Error() string {
	loc := e.Position.File
	if loc == "" {
		loc = "<input>"
	}
	return fmt.Sprintf("%s: %s (at %s:%d:%d)", e.ErrKind, e.Message, loc, e.Position.Line, e.Position.Column)
}

// Is lets errors.Is treat two *KiwiError of the same kind as equal
// regardless of message or position.
func (e *KiwiError) Is(target error) bool {
	other, ok := target.(*KiwiError)
	if !ok {
		return false
	}
	return e.ErrKind == other.ErrKind
}

// KindOf reports the Kind of err if it is (or wraps) a *KiwiError.
func KindOf(err error) (Kind, bool) {
	var ke *KiwiError
	if !errors.As(err, &ke) {
		return "", false
	}
	return ke.ErrKind, true
}

// Sentinel constructors for the most frequently raised kinds; mirrors the
// teacher's pattern of small typed-error constructors rather than ad hoc
// fmt.Errorf at every call site.

func DivideByZero(pos Position) *KiwiError {
	return New(KindDivideByZero, pos, "division by zero")
}

func IndexOutOfRange(pos Position, idx, length int) *KiwiError {
	return New(KindIndexError, pos, "index %d out of range for length %d", idx, length)
}

func RangeOutOfRange(pos Position, idx, length int) *KiwiError {
	return New(KindRangeError, pos, "index %d out of range for length %d", idx, length)
}

func HashKeyMissing(pos Position, key string) *KiwiError {
	return New(KindHashKeyError, pos, "key %q not found", key)
}

func VariableUndefined(pos Position, name string) *KiwiError {
	return New(KindVariableUndefined, pos, "variable %q is undefined", name)
}

func IllegalName(pos Position, name string) *KiwiError {
	return New(KindIllegalName, pos, "name %q is reserved", name)
}

func FunctionUndefined(pos Position, name string) *KiwiError {
	return New(KindFunctionUndefined, pos, "function %q is undefined", name)
}

func ParameterCountMismatch(pos Position, want, got int) *KiwiError {
	return New(KindParameterCountMismatch, pos, "expected %d arguments, got %d", want, got)
}

func ClassUndefined(pos Position, name string) *KiwiError {
	return New(KindClassUndefined, pos, "class %q is undefined", name)
}

func InvalidContext(pos Position, format string, args ...any) *KiwiError {
	return New(KindInvalidContext, pos, format, args...)
}

func InvalidOperation(pos Position, format string, args ...any) *KiwiError {
	return New(KindInvalidOperation, pos, format, args...)
}

func EmptyList(pos Position) *KiwiError {
	return New(KindEmptyList, pos, "list is empty")
}

func UnimplementedMethod(pos Position, className, methodName string) *KiwiError {
	return New(KindUnimplementedMethod, pos, "class %q has no method %q", className, methodName)
}

func PackageUndefined(pos Position, name string) *KiwiError {
	return New(KindPackageUndefined, pos, "package %q is undefined", name)
}

func UnknownBuiltin(pos Position, name string) *KiwiError {
	return New(KindUnknownBuiltin, pos, "builtin %q is unknown", name)
}
