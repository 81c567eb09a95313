package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

func kerrInvalidKey(pos ast.Position) *kerr.KiwiError {
	return kerr.InvalidOperation(kpos(pos), "hash keys must be strings")
}

func kerrRangeBounds(pos ast.Position) *kerr.KiwiError {
	return kerr.InvalidOperation(kpos(pos), "range boundaries must be integers")
}

func kerrRangeTooLarge(pos ast.Position, size, max int) *kerr.KiwiError {
	return kerr.New(kerr.KindRangeError, kpos(pos), "range of size %d exceeds configured maximum %d", size, max)
}

func kerrInvalidContextSelf(pos ast.Position) *kerr.KiwiError {
	return kerr.InvalidContext(kpos(pos), "self is not available outside a method body")
}

func kerrInvalidContextIVar(pos ast.Position, name string) *kerr.KiwiError {
	return kerr.InvalidContext(kpos(pos), "instance variable @%s is not available outside a method body", name)
}

func kerrForNotIterable(pos ast.Position, v value.Value) *kerr.KiwiError {
	return kerr.InvalidOperation(kpos(pos), "for loop requires a List or Hash, got %s", v.Kind())
}

// kerrPackageNotFound reports an import/export of a name with neither a
// registered package nor (per spec §4.8's file-subsystem boundary, out of
// scope here — see SPEC_FULL.md Non-goals) a matching script on disk.
func kerrPackageNotFound(name string) *kerr.KiwiError {
	return kerr.PackageUndefined(kerr.Position{}, name)
}
