package interp

import (
	"fmt"

	"github.com/kelidra/kiwiscript/internal/value"
)

// Control-flow inside a running body is modeled as typed errors, grounded
// on the teacher's breakSignal/continueSignal/returnSignal/raiseSignal
// (pkg/interpreter/interpreter.go). Each implements error so it can
// propagate through ordinary Go error returns; callers of
// evaluateStatement/evaluateBody (runLoopBody, the call paths, evaluateTry)
// type-switch on it to decide whether to keep unwinding or to absorb it.

type returnSignal struct {
	value value.Value
}

func (r returnSignal) Error() string { return "return outside function" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

type nextSignal struct{}

func (nextSignal) Error() string { return "next outside loop" }

// raiseSignal carries a thrown value (spec §4.5/§4.6: `throw` accepts any
// expression, not just a KiwiError). A try/catch binds ErrorType to the
// class name when the thrown value is an Object and to "RuntimeError"
// otherwise, and ErrorMessage to the stringified value. A *kerr.KiwiError
// raised by the evaluator is not wrapped in a raiseSignal; catchable reads
// its Kind/Message directly.
type raiseSignal struct {
	value value.Value
	kind  string
}

func (r raiseSignal) Error() string {
	return fmt.Sprintf("uncaught throw: %s", value.Stringify(r.value))
}

// exitSignal unwinds every frame to terminate the process synchronously
// (spec §5, Cancellation). code is the exit value itself when it is an
// Integer, else 1 (spec §6, Outputs; original_source/kiwi's ExitNode
// visitor).
type exitSignal struct {
	code int
}

func (e exitSignal) Error() string { return fmt.Sprintf("exit(%d)", e.code) }
