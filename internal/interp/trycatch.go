package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

// catchable extracts the (errorType, errorMessage) pair a `catch` block
// can bind from a propagating failure, and reports whether the failure is
// a KiwiError-family failure at all (spec §4.5: try catches only
// KiwiError and its subtypes; non-kiwi host failures propagate out
// unchanged).
func catchable(err error) (errType, errMessage string, ok bool) {
	switch e := err.(type) {
	case raiseSignal:
		if obj, isObj := e.value.(*value.Object); isObj {
			return obj.ClassName, value.Stringify(obj), true
		}
		return "RuntimeError", value.Stringify(e.value), true
	case *kerr.KiwiError:
		return string(e.ErrKind), e.Message, true
	default:
		return "", "", false
	}
}

// evaluateTry implements spec §4.5: execute the try body; on a catchable
// failure, run the catch body (binding error_type/error_message if named,
// erasing them afterward); always run finally; re-raise anything the
// catch body itself throws.
func (i *Interpreter) evaluateTry(n *ast.TryStatement, f *frame.Frame) (value.Value, error) {
	f.Flags |= frame.FlagInTry
	result, tryErr := i.evaluateBody(n.Body, f)

	var finalErr error
	if tryErr != nil {
		if _, isControl := isControlSignal(tryErr); isControl {
			finalErr = tryErr
		} else if errType, errMsg, ok := catchable(tryErr); ok && n.HasCatch {
			introducedType := n.ErrorType != "" && !f.Env.HasLocal(n.ErrorType)
			introducedMsg := n.ErrorMessage != "" && !f.Env.HasLocal(n.ErrorMessage)
			if n.ErrorType != "" {
				f.Env.Define(n.ErrorType, value.String(errType))
			}
			if n.ErrorMessage != "" {
				f.Env.Define(n.ErrorMessage, value.String(errMsg))
			}
			result, finalErr = i.evaluateBody(n.CatchBody, f)
			if introducedType {
				f.Env.Erase(n.ErrorType)
			}
			if introducedMsg {
				f.Env.Erase(n.ErrorMessage)
			}
		} else {
			finalErr = tryErr
		}
	}

	if n.FinallyBody != nil {
		_, fErr := i.evaluateBody(n.FinallyBody, f)
		if fErr != nil {
			finalErr = fErr
		}
	}

	if finalErr != nil {
		return nil, finalErr
	}
	return result, nil
}

// isControlSignal reports whether err is loop/return flow control rather
// than a raisable failure; try must let these pass through untouched.
func isControlSignal(err error) (error, bool) {
	switch err.(type) {
	case breakSignal, nextSignal, returnSignal, exitSignal:
		return err, true
	default:
		return nil, false
	}
}
