package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

// builtinNames is the closed set from spec §6: names getCallable
// recognizes as builtins before falling through to the lambda
// indirection table or a method on the current object context.
var builtinNames = map[string]bool{
	"console.input":          true,
	"console.silent":         true,
	"serializer.serialize":   true,
	"serializer.deserialize": true,
	"reflector.rlist":        true,
}

func (i *Interpreter) evaluateFunctionDeclaration(n *ast.FunctionDeclaration, f *frame.Frame) (value.Value, error) {
	name := i.currentPackagePrefix() + n.Name
	decl := *n
	decl.Name = name
	i.Registry.DefineFunction(&decl)
	return value.Null{}, nil
}

// evaluateCall implements spec §4.7's getCallable + invocation. The
// callee is always resolved by name (an Identifier); dotted names like
// "console.input" name a builtin (spec §6).
func (i *Interpreter) evaluateCall(n *ast.CallExpression, f *frame.Frame) (value.Value, error) {
	ident, ok := n.Callee.(*ast.Identifier)
	if !ok {
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "call target must be an identifier")
	}
	name := ident.Name

	args := make([]value.Value, len(n.Args))
	for idx, a := range n.Args {
		v, err := i.evaluateExpression(a, f)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if fn, ok := i.Registry.Function(name); ok {
		return i.callFunction(n.Pos(), fn, args, f)
	}
	if lit, ok := i.Registry.Lambda(name); ok {
		return i.callLambda(n.Pos(), lit, args, f, nil)
	}
	if builtinNames[name] {
		return i.callBuiltin(n.Pos(), name, args, f)
	}
	if id, ok := i.Registry.ResolveIndirection(name); ok {
		if lit, ok := i.Registry.Lambda(id); ok {
			return i.callLambda(n.Pos(), lit, args, f, nil)
		}
	}
	if f.ObjectContext != nil {
		if v, err, handled := i.tryCallMethodOnContext(n.Pos(), name, args, f); handled {
			return v, err
		}
	}
	return nil, kerr.FunctionUndefined(kpos(n.Pos()), name)
}

func (i *Interpreter) tryCallMethodOnContext(pos ast.Position, name string, args []value.Value, f *frame.Frame) (value.Value, error, bool) {
	class, ok := i.Registry.Class(f.ObjectContext.ClassName)
	if !ok {
		return nil, nil, false
	}
	method, owner := lookupMethod(i, class, name)
	if method == nil {
		return nil, nil, false
	}
	v, err := i.callMethodBody(pos, method, owner, f.ObjectContext, args)
	return v, err, true
}

// bindParameters implements spec §4.7's positional binding: missing
// arguments fall back to a declared default; a LambdaRef argument also
// records param_name → lambda_id in the indirection table, so
// closures-by-name keep working after renaming. Every parameter, LambdaRef
// or not, is bound as a local in the new frame.
func (i *Interpreter) bindParameters(pos ast.Position, params []ast.Parameter, args []value.Value, target *frame.Frame) error {
	for idx, p := range params {
		var v value.Value
		if idx < len(args) {
			v = args[idx]
		} else if p.Default != nil {
			dv, err := i.evaluateExpression(p.Default, target)
			if err != nil {
				return err
			}
			v = dv
		} else {
			return kerr.ParameterCountMismatch(kpos(pos), len(params), len(args))
		}
		if lr, ok := v.(value.LambdaRef); ok {
			i.Registry.BindIndirection(p.Name, lr.ID)
		}
		target.Env.Define(p.Name, v)
	}
	return nil
}

// callFunction implements spec §4.7's function call: push a new frame
// lexically parented on the caller's environment — the scope-chain
// equivalent of spec §4.2's "copy the caller's locals into the new frame"
// rule for non-method invocations, which also keeps the root frame's
// `global` binding reachable through the chain — bind parameters, run the
// body, and unwind on Return or completion.
func (i *Interpreter) callFunction(pos ast.Position, fn *ast.FunctionDeclaration, args []value.Value, caller *frame.Frame) (value.Value, error) {
	nf := frame.NewFrame(caller.Env, nil, false)
	if err := i.bindParameters(pos, fn.Params, args, nf); err != nil {
		return nil, err
	}
	i.Stack.Push(nf)
	defer i.Stack.Pop()

	result, err := i.evaluateBody(fn.Body, nf)
	if err != nil {
		if _, ok := err.(returnSignal); ok {
			return nf.ReturnValue, nil
		}
		return nil, err
	}
	if nf.Flags.Has(frame.FlagReturn) {
		return nf.ReturnValue, nil
	}
	return result, nil
}

// callLambda implements spec §4.7's lambda body invocation used by direct
// calls (list-lambda builtins run the body inline instead — see
// lambda.go). A lambda call still pushes its own frame, lexically
// parented on the calling frame's environment: names visible at the call
// site resolve inside the body; the environment where the lambda was
// created is not captured.
func (i *Interpreter) callLambda(pos ast.Position, lit *ast.LambdaLiteral, args []value.Value, caller *frame.Frame, objectContext *value.Object) (value.Value, error) {
	nf := frame.NewFrame(caller.Env, objectContext, false)
	if err := i.bindParameters(pos, lit.Params, args, nf); err != nil {
		return nil, err
	}
	i.Stack.Push(nf)
	defer i.Stack.Pop()

	result, err := i.evaluateBody(lit.Body, nf)
	if err != nil {
		if _, ok := err.(returnSignal); ok {
			return nf.ReturnValue, nil
		}
		return nil, err
	}
	if nf.Flags.Has(frame.FlagReturn) {
		return nf.ReturnValue, nil
	}
	return result, nil
}
