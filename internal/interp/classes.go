package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/registry"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluateClassDeclaration implements spec §4.7's class declaration: the
// base class (if any) must already be declared, each method's constructor
// spelling "ctor" is renamed to "new" on install, and methods are staged
// directly into the class entry's method map, with no transient global
// methods staging area.
func (i *Interpreter) evaluateClassDeclaration(n *ast.ClassDeclaration, f *frame.Frame) (value.Value, error) {
	if n.BaseClass != "" {
		if _, ok := i.Registry.Class(n.BaseClass); !ok {
			return nil, kerr.ClassUndefined(kpos(n.Pos()), n.BaseClass)
		}
	}
	class := i.Registry.DefineClass(n.Name, n.BaseClass)
	for _, m := range n.Methods {
		name := m.Name
		if name == "ctor" {
			name = "new"
		}
		installed := *m
		installed.Name = name
		class.Methods[name] = &installed
	}
	return value.ClassRef{Name: n.Name}, nil
}

// lookupMethod walks the base-class chain (spec §4.7, Inheritance),
// grounded on the pack's class+superclass resolution idiom
// (other_examples/alexisbouchez-rubygo__evaluator.go's LookupMethod).
// Returns the method and the name of the class that actually owns it.
func lookupMethod(i *Interpreter, class *registry.Class, name string) (*ast.MethodDeclaration, string) {
	for class != nil {
		if m, ok := class.Methods[name]; ok {
			return m, class.Name
		}
		if class.BaseClass == "" {
			return nil, ""
		}
		next, ok := i.Registry.Class(class.BaseClass)
		if !ok {
			return nil, ""
		}
		class = next
	}
	return nil, ""
}

// callMethodBody pushes a frame with the receiver installed as object
// context, binds parameters, executes the body, and pops (spec §4.2's
// frame teardown, specialized for method invocation which does not copy
// caller locals — spec §4.2, "Method invocations start with an empty
// locals map but inherit the object context"). The frame is still
// parented on the root frame's environment rather than given no parent at
// all, so the root-level `global` binding stays reachable; it is never
// parented on the caller's environment, since methods must not close over
// their call site.
func (i *Interpreter) callMethodBody(pos ast.Position, method *ast.MethodDeclaration, ownerClass string, receiver *value.Object, args []value.Value) (value.Value, error) {
	nf := frame.NewFrame(i.Stack.Root().Env, receiver, false)
	if err := i.bindParameters(pos, method.Params, args, nf); err != nil {
		return nil, err
	}
	i.Stack.Push(nf)
	defer i.Stack.Pop()

	i.classStack = append(i.classStack, ownerClass)
	defer func() { i.classStack = i.classStack[:len(i.classStack)-1] }()

	result, err := i.evaluateBody(method.Body, nf)
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

// evaluateMethodCall implements spec §4.7's method-call-on-object and
// method-call-on-class-reference dispatch, including constructor
// handling.
func (i *Interpreter) evaluateMethodCall(n *ast.MethodCallExpression, f *frame.Frame) (value.Value, error) {
	receiver, err := i.evaluateExpression(n.Receiver, f)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(n.Args))
	for idx, a := range n.Args {
		v, err := i.evaluateExpression(a, f)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch recv := receiver.(type) {
	case *value.List:
		if v, handled, err := i.callListBuiltin(n.Pos(), recv, n.Method, n.Args, f); handled {
			return v, err
		}
		return nil, kerr.UnknownBuiltin(kpos(n.Pos()), "list."+n.Method)
	case *value.Object:
		return i.callInstanceMethod(n.Pos(), recv, n.Method, args, f)
	case value.ClassRef:
		return i.callClassMethod(n.Pos(), recv, n.Method, args, f)
	default:
		return nil, kerr.InvalidOperation(kpos(n.Pos()), "cannot call method %q on %s", n.Method, receiver.Kind())
	}
}

func (i *Interpreter) callInstanceMethod(pos ast.Position, obj *value.Object, methodName string, args []value.Value, caller *frame.Frame) (value.Value, error) {
	class, ok := i.Registry.Class(obj.ClassName)
	if !ok {
		return nil, kerr.ClassUndefined(kpos(pos), obj.ClassName)
	}
	method, owner := lookupMethod(i, class, methodName)
	if method == nil {
		return nil, kerr.UnimplementedMethod(kpos(pos), obj.ClassName, methodName)
	}
	if method.IsPrivate && i.currentClassContext() != owner {
		return nil, kerr.InvalidContext(kpos(pos), "method %q is private to class %q", methodName, owner)
	}
	return i.callMethodBody(pos, method, owner, obj, args)
}

// callClassMethod implements spec §4.7: a non-static method on a class
// without an instance fails InvalidContextError; a constructor allocates
// an Object, installs it as the object context for the call, and returns
// it regardless of what the body returns.
func (i *Interpreter) callClassMethod(pos ast.Position, ref value.ClassRef, methodName string, args []value.Value, caller *frame.Frame) (value.Value, error) {
	class, ok := i.Registry.Class(ref.Name)
	if !ok {
		return nil, kerr.ClassUndefined(kpos(pos), ref.Name)
	}
	method, owner := lookupMethod(i, class, methodName)

	if methodName == "new" {
		obj := value.NewObject(ref.Name)
		if method == nil {
			return obj, nil
		}
		if _, err := i.callMethodBody(pos, method, owner, obj, args); err != nil {
			return nil, err
		}
		return obj, nil
	}

	if method == nil {
		return nil, kerr.UnimplementedMethod(kpos(pos), ref.Name, methodName)
	}

	if !method.IsStatic {
		return nil, kerr.InvalidContext(kpos(pos), "method %q requires an instance of %q", methodName, ref.Name)
	}
	return i.callMethodBody(pos, method, owner, nil, args)
}
