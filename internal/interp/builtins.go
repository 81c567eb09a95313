package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/builtins"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

// callBuiltin dispatches the closed set of builtin names spec §6 lists
// (console.input/silent, serializer.serialize/deserialize,
// reflector.rlist) to their internal/builtins implementation.
func (i *Interpreter) callBuiltin(pos ast.Position, name string, args []value.Value, f *frame.Frame) (value.Value, error) {
	switch name {
	case "console.input":
		return builtins.ConsoleInput(i.Stdin)
	case "console.silent":
		if len(args) != 1 {
			return nil, kerr.ParameterCountMismatch(kpos(pos), 1, len(args))
		}
		b, ok := args[0].(value.Boolean)
		if !ok {
			return nil, kerr.New(kerr.KindBuiltinUnexpectedArgument, kpos(pos), "console.silent expects a Boolean, got %s", args[0].Kind())
		}
		prev := i.Options.Silent
		i.Options.Silent = bool(b)
		return value.Boolean(prev), nil
	case "serializer.serialize":
		if len(args) != 1 {
			return nil, kerr.ParameterCountMismatch(kpos(pos), 1, len(args))
		}
		return builtins.Serialize(args[0])
	case "serializer.deserialize":
		if len(args) != 1 {
			return nil, kerr.ParameterCountMismatch(kpos(pos), 1, len(args))
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, kerr.New(kerr.KindBuiltinUnexpectedArgument, kpos(pos), "serializer.deserialize expects a String, got %s", args[0].Kind())
		}
		return builtins.Deserialize(string(s))
	case "reflector.rlist":
		return builtins.RList(i.Registry, i.Stack), nil
	default:
		return nil, kerr.UnknownBuiltin(kpos(pos), name)
	}
}
