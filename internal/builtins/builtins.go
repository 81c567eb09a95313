// Package builtins implements the thin host-provided shims of spec §4.3's
// Built-in Shims component: console I/O, the serializer, and the
// reflector. Each function takes only the collaborators it needs
// (registry.Registry, frame.Stack) rather than the whole interpreter, to
// keep this package import-cycle-free from internal/interp — grounded on
// the teacher's pattern of small, narrowly-scoped driver helpers in
// pkg/driver.
package builtins

import (
	"bufio"
	"strings"

	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/registry"
	"github.com/kelidra/kiwiscript/internal/value"
)

// ConsoleInput reads a single line from stdin, trimming the trailing
// newline, per spec §6's console.input interface.
func ConsoleInput(stdin *bufio.Reader) (value.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return value.String(""), nil
	}
	return value.String(strings.TrimRight(line, "\r\n")), nil
}

// Serialize renders v in the evaluator's literal-syntax wire format.
func Serialize(v value.Value) (value.Value, error) {
	s, err := value.Serialize(v)
	if err != nil {
		return nil, kerr.New(kerr.KindConversionError, kerr.Position{}, "%v", err)
	}
	return value.String(s), nil
}

// Deserialize parses the literal-syntax wire format back to a Value.
func Deserialize(s string) (value.Value, error) {
	v, err := value.Deserialize(s)
	if err != nil {
		return nil, kerr.New(kerr.KindConversionError, kerr.Position{}, "%v", err)
	}
	return v, nil
}

// RList implements spec §6's reflector.rlist() output shape: a hash with
// keys packages, classes, functions (sorted name lists) and stack (bottom
// to top reversed so top-of-stack is last, mirroring the source's
// pop-then-reverse construction), each frame rendered as
// {variables: [{name: value}, ...]} with per-frame variables name-sorted.
func RList(reg *registry.Registry, stack *frame.Stack) value.Value {
	out := value.NewHash()
	out.Set("packages", namesToList(reg.PackageNames()))
	out.Set("classes", namesToList(reg.ClassNames()))
	out.Set("functions", namesToList(reg.FunctionNames()))

	frames := stack.Frames()
	stackList := value.NewList()
	for _, f := range frames {
		frameHash := value.NewHash()
		varsList := value.NewList()
		for _, name := range f.Env.Keys() {
			v, _ := f.Env.Get(name)
			entry := value.NewHash()
			entry.Set(name, v)
			varsList.Elements = append(varsList.Elements, entry)
		}
		frameHash.Set("variables", varsList)
		stackList.Elements = append(stackList.Elements, frameHash)
	}
	out.Set("stack", stackList)
	return out
}

func namesToList(names []string) *value.List {
	out := value.NewList()
	for _, n := range names {
		out.Elements = append(out.Elements, value.String(n))
	}
	return out
}
