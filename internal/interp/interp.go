// Package interp is the AST visitor / evaluator: the dispatch center of
// spec §4.3. One handler per node kind, operating over a call stack of
// frame.Frame values, a value.Value universe, and the process-wide
// registry.Registry. Split across files the way the teacher splits
// pkg/interpreter/*.go (see SPEC_FULL.md).
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/kelidra/kiwiscript/internal/config"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/registry"
	"github.com/kelidra/kiwiscript/internal/value"
)

// Interpreter drives evaluation of a kiwiscript AST (spec §4.3). It owns
// the single-threaded, process-wide state enumerated in spec §5: the call
// stack, the registries, and I/O handles.
type Interpreter struct {
	Registry *registry.Registry
	Stack    *frame.Stack
	Options  config.Options

	Stdout io.Writer
	Stdin  *bufio.Reader

	packageStack []string
	classStack   []string

	exitRequested bool
	exitCode      int
}

// New builds an interpreter with a fresh global frame and registry.
func New(opts config.Options) *Interpreter {
	root := frame.NewFrame(nil, nil, false)
	global := value.NewHash()
	root.Env.Define("global", global)

	return &Interpreter{
		Registry: registry.New(),
		Stack:    frame.NewStack(root),
		Options:  opts,
		Stdout:   os.Stdout,
		Stdin:    bufio.NewReader(os.Stdin),
	}
}

// ExitRequested reports whether an `exit` node fired during evaluation,
// and the code it requested (spec §6, Outputs: Exit code).
func (i *Interpreter) ExitRequested() (bool, int) {
	return i.exitRequested, i.exitCode
}

func (i *Interpreter) currentPackagePrefix() string {
	if len(i.packageStack) == 0 {
		return ""
	}
	return i.packageStack[len(i.packageStack)-1] + "::"
}

// currentClassContext reports the class that owns the method body currently
// executing (spec §4.7's method-of-class detection), or "" at top level.
// Unlike a frame's ObjectContext, this is set for static method calls too,
// where there is no receiver to carry the class name.
func (i *Interpreter) currentClassContext() string {
	if len(i.classStack) == 0 {
		return ""
	}
	return i.classStack[len(i.classStack)-1]
}
