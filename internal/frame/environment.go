// Package frame implements activation records for the evaluator (spec
// §4.2), using the lexical-scope-chain redesign spec §9 calls out as the
// cleaner alternative to copy-in/copy-back locals. Grounded directly on
// the teacher's pkg/runtime/environment.go.
package frame

import (
	"sort"

	"github.com/kelidra/kiwiscript/internal/value"
)

// Environment provides lexical scoping: a flat binding map plus a pointer
// to the enclosing scope. Get/Assign walk outward through Parent; Define
// always targets the current scope.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), parent: parent}
}

func (e *Environment) Parent() *Environment { return e.parent }

// Define inserts or shadows a binding in the current scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Erase removes a binding from the current scope only (used to unwind
// loop-iterator and catch-introduced names on scope exit, spec §4.4/§4.5).
func (e *Environment) Erase(name string) {
	delete(e.values, name)
}

// HasLocal reports whether name is bound in this scope specifically (not
// an ancestor).
func (e *Environment) HasLocal(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Assign updates an existing binding in the nearest scope where it's
// already bound, walking outward. Returns false if name is unbound
// anywhere in the chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return false
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Keys returns this scope's own bindings, sorted, for introspection
// (reflector.rlist, spec §6).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
