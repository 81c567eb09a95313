// Package value implements the tagged value universe of spec §3: a closed
// set of Value variants plus the reference-sharing rules for lists,
// hashes, and objects. Shape grounded on the teacher's pkg/runtime/values.go
// (Kind enum + one struct per variant).
package value

import "fmt"

// Kind identifies a Value's runtime variant.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindNull
	KindList
	KindHash
	KindObject
	KindClassRef
	KindLambdaRef
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindNull:
		return "Null"
	case KindList:
		return "List"
	case KindHash:
		return "Hash"
	case KindObject:
		return "Object"
	case KindClassRef:
		return "ClassRef"
	case KindLambdaRef:
		return "LambdaRef"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the shared behaviour of every runtime value.
type Value interface {
	Kind() Kind
}

// Integer is a signed 64-bit primitive; arithmetic overflow wraps (see
// DESIGN.md's Open Question resolution).
type Integer int64

func (Integer) Kind() Kind { return KindInteger }

type Float float64

func (Float) Kind() Kind { return KindFloat }

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

// String is immutable by language semantics; slicing returns a new String
// by value (spec §3).
type String string

func (String) Kind() Kind { return KindString }

// Null is the single absent/unit value. Spec §3 notes integer zero also
// serves as the "unit" result in many places (unresolved identifiers
// yield Integer 0), but Null is its own variant for explicit nil-ish
// results (a bare `return`, an if/case with no matching branch, etc).
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// List is a shared, mutable, ordered sequence. Always handled through a
// pointer so that assigning a list to another name aliases the same
// backing storage (spec §5, Sharing semantics).
type List struct {
	Elements []Value
}

func NewList(elems ...Value) *List {
	return &List{Elements: elems}
}

func (*List) Kind() Kind { return KindList }

// Hash is a shared, mutable mapping from string keys to values with an
// explicit insertion-order key sequence; re-inserting an existing key
// updates the value without moving it (spec §3).
type Hash struct {
	entries map[string]Value
	order   []string
}

func NewHash() *Hash {
	return &Hash{entries: make(map[string]Value)}
}

func (*Hash) Kind() Kind { return KindHash }

// Set inserts or updates key, preserving original insertion position on
// update.
func (h *Hash) Set(key string, v Value) {
	if _, ok := h.entries[key]; !ok {
		h.order = append(h.order, key)
	}
	h.entries[key] = v
}

// Get returns the value for key and whether it was present.
func (h *Hash) Get(key string) (Value, bool) {
	v, ok := h.entries[key]
	return v, ok
}

// Delete removes key, if present, from both the map and the order slice.
func (h *Hash) Delete(key string) {
	if _, ok := h.entries[key]; !ok {
		return
	}
	delete(h.entries, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Keys returns keys in insertion order.
func (h *Hash) Keys() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

func (h *Hash) Len() int { return len(h.order) }

// Object is a shared, mutable record: a class name, per-instance
// name→Value bindings, and an optional identifier string (spec §3).
type Object struct {
	ClassName         string
	InstanceVariables map[string]Value
	Identifier        string
}

func NewObject(className string) *Object {
	return &Object{ClassName: className, InstanceVariables: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }

// ClassRef names a class in the class registry.
type ClassRef struct {
	Name string
}

func (ClassRef) Kind() Kind { return KindClassRef }

// LambdaRef names a lambda in the lambda registry (spec §4.7's two-level
// indirection: id → lambda, name → id).
type LambdaRef struct {
	ID string
}

func (LambdaRef) Kind() Kind { return KindLambdaRef }

// DeepEqual performs spec §4.1's do_eq_comparison structural equality:
// lists compare element-wise in order; hashes compare by key/value set
// with key order irrelevant to equality (spec §4.1).
func DeepEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		// Integer/Float cross-kind equality is handled by the math
		// facade (numeric promotion), not here.
		return false
	}
	switch av := a.(type) {
	case Integer:
		return av == b.(Integer)
	case Float:
		return av == b.(Float)
	case Boolean:
		return av == b.(Boolean)
	case String:
		return av == b.(String)
	case Null:
		return true
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !DeepEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Hash:
		bv := b.(*Hash)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			aval, _ := av.Get(k)
			bval, ok := bv.Get(k)
			if !ok || !DeepEqual(aval, bval) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		return av == bv
	case ClassRef:
		return av == b.(ClassRef)
	case LambdaRef:
		return av == b.(LambdaRef)
	default:
		return false
	}
}
