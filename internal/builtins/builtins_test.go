package builtins

import (
	"bufio"
	"strings"
	"testing"

	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/registry"
	"github.com/kelidra/kiwiscript/internal/value"
)

func TestConsoleInputTrimsNewline(t *testing.T) {
	got, err := ConsoleInput(bufio.NewReader(strings.NewReader("hello\n")))
	if err != nil {
		t.Fatalf("ConsoleInput: %v", err)
	}
	if got != value.String("hello") {
		t.Errorf("got %v, want %q", got, "hello")
	}
}

func TestConsoleInputEmptyOnEOF(t *testing.T) {
	got, err := ConsoleInput(bufio.NewReader(strings.NewReader("")))
	if err != nil {
		t.Fatalf("ConsoleInput: %v", err)
	}
	if got != value.String("") {
		t.Errorf("got %v, want empty string", got)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	s, err := Serialize(value.NewList(value.Integer(1), value.String("x")))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	str, ok := s.(value.String)
	if !ok {
		t.Fatalf("Serialize returned %T, want value.String", s)
	}
	got, err := Deserialize(string(str))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !value.DeepEqual(value.NewList(value.Integer(1), value.String("x")), got) {
		t.Errorf("round trip mismatch: got %v", got)
	}
}

func TestDeserializeInvalidInputErrors(t *testing.T) {
	if _, err := Deserialize("{not valid"); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestRListShape(t *testing.T) {
	reg := registry.New()
	reg.DefinePackage("mathutils", nil)
	reg.DefineClass("Animal", "")

	root := frame.NewFrame(nil, nil, false)
	root.Env.Define("x", value.Integer(1))
	stack := frame.NewStack(root)

	got := RList(reg, stack)
	h, ok := got.(*value.Hash)
	if !ok {
		t.Fatalf("RList() = %T, want *value.Hash", got)
	}

	packages, ok := h.Get("packages")
	if !ok {
		t.Fatal("expected a packages key")
	}
	pl, ok := packages.(*value.List)
	if !ok || len(pl.Elements) != 1 || pl.Elements[0] != value.String("mathutils") {
		t.Errorf("packages = %v, want [mathutils]", packages)
	}

	classes, ok := h.Get("classes")
	if !ok {
		t.Fatal("expected a classes key")
	}
	cl, ok := classes.(*value.List)
	if !ok || len(cl.Elements) != 1 || cl.Elements[0] != value.String("Animal") {
		t.Errorf("classes = %v, want [Animal]", classes)
	}

	stackVal, ok := h.Get("stack")
	if !ok {
		t.Fatal("expected a stack key")
	}
	sl, ok := stackVal.(*value.List)
	if !ok || len(sl.Elements) != 1 {
		t.Fatalf("stack = %v, want a single-frame list", stackVal)
	}
	frameHash, ok := sl.Elements[0].(*value.Hash)
	if !ok {
		t.Fatalf("stack[0] = %T, want *value.Hash", sl.Elements[0])
	}
	if _, ok := frameHash.Get("variables"); !ok {
		t.Error("expected the frame entry to carry a variables key")
	}
}
