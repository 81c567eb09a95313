package frame

import (
	"testing"

	"github.com/kelidra/kiwiscript/internal/value"
)

func TestEnvironmentGetWalksParentChain(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", value.Integer(1))
	child := parent.Extend()

	got, ok := child.Get("x")
	if !ok || got != value.Integer(1) {
		t.Fatalf("Get(x) = %v, %v, want 1, true", got, ok)
	}
}

func TestEnvironmentDefineShadowsInChildScope(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", value.Integer(1))
	child := parent.Extend()
	child.Define("x", value.Integer(2))

	got, _ := child.Get("x")
	if got != value.Integer(2) {
		t.Errorf("child Get(x) = %v, want 2", got)
	}
	got, _ = parent.Get("x")
	if got != value.Integer(1) {
		t.Errorf("parent Get(x) = %v, want 1 (unaffected by child shadow)", got)
	}
}

func TestEnvironmentAssignWalksToDefiningScope(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", value.Integer(1))
	child := parent.Extend()

	if ok := child.Assign("x", value.Integer(9)); !ok {
		t.Fatal("Assign(x) = false, want true")
	}
	got, _ := parent.Get("x")
	if got != value.Integer(9) {
		t.Errorf("parent Get(x) after child Assign = %v, want 9", got)
	}
}

func TestEnvironmentAssignUnboundReturnsFalse(t *testing.T) {
	e := NewEnvironment(nil)
	if ok := e.Assign("missing", value.Integer(1)); ok {
		t.Error("Assign(missing) = true, want false")
	}
}

func TestEnvironmentHasLocalIsScopeSpecific(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", value.Integer(1))
	child := parent.Extend()

	if child.HasLocal("x") {
		t.Error("HasLocal(x) on child = true, want false (bound only in parent)")
	}
	if !parent.HasLocal("x") {
		t.Error("HasLocal(x) on parent = false, want true")
	}
}

func TestEnvironmentEraseRemovesOnlyFromCurrentScope(t *testing.T) {
	e := NewEnvironment(nil)
	e.Define("x", value.Integer(1))
	e.Erase("x")
	if _, ok := e.Get("x"); ok {
		t.Error("expected x to be erased")
	}
}

func TestEnvironmentKeysSorted(t *testing.T) {
	e := NewEnvironment(nil)
	e.Define("zeta", value.Integer(1))
	e.Define("alpha", value.Integer(2))

	got := e.Keys()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Keys() = %v, want [alpha zeta]", got)
	}
}

func TestStackRootNeverPopped(t *testing.T) {
	root := NewFrame(nil, nil, false)
	s := NewStack(root)

	if popped := s.Pop(); popped != nil {
		t.Errorf("Pop() on a depth-1 stack = %v, want nil", popped)
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
}

func TestStackPushPopRestoresDepth(t *testing.T) {
	root := NewFrame(nil, nil, false)
	s := NewStack(root)

	s.Push(NewFrame(root.Env, nil, false))
	if s.Depth() != 2 {
		t.Fatalf("Depth() after push = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Errorf("Depth() after pop = %d, want 1", s.Depth())
	}
}

func TestNewFrameSetsInObjectFlagOnlyWithContext(t *testing.T) {
	withObj := NewFrame(nil, value.NewObject("Point"), false)
	if !withObj.Flags.Has(FlagInObject) {
		t.Error("expected FlagInObject when an object context is given")
	}

	withoutObj := NewFrame(nil, nil, false)
	if withoutObj.Flags.Has(FlagInObject) {
		t.Error("expected no FlagInObject when object context is nil")
	}
}
