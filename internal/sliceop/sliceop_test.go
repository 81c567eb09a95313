package sliceop

import (
	"testing"

	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

var pos = kerr.Position{Line: 1, Column: 1, File: "<test>"}

func newIntList(vals ...int64) *value.List {
	elems := make([]value.Value, len(vals))
	for i, v := range vals {
		elems[i] = value.Integer(v)
	}
	return value.NewList(elems...)
}

func intsOf(l *value.List) []int64 {
	out := make([]int64, len(l.Elements))
	for i, e := range l.Elements {
		out[i] = int64(e.(value.Integer))
	}
	return out
}

func TestNormalizeNegativeIndicesAddLength(t *testing.T) {
	b := Normalize(5, -2, 5, 1, true, true, false, false)
	if b.Start != 3 {
		t.Errorf("Start = %d, want 3", b.Start)
	}
}

func TestNormalizeReverseSentinelWhenStopDefaultsToLength(t *testing.T) {
	b := Normalize(5, 4, 0, -1, true, false, true, false)
	if b.Stop != -1 {
		t.Errorf("Stop = %d, want -1 (reverse sentinel)", b.Stop)
	}
}

func TestNormalizeInsertOpCollapsesStopToStart(t *testing.T) {
	b := Normalize(5, 2, 4, 1, true, true, false, true)
	if b.Stop != b.Start {
		t.Errorf("Stop = %d, want %d (insertOp collapses stop to start)", b.Stop, b.Start)
	}
}

func TestAssignListOverwriteInPlace(t *testing.T) {
	// x = [1,2,3,4,5]; x[1:4] = [9,9]  (spec §8, scenario S1)
	l := newIntList(1, 2, 3, 4, 5)
	b := Normalize(len(l.Elements), 1, 4, 0, true, true, false, false)
	AssignList(l, b, []value.Value{value.Integer(9), value.Integer(9)})

	got := intsOf(l)
	want := []int64{1, 9, 9, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAssignListInsertionWhenStartEqualsStop(t *testing.T) {
	l := newIntList(1, 2, 3)
	b := Normalize(len(l.Elements), 1, 1, 0, true, true, false, false)
	AssignList(l, b, []value.Value{value.Integer(99)})

	got := intsOf(l)
	want := []int64{1, 99, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReadListReverseStep(t *testing.T) {
	l := newIntList(1, 2, 3, 4, 5)
	b := Normalize(len(l.Elements), 4, 0, -1, true, false, true, false)
	got := intsOf(ReadList(pos, l, b))
	want := []int64{5, 4, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReadStringOutOfBoundsTerminatesWalk(t *testing.T) {
	s := value.String("abc")
	b := Normalize(3, 0, 100, 1, true, true, false, false)
	got := ReadString(pos, s, b)
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestRangeLength(t *testing.T) {
	// spec §8 invariant 5: for a..b, length is |b-a|+1; checks the formula
	// for a descending pair (3..-2 has 6 elements).
	start, stop := int64(3), int64(-2)
	size := stop - start
	if size < 0 {
		size = -size
	}
	size++
	if size != 6 {
		t.Errorf("size = %d, want 6", size)
	}
}
