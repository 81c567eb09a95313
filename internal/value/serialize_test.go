package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerializeDeserializeRoundTripPrimitives(t *testing.T) {
	cases := []Value{
		Integer(42),
		Integer(-7),
		Float(3.5),
		Boolean(true),
		Boolean(false),
		String("hello world"),
		String("with \"quotes\" and \\backslash"),
		Null{},
	}
	for _, v := range cases {
		s, err := Serialize(v)
		if err != nil {
			t.Fatalf("Serialize(%v): %v", v, err)
		}
		got, err := Deserialize(s)
		if err != nil {
			t.Fatalf("Deserialize(%q): %v", s, err)
		}
		if !DeepEqual(v, got) {
			t.Errorf("round trip mismatch: %v -> %q -> %v", v, s, got)
		}
	}
}

func TestSerializeDeserializeRoundTripListAndHash(t *testing.T) {
	l := NewList(Integer(1), String("two"), Boolean(true), Null{})
	s, err := Serialize(l)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Deserialize(s)
	if err != nil {
		t.Fatalf("Deserialize(%q): %v", s, err)
	}
	if !DeepEqual(l, got) {
		t.Errorf("round trip mismatch for list: %v -> %q -> %v", l, s, got)
	}

	h := NewHash()
	h.Set("name", String("kiwi"))
	h.Set("count", Integer(3))
	s, err = Serialize(h)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err = Deserialize(s)
	if err != nil {
		t.Fatalf("Deserialize(%q): %v", s, err)
	}
	if !DeepEqual(h, got) {
		t.Errorf("round trip mismatch for hash: %v -> %q -> %v", h, s, got)
	}
}

func TestStringifyTopLevelUnquoted(t *testing.T) {
	if got := Stringify(String("bare")); got != "bare" {
		t.Errorf("Stringify(String) = %q, want unquoted %q", got, "bare")
	}
}

func TestStringifyListOfIntegers(t *testing.T) {
	l := NewList(Integer(1), Integer(9), Integer(9), Integer(5))
	if diff := cmp.Diff("[1, 9, 9, 5]", Stringify(l)); diff != "" {
		t.Errorf("Stringify(list) mismatch (-want +got):\n%s", diff)
	}
}
