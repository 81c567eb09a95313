// Package sliceop implements spec §4.6's slice normalization, read
// slicing, and in-place slice assignment over lists and strings.
package sliceop

import (
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/value"
)

// Bounds is a normalized (start, stop, step) triple ready to drive a walk
// over a container of the given length (spec §4.6).
type Bounds struct {
	Start int
	Stop  int
	Step  int
}

// Normalize applies spec §4.6's defaulting and clamping rules. hasStart/
// hasStop/hasStep report whether the source supplied that component;
// insertOp collapses a non-slice single-element store to stop=start.
func Normalize(length int, start, stop, step int, hasStart, hasStop, hasStep bool, insertOp bool) Bounds {
	if !hasStep {
		step = 1
	}
	if !hasStart {
		start = 0
	}
	if !hasStop {
		stop = length
	}
	if step == 0 {
		step = 1 // caller is responsible for rejecting step==0 before calling Normalize
	}
	if start < 0 {
		start += length
	}
	if stop < 0 {
		stop += length
	}
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}
	if stop > length {
		stop = length
	}
	if step < 0 && hasStop == false {
		// stop defaulted to length above; the reverse sentinel below
		// applies whenever stop equals length, defaulted or explicit.
	}
	if step < 0 && stop == length {
		stop = -1
	}
	if insertOp {
		stop = start
	}
	return Bounds{Start: start, Stop: stop, Step: step}
}

// ReadList implements spec §4.6's read slicing over a list.
func ReadList(pos kerr.Position, l *value.List, b Bounds) *value.List {
	out := value.NewList()
	if b.Step > 0 {
		for i := b.Start; i < b.Stop && i < len(l.Elements); i += b.Step {
			if i < 0 {
				continue
			}
			out.Elements = append(out.Elements, l.Elements[i])
		}
	} else {
		for i := b.Start; i > b.Stop; i += b.Step {
			if i < 0 || i >= len(l.Elements) {
				break
			}
			out.Elements = append(out.Elements, l.Elements[i])
		}
	}
	return out
}

// ReadString implements spec §4.6's read slicing over a string.
func ReadString(pos kerr.Position, s value.String, b Bounds) value.String {
	runes := []rune(string(s))
	var out []rune
	if b.Step > 0 {
		for i := b.Start; i < b.Stop && i < len(runes); i += b.Step {
			if i < 0 {
				continue
			}
			out = append(out, runes[i])
		}
	} else {
		for i := b.Start; i > b.Stop; i += b.Step {
			if i < 0 || i >= len(runes) {
				break
			}
			out = append(out, runes[i])
		}
	}
	return value.String(out)
}

// AssignList implements spec §4.6's in-place slice assignment.
func AssignList(l *value.List, b Bounds, rhs []value.Value) {
	if b.Step == 1 {
		if b.Start >= b.Stop {
			head := append([]value.Value{}, l.Elements[:b.Start]...)
			tail := append([]value.Value{}, l.Elements[b.Start:]...)
			head = append(head, rhs...)
			l.Elements = append(head, tail...)
			return
		}
		head := append([]value.Value{}, l.Elements[:b.Start]...)
		tail := append([]value.Value{}, l.Elements[b.Stop:]...)
		head = append(head, rhs...)
		l.Elements = append(head, tail...)
		return
	}

	k := 0
	if b.Step > 0 {
		for i := b.Start; i < b.Stop && i < len(l.Elements) && k < len(rhs); i += b.Step {
			if i < 0 {
				continue
			}
			l.Elements[i] = rhs[k]
			k++
		}
		return
	}
	for i := b.Start; i > b.Stop && i >= 0 && i < len(l.Elements) && k < len(rhs); i += b.Step {
		l.Elements[i] = rhs[k]
		k++
	}
}
