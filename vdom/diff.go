package vdom

import (
	"fmt"
	"sort"
)

type PatchType int

const (
	Noop PatchType = iota
	Replace
	Create
	Remove
	Modify
)

// Patch describes how to transform one live subtree so that it matches
// a new Node. A Patch is computed from exactly one (old, new) pair and
// holds no live-tree state; applying the same Patch twice to the same
// live tree is not supported.
type Patch struct {
	Type PatchType

	// Replace, Create
	Content Node

	// Modify
	RemovedAttrs []string
	SetAttrs     Attributes
	Children     []*Patch
}

var noop = &Patch{Type: Noop}

// this function is copied from ssa/interp
// equals returns true iff x and y are equal according to Go's
// linguistic equivalence relation for type t.
func equals(x, y interface{}) bool {
	switch x := x.(type) {
	case bool:
		return x == y.(bool)
	case int:
		return x == y.(int)
	case int8:
		return x == y.(int8)
	case int16:
		return x == y.(int16)
	case int32:
		return x == y.(int32)
	case int64:
		return x == y.(int64)
	case uint:
		return x == y.(uint)
	case uint8:
		return x == y.(uint8)
	case uint16:
		return x == y.(uint16)
	case uint32:
		return x == y.(uint32)
	case uint64:
		return x == y.(uint64)
	case uintptr:
		return x == y.(uintptr)
	case float32:
		return x == y.(float32)
	case float64:
		return x == y.(float64)
	case complex64:
		return x == y.(complex64)
	case complex128:
		return x == y.(complex128)
	case string:
		return x == y.(string)
	}

	panic(fmt.Sprintf("comparing uncomparable type %T", x))
}

// Diff computes the Patch transforming a into b.
//
// Children are matched positionally: the identity of a child is its
// index, not a key. A reorder therefore shows up as per-position
// replacements, which keeps the algorithm O(tree size) at the cost of
// never detecting moves.
func Diff(a, b Node) *Patch {
	if !a.IsElement() && !b.IsElement() {
		if a.NodeData() == b.NodeData() {
			return noop
		}

		return &Patch{Type: Replace, Content: b}
	}

	if a.IsElement() != b.IsElement() {
		return &Patch{Type: Replace, Content: b}
	}

	ae, be := a.(*Element), b.(*Element)
	if ae.Tag != be.Tag {
		return &Patch{Type: Replace, Content: b}
	}

	patch := &Patch{Type: Modify}
	for attr := range ae.Attrs {
		if _, ok := be.Attrs[attr]; !ok {
			patch.RemovedAttrs = append(patch.RemovedAttrs, attr)
		}
	}
	sort.Strings(patch.RemovedAttrs)

	for attr, vb := range be.Attrs {
		// handler values are not comparable; a present handler is
		// always re-set so the side-table tracks the latest closure
		if va, ok := ae.Attrs[attr]; !ok || IsEvent(attr) || !equals(va, vb) {
			if patch.SetAttrs == nil {
				patch.SetAttrs = Attributes{}
			}
			patch.SetAttrs[attr] = vb
		}
	}

	patch.Children = DiffChildren(ae.Children, be.Children)

	if len(patch.RemovedAttrs) == 0 && len(patch.SetAttrs) == 0 {
		for _, c := range patch.Children {
			if c.Type != Noop {
				return patch
			}
		}

		return noop
	}

	return patch
}

// DiffChildren diffs two child sequences position by position. Create
// patches can only appear past the end of a, Remove patches only past
// the end of b.
func DiffChildren(a, b []Node) []*Patch {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	patches := make([]*Patch, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a):
			patches[i] = &Patch{Type: Create, Content: b[i]}
		case i >= len(b):
			patches[i] = &Patch{Type: Remove}
		default:
			patches[i] = Diff(a[i], b[i])
		}
	}

	return patches
}
