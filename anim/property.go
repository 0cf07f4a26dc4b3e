// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"
)

// Property is a node in the display tree of animatable properties.
// Children are indexes into the owning [Properties] arena.
type Property struct {

	// Name is the display name of the property.
	Name string

	// Path is the unique dotted property path, e.g. "Position.X".
	Path string

	// Children are the indexes of the child properties.
	Children []int

	// Keyframes are the keyframes displayed on this property's row.
	Keyframes []UIKeyframe

	// Depth is the nesting depth, 0 for top-level properties.
	Depth int
}

// UIKeyframe is a keyframe as displayed on one property row.
type UIKeyframe struct {

	// ID is unique across all builds.
	ID uint64

	// SkelKeyID is the [Keyframe.ID] of the source keyframe.
	SkelKeyID uint64

	// Time is the time of the source keyframe.
	Time time.Duration

	// Value is the displayed value.
	Value Value

	// Easing is the easing of the source keyframe.
	Easing Easing
}

// Properties is an arena of [Property] nodes addressed by index,
// with a lookup from property path to index. It is built once
// per snapshot and must not be modified after that.
type Properties struct {

	// Nodes are all of the properties, in creation order.
	Nodes []Property

	// Roots are the indexes of the top-level properties, in display order.
	Roots []int

	// indexes is the path-to-index mapping.
	indexes map[string]int
}

// add adds a new property with the given name under the given
// parent index (-1 for a top-level property), returning its index.
func (ps *Properties) add(parent int, name string) int {
	if ps.indexes == nil {
		ps.indexes = make(map[string]int)
	}
	p := Property{Name: name, Path: name}
	if parent >= 0 {
		pp := &ps.Nodes[parent]
		p.Path = pp.Path + "." + name
		p.Depth = pp.Depth + 1
	}
	idx := len(ps.Nodes)
	ps.Nodes = append(ps.Nodes, p)
	ps.indexes[p.Path] = idx
	if parent >= 0 {
		ps.Nodes[parent].Children = append(ps.Nodes[parent].Children, idx)
	} else {
		ps.Roots = append(ps.Roots, idx)
	}
	return idx
}

// Len returns the number of properties.
func (ps *Properties) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.Nodes)
}

// Index returns the index of the property with the given path,
// with a -1 for a missing path.
func (ps *Properties) Index(path string) int {
	if ps == nil {
		return -1
	}
	idx, ok := ps.indexes[path]
	if !ok {
		return -1
	}
	return idx
}

// Node returns the property at the given index.
// It must be treated as read-only.
func (ps *Properties) Node(idx int) *Property {
	return &ps.Nodes[idx]
}

// Lookup returns the property with the given path, if any.
func (ps *Properties) Lookup(path string) (*Property, bool) {
	idx := ps.Index(path)
	if idx < 0 {
		return nil, false
	}
	return ps.Node(idx), true
}

// TopLevel returns the top-level properties, in display order.
func (ps *Properties) TopLevel() []*Property {
	if ps == nil {
		return nil
	}
	tl := make([]*Property, len(ps.Roots))
	for i, r := range ps.Roots {
		tl[i] = ps.Node(r)
	}
	return tl
}

// Walk visits the properties depth-first in display order, calling fun
// on each visited property. It only descends into the children of a
// property for which expanded returns true; a nil expanded never descends.
// Walking stops when fun returns false.
func (ps *Properties) Walk(expanded func(path string) bool, fun func(p *Property) bool) {
	if ps == nil {
		return
	}
	var walk func(idxs []int) bool
	walk = func(idxs []int) bool {
		for _, idx := range idxs {
			p := ps.Node(idx)
			if !fun(p) {
				return false
			}
			if len(p.Children) > 0 && expanded != nil && expanded(p.Path) {
				if !walk(p.Children) {
					return false
				}
			}
		}
		return true
	}
	walk(ps.Roots)
}
