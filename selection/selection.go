// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks a set of selected point IDs.
package selection

import "sort"

// A Tracker is a set of point IDs that changes one toggle at a time.
// The zero Tracker is an empty set ready to use.
type Tracker struct {
	// seq maps each selected ID to the toggle that added it.
	seq  map[int]uint64
	next uint64
}

// Toggle adds id to t if it is absent and removes it otherwise. It
// reports whether id is selected afterward.
func (t *Tracker) Toggle(id int) bool {
	if _, ok := t.seq[id]; ok {
		delete(t.seq, id)
		return false
	}
	if t.seq == nil {
		t.seq = make(map[int]uint64)
	}
	t.next++
	t.seq[id] = t.next
	return true
}

// Has reports whether id is selected.
func (t *Tracker) Has(id int) bool {
	_, ok := t.seq[id]
	return ok
}

// Len returns the number of selected IDs.
func (t *Tracker) Len() int {
	return len(t.seq)
}

// Clear deselects everything.
func (t *Tracker) Clear() {
	t.seq = nil
}

// IDs returns the selected IDs, most recently selected first.
func (t *Tracker) IDs() []int {
	ids := make([]int, 0, len(t.seq))
	for id := range t.seq {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return t.seq[ids[i]] > t.seq[ids[j]]
	})
	return ids
}

// Strokes returns, for each of ids, whether that point should be
// drawn with a selection outline.
func (t *Tracker) Strokes(ids []int) []bool {
	out := make([]bool, len(ids))
	for i, id := range ids {
		out[i] = t.Has(id)
	}
	return out
}
