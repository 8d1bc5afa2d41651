// Copyright 2026 The Bash++ Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bpp

import "sort"

// Position is a (line, column) file position encoded as (line << 32) |
// column, "Interval index". Both are 1-based; column 0 is
// reserved for "before the first token of the line" so that an interval
// beginning at column 0 sorts before any real token on that line.
type Position int64

// NewPosition packs a line/column pair into a Position.
func NewPosition(line, column int) Position {
	return Position(int64(line)<<32 | int64(uint32(column)))
}

func (p Position) Line() int   { return int(int64(p) >> 32) }
func (p Position) Column() int { return int(int32(p)) }

// intervalNode is one entry of the interval index: a half-open [start,
// end) range, the entity it names, and its children. The defining
// invariant is that intervals never partially overlap —
// one is either disjoint from or strictly contained in another — which
// is exactly what the entity-stack's enter/exit discipline produces:
// a child interval always opens after its parent and closes before it.
type intervalNode struct {
	start, end Position
	owner      interface{}
	children   []*intervalNode
}

func (n *intervalNode) contains(p Position) bool {
	return p >= n.start && p < n.end
}

// IntervalIndex is a balanced search structure over file positions,
// queried for the innermost entity containing a point — the
// definition/hover backbone for the LSP surface.
//
// It is built with a builder that mirrors the entity stack's own
// enter/exit discipline (Open/Close), rather than a general-purpose
// insert-anywhere API: the walker always closes intervals in the same
// order it opens them, so a stack-based builder is sufficient and keeps
// this file a plain slice-of-slices structure, matching the pack's
// preference for simple data structures (the pack reach for a
// third-party interval-tree library nowhere).
type IntervalIndex struct {
	roots []*intervalNode
}

// IntervalBuilder accumulates nodes as the walker opens and closes
// entities; call Finish to obtain the queryable index.
type IntervalBuilder struct {
	open []*intervalNode
	tops []*intervalNode
}

// Open begins a new interval at pos. It must be matched by a later Close.
func (b *IntervalBuilder) Open(pos Position) {
	b.open = append(b.open, &intervalNode{start: pos})
}

// Close ends the innermost open interval at pos and attaches owner to it.
// Close fails internally (panics) if there is no matching Open — that is
// always a walker bug, never a user-triggerable condition.
func (b *IntervalBuilder) Close(pos Position, owner interface{}) {
	if len(b.open) == 0 {
		panicInternal("interval index: Close with no matching Open")
	}
	n := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	n.end = pos
	n.owner = owner
	if len(b.open) == 0 {
		b.tops = append(b.tops, n)
		return
	}
	parent := b.open[len(b.open)-1]
	parent.children = append(parent.children, n)
}

// Finish returns the queryable index without sorting it; callers call
// Sort on the result. The builder must have no open intervals remaining (I5's
// sibling invariant for the interval index: balanced open/close).
func (b *IntervalBuilder) Finish() *IntervalIndex {
	if len(b.open) != 0 {
		panicInternal("interval index: %d interval(s) left open", len(b.open))
	}
	idx := &IntervalIndex{roots: b.tops}
	return idx
}

// AddRoot registers a fully-closed top-level interval directly on an
// already-built index, for callers assembling an index across more than
// one file (the LSP program pool keeps one IntervalIndex per open
// buffer, built independently).
func (idx *IntervalIndex) AddRoot(n *intervalNode) {
	idx.roots = append(idx.roots, n)
}

func sortNode(n *intervalNode) {
	sort.Slice(n.children, func(i, j int) bool { return n.children[i].start < n.children[j].start })
	for _, c := range n.children {
		sortNode(c)
	}
}

// Sort must be called once after all roots are added and before the
// first Query.
func (idx *IntervalIndex) Sort() {
	sort.Slice(idx.roots, func(i, j int) bool { return idx.roots[i].start < idx.roots[j].start })
	for _, r := range idx.roots {
		sortNode(r)
	}
}

// Query returns the owner of the innermost interval containing p, or nil
// if p falls outside every registered interval.
func (idx *IntervalIndex) Query(p Position) interface{} {
	var found interface{}
	nodes := idx.roots
	for {
		i := sort.Search(len(nodes), func(i int) bool { return nodes[i].end > p })
		if i >= len(nodes) || !nodes[i].contains(p) {
			return found
		}
		found = nodes[i].owner
		nodes = nodes[i].children
		if len(nodes) == 0 {
			return found
		}
	}
}
