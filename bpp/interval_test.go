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

import "testing"

func TestIntervalIndexQueryReturnsInnermostOwner(t *testing.T) {
	var b IntervalBuilder
	b.Open(NewPosition(1, 1)) // outer: class Widget
	b.Open(NewPosition(2, 1)) // inner: method draw
	b.Close(NewPosition(5, 1), "draw")
	b.Close(NewPosition(10, 1), "Widget")

	idx := b.Finish()
	idx.Sort()

	if got := idx.Query(NewPosition(3, 1)); got != "draw" {
		t.Errorf("Query inside method body = %v, want %q", got, "draw")
	}
	if got := idx.Query(NewPosition(8, 1)); got != "Widget" {
		t.Errorf("Query inside class body but outside method = %v, want %q", got, "Widget")
	}
	if got := idx.Query(NewPosition(20, 1)); got != nil {
		t.Errorf("Query outside every interval = %v, want nil", got)
	}
}

func TestIntervalIndexQuerySiblingIntervals(t *testing.T) {
	var b IntervalBuilder
	b.Open(NewPosition(1, 1))
	b.Close(NewPosition(2, 1), "first")
	b.Open(NewPosition(2, 1))
	b.Close(NewPosition(3, 1), "second")

	idx := b.Finish()
	idx.Sort()

	if got := idx.Query(NewPosition(1, 5)); got != "first" {
		t.Errorf("Query(first sibling) = %v, want %q", got, "first")
	}
	if got := idx.Query(NewPosition(2, 5)); got != "second" {
		t.Errorf("Query(second sibling) = %v, want %q", got, "second")
	}
}

func TestIntervalBuilderFinishPanicsOnUnbalancedOpen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Finish to panic with an open interval remaining")
		}
	}()
	var b IntervalBuilder
	b.Open(NewPosition(1, 1))
	b.Finish()
}
