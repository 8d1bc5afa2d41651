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

package lsp

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	debounceBaseline = 25 * time.Millisecond
	debounceFloor    = 25 * time.Millisecond
	debounceCeiling  = 1000 * time.Millisecond

	// ewmaAlpha smooths each new reparse-duration sample into the
	// running average; names the resulting average itself
	// ("EWMA-smoothed reparse duration") but leaves the smoothing
	// constant unspecified, so we pick the conventional 0.3 new-sample
	// weight used by latency-tracking EWMAs generally.
	ewmaAlpha = 0.3
)

// DebounceState is the per-program pacing state describes: a
// change-generation counter (bumped on every edit, consulted by a
// scheduled reparse to detect it has been superseded) and an
// EWMA-smoothed estimate of how long a reparse of this program takes.
type DebounceState struct {
	generation int64 // atomic

	mu        sync.Mutex
	haveEWMA  bool
	ewmaNanos float64
}

// NewDebounceState constructs a fresh, ungenerationed debounce state for
// a newly opened program.
func NewDebounceState() *DebounceState {
	return &DebounceState{}
}

// OnChange bumps the generation counter and returns the new value; the
// caller schedules a reparse timer for Delay and captures this
// generation to check against at fire time.
func (d *DebounceState) OnChange() int64 {
	return atomic.AddInt64(&d.generation, 1)
}

// Generation returns the current generation without mutating it.
func (d *DebounceState) Generation() int64 {
	return atomic.LoadInt64(&d.generation)
}

// IsCurrent reports whether gen is still the latest generation — a
// reparse that fires after a newer change occurred must not publish
// diagnostics for stale content: a reparse that observes a newer
// generation returns early without publishing diagnostics.
func (d *DebounceState) IsCurrent(gen int64) bool {
	return d.Generation() == gen
}

// Delay computes clamp(baseline + 3/4*EWMA, 25ms, 1000ms) — how long to
// wait, from the moment of a change, before reparsing. Before any reparse
// has been timed, the EWMA contributes nothing and Delay returns the floor.
func (d *DebounceState) Delay() time.Duration {
	d.mu.Lock()
	ewma := d.ewmaNanos
	d.mu.Unlock()

	delay := debounceBaseline + time.Duration(0.75*ewma)
	if delay < debounceFloor {
		return debounceFloor
	}
	if delay > debounceCeiling {
		return debounceCeiling
	}
	return delay
}

// RecordReparseDuration folds a freshly observed reparse duration into
// the EWMA, seeding it on the first call.
func (d *DebounceState) RecordReparseDuration(dur time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.haveEWMA {
		d.ewmaNanos = float64(dur)
		d.haveEWMA = true
		return
	}
	d.ewmaNanos = ewmaAlpha*float64(dur) + (1-ewmaAlpha)*d.ewmaNanos
}
