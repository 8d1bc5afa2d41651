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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceStateDelayFloor(t *testing.T) {
	d := NewDebounceState()
	assert.Equal(t, debounceFloor, d.Delay(), "an untimed program should debounce at the floor")
}

func TestDebounceStateDelayClampsToCeiling(t *testing.T) {
	d := NewDebounceState()
	d.RecordReparseDuration(10 * time.Second)
	assert.Equal(t, debounceCeiling, d.Delay())
}

func TestDebounceStateDelayFormula(t *testing.T) {
	d := NewDebounceState()
	d.RecordReparseDuration(200 * time.Millisecond)
	want := debounceBaseline + time.Duration(0.75*float64(200*time.Millisecond))
	assert.Equal(t, want, d.Delay())
}

func TestDebounceStateGenerationCancellation(t *testing.T) {
	d := NewDebounceState()
	gen := d.OnChange()
	assert.True(t, d.IsCurrent(gen))

	d.OnChange()
	assert.False(t, d.IsCurrent(gen), "a later change must obsolete the earlier generation")
}

func TestDebounceStateEWMASmoothing(t *testing.T) {
	d := NewDebounceState()
	d.RecordReparseDuration(100 * time.Millisecond)
	first := d.Delay()
	d.RecordReparseDuration(100 * time.Millisecond)
	second := d.Delay()
	assert.Equal(t, first, second, "a repeated identical sample should not move a converged EWMA")

	d.RecordReparseDuration(1000 * time.Millisecond)
	third := d.Delay()
	assert.Greater(t, third, second, "a large new sample should raise the smoothed delay")
}
