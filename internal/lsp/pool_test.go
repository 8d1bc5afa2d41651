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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashppc/bashppc/bpp"
)

func TestPoolGetMissingReturnsNil(t *testing.T) {
	p := NewPool()
	assert.Nil(t, p.Get("file:///nope.bpp"))
}

func TestPoolPutGetDelete(t *testing.T) {
	p := NewPool()
	want := &bpp.CompileResult{Output: "#!/usr/bin/env bash\n"}
	p.Put("file:///a.bpp", want)

	got:= p.Get("file:///a.bpp")
	require.NotNil(t, got)
	assert.Equal(t, want.Output, got.Output)

	p.Delete("file:///a.bpp")
	assert.Nil(t, p.Get("file:///a.bpp"))
}

func TestPoolConcurrentAccess(t *testing.T) {
	p := NewPool()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.Put("file:///concurrent.bpp", &bpp.CompileResult{Output: "x"})
			p.Get("file:///concurrent.bpp")
		}(i)
	}
	wg.Wait()
}

func TestOverlaySetGetClear(t *testing.T) {
	o := NewOverlay()
	_, ok:= o.Get("file:///b.bpp")
	assert.False(t, ok)

	o.Set("file:///b.bpp", "@Widget w")
	content, ok:= o.Get("file:///b.bpp")
	require.True(t, ok)
	assert.Equal(t, "@Widget w", content)

	o.Clear("file:///b.bpp")
	_, ok = o.Get("file:///b.bpp")
	assert.False(t, ok)
}
