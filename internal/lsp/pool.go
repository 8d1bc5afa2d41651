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

// Package lsp implements the concurrent data structures 
// describes for an editor-integration surface: a thread-safe pool of
// compiled programs keyed by URI, an unsaved-buffer overlay, and the
// per-program debounce state that paces reparsing. The wire protocol
// server built on top of these is the explicitly out-of-scope "LSP
// server surface"; this package stops at the data structures.
package lsp

import (
	"sync"

	"github.com/bashppc/bashppc/bpp"
)

// Pool is a thread-safe URI -> compiled-program map. Compilation of any
// single file stays single-threaded ("Compilation itself
// remains single-threaded per file"); Pool only makes the map itself
// safe for concurrent readers/writers across many open files.
type Pool struct {
	mu       sync.RWMutex
	programs map[string]*bpp.CompileResult
}

// NewPool constructs an empty pool.
func NewPool() *Pool {
	return &Pool{programs: make(map[string]*bpp.CompileResult)}
}

// Get returns the last compiled result for uri, or nil if none is
// recorded yet.
func (p *Pool) Get(uri string) *bpp.CompileResult {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.programs[uri]
}

// Put records the latest compiled result for uri, replacing any prior
// one.
func (p *Pool) Put(uri string, result *bpp.CompileResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.programs[uri] = result
}

// Delete removes uri from the pool (the editor closed that file).
func (p *Pool) Delete(uri string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.programs, uri)
}

// Overlay is the thread-safe unsaved-buffer map: editor content for a
// URI that has been modified but not saved to disk. It is a plain store;
// bpp's include resolution reads files from disk and does not consult it.
type Overlay struct {
	mu      sync.RWMutex
	buffers map[string]string
}

// NewOverlay constructs an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{buffers: make(map[string]string)}
}

// Set records uri's current unsaved content.
func (o *Overlay) Set(uri, content string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buffers[uri] = content
}

// Get returns uri's unsaved content and whether an overlay exists for
// it.
func (o *Overlay) Get(uri string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	c, ok := o.buffers[uri]
	return c, ok
}

// Clear drops uri's overlay (the editor saved or closed the buffer).
func (o *Overlay) Clear(uri string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.buffers, uri)
}
