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

// Package watch re-invokes a full compile whenever the source file or
// one of its include-path directories changes, for `bashppc -watch`.
// This is file-watching glue, not incremental compilation: it re-runs
// the whole compiler on every event rather than patching prior output.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

// Watcher wraps an fsnotify.Watcher scoped to one source file plus its
// configured include-path directories.
type Watcher struct {
	fsw    *fsnotify.Watcher
	source string
}

// New creates a Watcher on source and every directory in includePaths.
// Watching whole directories (rather than only files already known to
// be included) means a newly added include target is picked up too,
// without restarting bashppc.
func New(source string, includePaths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(source)); err != nil {
		fsw.Close()
		return nil, err
	}
	for _, dir := range includePaths {
		if err := fsw.Add(dir); err != nil {
			glog.Warningf("watch: cannot watch include path %s: %v", dir, err)
			continue
		}
	}
	return &Watcher{fsw: fsw, source: source}, nil
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks, invoking recompile once per write/create event observed
// under any watched directory, until the watcher's event channel closes.
func (w *Watcher) Run(recompile func()) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			glog.Infof("watch: %s changed, recompiling", ev.Name)
			recompile()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			glog.Warningf("watch: %v", err)
		}
	}
}
