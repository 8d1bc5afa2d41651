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

import (
	"path/filepath"

	"github.com/golang/glog"
)

// CompileOptions configures a single Compile call (, §5 driver
// surface): the target Bash version, which is recorded on the Program
// (no version-floor warning is issued from it), the angle-bracket
// include search path, and the warnings-as-errors toggle the CLI driver
// (cmd/bashppc) exposes as a flag.
type CompileOptions struct {
	TargetBashVersion string
	IncludePaths      []string
	WarningsAsErrors  bool
}

// CompileResult is everything a caller (the CLI driver or the LSP pool)
// needs after a compile: the emitted script (empty on error, per spec
// §4.7), the interval index for position queries, and the recorded
// errors/warnings.
type CompileResult struct {
	Output    string
	Program   *Program
	Intervals *IntervalIndex
}

// Compile lowers a parsed Bash++ program to plain Bash (
// "Overview"). parse is used to resolve `include`/`include_once`
// statements found anywhere in root or its transitive includes.
//
// An InternalError panicking out of the walker is
// recovered here and converted into a single recorded program error, so
// a compiler bug degrades to "no output, one diagnostic" rather than a
// crash reaching the CLI's top level.
func Compile(mainFile string, root *ProgramNode, parse ParseFunc, opts CompileOptions) (res *CompileResult, err error) {
	program := NewProgram(opts.TargetBashVersion, opts.IncludePaths)
	program.RecordFile(mainFile, true)

	walker := NewWalker(program, mainFile, opts.WarningsAsErrors)
	walker.SetIncludeResolution(&IncludeResolver{
		BaseDir:      filepath.Dir(mainFile),
		IncludePaths: opts.IncludePaths,
	}, parse)

	defer func() {
		if r := recover(); r != nil {
			ierr, ok := r.(*InternalError)
			if !ok {
				panic(r)
			}
			glog.Errorf("bpp: %s", ierr.Error())
			program.AddError(ierr)
			res = &CompileResult{Output: "", Program: program}
			err = ierr
		}
	}()

	walker.WalkProgram(root)

	if program.HasErrors() {
		return &CompileResult{Output: "", Program: program, Intervals: walker.Intervals}, program.Errors()[0]
	}
	return &CompileResult{Output: program.Output(), Program: program, Intervals: walker.Intervals}, nil
}
