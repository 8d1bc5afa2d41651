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
	"strings"

	"github.com/golang/glog"
)

// PrimitiveClassName is the name of the synthetic "untyped string" class
// every Program bootstraps eagerly.
const PrimitiveClassName = "primitive"

// SourceFile records one file the program has processed, in
// first-processed order, and whether it was the file named on the
// command line (as opposed to pulled in by `include`/`include_once`).
// This lets diagnostics and the interval index say "defined in an
// included file".
type SourceFile struct {
	Path   string
	IsMain bool
}

// Program is the root symbol table: the class registry, the top-level
// object registry, the synthetic primitive class, the monotone object
// and assignment counters used to mint unique runtime names, the
// accumulated output buffer, the set of source files processed, the
// target Bash version, and the include-path list.
type Program struct {
	classes map[string]*Class
	objects map[string]*Object

	Primitive *Class

	objectCounter     int
	assignmentCounter int
	ruleCounter       int

	output strings.Builder

	files        []SourceFile
	includedOnce map[string]bool // fully-resolved absolute paths
	includePaths []string

	targetBashVersion string

	errors   []error
	warnings []error
}

// NewProgram constructs a Program with its primitive class already
// registered, matching the original C++ implementation's eager bootstrap.
func NewProgram(targetBashVersion string, includePaths []string) *Program {
	p := &Program{
		classes:           make(map[string]*Class),
		objects:           make(map[string]*Object),
		includedOnce:      make(map[string]bool),
		includePaths:      includePaths,
		targetBashVersion: targetBashVersion,
	}
	p.Primitive = &Class{entity: entity{name: PrimitiveClassName}}
	p.classes[PrimitiveClassName] = p.Primitive
	return p
}

// ErrNameCollision is returned when a class or object name is already
// taken by a class or an object: Program invariant forbids a
// single name being simultaneously a class and an object in the same
// scope.
type ErrNameCollision struct {
	Name string
}

func (e *ErrNameCollision) Error() string {
	return "name " + e.Name + " is already in use"
}

// AddClass registers class c, validates its name ("Class
// definition"), and returns an error without mutating the registry if
// the name is invalid or already taken.
func (p *Program) AddClass(c *Class) error {
	if err := validateClassName(c.name); err != nil {
		return err
	}
	if _, exists := p.classes[c.name]; exists {
		return &ErrNameCollision{Name: c.name}
	}
	if _, exists := p.objects[c.name]; exists {
		return &ErrNameCollision{Name: c.name}
	}
	p.classes[c.name] = c
	glog.V(1).Infof("program: registered class %s (parent=%v)", c.name, c.parent != nil)
	return nil
}

// Class looks up a registered class by name.
func (p *Program) Class(name string) *Class {
	return p.classes[name]
}

// Classes returns every registered class, including the primitive class,
// in an unspecified order.
func (p *Program) Classes() []*Class {
	out := make([]*Class, 0, len(p.classes))
	for _, c := range p.classes {
		out = append(out, c)
	}
	return out
}

// AddObject registers a top-level object. It fails if the name collides
// with a class or another top-level object.
func (p *Program) AddObject(o *Object) error {
	if _, exists := p.objects[o.name]; exists {
		return &ErrNameCollision{Name: o.name}
	}
	if _, exists := p.classes[o.name]; exists {
		return &ErrNameCollision{Name: o.name}
	}
	p.objects[o.name] = o
	return nil
}

// Object looks up a top-level object by name.
func (p *Program) Object(name string) *Object {
	return p.objects[name]
}

// NextObjectAddress mints a fresh, collision-free shell variable name for
// a newly instantiated top-level object of the given class:
// `bpp__<N>__<Class>__<name>`.
func (p *Program) NextObjectAddress(class, name string) string {
	p.objectCounter++
	return "bpp__" + itoa(p.objectCounter) + "__" + class + "__" + name
}

// NextHeapAddress mints a fresh address for an `@new`-allocated object,
// sharing the same counter as NextObjectAddress so the two namespaces
// (named top-level/local objects and anonymous heap objects) never
// collide.
func (p *Program) NextHeapAddress(class string) string {
	p.objectCounter++
	return "bpp__heap__" + class + "__" + itoa(p.objectCounter)
}

// NextAssignmentTemp mints a fresh `<prefix><N>` temporary name, used by
// `@new` (`__heapObject`), by supershell capture (`____supershellOutput`,
// `____supershellFunc`) and by `@dynamic_cast` (`__dynamicCastResult`).
func (p *Program) NextAssignmentTemp(prefix string) string {
	p.assignmentCounter++
	return prefix + itoa(p.assignmentCounter)
}

// RecordFile appends path to the processed-files list in first-seen
// order.
func (p *Program) RecordFile(path string, isMain bool) {
	p.files = append(p.files, SourceFile{Path: path, IsMain: isMain})
}

// Files returns every source file processed, in first-processed order.
func (p *Program) Files() []SourceFile {
	return p.files
}

// IsMainFile reports whether path was recorded as the main (command-line)
// file rather than an include.
func (p *Program) IsMainFile(path string) bool {
	for _, f := range p.files {
		if f.Path == path {
			return f.IsMain
		}
	}
	return false
}

// MarkIncluded records that the fully-resolved absolute path has been
// processed by `include_once`, and reports whether it was already
// recorded — the caller uses this to make the second occurrence a no-op.
func (p *Program) MarkIncluded(absPath string) (alreadyIncluded bool) {
	if p.includedOnce[absPath] {
		return true
	}
	p.includedOnce[absPath] = true
	return false
}

// IncludePaths returns the angle-bracket search path list.
func (p *Program) IncludePaths() []string {
	return p.includePaths
}

// TargetBashVersion returns the configured target Bash version string
// (e.g. "4.4"). It is recorded only; nothing compares it with the
// minimum versions templates.go documents.
func (p *Program) TargetBashVersion() string {
	return p.targetBashVersion
}

// AddError records a compilation error. errors are always
// collected, never thrown to abort: the walker marks HasErrors and
// returns early from the current handler, but the walk continues.
func (p *Program) AddError(err error) {
	p.errors = append(p.errors, err)
}

// HasErrors reports whether any error has been recorded.
func (p *Program) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns every recorded compilation error, in recording order.
func (p *Program) Errors() []error {
	return p.errors
}

// AddWarning records a suppressible warning. Warnings
// never affect output.
func (p *Program) AddWarning(err error) {
	p.warnings = append(p.warnings, err)
}

// Warnings returns every recorded warning.
func (p *Program) Warnings() []error {
	return p.warnings
}

// WriteCode appends raw shell text to the program's output buffer, in
// source-traversal order.
func (p *Program) WriteCode(s string) {
	p.output.WriteString(s)
}

// Output assembles the final emitted script: the shebang, the runtime
// template block, then whatever has been appended via WriteCode — which
// the walker arranges to be per-class function definitions followed by
// top-level code in source order.
//
// If the program has recorded any error, Output returns "": once the walk
// completes, a program marked erroneous suppresses its emitted output
// rather than returning a partial script.
func (p *Program) Output() string {
	if p.HasErrors() {
		return ""
	}
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	b.WriteString(runtimePrelude())
	b.WriteString(p.output.String())
	return b.String()
}
