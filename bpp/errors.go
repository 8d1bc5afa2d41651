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

import "fmt"

// SyntaxError is error class 1: an error the walker can attribute
// to a specific source position, collected on the program (never thrown
// to abort) and which suppresses output at the end of compilation.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

// Well-known SyntaxError constructors, named after the conditions
// /§4.7 enumerate, so callers don't hand-format messages
// inconsistently across handlers.

func errUnknownClass(pos srcpos, name string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "unknown class: " + name}
}

func errUnknownObject(pos srcpos, name string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "unknown object: " + name}
}

func errUnknownMember(pos srcpos, owner, name string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "class " + owner + " has no member named " + name}
}

func errCannotDescend(pos srcpos, name string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "cannot descend past method " + name + " in reference chain"}
}

func errPrimitiveToNonPrimitive(pos srcpos) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "cannot assign a primitive value to a non-primitive object"}
}

func errAlreadyDefined(pos srcpos, what string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: what + " is already defined"}
}

func errUnresolvedInclude(pos srcpos, path string) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "cannot resolve include path: " + path}
}

func errMemberDeclarationOutsideClass(pos srcpos) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "data member declaration outside of a class body"}
}

func errStrayInstantiation(pos srcpos) error {
	return &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
		Message: "object instantiation is not valid directly inside a class body"}
}

// InternalError is error class 2: an impossible state that halts
// compilation immediately with a "please report" suffix, rather than
// being collected like a SyntaxError. Handlers invoke panic(InternalError)
// and the top-level Compile entry point (emit.go) recovers it.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message + " (please report this bug)"
}

func panicInternal(format string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}

// Warning is error class 3: suppressible, never affects output.
type Warning struct {
	File    string
	Line    int
	Message string
}

func (w *Warning) Error() string {
	if w.File == "" {
		return w.Message
	}
	return fmt.Sprintf("%s:%d: warning: %s", w.File, w.Line, w.Message)
}
