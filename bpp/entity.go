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

// Package bpp is the Bash++ compiler core: the symbol model, the
// tree-walking code generator, and the fixed runtime templates that
// together lower a Bash++ source file into plain Bash.
package bpp

// Scope is the visibility of a data member or method.
type Scope int

const (
	ScopePublic Scope = iota
	ScopeProtected
	ScopePrivate
)

func (s Scope) String() string {
	switch s {
	case ScopePublic:
		return "public"
	case ScopeProtected:
		return "protected"
	case ScopePrivate:
		return "private"
	default:
		return "unknown"
	}
}

// srcpos is a source position: file name plus 1-based line and column.
// Columns come from the parser's token stream; kati's equivalent srcpos
// carries only a line because Make has no meaningful column, but the
// interval index (interval.go) needs both.
type srcpos struct {
	filename string
	line     int
	column   int
}

func (p srcpos) String() string {
	return p.filename + ":" + itoa(p.line) + ":" + itoa(p.column)
}

// entity is the capability shared by every symbol-model node: a name, a
// weak reference to the containing class, the position of its initial
// definition, and the positions of every subsequent reference recorded
// against it (used by the interval index and by diagnostics such as
// "declared here").
type entity struct {
	name         string
	class        *Class // weak: never freed by the entity itself
	definedAt    srcpos
	referencedAt []srcpos
}

func (e *entity) Name() string { return e.name }

func (e *entity) Class() *Class { return e.class }

func (e *entity) DefinedAt() srcpos { return e.definedAt }

func (e *entity) addReference(pos srcpos) {
	e.referencedAt = append(e.referencedAt, pos)
}

func (e *entity) References() []srcpos {
	return e.referencedAt
}

// itoa avoids importing strconv in every small file that needs to stringify
// a line/column; kept tiny and local, mirroring kati's habit (see
// pathutil.go) of hand-rolling trivial string helpers instead of reaching
// for extra stdlib surface at every call site.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
