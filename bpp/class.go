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

// Class is a Bash++ class: an ordered list of data members, an ordered
// list of methods, an optional parent, and the derived flags/addresses
// the code generator needs.
type Class struct {
	entity

	dataMembers []*DataMember
	methods     []*Method
	parent      *Class // weak ref, kept for vTable/destructor chaining

	hasConstructor bool
	hasDestructor  bool

	// vtableAddress is the name of the shell associative array that backs
	// this class's vTable: bpp__<Name>____vTable.
	vtableAddress string
}

// NewClass constructs a class named name. If parent is non-nil,
// inheritance is materialized eagerly: the new class's method and member
// lists are seeded with deep copies of the parent's, preserving
// declaration order, and the parent link is retained so that (a)
// `__destructor` invocations chain and (b) the emitted vTable entry
// carries a `__parent__` slot pointing at the parent's vTable.
func NewClass(name string, parent *Class, pos srcpos) *Class {
	c := &Class{
		entity:        entity{name: name, definedAt: pos},
		parent:        parent,
		vtableAddress: "bpp__" + name + "____vTable",
	}
	if parent != nil {
		for _, m := range parent.dataMembers {
			cp := *m
			cp.class = c
			c.dataMembers = append(c.dataMembers, &cp)
		}
		for _, m := range parent.methods {
			cp := *m
			cp.class = c
			c.methods = append(c.methods, &cp)
		}
		c.hasConstructor = parent.hasConstructor
		c.hasDestructor = parent.hasDestructor
	}
	return c
}

// Parent returns the class's parent, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

// HasConstructor reports whether this class (or, via inheritance, an
// ancestor) declares a constructor.
func (c *Class) HasConstructor() bool { return c.hasConstructor }

// HasDestructor reports whether this class (or an ancestor) declares a
// destructor.
func (c *Class) HasDestructor() bool { return c.hasDestructor }

// VTableAddress is the shell associative-array name backing this class's
// vTable.
func (c *Class) VTableAddress() string { return c.vtableAddress }

// DataMembers returns the class's data members in declaration order.
func (c *Class) DataMembers() []*DataMember { return c.dataMembers }

// Methods returns the class's methods in declaration order.
func (c *Class) Methods() []*Method { return c.methods }

// ErrDuplicateMember is returned by AddDataMember/AddMethod when name
// resolution would become ambiguous.
type ErrDuplicateMember struct {
	Class string
	Name  string
}

func (e *ErrDuplicateMember) Error() string {
	return "class " + e.Class + " already declares a member named " + e.Name
}

// AddDataMember adds a data member to the class. It fails if the name
// collides with a member or method the class itself already declares.
// A name that only collides with a member inherited (and not yet
// redeclared) from a parent is an override: it replaces the inherited
// copy in place rather than erroring.
func (c *Class) AddDataMember(m *DataMember) error {
	for i, existing := range c.dataMembers {
		if existing.name == m.name {
			if existing.definedIn != c {
				m.class = c
				m.definedIn = c
				c.dataMembers[i] = m
				glog.V(1).Infof("class %s: overrode inherited data member %s", c.name, m.name)
				return nil
			}
			return &ErrDuplicateMember{Class: c.name, Name: m.name}
		}
	}
	for _, existing := range c.methods {
		if existing.name == m.name {
			return &ErrDuplicateMember{Class: c.name, Name: m.name}
		}
	}
	m.class = c
	m.definedIn = c
	c.dataMembers = append(c.dataMembers, m)
	glog.V(1).Infof("class %s: added data member %s (scope=%s)", c.name, m.name, m.scope)
	return nil
}

// ErrDuplicateSignature is returned by AddMethod when another method
// already has the identical signature.
type ErrDuplicateSignature struct {
	Class     string
	Signature string
}

func (e *ErrDuplicateSignature) Error() string {
	return "class " + e.Class + " already declares a method with signature " + e.Signature
}

// AddMethod adds a method to the class. It fails if the class itself
// already declares a method with the same signature. A signature that
// only collides with a method inherited (and not yet redeclared) from a
// parent is an override: it replaces the inherited copy in place, at
// the same position, rather than erroring — this is how
// `@method foo`/`@constructor`/`@destructor` redefinitions in a derived
// class are meant to work.
func (c *Class) AddMethod(m *Method) error {
	sig := m.Signature()
	for i, existing := range c.methods {
		if existing.Signature() == sig {
			if existing.definedIn != c {
				m.class = c
				m.definedIn = c
				c.methods[i] = m
				glog.V(1).Infof("class %s: overrode inherited method %s", c.name, sig)
				return nil
			}
			return &ErrDuplicateSignature{Class: c.name, Signature: sig}
		}
	}
	m.class = c
	m.definedIn = c
	c.methods = append(c.methods, m)
	if m.name == constructorName {
		c.hasConstructor = true
	}
	if m.name == destructorName {
		c.hasDestructor = true
	}
	glog.V(1).Infof("class %s: added method %s", c.name, sig)
	return nil
}

// DataMember looks up a data member by name, searching only this class
// (inheritance has already flattened parent members into dataMembers at
// construction time).
func (c *Class) DataMember(name string) *DataMember {
	for _, m := range c.dataMembers {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Method looks up a method by name. When multiple overloads share a name
// but differ in parameter count, the first declared match wins;
// MethodBySignature finds an exact overload. The resolver (resolver.go)
// looks methods up by name only.
func (c *Class) Method(name string) *Method {
	for _, m := range c.methods {
		if m.name == name {
			return m
		}
	}
	return nil
}

// MethodBySignature looks up a method by its full mangled signature.
func (c *Class) MethodBySignature(sig string) *Method {
	for _, m := range c.methods {
		if m.Signature() == sig {
			return m
		}
	}
	return nil
}

// ToPrimitiveSignature is the signature of the zero-argument toPrimitive
// method every class either declares or receives a default for.
const ToPrimitiveSignature = "toPrimitive__"

// HasUserToPrimitive reports whether the class declares its own
// `toPrimitive` method (as opposed to relying on the compiler-synthesized
// default that echoes the object's address).
func (c *Class) HasUserToPrimitive() bool {
	return c.MethodBySignature(ToPrimitiveSignature) != nil
}

// validateClassName enforces "Class definition": no `__`
// substring (it is the mangling alphabet's punctuation, ) and no
// collision with a protected keyword. Collisions with an existing class
// or top-level object name are checked by Program.AddClass.
func validateClassName(name string) error {
	if strings.Contains(name, "__") {
		return &SyntaxError{Message: "identifier " + name + " contains the reserved sequence \"__\""}
	}
	if protectedKeywords[name] {
		return &SyntaxError{Message: "identifier " + name + " is a reserved keyword"}
	}
	return nil
}

// protectedKeywords is the reserved set. Only class names are checked
// against it (validateClassName); method, data-member and object names
// are not.
var protectedKeywords = map[string]bool{
	"class": true, "constructor": true, "delete": true, "destructor": true,
	"dynamic_cast": true, "include": true, "include_once": true,
	"method": true, "new": true, "nullptr": true, "primitive": true,
	"private": true, "protected": true, "public": true, "this": true,
	"virtual": true,
}
