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

// DataMember is a class's field: a name, a declared class (defaulting to
// the synthetic primitive class), a scope, optional default-value source
// text, an is_array flag, and the access code the resolver attaches to
// it.
//
// Lifecycle: created when the walker enters a member declaration; the
// walker sets its declared class from the declaration's type name
// (SetDeclaredType) before adding it to the containing class.
type DataMember struct {
	entity

	scope        Scope
	declaredType *Class
	defaultValue string
	hasDefault   bool
	isArray      bool
	isPointer    bool

	// definedIn is the class whose body actually declared this member,
	// as opposed to entity.class, which NewClass repoints at every
	// inheriting subclass on deep copy. AddDataMember compares the two
	// to tell "inherited, not yet overridden" from "already declared
	// here".
	definedIn *Class

	preAccessCode  string
	postAccessCode string
}

// NewDataMember constructs a data member defaulted to the primitive
// class; SetDeclaredType narrows it when the declaration names a class.
func NewDataMember(name string, primitive *Class, pos srcpos) *DataMember {
	return &DataMember{
		entity:       entity{name: name, definedAt: pos},
		declaredType: primitive,
		scope:        ScopePrivate,
	}
}

func (d *DataMember) Scope() Scope { return d.scope }
func (d *DataMember) SetScope(s Scope) { d.scope = s }

func (d *DataMember) DeclaredType() *Class { return d.declaredType }
func (d *DataMember) SetDeclaredType(c *Class) { d.declaredType = c }

func (d *DataMember) DefaultValue() (string, bool) { return d.defaultValue, d.hasDefault }
func (d *DataMember) SetDefaultValue(v string) {
	d.defaultValue = v
	d.hasDefault = true
}

func (d *DataMember) IsArray() bool { return d.isArray }
func (d *DataMember) SetIsArray(v bool) { d.isArray = v }

func (d *DataMember) IsPointer() bool { return d.isPointer }
func (d *DataMember) SetIsPointer(v bool) { d.isPointer = v }

// IsPrimitive reports whether the member's declared type is the
// synthetic primitive class. Resolver and assignment code dispatch on
// this.
func (d *DataMember) IsPrimitive(primitive *Class) bool {
	return d.declaredType == primitive
}
