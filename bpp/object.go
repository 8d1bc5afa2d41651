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

// Object is an instance of a class: a name, its mangled shell storage
// address, its class, whether it is a pointer, and optional pre/post
// access code plus an assignment value.
//
// Top-level objects are registered on the Program; member objects are
// owned by their containing DataMember.
type Object struct {
	entity

	address   string
	isPointer bool

	preAccessCode  string
	postAccessCode string
	assignedValue  string
	hasAssignment  bool
}

// NewObject mints an object named name of the given class, with address
// conventionally `bpp__<counter>__<ClassName>__<name>` for top-level
// objects.
func NewObject(name string, class *Class, address string, isPointer bool, pos srcpos) *Object {
	return &Object{
		entity:    entity{name: name, class: class, definedAt: pos},
		address:   address,
		isPointer: isPointer,
	}
}

func (o *Object) Address() string   { return o.address }
func (o *Object) IsPointer() bool   { return o.isPointer }

func (o *Object) SetAssignedValue(v string) {
	o.assignedValue = v
	o.hasAssignment = true
}

func (o *Object) AssignedValue() (string, bool) { return o.assignedValue, o.hasAssignment }
