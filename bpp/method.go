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

import "strings"

const (
	constructorName = "__constructor"
	destructorName  = "__destructor"
)

// MethodParameter is one parameter of a method. The compiler does not
// reject primitive-typed parameters, and the emitted method does not
// validate its parameters at runtime: templates.go's
// %THIS_POINTER_VALIDATION% checks only the receiver.
type MethodParameter struct {
	entity
	declaredType *Class
}

func NewMethodParameter(name string, declaredType *Class, pos srcpos) *MethodParameter {
	return &MethodParameter{entity: entity{name: name, definedAt: pos}, declaredType: declaredType}
}

func (p *MethodParameter) DeclaredType() *Class { return p.declaredType }

// Method is a class method: a name, a scope, a virtual flag, an ordered
// parameter list, and a body accumulated as a code entity (
// "Method"). Constructors and destructors are methods with fixed names,
// fixed public scope, fixed is_virtual=true, and rejection of all
// parameters.
type Method struct {
	codeEntity

	scope      Scope
	isVirtual  bool
	parameters []*MethodParameter

	// definedIn is the class whose body actually declared this method, as
	// opposed to entity.class, which NewClass repoints at every
	// inheriting subclass on deep copy. AddMethod compares the two to
	// tell "inherited, not yet overridden" from "already declared here",
	// and the resolver mangles a call against definedIn so an inherited,
	// non-overridden method still resolves to the function body that was
	// actually compiled for it.
	definedIn *Class
}

// NewMethod constructs a plain (non-constructor, non-destructor) method.
func NewMethod(name string, pos srcpos) *Method {
	return &Method{codeEntity: codeEntity{entity: entity{name: name, definedAt: pos}}}
}

// NewConstructor constructs the fixed `__constructor` method.
func NewConstructor(pos srcpos) *Method {
	return &Method{
		codeEntity: codeEntity{entity: entity{name: constructorName, definedAt: pos}},
		scope:      ScopePublic,
		isVirtual:  true,
	}
}

// NewDestructor constructs the fixed `__destructor` method.
func NewDestructor(pos srcpos) *Method {
	return &Method{
		codeEntity: codeEntity{entity: entity{name: destructorName, definedAt: pos}},
		scope:      ScopePublic,
		isVirtual:  true,
	}
}

func (m *Method) IsConstructor() bool { return m.name == constructorName }
func (m *Method) IsDestructor() bool  { return m.name == destructorName }

func (m *Method) Scope() Scope     { return m.scope }
func (m *Method) SetScope(s Scope) { m.scope = s }
func (m *Method) IsVirtual() bool  { return m.isVirtual }
func (m *Method) SetVirtual(v bool) { m.isVirtual = v }
func (m *Method) Parameters() []*MethodParameter { return m.parameters }

// DefinedIn returns the class whose body actually declared this method —
// the class whose ____<signature> function implements it — which for an
// inherited, non-overridden method differs from Class(), the class the
// method was looked up on.
func (m *Method) DefinedIn() *Class { return m.definedIn }

// ErrParameterRejected is returned by AddParameter on a constructor or
// destructor: both reject all parameters.
type ErrParameterRejected struct {
	Method string
}

func (e *ErrParameterRejected) Error() string {
	return e.Method + " does not accept parameters"
}

// AddParameter appends a parameter, failing for constructors/destructors.
func (m *Method) AddParameter(p *MethodParameter) error {
	if m.IsConstructor() || m.IsDestructor() {
		return &ErrParameterRejected{Method: m.name}
	}
	m.parameters = append(m.parameters, p)
	return nil
}

// Signature is the method-identifying string:
//
//	name ++ "__" ++ join(param_types, "__")
//
// An empty parameter list preserves a trailing "__", so a zero-arg
// method's signature is "name__" — this is why ToPrimitiveSignature in
// class.go is "toPrimitive__" and not bare "toPrimitive".
func (m *Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteString("__")
	for i, p := range m.parameters {
		if i > 0 {
			b.WriteString("__")
		}
		b.WriteString(p.declaredType.Name())
	}
	return b.String()
}

// MangledName is the compiled shell function name for this method on
// class owner.
func (m *Method) MangledName(owner *Class) string {
	switch m.name {
	case constructorName:
		return "bpp__" + owner.Name() + "____constructor"
	case destructorName:
		return "bpp__" + owner.Name() + "____destructor"
	default:
		return "bpp__" + owner.Name() + "____" + m.Signature()
	}
}
