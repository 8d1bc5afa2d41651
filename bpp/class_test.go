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

import "testing"

func TestClassAddDataMemberRejectsDuplicates(t *testing.T) {
	p := NewProgram("4.4", nil)
	c := NewClass("Widget", nil, srcpos{})
	if err := c.AddDataMember(NewDataMember("x", p.Primitive, srcpos{})); err != nil {
		t.Fatalf("first AddDataMember: %v", err)
	}
	if err := c.AddDataMember(NewDataMember("x", p.Primitive, srcpos{})); err == nil {
		t.Fatalf("expected duplicate data member to be rejected")
	}
}

func TestClassAddDataMemberRejectsMethodNameCollision(t *testing.T) {
	p := NewProgram("4.4", nil)
	c := NewClass("Widget", nil, srcpos{})
	m := NewMethod("draw", srcpos{})
	if err := c.AddMethod(m); err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	if err := c.AddDataMember(NewDataMember("draw", p.Primitive, srcpos{})); err == nil {
		t.Fatalf("expected data member name colliding with a method to be rejected")
	}
}

func TestClassAddMethodAllowsOverloadBySignature(t *testing.T) {
	other := NewClass("Other", nil, srcpos{})
	c := NewClass("Widget", nil, srcpos{})

	m1 := NewMethod("update", srcpos{})
	m2 := NewMethod("update", srcpos{})
	if err := m2.AddParameter(NewMethodParameter("o", other, srcpos{})); err != nil {
		t.Fatalf("AddParameter: %v", err)
	}

	if err := c.AddMethod(m1); err != nil {
		t.Fatalf("AddMethod(m1): %v", err)
	}
	if err := c.AddMethod(m2); err != nil {
		t.Fatalf("AddMethod(m2) with distinct signature should succeed: %v", err)
	}
}

func TestClassAddMethodRejectsSameSignature(t *testing.T) {
	c := NewClass("Widget", nil, srcpos{})
	if err := c.AddMethod(NewMethod("update", srcpos{})); err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	if err := c.AddMethod(NewMethod("update", srcpos{})); err == nil {
		t.Fatalf("expected a second method with the identical signature to be rejected")
	}
}

func TestNewClassInheritsParentMembersAndMethods(t *testing.T) {
	p := NewProgram("4.4", nil)
	base := NewClass("Base", nil, srcpos{})
	if err := base.AddDataMember(NewDataMember("x", p.Primitive, srcpos{})); err != nil {
		t.Fatalf("AddDataMember: %v", err)
	}
	if err := base.AddMethod(NewMethod("tick", srcpos{})); err != nil {
		t.Fatalf("AddMethod: %v", err)
	}

	derived := NewClass("Derived", base, srcpos{})
	if derived.DataMember("x") == nil {
		t.Fatalf("derived class did not inherit data member x")
	}
	if derived.Method("tick") == nil {
		t.Fatalf("derived class did not inherit method tick")
	}
	if derived.DataMember("x") == base.DataMember("x") {
		t.Fatalf("inherited data member should be a deep copy, not the same pointer")
	}
}

func TestClassAddMethodOverridesInheritedMethod(t *testing.T) {
	base := NewClass("A", nil, srcpos{})
	origDtor := NewDestructor(srcpos{})
	if err := base.AddMethod(origDtor); err != nil {
		t.Fatalf("AddMethod(destructor) on base: %v", err)
	}

	derived := NewClass("B", base, srcpos{})
	if derived.MethodBySignature(destructorName+"__") == nil {
		t.Fatalf("derived class did not inherit destructor")
	}

	ownDtor := NewDestructor(srcpos{})
	if err := derived.AddMethod(ownDtor); err != nil {
		t.Fatalf("redefining @destructor in a derived class must be allowed as an override, got: %v", err)
	}
	if got := derived.MethodBySignature(destructorName + "__"); got != ownDtor {
		t.Fatalf("derived class's own destructor did not replace the inherited copy")
	}
	if ownDtor.DefinedIn() != derived {
		t.Fatalf("overriding method's DefinedIn() = %v, want the derived class", ownDtor.DefinedIn())
	}

	// Declaring the same signature a second time in the same (derived)
	// class is a genuine duplicate, not another override.
	if err := derived.AddMethod(NewDestructor(srcpos{})); err == nil {
		t.Fatalf("expected redeclaring the already-overridden destructor a second time to be rejected")
	}
}

func TestClassAddDataMemberOverridesInheritedMember(t *testing.T) {
	p := NewProgram("4.4", nil)
	base := NewClass("A", nil, srcpos{})
	if err := base.AddDataMember(NewDataMember("count", p.Primitive, srcpos{})); err != nil {
		t.Fatalf("AddDataMember on base: %v", err)
	}

	derived := NewClass("B", base, srcpos{})
	own := NewDataMember("count", p.Primitive, srcpos{})
	if err := derived.AddDataMember(own); err != nil {
		t.Fatalf("redeclaring an inherited data member in a derived class must be allowed as an override, got: %v", err)
	}
	if derived.DataMember("count") != own {
		t.Fatalf("derived class's own data member did not replace the inherited copy")
	}

	if err := derived.AddDataMember(NewDataMember("count", p.Primitive, srcpos{})); err == nil {
		t.Fatalf("expected redeclaring the already-overridden member a second time to be rejected")
	}
}

func TestMethodSignature(t *testing.T) {
	other := NewClass("Other", nil, srcpos{})
	for _, tc := range []struct {
		name   string
		params []*Class
		want   string
	}{
		{name: "toPrimitive", params: nil, want: "toPrimitive__"},
		{name: "update", params: []*Class{other}, want: "update__Other"},
		{name: "merge", params: []*Class{other, other}, want: "merge__Other__Other"},
	} {
		m := NewMethod(tc.name, srcpos{})
		for _, pc := range tc.params {
			if err := m.AddParameter(NewMethodParameter("p", pc, srcpos{})); err != nil {
				t.Fatalf("AddParameter: %v", err)
			}
		}
		if got := m.Signature(); got != tc.want {
			t.Errorf("Signature(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestValidateClassNameRejectsReservedSequenceAndKeywords(t *testing.T) {
	for _, tc := range []struct {
		name    string
		wantErr bool
	}{
		{name: "Widget", wantErr: false},
		{name: "My__Class", wantErr: true},
		{name: "class", wantErr: true},
		{name: "this", wantErr: true},
	} {
		err := validateClassName(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("validateClassName(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
