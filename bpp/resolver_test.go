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

func setupWidgetProgram(t *testing.T) (*Program, *Class) {
	t.Helper()
	p := NewProgram("4.4", nil)
	widget := NewClass("Widget", nil, srcpos{})
	label := NewDataMember("label", p.Primitive, srcpos{})
	if err := widget.AddDataMember(label); err != nil {
		t.Fatalf("AddDataMember(label): %v", err)
	}
	if err := p.AddClass(widget); err != nil {
		t.Fatalf("AddClass(Widget): %v", err)
	}
	return p, widget
}

func TestResolveObjectReferencePrimitiveMemberSingleLevel(t *testing.T) {
	p, widget := setupWidgetProgram(t)
	addr := p.NextObjectAddress("Widget", "w")
	if err := p.AddObject(NewObject("w", widget, addr, false, srcpos{})); err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	ref, err := p.resolveObjectReference("w", []string{"label"}, defaultExpectations, srcpos{})
	if err != nil {
		t.Fatalf("resolveObjectReference: %v", err)
	}
	if len(ref.Pre) != 0 {
		t.Errorf("expected no indirection temps for a direct single-level object reference, got %v", ref.Pre)
	}
	want := "${" + addr + "__label}"
	if ref.Inline != want {
		t.Errorf("Inline = %q, want %q", ref.Inline, want)
	}
}

func TestResolveSelfReferencePrimitiveMemberAlwaysIndirects(t *testing.T) {
	p, widget := setupWidgetProgram(t)

	ref, err := p.resolveSelfReference(widget, []string{"label"}, defaultExpectations, srcpos{})
	if err != nil {
		t.Fatalf("resolveSelfReference: %v", err)
	}
	if len(ref.Pre) == 0 {
		t.Fatalf("self-reference to a member must declare at least one indirection temp")
	}
}

func TestResolveSelfReferenceBareThis(t *testing.T) {
	p, widget := setupWidgetProgram(t)
	ref, err := p.resolveSelfReference(widget, nil, defaultExpectations, srcpos{})
	if err != nil {
		t.Fatalf("resolveSelfReference: %v", err)
	}
	if ref.Inline != "${__objectAddress}" {
		t.Errorf("bare @this Inline = %q, want ${__objectAddress}", ref.Inline)
	}
	if ref.Kind != chainObject || ref.ObjectClass != widget {
		t.Errorf("bare @this should resolve as chainObject of class Widget, got kind=%v class=%v", ref.Kind, ref.ObjectClass)
	}
}

func TestResolveObjectReferenceUnknownObject(t *testing.T) {
	p, _ := setupWidgetProgram(t)
	if _, err := p.resolveObjectReference("missing", nil, defaultExpectations, srcpos{}); err == nil {
		t.Fatalf("expected an error resolving an unregistered object")
	}
}

func TestResolveObjectReferenceAutoToPrimitiveOnNonPrimitiveTerminal(t *testing.T) {
	p := NewProgram("4.4", nil)
	inner := NewClass("Inner", nil, srcpos{})
	toPrim := NewMethod("toPrimitive", srcpos{})
	if err := inner.AddMethod(toPrim); err != nil {
		t.Fatalf("AddMethod(toPrimitive): %v", err)
	}
	if err := p.AddClass(inner); err != nil {
		t.Fatalf("AddClass(Inner): %v", err)
	}

	outer := NewClass("Outer", nil, srcpos{})
	dm := NewDataMember("child", p.Primitive, srcpos{})
	dm.SetDeclaredType(inner)
	if err := outer.AddDataMember(dm); err != nil {
		t.Fatalf("AddDataMember(child): %v", err)
	}
	if err := p.AddClass(outer); err != nil {
		t.Fatalf("AddClass(Outer): %v", err)
	}
	addr := p.NextObjectAddress("Outer", "o")
	if err := p.AddObject(NewObject("o", outer, addr, false, srcpos{})); err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	ref, err := p.resolveObjectReference("o", []string{"child"}, defaultExpectations, srcpos{})
	if err != nil {
		t.Fatalf("resolveObjectReference: %v", err)
	}
	if ref.Kind != chainMethod {
		t.Errorf("expected the non-primitive terminal to auto-invoke toPrimitive (chainMethod), got kind=%v", ref.Kind)
	}
}

func TestResolveObjectReferenceInheritedMethodCallsDefiningClassFunction(t *testing.T) {
	p := NewProgram("4.4", nil)
	base := NewClass("Base", nil, srcpos{})
	if err := base.AddMethod(NewMethod("tick", srcpos{})); err != nil {
		t.Fatalf("AddMethod(tick): %v", err)
	}
	if err := p.AddClass(base); err != nil {
		t.Fatalf("AddClass(Base): %v", err)
	}

	derived := NewClass("Derived", base, srcpos{})
	if err := p.AddClass(derived); err != nil {
		t.Fatalf("AddClass(Derived): %v", err)
	}
	addr := p.NextObjectAddress("Derived", "d")
	if err := p.AddObject(NewObject("d", derived, addr, false, srcpos{})); err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	ref, err := p.resolveObjectReference("d", []string{"tick"}, defaultExpectations, srcpos{})
	if err != nil {
		t.Fatalf("resolveObjectReference: %v", err)
	}

	wantCall := "bpp__Base____tick__"
	found := false
	for _, line := range ref.Pre {
		if line == "\t"+wantCall+" \""+addr+"\"" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a call to %s (the class that actually compiled tick) in Pre %v, since Derived never recompiles an inherited, non-overridden method under its own name", wantCall, ref.Pre)
	}
}

func TestDescendChainRejectsDescentPastMethod(t *testing.T) {
	widget := NewClass("Widget", nil, srcpos{})
	if err := widget.AddMethod(NewMethod("draw", srcpos{})); err != nil {
		t.Fatalf("AddMethod: %v", err)
	}
	if _, err := descendChain(widget, []string{"draw", "x"}, srcpos{}); err == nil {
		t.Fatalf("expected an error descending past a method in the middle of a chain")
	}
}
