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

// handleClassDefinition implements "Class definition": resolve
// the optional parent, register the class, walk the body (which mutates
// the class via AddDataMember/AddMethod as it goes), then emit the
// class's fixed lifecycle functions (new/delete/copy, and constructor/
// destructor only if the class — or an ancestor — declared one).
func (w *Walker) handleClassDefinition(n *ClassDefinition) {
	pos := w.pos(n)

	var parent *Class
	if n.Parent != "" {
		parent = w.program.Class(n.Parent)
		if parent == nil {
			w.addErr(errUnknownClass(pos, n.Parent))
			return
		}
	}

	class := NewClass(n.Name, parent, pos)
	if err := w.program.AddClass(class); err != nil {
		w.addErr(&SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column, Message: err.Error()})
		return
	}

	w.intervalBuild.Open(NewPosition(pos.line, pos.column))
	w.pushFrame(frameClass, class, nil, false)
	for _, stmt := range n.Body {
		switch member := stmt.(type) {
		case *DatamemberDeclaration, *PointerDeclaration, *Comment:
			w.walkStatement(stmt)
			w.entities.top().flush() // class-body members emit no inline code; discard the blank line
		case *MethodDefinition:
			w.handleMethodDefinition(member)
			w.entities.top().flush()
		case *ConstructorDefinition:
			w.handleConstructorDefinition(member)
			w.entities.top().flush()
		case *DestructorDefinition:
			w.handleDestructorDefinition(member)
			w.entities.top().flush()
		default:
			w.addErr(errStrayInstantiation(w.pos(stmt)))
		}
	}
	w.entities.pop()
	endPos := w.pos(n)
	endPos.line, endPos.column = n.End().line, n.End().column
	w.intervalBuild.Close(NewPosition(endPos.line, endPos.column), class)

	if !class.HasUserToPrimitive() {
		w.program.WriteCode(substitute(templateToPrimitive, "CLASS", class.Name()))
	}
	w.program.WriteCode(renderVTable(class))
	w.program.WriteCode(w.renderLifecycleFunctions(class))

	// An inherited, non-overridden constructor/destructor gets a function
	// under this class's own name that forwards to the declaring class.
	if ctor := class.MethodBySignature(constructorName + "__"); ctor != nil && ctor.DefinedIn() != class {
		w.program.WriteCode(substitute(templateConstructor, "CLASS", class.Name(), "CONSTRUCTORBODY",
			"bpp__"+ctor.DefinedIn().Name()+"____constructor \"${__this}\"\n"))
	}
	if dtor := class.MethodBySignature(destructorName + "__"); dtor != nil && dtor.DefinedIn() != class {
		w.program.WriteCode(substitute(templateDestructor, "CLASS", class.Name(), "DESTRUCTORBODY",
			"bpp__"+dtor.DefinedIn().Name()+"____destructor \"${__this}\" 1\n"))
	}
}

// renderLifecycleFunctions builds the %CLASS%____new/____delete/____copy
// functions: one assignment/deletion/copy line per data member, in
// declaration order.
func (w *Walker) renderLifecycleFunctions(class *Class) string {
	var assigns, deletes, copies strings.Builder
	for _, dm := range class.DataMembers() {
		member := dm.Name()
		if dm.IsPointer() {
			assigns.WriteString("\tdeclare -g \"${__objectAddress}__" + member + "=0\"\n")
			deletes.WriteString("\tunset \"${__objectAddress}__" + member + "\"\n")
			copies.WriteString("\tlocal __copyFrom=\"${__copyFromAddress}__" + member + "\"\n")
			copies.WriteString("\tdeclare -g \"${__copyToAddress}__" + member + "=${!__copyFrom}\"\n")
			continue
		}
		if dm.DeclaredType() == w.program.Primitive {
			def, has := dm.DefaultValue()
			if has {
				assigns.WriteString("\tdeclare -g \"${__objectAddress}__" + member + "=" + def + "\"\n")
			} else {
				assigns.WriteString("\tdeclare -g \"${__objectAddress}__" + member + "\"\n")
			}
			deletes.WriteString("\tunset \"${__objectAddress}__" + member + "\"\n")
			copies.WriteString("\tlocal __copyFrom=\"${__copyFromAddress}__" + member + "\"\n")
			copies.WriteString("\tdeclare -g \"${__copyToAddress}__" + member + "=${!__copyFrom}\"\n")
			continue
		}
		assigns.WriteString("\tbpp__" + dm.DeclaredType().Name() + "____new \"${__objectAddress}__" + member + "\"\n")
		deletes.WriteString("\tbpp__" + dm.DeclaredType().Name() + "____delete \"${__objectAddress}__" + member + "\"\n")
		copies.WriteString("\tbpp__" + dm.DeclaredType().Name() + "____copy \"${__copyFromAddress}__" + member + "\" \"${__copyToAddress}__" + member + "\"\n")
	}
	var b strings.Builder
	b.WriteString(substitute(templateNew, "CLASS", class.Name(), "ASSIGNMENTS", strings.TrimRight(assigns.String(), "\n")))
	b.WriteString(substitute(templateDelete, "CLASS", class.Name(), "DELETIONS", strings.TrimRight(deletes.String(), "\n")))
	b.WriteString(substitute(templateCopy, "CLASS", class.Name(), "COPIES", strings.TrimRight(copies.String(), "\n")))
	return b.String()
}

// renderVTable declares class's vTable associative array, one
// `[signature]="bpp__<definingClass>____<signature>"` entry per method
// (skipping the constructor and destructor, which are never dispatched
// through the vTable), plus a `["__parent__"]` entry pointing at the
// parent's vTable when class has one. This is what makes
// `bpp____vTable__lookup`/`bpp____dynamic__cast`/`bpp____typeof`
// (templates.go) resolvable at runtime: those functions walk the array
// this declares.
func renderVTable(class *Class) string {
	var entries strings.Builder
	for _, m := range class.Methods() {
		if m.IsConstructor() || m.IsDestructor() {
			continue
		}
		entries.WriteString("\t[" + m.Signature() + "]=\"" + m.MangledName(m.DefinedIn()) + "\"\n")
	}
	if parent := class.Parent(); parent != nil {
		entries.WriteString("\t[__parent__]=\"" + parent.VTableAddress() + "\"\n")
	}
	return "declare -gA " + class.VTableAddress() + "=(\n" + entries.String() + ")\n"
}

// handleDatamemberDeclaration implements "Data member
// declaration": only valid directly inside a class body.
func (w *Walker) handleDatamemberDeclaration(n *DatamemberDeclaration) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	if class == nil || w.entities.top().kind != frameClass {
		w.addErr(errMemberDeclarationOutsideClass(pos))
		return
	}

	declaredType := w.program.Primitive
	if n.TypeName != "" && n.TypeName != PrimitiveClassName {
		declaredType = w.program.Class(n.TypeName)
		if declaredType == nil {
			w.addErr(errUnknownClass(pos, n.TypeName))
			return
		}
	}

	dm := NewDataMember(n.Name, w.program.Primitive, pos)
	dm.SetDeclaredType(declaredType)
	dm.SetScope(n.Scope)
	dm.SetIsArray(n.IsArray)
	if n.Value != nil {
		_, inline, _ := w.evalExpr(n.Value)
		dm.SetDefaultValue(inline)
	}

	if err := class.AddDataMember(dm); err != nil {
		w.addErr(errAlreadyDefined(pos, "data member "+n.Name))
	}
}

// handlePointerDeclaration implements pointer form: the same
// as a data member declaration, plus is_pointer=true (a pointer member
// is stored identically to a non-pointer member — an address string —
// but never gets its own lifecycle calls in ____new/____delete/____copy,
// since it does not own the object it names).
func (w *Walker) handlePointerDeclaration(n *PointerDeclaration) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	if class == nil || w.entities.top().kind != frameClass {
		w.addErr(errMemberDeclarationOutsideClass(pos))
		return
	}
	declaredType := w.program.Class(n.TypeName)
	if declaredType == nil {
		w.addErr(errUnknownClass(pos, n.TypeName))
		return
	}
	dm := NewDataMember(n.Name, w.program.Primitive, pos)
	dm.SetDeclaredType(declaredType)
	dm.SetScope(ScopePrivate)
	dm.SetIsPointer(true)
	if n.Value != nil {
		_, inline, _ := w.evalExpr(n.Value)
		dm.SetDefaultValue(inline)
	}
	if err := class.AddDataMember(dm); err != nil {
		w.addErr(errAlreadyDefined(pos, "data member "+n.Name))
	}
}

// handleMethodDefinition implements "Method definition": build
// the Method entity, walk its body in a closed scope, destruct any
// locals it instantiated, then compile it to a standalone shell function
// written straight to the program's output (methods are not expressions,
// so they bypass the pre/inline/post splicing every other statement
// goes through).
func (w *Walker) handleMethodDefinition(n *MethodDefinition) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	if class == nil {
		w.addErr(errMemberDeclarationOutsideClass(pos))
		return
	}

	m := NewMethod(n.Name, pos)
	m.SetScope(n.Scope)
	m.SetVirtual(n.IsVirtual)
	var paramLines strings.Builder
	for i, param := range n.Params {
		pt := w.program.Class(param.TypeName)
		if pt == nil {
			w.addErr(errUnknownClass(pos, param.TypeName))
			pt = w.program.Primitive
		}
		if err := m.AddParameter(NewMethodParameter(param.Name, pt, pos)); err != nil {
			w.addErr(&SyntaxError{File: pos.filename, Line: pos.line, Message: err.Error()})
		}
		paramLines.WriteString("\tlocal " + param.Name + "=\"$" + itoa(i+1) + "\"\n")
	}
	if len(n.Params) > 0 {
		paramLines.WriteString("\tshift " + itoa(len(n.Params)) + "\n")
	}

	f := w.pushFrame(frameMethod, class, m, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	compiled := substitute(templateMethod, "CLASS", class.Name(), "SIGNATURE", m.Signature(),
		"PARAMS", strings.TrimRight(paramLines.String(), "\n"),
		"THIS_POINTER_VALIDATION", substitute(templateThisPointerValidation, "CLASS", class.Name(), "SIGNATURE", m.Signature()),
		"METHODBODY", body)
	w.program.WriteCode(compiled)

	if err := class.AddMethod(m); err != nil {
		w.addErr(errAlreadyDefined(pos, "method "+n.Name))
	}
}

// renderLocalDestructions builds the `bpp__<Class>____destructor`/
// `bpp__<Class>____delete` calls for every non-pointer object
// instantiated directly in f, in reverse declaration order (
// closed-scope destructor discipline): leaving a closed scope calls
// `__destructor` on every object declared in its body that has not been
// delete-ed, before reclaiming its storage.
func (w *Walker) renderLocalDestructions(f *frame) string {
	var b strings.Builder
	for i := len(f.localObjects) - 1; i >= 0; i-- {
		o := f.localObjects[i]
		if o.IsPointer() {
			continue
		}
		if o.Class().HasDestructor() {
			b.WriteString("bpp__" + o.Class().Name() + "____destructor \"" + o.Address() + "\"\n")
		}
		b.WriteString("bpp__" + o.Class().Name() + "____delete \"" + o.Address() + "\"\n")
	}
	return b.String()
}

func (w *Walker) handleConstructorDefinition(n *ConstructorDefinition) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	if class == nil {
		w.addErr(errMemberDeclarationOutsideClass(pos))
		return
	}
	ctor := NewConstructor(pos)
	f := w.pushFrame(frameMethod, class, ctor, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	w.program.WriteCode(substitute(templateConstructor, "CLASS", class.Name(), "CONSTRUCTORBODY", body))
	if err := class.AddMethod(ctor); err != nil {
		w.addErr(errAlreadyDefined(pos, "constructor"))
	}
}

func (w *Walker) handleDestructorDefinition(n *DestructorDefinition) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	if class == nil {
		w.addErr(errMemberDeclarationOutsideClass(pos))
		return
	}
	dtor := NewDestructor(pos)
	f := w.pushFrame(frameMethod, class, dtor, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	if parent := class.Parent(); parent != nil && parent.HasDestructor() {
		body += "bpp__" + parent.Name() + "____destructor \"${__this}\" 1\n"
	}

	w.program.WriteCode(substitute(templateDestructor, "CLASS", class.Name(), "DESTRUCTORBODY", body))
	if err := class.AddMethod(dtor); err != nil {
		w.addErr(errAlreadyDefined(pos, "destructor"))
	}
}
