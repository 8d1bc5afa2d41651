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

// handleObjectInstantiation implements object instantiation:
// `@Class name` or `@Class* name`, optionally with `= value`. A class
// body may not directly contain one (data members are declared, not
// instantiated there) — that case is rejected by the ClassDefinition
// handler before this is ever reached, so here we only need to mint the
// address, register the object, and (for a non-pointer) emit the ____new
// call plus, if this frame is a closed scope, remember it for
// destruction on exit.
func (w *Walker) handleObjectInstantiation(n *ObjectInstantiation) {
	pos := w.pos(n)
	class := w.program.Class(n.TypeName)
	if class == nil {
		w.addErr(errUnknownClass(pos, n.TypeName))
		return
	}

	top := w.entities.top()
	address := w.program.NextObjectAddress(n.TypeName, n.Name)
	obj := NewObject(n.Name, class, address, n.IsPointer, pos)

	if top.kind == frameProgram {
		if err := w.program.AddObject(obj); err != nil {
			w.addErr(errAlreadyDefined(pos, "object "+n.Name))
			return
		}
	}

	if n.IsPointer {
		if n.Value != nil {
			_, inline, _ := w.evalExpr(n.Value)
			top.addCode("declare -g \"" + address + "=" + inline + "\"")
		} else {
			top.addCode("declare -g \"" + address + "=0\"")
		}
		return
	}

	top.addCode("bpp__" + class.Name() + "____new \"" + address + "\"")
	if class.HasConstructor() {
		top.addCodeToNextLine("bpp__" + class.Name() + "____constructor \"" + address + "\"")
	}
	if n.Value != nil {
		_, inline, _ := w.evalExpr(n.Value)
		top.addCodeToNextLine("bpp__" + class.Name() + "____copy \"" + inline + "\" \"" + address + "\"")
	}
	if top.closedScope {
		top.localObjects = append(top.localObjects, obj)
	}
}

// evalNewStatement implements `@new Class`:
// allocates a fresh address, runs ____new then, if declared, the
// constructor, and evaluates to the new address so it can be assigned to
// a pointer.
func (w *Walker) evalNewStatement(n *NewStatement) (pre []string, inline string, post []string) {
	pos := w.pos(n)
	class := w.program.Class(n.ClassName)
	if class == nil {
		w.addErr(errUnknownClass(pos, n.ClassName))
		return nil, "0", nil
	}
	addr := w.program.NextAssignmentTemp("__heapObject")
	heapAddress := w.program.NextHeapAddress(class.Name())
	pre = append(pre,
		addr+"=\""+heapAddress+"\"",
		"bpp__"+class.Name()+"____new \""+"${"+addr+"}"+"\"",
	)
	if class.HasConstructor() {
		pre = append(pre, "bpp__"+class.Name()+"____constructor \"${"+addr+"}\"")
	}
	post = append(post, "unset "+addr)
	return pre, "${" + addr + "}", post
}

// handleDeleteStatement implements `@delete expr` (
// "New / Delete"): evaluates the target address and emits the matching
// ____delete call. The walker does not know the target's static class
// here beyond what evalExpr's resolver attaches to a ResolvedReference,
// so object references carry their ObjectClass through for this purpose.
func (w *Walker) handleDeleteStatement(n *DeleteStatement) {
	top := w.entities.top()
	class := w.classOfExpr(n.Target)
	pre, inline, post := w.evalExpr(n.Target)
	for _, l := range pre {
		top.addCodeToPreviousLine(l)
	}
	if class != nil {
		if class.HasDestructor() {
			top.addCode("bpp__" + class.Name() + "____destructor \"" + inline + "\"")
		}
		top.addCode("bpp__" + class.Name() + "____delete \"" + inline + "\"")
	} else {
		top.addCode("unset \"" + inline + "\"")
	}
	for _, l := range post {
		top.addCodeToNextLine(l)
	}
}

// classOfExpr recovers the static, non-primitive class of a reference
// expression when one is known, for callers (delete, object assignment)
// that need to pick the matching ____copy/____delete function rather
// than emit a plain variable read/write.
func (w *Walker) classOfExpr(n Node) *Class {
	switch e := n.(type) {
	case *ObjectReference:
		if o := w.program.Object(e.Identifiers[0]); o != nil {
			if len(e.Identifiers) == 1 {
				return o.Class()
			}
			if chain, err := descendChain(o.Class(), e.Identifiers[1:], w.pos(n)); err == nil && len(chain) > 0 {
				if dm := chain[len(chain)-1].dm; dm != nil && dm.DeclaredType() != w.program.Primitive {
					return dm.DeclaredType()
				}
			}
		}
	case *SelfReference:
		class := w.entities.enclosingClass()
		if class == nil {
			return nil
		}
		if len(e.Identifiers) == 0 {
			return class
		}
		if chain, err := descendChain(class, e.Identifiers, w.pos(n)); err == nil && len(chain) > 0 {
			if dm := chain[len(chain)-1].dm; dm != nil && dm.DeclaredType() != w.program.Primitive {
				return dm.DeclaredType()
			}
		}
	}
	return nil
}
