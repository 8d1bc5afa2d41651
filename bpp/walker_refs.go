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

// evalObjectReference resolves `@head.a.b.c` against the resolver
// (resolver.go), consulting the current context-expectations stack top
// so the resolver knows whether to auto-insert toPrimitive.
func (w *Walker) evalObjectReference(n *ObjectReference) (pre []string, inline string, post []string) {
	pos := w.pos(n)
	if len(n.Identifiers) == 0 {
		panicInternal("ObjectReference with no identifiers")
	}
	head, rest := n.Identifiers[0], n.Identifiers[1:]
	if o := w.program.Object(head); o != nil {
		o.addReference(pos)
	}
	ref, err := w.program.resolveObjectReference(head, rest, w.expectations.top(), pos)
	if err != nil {
		w.addErr(err)
		return nil, "", nil
	}
	return ref.Pre, ref.Inline, ref.Post
}

// evalSelfReference resolves `@this.a.b.c`, or bare `@this`.
func (w *Walker) evalSelfReference(n *SelfReference) (pre []string, inline string, post []string) {
	pos := w.pos(n)
	class := w.entities.enclosingClass()
	ref, err := w.program.resolveSelfReference(class, n.Identifiers, w.expectations.top(), pos)
	if err != nil {
		w.addErr(err)
		return nil, "", nil
	}
	return ref.Pre, ref.Inline, ref.Post
}

// evalDynamicCast resolves `@dynamic_cast<Target>(expr)`: a
// runtime type check delegated to the bpp____dynamic__cast template
// function, evaluating to the cast address on success or "0" on
// failure.
func (w *Walker) evalDynamicCast(n *DynamicCastExpr) (pre []string, inline string, post []string) {
	pos := w.pos(n)
	target := w.program.Class(n.TargetType)
	if target == nil {
		w.addErr(errUnknownClass(pos, n.TargetType))
		return nil, "0", nil
	}
	valuePre, valueInline, valuePost := w.evalExpr(n.Value)
	tmp := w.program.NextAssignmentTemp("__dynamicCastResult")
	pre = append(pre, valuePre...)
	pre = append(pre, "bpp____dynamic__cast \""+target.Name()+"\" "+tmp+" \""+valueInline+"\"")
	post = append(post, "unset "+tmp)
	post = append(post, valuePost...)
	return pre, "${" + tmp + "}", post
}
