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

// handleValueAssignment implements four-case assignment
// table for `lvalue (= | +=) rvalue` where the lvalue is a primitive
// (the ObjectAssignment handler below covers the non-primitive lvalue
// cases):
//
// 1. primitive = primitive-valued rvalue -> plain shell assignment
// 2. primitive = object-valued rvalue -> auto-toPrimitive the rvalue
// first (handled for us by pushing {canTakePrimitive:true,
// canTakeObject:false} before evaluating the rvalue, the resolver's
// default expectation)
// 3. primitive +=... -> same as (1)/(2) but reads
// the lvalue back first and appends
// 4. object += primitive -> rejected: Open
// Questions resolves this as a SyntaxError, not an implicit
// toPrimitive-then-concatenate, since the non-primitive lvalue has
// no shell-level "current value" to append to.
func (w *Walker) handleValueAssignment(n *ValueAssignment) {
	pos := w.pos(n)
	top := w.entities.top()

	lhsClass := w.classOfExpr(n.LHS)
	if lhsClass != nil {
		w.addErr(errPrimitiveToNonPrimitive(pos))
		return
	}

	w.inValueAssignment = true
	w.expectations.push(contextExpectations{canTakePrimitive: true, canTakeObject: false})
	rPre, rInline, rPost := w.evalExpr(n.RHS)
	w.expectations.pop()
	w.inValueAssignment = false

	lPre, lInline, lPost := w.evalExpr(n.LHS)

	for _, l := range rPre {
		top.addCodeToPreviousLine(l)
	}
	for _, l := range lPre {
		top.addCodeToPreviousLine(l)
	}

	target, value := trimDollarBraces(lInline), rInline
	if n.Op == "+=" {
		read := lInline
		if !strings.HasPrefix(read, "${") {
			read = "${" + read + "}"
		}
		value = read + rInline
	}
	if strings.HasPrefix(lInline, "${!") {
		// The target is named by a temporary: assign to the variable
		// whose name the temporary holds.
		top.addCode("declare -g \"${" + target + "}=" + value + "\"")
	} else {
		top.addCode(target + "=\"" + value + "\"")
	}

	for _, l := range lPost {
		top.addCodeToNextLine(l)
	}
	for _, l := range rPost {
		top.addCodeToNextLine(l)
	}
}

// trimDollarBraces strips a leading "${" and trailing "}" from an inline
// reference so it can be reused as a bare assignment target (the
// resolver always hands back references wrapped for read position, but
// Bash assignment targets are bare names).
func trimDollarBraces(s string) string {
	if len(s) >= 3 && s[0] == '$' && s[1] == '{' && s[len(s)-1] == '}' {
		inner := s[2 : len(s)-1]
		if inner != "" && inner[0] == '!' {
			return inner[1:]
		}
		return inner
	}
	return s
}

// handleObjectAssignment implements non-primitive-lvalue
// cases: `@lhs = @rhs` copies the rhs object's full state into the lhs
// object's storage via the class's ____copy function; assigning a
// pointer-typed lvalue instead rebinds the address itself.
func (w *Walker) handleObjectAssignment(n *ObjectAssignment) {
	pos := w.pos(n)
	top := w.entities.top()

	lhsClass := w.classOfExpr(n.LHS)
	if lhsClass == nil {
		w.addErr(errPrimitiveToNonPrimitive(pos))
		return
	}
	rhsClass := w.classOfExpr(n.RHS)
	if rhsClass != nil && rhsClass != lhsClass {
		w.addErr(&SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column,
			Message: "cannot assign a " + rhsClass.Name() + " to a " + lhsClass.Name() + " object"})
		return
	}

	w.expectations.push(contextExpectations{canTakePrimitive: false, canTakeObject: true})
	rPre, rInline, rPost := w.evalExpr(n.RHS)
	w.expectations.pop()

	w.expectations.push(contextExpectations{canTakePrimitive: false, canTakeObject: true})
	lPre, lInline, lPost := w.evalExpr(n.LHS)
	w.expectations.pop()

	for _, l := range rPre {
		top.addCodeToPreviousLine(l)
	}
	for _, l := range lPre {
		top.addCodeToPreviousLine(l)
	}

	if isPointerLHS(n.LHS, w) {
		top.addCode(trimDollarBraces(lInline) + "=\"" + rInline + "\"")
	} else {
		top.addCode("bpp__" + lhsClass.Name() + "____copy \"" + rInline + "\" \"" + lInline + "\"")
	}

	for _, l := range lPost {
		top.addCodeToNextLine(l)
	}
	for _, l := range rPost {
		top.addCodeToNextLine(l)
	}
}

// isPointerLHS reports whether n resolves to a pointer-typed object
//: a pointer assignment rebinds the stored address instead
// of invoking ____copy.
func isPointerLHS(n Node, w *Walker) bool {
	pos := w.pos(n)
	switch e := n.(type) {
	case *ObjectReference:
		if len(e.Identifiers) == 1 {
			if o := w.program.Object(e.Identifiers[0]); o != nil {
				return o.IsPointer()
			}
			return false
		}
		if o := w.program.Object(e.Identifiers[0]); o != nil {
			if chain, err := descendChain(o.Class(), e.Identifiers[1:], pos); err == nil && len(chain) > 0 {
				if dm := chain[len(chain)-1].dm; dm != nil {
					return dm.IsPointer()
				}
			}
		}
	case *SelfReference:
		class := w.entities.enclosingClass()
		if class == nil || len(e.Identifiers) == 0 {
			return false
		}
		if chain, err := descendChain(class, e.Identifiers, pos); err == nil && len(chain) > 0 {
			if dm := chain[len(chain)-1].dm; dm != nil {
				return dm.IsPointer()
			}
		}
	}
	return false
}
