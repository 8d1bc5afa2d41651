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

// chainKind classifies the terminal element of a resolved reference
// chain.
type chainKind int

const (
	chainPrimitive   chainKind = iota // data member of the primitive class
	chainObject                       // data member of a non-primitive class, kept as an address
	chainMethod                       // a method call
)

// chainLink is one dot-separated step of an `@obj.a.b.c` or
// `@this.a.b.c` reference, after it has been resolved against the
// symbol table but before any shell text is emitted for it.
type chainLink struct {
	name     string
	dm       *DataMember // non-nil when this step resolved to a data member
	method   *Method     // non-nil when this step resolved to a method (always terminal)
	ownerCls *Class      // class that owned this member/method lookup
}

// ResolvedReference is the output of resolving a reference: the
// (pre, inline, post) access code described in step 5, plus
// enough information for the caller (an ObjectReference/SelfReference
// handler, or the assignment handler) to know what it got.
type ResolvedReference struct {
	Pre    []string
	Inline string
	Post   []string

	Kind chainKind

	// ObjectClass is set when Kind == chainObject: the resolved object's
	// class, for callers that need to know which class's ____copy /
	// ____delete / ____new to invoke.
	ObjectClass *Class

	// Method/MethodOwner are set when Kind == chainMethod.
	Method      *Method
	MethodOwner *Class
}

// descendChain walks dot-separated identifier names starting from
// startClass, classifying each step as a data member (descend further)
// or a method (terminates descent).3 step 2. It does not yet
// apply the auto-toPrimitive rule; that happens in the caller once the
// terminal kind is known and the context expectations are consulted.
func descendChain(startClass *Class, names []string, pos srcpos) ([]chainLink, error) {
	chain := make([]chainLink, 0, len(names))
	current := startClass
	for i, name := range names {
		if current == nil {
			return nil, errCannotDescend(pos, name)
		}
		if dm := current.DataMember(name); dm != nil {
			chain = append(chain, chainLink{name: name, dm: dm, ownerCls: current})
			current = dm.declaredType
			continue
		}
		if m := current.Method(name); m != nil {
			chain = append(chain, chainLink{name: name, method: m, ownerCls: current})
			if i != len(names)-1 {
				return nil, errCannotDescend(pos, names[i+1])
			}
			current = nil
			continue
		}
		return nil, errUnknownMember(pos, current.Name(), name)
	}
	return chain, nil
}

// resolveObjectReference resolves `@headName.a.b.c` (, the
// "object-reference form"). headName must already be a registered
// top-level object.
func (p *Program) resolveObjectReference(headName string, names []string, exp contextExpectations, pos srcpos) (*ResolvedReference, error) {
	head := p.Object(headName)
	if head == nil {
		return nil, errUnknownObject(pos, headName)
	}
	if len(names) == 0 {
		// A bare `@obj` names the object itself: its address (read
		// through the variable for a pointer).
		addr := head.Address()
		if head.IsPointer() {
			addr = "${" + addr + "}"
		}
		return &ResolvedReference{Inline: addr, Kind: chainObject, ObjectClass: head.Class()}, nil
	}
	chain, err := descendChain(head.Class(), names, pos)
	if err != nil {
		return nil, err
	}
	return buildChainAccess(head.Address(), false, chain, p, exp, pos)
}

// resolveSelfReference resolves `@this.a.b.c` (, the
// "self-reference form"). enclosingClass is the class whose body the
// reference appears in.
func (p *Program) resolveSelfReference(enclosingClass *Class, names []string, exp contextExpectations, pos srcpos) (*ResolvedReference, error) {
	if enclosingClass == nil {
		return nil, &SyntaxError{File: pos.filename, Line: pos.line, Column: pos.column, Message: "self reference outside of a class"}
	}
	if len(names) == 0 {
		// Tie-break edge case: `@this` short-circuits to
		// the ambient __objectAddress parameter.
		return &ResolvedReference{Inline: "${__objectAddress}", Kind: chainObject, ObjectClass: enclosingClass}, nil
	}
	chain, err := descendChain(enclosingClass, names, pos)
	if err != nil {
		return nil, err
	}
	return buildChainAccess("this", true, chain, p, exp, pos)
}

// buildChainAccess emits the indirection temporaries for chain and
// classifies the terminal element.
//
// headIsParameter distinguishes the self-reference form's "this" (an
// ambient parameter whose value must be read before it can be
// concatenated with a member suffix — so even the very first level
// needs one `${...}` read) from the object-reference form's head
// (already a compile-time-literal shell variable name, so the first
// member is reachable with a bare "${head__member}" with no extra
// indirection until a second level is needed).
func buildChainAccess(head string, headIsParameter bool, chain []chainLink, p *Program, exp contextExpectations, pos srcpos) (*ResolvedReference, error) {
	if len(chain) == 0 {
		panicInternal("buildChainAccess: empty chain")
	}

	terminal := chain[len(chain)-1]

	// Method in the middle is already rejected by descendChain; here we
	// only need to know whether the very last element is a method.
	if terminal.method != nil {
		return buildMethodCall(head, headIsParameter, chain, pos)
	}

	// Terminal is a data member. If it is non-primitive and the context
	// wants a primitive, auto-append toPrimitive as a method call:
	// auto-call toPrimitive whenever the context expects a primitive and
	// the terminal is non-primitive, with no implicit exceptions.
	if terminal.dm.declaredType != p.Primitive && exp.canTakePrimitive && !exp.canTakeObject {
		toPrim := terminal.dm.declaredType.MethodBySignature(ToPrimitiveSignature)
		if toPrim == nil {
			// No user toPrimitive: call the default function that
			// handleClassDefinition emitted under this class's name.
			toPrim = NewMethod("toPrimitive", pos)
			toPrim.class = terminal.dm.declaredType
			toPrim.definedIn = terminal.dm.declaredType
		}
		chain = append(chain, chainLink{name: "toPrimitive", method: toPrim, ownerCls: terminal.dm.declaredType})
		return buildMethodCall(head, headIsParameter, chain, pos)
	}

	pre, post, finalVar, usedIndirection := buildTempChain(head, headIsParameter, chain)
	access := "${" + indirectionPrefix(usedIndirection) + finalVar + "}"

	kind := chainPrimitive
	var objClass *Class
	if terminal.dm.declaredType != p.Primitive {
		kind = chainObject
		objClass = terminal.dm.declaredType
	}
	return &ResolvedReference{Pre: pre, Inline: access, Post: post, Kind: kind, ObjectClass: objClass}, nil
}

// buildTempChain is the shared indirection-temporary emitter for both
// reference forms. It returns the pre/post lines, the
// name of the final temporary (or, when no temporary was needed, the
// bare "<head>__<name>" literal), and whether that final name must be
// read with one extra layer of `!` indirection.
func buildTempChain(head string, headIsParameter bool, chain []chainLink) (pre, post []string, finalVar string, indirect bool) {
	accum := head
	indirection := ""
	if headIsParameter {
		// The self-reference form always needs at least one
		// indirection, because "this" is a parameter holding the
		// receiver's address, not the address itself: this level's
		// temp is declared even for a length-1 chain (tie-
		// break: "a reference of length 1 to a primitive data member
		// of this short-circuits to ${!this__name}").
		lvalue := accum + "__" + chain[0].name
		pre = append(pre, lvalue+"=\"${__objectAddress}__"+chain[0].name+"\"")
		post = append(post, "unset "+lvalue)
		accum = lvalue
		indirection = "!"
		chain = chain[1:]
	}
	for i, link := range chain {
		isLast := i == len(chain)-1
		if isLast && !headIsParameter && i == 0 {
			// Object-reference form, single remaining level: no
			// temporary needed, direct literal access.
			return pre, post, accum + "__" + link.name, false
		}
		lvalue := accum + "__" + link.name
		pre = append(pre, lvalue+"=\"${"+indirection+accum+"}__"+link.name+"\"")
		post = append(post, "unset "+lvalue)
		accum = lvalue
		indirection = "!"
	}
	return pre, post, accum, indirection == "!"
}

func indirectionPrefix(indirect bool) string {
	if indirect {
		return "!"
	}
	return ""
}

// buildMethodCall emits a supershell-wrapped call of the compiled
// function name for chain's terminal method, with the resolved receiver
// address as argument 0.
func buildMethodCall(head string, headIsParameter bool, chain []chainLink, pos srcpos) (*ResolvedReference, error) {
	methodLink := chain[len(chain)-1]
	receiverChain := chain[:len(chain)-1]

	var pre, post []string
	var receiver string
	if len(receiverChain) == 0 {
		if headIsParameter {
			receiver = "${__objectAddress}"
		} else {
			receiver = head
		}
	} else {
		p2, post2, finalVar, indirect := buildTempChain(head, headIsParameter, receiverChain)
		pre = append(pre, p2...)
		post = append(post, post2...)
		receiver = "${" + indirectionPrefix(indirect) + finalVar + "}"
	}

	mangled := methodLink.method.MangledName(methodLink.method.DefinedIn())
	outVar := "____supershellOutput"
	funcName := "____runSupershellFunc"

	pre = append(pre,
		"function "+funcName+"() {",
		"\t"+mangled+" \""+receiver+"\"",
		"}",
		"bpp____supershell "+outVar+" "+funcName,
	)
	post = append(post,
		"unset "+outVar,
		"unset -f "+funcName,
	)

	return &ResolvedReference{
		Pre:         pre,
		Inline:      "${" + outVar + "}",
		Post:        post,
		Kind:        chainMethod,
		Method:      methodLink.method,
		MethodOwner: methodLink.ownerCls,
	}, nil
}
