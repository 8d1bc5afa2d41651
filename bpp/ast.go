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

// Node is the parser's output contract: every AST node the
// walker consumes carries a source position and, for containers, an end
// position. The grammar/parser front-end is out of scope; this
// file only names the node-kind shapes the walker dispatches on.
type Node interface {
	Pos() srcpos
	End() srcpos
}

// NodeBase is embedded by every concrete node and supplies Pos/End.
type NodeBase struct {
	StartPos srcpos
	EndPos_  srcpos
}

func (b NodeBase) Pos() srcpos { return b.StartPos }
func (b NodeBase) End() srcpos {
	if (b.EndPos_ == srcpos{}) {
		return b.StartPos
	}
	return b.EndPos_
}

// ProgramNode is the root of a compiled file: a flat list of top-level
// statements in source order.
type ProgramNode struct {
	NodeBase
	Statements []Node
}

// IncludeStatement resolves a path.
type IncludeStatement struct {
	NodeBase
	Keyword  string // "include" or "include_once"
	Type     string // "static" or "dynamic"
	PathForm string // "angle" or "quoted"
	Path     string
	As       string // optional user-supplied "as" path; empty if absent
}

// ClassDefinition declares a class, optionally inheriting from Parent.
type ClassDefinition struct {
	NodeBase
	Name   string
	Parent string // empty if no parent
	Body   []Node
}

// DatamemberDeclaration declares a data member inside a class body.
type DatamemberDeclaration struct {
	NodeBase
	Scope     Scope
	TypeName  string // "primitive" or a class name; "" means primitive
	IsPointer bool
	Name      string
	Value     Node // optional initializer expression; nil if absent
	IsArray   bool
}

// PointerDeclaration declares a pointer-typed class-body data member
// (`@Class* name`). Pointer locals and top-level pointers arrive as an
// ObjectInstantiation with IsPointer set.
type PointerDeclaration struct {
	NodeBase
	TypeName string
	Name     string
	Value    Node
}

// MethodDefinition declares a method. Constructors/destructors use the
// dedicated node kinds below instead.
type MethodDefinition struct {
	NodeBase
	Name      string
	Scope     Scope
	IsVirtual bool
	Params    []MethodParam
	Body      []Node
}

// MethodParam names one declared parameter; TypeName is always a class
// name (: constructors/destructors take none; ordinary methods
// are non-primitive-only by contract).
type MethodParam struct {
	Name     string
	TypeName string
}

// ConstructorDefinition declares `@constructor {... }`.
type ConstructorDefinition struct {
	NodeBase
	Body []Node
}

// DestructorDefinition declares `@destructor {... }`.
type DestructorDefinition struct {
	NodeBase
	Body []Node
}

// ObjectInstantiation declares `@Class name [= value]` or `@Class* ptr
// [= value]`.
type ObjectInstantiation struct {
	NodeBase
	TypeName  string
	Name      string
	IsPointer bool
	Value     Node // nil if no initializer
}

// NewStatement is `@new Class`.
type NewStatement struct {
	NodeBase
	ClassName string
}

// DeleteStatement is `@delete expr`.
type DeleteStatement struct {
	NodeBase
	Target Node
}

// ObjectReference is `@IDENTIFIER.IDENTIFIER...` (object-reference form).
type ObjectReference struct {
	NodeBase
	Identifiers []string
}

// SelfReference is `@this.IDENTIFIER...` (self-reference form).
type SelfReference struct {
	NodeBase
	Identifiers []string
}

// ObjectAssignment is `@lhs = @rhs` (non-primitive object assignment).
type ObjectAssignment struct {
	NodeBase
	LHS Node
	RHS Node
}

// ValueAssignment is `lvalue (= | +=) rvalue`.
type ValueAssignment struct {
	NodeBase
	LHS Node
	Op  string // "=" or "+="
	RHS Node
}

// Supershell is `@(...)`.
type Supershell struct {
	NodeBase
	Body []Node
}

// SubshellSubstitution is `$(...)`.
type SubshellSubstitution struct {
	NodeBase
	Body             []Node
	IsCatReplacement bool
}

// RawSubshell is `(...)`.
type RawSubshell struct {
	NodeBase
	Body []Node
}

// DoublequotedString is `"..."`, with embedded substitutions already
// broken out as child nodes by the parser.
type DoublequotedString struct {
	NodeBase
	Parts []Node
}

// SinglequoteString is `'...'`, carried verbatim.
type SinglequoteString struct {
	NodeBase
	Text string
}

// Comment is a `#`-style comment, carried verbatim.
type Comment struct {
	NodeBase
	Text string
}

// HereString is `<<<...`.
type HereString struct {
	NodeBase
	Body Node
}

// BashArithmeticSubstitution is `$((...))`.
type BashArithmeticSubstitution struct {
	NodeBase
	Text string
}

// BashCaseStatement is `case SCRUTINEE in... esac`.
type BashCaseStatement struct {
	NodeBase
	Scrutinee Node
	Patterns  []*BashCasePattern
}

// BashCasePattern is one `pattern)` arm.
type BashCasePattern struct {
	NodeBase
	Header *BashCasePatternHeader
	Body   []Node
}

// BashCasePatternHeader is the `pattern)` text of a case arm.
type BashCasePatternHeader struct {
	NodeBase
	Text string
}

// BashForStatement is a `for` loop; its Body is a closed scope (spec
// §4.2 "inherit"): object instantiations inside do not leak out.
type BashForStatement struct {
	NodeBase
	Header string
	Body   []Node
}

// BashSelectStatement is a `select` loop, closed scope like BashFor.
type BashSelectStatement struct {
	NodeBase
	Header string
	Body   []Node
}

// BashFunction is a plain (non-method) shell function definition.
type BashFunction struct {
	NodeBase
	Name string
	Body []Node
}

// Connective is AND ("&&") or OR ("||").
type Connective int

const (
	ConnectiveAnd Connective = iota
	ConnectiveOr
)

// BashCommandSequence is an open scope: a flat list of
// commands joined by Connectives, one fewer than len(Commands).
type BashCommandSequence struct {
	NodeBase
	Commands    []Node
	Connectives []Connective
}

// BashPipeline is `cmd1 | cmd2 |...`.
type BashPipeline struct {
	NodeBase
	Stages []Node
}

// BashVariable is a bare `$name` or `${name}` reference to a plain shell
// variable (as opposed to an object/member reference).
type BashVariable struct {
	NodeBase
	Name string
}

// ParameterExpansion is `${name op word}` (e.g. `${name:-default}`).
type ParameterExpansion struct {
	NodeBase
	Name string
	Op   string
	Word string
}

// ArrayIndex is `name[index]`.
type ArrayIndex struct {
	NodeBase
	Name  string
	Index Node
}

// RawText is verbatim shell text the walker does not transform at all —
// the catch-all leaf for plain Bash the grammar did not need to break
// out further (literal command words, operators, redirections,...).
type RawText struct {
	NodeBase
	Text string
}

// ArrayLiteral is `(a b c)`, the producing operation for a data member's
// is_array flag.
type ArrayLiteral struct {
	NodeBase
	Elements []Node
}

// DynamicCastExpr is `@dynamic_cast<Target>(expr)`.
type DynamicCastExpr struct {
	NodeBase
	TargetType string
	Value      Node
}
