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

import (
	"strings"

	"github.com/golang/glog"
)

// Walker drives the tree walk described in: it owns the entity
// stack and context-expectations stack (stack.go), the interval builder
// (interval.go), and the handful of booleans calls "listener
// state" — flags that gate whether a nested node is live code or inert
// text.
type Walker struct {
	program *Program

	entities      entityStack
	expectations  expectationsStack
	intervalBuild IntervalBuilder
	Intervals     *IntervalIndex

	// Listener state: set by the handlers that own the syntax forms
	// they name; no handler reads them. Comments and single-quoted
	// strings arrive as verbatim leaf nodes, so inSinglequoteString is
	// never set.
	inComment           bool
	inSinglequoteString bool
	inValueAssignment   bool
	inSupershell        bool

	currentFile      string
	warningsAsErrors bool

	resolver *IncludeResolver
	parse    ParseFunc
}

// SetIncludeResolution wires the include-path resolver and the parser
// callback the include handler needs (walker_include.go). Left unset,
// `include`/`include_once` statements fail with an unresolved-include
// error — useful for tests that feed the walker a pre-expanded AST.
func (w *Walker) SetIncludeResolution(resolver *IncludeResolver, parse ParseFunc) {
	w.resolver = resolver
	w.parse = parse
}

// NewWalker constructs a walker over program for the named file.
func NewWalker(program *Program, file string, warningsAsErrors bool) *Walker {
	return &Walker{
		program:          program,
		currentFile:      file,
		warningsAsErrors: warningsAsErrors,
	}
}

func (w *Walker) pos(n Node) srcpos {
	p := n.Pos()
	p.filename = w.currentFile
	return p
}

// addErr records a SyntaxError on the program; the walk always
// continues (spec §4.7).
func (w *Walker) addErr(err error) {
	w.program.AddError(err)
}

func (w *Walker) addWarn(warn *Warning) {
	if w.warningsAsErrors {
		w.addErr(&SyntaxError{File: warn.File, Line: warn.Line, Message: warn.Message})
		return
	}
	w.program.AddWarning(warn)
}

// pushFrame pushes a new frame of kind carrying the given class/method
// context and returns it; callers pop it with w.entities.pop on exit.
func (w *Walker) pushFrame(kind frameKind, class *Class, method *Method, closedScope bool) *frame {
	f := &frame{kind: kind, class: class, method: method, closedScope: closedScope}
	w.entities.push(f)
	return f
}

// WalkProgram is the top-level entry point: it walks every top-level
// statement of n in order, writing output directly to the program (the
// program frame is the outermost, never-closed scope).
func (w *Walker) WalkProgram(n *ProgramNode) {
	glog.V(1).Infof("walker: starting %s (%d top-level statements)", w.currentFile, len(n.Statements))
	root := w.pushFrame(frameProgram, nil, nil, false)
	w.intervalBuild.Open(NewPosition(n.Pos().line, n.Pos().column))
	for _, stmt := range n.Statements {
		w.walkTopLevelStatement(stmt)
		w.program.WriteCode(root.flush())
	}
	w.intervalBuild.Close(NewPosition(n.End().line, n.End().column), n)
	w.entities.pop()

	idx := w.intervalBuild.Finish()
	idx.Sort()
	w.Intervals = idx
}

// walkTopLevelStatement dispatches a single top-level (program-scope)
// statement. Program scope is an open scope: object instantiations here
// become top-level objects on w.program ("Object
// instantiation").
func (w *Walker) walkTopLevelStatement(n Node) {
	w.walkStatement(n)
}

// renderBody walks a sequence of statements that share one enclosing
// frame (a class body, a method body, a for/select body,...), flushing
// the frame after each statement so that a statement's pre/inline/post
// code lands on its own line before the next statement starts writing.
// The concatenated, flushed text is returned for the caller to splice
// into a template placeholder or into the parent's own pre/post buffers.
func (w *Walker) renderBody(stmts []Node) string {
	f := w.entities.top()
	var b strings.Builder
	for _, s := range stmts {
		w.walkStatement(s)
		b.WriteString(f.flush())
	}
	return b.String()
}

// walkStatement dispatches one statement-position node, writing its
// pre/inline/post code into the top frame's buffers (to be flushed by
// the caller, typically renderBody or WalkProgram).
func (w *Walker) walkStatement(n Node) {
	top := w.entities.top()
	switch stmt := n.(type) {
	case *IncludeStatement:
		w.handleInclude(stmt)
	case *ClassDefinition:
		w.handleClassDefinition(stmt)
	case *MethodDefinition:
		w.handleMethodDefinition(stmt)
	case *ConstructorDefinition:
		w.handleConstructorDefinition(stmt)
	case *DestructorDefinition:
		w.handleDestructorDefinition(stmt)
	case *DatamemberDeclaration:
		w.handleDatamemberDeclaration(stmt)
	case *PointerDeclaration:
		w.handlePointerDeclaration(stmt)
	case *ObjectInstantiation:
		w.handleObjectInstantiation(stmt)
	case *NewStatement:
		pre, inline, post := w.evalNewStatement(stmt)
		emitExpr(top, pre, inline, post)
	case *DeleteStatement:
		w.handleDeleteStatement(stmt)
	case *ObjectAssignment:
		w.handleObjectAssignment(stmt)
	case *ValueAssignment:
		w.handleValueAssignment(stmt)
	case *BashCaseStatement:
		w.handleCaseStatement(stmt)
	case *BashForStatement:
		w.handleForStatement(stmt)
	case *BashSelectStatement:
		w.handleSelectStatement(stmt)
	case *BashFunction:
		w.handleBashFunction(stmt)
	case *BashCommandSequence:
		w.handleCommandSequence(stmt)
	case *BashPipeline:
		pre, inline, post := w.evalPipeline(stmt)
		emitExpr(top, pre, inline, post)
	case *Comment:
		w.handleComment(stmt)
	default:
		// Any expression-shaped node appearing directly in statement
		// position (a bare reference, a bare string,...) is evaluated
		// for its side effects and its inline text written as-is.
		pre, inline, post := w.evalExpr(n)
		emitExpr(top, pre, inline, post)
	}
}

// emitExpr splices a (pre, inline, post) result into frame's buffers.
func emitExpr(f *frame, pre []string, inline string, post []string) {
	for _, l := range pre {
		f.addCodeToPreviousLine(l)
	}
	f.addCode(inline)
	for _, l := range post {
		f.addCodeToNextLine(l)
	}
}

// evalExpr dispatches an expression-position node, returning the lines
// that must be emitted immediately before the current line, the inline
// text substituted at this position, and the lines that must follow
// (pre_code/code/post_code discipline, surfaced here as
// plain return values so callers can merge several sibling expressions'
// pre/post without fighting over which frame owns them).
func (w *Walker) evalExpr(n Node) (pre []string, inline string, post []string) {
	switch e := n.(type) {
	case *ObjectReference:
		return w.evalObjectReference(e)
	case *SelfReference:
		return w.evalSelfReference(e)
	case *DynamicCastExpr:
		return w.evalDynamicCast(e)
	case *Supershell:
		return w.evalSupershell(e)
	case *SubshellSubstitution:
		return w.evalSubshellSubstitution(e)
	case *RawSubshell:
		return w.evalRawSubshell(e)
	case *DoublequotedString:
		return w.evalDoublequotedString(e)
	case *SinglequoteString:
		return nil, "'" + e.Text + "'", nil
	case *HereString:
		p, in, post := w.evalExpr(e.Body)
		return p, "<<< " + in, post
	case *BashArithmeticSubstitution:
		return nil, "$((" + e.Text + "))", nil
	case *BashVariable:
		return nil, "$" + e.Name, nil
	case *ParameterExpansion:
		return nil, "${" + e.Name + e.Op + e.Word + "}", nil
	case *ArrayIndex:
		p, in, post := w.evalExpr(e.Index)
		return p, e.Name + "[" + in + "]", post
	case *ArrayLiteral:
		return w.evalArrayLiteral(e)
	case *RawText:
		return nil, e.Text, nil
	case *NewStatement:
		return w.evalNewStatement(e)
	case *BashPipeline:
		return w.evalPipeline(e)
	default:
		panicInternal("evalExpr: unhandled node type %T", n)
		return nil, "", nil
	}
}
