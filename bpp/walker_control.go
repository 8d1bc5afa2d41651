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

// handleCaseStatement implements a `case... esac` block. A case arm
// body is an open scope: it runs in the same process
// context as whatever encloses the case statement, so object
// instantiations inside an arm are visible after the statement, exactly
// like an if/then body would be in plain Bash.
func (w *Walker) handleCaseStatement(n *BashCaseStatement) {
	top := w.entities.top()
	pre, scrutinee, post := w.evalExpr(n.Scrutinee)
	for _, l := range pre {
		top.addCodeToPreviousLine(l)
	}

	var b strings.Builder
	b.WriteString("case " + scrutinee + " in\n")
	for _, arm := range n.Patterns {
		b.WriteString(arm.Header.Text + ")\n")
		b.WriteString(indent(w.renderBody(arm.Body)))
		b.WriteString("\n;;\n")
	}
	b.WriteString("esac")
	top.addCode(b.String())

	for _, l := range post {
		top.addCodeToNextLine(l)
	}
}

// handleForStatement implements a `for... do... done` loop. The body
// is a closed scope: on every iteration the loop body
// starts fresh, so any object it instantiates must be destructed when
// the body's block re-executes, not carried to the next iteration or to
// the statement after `done`.
func (w *Walker) handleForStatement(n *BashForStatement) {
	top := w.entities.top()
	f := w.pushFrame(frameGeneric, w.entities.enclosingClass(), nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	top.addCode("for " + n.Header + "; do\n" + indent(body) + "\ndone")
}

// handleSelectStatement implements a `select... do... done` loop,
// closed-scope like BashFor.
func (w *Walker) handleSelectStatement(n *BashSelectStatement) {
	top := w.entities.top()
	f := w.pushFrame(frameGeneric, w.entities.enclosingClass(), nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	top.addCode("select " + n.Header + "; do\n" + indent(body) + "\ndone")
}

// handleBashFunction implements a plain (non-method) shell function
// definition: its own closed scope, same destruction discipline as a
// method body, but no vTable/receiver plumbing since it is not part of
// any class.
func (w *Walker) handleBashFunction(n *BashFunction) {
	top := w.entities.top()
	f := w.pushFrame(frameGeneric, nil, nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	top.addCode("function " + n.Name + "() {\n" + indent(body) + "\n}")
}

// handleCommandSequence implements an AND/OR-joined list of commands
//: an open scope — the original C++ implementation's handler inherits
// the nested commands' symbolic state back into the sequence's own
// entity rather than isolating it, since `cmd1 && cmd2` never forks.
func (w *Walker) handleCommandSequence(n *BashCommandSequence) {
	top := w.entities.top()
	var parts []string
	for _, cmd := range n.Commands {
		pre, inline, post := w.evalExpr(cmd)
		for _, l := range pre {
			top.addCodeToPreviousLine(l)
		}
		parts = append(parts, inline)
		for _, l := range post {
			top.addCodeToNextLine(l)
		}
	}
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			switch n.Connectives[i-1] {
			case ConnectiveOr:
				b.WriteString(" || ")
			default:
				b.WriteString(" && ")
			}
		}
		b.WriteString(part)
	}
	top.addCode(b.String())
}

// evalPipeline implements `cmd1 | cmd2 |...`. Every stage is evaluated
// as an expression in the enclosing frame; no scope is pushed for a
// stage.
func (w *Walker) evalPipeline(n *BashPipeline) (pre []string, inline string, post []string) {
	var stages []string
	for _, s := range n.Stages {
		p, in, po := w.evalExpr(s)
		pre = append(pre, p...)
		stages = append(stages, in)
		post = append(post, po...)
	}
	return pre, strings.Join(stages, " | "), post
}
