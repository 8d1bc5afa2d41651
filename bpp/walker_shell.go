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

// evalSupershell implements `@(...)`:
// the body runs in the current process via bpp____supershell rather than
// forking, so object mutations performed inside it are visible to the
// caller — but the body is still its own closed scope (any object it
// instantiates locally is destructed on exit, same as a method body).
func (w *Walker) evalSupershell(n *Supershell) (pre []string, inline string, post []string) {
	wasSupershell := w.inSupershell
	w.inSupershell = true

	f := w.pushFrame(frameGeneric, w.entities.enclosingClass(), nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()
	w.inSupershell = wasSupershell

	outVar := w.program.NextAssignmentTemp("____supershellOutput")
	funcName := w.program.NextAssignmentTemp("____supershellFunc")
	pre = append(pre,
		"function "+funcName+"() {",
		indent(body),
		"}",
		"bpp____supershell "+outVar+" "+funcName,
	)
	post = append(post, "unset "+outVar, "unset -f "+funcName)
	return pre, "${" + outVar + "}", post
}

// evalSubshellSubstitution implements `$(...)`: a real forked subshell,
// so object mutations inside it are invisible once it returns — it is a
// closed scope whose inline value is the command's stdout, exactly like
// plain Bash's own `$(...)`. IsCatReplacement marks the original
// compiler's `$(cat file)` idiom rewritten to `$(< file)`, a micro-
// optimization original_source/ applies; we keep emitting the form the
// parser already classified rather than re-deriving it here.
func (w *Walker) evalSubshellSubstitution(n *SubshellSubstitution) (pre []string, inline string, post []string) {
	f := w.pushFrame(frameGeneric, w.entities.enclosingClass(), nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()

	body = strings.TrimRight(body, "\n")
	if n.IsCatReplacement {
		return nil, "$(< " + body + ")", nil
	}
	return nil, "$(" + body + ")", nil
}

// evalRawSubshell implements `(...)`: same closed-scope treatment as
// `$(...)`, but the result is not captured as a value — it runs for
// effect, like plain Bash's grouping operator.
func (w *Walker) evalRawSubshell(n *RawSubshell) (pre []string, inline string, post []string) {
	f := w.pushFrame(frameGeneric, w.entities.enclosingClass(), nil, true)
	body := w.renderBody(n.Body)
	body += w.renderLocalDestructions(f)
	w.entities.pop()
	return nil, "(" + strings.TrimRight(body, "\n") + ")", nil
}

// evalDoublequotedString implements `"..."`: each embedded
// part is evaluated in turn and concatenated; a literal text part
// carries through unchanged (the parser hands us a SinglequoteString-
// like RawText part for the literal spans), while a nested
// reference/substitution contributes its own pre/post lines.
func (w *Walker) evalDoublequotedString(n *DoublequotedString) (pre []string, inline string, post []string) {
	var b strings.Builder
	b.WriteByte('"')
	for _, part := range n.Parts {
		p, in, po := w.evalExpr(part)
		pre = append(pre, p...)
		b.WriteString(in)
		post = append(post, po...)
	}
	b.WriteByte('"')
	return pre, b.String(), post
}

// evalArrayLiteral implements `(a b c)`: each
// element is evaluated and joined with spaces inside parens, matching
// plain Bash array-literal syntax.
func (w *Walker) evalArrayLiteral(n *ArrayLiteral) (pre []string, inline string, post []string) {
	var parts []string
	for _, el := range n.Elements {
		p, in, po := w.evalExpr(el)
		pre = append(pre, p...)
		parts = append(parts, in)
		post = append(post, po...)
	}
	return pre, "(" + strings.Join(parts, " ") + ")", post
}

// handleComment implements /§9: a comment is carried through
// verbatim and never interpreted, even if its text happens to look like
// Bash++ syntax.
func (w *Walker) handleComment(n *Comment) {
	w.inComment = true
	w.entities.top().addCode("#" + n.Text)
	w.inComment = false
}

// indent prefixes every non-empty line of s with a tab, for splicing a
// rendered body into a `function... {... }` wrapper.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = "\t" + l
	}
	return strings.Join(lines, "\n")
}
