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

// codeEntity is any symbol-model node that accumulates emitted shell text.
// It owns three ordered buffers: lines that must land immediately before
// the current output line, the current inline fragment, and lines that
// must land immediately after it. This triad is the core emission
// discipline the walker uses at every expression site.
type codeEntity struct {
	entity

	preCode  []string
	code     strings.Builder
	postCode []string
}

// addCode appends s to the inline fragment.
func (c *codeEntity) addCode(s string) {
	c.code.WriteString(s)
}

// addCodeToPreviousLine appends a full line to pre_code. Multiple calls
// accumulate in call order, exactly as requires.
func (c *codeEntity) addCodeToPreviousLine(s string) {
	c.preCode = append(c.preCode, s)
}

// addCodeToNextLine appends a full line to post_code.
func (c *codeEntity) addCodeToNextLine(s string) {
	c.postCode = append(c.postCode, s)
}

// inlineCode returns the accumulated inline fragment without flushing.
func (c *codeEntity) inlineCode() string {
	return c.code.String()
}

// inherit is a one-direction copy of the *symbolic* state a nested, open
// scope leaves behind: objects and classes declared inside a command
// sequence, an arithmetic substitution, or a case arm are visible to the
// entity that contains them, because none of those forms fork a
// subshell. Closed scopes (methods, for-loop bodies, `$(...)` and `(...)`
// substitutions) must NOT call inherit — their object instantiations are
// dead once the scope exits, ("Supershell / Subshell").
//
// Only the symbolic bookkeeping is propagated here; pre/inline/post code
// is spliced separately by the walker at each handler's exit,
// since the physical placement of that text depends on the surrounding
// shell syntax (quoting, command substitution, etc.) which inherit itself
// does not know about.
func (c *codeEntity) inherit(other *codeEntity) {
	c.referencedAt = append(c.referencedAt, other.referencedAt...)
}

// flush concatenates pre_code + '\n' + code + '\n' + post_code, clears all
// three buffers, and returns the result so the caller can write it to the
// program's output stream. The next write after flush starts a fresh
// logical line.
func (c *codeEntity) flush() string {
	var b strings.Builder
	for _, line := range c.preCode {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(c.code.String())
	b.WriteByte('\n')
	for _, line := range c.postCode {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	c.preCode = nil
	c.code.Reset()
	c.postCode = nil
	return b.String()
}

// isEmpty reports whether flush would produce only blank lines.
func (c *codeEntity) isEmpty() bool {
	return len(c.preCode) == 0 && c.code.Len() == 0 && len(c.postCode) == 0
}
