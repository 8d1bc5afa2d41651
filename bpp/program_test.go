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
	"testing"
)

func TestNewProgramBootstrapsPrimitive(t *testing.T) {
	p := NewProgram("4.4", nil)
	if p.Class(PrimitiveClassName) != p.Primitive {
		t.Fatalf("primitive class not registered under its own name")
	}
}

func TestProgramAddClassRejectsCollisionWithObject(t *testing.T) {
	p := NewProgram("4.4", nil)
	widget := NewClass("Widget", nil, srcpos{})
	if err := p.AddClass(widget); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	addr := p.NextObjectAddress("Widget", "gadget")
	if err := p.AddObject(NewObject("gadget", widget, addr, false, srcpos{})); err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	collidingClass := NewClass("gadget", nil, srcpos{})
	if err := p.AddClass(collidingClass); err == nil {
		t.Fatalf("expected a class name colliding with an existing object to be rejected")
	}
}

func TestProgramOutputSuppressedOnError(t *testing.T) {
	p := NewProgram("4.4", nil)
	p.WriteCode("echo hi\n")
	p.AddError(&SyntaxError{Message: "boom"})
	if got := p.Output(); got != "" {
		t.Errorf("Output() with a recorded error = %q, want empty string", got)
	}
}

func TestProgramOutputIncludesRuntimePreludeAndShebang(t *testing.T) {
	p := NewProgram("4.4", nil)
	p.WriteCode("echo hi\n")
	got := p.Output()
	if !hasPrefix(got, "#!/usr/bin/env bash\n") {
		t.Errorf("Output() missing shebang: %q", got)
	}
	if !strings.Contains(got, "function bpp____supershell()") {
		t.Errorf("Output() missing runtime prelude: %q", got)
	}
}

func TestProgramMarkIncludedOnce(t *testing.T) {
	p := NewProgram("4.4", nil)
	if already := p.MarkIncluded("/x/util.bpp"); already {
		t.Fatalf("first MarkIncluded should report not-already-included")
	}
	if already := p.MarkIncluded("/x/util.bpp"); !already {
		t.Fatalf("second MarkIncluded of the same path should report already-included")
	}
}

func TestProgramNextObjectAddressIsUniquePerCall(t *testing.T) {
	p := NewProgram("4.4", nil)
	a := p.NextObjectAddress("Widget", "w")
	b := p.NextObjectAddress("Widget", "w")
	if a == b {
		t.Fatalf("NextObjectAddress returned the same address twice: %q", a)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
