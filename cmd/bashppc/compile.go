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

package main

import (
	"fmt"
	"os"

	"github.com/bashppc/bashppc/bpp"
	"github.com/bashppc/bashppc/internal/config"
)

// parseFile turns source text into a bpp.ProgramNode. The grammar/parser
// front-end is an explicitly out-of-scope external collaborator (spec
// §1): it is assumed to produce the typed AST bpp.ast.go names, wired in
// here so the driver and bpp.Compile have a single seam to plug a real
// parser into.
func parseFile(path string) (*bpp.ProgramNode, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no grammar front-end wired: %s was not parsed (the parser is an external collaborator of this compiler core, per the project's scope)", path)
}

func compileFile(source string, opts config.Options) error {
	root, err := parseFile(source)
	if err != nil {
		return err
	}

	result, err := bpp.Compile(source, root, parseFile, bpp.CompileOptions{
		TargetBashVersion: opts.TargetBash,
		IncludePaths:      opts.IncludePaths,
		WarningsAsErrors:  opts.WarningsAsErrors,
	})
	if err != nil {
		for _, e := range result.Program.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		return err
	}

	if opts.Output == "" {
		fmt.Print(result.Output)
		return nil
	}
	return os.WriteFile(opts.Output, []byte(result.Output), 0o644)
}
