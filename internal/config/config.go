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

// Package config loads the optional bashppc.toml project file and merges
// it with command-line flag overrides. TOML was picked over a hand-rolled
// key=value reader because the pack already reaches for
// github.com/BurntSushi/toml for exactly this kind of project config file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// File is the on-disk shape of bashppc.toml.
type File struct {
	Output           string   `toml:"output"`
	IncludePaths     []string `toml:"include_paths"`
	TargetBash       string   `toml:"target_bash"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
}

// Options is the fully-resolved configuration a compile runs with, after
// merging a loaded File with command-line overrides.
type Options struct {
	Output           string
	IncludePaths     []string
	TargetBash       string
	WarningsAsErrors bool
}

// FlagOverrides carries the subset of command-line flags that take
// precedence over bashppc.toml when explicitly set.
type FlagOverrides struct {
	Output           string
	IncludePaths     []string
	TargetBash       string
	WarningsAsErrors bool
}

// Load reads path (or./bashppc.toml if path is empty and that file
// exists). A missing file at the default location is not an error: it
// just means every setting comes from flags.
func Load(path string) (*File, error) {
	if path == "" {
		path = "bashppc.toml"
		if _, err := os.Stat(path); err != nil {
			return &File{TargetBash: "4.4"}, nil
		}
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	if f.TargetBash == "" {
		f.TargetBash = "4.4"
	}
	return &f, nil
}

// MergeFlags produces the effective Options: a flag value wins over the
// file whenever the flag was given a non-zero value, so that running
// without flags falls back entirely to bashppc.toml.
func (f *File) MergeFlags(o FlagOverrides) Options {
	opts := Options{
		Output:           f.Output,
		IncludePaths:     f.IncludePaths,
		TargetBash:       f.TargetBash,
		WarningsAsErrors: f.WarningsAsErrors,
	}
	if o.Output != "" {
		opts.Output = o.Output
	}
	if len(o.IncludePaths) > 0 {
		opts.IncludePaths = o.IncludePaths
	}
	if o.TargetBash != "" {
		opts.TargetBash = o.TargetBash
	}
	if o.WarningsAsErrors {
		opts.WarningsAsErrors = true
	}
	return opts
}
