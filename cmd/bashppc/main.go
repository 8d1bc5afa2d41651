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
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/bashppc/bashppc/internal/config"
	"github.com/bashppc/bashppc/internal/watch"
)

// includePathList collects repeated `-I dir` flags, in the order given,
// the same convention a C/C++ preprocessor's `-I` uses.
type includePathList []string

func (l *includePathList) String() string { return fmt.Sprint([]string(*l)) }
func (l *includePathList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var (
	outputFlag           string
	includePaths         includePathList
	targetBashFlag       string
	warningsAsErrorsFlag bool
	configFlag           string
	watchFlag            bool
)

func init() {
	flag.StringVar(&outputFlag, "o", "", "output file (default: stdout)")
	flag.Var(&includePaths, "I", "add a directory to the include search path (repeatable)")
	flag.StringVar(&targetBashFlag, "target-bash", "", "minimum Bash version the emitted script must run on (default: bashppc.toml's target_bash, else 4.4)")
	flag.BoolVar(&warningsAsErrorsFlag, "warnings-as-errors", false, "treat warnings as errors")
	flag.StringVar(&configFlag, "config", "", "path to a bashppc.toml config file (default: bashppc.toml in the current directory, if present)")
	flag.BoolVar(&watchFlag, "watch", false, "recompile whenever the input file or an included file changes")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: bashppc [flags] <source.bpp>")
		os.Exit(2)
	}
	source := args[0]

	cfg, err := config.Load(configFlag)
	if err != nil {
		glog.Exitf("bashppc: %v", err)
	}
	opts := cfg.MergeFlags(config.FlagOverrides{
		Output:           outputFlag,
		IncludePaths:     includePaths,
		TargetBash:       targetBashFlag,
		WarningsAsErrors: warningsAsErrorsFlag,
	})

	compileOnce := func() error {
		return compileFile(source, opts)
	}

	if err := compileOnce(); err != nil {
		glog.Errorf("bashppc: %v", err)
		if !watchFlag {
			os.Exit(1)
		}
	}

	if watchFlag {
		glog.Infof("bashppc: watching %s for changes", source)
		watcher, err := watch.New(source, opts.IncludePaths)
		if err != nil {
			glog.Exitf("bashppc: %v", err)
		}
		defer watcher.Close()
		watcher.Run(func() {
			if err := compileOnce(); err != nil {
				glog.Errorf("bashppc: %v", err)
			}
		})
	}
}
