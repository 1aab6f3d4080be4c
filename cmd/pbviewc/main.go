// Copyright 2025 Buf Technologies, Inc.
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

// pbviewc compiles .proto files and emits typed view and variant accessor
// sources over pbview, one X.pbview.go and one X.pbvar.go per input file.
//
// The option grammar follows protoc: options first, then input files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/protocompile"

	"github.com/mrpi/pbview-go/internal/gen"
)

const usage = `Usage: pbviewc [OPTION] PROTO_FILES
  -IPATH, --proto_path=PATH   Specify the directory in which to search for
                              imports.  May be specified multiple times;
                              directories will be searched in order.  If not
                              given, the current working directory is used.
  --go_out=OUT_DIR            Generate Go accessor sources.
`

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprint(os.Stderr, usage)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	var (
		importPaths []string
		outDir      string
	)

	i := 0
	for ; i < len(args) && strings.HasPrefix(args[i], "-"); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "--proto_path="):
			importPaths = append(importPaths, strings.TrimPrefix(arg, "--proto_path="))
		case strings.HasPrefix(arg, "-I") && len(arg) > len("-I"):
			importPaths = append(importPaths, strings.TrimPrefix(arg, "-I"))
		case strings.HasPrefix(arg, "--go_out="):
			outDir = strings.TrimSuffix(strings.TrimPrefix(arg, "--go_out="), "/")
		default:
			return fmt.Errorf("unknown option %q", arg)
		}
	}
	files := args[i:]

	if outDir == "" {
		return errors.New("the option '--go_out=' is missing")
	}
	if len(files) == 0 {
		return errors.New("no input files")
	}
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: importPaths,
		}),
	}
	fds, err := compiler.Compile(ctx, files...)
	if err != nil {
		return err
	}

	for _, fd := range fds {
		outs, err := gen.Generate(fd)
		if err != nil {
			return err
		}
		for _, f := range outs {
			path := filepath.Join(outDir, f.Name)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, f.Content, 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
