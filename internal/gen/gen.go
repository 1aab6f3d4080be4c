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

// Package gen emits typed accessor surfaces over pbview from compiled
// schema descriptors: a view flavor that reads lazily through a
// [github.com/mrpi/pbview-go.View], and a variant flavor that dispatches to
// either that view or an owned message at each call.
package gen

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// pbviewImport is the import path of the view engine the emitted code
// dispatches into.
const pbviewImport = "github.com/mrpi/pbview-go"

// A File is one emitted source file, named relative to the output root.
type File struct {
	Name    string
	Content []byte
}

// Generate emits both accessor surfaces for one compiled schema file: the
// typed view source and the variant source.
func Generate(fd protoreflect.FileDescriptor) ([]File, error) {
	view, err := GenerateView(fd)
	if err != nil {
		return nil, err
	}
	variant, err := GenerateVar(fd)
	if err != nil {
		return nil, err
	}
	return []File{view, variant}, nil
}

// outputName derives an emitted file's name by swapping the .proto
// extension for suffix.
func outputName(protoPath, suffix string) (string, error) {
	const ext = ".proto"
	if !strings.HasSuffix(protoPath, ext) || len(protoPath) == len(ext) {
		return "", fmt.Errorf("invalid input name %q: must be a .proto file", protoPath)
	}
	return strings.TrimSuffix(protoPath, ext) + suffix, nil
}

// messages lists every message in fd, nested ones included, in declaration
// order. Synthetic map entries are excluded; map fields themselves are
// rejected later, when the field is projected.
func messages(fd protoreflect.FileDescriptor) []protoreflect.MessageDescriptor {
	var out []protoreflect.MessageDescriptor
	var walk func(mds protoreflect.MessageDescriptors)
	walk = func(mds protoreflect.MessageDescriptors) {
		for i := 0; i < mds.Len(); i++ {
			md := mds.Get(i)
			if md.IsMapEntry() {
				continue
			}
			out = append(out, md)
			walk(md.Messages())
		}
	}
	walk(fd.Messages())
	return out
}

// enums lists every enum in fd, nested ones included.
func enums(fd protoreflect.FileDescriptor) []protoreflect.EnumDescriptor {
	var out []protoreflect.EnumDescriptor
	eds := fd.Enums()
	for i := 0; i < eds.Len(); i++ {
		out = append(out, eds.Get(i))
	}
	var walk func(mds protoreflect.MessageDescriptors)
	walk = func(mds protoreflect.MessageDescriptors) {
		for i := 0; i < mds.Len(); i++ {
			md := mds.Get(i)
			eds := md.Enums()
			for j := 0; j < eds.Len(); j++ {
				out = append(out, eds.Get(j))
			}
			walk(md.Messages())
		}
	}
	walk(fd.Messages())
	return out
}

// checkField rejects the schema constructs the reader has no encoding for.
func checkField(fd protoreflect.FieldDescriptor) error {
	if fd.IsMap() {
		return fmt.Errorf("%s: map fields are not supported", fd.FullName())
	}
	if fd.Kind() == protoreflect.GroupKind {
		return fmt.Errorf("%s: group fields are not supported", fd.FullName())
	}
	return nil
}

func emitHeader(p *printer, fd protoreflect.FileDescriptor) {
	p.P("// Code generated by pbviewc. DO NOT EDIT.")
	p.Pf("// source: %s", fd.Path())
	p.P()
	p.Pf("package %s", goPackageName(fd))
	p.P()
}
