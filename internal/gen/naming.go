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

package gen

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// goCamelCase converts a lower_snake_case field name to UpperCamelCase, the
// exported method spelling.
func goCamelCase(s string) string {
	var b strings.Builder
	up := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '.':
			up = true
		case up && 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
			up = false
		default:
			b.WriteByte(c)
			up = false
		}
	}
	return b.String()
}

// declGoName names a message or enum declaration, joining it to its
// enclosing messages with underscores the way protoc-gen-go does.
func declGoName(d protoreflect.Descriptor) string {
	name := string(d.Name())
	for p := d.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(protoreflect.MessageDescriptor); !ok {
			break
		}
		name = string(p.Name()) + "_" + name
	}
	return name
}

// viewName names the generated view accessor for a message.
func viewName(md protoreflect.MessageDescriptor) string {
	return declGoName(md) + "View"
}

// varName names the generated variant accessor for a message.
func varName(md protoreflect.MessageDescriptor) string {
	return declGoName(md) + "Var"
}

// fieldConst names the package-level field number constant for a field.
func fieldConst(fd protoreflect.FieldDescriptor) string {
	return fmt.Sprintf("%s_%sFieldNumber", declGoName(fd.Parent()), goCamelCase(string(fd.Name())))
}

// goPackageName picks the Go package for a file's emitted sources: the
// go_package option when set, else the dotted proto package with the dots
// dropped, else the file name.
func goPackageName(fd protoreflect.FileDescriptor) string {
	if opts, ok := fd.Options().(interface{ GetGoPackage() string }); ok {
		if gp := opts.GetGoPackage(); gp != "" {
			if i := strings.LastIndexByte(gp, ';'); i >= 0 {
				return gp[i+1:]
			}
			if i := strings.LastIndexByte(gp, '/'); i >= 0 {
				gp = gp[i+1:]
			}
			return sanitizeIdent(gp)
		}
	}
	if pkg := string(fd.Package()); pkg != "" {
		return sanitizeIdent(strings.ReplaceAll(pkg, ".", ""))
	}
	base := fd.Path()
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return sanitizeIdent(strings.TrimSuffix(base, ".proto"))
}

func sanitizeIdent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
			b.WriteByte(c)
		case '0' <= c && c <= '9' && b.Len() > 0:
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return "pb"
	}
	return b.String()
}
