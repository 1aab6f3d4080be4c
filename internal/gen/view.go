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
	"math"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// GenerateView emits the typed view accessor source for fd: per message a
// reader-backed accessor struct, per field a number constant and the
// Has/Opt/plain (or cursor/Count/At) accessor family.
func GenerateView(fd protoreflect.FileDescriptor) (File, error) {
	name, err := outputName(fd.Path(), ".pbview.go")
	if err != nil {
		return File{}, err
	}

	msgs := messages(fd)

	p := &printer{}
	emitHeader(p, fd)

	if len(msgs) > 0 {
		p.P("import (")
		if viewNeedsMath(msgs) {
			p.P(`"math"`)
			p.P()
		}
		p.Pf("pbview %q", pbviewImport)
		p.P(")")
	}

	for _, ed := range enums(fd) {
		emitEnum(p, ed)
	}
	for _, md := range msgs {
		if err := emitViewMessage(p, md); err != nil {
			return File{}, err
		}
	}

	src, err := p.source()
	if err != nil {
		return File{}, err
	}
	return File{Name: name, Content: src}, nil
}

// viewNeedsMath reports whether any singular default requires the math
// package (an infinity or NaN default on a float field).
func viewNeedsMath(msgs []protoreflect.MessageDescriptor) bool {
	for _, md := range msgs {
		fds := md.Fields()
		for i := 0; i < fds.Len(); i++ {
			fd := fds.Get(i)
			if fd.IsList() {
				continue
			}
			switch fd.Kind() {
			case protoreflect.DoubleKind, protoreflect.FloatKind:
				f := fd.Default().Float()
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return true
				}
			}
		}
	}
	return false
}

func emitEnum(p *printer, ed protoreflect.EnumDescriptor) {
	name := declGoName(ed)
	p.P()
	p.Pf("// %s is the %s enum.", name, ed.FullName())
	p.Pf("type %s int32", name)
	p.P()
	p.P("const (")
	vds := ed.Values()
	for i := 0; i < vds.Len(); i++ {
		vd := vds.Get(i)
		p.Pf("%s_%s %s = %d", name, vd.Name(), name, vd.Number())
	}
	p.P(")")
}

func emitViewMessage(p *printer, md protoreflect.MessageDescriptor) error {
	name := viewName(md)

	p.P()
	p.Pf("// %s is a lazy, zero-copy reader over a serialized %s.", name, md.FullName())
	p.Pf("// It borrows the bytes it is constructed over and decodes fields only on")
	p.Pf("// access.")
	p.Pf("type %s struct {", name)
	p.P("view pbview.View")
	p.P("}")
	p.P()
	p.Pf("// New%s creates a reader over data, which must hold one serialized", name)
	p.Pf("// %s.", md.FullName())
	p.Pf("func New%[1]s(data []byte, opts ...pbview.ViewOption) %[1]s {", name)
	p.Pf("return %s{view: pbview.New(data, opts...)}", name)
	p.P("}")
	p.P()
	p.Pf("// As%s wraps an existing view.", name)
	p.Pf("func As%[1]s(v pbview.View) %[1]s {", name)
	p.Pf("return %s{view: v}", name)
	p.P("}")
	p.P()
	p.P("// FromView implements [pbview.ViewWrapper].")
	p.Pf("func (%[1]s) FromView(v pbview.View) %[1]s {", name)
	p.Pf("return %s{view: v}", name)
	p.P("}")

	fds := md.Fields()
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		if err := checkField(fd); err != nil {
			return err
		}
		if err := emitViewField(p, name, fd); err != nil {
			return err
		}
	}
	return nil
}

func emitViewField(p *printer, recv string, fd protoreflect.FieldDescriptor) error {
	decl, value, err := fieldTypes(fd)
	if err != nil {
		return err
	}
	camel := goCamelCase(string(fd.Name()))
	cname := fieldConst(fd)

	p.P()
	p.Pf("const %s pbview.FieldNumber = %d", cname, fd.Number())

	if fd.IsList() {
		cursor := "Repeated"
		if fd.IsPacked() {
			cursor = "PackedRepeated"
		}
		p.P()
		p.Pf("// %s returns a lazy cursor over %s.", camel, fd.Name())
		p.Pf("func (m %s) %s() pbview.%s[%s] {", recv, camel, cursor, value)
		p.Pf("return pbview.Get%s(m.view, %s, %s)", cursor, cname, decl)
		p.P("}")
		p.P()
		p.Pf("// %sCount scans the message to count %s elements. It is O(n);", camel, fd.Name())
		p.Pf("// don't bound an indexed loop with it, range over %s instead.", camel)
		p.Pf("func (m %s) %sCount() (int, error) {", recv, camel)
		p.Pf("return m.%s().Count()", camel)
		p.P("}")
		p.P()
		p.Pf("// %sAt returns the %s element at index i, in O(i).", camel, fd.Name())
		p.Pf("func (m %s) %sAt(i int) (%s, bool, error) {", recv, camel, value)
		p.Pf("return m.%s().At(i)", camel)
		p.P("}")
		return nil
	}

	p.P()
	p.Pf("// Has%s reports whether %s is present.", camel, fd.Name())
	p.Pf("func (m %s) Has%s() (bool, error) {", recv, camel)
	p.Pf("return pbview.Has(m.view, %s)", cname)
	p.P("}")
	p.P()
	p.Pf("// Opt%s returns %s when present. It is cheaper than separate Has%s", camel, fd.Name(), camel)
	p.Pf("// and %s calls.", camel)
	p.Pf("func (m %s) Opt%s() (%s, bool, error) {", recv, camel, value)
	p.Pf("return pbview.Get(m.view, %s, %s)", cname, decl)
	p.P("}")
	p.P()

	if fd.Kind() == protoreflect.MessageKind {
		p.Pf("// %s returns %s. An absent field yields a reader over no bytes,", camel, fd.Name())
		p.Pf("// on which every accessor reports absence.")
		p.Pf("func (m %s) %s() (%s, error) {", recv, camel, value)
		p.Pf("if v, ok, err := m.Opt%s(); ok || err != nil {", camel)
		p.P("return v, err")
		p.P("}")
		p.Pf("return %s{}, nil", value)
		p.P("}")
		return nil
	}

	lit, _, err := defaultLiteral(fd)
	if err != nil {
		return err
	}
	p.Pf("// %s returns %s, or its default when absent.", camel, fd.Name())
	p.Pf("func (m %s) %s() (%s, error) {", recv, camel, value)
	p.Pf("if v, ok, err := m.Opt%s(); ok || err != nil {", camel)
	p.P("return v, err")
	p.P("}")
	p.Pf("return %s, nil", lit)
	p.P("}")
	return nil
}
