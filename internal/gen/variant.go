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
	"google.golang.org/protobuf/reflect/protoreflect"
)

// GenerateVar emits the variant accessor source for fd. A variant exposes
// the same singular accessor surface as the view flavor but is backed by a
// sum of {typed view, owned message}; each call dispatches on the active
// arm. It adds no parsing of its own.
func GenerateVar(fd protoreflect.FileDescriptor) (File, error) {
	name, err := outputName(fd.Path(), ".pbvar.go")
	if err != nil {
		return File{}, err
	}

	msgs := messages(fd)

	p := &printer{}
	emitHeader(p, fd)

	if len(msgs) > 0 {
		p.P("import (")
		p.Pf("pbview %q", pbviewImport)
		p.P(`"google.golang.org/protobuf/proto"`)
		p.P(`"google.golang.org/protobuf/reflect/protoreflect"`)
		p.P(")")
	}

	for _, md := range msgs {
		if err := emitVarMessage(p, md); err != nil {
			return File{}, err
		}
	}

	src, err := p.source()
	if err != nil {
		return File{}, err
	}
	return File{Name: name, Content: src}, nil
}

func emitVarMessage(p *printer, md protoreflect.MessageDescriptor) error {
	name := varName(md)
	view := viewName(md)

	p.P()
	p.Pf("// %s reads a %s backed by either a lazy view or an", name, md.FullName())
	p.Pf("// owned message, chosen at construction. Both arms expose the same")
	p.Pf("// accessors and agree on their results when they encode the same message.")
	p.Pf("type %s struct {", name)
	p.Pf("view %s", view)
	p.P("owned protoreflect.Message")
	p.P("}")
	p.P()
	p.Pf("// %sOfView wraps a lazy view.", name)
	p.Pf("func %sOfView(v %s) %s {", name, view, name)
	p.Pf("return %s{view: v}", name)
	p.P("}")
	p.P()
	p.Pf("// %sOfOwned wraps an owned message, such as one filled in by", name)
	p.P("// pbview.Materialize.")
	p.Pf("func %sOfOwned(m proto.Message) %s {", name, name)
	p.Pf("return %s{owned: m.ProtoReflect()}", name)
	p.P("}")
	p.P()
	p.Pf("// %sOfReflect wraps an owned message's reflection handle.", name)
	p.Pf("func %sOfReflect(m protoreflect.Message) %s {", name, name)
	p.Pf("return %s{owned: m}", name)
	p.P("}")
	p.P()
	p.Pf("func (m %s) field(num pbview.FieldNumber) protoreflect.FieldDescriptor {", name)
	p.P("return m.owned.Descriptor().Fields().ByNumber(protoreflect.FieldNumber(num))")
	p.P("}")

	fds := md.Fields()
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		if err := checkField(fd); err != nil {
			return err
		}
		if fd.IsList() {
			// The variant surface covers singular fields only; repeated
			// access stays on the view flavor.
			continue
		}
		if err := emitVarField(p, name, fd); err != nil {
			return err
		}
	}
	return nil
}

func emitVarField(p *printer, recv string, fd protoreflect.FieldDescriptor) error {
	camel := goCamelCase(string(fd.Name()))
	cname := fieldConst(fd)

	p.P()
	p.Pf("// Has%s reports whether %s is present.", camel, fd.Name())
	p.Pf("func (m %s) Has%s() (bool, error) {", recv, camel)
	p.P("if m.owned != nil {")
	p.Pf("return m.owned.Has(m.field(%s)), nil", cname)
	p.P("}")
	p.Pf("return m.view.Has%s()", camel)
	p.P("}")
	p.P()

	if fd.Kind() == protoreflect.MessageKind {
		sub := varName(fd.Message())
		p.Pf("// Opt%s returns %s when present.", camel, fd.Name())
		p.Pf("func (m %s) Opt%s() (%s, bool, error) {", recv, camel, sub)
		p.P("if m.owned != nil {")
		p.Pf("fd := m.field(%s)", cname)
		p.P("if !m.owned.Has(fd) {")
		p.Pf("return %s{}, false, nil", sub)
		p.P("}")
		p.Pf("return %sOfReflect(m.owned.Get(fd).Message()), true, nil", sub)
		p.P("}")
		p.Pf("v, ok, err := m.view.Opt%s()", camel)
		p.Pf("return %sOfView(v), ok, err", sub)
		p.P("}")
		p.P()
		p.Pf("// %s returns %s. When absent, the view arm yields a reader over no", camel, fd.Name())
		p.P("// bytes and the owned arm yields the runtime's default instance.")
		p.Pf("func (m %s) %s() (%s, error) {", recv, camel, sub)
		p.P("if m.owned != nil {")
		p.Pf("return %sOfReflect(m.owned.Get(m.field(%s)).Message()), nil", sub, cname)
		p.P("}")
		p.Pf("v, err := m.view.%s()", camel)
		p.Pf("return %sOfView(v), err", sub)
		p.P("}")
		return nil
	}

	_, value, err := fieldTypes(fd)
	if err != nil {
		return err
	}
	get, err := ownedExpr(fd, "m.owned.Get(fd)")
	if err != nil {
		return err
	}
	getPlain, err := ownedExpr(fd, "m.owned.Get(m.field("+cname+"))")
	if err != nil {
		return err
	}

	p.Pf("// Opt%s returns %s when present.", camel, fd.Name())
	p.Pf("func (m %s) Opt%s() (%s, bool, error) {", recv, camel, value)
	p.P("if m.owned != nil {")
	p.Pf("fd := m.field(%s)", cname)
	p.P("if !m.owned.Has(fd) {")
	p.Pf("var zero %s", value)
	p.P("return zero, false, nil")
	p.P("}")
	p.Pf("return %s, true, nil", get)
	p.P("}")
	p.Pf("return m.view.Opt%s()", camel)
	p.P("}")
	p.P()
	p.Pf("// %s returns %s, or its default when absent.", camel, fd.Name())
	p.Pf("func (m %s) %s() (%s, error) {", recv, camel, value)
	p.P("if m.owned != nil {")
	p.Pf("return %s, nil", getPlain)
	p.P("}")
	p.Pf("return m.view.%s()", camel)
	p.P("}")
	return nil
}
