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
	"math"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// fieldTypes maps one schema field to the pbview declared type it is read
// through and the Go value type those reads produce. Repeated enums decode
// untyped so packed and non-packed sequences share one element discipline.
func fieldTypes(fd protoreflect.FieldDescriptor) (decl, value string, err error) {
	switch fd.Kind() {
	case protoreflect.DoubleKind:
		return "pbview.Double", "float64", nil
	case protoreflect.FloatKind:
		return "pbview.Float", "float32", nil
	case protoreflect.Int32Kind:
		return "pbview.Int32", "int32", nil
	case protoreflect.Int64Kind:
		return "pbview.Int64", "int64", nil
	case protoreflect.Uint32Kind:
		return "pbview.Uint32", "uint32", nil
	case protoreflect.Uint64Kind:
		return "pbview.Uint64", "uint64", nil
	case protoreflect.Sint32Kind:
		return "pbview.Sint32", "int32", nil
	case protoreflect.Sint64Kind:
		return "pbview.Sint64", "int64", nil
	case protoreflect.Fixed32Kind:
		return "pbview.Fixed32", "uint32", nil
	case protoreflect.Fixed64Kind:
		return "pbview.Fixed64", "uint64", nil
	case protoreflect.Sfixed32Kind:
		return "pbview.Sfixed32", "int32", nil
	case protoreflect.Sfixed64Kind:
		return "pbview.Sfixed64", "int64", nil
	case protoreflect.BoolKind:
		return "pbview.Bool", "bool", nil
	case protoreflect.StringKind:
		return "pbview.String", "string", nil
	case protoreflect.BytesKind:
		return "pbview.Bytes", "[]byte", nil
	case protoreflect.EnumKind:
		if fd.IsList() {
			return "pbview.EnumUntyped", "int32", nil
		}
		name := declGoName(fd.Enum())
		return "pbview.Enum[" + name + "]()", name, nil
	case protoreflect.MessageKind:
		name := viewName(fd.Message())
		return "pbview.MessageOf[" + name + "]()", name, nil
	default:
		return "", "", fmt.Errorf("%s: fields of kind %v are not supported", fd.FullName(), fd.Kind())
	}
}

// defaultLiteral renders the schema default of a singular field as a Go
// literal for the plain getter's fallback. needsMath is set for the float
// defaults that have no literal spelling.
func defaultLiteral(fd protoreflect.FieldDescriptor) (lit string, needsMath bool, err error) {
	def := fd.Default()
	switch fd.Kind() {
	case protoreflect.DoubleKind, protoreflect.FloatKind:
		bits := 64
		if fd.Kind() == protoreflect.FloatKind {
			bits = 32
		}
		f := def.Float()
		switch {
		case math.IsNaN(f):
			return "math.NaN()", true, nil
		case math.IsInf(f, 1):
			return "math.Inf(1)", true, nil
		case math.IsInf(f, -1):
			return "math.Inf(-1)", true, nil
		}
		return strconv.FormatFloat(f, 'g', -1, bits), false, nil
	case protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Sint32Kind, protoreflect.Sint64Kind,
		protoreflect.Sfixed32Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(def.Int(), 10), false, nil
	case protoreflect.Uint32Kind, protoreflect.Uint64Kind,
		protoreflect.Fixed32Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(def.Uint(), 10), false, nil
	case protoreflect.BoolKind:
		return strconv.FormatBool(def.Bool()), false, nil
	case protoreflect.StringKind:
		return strconv.Quote(def.String()), false, nil
	case protoreflect.BytesKind:
		if len(def.Bytes()) == 0 {
			return "nil", false, nil
		}
		return fmt.Sprintf("[]byte(%q)", def.Bytes()), false, nil
	case protoreflect.EnumKind:
		return fmt.Sprintf("%s(%d)", declGoName(fd.Enum()), def.Enum()), false, nil
	default:
		return "", false, fmt.Errorf("%s: no default for kind %v", fd.FullName(), fd.Kind())
	}
}

// ownedExpr renders the extraction of a field's Go value from the
// protoreflect.Value expression v, for the variant's owned arm.
func ownedExpr(fd protoreflect.FieldDescriptor, v string) (string, error) {
	switch fd.Kind() {
	case protoreflect.DoubleKind:
		return v + ".Float()", nil
	case protoreflect.FloatKind:
		return "float32(" + v + ".Float())", nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return "int32(" + v + ".Int())", nil
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return v + ".Int()", nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32(" + v + ".Uint())", nil
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return v + ".Uint()", nil
	case protoreflect.BoolKind:
		return v + ".Bool()", nil
	case protoreflect.StringKind:
		return v + ".String()", nil
	case protoreflect.BytesKind:
		return v + ".Bytes()", nil
	case protoreflect.EnumKind:
		return fmt.Sprintf("%s(%s.Enum())", declGoName(fd.Enum()), v), nil
	default:
		return "", fmt.Errorf("%s: no owned extraction for kind %v", fd.FullName(), fd.Kind())
	}
}
