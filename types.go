// Copyright 2020-2025 Buf Technologies, Inc.
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

package pbview

import (
	"math"
	"unsafe"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mrpi/pbview-go/internal/zigzag"
)

// Serialization identifies the wire discipline of a declared type. The
// expected wire type of every declared type derives deterministically from
// this, plus the value width for the fixed discipline.
type Serialization int

const (
	SerializationFixed Serialization = iota
	SerializationVarint
	SerializationVarintZigZag
	SerializationLengthDelimited
)

// Type describes a declared field type: the Go value type V reads of it
// produce, and the serialization discipline its values use on the wire.
// The generic accessors ([Get], [GetRepeated], [GetPackedRepeated]) take one
// of the declared type values in this package, or [Enum] and [MessageOf]
// instantiations for generated code.
type Type[V any] struct {
	ser    Serialization
	bits   int
	decode func(c *cursor) (V, error)
}

// wire derives the expected wire type from the serialization discipline.
func (t Type[V]) wire() protowire.Type {
	switch t.ser {
	case SerializationFixed:
		if t.bits == 64 {
			return protowire.Fixed64Type
		}
		return protowire.Fixed32Type
	case SerializationLengthDelimited:
		return protowire.BytesType
	default:
		return protowire.VarintType
	}
}

// Serialization returns the declared type's wire discipline.
func (t Type[V]) Serialization() Serialization { return t.ser }

// The declared scalar types. Varint reads of a narrower declared type drop
// any bits beyond the value width.
var (
	// Double reads double fields as float64.
	Double = Type[float64]{ser: SerializationFixed, bits: 64, decode: func(c *cursor) (float64, error) {
		v, err := c.fixed64()
		return math.Float64frombits(v), err
	}}

	// Float reads float fields as float32.
	Float = Type[float32]{ser: SerializationFixed, bits: 32, decode: func(c *cursor) (float32, error) {
		v, err := c.fixed32()
		return math.Float32frombits(v), err
	}}

	// Int32 reads int32 fields.
	Int32 = Type[int32]{ser: SerializationVarint, decode: func(c *cursor) (int32, error) {
		v, err := c.varint()
		return int32(v), err
	}}

	// Int64 reads int64 fields.
	Int64 = Type[int64]{ser: SerializationVarint, decode: func(c *cursor) (int64, error) {
		v, err := c.varint()
		return int64(v), err
	}}

	// Uint32 reads uint32 fields.
	Uint32 = Type[uint32]{ser: SerializationVarint, decode: func(c *cursor) (uint32, error) {
		v, err := c.varint()
		return uint32(v), err
	}}

	// Uint64 reads uint64 fields.
	Uint64 = Type[uint64]{ser: SerializationVarint, decode: func(c *cursor) (uint64, error) {
		return c.varint()
	}}

	// Sint32 reads sint32 fields, undoing their zigzag encoding.
	Sint32 = Type[int32]{ser: SerializationVarintZigZag, decode: func(c *cursor) (int32, error) {
		v, err := c.varint()
		return zigzag.Decode64[int32](v), err
	}}

	// Sint64 reads sint64 fields, undoing their zigzag encoding.
	Sint64 = Type[int64]{ser: SerializationVarintZigZag, decode: func(c *cursor) (int64, error) {
		v, err := c.varint()
		return zigzag.Decode64[int64](v), err
	}}

	// Fixed32 reads fixed32 fields.
	Fixed32 = Type[uint32]{ser: SerializationFixed, bits: 32, decode: func(c *cursor) (uint32, error) {
		return c.fixed32()
	}}

	// Fixed64 reads fixed64 fields.
	Fixed64 = Type[uint64]{ser: SerializationFixed, bits: 64, decode: func(c *cursor) (uint64, error) {
		return c.fixed64()
	}}

	// Sfixed32 reads sfixed32 fields.
	Sfixed32 = Type[int32]{ser: SerializationFixed, bits: 32, decode: func(c *cursor) (int32, error) {
		v, err := c.fixed32()
		return int32(v), err
	}}

	// Sfixed64 reads sfixed64 fields.
	Sfixed64 = Type[int64]{ser: SerializationFixed, bits: 64, decode: func(c *cursor) (int64, error) {
		v, err := c.fixed64()
		return int64(v), err
	}}

	// Bool reads bool fields. Any nonzero varint is true.
	Bool = Type[bool]{ser: SerializationVarint, decode: func(c *cursor) (bool, error) {
		v, err := c.varint()
		return v != 0, err
	}}

	// String reads string fields as strings aliasing the backing buffer.
	// No copy is made; the result is valid exactly as long as the buffer.
	String = Type[string]{ser: SerializationLengthDelimited, decode: func(c *cursor) (string, error) {
		b, err := c.lengthDelimited()
		if err != nil || len(b) == 0 {
			return "", err
		}
		return unsafe.String(&b[0], len(b)), nil
	}}

	// Bytes reads bytes fields as subslices of the backing buffer.
	Bytes = Type[[]byte]{ser: SerializationLengthDelimited, decode: func(c *cursor) ([]byte, error) {
		return c.lengthDelimited()
	}}

	// EnumUntyped reads enum fields as their raw int32 payload. Repeated
	// enum sequences decode through this so packed and non-packed iteration
	// share one uniform element type; callers cast per element.
	EnumUntyped = Type[int32]{ser: SerializationVarint, decode: func(c *cursor) (int32, error) {
		v, err := c.varint()
		return int32(v), err
	}}

	// Message reads a submessage field as a [View] in [ModePermissive],
	// regardless of the enclosing view's mode.
	Message = Type[View]{ser: SerializationLengthDelimited, decode: func(c *cursor) (View, error) {
		b, err := c.lengthDelimited()
		return View{data: b, mode: ModePermissive}, err
	}}

	// MessageStrict reads a submessage field as a [View] in [ModeStrict],
	// for nested messages whose encoder may duplicate or reorder fields.
	MessageStrict = Type[View]{ser: SerializationLengthDelimited, decode: func(c *cursor) (View, error) {
		b, err := c.lengthDelimited()
		return View{data: b, mode: ModeStrict}, err
	}}
)

// Enum returns the declared type reading enum fields as the typed enum E.
func Enum[E ~int32]() Type[E] {
	return Type[E]{ser: SerializationVarint, decode: func(c *cursor) (E, error) {
		v, err := c.varint()
		return E(int32(v)), err
	}}
}

// ViewWrapper is implemented by generated view accessors so that they can
// serve as submessage and element types for the generic accessors.
type ViewWrapper[M any] interface {
	FromView(View) M
}

// MessageOf returns the declared type reading a submessage field as the
// generated view accessor M. The submessage shares the enclosing view's
// parser mode; generated code reads nested messages through this.
func MessageOf[M ViewWrapper[M]]() Type[M] {
	return Type[M]{ser: SerializationLengthDelimited, decode: func(c *cursor) (M, error) {
		b, err := c.lengthDelimited()
		var m M
		return m.FromView(View{data: b, mode: c.mode}), err
	}}
}
