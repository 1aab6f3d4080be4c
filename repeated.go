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
	"iter"

	"google.golang.org/protobuf/encoding/protowire"
)

// Repeated is a lazy cursor over the occurrences of a non-packed repeated
// field. Each [Repeated.Next] scans forward from the previous element's end;
// bytes are never revisited. The cursor is single-pass and not restartable,
// but copying it forks the iteration at its current position.
type Repeated[V any] struct {
	rest cursor
	num  FieldNumber
	t    Type[V]
	cur  V
	err  error
}

// GetRepeated returns a cursor over every occurrence of field num in v,
// decoded as declared type t.
func GetRepeated[V any](v View, num FieldNumber, t Type[V]) Repeated[V] {
	return Repeated[V]{rest: v.cursor(), num: num, t: t}
}

// Next advances to the next element, reporting whether one was decoded.
// Once Next returns false, [Repeated.Err] distinguishes exhaustion from a
// decode failure.
func (r *Repeated[V]) Next() bool {
	if r.err != nil {
		return false
	}
	wt, ok, err := seekNext(&r.rest, r.num)
	if err != nil || !ok {
		r.err = err
		return false
	}
	if r.rest.mode != ModeTrusted && wt != r.t.wire() {
		r.err = errWireType(r.num)
		return false
	}
	r.cur, r.err = r.t.decode(&r.rest)
	return r.err == nil
}

// Value returns the element decoded by the last successful [Repeated.Next].
func (r *Repeated[V]) Value() V { return r.cur }

// Err returns the decode failure that ended iteration, if any.
func (r *Repeated[V]) Err() error { return r.err }

// All returns a single-use iterator over the remaining elements. A decode
// failure ends the iteration silently; check [Repeated.Err] afterwards when
// the input is not trusted.
func (r *Repeated[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next() {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// Count scans the remaining elements and returns how many there are. It is
// O(n); don't use it to bound an indexed loop, range over [Repeated.All]
// instead.
func (r Repeated[V]) Count() (int, error) {
	var n int
	for r.Next() {
		n++
	}
	return n, r.err
}

// At returns the i-th remaining element. It is O(i) from the cursor's
// current position; the receiver is not advanced.
func (r Repeated[V]) At(i int) (V, bool, error) {
	for ; i >= 0; i-- {
		if !r.Next() {
			var zero V
			return zero, false, r.err
		}
	}
	return r.cur, true, nil
}

// PackedRepeated is a lazy cursor over the elements of one packed repeated
// field. Unlike [Repeated] it walks only the interior of a single
// length-delimited payload, located once at construction.
type PackedRepeated[V any] struct {
	rest cursor
	t    Type[V]
	cur  V
	err  error
}

// GetPackedRepeated locates field num in v and returns a cursor over its
// packed payload, decoded element-wise as declared type t. An absent field
// yields an empty cursor.
func GetPackedRepeated[V any](v View, num FieldNumber, t Type[V]) PackedRepeated[V] {
	r := PackedRepeated[V]{t: t}

	c := v.cursor()
	wt, ok, err := seekNext(&c, num)
	if err != nil || !ok {
		r.err = err
		return r
	}
	if c.mode != ModeTrusted && wt != protowire.BytesType {
		r.err = errWireType(num)
		return r
	}
	payload, err := c.lengthDelimited()
	if err != nil {
		r.err = err
		return r
	}
	r.rest = cursor{b: payload, mode: c.mode, num: num}
	return r
}

// Next advances to the next element, reporting whether one was decoded.
func (r *PackedRepeated[V]) Next() bool {
	if r.err != nil || r.rest.empty() {
		return false
	}
	r.cur, r.err = r.t.decode(&r.rest)
	return r.err == nil
}

// Value returns the element decoded by the last successful Next.
func (r *PackedRepeated[V]) Value() V { return r.cur }

// Err returns the decode failure that ended iteration, if any.
func (r *PackedRepeated[V]) Err() error { return r.err }

// All returns a single-use iterator over the remaining elements. A decode
// failure ends the iteration silently; check [PackedRepeated.Err] afterwards
// when the input is not trusted.
func (r *PackedRepeated[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for r.Next() {
			if !yield(r.cur) {
				return
			}
		}
	}
}

// Count scans the remaining elements and returns how many there are. O(n).
func (r PackedRepeated[V]) Count() (int, error) {
	var n int
	for r.Next() {
		n++
	}
	return n, r.err
}

// At returns the i-th remaining element. It is O(i) from the cursor's
// current position; the receiver is not advanced.
func (r PackedRepeated[V]) At(i int) (V, bool, error) {
	for ; i >= 0; i-- {
		if !r.Next() {
			var zero V
			return zero, false, r.err
		}
	}
	return r.cur, true, nil
}
