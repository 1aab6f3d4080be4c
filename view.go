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
	"google.golang.org/protobuf/encoding/protowire"
)

// FieldNumber identifies a field within a message.
type FieldNumber = protowire.Number

// Mode selects how much checking a [View]'s reads perform, and which of
// several duplicated occurrences of a non-repeated field wins.
type Mode int

const (
	// ModePermissive bounds-checks every read. Duplicated non-repeated
	// fields resolve to the first occurrence, and scans may stop early once
	// they pass the target field number, which is correct for the ascending
	// field order standard encoders emit. This is the default.
	ModePermissive Mode = iota

	// ModeStrict bounds-checks every read, never stops a scan early, and
	// resolves duplicated non-repeated fields to the last occurrence, as
	// conforming parsers must.
	ModeStrict

	// ModeTrusted elides all checking. On input from anything other than a
	// well-behaved encoder, reads may return garbage or panic; the runtime's
	// own slice bounds checks are the only guard against reading outside the
	// buffer. An unsafe opt-in for fully trusted pipelines.
	ModeTrusted
)

// View is a lazy reader over one wire-format message. It borrows the byte
// range it is constructed over and never copies, mutates, or decodes it
// ahead of time; each accessor call scans just far enough to answer.
//
// A View is a small (range, mode) value: copying one copies the slice header
// and the mode, not the bytes. Views expose no mutation, so any number of them may read the
// same buffer concurrently. String and bytes results alias the buffer and
// are valid exactly as long as it is.
type View struct {
	data []byte
	mode Mode
}

// ViewOption is a configuration setting for [New].
type ViewOption struct{ apply func(*View) }

// WithMode sets the view's parser mode. The default is [ModePermissive].
func WithMode(m Mode) ViewOption {
	return ViewOption{func(v *View) { v.mode = m }}
}

// New creates a view over data. The view aliases data; the caller must not
// mutate the slice while the view, or anything read through it, is in use.
func New(data []byte, opts ...ViewOption) View {
	v := View{data: data}
	for _, opt := range opts {
		opt.apply(&v)
	}
	return v
}

// Mode returns the view's parser mode.
func (v View) Mode() Mode { return v.mode }

// Bytes returns the view's backing range. The slice is borrowed, not a copy.
func (v View) Bytes() []byte { return v.data }

// Len returns the length of the view's backing range in bytes.
func (v View) Len() int { return len(v.data) }

// cursor returns a fresh stack-local scan position over the whole range.
func (v View) cursor() cursor { return cursor{b: v.data, mode: v.mode} }

// Has reports whether at least one occurrence of field num is present.
// Worst case it scans the whole message.
func Has(v View, num FieldNumber) (bool, error) {
	c := v.cursor()
	_, ok, err := seekNext(&c, num)
	return ok, err
}

// Get reads the value of non-repeated field num as declared type t. The
// second result is false when the field is absent, which is not an error.
// Under [ModeStrict] the last of several occurrences wins; otherwise the
// first does.
func Get[V any](v View, num FieldNumber, t Type[V]) (V, bool, error) {
	var zero V

	c := v.cursor()
	wt, ok, err := seekFinal(&c, num)
	if err != nil || !ok {
		return zero, false, err
	}
	if c.mode != ModeTrusted && wt != t.wire() {
		return zero, false, errWireType(num)
	}
	val, err := t.decode(&c)
	if err != nil {
		return zero, false, err
	}
	return val, true, nil
}
