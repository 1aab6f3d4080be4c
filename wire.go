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
	"encoding/binary"

	"google.golang.org/protobuf/encoding/protowire"
)

// cursor is a stack-local decoding position over a view's backing bytes.
// Every read consumes from the front of b; a cursor never grows and never
// reaches outside the range it was created with (outside [ModeTrusted]).
//
// num records the field most recently addressed, purely for error context.
type cursor struct {
	b    []byte
	mode Mode
	num  protowire.Number
}

func (c *cursor) empty() bool { return len(c.b) == 0 }

// varint consumes one base-128 varint. Overlong encodings are tolerated:
// continuation bytes past the tenth contribute nothing, and bits beyond the
// width of the declared type are dropped by the caller's narrowing cast.
func (c *cursor) varint() (uint64, error) {
	if c.mode != ModeTrusted && c.empty() {
		return 0, errTruncated(c.num)
	}
	if b := c.b[0]; b < 0x80 {
		c.b = c.b[1:]
		return uint64(b), nil
	}

	var x uint64
	for i := 0; ; i++ {
		if c.mode != ModeTrusted && i >= len(c.b) {
			return 0, errTruncated(c.num)
		}
		b := c.b[i]
		x |= uint64(b&0x7f) << (7 * uint(i))
		if b < 0x80 {
			c.b = c.b[i+1:]
			return x, nil
		}
	}
}

func (c *cursor) fixed32() (uint32, error) {
	if c.mode != ModeTrusted && len(c.b) < 4 {
		return 0, errTruncated(c.num)
	}
	v := binary.LittleEndian.Uint32(c.b)
	c.b = c.b[4:]
	return v, nil
}

func (c *cursor) fixed64() (uint64, error) {
	if c.mode != ModeTrusted && len(c.b) < 8 {
		return 0, errTruncated(c.num)
	}
	v := binary.LittleEndian.Uint64(c.b)
	c.b = c.b[8:]
	return v, nil
}

// lengthDelimited consumes a varint length followed by that many bytes,
// returning the interior as a subrange of the backing buffer.
func (c *cursor) lengthDelimited() ([]byte, error) {
	n, err := c.varint()
	if err != nil {
		return nil, err
	}
	if c.mode != ModeTrusted && n > uint64(len(c.b)) {
		return nil, errTruncated(c.num)
	}
	v := c.b[:n]
	c.b = c.b[n:]
	return v, nil
}

// tag consumes the next field tag. ok is false when no fields remain, which
// is distinct from a decode failure and is how iteration terminates. A zero
// tag also terminates: field numbers are positive.
func (c *cursor) tag() (protowire.Number, protowire.Type, bool, error) {
	if c.empty() {
		return 0, 0, false, nil
	}
	v, err := c.varint()
	if err != nil {
		return 0, 0, false, err
	}
	num, wt := protowire.DecodeTag(v)
	if num == 0 {
		return 0, 0, false, nil
	}
	c.num = num
	return num, wt, true, nil
}

// skip advances past one value of the given wire type. Group wire types are
// decode errors; groups are not supported.
func (c *cursor) skip(wt protowire.Type) error {
	switch wt {
	case protowire.VarintType:
		_, err := c.varint()
		return err
	case protowire.Fixed32Type:
		if c.mode != ModeTrusted && len(c.b) < 4 {
			return errTruncated(c.num)
		}
		c.b = c.b[4:]
		return nil
	case protowire.Fixed64Type:
		if c.mode != ModeTrusted && len(c.b) < 8 {
			return errTruncated(c.num)
		}
		c.b = c.b[8:]
		return nil
	case protowire.BytesType:
		_, err := c.lengthDelimited()
		return err
	default:
		return errGroup(c.num)
	}
}
