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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestVarint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []byte
		want  uint64
		rest  int
		isErr bool
	}{
		{name: "zero", in: []byte{0x00}, want: 0},
		{name: "one byte", in: []byte{0x7F}, want: 0x7F},
		{name: "two bytes", in: []byte{0x96, 0x01}, want: 150},
		{name: "max uint64", in: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, want: ^uint64(0)},
		{name: "overlong zero", in: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, want: 0},
		{name: "trailing payload bytes tolerated", in: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, want: 0},
		{name: "trailer", in: []byte{0x01, 0xAA}, want: 1, rest: 1},
		{name: "empty", in: nil, isErr: true},
		{name: "unterminated", in: []byte{0x80, 0x80}, isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := cursor{b: tt.in}
			got, err := c.varint()
			if tt.isErr {
				assert.ErrorIs(t, err, ErrTruncated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, c.b, tt.rest)
		})
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	c := cursor{b: []byte{0x78, 0x56, 0x34, 0x12}}
	v32, err := c.fixed32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v32)
	assert.True(t, c.empty())

	c = cursor{b: []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}}
	v64, err := c.fixed64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789ABCDEF), v64)

	c = cursor{b: []byte{0x01, 0x02, 0x03}}
	_, err = c.fixed32()
	assert.ErrorIs(t, err, ErrTruncated)

	c = cursor{b: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}}
	_, err = c.fixed64()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestLengthDelimited(t *testing.T) {
	t.Parallel()

	c := cursor{b: []byte{0x03, 'a', 'b', 'c', 0xFF}}
	v, err := c.lengthDelimited()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{0x00, 0xFF}}
	v, err = c.lengthDelimited()
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{0x05, 'a', 'b'}}
	_, err = c.lengthDelimited()
	assert.ErrorIs(t, err, ErrTruncated)

	c = cursor{b: nil}
	_, err = c.lengthDelimited()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestTag(t *testing.T) {
	t.Parallel()

	c := cursor{b: []byte{0x08, 0x96, 0x01}}
	num, wt, ok, err := c.tag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, protowire.Number(1), num)
	assert.Equal(t, protowire.VarintType, wt)

	// An empty cursor signals the end of iteration, not an error.
	c = cursor{b: nil}
	_, _, ok, err = c.tag()
	require.NoError(t, err)
	assert.False(t, ok)

	// A zero tag terminates as well: field numbers are positive.
	c = cursor{b: []byte{0x00, 0x08, 0x01}}
	_, _, ok, err = c.tag()
	require.NoError(t, err)
	assert.False(t, ok)

	c = cursor{b: []byte{0x80}}
	_, _, _, err = c.tag()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSkip(t *testing.T) {
	t.Parallel()

	c := cursor{b: []byte{0x96, 0x01, 0xAA}}
	require.NoError(t, c.skip(protowire.VarintType))
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{1, 2, 3, 4, 0xAA}}
	require.NoError(t, c.skip(protowire.Fixed32Type))
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{1, 2, 3, 4, 5, 6, 7, 8, 0xAA}}
	require.NoError(t, c.skip(protowire.Fixed64Type))
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{0x02, 'h', 'i', 0xAA}}
	require.NoError(t, c.skip(protowire.BytesType))
	assert.Len(t, c.b, 1)

	c = cursor{b: []byte{0x01}}
	assert.ErrorIs(t, c.skip(protowire.StartGroupType), ErrUnsupportedWireType)
	assert.ErrorIs(t, c.skip(protowire.EndGroupType), ErrUnsupportedWireType)

	c = cursor{b: []byte{1, 2}}
	assert.ErrorIs(t, c.skip(protowire.Fixed32Type), ErrTruncated)
}

func TestSeekNextEarlyExit(t *testing.T) {
	t.Parallel()

	// Fields 2 and 3 in ascending order; field 1 is absent.
	var data []byte
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)
	data = protowire.AppendTag(data, 3, protowire.VarintType)
	data = protowire.AppendVarint(data, 8)

	// Permissive gives up at field 2's tag without consuming it.
	c := cursor{b: data, mode: ModePermissive}
	_, ok, err := seekNext(&c, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, c.b, len(data))

	// Strict scans to the end.
	c = cursor{b: data, mode: ModeStrict}
	_, ok, err = seekNext(&c, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, c.empty())
}

func TestSeekFinal(t *testing.T) {
	t.Parallel()

	// Field 1 twice, with an unrelated field in between.
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte("skipped"))
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 2)

	c := cursor{b: data, mode: ModeStrict}
	wt, ok, err := seekFinal(&c, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, protowire.VarintType, wt)
	v, err := c.varint()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	c = cursor{b: data, mode: ModePermissive}
	_, ok, err = seekFinal(&c, 1)
	require.NoError(t, err)
	require.True(t, ok)
	v, err = c.varint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}
