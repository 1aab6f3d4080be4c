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

package examplepb_test

import (
	"context"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	pbview "github.com/mrpi/pbview-go"
	"github.com/mrpi/pbview-go/internal/examples/examplepb"
)

// scope assembles wire bytes from protoscope source.
func scope(t *testing.T, src string) []byte {
	t.Helper()
	b, err := protoscope.NewScanner(src).Exec()
	require.NoError(t, err)
	return b
}

func TestSingularScalar(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView(scope(t, `1: 150`))

	v, ok, err := m.OptA()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(150), v)

	hasB, err := m.HasB()
	require.NoError(t, err)
	assert.False(t, hasB)

	n, err := m.CCount()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSingularString(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView(scope(t, `2: {"testing"}`))

	v, ok, err := m.OptB()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "testing", v)
}

func TestPackedZigZag(t *testing.T) {
	t.Parallel()

	// 1A 03 02 03 06: field 3, length 3, zigzag-encoded [1, -2, 3].
	m := examplepb.NewMsgMainView([]byte{0x1A, 0x03, 0x02, 0x03, 0x06})

	var got []int32
	c := m.C()
	for v := range c.All() {
		got = append(got, v)
	}
	require.NoError(t, c.Err())
	assert.Equal(t, []int32{1, -2, 3}, got)

	n, err := m.CCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v, ok, err := m.CAt(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(-2), v)
}

func TestSubmessage(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView(scope(t, `4: {1: 42 2: {"x"}}`))

	d, err := m.D()
	require.NoError(t, err)

	id, ok, err := d.OptId()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(42), id)

	v, ok, err := d.OptV()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestDuplicateFieldPolicy(t *testing.T) {
	t.Parallel()

	// Field 1 set twice: first to 1, then to 2.
	data := []byte{0x08, 0x01, 0x08, 0x02}

	v, ok, err := examplepb.NewMsgMainView(data).OptA()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(1), v, "permissive mode reads the first occurrence")

	v, ok, err = examplepb.NewMsgMainView(data, pbview.WithMode(pbview.ModeStrict)).OptA()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(2), v, "strict mode reads the last occurrence")
}

func TestTruncatedSubmessage(t *testing.T) {
	t.Parallel()

	// The submessage from TestSubmessage, one byte short of its declared
	// length.
	data := []byte{0x22, 0x05, 0x08, 0x2A, 0x12, 0x01}

	for _, mode := range []pbview.Mode{pbview.ModePermissive, pbview.ModeStrict} {
		m := examplepb.NewMsgMainView(data, pbview.WithMode(mode))
		_, _, err := m.OptD()
		assert.ErrorIs(t, err, pbview.ErrTruncated)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView(nil)

	for _, has := range []func() (bool, error){m.HasA, m.HasB, m.HasD, m.HasCond, m.HasFlag} {
		ok, err := has()
		require.NoError(t, err)
		assert.False(t, ok)
	}

	a, err := m.A()
	require.NoError(t, err)
	assert.Zero(t, a)

	b, err := m.B()
	require.NoError(t, err)
	assert.Equal(t, "fallback", b)

	cond, err := m.Cond()
	require.NoError(t, err)
	assert.Equal(t, examplepb.Condition_CONDITION_UNSPECIFIED, cond)

	// An absent submessage reads as a view over no bytes, not as the owned
	// runtime's default instance.
	d, err := m.D()
	require.NoError(t, err)
	ok, err := d.HasId()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyStringPresent(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView([]byte{0x12, 0x00})

	ok, err := m.HasB()
	require.NoError(t, err)
	assert.True(t, ok)

	v, ok, err := m.OptB()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestAccessorAgreement(t *testing.T) {
	t.Parallel()

	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	negSeven := int32(-7)
	data = protowire.AppendVarint(data, uint64(uint32(negSeven)))
	data = protowire.AppendTag(data, 7, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, 8, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, 0xDEADBEEF)

	m := examplepb.NewMsgMainView(data)

	ok, err := m.HasA()
	require.NoError(t, err)
	opt, optOK, err := m.OptA()
	require.NoError(t, err)
	assert.Equal(t, ok, optOK)
	plain, err := m.A()
	require.NoError(t, err)
	assert.Equal(t, opt, plain)
	assert.Equal(t, int32(-7), plain)

	f64, err := m.F64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), f64)

	flag, err := m.Flag()
	require.NoError(t, err)
	assert.True(t, flag)

	// Absent field: the plain accessor falls back to the schema default.
	hasB, err := m.HasB()
	require.NoError(t, err)
	assert.False(t, hasB)
	b, err := m.B()
	require.NoError(t, err)
	assert.Equal(t, "fallback", b)
}

func TestRepeatedStrings(t *testing.T) {
	t.Parallel()

	m := examplepb.NewMsgMainView(scope(t, `6: {"ada"} 6: {"bob"} 6: {"cyd"}`))

	var got []string
	c := m.Names()
	for v := range c.All() {
		got = append(got, v)
	}
	require.NoError(t, c.Err())
	assert.Equal(t, []string{"ada", "bob", "cyd"}, got)

	v, ok, err := m.NamesAt(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cyd", v)

	_, ok, err = m.NamesAt(3)
	require.NoError(t, err)
	assert.False(t, ok)
}

// compileExample compiles example.proto at test time, for building owned
// messages without any gencode dependency.
func compileExample(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: []string{"."},
		}),
	}
	fds, err := compiler.Compile(context.Background(), "example.proto")
	require.NoError(t, err)
	require.Len(t, fds, 1)
	return fds[0]
}

func TestVariantDispatchTransparency(t *testing.T) {
	t.Parallel()

	data := scope(t, `1: 150 2: {"testing"} 4: {1: 42 2: {"x"}} 7: true`)

	fd := compileExample(t)
	owned := dynamicpb.NewMessage(fd.Messages().ByName("MsgMain"))
	require.NoError(t, proto.Unmarshal(data, owned))

	arms := map[string]examplepb.MsgMainVar{
		"view":  examplepb.MsgMainVarOfView(examplepb.NewMsgMainView(data)),
		"owned": examplepb.MsgMainVarOfOwned(owned),
	}

	for name, arm := range arms {
		t.Run(name, func(t *testing.T) {
			a, err := arm.A()
			require.NoError(t, err)
			assert.Equal(t, int32(150), a)

			b, ok, err := arm.OptB()
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "testing", b)

			ok, err = arm.HasCond()
			require.NoError(t, err)
			assert.False(t, ok)

			cond, err := arm.Cond()
			require.NoError(t, err)
			assert.Equal(t, examplepb.Condition_CONDITION_UNSPECIFIED, cond)

			flag, err := arm.Flag()
			require.NoError(t, err)
			assert.True(t, flag)

			// Composition descends into submessages without caring which
			// arm backs each level.
			d, err := arm.D()
			require.NoError(t, err)
			id, ok, err := d.OptId()
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, int32(42), id)
			v, err := d.V()
			require.NoError(t, err)
			assert.Equal(t, "x", v)
		})
	}
}

func TestVariantMaterializeBridge(t *testing.T) {
	t.Parallel()

	data := scope(t, `1: 150 2: {"testing"}`)

	fd := compileExample(t)
	owned := dynamicpb.NewMessage(fd.Messages().ByName("MsgMain"))
	require.NoError(t, pbview.Materialize(pbview.New(data), owned))

	arm := examplepb.MsgMainVarOfOwned(owned)
	b, err := arm.B()
	require.NoError(t, err)
	assert.Equal(t, "testing", b)
}
