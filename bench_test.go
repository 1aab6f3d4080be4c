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

package pbview_test

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	pbview "github.com/mrpi/pbview-go"
)

// benchMessage builds a message with a mix of field shapes: a leading
// scalar, a mid-message string, trailing repeated values.
func benchMessage() []byte {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 150)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendString(data, "the quick brown fox")
	for i := range 64 {
		data = protowire.AppendTag(data, 3, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(i))
	}
	return data
}

func BenchmarkGetFirstField(b *testing.B) {
	data := benchMessage()
	for _, tc := range []struct {
		name string
		mode pbview.Mode
	}{
		{"permissive", pbview.ModePermissive},
		{"strict", pbview.ModeStrict},
		{"trusted", pbview.ModeTrusted},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			v := pbview.New(data, pbview.WithMode(tc.mode))
			for range b.N {
				_, _, _ = pbview.Get(v, 1, pbview.Int32)
			}
		})
	}
}

func BenchmarkGetString(b *testing.B) {
	data := benchMessage()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	v := pbview.New(data)
	for range b.N {
		_, _, _ = pbview.Get(v, 2, pbview.String)
	}
}

func BenchmarkRepeated(b *testing.B) {
	data := benchMessage()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	v := pbview.New(data)
	for range b.N {
		r := pbview.GetRepeated(v, 3, pbview.Uint64)
		for r.Next() {
		}
	}
}
