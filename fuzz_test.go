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

	pbview "github.com/mrpi/pbview-go"
)

// FuzzRead feeds arbitrary bytes to the checked modes. Whatever the input,
// reads must come back with a value or an error, never a panic or an
// out-of-range access.
func FuzzRead(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x08, 0x96, 0x01})
	f.Add([]byte{0x12, 0x07, 0x74, 0x65, 0x73, 0x74, 0x69, 0x6E, 0x67})
	f.Add([]byte{0x1A, 0x03, 0x02, 0x03, 0x06})
	f.Add([]byte{0x22, 0x05, 0x08, 0x2A, 0x12, 0x01, 0x78})
	f.Add([]byte{0x08, 0x01, 0x08, 0x02})
	f.Add([]byte{0x22, 0x05, 0x08, 0x2A, 0x12, 0x01})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, mode := range []pbview.Mode{pbview.ModePermissive, pbview.ModeStrict} {
			v := pbview.New(data, pbview.WithMode(mode))

			_, _ = pbview.Has(v, 1)
			_, _, _ = pbview.Get(v, 1, pbview.Int32)
			_, _, _ = pbview.Get(v, 2, pbview.String)
			_, _, _ = pbview.Get(v, 4, pbview.Double)

			if sub, ok, err := pbview.Get(v, 4, pbview.Message); err == nil && ok {
				_, _, _ = pbview.Get(sub, 2, pbview.String)
			}

			r := pbview.GetRepeated(v, 3, pbview.Uint64)
			for r.Next() {
			}
			p := pbview.GetPackedRepeated(v, 3, pbview.Sint32)
			for p.Next() {
			}
		}
	})
}
