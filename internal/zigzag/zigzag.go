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

// Package zigzag decodes the zigzag encoding of signed integers.
package zigzag

import (
	"unsafe"

	"google.golang.org/protobuf/encoding/protowire"
)

// Integer is any fixed-width integer type a zigzag value decodes to.
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Decode decodes a zigzag-encoded value of any type.
//
// The input is masked to the width of T first, so sign extension from a
// prior narrowing conversion does not corrupt the result.
func Decode[T Integer](raw T) T {
	n := uint64(raw)
	n &= (1 << (unsafe.Sizeof(raw) * 8)) - 1

	return T(protowire.DecodeZigZag(n))
}

// Decode64 is a helper for calling zigzag with a raw 64-bit input.
func Decode64[T Integer](raw uint64) T {
	return Decode(T(raw))
}
