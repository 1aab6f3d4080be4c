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
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Sentinel decode failures. Every error returned by an accessor wraps one of
// these, so callers can classify failures with [errors.Is].
var (
	// ErrTruncated is returned when the input ends in the middle of a value.
	ErrTruncated = io.ErrUnexpectedEOF

	// ErrWireTypeMismatch is returned when a field's tag carries a wire type
	// that disagrees with the declared type it is read as.
	ErrWireTypeMismatch = errors.New("wire type does not match declared type")

	// ErrUnsupportedWireType is returned when a group wire type is
	// encountered. Groups are not supported.
	ErrUnsupportedWireType = errors.New("unsupported wire type")
)

const (
	errCodeOk errCode = iota
	errCodeTruncated
	errCodeWireTypeMismatch
	errCodeUnsupportedWireType
)

type errCode int

var errs = [...]error{
	errCodeOk:                  nil,
	errCodeTruncated:           ErrTruncated,
	errCodeWireTypeMismatch:    ErrWireTypeMismatch,
	errCodeUnsupportedWireType: ErrUnsupportedWireType,
}

// errDecode is an error produced while scanning a view's backing bytes.
type errDecode struct {
	code errCode
	num  protowire.Number
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *errDecode) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *errDecode) Error() string {
	if e.num == 0 {
		return fmt.Sprintf("pbview: %v", e.Unwrap())
	}
	return fmt.Sprintf("pbview: field %d: %v", e.num, e.Unwrap())
}

func errTruncated(num protowire.Number) error {
	return &errDecode{code: errCodeTruncated, num: num}
}

func errWireType(num protowire.Number) error {
	return &errDecode{code: errCodeWireTypeMismatch, num: num}
}

func errGroup(num protowire.Number) error {
	return &errDecode{code: errCodeUnsupportedWireType, num: num}
}
