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

// Package pbview reads Protobuf wire-format messages without decoding them
// up front. A [View] borrows a caller-owned byte slice and decodes
// individual fields only when they are asked for; nothing is allocated or
// copied ahead of time, and string and bytes results alias the input.
//
// Fields are addressed by number through the generic accessors [Get],
// [GetRepeated] and [GetPackedRepeated], instantiated with a declared type
// such as [Int32], [Sint64] or [String] that fixes both the produced Go
// value and the expected wire encoding. The pbviewc command generates typed
// accessor surfaces per message on top of these, so most callers never
// spell out field numbers or declared types themselves.
//
// # Parser modes
//
// A view carries one of three parser modes. [ModePermissive], the default,
// bounds-checks everything and is tuned for input written by standard
// encoders: it resolves duplicated non-repeated fields to the first
// occurrence and stops scanning once it passes the target field number.
// [ModeStrict] matches the official parsers on any input, at the cost of
// always scanning to the end of the message. [ModeTrusted] elides every
// check and must only be given input from a trusted encoder.
//
// # Support Status
//
// This package reads; it never writes. Extensions, maps, oneofs and groups
// are not supported, and there is no runtime reflection surface. For an
// owned, mutable message tree, see [Materialize].
package pbview
