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
	"google.golang.org/protobuf/proto"
)

// Materialize decodes a view's backing bytes into an owned message using
// the standard runtime. It is the bridge from lazy views to owned message
// trees, and the way to obtain the owned arm of a generated variant
// accessor: generated *Var types accept any message Materialize filled in.
func Materialize(v View, m proto.Message) error {
	return proto.Unmarshal(v.Bytes(), m)
}
