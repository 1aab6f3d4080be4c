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

	"github.com/mrpi/pbview-go/internal/debug"
)

// seekNext advances c until a tag for num has been consumed, returning the
// wire type that tag carried. Fields in between are skipped.
//
// Outside [ModeStrict], a tag with a field number beyond num ends the search
// without consuming that tag: standard encoders emit fields in ascending
// field-number order, so nothing after it can match.
// https://protobuf.dev/programming-guides/encoding/#order
func seekNext(c *cursor, num protowire.Number) (protowire.Type, bool, error) {
	for {
		prev := *c
		fieldNum, wt, ok, err := c.tag()
		if err != nil || !ok {
			return 0, false, err
		}
		if fieldNum == num {
			if debug.Enabled {
				debug.Logf("seek: hit field %d, wire type %d", num, wt)
			}
			return wt, true, nil
		}
		if c.mode != ModeStrict && fieldNum > num {
			*c = prev
			return 0, false, nil
		}
		if err := c.skip(wt); err != nil {
			return 0, false, err
		}
	}
}

// seekFinal resolves duplicated non-repeated fields the way a conforming
// parser must: the last occurrence wins, so the whole range is scanned and c
// ends up positioned just past the final tag for num. Outside [ModeStrict]
// the first occurrence wins and seekFinal is exactly seekNext.
func seekFinal(c *cursor, num protowire.Number) (protowire.Type, bool, error) {
	if c.mode != ModeStrict {
		return seekNext(c, num)
	}

	var (
		found bool
		last  cursor
		wt    protowire.Type
	)
	for {
		w, ok, err := seekNext(c, num)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			break
		}
		found, wt, last = true, w, *c
		if err := c.skip(w); err != nil {
			return 0, false, err
		}
	}
	if !found {
		return 0, false, nil
	}
	*c = last
	return wt, true, nil
}
