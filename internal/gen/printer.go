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

package gen

import (
	"bytes"
	"fmt"
	"go/format"
)

// printer accumulates emitted Go source. Indentation is left to gofmt; the
// emitters only care about getting the tokens right.
type printer struct {
	buf bytes.Buffer
}

// P writes its arguments followed by a newline.
func (p *printer) P(args ...any) {
	for _, a := range args {
		fmt.Fprint(&p.buf, a)
	}
	p.buf.WriteByte('\n')
}

// Pf writes one formatted line.
func (p *printer) Pf(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// source returns the accumulated file, run through gofmt. A formatting
// failure means the emitter produced invalid Go and is reported as such.
func (p *printer) source() ([]byte, error) {
	out, err := format.Source(p.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emitted source does not parse: %w", err)
	}
	return out, nil
}
