// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"strings"

	"github.com/walteh/neatify/pkg/catalog"
)

// 📐 Indenter re-levels leading whitespace to Size spaces per inferred depth.
//
// Depth is inferred, not parsed. A line deeper than the tracked depth raises
// it. A line opening with "}", "]" or ")" lowers it to the line's own depth.
// Any other shallower line keeps the tracked depth, so this only ever corrects
// forward. Blank lines are emitted empty and leave the depth alone. The last
// line has no terminator.
type Indenter struct {
	Size int
}

// NewIndenter creates an indentation stage using size spaces per level.
func NewIndenter(size int) *Indenter {
	return &Indenter{Size: size}
}

func (in *Indenter) Name() string {
	return "indent"
}

func (in *Indenter) Apply(content string, file catalog.File) (string, catalog.File) {
	if in.Size <= 0 {
		return content, file
	}

	lines := splitLines(content)
	out := make([]string, len(lines))
	depth := 0
	changed := false

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			changed = changed || line != ""
			continue
		}

		body := strings.TrimLeft(line, " \t")
		own := leadingWidth(line, in.Size) / in.Size

		if isCloser(body) && own < depth {
			depth = own
		}
		if own > depth {
			depth = own
		}

		out[i] = strings.Repeat(" ", in.Size*depth) + body
		changed = changed || out[i] != line
	}

	return strings.Join(out, "\n"), file.MarkModified(changed)
}

// leadingWidth counts leading spaces as one column and tabs as a full level.
func leadingWidth(line string, size int) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += size
		default:
			return width
		}
	}
	return width
}

func isCloser(body string) bool {
	return strings.HasPrefix(body, "}") || strings.HasPrefix(body, "]") || strings.HasPrefix(body, ")")
}
