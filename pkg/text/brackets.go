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
	"unicode"

	"github.com/walteh/neatify/pkg/catalog"
)

// 🔧 BracketSpacer pads the inside of single-line brace pairs: "{x}" becomes "{ x }".
//
// Pairing is a per-line toggle, not a nesting count. The first unmatched "{"
// opens a pair and the next "}" closes it; braces in between pass through, so
// "{{x}}" becomes "{ {x }}". Braces spanning lines are left alone. Line
// terminators are preserved exactly.
type BracketSpacer struct{}

// NewBracketSpacer creates the bracket spacing stage.
func NewBracketSpacer() *BracketSpacer {
	return &BracketSpacer{}
}

func (s *BracketSpacer) Name() string {
	return "bracket-spacing"
}

func (s *BracketSpacer) Apply(content string, file catalog.File) (string, catalog.File) {
	lines := strings.Split(content, "\n")
	changed := false

	for i, line := range lines {
		fixed, lineChanged := spaceBraces(line)
		if lineChanged {
			lines[i] = fixed
			changed = true
		}
	}

	return strings.Join(lines, "\n"), file.MarkModified(changed)
}

func spaceBraces(line string) (string, bool) {
	if !strings.ContainsAny(line, "{}") {
		return line, false
	}

	runes := []rune(line)
	var b strings.Builder
	b.Grow(len(line) + 4)

	inside := false
	changed := false
	var last rune

	for i, r := range runes {
		switch {
		case r == '{' && !inside:
			inside = true
			b.WriteRune(r)
			last = r
			// a "{" that ends the line opens a block, not a pair
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				b.WriteByte(' ')
				last = ' '
				changed = true
			}
			continue
		case r == '}' && inside:
			inside = false
			if !unicode.IsSpace(last) {
				b.WriteByte(' ')
				changed = true
			}
		}
		b.WriteRune(r)
		last = r
	}

	return b.String(), changed
}
