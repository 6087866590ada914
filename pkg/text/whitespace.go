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

// 🧹 EmptyLineRemover keeps only lines with visible content, joined by line
// feeds with no terminator after the last one
type EmptyLineRemover struct{}

// NewEmptyLineRemover creates the empty line stage.
func NewEmptyLineRemover() *EmptyLineRemover {
	return &EmptyLineRemover{}
}

func (r *EmptyLineRemover) Name() string {
	return "remove-empty-lines"
}

func (r *EmptyLineRemover) Apply(content string, file catalog.File) (string, catalog.File) {
	lines := splitLines(content)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}

	out := strings.Join(kept, "\n")
	return out, file.MarkModified(out != content)
}

// ✂️ TrailingSpaceTrimmer right-trims every line and terminates each one,
// including the last, with a line feed
type TrailingSpaceTrimmer struct{}

// NewTrailingSpaceTrimmer creates the trailing space stage.
func NewTrailingSpaceTrimmer() *TrailingSpaceTrimmer {
	return &TrailingSpaceTrimmer{}
}

func (t *TrailingSpaceTrimmer) Name() string {
	return "remove-trailing-spaces"
}

func (t *TrailingSpaceTrimmer) Apply(content string, file catalog.File) (string, catalog.File) {
	var b strings.Builder
	changed := false

	for _, line := range splitLines(content) {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if trimmed != line {
			changed = true
		}
		b.WriteString(trimmed)
		b.WriteByte('\n')
	}

	return b.String(), file.MarkModified(changed)
}
