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
	"regexp"
	"strings"

	"github.com/walteh/neatify/pkg/catalog"
)

// commentPattern is anchored: only lines that start with a marker are comments.
const commentPattern = `^(//|@|#|--)`

// 💬 CommentRemover drops whole lines that start with a comment marker.
//
// It is a prefix heuristic, not a tokenizer: a marker inside a string literal
// at the start of a line is still treated as a comment, and trailing comments
// are kept. Every kept line is re-terminated with a line feed, including the last.
type CommentRemover struct {
	pattern *regexp.Regexp
}

// NewCommentRemover creates a CommentRemover with its own compiled matcher.
func NewCommentRemover() *CommentRemover {
	return &CommentRemover{
		pattern: regexp.MustCompile(commentPattern),
	}
}

func (r *CommentRemover) Name() string {
	return "remove-comments"
}

func (r *CommentRemover) Apply(content string, file catalog.File) (string, catalog.File) {
	var b strings.Builder
	dropped := false

	for _, line := range splitLines(content) {
		if r.IsComment(line) {
			dropped = true
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), file.MarkModified(dropped)
}

// IsComment reports whether line, once trimmed, starts with a comment marker.
func (r *CommentRemover) IsComment(line string) bool {
	return r.pattern.MatchString(strings.TrimSpace(line))
}
