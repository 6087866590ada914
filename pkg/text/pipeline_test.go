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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/neatify/pkg/catalog"
)

// idempotenceCorpus exercises quoting, braces, indentation and whitespace edge cases
var idempotenceCorpus = []string{
	"",
	"\n",
	"a",
	"a\n",
	"a\n\n  \nb",
	"# hello\nx = 1 # hello\n",
	"a  \nb\t\n",
	"a\r\nb\r\n",
	"{x}",
	"{{x}}",
	"{}",
	"{ x}",
	"a{b}c{d",
	"say 'hi'",
	`say "hi"`,
	`'a"b' "c'd"`,
	`'it\'s' "don't"`,
	`'a\"b'`,
	`\'x' 'y`,
	"    a\n}",
	"x\n   y\n",
	"if x {\n\ty\n\t\tz\n\t}\n}",
	"a\n    b\nc\n  ]\n)",
	"function f() {\n    return 'x';\n}\n",
}

func TestStagesIdempotent(t *testing.T) {
	stages := []Stage{
		NewCommentRemover(),
		NewEmptyLineRemover(),
		NewTrailingSpaceTrimmer(),
		NewBracketSpacer(),
		NewQuoteStyler(QuoteDouble),
		NewQuoteStyler(QuoteSingle),
		NewIndenter(2),
		NewIndenter(4),
	}

	for _, stage := range stages {
		for _, input := range idempotenceCorpus {
			once, _ := stage.Apply(input, catalog.File{})
			twice, file := stage.Apply(once, catalog.File{})
			assert.Equal(t, once, twice, "%s should be idempotent on %q", stage.Name(), input)
			assert.False(t, file.IsModified, "%s should not report a change on its own output for %q", stage.Name(), input)
		}
	}
}

func TestPipelineRun(t *testing.T) {
	tests := []struct {
		name         string
		stages       []Stage
		content      string
		want         string
		wantChanged  []string
		wantModified bool
	}{
		{
			name:         "no_stages",
			content:      "a  \n\n",
			want:         "a  \n\n",
			wantModified: false,
		},
		{
			name:         "comments_then_empty_lines",
			stages:       []Stage{NewCommentRemover(), NewEmptyLineRemover()},
			content:      "a\n# gone\n\nb\n",
			want:         "a\nb",
			wantChanged:  []string{"remove-comments", "remove-empty-lines"},
			wantModified: true,
		},
		{
			name:         "only_terminator_added",
			stages:       []Stage{NewTrailingSpaceTrimmer()},
			content:      "a",
			want:         "a\n",
			wantModified: false,
		},
		{
			name:         "all_stages",
			stages:       []Stage{NewCommentRemover(), NewEmptyLineRemover(), NewTrailingSpaceTrimmer(), NewBracketSpacer(), NewQuoteStyler(QuoteDouble), NewIndenter(2)},
			content:      "// header\nfunction greet(name) {\n    const msg = 'hello';   \n    \n    return {name};\n}\n",
			want:         "function greet(name) {\n    const msg = \"hello\";\n    return { name };\n}",
			wantChanged:  []string{"remove-comments", "remove-empty-lines", "remove-trailing-spaces", "bracket-spacing", "quote-style"},
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(tt.stages...)
			result := pipeline.Run(tt.content, catalog.File{Name: "test.js", Path: "dir/test.js"})

			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.OriginalContent, "original content should be kept")
			assert.Equal(t, tt.want, result.ModifiedContent, "content should match")
			assert.Equal(t, tt.wantChanged, result.Changed, "changed stages should match")
			assert.Equal(t, tt.wantModified, result.File.IsModified, "modified flag should match")
			assert.Equal(t, "dir/test.js", result.File.Path, "path should never change")
		})
	}
}

func TestPipelineRerunKeepsContent(t *testing.T) {
	pipeline := NewPipeline(NewCommentRemover(), NewEmptyLineRemover(), NewTrailingSpaceTrimmer(), NewBracketSpacer(), NewQuoteStyler(QuoteDouble), NewIndenter(2))

	for _, input := range idempotenceCorpus {
		first := pipeline.Run(input, catalog.File{})
		second := pipeline.Run(first.ModifiedContent, catalog.File{})
		assert.Equal(t, first.ModifiedContent, second.ModifiedContent, "rerun should not change %q", input)
	}
}
