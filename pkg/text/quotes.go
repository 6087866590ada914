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
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidQuoteStyle is returned for a quote style other than single or double.
var ErrInvalidQuoteStyle = errors.Base("invalid quote style")

// 🎯 QuoteStyle selects the canonical quote delimiter
type QuoteStyle string

const (
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
)

// ParseQuoteStyle parses "single" or "double", ignoring case.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch {
	case strings.EqualFold(s, string(QuoteSingle)):
		return QuoteSingle, nil
	case strings.EqualFold(s, string(QuoteDouble)):
		return QuoteDouble, nil
	default:
		return "", errors.Errorf("%w: %q (want \"single\" or \"double\")", ErrInvalidQuoteStyle, s)
	}
}

// delimiters returns the delimiter to produce and the one to convert.
func (q QuoteStyle) delimiters() (target, source rune) {
	if q == QuoteSingle {
		return '\'', '"'
	}
	return '"', '\''
}

// 💱 QuoteStyler rewrites quote delimiters to one style, line by line.
//
// Every delimiter of the other style is rewritten to the target style, even
// one sitting inside a region the target style opened. Delimiters already in
// the target style pass through untouched, and nothing is escaped. Lines are
// handled independently. The last line feed is not re-emitted.
type QuoteStyler struct {
	Style QuoteStyle
}

// NewQuoteStyler creates a stage converting quotes to style.
func NewQuoteStyler(style QuoteStyle) *QuoteStyler {
	return &QuoteStyler{Style: style}
}

func (q *QuoteStyler) Name() string {
	return "quote-style"
}

func (q *QuoteStyler) Apply(content string, file catalog.File) (string, catalog.File) {
	target, source := q.Style.delimiters()

	var b strings.Builder
	changed := false

	for _, line := range splitLines(content) {
		fixed, lineChanged := convertQuotes(line, target, source)
		changed = changed || lineChanged
		b.WriteString(fixed)
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n"), file.MarkModified(changed)
}

func convertQuotes(line string, target, source rune) (string, bool) {
	if !strings.ContainsRune(line, source) {
		return line, false
	}

	var b strings.Builder
	b.Grow(len(line))

	for _, r := range line {
		if r == source {
			r = target
		}
		b.WriteRune(r)
	}

	return b.String(), true
}
