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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/neatify/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrConfigRead    = errors.Base("config read error")
	ErrConfigParse   = errors.Base("config parse error")
	ErrInvalidIndent = errors.Base("invalid indent")

	// ErrInvalidQuoteStyle is the same sentinel the text package returns.
	ErrInvalidQuoteStyle = text.ErrInvalidQuoteStyle
)

// MaxIndent is the largest accepted indent size.
const MaxIndent = 255

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes, rejecting unknown fields
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	return slices.Contains(exts, ext)
}

// 📚 Config is the snapshot of options a run is performed with.
// A nil field means the matching stage is not applied.
type Config struct {
	Indent               *int     `json:"indent,omitempty" yaml:"indent,omitempty" toml:"indent,omitempty" hcl:"indent,optional"`
	RemoveComments       *bool    `json:"removeComments,omitempty" yaml:"removeComments,omitempty" toml:"removeComments,omitempty" hcl:"removeComments,optional"`
	RemoveEmptyLines     *bool    `json:"removeEmptyLines,omitempty" yaml:"removeEmptyLines,omitempty" toml:"removeEmptyLines,omitempty" hcl:"removeEmptyLines,optional"`
	RemoveTrailingSpaces *bool    `json:"removeTrailingSpaces,omitempty" yaml:"removeTrailingSpaces,omitempty" toml:"removeTrailingSpaces,omitempty" hcl:"removeTrailingSpaces,optional"`
	QuoteStyle           *string  `json:"quoteStyle,omitempty" yaml:"quoteStyle,omitempty" toml:"quoteStyle,omitempty" hcl:"quoteStyle,optional"`
	BracketSpacing       *bool    `json:"bracketSpacing,omitempty" yaml:"bracketSpacing,omitempty" toml:"bracketSpacing,omitempty" hcl:"bracketSpacing,optional"`
	Ignore               []string `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty" hcl:"ignore,optional"`
	Path                 string   `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty" hcl:"path,optional"`

	FailFast         bool `json:"failFast,omitempty" yaml:"failFast,omitempty" toml:"failFast,omitempty" hcl:"failFast,optional"`
	RespectGitignore bool `json:"respectGitignore,omitempty" yaml:"respectGitignore,omitempty" toml:"respectGitignore,omitempty" hcl:"respectGitignore,optional"`

	location string
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Enabled reports whether an optional switch is present and true.
func Enabled(b *bool) bool {
	return b != nil && *b
}

// 🎯 Load reads, parses and validates the configuration at path.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrConfigRead, path, err.Error())
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: no parser found for file: %s", ErrConfigParse, path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrConfigParse, path, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	cfg.AddIgnore(filepath.Base(path))

	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks option ranges and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Indent != nil && (*cfg.Indent < 1 || *cfg.Indent > MaxIndent) {
		return errors.Errorf("%w: %d (want 1..%d)", ErrInvalidIndent, *cfg.Indent, MaxIndent)
	}

	if cfg.QuoteStyle != nil {
		if _, err := text.ParseQuoteStyle(*cfg.QuoteStyle); err != nil {
			return errors.Errorf("quoteStyle: %w", err)
		}
	}

	if cfg.Path == "" {
		cfg.Path = "."
	}

	return nil
}

// Quote returns the configured quote style, if any.
func (cfg *Config) Quote() (text.QuoteStyle, bool) {
	if cfg.QuoteStyle == nil {
		return "", false
	}
	style, err := text.ParseQuoteStyle(*cfg.QuoteStyle)
	if err != nil {
		return "", false
	}
	return style, true
}

// AddIgnore adds a file name to the ignore set unless it is already there.
func (cfg *Config) AddIgnore(name string) {
	if name == "" || slices.Contains(cfg.Ignore, name) {
		return
	}
	cfg.Ignore = append(cfg.Ignore, name)
}

// Location is the file the config was loaded from, empty when built in code.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	var parts []string
	if cfg.Indent != nil {
		parts = append(parts, fmt.Sprintf("indent=%d", *cfg.Indent))
	}
	if Enabled(cfg.RemoveComments) {
		parts = append(parts, "removeComments")
	}
	if Enabled(cfg.RemoveEmptyLines) {
		parts = append(parts, "removeEmptyLines")
	}
	if Enabled(cfg.RemoveTrailingSpaces) {
		parts = append(parts, "removeTrailingSpaces")
	}
	if Enabled(cfg.BracketSpacing) {
		parts = append(parts, "bracketSpacing")
	}
	if style, ok := cfg.Quote(); ok {
		parts = append(parts, fmt.Sprintf("quoteStyle=%s", style))
	}

	path := cfg.Path
	if path == "" {
		path = "."
	}
	return fmt.Sprintf("%s [%s]", path, strings.Join(parts, " "))
}
