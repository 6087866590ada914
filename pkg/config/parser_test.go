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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	// Save original parsers
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	// Reset parsers
	parsers = nil

	// Create mock parser
	mockParser := &struct {
		Parser
		canParse bool
	}{
		canParse: true,
	}

	// Test registration
	Register(mockParser)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Equal(t, mockParser, parsers[0], "registered parser should match")
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{
			name:     "default_json_file",
			filename: ".neatify.json",
			want:     &JSONParser{},
		},
		{
			name:     "upper_case_extension",
			filename: "NEATIFY.JSON",
			want:     &JSONParser{},
		},
		{
			name:     "yaml_file",
			filename: "neatify.yaml",
			want:     &YAMLParser{},
		},
		{
			name:     "yml_file",
			filename: "neatify.yml",
			want:     &YAMLParser{},
		},
		{
			name:     "hcl_file",
			filename: "neatify.hcl",
			want:     &HCLParser{},
		},
		{
			name:     "toml_file",
			filename: "neatify.toml",
			want:     &TOMLParser{},
		},
		{
			name:     "unknown_extension",
			filename: "neatify.txt",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

// 🧪 TestParsers checks every format decodes the same options and rejects unknown fields
func TestParsers(t *testing.T) {
	tests := []struct {
		name        string
		parser      Parser
		config      string
		wantErr     bool
		errContains string
	}{
		{
			name:   "json",
			parser: &JSONParser{},
			config: `{"indent": 2, "removeComments": true, "quoteStyle": "single", "ignore": ["vendor", "*.min.js"]}`,
		},
		{
			name:        "json_unknown_field",
			parser:      &JSONParser{},
			config:      `{"indent": 2, "tabs": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "json_wrong_type",
			parser:      &JSONParser{},
			config:      `{"indent": "two"}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:   "yaml",
			parser: &YAMLParser{},
			config: `
indent: 2
removeComments: true
quoteStyle: single
ignore:
  - vendor
  - "*.min.js"
`,
		},
		{
			name:        "yaml_unknown_field",
			parser:      &YAMLParser{},
			config:      "indent: 2\ntabs: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:   "hcl",
			parser: &HCLParser{},
			config: `
indent         = 2
removeComments = true
quoteStyle     = "single"
ignore         = ["vendor", "*.min.js"]
`,
		},
		{
			name:        "hcl_invalid_syntax",
			parser:      &HCLParser{},
			config:      "indent = \n",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_unknown_field",
			parser:      &HCLParser{},
			config:      "indent = 2\ntabs = true\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:   "toml",
			parser: &TOMLParser{},
			config: `
indent = 2
removeComments = true
quoteStyle = "single"
ignore = ["vendor", "*.min.js"]
`,
		},
		{
			name:        "toml_unknown_field",
			parser:      &TOMLParser{},
			config:      "indent = 2\ntabs = true\n",
			wantErr:     true,
			errContains: "unknown fields: tabs",
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg.Indent, "indent should be set")
			assert.Equal(t, 2, *cfg.Indent)
			assert.True(t, Enabled(cfg.RemoveComments), "removeComments should be set")
			assert.Nil(t, cfg.RemoveEmptyLines, "absent switches stay nil")
			assert.Nil(t, cfg.BracketSpacing, "absent switches stay nil")
			require.NotNil(t, cfg.QuoteStyle)
			assert.Equal(t, "single", *cfg.QuoteStyle)
			assert.Equal(t, []string{"vendor", "*.min.js"}, cfg.Ignore)
		})
	}
}

func TestYAMLEmptyDocument(t *testing.T) {
	cfg, err := (&YAMLParser{}).Parse(context.Background(), []byte(""))
	require.NoError(t, err)
	assert.Nil(t, cfg.Indent)
}
