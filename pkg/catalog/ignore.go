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

package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// 🙈 ignoreMatcher decides whether a walked entry is skipped
type ignoreMatcher struct {
	root     string
	names    map[string]struct{}
	patterns []string
	git      *ignore.GitIgnore
	logger   *zerolog.Logger
}

func newIgnoreMatcher(ctx context.Context, root string, opts Options) *ignoreMatcher {
	m := &ignoreMatcher{
		root:   root,
		names:  make(map[string]struct{}, len(opts.Ignore)),
		logger: zerolog.Ctx(ctx),
	}

	for _, name := range opts.Ignore {
		if name == "" {
			continue
		}
		m.names[name] = struct{}{}
		if strings.ContainsAny(name, "*?[{") {
			if !doublestar.ValidatePattern(name) {
				m.logger.Debug().Str("pattern", name).Msg("invalid ignore pattern, matching by name only")
				continue
			}
			m.patterns = append(m.patterns, name)
		}
	}

	if opts.RespectGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			g, err := ignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				m.logger.Warn().Str("path", gitignorePath).Err(err).Msg("could not parse .gitignore")
			} else {
				m.git = g
			}
		}
	}

	return m
}

// Match reports whether the entry at path should be skipped.
func (m *ignoreMatcher) Match(path string, d fs.DirEntry) bool {
	name := d.Name()
	if _, ok := m.names[name]; ok {
		return true
	}

	for _, pattern := range m.patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			m.logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}

	if m.git != nil {
		rel, err := filepath.Rel(m.root, path)
		if err == nil && m.git.MatchesPath(filepath.ToSlash(rel)) {
			return true
		}
	}

	return false
}
