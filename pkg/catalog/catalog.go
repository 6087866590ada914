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

// Package catalog discovers the regular files a neatify run will process.
package catalog

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNoFiles is returned when a walk yields nothing to process. A missing root
// surfaces the same way.
var ErrNoFiles = errors.Base("no files found")

// 📄 File describes one discovered regular file
type File struct {
	Name       string // Base file name
	Path       string // Slash-separated path, identity for read and write
	Size       uint64 // Byte length at discovery time, never refreshed
	Extension  string // Suffix without the dot, may be empty
	IsModified bool   // Set once any stage changed the content
}

// MarkModified returns a copy of f with changed OR'd into IsModified.
func (f File) MarkModified(changed bool) File {
	f.IsModified = f.IsModified || changed
	return f
}

// 🔧 Options controls which entries a walk yields
type Options struct {
	Ignore           []string // Base names (or glob patterns) to skip entirely
	RespectGitignore bool     // Also skip entries matched by <root>/.gitignore
}

// 🔍 Walk recursively enumerates the regular files under root in lexical order.
//
// Entries matched by the ignore set are neither yielded nor descended into.
// Entries that cannot be read are skipped without failing the walk.
func Walk(ctx context.Context, root string, opts Options) ([]File, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Strs("ignore", opts.Ignore).Msg("walking directory")

	matcher := newIgnoreMatcher(ctx, root, opts)

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}

		if path != root && matcher.Match(path, d) {
			logger.Debug().Str("path", path).Msg("skipping ignored entry")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping entry without metadata")
			return nil
		}

		files = append(files, newFile(path, d.Name(), info.Size()))
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("%w under %s", ErrNoFiles, root)
	}

	logger.Debug().Int("count", len(files)).Msg("walk complete")
	return files, nil
}

func newFile(path, name string, size int64) File {
	return File{
		Name:      name,
		Path:      filepath.ToSlash(path),
		Size:      uint64(size),
		Extension: extension(name),
	}
}

// extension mirrors dotfile semantics: ".gitignore" has no extension.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
