package config

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFileName is the config file looked up when none is given.
const DefaultFileName = ".neatify.json"

var ErrConfigNotFound = errors.Base("config file not found")

// 🔍 Find walks dir in lexical order and returns the first file named
// DefaultFileName. Unreadable entries are skipped.
func Find(ctx context.Context, dir string) (string, error) {
	logger := zerolog.Ctx(ctx)

	found := ""
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == DefaultFileName && d.Type().IsRegular() {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", errors.Errorf("searching for %s: %w", DefaultFileName, err)
	}

	if found == "" {
		return "", errors.Errorf("%w: no %s under %s", ErrConfigNotFound, DefaultFileName, dir)
	}

	logger.Debug().Str("path", found).Msg("found config file")
	return found, nil
}
