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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/neatify/pkg/catalog"
	"github.com/walteh/neatify/pkg/config"
	"github.com/walteh/neatify/pkg/log"
	"github.com/walteh/neatify/pkg/status"
	"github.com/walteh/neatify/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrFilesFailed is returned when at least one file could not be read or written.
	ErrFilesFailed = errors.Base("files failed")
	// ErrChangesRequired is returned by check runs when a file would change.
	ErrChangesRequired = errors.Base("files need neatifying")
)

// 🧩 BuildPipeline returns the enabled stages in their fixed order:
// comments, empty lines, trailing spaces, bracket spacing, quote style, indentation.
func BuildPipeline(cfg *config.Config) *text.Pipeline {
	var stages []text.Stage

	if config.Enabled(cfg.RemoveComments) {
		stages = append(stages, text.NewCommentRemover())
	}
	if config.Enabled(cfg.RemoveEmptyLines) {
		stages = append(stages, text.NewEmptyLineRemover())
	}
	if config.Enabled(cfg.RemoveTrailingSpaces) {
		stages = append(stages, text.NewTrailingSpaceTrimmer())
	}
	if config.Enabled(cfg.BracketSpacing) {
		stages = append(stages, text.NewBracketSpacer())
	}
	if style, ok := cfg.Quote(); ok {
		stages = append(stages, text.NewQuoteStyler(style))
	}
	if cfg.Indent != nil && *cfg.Indent > 0 {
		stages = append(stages, text.NewIndenter(*cfg.Indent))
	}

	return text.NewPipeline(stages...)
}

// ✨ NewNeatifyOperation creates the operation that rewrites every discovered file
func NewNeatifyOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &neatifyOperation{
		BaseOperation: base,
		pipeline:      BuildPipeline(opts.Config),
	}, nil
}

// ✨ neatifyOperation implements the neatify operation
type neatifyOperation struct {
	BaseOperation
	pipeline *text.Pipeline
}

// 🏃 Execute discovers files under the configured root and runs the pipeline on each
func (op *neatifyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	root := op.Config.Path
	if root == "" {
		root = "."
	}

	files, err := catalog.Walk(ctx, root, catalog.Options{
		Ignore:           op.Config.Ignore,
		RespectGitignore: op.Config.RespectGitignore,
	})
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	if op.Logger != nil {
		op.Logger.StartRun(ctx, log.RunOperation{
			Root:  root,
			RunID: RunIDFromContext(ctx),
			Check: op.Check,
		})
		defer op.Logger.EndRun(ctx)
	}

	// Start tracking progress
	op.Reporter.StartOperation(ctx, len(files))
	defer op.Reporter.FinishOperation(ctx)

	failed, pending := 0, 0
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}

		info, err := op.processFile(ctx, file)
		op.Reporter.TrackFile(ctx, file.Path, info)
		if op.Logger != nil {
			op.Logger.LogFileOperation(ctx, info)
		}
		op.Reporter.UpdateProgress(ctx, i+1)

		if err != nil {
			failed++
			if op.Config.FailFast {
				return errors.Errorf("processing file %s: %w", file.Path, err)
			}
			logger.Debug().Str("path", file.Path).Err(err).Msg("continuing past failed file")
			continue
		}
		if info.Status == status.StatusPending {
			pending++
		}
	}

	if op.Logger != nil {
		op.Logger.Summary(ctx, op.Reporter.ListFiles(ctx))
	}

	if failed > 0 {
		return errors.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(files))
	}
	if pending > 0 {
		return errors.Errorf("%w: %d of %d", ErrChangesRequired, pending, len(files))
	}

	return nil
}

// 📄 processFile reads, transforms and persists one file
func (op *neatifyOperation) processFile(ctx context.Context, file catalog.File) (status.FileInfo, error) {
	logger := zerolog.Ctx(ctx)

	info := status.FileInfo{
		Path: file.Path,
		Size: file.Size,
	}

	content, err := op.Files.ReadFile(ctx, file)
	if err != nil {
		info.Status = status.StatusSkipped
		info.Error = err
		return info, errors.Errorf("reading file: %w", err)
	}

	result := op.pipeline.Run(content, file)
	info.IsModified = result.File.IsModified
	info.Stages = result.Changed

	logger.Debug().
		Str("path", file.Path).
		Strs("stages", result.Changed).
		Bool("is_modified", result.File.IsModified).
		Msg("pipeline finished")

	if !result.ContentChanged() {
		info.Status = status.StatusUnchanged
		return info, nil
	}

	if op.Check {
		info.Status = status.StatusPending
		return info, nil
	}

	if err := op.Files.WriteFile(ctx, file.Path, result.ModifiedContent); err != nil {
		info.Status = status.StatusFailed
		info.Error = err
		return info, errors.Errorf("writing file: %w", err)
	}

	info.Status = status.StatusModified
	return info, nil
}
