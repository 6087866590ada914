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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/neatify/cmd/neatify/opts"
	"github.com/walteh/neatify/pkg/config"
	"github.com/walteh/neatify/pkg/log"
	"github.com/walteh/neatify/pkg/operation"
	"github.com/walteh/neatify/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// LoadConfig loads the config named by the options, searching the working
// tree for .neatify.json when none is given.
func LoadConfig(ctx context.Context, o *opts.RootOpts) (*config.Config, error) {
	path := o.ConfigFile
	if path == "" {
		found, err := config.Find(ctx, ".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if o.Path != "" {
		cfg.Path = o.Path
	}

	return cfg, nil
}

// RunNeatify loads the config and rewrites every file under its root.
func RunNeatify(ctx context.Context, o *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	cfg, err := LoadConfig(ctx, o)
	if err != nil {
		return err
	}

	console := log.FromContext(ctx)
	console.Header("config " + cfg.Location())
	logger.Debug().Str("config", cfg.String()).Msg("loaded config")

	statusMgr := status.New(logger)

	op, err := operation.NewNeatifyOperation(operation.Options{
		Config:   cfg,
		Files:    statusMgr,
		Reporter: statusMgr,
		Logger:   console,
		Check:    o.Check,
	})
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	return operation.NewRunner(logger).Run(ctx, op)
}
