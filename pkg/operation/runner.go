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
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type runIDKey struct{}

// RunIDFromContext returns the id the runner assigned, or "" outside a run.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes an operation with a fresh run id in its context
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	runID := uuid.NewString()

	logger := r.logger.With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, runIDKey{}, runID)

	start := time.Now()
	logger.Debug().Msg("starting operation")

	err := op.Execute(ctx)

	ev := logger.Debug()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Dur("took", time.Since(start)).Msg("operation finished")

	return err
}
