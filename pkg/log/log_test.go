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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/neatify/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:  "./src",
					RunID: "1234",
				})
			},
			wantLogs: []string{
				"[neatifying ./src]",
				"◆ 1234 • write",
			},
		},
		{
			name: "log_check_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:  ".",
					RunID: "abcd",
					Check: true,
				})
			},
			wantLogs: []string{
				"[neatifying .]",
				"◆ abcd • check",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("tidying source files")
			},
			wantLogs: []string{
				"neatify • tidying source files",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Disabled)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		info status.FileInfo
		want string
	}{
		{
			name: "modified_file",
			info: status.FileInfo{
				Path:       "src/main.go",
				Status:     status.StatusModified,
				IsModified: true,
				Stages:     []string{"remove-comments", "indent"},
			},
			want: "    ⟳ src/main.go                         modified   remove-comments, indent",
		},
		{
			name: "pending_file",
			info: status.FileInfo{
				Path:   "a.txt",
				Status: status.StatusPending,
				Stages: []string{"quote-style"},
			},
			want: "    ~ a.txt                               pending    quote-style",
		},
		{
			name: "skipped_file",
			info: status.FileInfo{
				Path:   "bin.dat",
				Status: status.StatusSkipped,
				Error:  errors.Errorf("%w: %s", status.ErrNotText, "bin.dat"),
			},
			want: "    - bin.dat                             skipped    not valid UTF-8 text: bin.dat",
		},
		{
			name: "failed_file",
			info: status.FileInfo{
				Path:   "ro.txt",
				Status: status.StatusFailed,
				Error:  errors.Errorf("%w: %s", status.ErrWriteTargetMissing, "ro.txt"),
			},
			want: "    ✗ ro.txt                              failed     write target no longer exists: ro.txt",
		},
		{
			name: "unchanged_file",
			info: status.FileInfo{
				Path:   "clean.txt",
				Status: status.StatusUnchanged,
			},
			want: "    • clean.txt                           unchanged ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			// Log operation
			logger.LogFileOperation(context.Background(), tt.info)

			// Check output
			output := strings.TrimSuffix(buf.String(), "\n")
			assert.Equal(t, tt.want, output, "formatted output should match")
		})
	}
}

func TestLoggerFiles(t *testing.T) {
	logger := New(io.Discard, zerolog.Disabled)
	ctx := context.Background()

	logger.StartRun(ctx, RunOperation{Root: ".", RunID: "1"})
	logger.LogFileOperation(ctx, status.FileInfo{Path: "a.txt", Status: status.StatusModified})
	logger.LogFileOperation(ctx, status.FileInfo{Path: "b.txt", Status: status.StatusUnchanged})
	logger.EndRun(ctx)

	files := logger.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Path)
	assert.Equal(t, "b.txt", files[1].Path)

	logger.StartRun(ctx, RunOperation{Root: ".", RunID: "2"})
	assert.Empty(t, logger.Files(), "a new run starts with no files")
}

func TestSummary(t *testing.T) {
	color.NoColor = true
	pterm.DisableStyling()
	defer func() {
		color.NoColor = false
		pterm.EnableStyling()
	}()

	t.Run("table_lists_outcomes", func(t *testing.T) {
		table, err := RenderSummary(status.Summary{Total: 4, Modified: 2, Unchanged: 1, Skipped: 1})
		require.NoError(t, err)
		assert.Contains(t, table, "Outcome")
		assert.Contains(t, table, "modified")
		assert.Contains(t, table, "unchanged")
		assert.Contains(t, table, "total")
		assert.NotContains(t, table, "pending", "pending only shows in check runs")
	})

	t.Run("pending_row_in_check_runs", func(t *testing.T) {
		table, err := RenderSummary(status.Summary{Total: 1, Pending: 1})
		require.NoError(t, err)
		assert.Contains(t, table, "pending")
	})

	t.Run("verdict_line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.Disabled)

		logger.Summary(context.Background(), []status.FileInfo{
			{Path: "a.txt", Status: status.StatusModified},
			{Path: "b.txt", Status: status.StatusUnchanged},
		})

		assert.Contains(t, buf.String(), "2 files: 1 modified, 1 unchanged, 0 pending, 0 skipped, 0 failed")
	})
}
