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

package status

import (
	"context"
	"io/fs"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/neatify/pkg/catalog"
	"gitlab.com/tozd/go/errors"
)

// Read failures. Permission problems are told apart from the rest for
// diagnostics only; callers treat every read failure the same way.
var (
	ErrPermissionDenied = errors.Base("permission denied")
	ErrReadFailed       = errors.Base("read failed")
	ErrIsDirectory      = errors.Base("is a directory")
	ErrNotText          = errors.Base("not valid UTF-8 text")
)

// ErrWriteTargetMissing is returned when the file was removed before its rewrite.
var ErrWriteTargetMissing = errors.Base("write target no longer exists")

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content was rewritten
	StatusUnchanged            // Nothing needed writing
	StatusPending              // Content would be rewritten (check mode)
	StatusSkipped              // Content could not be read
	StatusFailed               // Content could not be written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo records what happened to a file
type FileInfo struct {
	Path       string     // Slash-separated path of the file
	Status     FileStatus // Outcome
	Size       uint64     // Size at discovery
	IsModified bool       // Modified flag accumulated by the stages
	Stages     []string   // Stages that changed the content
	Error      error      // Read or write failure, if any
}

// 💾 FileManager reads and persists file content
type FileManager interface {
	// ReadFile returns the full text content of a discovered file
	ReadFile(ctx context.Context, file catalog.File) (string, error)
	// WriteFile overwrites an existing file; it fails if the path is gone
	WriteFile(ctx context.Context, path string, content string) error
}

// 📈 StatusReporter tracks per-file outcomes and reports progress
type StatusReporter interface {
	TrackFile(ctx context.Context, path string, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo
	order []string

	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, file catalog.File) (string, error) {
	info, err := os.Stat(file.Path)
	if err != nil {
		return "", m.readError(file.Path, err)
	}
	if info.IsDir() {
		return "", errors.Errorf("%w: %s", ErrIsDirectory, file.Path)
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return "", m.readError(file.Path, err)
	}

	if !utf8.Valid(data) {
		return "", errors.Errorf("%w: %s", ErrNotText, file.Path)
	}

	return string(data), nil
}

func (m *Manager) readError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		m.logger.Debug().Str("path", path).Msg("permission denied when opening file")
		return errors.Errorf("%w: %s", ErrPermissionDenied, path)
	}
	m.logger.Debug().Str("path", path).Err(err).Msg("error opening file")
	return errors.Errorf("%w: %s: %s", ErrReadFailed, path, err.Error())
}

func (m *Manager) WriteFile(ctx context.Context, path string, content string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("%w: %s", ErrWriteTargetMissing, path)
	}
	if err != nil {
		return errors.Errorf("checking write target: %w", err)
	}

	return m.WriteFileAtomic(ctx, path, content, info.Mode().Perm())
}

// WriteFileAtomic writes content to a sibling temp file and renames it over path.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content string, perm os.FileMode) error {
	tempPath := path + ".neatify.tmp"

	if err := os.WriteFile(tempPath, []byte(content), perm); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// WriteFile is subject to the umask
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = info

	msg := m.formatter.FormatFileOperation(path, info.Status, info.Stages)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	m.logger.Debug().Str("path", path).Str("status", info.Status.String()).Msg(msg)
}

// ListFiles returns tracked files in the order they were first tracked.
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.order))
	for _, path := range m.order {
		files = append(files, m.files[path])
	}
	return files
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Debug().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	m.logger.Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.formatter.FormatProgress(m.processed, m.total)
	m.logger.Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(msg)
}

// 🧮 Summary counts tracked files by outcome
type Summary struct {
	Total     int
	Modified  int
	Unchanged int
	Pending   int
	Skipped   int
	Failed    int
}

// Summarize counts the outcomes in files.
func Summarize(files []FileInfo) Summary {
	s := Summary{Total: len(files)}
	for _, f := range files {
		switch f.Status {
		case StatusModified:
			s.Modified++
		case StatusUnchanged:
			s.Unchanged++
		case StatusPending:
			s.Pending++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
