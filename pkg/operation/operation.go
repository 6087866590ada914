package operation

import (
	"context"

	"github.com/walteh/neatify/pkg/config"
	"github.com/walteh/neatify/pkg/log"
	"github.com/walteh/neatify/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the validated option snapshot
	Config *config.Config
	// Files reads and persists file content
	Files status.FileManager
	// Reporter tracks per-file outcomes
	Reporter status.StatusReporter
	// Logger prints user-facing output, optional
	Logger *log.Logger
	// Check reports files that would change without writing them
	Check bool
}

// 🧱 BaseOperation holds what every operation shares
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation checks the required options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return BaseOperation{}, errors.Errorf("file manager is required")
	}
	if opts.Reporter == nil {
		return BaseOperation{}, errors.Errorf("status reporter is required")
	}
	return BaseOperation{Options: opts}, nil
}
