package tracker

import (
	"context"

	"github.com/ytget/tracker-launcher/internal/model"
)

// Runner defines the interface for the tracker invocation service.
type Runner interface {
	SetUpdateCallback(func(*model.Run))

	// CheckExecutable reports model.ErrExecutableNotFound when the tracker binary is absent
	CheckExecutable() error

	// Run blocks until the tracker process exits or ctx is cancelled
	Run(ctx context.Context, settings model.Settings) (*model.Run, error)
}
