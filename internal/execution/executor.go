package execution

import (
	"context"

	"testview/internal/domain"
)

// Executor runs the external test tool once and reports how it exited
type Executor interface {
	Run(ctx context.Context, extraArgs ...string) (*domain.RunResult, error)
}
