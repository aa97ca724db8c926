package domain

import (
	"context"
	"time"
)

// ReportGenerator snapshots the top-N rankings into a daily artifact.
// Best effort: a failed report must not affect recompute or request serving.
type ReportGenerator interface {
	Generate(ctx context.Context, now time.Time) error
}
