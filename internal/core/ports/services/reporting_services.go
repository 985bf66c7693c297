package services

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
)

// OverviewSvcFacade aggregates dashboard counts for one fiscal year.
type OverviewSvcFacade interface {
	// Overview returns per-status totals. The totals always satisfy
	// totalJobs == pendingJobs + completedJobs + cancelledJobs.
	Overview(ctx context.Context, year string) (*domain.OverviewCounts, error)

	// StageCounts returns the size of every registered stage bucket.
	StageCounts(ctx context.Context, year string) ([]domain.BucketCount, error)
}
