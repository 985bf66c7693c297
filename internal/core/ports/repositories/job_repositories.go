package repositories

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// JobReader defines read operations for job data.
type JobReader interface {
	// FindJobByKey retrieves a job by its natural key.
	// Returns apperrors.ErrNotFound when no such job exists.
	FindJobByKey(ctx context.Context, jobNo, year string) (*domain.Job, error)

	// ListJobsByBucket retrieves one page of the jobs matching a stage bucket,
	// optionally narrowed by free-text search over job_no/importer/consignee.
	// The total is the bucket size before paging.
	ListJobsByBucket(ctx context.Context, year string, bucket stages.Bucket, params pagination.Params, search string) ([]domain.Job, int64, error)
}

// JobWriter defines write operations for job data. Every write is a single
// atomic statement against one record; version-checked writes return
// apperrors.ErrVersionConflict when the expected version is stale.
type JobWriter interface {
	// SaveJob persists a new job. Returns apperrors.ErrDuplicate when the
	// (job_no, year) pair already exists.
	SaveJob(ctx context.Context, job domain.Job) error

	// UpdateJob applies a field patch and increments the version, atomically.
	// The patch is never partially applied.
	UpdateJob(ctx context.Context, jobNo, year string, patch domain.JobPatch, expectedVersion int64, updatedBy string) (*domain.Job, error)

	// UpdateJobDuty writes all five derived duty fields together and
	// increments the version, atomically.
	UpdateJobDuty(ctx context.Context, jobNo, year string, duty domain.DutyFields, expectedVersion int64, updatedBy string) (*domain.Job, error)
}

// JobCounter defines the store-side aggregation queries. Counts are computed
// by the store from classifier predicates, never by scanning pages client-side.
type JobCounter interface {
	// CountOverview returns per-status totals for one fiscal year.
	CountOverview(ctx context.Context, year string) (domain.OverviewCounts, error)

	// CountBucket returns the number of jobs currently in a stage bucket.
	CountBucket(ctx context.Context, year string, bucket stages.Bucket) (int64, error)
}

// JobRepositoryFacade combines all job repository interfaces.
type JobRepositoryFacade interface {
	JobReader
	JobWriter
	JobCounter
}
