package services

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// JobReaderSvc defines read operations of the job registry.
type JobReaderSvc interface {
	GetJob(ctx context.Context, jobNo, year string) (*domain.Job, error)

	// ListJobsByStage resolves bucketKey through the stage classifier and
	// returns one page of matching jobs plus the bucket total.
	ListJobsByStage(ctx context.Context, year, bucketKey string, params pagination.Params, search string) ([]domain.Job, int64, error)
}

// JobWriterSvc defines write operations of the job registry.
type JobWriterSvc interface {
	CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error)
	UpdateJob(ctx context.Context, jobNo, year string, req dto.UpdateJobRequest, updaterUserID string) (*domain.Job, error)
}

// JobSvcFacade combines all job registry service interfaces.
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
