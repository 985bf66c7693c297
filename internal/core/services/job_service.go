package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// JobService is the job registry: it owns job records and every versioned
// write against them.
type JobService struct {
	jobRepo portsrepo.JobRepositoryFacade
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo portsrepo.JobRepositoryFacade) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// GetJob retrieves a single job by its natural key.
func (s *JobService) GetJob(ctx context.Context, jobNo, year string) (*domain.Job, error) {
	jobNo = strings.TrimSpace(jobNo)
	if jobNo == "" || year == "" {
		return nil, apperrors.NewValidationError("job number and year are required")
	}

	job, err := s.jobRepo.FindJobByKey(ctx, jobNo, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s/%s: %w", jobNo, year, err)
	}
	return job, nil
}

// ListJobsByStage resolves bucketKey through the stage classifier registry and
// serves one page of the matching jobs. An unknown key is a validation error,
// not an empty result, so dashboard typos surface loudly.
func (s *JobService) ListJobsByStage(ctx context.Context, year, bucketKey string, params pagination.Params, search string) ([]domain.Job, int64, error) {
	bucket, ok := stages.Lookup(bucketKey)
	if !ok {
		return nil, 0, apperrors.NewValidationError("unknown stage bucket: " + bucketKey)
	}

	jobs, total, err := s.jobRepo.ListJobsByBucket(ctx, year, bucket, params, strings.TrimSpace(search))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs in bucket %s: %w", bucketKey, err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, total, nil
}

// CreateJob registers a newly booked shipment. Jobs start Pending with every
// module marker unset and version 1.
func (s *JobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error) {
	now := time.Now().UTC()

	job := domain.Job{
		JobNo:                  strings.TrimSpace(req.JobNo),
		Year:                   req.Year,
		Status:                 domain.JobStatusPending,
		Importer:               req.Importer,
		Consignee:              req.Consignee,
		CustomHouse:            req.CustomHouse,
		EstimatedTimeOfArrival: req.EstimatedTimeOfArrival,
		Version:                1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job %s/%s: %w", job.JobNo, job.Year, err)
	}
	return &job, nil
}

// UpdateJob applies a version-checked partial update. A stale expectedVersion
// surfaces as apperrors.ErrVersionConflict; the caller re-reads and retries.
// Mutating a Cancelled job is rejected: cancellation is terminal.
func (s *JobService) UpdateJob(ctx context.Context, jobNo, year string, req dto.UpdateJobRequest, updaterUserID string) (*domain.Job, error) {
	current, err := s.jobRepo.FindJobByKey(ctx, jobNo, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s/%s for update: %w", jobNo, year, err)
	}
	if current.Status == domain.JobStatusCancelled {
		return nil, apperrors.NewValidationError("job " + jobNo + " is cancelled and can no longer be updated")
	}

	updated, err := s.jobRepo.UpdateJob(ctx, jobNo, year, req.ToJobPatch(), req.ExpectedVersion, updaterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update job %s/%s: %w", jobNo, year, err)
	}
	return updated, nil
}
