package services

import (
	"context"
	"fmt"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
)

// OverviewService aggregates dashboard counts. Every figure comes from a
// store-side count over classifier predicates; nothing is tallied by paging
// through listings, so counts cannot be truncated by page limits.
type OverviewService struct {
	jobRepo portsrepo.JobRepositoryFacade
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(jobRepo portsrepo.JobRepositoryFacade) *OverviewService {
	return &OverviewService{jobRepo: jobRepo}
}

// Overview returns per-status totals for one fiscal year.
func (s *OverviewService) Overview(ctx context.Context, year string) (*domain.OverviewCounts, error) {
	counts, err := s.jobRepo.CountOverview(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs for year %s: %w", year, err)
	}
	return &counts, nil
}

// StageCounts returns the current size of every registered stage bucket.
func (s *OverviewService) StageCounts(ctx context.Context, year string) ([]domain.BucketCount, error) {
	buckets := stages.All()
	counts := make([]domain.BucketCount, 0, len(buckets))
	for _, bucket := range buckets {
		total, err := s.jobRepo.CountBucket(ctx, year, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to count bucket %s for year %s: %w", bucket.Key, year, err)
		}
		counts = append(counts, domain.BucketCount{
			Key:    bucket.Key,
			Module: string(bucket.Module),
			Total:  total,
		})
	}
	return counts, nil
}
