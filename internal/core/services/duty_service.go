package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/numeric"
)

// DutyService derives a job's customs duty fields from a tariff entry and
// persists them in one version-checked write.
type DutyService struct {
	jobRepo    portsrepo.JobRepositoryFacade
	tariffRepo portsrepo.TariffRepositoryFacade
}

// NewDutyService creates a new DutyService.
func NewDutyService(jobRepo portsrepo.JobRepositoryFacade, tariffRepo portsrepo.TariffRepositoryFacade) *DutyService {
	return &DutyService{jobRepo: jobRepo, tariffRepo: tariffRepo}
}

// DeriveDutyFields computes the five duty fields from a tariff entry.
//
// The effective basic duty (BCD) prefers the notification-overridden rate over
// the scheduled rate; a value that is empty or non-numeric falls through, and
// when neither source qualifies the result stays "" rather than "0". The other
// four fields are copied verbatim whatever the tie-break outcome. The function
// depends only on the tariff entry, which is what makes resolution idempotent.
func DeriveDutyFields(entry domain.TariffEntry) domain.DutyFields {
	return domain.DutyFields{
		CTHBasicDutySch:  entry.BasicDutySch,
		CTHBasicDutyNtfn: entry.BasicDutyNtfn,
		CTHIGSTAmount:    entry.IGST,
		CTHSWSAmount:     entry.SWS,
		CTHBCDAmount:     numeric.FirstValid(entry.BasicDutyNtfn, entry.BasicDutySch),
	}
}

// ResolveDuty recomputes and stores the duty fields of job (jobNo, year) from
// the tariff entry identified by tariffCode. All five fields are written in a
// single atomic update or not at all; expectedVersion 0 means "guard against
// the version loaded here", any other value is the caller's observed version.
func (s *DutyService) ResolveDuty(ctx context.Context, jobNo, year, tariffCode string, expectedVersion int64, updaterUserID string) (*domain.Job, error) {
	jobNo = strings.TrimSpace(jobNo)
	tariffCode = strings.TrimSpace(tariffCode)
	if jobNo == "" || year == "" {
		return nil, apperrors.NewValidationError("job number and year are required")
	}
	if tariffCode == "" {
		return nil, apperrors.NewValidationError("tariff_code is required")
	}

	job, err := s.jobRepo.FindJobByKey(ctx, jobNo, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s/%s for duty resolution: %w", jobNo, year, err)
	}

	entry, err := s.tariffRepo.FindTariffByHSCode(ctx, tariffCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff entry %s: %w", tariffCode, err)
	}

	if expectedVersion == 0 {
		expectedVersion = job.Version
	}

	duty := DeriveDutyFields(*entry)

	updated, err := s.jobRepo.UpdateJobDuty(ctx, jobNo, year, duty, expectedVersion, updaterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to persist duty fields for job %s/%s: %w", jobNo, year, err)
	}
	return updated, nil
}
