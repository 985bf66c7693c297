package services

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
)

// DutySvcFacade is the duty resolution engine: it derives the five duty fields
// for a job from a tariff entry and persists them in one version-checked write.
type DutySvcFacade interface {
	// ResolveDuty recomputes and stores the job's duty fields from the tariff
	// entry identified by tariffCode. The result is a pure function of the
	// tariff entry, so re-invoking with unchanged tariff state is idempotent.
	ResolveDuty(ctx context.Context, jobNo, year, tariffCode string, expectedVersion int64, updaterUserID string) (*domain.Job, error)
}
