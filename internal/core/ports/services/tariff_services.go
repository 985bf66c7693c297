package services

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// TariffSvcFacade exposes read access to the tariff reference table.
type TariffSvcFacade interface {
	GetTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error)
	ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error)
}
