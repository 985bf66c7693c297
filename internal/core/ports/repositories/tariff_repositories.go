package repositories

import (
	"context"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// TariffReader defines read operations for the tariff reference table.
// There is no writer: the tariff directory collaborator owns mutation and this
// service treats the table as immutable.
type TariffReader interface {
	// FindTariffByHSCode retrieves a tariff entry by its HS code.
	// Returns apperrors.ErrNotFound when no such entry exists.
	FindTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error)

	// ListTariffs retrieves one page of tariff entries, optionally narrowed by
	// free-text search over hs_code/item_description.
	ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error)
}

// TariffRepositoryFacade combines all tariff repository interfaces.
type TariffRepositoryFacade interface {
	TariffReader
}
