package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
)

// TariffService exposes read access to the tariff reference table.
type TariffService struct {
	tariffRepo portsrepo.TariffRepositoryFacade
}

// NewTariffService creates a new TariffService.
func NewTariffService(tariffRepo portsrepo.TariffRepositoryFacade) *TariffService {
	return &TariffService{tariffRepo: tariffRepo}
}

// GetTariffByHSCode retrieves a single tariff entry.
func (s *TariffService) GetTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error) {
	hsCode = strings.TrimSpace(hsCode)
	if hsCode == "" {
		return nil, apperrors.NewValidationError("hs code is required")
	}

	entry, err := s.tariffRepo.FindTariffByHSCode(ctx, hsCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get tariff entry %s: %w", hsCode, err)
	}
	return entry, nil
}

// ListTariffs serves one page of tariff entries.
func (s *TariffService) ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error) {
	entries, total, err := s.tariffRepo.ListTariffs(ctx, strings.TrimSpace(search), params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tariff entries: %w", err)
	}
	if entries == nil {
		entries = []domain.TariffEntry{}
	}
	return entries, total, nil
}
