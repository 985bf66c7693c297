package mapping

import (
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
)

// ToDomainTariffEntry converts a persisted tariff row to its domain form.
func ToDomainTariffEntry(m models.TariffEntry) domain.TariffEntry {
	return domain.TariffEntry{
		HSCode:          m.HSCode,
		ItemDescription: m.ItemDescription,
		Unit:            m.Unit,
		BasicDutySch:    m.BasicDutySch,
		BasicDutyNtfn:   m.BasicDutyNtfn,
		IGST:            m.IGST,
		SWS:             m.SWS,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainTariffEntries converts a slice of persisted tariff rows.
func ToDomainTariffEntries(ms []models.TariffEntry) []domain.TariffEntry {
	out := make([]domain.TariffEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTariffEntry(m)
	}
	return out
}
