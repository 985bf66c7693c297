package dto

import "github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"

// TariffResponse defines the data returned for a tariff entry.
type TariffResponse struct {
	HSCode          string `json:"hsCode"`
	ItemDescription string `json:"itemDescription"`
	Unit            string `json:"unit"`
	BasicDutySch    string `json:"basicDutySch"`
	BasicDutyNtfn   string `json:"basicDutyNtfn"`
	IGST            string `json:"igst"`
	SWS             string `json:"sws"`
}

// ToTariffResponse converts a domain.TariffEntry to a TariffResponse DTO.
func ToTariffResponse(t *domain.TariffEntry) TariffResponse {
	return TariffResponse{
		HSCode:          t.HSCode,
		ItemDescription: t.ItemDescription,
		Unit:            t.Unit,
		BasicDutySch:    t.BasicDutySch,
		BasicDutyNtfn:   t.BasicDutyNtfn,
		IGST:            t.IGST,
		SWS:             t.SWS,
	}
}

// ToListTariffResponse converts a slice of tariff entries to response DTOs.
func ToListTariffResponse(entries []domain.TariffEntry) []TariffResponse {
	res := make([]TariffResponse, len(entries))
	for i := range entries {
		res[i] = ToTariffResponse(&entries[i])
	}
	return res
}

// TariffListResponse is the envelope for the paged tariff listing.
type TariffListResponse struct {
	Total int64            `json:"total"`
	Items []TariffResponse `json:"items"`
}
