package domain

// TariffEntry is one row of the customs tariff reference table, keyed by HS code.
// The back office only reads these; the tariff directory collaborator owns writes.
//
// Rate fields are decimal strings as published; "" means the rate is not notified.
type TariffEntry struct {
	HSCode          string `json:"hsCode"`
	ItemDescription string `json:"itemDescription"`
	Unit            string `json:"unit"`
	BasicDutySch    string `json:"basicDutySch"`  // scheduled rate
	BasicDutyNtfn   string `json:"basicDutyNtfn"` // notification-overridden rate, may be absent
	IGST            string `json:"igst"`
	SWS             string `json:"sws"`

	AuditFields
}
