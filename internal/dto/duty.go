package dto

import "github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"

// ResolveDutyRequest asks the duty engine to recompute a job's duty fields
// from one tariff entry. ExpectedVersion is the job version the caller last
// read; when omitted the engine guards against the version it loads itself.
type ResolveDutyRequest struct {
	TariffCode      string `json:"tariff_code" binding:"required"`
	ExpectedVersion int64  `json:"expectedVersion" binding:"omitempty,min=1"`
}

// DutyResponse returns the freshly derived duty fields and the new version.
type DutyResponse struct {
	JobNo            string `json:"jobNo"`
	Year             string `json:"year"`
	CTHBasicDutySch  string `json:"cthBasicDutySch"`
	CTHBasicDutyNtfn string `json:"cthBasicDutyNtfn"`
	CTHIGSTAmount    string `json:"cthIgstAmount"`
	CTHSWSAmount     string `json:"cthSwsAmount"`
	CTHBCDAmount     string `json:"cthBcdAmount"`
	Version          int64  `json:"version"`
}

// ToDutyResponse converts an updated job to the duty endpoint response.
func ToDutyResponse(j *domain.Job) DutyResponse {
	return DutyResponse{
		JobNo:            j.JobNo,
		Year:             j.Year,
		CTHBasicDutySch:  j.Duty.CTHBasicDutySch,
		CTHBasicDutyNtfn: j.Duty.CTHBasicDutyNtfn,
		CTHIGSTAmount:    j.Duty.CTHIGSTAmount,
		CTHSWSAmount:     j.Duty.CTHSWSAmount,
		CTHBCDAmount:     j.Duty.CTHBCDAmount,
		Version:          j.Version,
	}
}
