package dto

import (
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
)

// CreateJobRequest defines the data needed to register a new shipment job.
type CreateJobRequest struct {
	JobNo                  string `json:"jobNo" binding:"required"`
	Year                   string `json:"year" binding:"required,fyear"`
	Importer               string `json:"importer" binding:"required"`
	Consignee              string `json:"consignee"`
	CustomHouse            string `json:"customHouse"`
	EstimatedTimeOfArrival string `json:"estimatedTimeOfArrival"`
}

// UpdateJobRequest is a version-checked partial update. Nil fields are left
// untouched; duty fields are deliberately absent, they belong to the duty
// resolution endpoint.
type UpdateJobRequest struct {
	ExpectedVersion int64 `json:"expectedVersion" binding:"required,min=1"`

	Status      *string `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
	Importer    *string `json:"importer"`
	Consignee   *string `json:"consignee"`
	CustomHouse *string `json:"customHouse"`

	ETADate                *time.Time `json:"etaDate"`
	EstimatedTimeOfArrival *string    `json:"estimatedTimeOfArrival"`
	GatewayIGMFiledDate    *time.Time `json:"gatewayIgmFiledDate"`
	DischargedDate         *time.Time `json:"dischargedDate"`
	BENotedArrivalDate     *time.Time `json:"beNotedArrivalDate"`
	BENotedClearanceDate   *time.Time `json:"beNotedClearanceDate"`
	DutyPaymentDate        *time.Time `json:"dutyPaymentDate"`
	CustomClearanceDate    *time.Time `json:"customClearanceDate"`
	BillingDate            *time.Time `json:"billingDate"`
	ESanchitSubmittedDate  *time.Time `json:"esanchitSubmittedDate"`
	DocumentationDoneDate  *time.Time `json:"documentationDoneDate"`
	SubmissionDoneDate     *time.Time `json:"submissionDoneDate"`
	DOPlanningDoneDate     *time.Time `json:"doPlanningDoneDate"`
	OperationsDoneDate     *time.Time `json:"operationsDoneDate"`
}

// ToJobPatch converts the request into a domain patch.
func (r UpdateJobRequest) ToJobPatch() domain.JobPatch {
	patch := domain.JobPatch{
		Importer:    r.Importer,
		Consignee:   r.Consignee,
		CustomHouse: r.CustomHouse,

		ETADate:                r.ETADate,
		EstimatedTimeOfArrival: r.EstimatedTimeOfArrival,
		GatewayIGMFiledDate:    r.GatewayIGMFiledDate,
		DischargedDate:         r.DischargedDate,
		BENotedArrivalDate:     r.BENotedArrivalDate,
		BENotedClearanceDate:   r.BENotedClearanceDate,
		DutyPaymentDate:        r.DutyPaymentDate,
		CustomClearanceDate:    r.CustomClearanceDate,
		BillingDate:            r.BillingDate,
		ESanchitSubmittedDate:  r.ESanchitSubmittedDate,
		DocumentationDoneDate:  r.DocumentationDoneDate,
		SubmissionDoneDate:     r.SubmissionDoneDate,
		DOPlanningDoneDate:     r.DOPlanningDoneDate,
		OperationsDoneDate:     r.OperationsDoneDate,
	}
	if r.Status != nil {
		status := domain.JobStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobNo       string `json:"jobNo"`
	Year        string `json:"year"`
	Status      string `json:"status"`
	Importer    string `json:"importer"`
	Consignee   string `json:"consignee"`
	CustomHouse string `json:"customHouse"`

	ETADate                *time.Time `json:"etaDate,omitempty"`
	EstimatedTimeOfArrival string     `json:"estimatedTimeOfArrival,omitempty"`
	GatewayIGMFiledDate    *time.Time `json:"gatewayIgmFiledDate,omitempty"`
	DischargedDate         *time.Time `json:"dischargedDate,omitempty"`
	BENotedArrivalDate     *time.Time `json:"beNotedArrivalDate,omitempty"`
	BENotedClearanceDate   *time.Time `json:"beNotedClearanceDate,omitempty"`
	DutyPaymentDate        *time.Time `json:"dutyPaymentDate,omitempty"`
	CustomClearanceDate    *time.Time `json:"customClearanceDate,omitempty"`
	BillingDate            *time.Time `json:"billingDate,omitempty"`
	ESanchitSubmittedDate  *time.Time `json:"esanchitSubmittedDate,omitempty"`
	DocumentationDoneDate  *time.Time `json:"documentationDoneDate,omitempty"`
	SubmissionDoneDate     *time.Time `json:"submissionDoneDate,omitempty"`
	DOPlanningDoneDate     *time.Time `json:"doPlanningDoneDate,omitempty"`
	OperationsDoneDate     *time.Time `json:"operationsDoneDate,omitempty"`

	CTHBasicDutySch  string `json:"cthBasicDutySch"`
	CTHBasicDutyNtfn string `json:"cthBasicDutyNtfn"`
	CTHIGSTAmount    string `json:"cthIgstAmount"`
	CTHSWSAmount     string `json:"cthSwsAmount"`
	CTHBCDAmount     string `json:"cthBcdAmount"`

	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToJobResponse converts a domain.Job to a JobResponse DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobNo:       j.JobNo,
		Year:        j.Year,
		Status:      string(j.Status),
		Importer:    j.Importer,
		Consignee:   j.Consignee,
		CustomHouse: j.CustomHouse,

		ETADate:                j.ETADate,
		EstimatedTimeOfArrival: j.EstimatedTimeOfArrival,
		GatewayIGMFiledDate:    j.GatewayIGMFiledDate,
		DischargedDate:         j.DischargedDate,
		BENotedArrivalDate:     j.BENotedArrivalDate,
		BENotedClearanceDate:   j.BENotedClearanceDate,
		DutyPaymentDate:        j.DutyPaymentDate,
		CustomClearanceDate:    j.CustomClearanceDate,
		BillingDate:            j.BillingDate,
		ESanchitSubmittedDate:  j.ESanchitSubmittedDate,
		DocumentationDoneDate:  j.DocumentationDoneDate,
		SubmissionDoneDate:     j.SubmissionDoneDate,
		DOPlanningDoneDate:     j.DOPlanningDoneDate,
		OperationsDoneDate:     j.OperationsDoneDate,

		CTHBasicDutySch:  j.Duty.CTHBasicDutySch,
		CTHBasicDutyNtfn: j.Duty.CTHBasicDutyNtfn,
		CTHIGSTAmount:    j.Duty.CTHIGSTAmount,
		CTHSWSAmount:     j.Duty.CTHSWSAmount,
		CTHBCDAmount:     j.Duty.CTHBCDAmount,

		Version:       j.Version,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
}

// ToListJobResponse converts a slice of domain jobs to response DTOs.
func ToListJobResponse(jobs []domain.Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i := range jobs {
		res[i] = ToJobResponse(&jobs[i])
	}
	return res
}

// JobListResponse is the envelope for every paged job listing.
type JobListResponse struct {
	Total int64         `json:"total"`
	Items []JobResponse `json:"items"`
}
