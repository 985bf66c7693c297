package mapping

import (
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
)

// ToDomainJob converts a persisted job record to its domain form.
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobNo:       m.JobNo,
		Year:        m.Year,
		Status:      domain.JobStatus(m.Status),
		Importer:    m.Importer,
		Consignee:   m.Consignee,
		CustomHouse: m.CustomHouse,

		ETADate:                m.ETADate,
		EstimatedTimeOfArrival: m.EstimatedTimeOfArrival,
		GatewayIGMFiledDate:    m.GatewayIGMFiledDate,
		DischargedDate:         m.DischargedDate,
		BENotedArrivalDate:     m.BENotedArrivalDate,
		BENotedClearanceDate:   m.BENotedClearanceDate,
		DutyPaymentDate:        m.DutyPaymentDate,
		CustomClearanceDate:    m.CustomClearanceDate,
		BillingDate:            m.BillingDate,
		ESanchitSubmittedDate:  m.ESanchitSubmittedDate,
		DocumentationDoneDate:  m.DocumentationDoneDate,
		SubmissionDoneDate:     m.SubmissionDoneDate,
		DOPlanningDoneDate:     m.DOPlanningDoneDate,
		OperationsDoneDate:     m.OperationsDoneDate,

		Duty: domain.DutyFields{
			CTHBasicDutySch:  m.CTHBasicDutySch,
			CTHBasicDutyNtfn: m.CTHBasicDutyNtfn,
			CTHIGSTAmount:    m.CTHIGSTAmount,
			CTHSWSAmount:     m.CTHSWSAmount,
			CTHBCDAmount:     m.CTHBCDAmount,
		},

		Version: m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelJob converts a domain job to its persisted form.
func ToModelJob(j domain.Job) models.Job {
	return models.Job{
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

		Version: j.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     j.CreatedAt,
			CreatedBy:     j.CreatedBy,
			LastUpdatedAt: j.LastUpdatedAt,
			LastUpdatedBy: j.LastUpdatedBy,
		},
	}
}

// ToDomainJobs converts a slice of persisted jobs.
func ToDomainJobs(ms []models.Job) []domain.Job {
	out := make([]domain.Job, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJob(m)
	}
	return out
}
