package domain

import "time"

// JobStatus indicates the overall state of a shipment job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "Pending"
	JobStatusCompleted JobStatus = "Completed"
	JobStatusCancelled JobStatus = "Cancelled"
)

// Job represents a single shipment record, unique per (JobNo, Year).
//
// The per-module progress markers are nil until the corresponding departmental
// sub-step completes. Stage membership is always derived from these markers
// (see core/stages); there is deliberately no stored per-bucket flag.
type Job struct {
	JobNo       string    `json:"jobNo"`
	Year        string    `json:"year"` // fiscal year, e.g. "24-25"
	Status      JobStatus `json:"status"`
	Importer    string    `json:"importer"`
	Consignee   string    `json:"consignee"`
	CustomHouse string    `json:"customHouse"`

	// DSR progress markers
	ETADate                *time.Time `json:"etaDate"`
	EstimatedTimeOfArrival string     `json:"estimatedTimeOfArrival"` // as keyed in by the vessel desk
	GatewayIGMFiledDate    *time.Time `json:"gatewayIgmFiledDate"`
	DischargedDate         *time.Time `json:"dischargedDate"`
	BENotedArrivalDate     *time.Time `json:"beNotedArrivalDate"`
	BENotedClearanceDate   *time.Time `json:"beNotedClearanceDate"`
	DutyPaymentDate        *time.Time `json:"dutyPaymentDate"`
	CustomClearanceDate    *time.Time `json:"customClearanceDate"`

	// Departmental completion markers
	BillingDate           *time.Time `json:"billingDate"`
	ESanchitSubmittedDate *time.Time `json:"esanchitSubmittedDate"`
	DocumentationDoneDate *time.Time `json:"documentationDoneDate"`
	SubmissionDoneDate    *time.Time `json:"submissionDoneDate"`
	DOPlanningDoneDate    *time.Time `json:"doPlanningDoneDate"`
	OperationsDoneDate    *time.Time `json:"operationsDoneDate"`

	// Derived duty fields, written only by the duty resolution engine.
	// Values are decimal strings; "" means unset, which is distinct from "0".
	Duty DutyFields `json:"duty"`

	// Version is the optimistic-locking token, incremented on every write.
	Version int64 `json:"version"`

	AuditFields
}

// DutyFields is the set of duty amounts derived from a tariff entry.
type DutyFields struct {
	CTHBasicDutySch  string `json:"cthBasicDutySch"`
	CTHBasicDutyNtfn string `json:"cthBasicDutyNtfn"`
	CTHIGSTAmount    string `json:"cthIgstAmount"`
	CTHSWSAmount     string `json:"cthSwsAmount"`
	CTHBCDAmount     string `json:"cthBcdAmount"`
}

// JobPatch describes a partial update to a job. Nil fields are left untouched.
// Duty fields are not patchable here; they are owned by the duty engine.
type JobPatch struct {
	Status      *JobStatus
	Importer    *string
	Consignee   *string
	CustomHouse *string

	ETADate                *time.Time
	EstimatedTimeOfArrival *string
	GatewayIGMFiledDate    *time.Time
	DischargedDate         *time.Time
	BENotedArrivalDate     *time.Time
	BENotedClearanceDate   *time.Time
	DutyPaymentDate        *time.Time
	CustomClearanceDate    *time.Time
	BillingDate            *time.Time
	ESanchitSubmittedDate  *time.Time
	DocumentationDoneDate  *time.Time
	SubmissionDoneDate     *time.Time
	DOPlanningDoneDate     *time.Time
	OperationsDoneDate     *time.Time
}

// OverviewCounts is the dashboard aggregate for one fiscal year.
type OverviewCounts struct {
	TotalJobs     int64 `json:"totalJobs"`
	PendingJobs   int64 `json:"pendingJobs"`
	CompletedJobs int64 `json:"completedJobs"`
	CancelledJobs int64 `json:"cancelledJobs"`
}
