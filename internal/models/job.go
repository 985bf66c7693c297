package models

import "time"

// Job is the persisted form of a shipment job. Column and bson names line up
// with the stage registry's marker columns so both stores answer bucket
// queries with the same predicate names.
type Job struct {
	JobNo       string `bson:"job_no"`
	Year        string `bson:"year"`
	Status      string `bson:"status"`
	Importer    string `bson:"importer"`
	Consignee   string `bson:"consignee"`
	CustomHouse string `bson:"custom_house"`

	ETADate                *time.Time `bson:"eta_date,omitempty"`
	EstimatedTimeOfArrival string     `bson:"estimated_time_of_arrival,omitempty"`
	GatewayIGMFiledDate    *time.Time `bson:"gateway_igm_filed_date,omitempty"`
	DischargedDate         *time.Time `bson:"discharged_date,omitempty"`
	BENotedArrivalDate     *time.Time `bson:"be_noted_arrival_date,omitempty"`
	BENotedClearanceDate   *time.Time `bson:"be_noted_clearance_date,omitempty"`
	DutyPaymentDate        *time.Time `bson:"duty_payment_date,omitempty"`
	CustomClearanceDate    *time.Time `bson:"custom_clearance_date,omitempty"`
	BillingDate            *time.Time `bson:"billing_date,omitempty"`
	ESanchitSubmittedDate  *time.Time `bson:"esanchit_submitted_date,omitempty"`
	DocumentationDoneDate  *time.Time `bson:"documentation_done_date,omitempty"`
	SubmissionDoneDate     *time.Time `bson:"submission_done_date,omitempty"`
	DOPlanningDoneDate     *time.Time `bson:"do_planning_done_date,omitempty"`
	OperationsDoneDate     *time.Time `bson:"operations_done_date,omitempty"`

	CTHBasicDutySch  string `bson:"cth_basic_duty_sch"`
	CTHBasicDutyNtfn string `bson:"cth_basic_duty_ntfn"`
	CTHIGSTAmount    string `bson:"cth_igst_amount"`
	CTHSWSAmount     string `bson:"cth_sws_amount"`
	CTHBCDAmount     string `bson:"cth_bcd_amount"`

	Version int64 `bson:"version"`

	AuditFields `bson:",inline"`
}
