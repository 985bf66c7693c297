// Package stages classifies jobs into per-module processing buckets.
//
// Membership is a pure function of the job's stored marker fields and overall
// status; nothing here is cached or separately settable, so the classification
// can never drift from the underlying record. Modules are evaluated
// independently of each other: the legacy system enforces no ordering between
// departments (a job may be pending in billing and documentation at once) and
// that permissiveness is preserved on purpose.
package stages

import (
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
)

// Module identifies a departmental workflow.
type Module string

const (
	ModuleDSR           Module = "dsr"
	ModuleDO            Module = "do_planning"
	ModuleOperations    Module = "operations"
	ModuleBilling       Module = "billing"
	ModuleESanchit      Module = "esanchit"
	ModuleDocumentation Module = "documentation"
	ModuleSubmission    Module = "submission"
)

// Sense says whether a bucket collects jobs awaiting a step or jobs past it.
type Sense string

const (
	SensePending   Sense = "pending"
	SenseCompleted Sense = "completed"
)

// Bucket keys are part of the wire contract; they never change once published.
const (
	KeyETADatePending            = "eta_date_pending"
	KeyGatewayIGMFiled           = "gateway_igm_filed"
	KeyDischarged                = "discharged"
	KeyBENotedArrivalPending     = "be_noted_arrival_pending"
	KeyBENotedClearancePending   = "be_noted_clearance_pending"
	KeyPCVDoneDutyPaymentPending = "pcv_done_duty_payment_pending"
	KeyCustomClearanceCompleted  = "custom_clearance_completed"
	KeyBillingPending            = "billing_pending"
	KeyESanchit                  = "esanchit"
	KeyDocumentation             = "documentation"
	KeySubmission                = "submission"
	KeyDOPlanning                = "do_planning"
	KeyOperations                = "operations"
)

// Bucket describes one processing bucket: which module it belongs to, which
// marker field decides membership, and in which sense. Column is the
// persistence name of the marker, shared by the SQL and Mongo repositories so
// store-side predicates and the in-memory predicate cannot diverge.
type Bucket struct {
	Key    string
	Module Module
	Column string
	Sense  Sense

	marker func(domain.Job) *time.Time
}

// Matches reports whether the job belongs to this bucket.
// Pending buckets additionally require the job's overall status to be Pending,
// so cancelled and completed jobs drop out of every worklist.
func (b Bucket) Matches(j domain.Job) bool {
	set := b.marker(j) != nil
	if b.Sense == SenseCompleted {
		return set
	}
	return !set && j.Status == domain.JobStatusPending
}

var registry = []Bucket{
	{KeyETADatePending, ModuleDSR, "eta_date", SensePending, func(j domain.Job) *time.Time { return j.ETADate }},
	{KeyGatewayIGMFiled, ModuleDSR, "gateway_igm_filed_date", SenseCompleted, func(j domain.Job) *time.Time { return j.GatewayIGMFiledDate }},
	{KeyDischarged, ModuleDSR, "discharged_date", SenseCompleted, func(j domain.Job) *time.Time { return j.DischargedDate }},
	{KeyBENotedArrivalPending, ModuleDSR, "be_noted_arrival_date", SensePending, func(j domain.Job) *time.Time { return j.BENotedArrivalDate }},
	{KeyBENotedClearancePending, ModuleDSR, "be_noted_clearance_date", SensePending, func(j domain.Job) *time.Time { return j.BENotedClearanceDate }},
	{KeyPCVDoneDutyPaymentPending, ModuleDSR, "duty_payment_date", SensePending, func(j domain.Job) *time.Time { return j.DutyPaymentDate }},
	{KeyCustomClearanceCompleted, ModuleDSR, "custom_clearance_date", SenseCompleted, func(j domain.Job) *time.Time { return j.CustomClearanceDate }},
	{KeyBillingPending, ModuleBilling, "billing_date", SensePending, func(j domain.Job) *time.Time { return j.BillingDate }},
	{KeyESanchit, ModuleESanchit, "esanchit_submitted_date", SensePending, func(j domain.Job) *time.Time { return j.ESanchitSubmittedDate }},
	{KeyDocumentation, ModuleDocumentation, "documentation_done_date", SensePending, func(j domain.Job) *time.Time { return j.DocumentationDoneDate }},
	{KeySubmission, ModuleSubmission, "submission_done_date", SensePending, func(j domain.Job) *time.Time { return j.SubmissionDoneDate }},
	{KeyDOPlanning, ModuleDO, "do_planning_done_date", SensePending, func(j domain.Job) *time.Time { return j.DOPlanningDoneDate }},
	{KeyOperations, ModuleOperations, "operations_done_date", SensePending, func(j domain.Job) *time.Time { return j.OperationsDoneDate }},
}

var byKey = func() map[string]Bucket {
	m := make(map[string]Bucket, len(registry))
	for _, b := range registry {
		m[b.Key] = b
	}
	return m
}()

// Lookup resolves a bucket key to its descriptor.
// Adding a department means adding a registry entry, not a new route.
func Lookup(key string) (Bucket, bool) {
	b, ok := byKey[key]
	return b, ok
}

// All returns every registered bucket in declaration order.
func All() []Bucket {
	out := make([]Bucket, len(registry))
	copy(out, registry)
	return out
}

// moduleMarker is the completion marker that decides Pending/Completed for a
// whole module. For DSR that is customs clearance, the final step of its chain.
func moduleMarker(m Module, j domain.Job) *time.Time {
	switch m {
	case ModuleDSR:
		return j.CustomClearanceDate
	case ModuleDO:
		return j.DOPlanningDoneDate
	case ModuleOperations:
		return j.OperationsDoneDate
	case ModuleBilling:
		return j.BillingDate
	case ModuleESanchit:
		return j.ESanchitSubmittedDate
	case ModuleDocumentation:
		return j.DocumentationDoneDate
	case ModuleSubmission:
		return j.SubmissionDoneDate
	}
	return nil
}

// Pending reports whether the job still awaits module m.
func Pending(m Module, j domain.Job) bool {
	return moduleMarker(m, j) == nil && j.Status == domain.JobStatusPending
}

// Completed reports whether module m has finished for the job.
func Completed(m Module, j domain.Job) bool {
	return moduleMarker(m, j) != nil
}

// Modules returns every departmental module.
func Modules() []Module {
	return []Module{
		ModuleDSR,
		ModuleDO,
		ModuleOperations,
		ModuleBilling,
		ModuleESanchit,
		ModuleDocumentation,
		ModuleSubmission,
	}
}
