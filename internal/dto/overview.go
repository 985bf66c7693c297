package dto

import "github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"

// OverviewResponse is the dashboard aggregate for one fiscal year.
// The legacy API mixed `total` and `totalJobs` between endpoints; the
// aggregate keys are `*Jobs` everywhere here.
type OverviewResponse struct {
	TotalJobs     int64 `json:"totalJobs"`
	PendingJobs   int64 `json:"pendingJobs"`
	CompletedJobs int64 `json:"completedJobs"`
	CancelledJobs int64 `json:"cancelledJobs"`
}

// ToOverviewResponse converts domain overview counts to the response DTO.
func ToOverviewResponse(c *domain.OverviewCounts) OverviewResponse {
	return OverviewResponse{
		TotalJobs:     c.TotalJobs,
		PendingJobs:   c.PendingJobs,
		CompletedJobs: c.CompletedJobs,
		CancelledJobs: c.CancelledJobs,
	}
}

// StageCountResponse is one dashboard tile.
type StageCountResponse struct {
	Key    string `json:"key"`
	Module string `json:"module"`
	Total  int64  `json:"total"`
}

// ToStageCountsResponse converts domain bucket counts to response DTOs.
func ToStageCountsResponse(counts []domain.BucketCount) []StageCountResponse {
	res := make([]StageCountResponse, len(counts))
	for i, c := range counts {
		res[i] = StageCountResponse{Key: c.Key, Module: c.Module, Total: c.Total}
	}
	return res
}
