package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/middleware"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests related to jobs, their stage buckets, and
// duty resolution.
type jobHandler struct {
	jobService      portssvc.JobSvcFacade
	dutyService     portssvc.DutySvcFacade
	overviewService portssvc.OverviewSvcFacade
}

// newJobHandler creates a new jobHandler.
func newJobHandler(js portssvc.JobSvcFacade, ds portssvc.DutySvcFacade, os portssvc.OverviewSvcFacade) *jobHandler {
	return &jobHandler{
		jobService:      js,
		dutyService:     ds,
		overviewService: os,
	}
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(rg *gin.RouterGroup, js portssvc.JobSvcFacade, ds portssvc.DutySvcFacade, os portssvc.OverviewSvcFacade) {
	h := newJobHandler(js, ds, os)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("/:year/overview", h.getOverview)
		jobs.GET("/:year/stages", h.getStageCounts)
		jobs.GET("/:year/stage/:bucketKey", h.listStage)
		jobs.GET("/:year/:jobNo", h.getJob)
		jobs.PUT("/:year/:jobNo", h.updateJob)
		jobs.PATCH("/:jobNo/duty", h.resolveDuty)
	}
}

// yearParam validates the fiscal year path parameter before it reaches any
// query.
func yearParam(c *gin.Context) (string, bool) {
	year := c.Param("year")
	if !dto.IsValidFiscalYear(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiscal year: " + year})
		return "", false
	}
	return year, true
}

// createJob godoc
// @Summary Register a new shipment job
// @Description Creates a job in Pending state with no module progress
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Job already exists"
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req, requestUserID(c))
	if err != nil {
		logger.Warn("Failed to create job", slog.String("job_no", req.JobNo), slog.String("error", err.Error()))
		respondError(c, logger, err)
		return
	}

	logger.Info("Job created", slog.String("job_no", job.JobNo), slog.String("year", job.Year))
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// getJob godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param year path string true "Fiscal year (e.g. 24-25)"
// @Param jobNo path string true "Job number"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Router /jobs/{year}/{jobNo} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("jobNo"), year)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// updateJob godoc
// @Summary Update a job
// @Description Version-checked partial update of job fields and module markers
// @Tags jobs
// @Accept json
// @Produce json
// @Param year path string true "Fiscal year"
// @Param jobNo path string true "Job number"
// @Param patch body dto.UpdateJobRequest true "Fields to update plus expectedVersion"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Stale version"
// @Router /jobs/{year}/{jobNo} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), c.Param("jobNo"), year, req, requestUserID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Job updated", slog.String("job_no", job.JobNo), slog.Int64("version", job.Version))
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// getOverview godoc
// @Summary Dashboard overview counts
// @Description Per-status job totals for one fiscal year
// @Tags jobs
// @Produce json
// @Param year path string true "Fiscal year"
// @Success 200 {object} dto.OverviewResponse
// @Router /jobs/{year}/overview [get]
func (h *jobHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	counts, err := h.overviewService.Overview(c.Request.Context(), year)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(counts))
}

// getStageCounts godoc
// @Summary Stage bucket counts
// @Description Size of every stage bucket for one fiscal year
// @Tags jobs
// @Produce json
// @Param year path string true "Fiscal year"
// @Success 200 {array} dto.StageCountResponse
// @Router /jobs/{year}/stages [get]
func (h *jobHandler) getStageCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	counts, err := h.overviewService.StageCounts(c.Request.Context(), year)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStageCountsResponse(counts))
}

// listStage godoc
// @Summary List jobs in a stage bucket
// @Description One page of the jobs in a bucket, with optional free-text search
// @Tags jobs
// @Produce json
// @Param year path string true "Fiscal year"
// @Param bucketKey path string true "Stage bucket key (e.g. billing_pending)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param search query string false "Free text over job_no/importer/consignee"
// @Success 200 {object} dto.JobListResponse
// @Failure 400 {object} map[string]string "Unknown bucket key"
// @Router /jobs/{year}/stage/{bucketKey} [get]
func (h *jobHandler) listStage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	jobs, total, err := h.jobService.ListJobsByStage(c.Request.Context(), year, c.Param("bucketKey"), params, c.Query("search"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{Total: total, Items: dto.ToListJobResponse(jobs)})
}

// resolveDuty godoc
// @Summary Recompute duty fields
// @Description Derives the job's duty fields from a tariff entry and persists them atomically
// @Tags jobs
// @Accept json
// @Produce json
// @Param jobNo path string true "Job number"
// @Param year query string true "Fiscal year"
// @Param request body dto.ResolveDutyRequest true "Tariff code and observed version"
// @Success 200 {object} dto.DutyResponse
// @Failure 400 {object} map[string]string "Missing tariff_code or year"
// @Failure 404 {object} map[string]string "Job or tariff entry not found"
// @Failure 409 {object} map[string]string "Stale version"
// @Router /jobs/{jobNo}/duty [patch]
func (h *jobHandler) resolveDuty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year := c.Query("year")
	if !dto.IsValidFiscalYear(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiscal year: " + year})
		return
	}

	var req dto.ResolveDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveDuty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	job, err := h.dutyService.ResolveDuty(c.Request.Context(), c.Param("jobNo"), year, req.TariffCode, req.ExpectedVersion, requestUserID(c))
	if err != nil {
		logger.Warn("Duty resolution failed",
			slog.String("job_no", c.Param("jobNo")),
			slog.String("tariff_code", req.TariffCode),
			slog.String("error", err.Error()))
		respondError(c, logger, err)
		return
	}

	logger.Info("Duty fields resolved",
		slog.String("job_no", job.JobNo),
		slog.String("bcd_amount", job.Duty.CTHBCDAmount),
		slog.Int64("version", job.Version))
	c.JSON(http.StatusOK, dto.ToDutyResponse(job))
}

// requestUserID names the acting user for audit columns. Identity is owned by
// an upstream gateway; it forwards the resolved user in a trusted header.
func requestUserID(c *gin.Context) string {
	if uid := c.GetHeader("X-User-ID"); uid != "" {
		return uid
	}
	return "system"
}
