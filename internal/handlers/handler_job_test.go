package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/handlers"
	"github.com/ImpexFlow/impex_backoffice_app/internal/platform/config"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) GetJob(ctx context.Context, jobNo, year string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) ListJobsByStage(ctx context.Context, year, bucketKey string, params pagination.Params, search string) ([]domain.Job, int64, error) {
	args := m.Called(ctx, year, bucketKey, params, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, jobNo, year string, req dto.UpdateJobRequest, updaterUserID string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

// --- Mock DutyService ---
type MockDutyService struct {
	mock.Mock
}

func (m *MockDutyService) ResolveDuty(ctx context.Context, jobNo, year, tariffCode string, expectedVersion int64, updaterUserID string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year, tariffCode, expectedVersion, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

var _ portssvc.DutySvcFacade = (*MockDutyService)(nil)

// --- Mock OverviewService ---
type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) Overview(ctx context.Context, year string) (*domain.OverviewCounts, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverviewCounts), args.Error(1)
}

func (m *MockOverviewService) StageCounts(ctx context.Context, year string) ([]domain.BucketCount, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BucketCount), args.Error(1)
}

var _ portssvc.OverviewSvcFacade = (*MockOverviewService)(nil)

// --- Test Suite ---
type JobHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockJob      *MockJobService
	mockDuty     *MockDutyService
	mockOverview *MockOverviewService
	mockTariff   *MockTariffService
}

func (suite *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.router = gin.New()
	suite.mockJob = new(MockJobService)
	suite.mockDuty = new(MockDutyService)
	suite.mockOverview = new(MockOverviewService)
	suite.mockTariff = new(MockTariffService)

	cfg := &config.Config{APIBasePath: "/api/v1", IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Job:      suite.mockJob,
		Duty:     suite.mockDuty,
		Overview: suite.mockOverview,
		Tariff:   suite.mockTariff,
	})
}

func (suite *JobHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "tester-1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleJob() *domain.Job {
	now := time.Now().UTC()
	return &domain.Job{
		JobNo:    "J-1001",
		Year:     "24-25",
		Status:   domain.JobStatusPending,
		Importer: "Acme Imports",
		Version:  1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "tester-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "tester-1",
		},
	}
}

// --- Test Cases ---

func (suite *JobHandlerTestSuite) TestCreateJob_Success() {
	job := sampleJob()
	suite.mockJob.On("CreateJob", mock.Anything, mock.MatchedBy(func(req dto.CreateJobRequest) bool {
		return req.JobNo == "J-1001" && req.Year == "24-25"
	}), "tester-1").Return(job, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/jobs", gin.H{
		"jobNo":    "J-1001",
		"year":     "24-25",
		"importer": "Acme Imports",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JobResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("J-1001", resp.JobNo)
	suite.Equal(int64(1), resp.Version)
	suite.mockJob.AssertExpectations(suite.T())
}

func (suite *JobHandlerTestSuite) TestCreateJob_InvalidFiscalYear() {
	w := suite.do(http.MethodPost, "/api/v1/jobs", gin.H{
		"jobNo":    "J-1001",
		"year":     "24-26",
		"importer": "Acme Imports",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJob.AssertNotCalled(suite.T(), "CreateJob")
}

func (suite *JobHandlerTestSuite) TestCreateJob_Duplicate() {
	suite.mockJob.On("CreateJob", mock.Anything, mock.Anything, "tester-1").
		Return(nil, apperrors.NewAppError(409, "job J-1001 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/jobs", gin.H{
		"jobNo":    "J-1001",
		"year":     "24-25",
		"importer": "Acme Imports",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JobHandlerTestSuite) TestGetJob_Success() {
	job := sampleJob()
	suite.mockJob.On("GetJob", mock.Anything, "J-1001", "24-25").Return(job, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/J-1001", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JobResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Acme Imports", resp.Importer)
}

func (suite *JobHandlerTestSuite) TestGetJob_NotFound() {
	suite.mockJob.On("GetJob", mock.Anything, "J-9999", "24-25").
		Return(nil, apperrors.NewNotFoundError("job J-9999 not found for year 24-25")).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/J-9999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JobHandlerTestSuite) TestGetJob_InvalidYear() {
	w := suite.do(http.MethodGet, "/api/v1/jobs/2024/J-1001", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJob.AssertNotCalled(suite.T(), "GetJob")
}

func (suite *JobHandlerTestSuite) TestUpdateJob_Success() {
	job := sampleJob()
	job.Version = 2
	suite.mockJob.On("UpdateJob", mock.Anything, "J-1001", "24-25",
		mock.MatchedBy(func(req dto.UpdateJobRequest) bool {
			return req.ExpectedVersion == 1 && req.Importer != nil && *req.Importer == "Beta Traders"
		}), "tester-1").Return(job, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/jobs/24-25/J-1001", gin.H{
		"expectedVersion": 1,
		"importer":        "Beta Traders",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JobResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.Version)
}

func (suite *JobHandlerTestSuite) TestUpdateJob_MissingVersion() {
	w := suite.do(http.MethodPut, "/api/v1/jobs/24-25/J-1001", gin.H{
		"importer": "Beta Traders",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJob.AssertNotCalled(suite.T(), "UpdateJob")
}

func (suite *JobHandlerTestSuite) TestUpdateJob_StaleVersion() {
	suite.mockJob.On("UpdateJob", mock.Anything, "J-1001", "24-25", mock.Anything, "tester-1").
		Return(nil, apperrors.NewConflictError("job J-1001 was modified concurrently")).Once()

	w := suite.do(http.MethodPut, "/api/v1/jobs/24-25/J-1001", gin.H{
		"expectedVersion": 1,
		"importer":        "Beta Traders",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JobHandlerTestSuite) TestGetOverview_Success() {
	counts := &domain.OverviewCounts{TotalJobs: 10, PendingJobs: 6, CompletedJobs: 3, CancelledJobs: 1}
	suite.mockOverview.On("Overview", mock.Anything, "24-25").Return(counts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/overview", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]int64
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(10), body["totalJobs"])
	suite.Equal(body["totalJobs"], body["pendingJobs"]+body["completedJobs"]+body["cancelledJobs"])
}

func (suite *JobHandlerTestSuite) TestGetStageCounts_Success() {
	counts := []domain.BucketCount{
		{Key: "billing_pending", Module: "billing", Total: 4},
		{Key: "discharged", Module: "dsr", Total: 2},
	}
	suite.mockOverview.On("StageCounts", mock.Anything, "24-25").Return(counts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/stages", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.StageCountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("billing_pending", resp[0].Key)
}

func (suite *JobHandlerTestSuite) TestListStage_PassesPaginationAndSearch() {
	jobs := []domain.Job{*sampleJob()}
	suite.mockJob.On("ListJobsByStage", mock.Anything, "24-25", "billing_pending",
		mock.MatchedBy(func(p pagination.Params) bool {
			return p.Page == 2 && p.Limit == 10
		}), "acme").Return(jobs, int64(25), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/stage/billing_pending?page=2&limit=10&search=acme", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JobListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(25), resp.Total)
	suite.Len(resp.Items, 1)
}

func (suite *JobHandlerTestSuite) TestListStage_UnknownBucket() {
	suite.mockJob.On("ListJobsByStage", mock.Anything, "24-25", "no_such_bucket", mock.Anything, "").
		Return(nil, int64(0), apperrors.NewValidationError("unknown stage bucket no_such_bucket")).Once()

	w := suite.do(http.MethodGet, "/api/v1/jobs/24-25/stage/no_such_bucket", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JobHandlerTestSuite) TestResolveDuty_Success() {
	job := sampleJob()
	job.Version = 2
	job.Duty = domain.DutyFields{
		CTHBasicDutySch:  "10",
		CTHBasicDutyNtfn: "7.5",
		CTHIGSTAmount:    "18",
		CTHSWSAmount:     "10",
		CTHBCDAmount:     "7.5",
	}
	suite.mockDuty.On("ResolveDuty", mock.Anything, "J-1001", "24-25", "84713010", int64(1), "tester-1").
		Return(job, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/jobs/J-1001/duty?year=24-25", gin.H{
		"tariff_code":     "84713010",
		"expectedVersion": 1,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DutyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("7.5", resp.CTHBCDAmount)
	suite.Equal(int64(2), resp.Version)
	suite.mockDuty.AssertExpectations(suite.T())
}

func (suite *JobHandlerTestSuite) TestResolveDuty_MissingTariffCode() {
	w := suite.do(http.MethodPatch, "/api/v1/jobs/J-1001/duty?year=24-25", gin.H{
		"expectedVersion": 1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDuty.AssertNotCalled(suite.T(), "ResolveDuty")
}

func (suite *JobHandlerTestSuite) TestResolveDuty_MissingYear() {
	w := suite.do(http.MethodPatch, "/api/v1/jobs/J-1001/duty", gin.H{
		"tariff_code": "84713010",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDuty.AssertNotCalled(suite.T(), "ResolveDuty")
}

func (suite *JobHandlerTestSuite) TestResolveDuty_TariffNotFound() {
	suite.mockDuty.On("ResolveDuty", mock.Anything, "J-1001", "24-25", "00000000", int64(0), "tester-1").
		Return(nil, apperrors.NewNotFoundError("tariff entry 00000000 not found")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/jobs/J-1001/duty?year=24-25", gin.H{
		"tariff_code": "00000000",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JobHandlerTestSuite) TestResolveDuty_StaleVersion() {
	suite.mockDuty.On("ResolveDuty", mock.Anything, "J-1001", "24-25", "84713010", int64(3), "tester-1").
		Return(nil, apperrors.NewConflictError("job J-1001 was modified concurrently")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/jobs/J-1001/duty?year=24-25", gin.H{
		"tariff_code":     "84713010",
		"expectedVersion": 3,
	})

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestJobHandler(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
