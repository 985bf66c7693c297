package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByKey(ctx context.Context, jobNo, year string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobsByBucket(ctx context.Context, year string, bucket stages.Bucket, params pagination.Params, search string) ([]domain.Job, int64, error) {
	args := m.Called(ctx, year, bucket, params, search)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, jobNo, year string, patch domain.JobPatch, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year, patch, expectedVersion, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJobDuty(ctx context.Context, jobNo, year string, duty domain.DutyFields, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	args := m.Called(ctx, jobNo, year, duty, expectedVersion, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) CountOverview(ctx context.Context, year string) (domain.OverviewCounts, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.OverviewCounts), args.Error(1)
}

func (m *MockJobRepository) CountBucket(ctx context.Context, year string, bucket stages.Bucket) (int64, error) {
	args := m.Called(ctx, year, bucket)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type JobServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJobRepository
	service  portssvc.JobSvcFacade
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJobRepository)
	suite.service = services.NewJobService(suite.mockRepo)
}

func (suite *JobServiceTestSuite) TestCreateJob_Success() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		JobNo:    "IMP-101",
		Year:     "24-25",
		Importer: "Acme Imports Pvt Ltd",
	}

	suite.mockRepo.On("SaveJob", ctx, mock.MatchedBy(func(j domain.Job) bool {
		return j.JobNo == "IMP-101" && j.Year == "24-25" &&
			j.Status == domain.JobStatusPending && j.Version == 1 &&
			j.CreatedBy == "user-1"
	})).Return(nil).Once()

	job, err := suite.service.CreateJob(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(job)
	suite.Equal(domain.JobStatusPending, job.Status)
	suite.EqualValues(1, job.Version)
	suite.Nil(job.ETADate, "a new job has no module markers")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestCreateJob_Duplicate() {
	ctx := context.Background()
	req := dto.CreateJobRequest{JobNo: "IMP-101", Year: "24-25", Importer: "Acme"}

	suite.mockRepo.On("SaveJob", ctx, mock.AnythingOfType("domain.Job")).
		Return(apperrors.ErrDuplicate).Once()

	job, err := suite.service.CreateJob(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestGetJob_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindJobByKey", ctx, "NOPE", "24-25").
		Return(nil, apperrors.ErrNotFound).Once()

	job, err := suite.service.GetJob(ctx, "NOPE", "24-25")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JobServiceTestSuite) TestGetJob_MissingKeyIsValidation() {
	job, err := suite.service.GetJob(context.Background(), "  ", "24-25")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindJobByKey")
}

func (suite *JobServiceTestSuite) TestUpdateJob_Success() {
	ctx := context.Background()
	now := time.Now().UTC()
	current := &domain.Job{JobNo: "IMP-101", Year: "24-25", Status: domain.JobStatusPending, Version: 3}
	req := dto.UpdateJobRequest{ExpectedVersion: 3, BillingDate: &now}
	updated := &domain.Job{JobNo: "IMP-101", Year: "24-25", Status: domain.JobStatusPending, BillingDate: &now, Version: 4}

	suite.mockRepo.On("FindJobByKey", ctx, "IMP-101", "24-25").Return(current, nil).Once()
	suite.mockRepo.On("UpdateJob", ctx, "IMP-101", "24-25", mock.MatchedBy(func(p domain.JobPatch) bool {
		return p.BillingDate != nil && p.Status == nil
	}), int64(3), "user-2").Return(updated, nil).Once()

	job, err := suite.service.UpdateJob(ctx, "IMP-101", "24-25", req, "user-2")

	suite.Require().NoError(err)
	suite.EqualValues(4, job.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestUpdateJob_StaleVersion() {
	ctx := context.Background()
	current := &domain.Job{JobNo: "IMP-101", Year: "24-25", Status: domain.JobStatusPending, Version: 5}
	req := dto.UpdateJobRequest{ExpectedVersion: 3}

	suite.mockRepo.On("FindJobByKey", ctx, "IMP-101", "24-25").Return(current, nil).Once()
	suite.mockRepo.On("UpdateJob", ctx, "IMP-101", "24-25", mock.Anything, int64(3), "user-2").
		Return(nil, apperrors.ErrVersionConflict).Once()

	job, err := suite.service.UpdateJob(ctx, "IMP-101", "24-25", req, "user-2")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrVersionConflict)
}

func (suite *JobServiceTestSuite) TestUpdateJob_CancelledIsTerminal() {
	ctx := context.Background()
	current := &domain.Job{JobNo: "IMP-101", Year: "24-25", Status: domain.JobStatusCancelled, Version: 2}

	suite.mockRepo.On("FindJobByKey", ctx, "IMP-101", "24-25").Return(current, nil).Once()

	job, err := suite.service.UpdateJob(ctx, "IMP-101", "24-25", dto.UpdateJobRequest{ExpectedVersion: 2}, "user-2")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateJob")
}

func (suite *JobServiceTestSuite) TestListJobsByStage_UnknownBucket() {
	jobs, total, err := suite.service.ListJobsByStage(context.Background(), "24-25", "bogus_bucket", pagination.Params{Page: 1, Limit: 10}, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(jobs)
	suite.Zero(total)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListJobsByBucket")
}

func (suite *JobServiceTestSuite) TestListJobsByStage_PassesResolvedBucket() {
	ctx := context.Background()
	params := pagination.Params{Page: 2, Limit: 10}
	items := []domain.Job{{JobNo: "IMP-11"}, {JobNo: "IMP-12"}}

	suite.mockRepo.On("ListJobsByBucket", ctx, "24-25", mock.MatchedBy(func(b stages.Bucket) bool {
		return b.Key == stages.KeyBillingPending
	}), params, "acme").Return(items, int64(25), nil).Once()

	jobs, total, err := suite.service.ListJobsByStage(ctx, "24-25", stages.KeyBillingPending, params, " acme ")

	suite.Require().NoError(err)
	suite.Len(jobs, 2)
	suite.EqualValues(25, total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}
