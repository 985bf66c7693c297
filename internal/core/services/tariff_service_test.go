package services_test

import (
	"context"
	"testing"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TariffServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTariffRepository
	service  portssvc.TariffSvcFacade
	ctx      context.Context
}

func (suite *TariffServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTariffRepository)
	suite.service = services.NewTariffService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *TariffServiceTestSuite) TestGetTariffByHSCode_TrimsInput() {
	entry := &domain.TariffEntry{HSCode: "84713010", BasicDutySch: "10"}
	suite.mockRepo.On("FindTariffByHSCode", suite.ctx, "84713010").Return(entry, nil).Once()

	got, err := suite.service.GetTariffByHSCode(suite.ctx, "  84713010  ")

	suite.Require().NoError(err)
	suite.Equal("84713010", got.HSCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TariffServiceTestSuite) TestGetTariffByHSCode_EmptyCode() {
	_, err := suite.service.GetTariffByHSCode(suite.ctx, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTariffByHSCode")
}

func (suite *TariffServiceTestSuite) TestGetTariffByHSCode_NotFound() {
	suite.mockRepo.On("FindTariffByHSCode", suite.ctx, "00000000").
		Return(nil, apperrors.NewNotFoundError("tariff entry 00000000 not found")).Once()

	_, err := suite.service.GetTariffByHSCode(suite.ctx, "00000000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TariffServiceTestSuite) TestListTariffs_NilPageBecomesEmptySlice() {
	params := pagination.Params{Page: 1, Limit: 25}
	suite.mockRepo.On("ListTariffs", suite.ctx, "engine", params).
		Return([]domain.TariffEntry(nil), int64(0), nil).Once()

	entries, total, err := suite.service.ListTariffs(suite.ctx, " engine ", params)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
	suite.Equal(int64(0), total)
}

func (suite *TariffServiceTestSuite) TestListTariffs_Passthrough() {
	params := pagination.Params{Page: 2, Limit: 10}
	page := []domain.TariffEntry{{HSCode: "84713010"}}
	suite.mockRepo.On("ListTariffs", suite.ctx, "", mock.MatchedBy(func(p pagination.Params) bool {
		return p.Page == 2 && p.Limit == 10
	})).Return(page, int64(35), nil).Once()

	entries, total, err := suite.service.ListTariffs(suite.ctx, "", params)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.Equal(int64(35), total)
}

func TestTariffServiceSuite(t *testing.T) {
	suite.Run(t, new(TariffServiceTestSuite))
}
