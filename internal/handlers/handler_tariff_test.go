package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// --- Mock TariffService ---
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) GetTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error) {
	args := m.Called(ctx, hsCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TariffEntry), args.Error(1)
}

func (m *MockTariffService) ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error) {
	args := m.Called(ctx, search, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TariffEntry), args.Get(1).(int64), args.Error(2)
}

var _ portssvc.TariffSvcFacade = (*MockTariffService)(nil)

// --- Test Suite ---
type TariffHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockTariff *MockTariffService
}

func (suite *TariffHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockTariff = new(MockTariffService)

	cfg := &config.Config{APIBasePath: "/api/v1", IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Job:      new(MockJobService),
		Duty:     new(MockDutyService),
		Overview: new(MockOverviewService),
		Tariff:   suite.mockTariff,
	})
}

func sampleTariff() *domain.TariffEntry {
	return &domain.TariffEntry{
		HSCode:          "84713010",
		ItemDescription: "Portable automatic data processing machines",
		Unit:            "u",
		BasicDutySch:    "10",
		BasicDutyNtfn:   "7.5",
		IGST:            "18",
		SWS:             "10",
	}
}

// --- Test Cases ---

func (suite *TariffHandlerTestSuite) TestGetTariff_Success() {
	suite.mockTariff.On("GetTariffByHSCode", mock.Anything, "84713010").Return(sampleTariff(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tariffs/84713010", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TariffResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("84713010", resp.HSCode)
	suite.Equal("7.5", resp.BasicDutyNtfn)
}

func (suite *TariffHandlerTestSuite) TestGetTariff_NotFound() {
	suite.mockTariff.On("GetTariffByHSCode", mock.Anything, "00000000").
		Return(nil, apperrors.NewNotFoundError("tariff entry 00000000 not found")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tariffs/00000000", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TariffHandlerTestSuite) TestListTariffs_PassesSearchAndPagination() {
	entries := []domain.TariffEntry{*sampleTariff()}
	suite.mockTariff.On("ListTariffs", mock.Anything, "laptop",
		mock.MatchedBy(func(p pagination.Params) bool {
			return p.Page == 3 && p.Limit == 50
		})).Return(entries, int64(101), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tariffs?search=laptop&page=3&limit=50", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TariffListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(101), resp.Total)
	suite.Len(resp.Items, 1)
}

// --- Run Test Suite ---
func TestTariffHandler(t *testing.T) {
	suite.Run(t, new(TariffHandlerTestSuite))
}
