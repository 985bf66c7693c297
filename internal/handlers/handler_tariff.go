package handlers

import (
	"net/http"

	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
	"github.com/ImpexFlow/impex_backoffice_app/internal/dto"
	"github.com/ImpexFlow/impex_backoffice_app/internal/middleware"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// tariffHandler serves the read-only tariff reference table.
type tariffHandler struct {
	tariffService portssvc.TariffSvcFacade
}

// newTariffHandler creates a new tariffHandler.
func newTariffHandler(ts portssvc.TariffSvcFacade) *tariffHandler {
	return &tariffHandler{tariffService: ts}
}

// registerTariffRoutes registers routes related to tariff entries.
func registerTariffRoutes(rg *gin.RouterGroup, ts portssvc.TariffSvcFacade) {
	h := newTariffHandler(ts)

	tariffs := rg.Group("/tariffs")
	{
		tariffs.GET("", h.listTariffs)
		tariffs.GET("/:hsCode", h.getTariff)
	}
}

// getTariff godoc
// @Summary Get a tariff entry
// @Tags tariffs
// @Produce json
// @Param hsCode path string true "HS code"
// @Success 200 {object} dto.TariffResponse
// @Failure 404 {object} map[string]string "Tariff entry not found"
// @Router /tariffs/{hsCode} [get]
func (h *tariffHandler) getTariff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.tariffService.GetTariffByHSCode(c.Request.Context(), c.Param("hsCode"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTariffResponse(entry))
}

// listTariffs godoc
// @Summary List tariff entries
// @Description One page of the tariff table, with optional search over HS code and description
// @Tags tariffs
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param search query string false "Free text over hs_code/item_description"
// @Success 200 {object} dto.TariffListResponse
// @Router /tariffs [get]
func (h *tariffHandler) listTariffs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	entries, total, err := h.tariffService.ListTariffs(c.Request.Context(), c.Query("search"), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.TariffListResponse{Total: total, Items: dto.ToListTariffResponse(entries)})
}
