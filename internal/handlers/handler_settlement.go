package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/alj030327/arvs-fl-04-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler exposes the distribution calculation.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// RegisterSettlementRoutes registers the per-estate summary route and the
// stateless preview route.
func RegisterSettlementRoutes(estate *gin.RouterGroup, v1 *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)

	estate.GET("/settlement", h.getSettlement)
	v1.POST("/settlements/preview", h.previewSettlement)
}

// getSettlement godoc
// @Summary Compute the estate's settlement
// @Description Runs a full calculation pass over the estate's stored assets, allocations and shares
// @Tags settlements
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} ErrorResponse "Stored records are structurally invalid"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/settlement [get]
func (h *settlementHandler) getSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.settlementService.Summary(c.Request.Context(), estateID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to compute settlement", slog.String("error", err.Error()), slog.String("estate_id", estateID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute settlement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}

// previewSettlement godoc
// @Summary Preview a settlement calculation
// @Description Runs the calculation over records supplied in the request body, touching no storage
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   preview body dto.SettlementPreviewRequest true "Snapshot to calculate over"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} ErrorResponse "Structurally invalid records"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settlements/preview [post]
func (h *settlementHandler) previewSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SettlementPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.settlementService.Preview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute settlement preview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute settlement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}
