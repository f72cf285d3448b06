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

// allocationHandler handles HTTP requests for direct asset-to-beneficiary
// assignments.
type allocationHandler struct {
	allocationService portssvc.AllocationSvcFacade
}

func newAllocationHandler(as portssvc.AllocationSvcFacade) *allocationHandler {
	return &allocationHandler{allocationService: as}
}

// registerAllocationRoutes registers routes nested under /estates/:estateID.
func registerAllocationRoutes(rg *gin.RouterGroup, allocationService portssvc.AllocationSvcFacade) {
	h := newAllocationHandler(allocationService)

	allocations := rg.Group("/allocations")
	{
		allocations.PUT("", h.setAllocation)
		allocations.GET("", h.listAllocations)
		allocations.DELETE("/:assetID", h.removeAllocation)
	}
}

// setAllocation godoc
// @Summary Assign an asset to a beneficiary
// @Description Reserves an asset for one beneficiary, taking it out of the percentage-distributable pool. Re-assigning the same asset replaces the previous assignment.
// @Tags allocations
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   allocation body dto.SetAllocationRequest true "Allocation details"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate, asset or beneficiary not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/allocations [put]
func (h *allocationHandler) setAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	var req dto.SetAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setAllocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	allocation, err := h.allocationService.SetAllocation(c.Request.Context(), estateID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to set allocation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set allocation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// listAllocations godoc
// @Summary List the estate's allocations
// @Description Returns all asset-to-beneficiary assignments of the estate
// @Tags allocations
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 200 {object} dto.ListAllocationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/allocations [get]
func (h *allocationHandler) listAllocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	allocations, err := h.allocationService.ListAllocations(c.Request.Context(), estateID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
			return
		}
		logger.Error("Failed to list allocations", slog.String("error", err.Error()), slog.String("estate_id", estateID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list allocations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAllocationsResponse(allocations))
}

// removeAllocation godoc
// @Summary Remove the allocation of an asset
// @Description Returns the asset to the percentage-distributable pool
// @Tags allocations
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate or allocation not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/allocations/{assetID} [delete]
func (h *allocationHandler) removeAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.allocationService.RemoveAllocation(c.Request.Context(), estateID, assetID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Allocation not found"})
			return
		}
		logger.Error("Failed to remove allocation", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove allocation"})
		return
	}

	c.Status(http.StatusNoContent)
}
