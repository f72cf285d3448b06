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

// assetHandler handles HTTP requests for the asset and debt records of an estate.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes nested under /estates/:estateID.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.PUT("/:assetID", h.updateAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
	}
}

// createAsset godoc
// @Summary Register an asset or debt
// @Description Adds an asset or debt record to the estate. Debt classification follows from the asset type label.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), estateID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List the estate's assets and debts
// @Description Returns all asset records plus the canonical debt type labels
// @Tags assets
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), estateID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
			return
		}
		logger.Error("Failed to list assets", slog.String("error", err.Error()), slog.String("estate_id", estateID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Updates an asset record, including its toRemain lock
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   assetID path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate or asset not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/assets/{assetID} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")
	assetID := c.Param("assetID")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), estateID, assetID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Removes an asset record and any allocation referencing it
// @Tags assets
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate or asset not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), estateID, assetID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Asset not found"})
			return
		}
		logger.Error("Failed to delete asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete asset"})
		return
	}

	c.Status(http.StatusNoContent)
}
