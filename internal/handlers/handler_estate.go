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

// estateHandler handles HTTP requests related to estate cases.
type estateHandler struct {
	estateService portssvc.EstateSvcFacade
}

func newEstateHandler(es portssvc.EstateSvcFacade) *estateHandler {
	return &estateHandler{estateService: es}
}

// registerEstateRoutes registers routes related to estates.
func registerEstateRoutes(rg *gin.RouterGroup, estateService portssvc.EstateSvcFacade) {
	h := newEstateHandler(estateService)

	estates := rg.Group("/estates")
	{
		estates.POST("", h.createEstate)
		estates.GET("", h.listEstates)
		estates.GET("/:estateID", h.getEstate)
		estates.PUT("/:estateID", h.updateEstate)
		estates.DELETE("/:estateID", h.deleteEstate)
	}
}

// createEstate godoc
// @Summary Create a new estate case
// @Description Opens a new estate case owned by the logged-in user
// @Tags estates
// @Accept  json
// @Produce  json
// @Param   estate body dto.CreateEstateRequest true "Estate details"
// @Success 201 {object} dto.EstateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates [post]
func (h *estateHandler) createEstate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEstate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	estate, err := h.estateService.CreateEstate(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create estate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create estate"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEstateResponse(estate))
}

// listEstates godoc
// @Summary List estates
// @Description Lists the logged-in user's estate cases, newest first
// @Tags estates
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Keyset token from the previous page"
// @Success 200 {object} dto.ListEstatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates [get]
func (h *estateHandler) listEstates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEstatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	estates, nextToken, err := h.estateService.ListEstates(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list estates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list estates"})
		return
	}

	resp := dto.ListEstatesResponse{
		Estates:   make([]dto.EstateResponse, len(estates)),
		NextToken: nextToken,
	}
	for i := range estates {
		resp.Estates[i] = dto.ToEstateResponse(&estates[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getEstate godoc
// @Summary Get an estate by ID
// @Description Retrieves one of the logged-in user's estate cases
// @Tags estates
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 200 {object} dto.EstateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID} [get]
func (h *estateHandler) getEstate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	estate, err := h.estateService.GetEstateByID(c.Request.Context(), estateID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
			return
		}
		logger.Error("Failed to get estate", slog.String("error", err.Error()), slog.String("estate_id", estateID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve estate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEstateResponse(estate))
}

// updateEstate godoc
// @Summary Update an estate
// @Description Updates the details or status of an estate case
// @Tags estates
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   estate body dto.UpdateEstateRequest true "Fields to update"
// @Success 200 {object} dto.EstateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID} [put]
func (h *estateHandler) updateEstate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	var req dto.UpdateEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	estate, err := h.estateService.UpdateEstate(c.Request.Context(), estateID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update estate", slog.String("error", err.Error()), slog.String("estate_id", estateID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update estate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEstateResponse(estate))
}

// deleteEstate godoc
// @Summary Delete an estate
// @Description Removes an estate case and all dependent records
// @Tags estates
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID} [delete]
func (h *estateHandler) deleteEstate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.estateService.DeleteEstate(c.Request.Context(), estateID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
			return
		}
		logger.Error("Failed to delete estate", slog.String("error", err.Error()), slog.String("estate_id", estateID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete estate"})
		return
	}

	c.Status(http.StatusNoContent)
}
