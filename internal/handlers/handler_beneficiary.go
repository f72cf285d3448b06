package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/alj030327/arvs-fl-04-sub000/internal/middleware"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/settlement"
	"github.com/gin-gonic/gin"
)

// beneficiaryHandler handles HTTP requests for the heirs of an estate.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

func newBeneficiaryHandler(bs portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{beneficiaryService: bs}
}

// registerBeneficiaryRoutes registers routes nested under /estates/:estateID.
func registerBeneficiaryRoutes(rg *gin.RouterGroup, beneficiaryService portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(beneficiaryService)

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.createBeneficiary)
		beneficiaries.GET("", h.listBeneficiaries)
		beneficiaries.PUT("/:beneficiaryID", h.updateBeneficiary)
		beneficiaries.DELETE("/:beneficiaryID", h.deleteBeneficiary)
	}
}

// createBeneficiary godoc
// @Summary Register an heir
// @Description Adds a beneficiary with a percentage share to the estate
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   beneficiary body dto.CreateBeneficiaryRequest true "Beneficiary details"
// @Success 201 {object} dto.BeneficiaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/beneficiaries [post]
func (h *beneficiaryHandler) createBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	var req dto.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBeneficiary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	beneficiary, err := h.beneficiaryService.CreateBeneficiary(c.Request.Context(), estateID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create beneficiary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create beneficiary"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBeneficiaryResponse(beneficiary))
}

// listBeneficiaries godoc
// @Summary List the estate's beneficiaries
// @Description Returns all beneficiaries plus whether their shares reconcile to exactly 100
// @Tags beneficiaries
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Success 200 {object} dto.ListBeneficiariesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/beneficiaries [get]
func (h *beneficiaryHandler) listBeneficiaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	beneficiaries, err := h.beneficiaryService.ListBeneficiaries(c.Request.Context(), estateID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Estate not found"})
			return
		}
		logger.Error("Failed to list beneficiaries", slog.String("error", err.Error()), slog.String("estate_id", estateID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list beneficiaries"})
		return
	}

	c.JSON(http.StatusOK, toListBeneficiariesResponse(beneficiaries))
}

func toListBeneficiariesResponse(beneficiaries []domain.Beneficiary) dto.ListBeneficiariesResponse {
	resp := dto.ListBeneficiariesResponse{
		Beneficiaries: make([]dto.BeneficiaryResponse, len(beneficiaries)),
		SharesValid:   settlement.ValidateShares(beneficiaries),
	}
	for i := range beneficiaries {
		resp.Beneficiaries[i] = dto.ToBeneficiaryResponse(&beneficiaries[i])
	}
	return resp
}

// updateBeneficiary godoc
// @Summary Update a beneficiary
// @Description Updates a beneficiary's details or percentage share
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   beneficiaryID path string true "Beneficiary ID"
// @Param   beneficiary body dto.UpdateBeneficiaryRequest true "Fields to update"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate or beneficiary not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/beneficiaries/{beneficiaryID} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")
	beneficiaryID := c.Param("beneficiaryID")

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	beneficiary, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), estateID, beneficiaryID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Beneficiary not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update beneficiary", slog.String("error", err.Error()), slog.String("beneficiary_id", beneficiaryID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update beneficiary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(beneficiary))
}

// deleteBeneficiary godoc
// @Summary Delete a beneficiary
// @Description Removes a beneficiary and any allocation pointing at them
// @Tags beneficiaries
// @Produce  json
// @Param   estateID path string true "Estate ID"
// @Param   beneficiaryID path string true "Beneficiary ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Estate or beneficiary not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /estates/{estateID}/beneficiaries/{beneficiaryID} [delete]
func (h *beneficiaryHandler) deleteBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estateID := c.Param("estateID")
	beneficiaryID := c.Param("beneficiaryID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.beneficiaryService.DeleteBeneficiary(c.Request.Context(), estateID, beneficiaryID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Beneficiary not found"})
			return
		}
		logger.Error("Failed to delete beneficiary", slog.String("error", err.Error()), slog.String("beneficiary_id", beneficiaryID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete beneficiary"})
		return
	}

	c.Status(http.StatusNoContent)
}
