package dto

import (
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// CreateEstateRequest defines the data needed to open a new estate case.
type CreateEstateRequest struct {
	DeceasedName     string `json:"deceasedName" binding:"required"`
	DeceasedPersonNr string `json:"deceasedPersonNr" binding:"required"`
}

// UpdateEstateRequest defines the data allowed for updating an estate.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEstateRequest struct {
	DeceasedName     *string              `json:"deceasedName"`
	DeceasedPersonNr *string              `json:"deceasedPersonNr"`
	Status           *domain.EstateStatus `json:"status" binding:"omitempty,oneof=DRAFT READY SIGNED"`
}

// EstateResponse defines the data returned for an estate.
type EstateResponse struct {
	EstateID         string              `json:"estateID"`
	DeceasedName     string              `json:"deceasedName"`
	DeceasedPersonNr string              `json:"deceasedPersonNr"`
	Status           domain.EstateStatus `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
}

// ToEstateResponse converts a domain.Estate to EstateResponse DTO.
func ToEstateResponse(e *domain.Estate) EstateResponse {
	return EstateResponse{
		EstateID:         e.EstateID,
		DeceasedName:     e.DeceasedName,
		DeceasedPersonNr: e.DeceasedPersonNr,
		Status:           e.Status,
		CreatedAt:        e.CreatedAt,
		LastUpdatedAt:    e.LastUpdatedAt,
	}
}

// ListEstatesParams defines query parameters for listing estates.
type ListEstatesParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListEstatesResponse wraps the list of estates with the keyset token for the
// following page (empty when exhausted).
type ListEstatesResponse struct {
	Estates   []EstateResponse `json:"estates"`
	NextToken string           `json:"nextToken,omitempty"`
}
