package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// SettlementSvcFacade exposes the calculation engine. Summary computes over
// the persisted snapshot of an estate; Preview computes statelessly over a
// request payload, e.g. while the UI is still collecting records.
type SettlementSvcFacade interface {
	// Summary runs one full calculation pass over the estate's stored assets,
	// allocations and beneficiary shares.
	Summary(ctx context.Context, estateID string, userID string) (*domain.SettlementResult, error)

	// Preview runs the same calculation over records supplied in the request,
	// touching no storage.
	Preview(ctx context.Context, req dto.SettlementPreviewRequest) (*domain.SettlementResult, error)
}
