package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/settlement"
	"github.com/google/uuid"
)

type estateService struct {
	BaseService
	estateRepo      portsrepo.EstateRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// EstateServiceOption configures optional dependencies of the estate service.
type EstateServiceOption func(*estateService)

// WithBeneficiaryRepository enables the READY status gate, which requires the
// estate's shares to reconcile before the transition is accepted.
func WithBeneficiaryRepository(repo portsrepo.BeneficiaryRepositoryFacade) EstateServiceOption {
	return func(s *estateService) {
		s.beneficiaryRepo = repo
	}
}

// NewEstateService creates the estate service.
func NewEstateService(estateRepo portsrepo.EstateRepositoryFacade, opts ...EstateServiceOption) *estateService {
	s := &estateService{estateRepo: estateRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *estateService) CreateEstate(ctx context.Context, req dto.CreateEstateRequest, userID string) (*domain.Estate, error) {
	now := time.Now()
	estate := domain.Estate{
		EstateID:         uuid.NewString(),
		OwnerUserID:      userID,
		DeceasedName:     req.DeceasedName,
		DeceasedPersonNr: req.DeceasedPersonNr,
		Status:           domain.EstateDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.estateRepo.SaveEstate(ctx, estate); err != nil {
		s.LogError(ctx, err, "Failed to save estate", slog.String("estate_id", estate.EstateID))
		return nil, fmt.Errorf("failed to create estate: %w", err)
	}

	s.LogInfo(ctx, "Estate created", slog.String("estate_id", estate.EstateID))
	return &estate, nil
}

func (s *estateService) GetEstateByID(ctx context.Context, estateID string, userID string) (*domain.Estate, error) {
	return s.AuthorizeEstateAccess(ctx, estateID, userID)
}

func (s *estateService) ListEstates(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Estate, string, error) {
	estates, next, err := s.estateRepo.ListEstatesByOwner(ctx, userID, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list estates", slog.String("owner_user_id", userID))
		}
		return nil, "", err
	}
	if estates == nil {
		estates = []domain.Estate{}
	}
	return estates, next, nil
}

func (s *estateService) UpdateEstate(ctx context.Context, estateID string, req dto.UpdateEstateRequest, userID string) (*domain.Estate, error) {
	estate, err := s.AuthorizeEstateAccess(ctx, estateID, userID)
	if err != nil {
		return nil, err
	}

	if req.DeceasedName != nil {
		estate.DeceasedName = *req.DeceasedName
	}
	if req.DeceasedPersonNr != nil {
		estate.DeceasedPersonNr = *req.DeceasedPersonNr
	}
	if req.Status != nil {
		if *req.Status == domain.EstateReady && estate.Status != domain.EstateReady {
			if err := s.checkSharesReconcile(ctx, estateID); err != nil {
				return nil, err
			}
		}
		estate.Status = *req.Status
	}
	estate.LastUpdatedAt = time.Now()
	estate.LastUpdatedBy = userID

	if err := s.estateRepo.UpdateEstate(ctx, *estate); err != nil {
		s.LogError(ctx, err, "Failed to update estate", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to update estate: %w", err)
	}

	s.LogInfo(ctx, "Estate updated", slog.String("estate_id", estateID))
	return estate, nil
}

func (s *estateService) DeleteEstate(ctx context.Context, estateID string, userID string) error {
	if _, err := s.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return err
	}

	if err := s.estateRepo.DeleteEstate(ctx, estateID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete estate", slog.String("estate_id", estateID))
		return fmt.Errorf("failed to delete estate: %w", err)
	}

	s.LogInfo(ctx, "Estate deleted", slog.String("estate_id", estateID))
	return nil
}

// checkSharesReconcile guards the READY transition: the registered shares
// must sum to exactly 100 percent.
func (s *estateService) checkSharesReconcile(ctx context.Context, estateID string) error {
	if s.beneficiaryRepo == nil {
		return nil
	}
	beneficiaries, err := s.beneficiaryRepo.ListBeneficiariesByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list beneficiaries for status check", slog.String("estate_id", estateID))
		return fmt.Errorf("failed to check beneficiary shares: %w", err)
	}
	if !settlement.ValidateShares(beneficiaries) {
		return fmt.Errorf("%w: beneficiary shares must sum to exactly 100%% before the estate can be marked READY", apperrors.ErrValidation)
	}
	return nil
}

// AuthorizeEstateAccess loads the estate and checks ownership. Non-owners get
// ErrNotFound so estate IDs cannot be probed.
func (s *estateService) AuthorizeEstateAccess(ctx context.Context, estateID string, userID string) (*domain.Estate, error) {
	estate, err := s.estateRepo.FindEstateByID(ctx, estateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find estate", slog.String("estate_id", estateID))
		}
		return nil, err
	}
	if estate.OwnerUserID != userID {
		s.LogDebug(ctx, "Estate access denied",
			slog.String("estate_id", estateID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("estate %s: %w", estateID, apperrors.ErrNotFound)
	}
	return estate, nil
}
