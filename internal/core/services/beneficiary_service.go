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
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/google/uuid"
)

// BeneficiaryService manages the heirs of an estate and their shares.
type BeneficiaryService struct {
	BaseService
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// NewBeneficiaryService creates the beneficiary service.
func NewBeneficiaryService(beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade, authorizer portssvc.EstateAuthorizerSvc) *BeneficiaryService {
	s := &BeneficiaryService{beneficiaryRepo: beneficiaryRepo}
	s.EstateAuthorizer = authorizer
	return s
}

func (s *BeneficiaryService) CreateBeneficiary(ctx context.Context, estateID string, req dto.CreateBeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	beneficiary := domain.Beneficiary{
		BeneficiaryID:  uuid.NewString(),
		EstateID:       estateID,
		Name:           req.Name,
		PersonalNumber: req.PersonalNumber,
		Percentage:     req.Percentage,
		AccountNumber:  req.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := beneficiary.Validate(); err != nil {
		return nil, err
	}

	if err := s.beneficiaryRepo.SaveBeneficiary(ctx, beneficiary); err != nil {
		s.LogError(ctx, err, "Failed to save beneficiary", slog.String("beneficiary_id", beneficiary.BeneficiaryID))
		return nil, fmt.Errorf("failed to create beneficiary: %w", err)
	}

	s.LogInfo(ctx, "Beneficiary created", slog.String("beneficiary_id", beneficiary.BeneficiaryID))
	return &beneficiary, nil
}

func (s *BeneficiaryService) UpdateBeneficiary(ctx context.Context, estateID string, beneficiaryID string, req dto.UpdateBeneficiaryRequest, userID string) (*domain.Beneficiary, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	beneficiary, err := s.findBeneficiaryInEstate(ctx, estateID, beneficiaryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		beneficiary.Name = *req.Name
	}
	if req.PersonalNumber != nil {
		beneficiary.PersonalNumber = *req.PersonalNumber
	}
	if req.Percentage != nil {
		beneficiary.Percentage = *req.Percentage
	}
	if req.AccountNumber != nil {
		beneficiary.AccountNumber = *req.AccountNumber
	}
	beneficiary.LastUpdatedAt = time.Now()
	beneficiary.LastUpdatedBy = userID

	if err := beneficiary.Validate(); err != nil {
		return nil, err
	}

	if err := s.beneficiaryRepo.UpdateBeneficiary(ctx, *beneficiary); err != nil {
		s.LogError(ctx, err, "Failed to update beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return nil, fmt.Errorf("failed to update beneficiary: %w", err)
	}

	s.LogInfo(ctx, "Beneficiary updated", slog.String("beneficiary_id", beneficiaryID))
	return beneficiary, nil
}

func (s *BeneficiaryService) DeleteBeneficiary(ctx context.Context, estateID string, beneficiaryID string, userID string) error {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return err
	}

	if _, err := s.findBeneficiaryInEstate(ctx, estateID, beneficiaryID); err != nil {
		return err
	}

	if err := s.beneficiaryRepo.DeleteBeneficiary(ctx, beneficiaryID); err != nil {
		s.LogError(ctx, err, "Failed to delete beneficiary", slog.String("beneficiary_id", beneficiaryID))
		return fmt.Errorf("failed to delete beneficiary: %w", err)
	}

	s.LogInfo(ctx, "Beneficiary deleted", slog.String("beneficiary_id", beneficiaryID))
	return nil
}

func (s *BeneficiaryService) ListBeneficiaries(ctx context.Context, estateID string, userID string) ([]domain.Beneficiary, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	beneficiaries, err := s.beneficiaryRepo.ListBeneficiariesByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list beneficiaries", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	if beneficiaries == nil {
		return []domain.Beneficiary{}, nil
	}
	return beneficiaries, nil
}

func (s *BeneficiaryService) findBeneficiaryInEstate(ctx context.Context, estateID string, beneficiaryID string) (*domain.Beneficiary, error) {
	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find beneficiary", slog.String("beneficiary_id", beneficiaryID))
		}
		return nil, err
	}
	if beneficiary.EstateID != estateID {
		return nil, fmt.Errorf("beneficiary %s: %w", beneficiaryID, apperrors.ErrNotFound)
	}
	return beneficiary, nil
}
