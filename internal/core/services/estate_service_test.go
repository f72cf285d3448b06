package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockEstateRepository struct {
	mock.Mock
}

func (m *MockEstateRepository) FindEstateByID(ctx context.Context, estateID string) (*domain.Estate, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estate), args.Error(1)
}

func (m *MockEstateRepository) ListEstatesByOwner(ctx context.Context, ownerUserID string, limit int, nextToken string) ([]domain.Estate, string, error) {
	args := m.Called(ctx, ownerUserID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Estate), args.String(1), args.Error(2)
}

func (m *MockEstateRepository) SaveEstate(ctx context.Context, estate domain.Estate) error {
	args := m.Called(ctx, estate)
	return args.Error(0)
}

func (m *MockEstateRepository) UpdateEstate(ctx context.Context, estate domain.Estate) error {
	args := m.Called(ctx, estate)
	return args.Error(0)
}

func (m *MockEstateRepository) DeleteEstate(ctx context.Context, estateID string, userID string, now time.Time) error {
	args := m.Called(ctx, estateID, userID, now)
	return args.Error(0)
}

type EstateServiceTestSuite struct {
	suite.Suite
	mockEstateRepo      *MockEstateRepository
	mockBeneficiaryRepo *MockBeneficiaryRepository
	service             portssvc.EstateSvcFacade
	ctx                 context.Context
	userID              string
	estateID            string
}

func (s *EstateServiceTestSuite) SetupTest() {
	s.mockEstateRepo = new(MockEstateRepository)
	s.mockBeneficiaryRepo = new(MockBeneficiaryRepository)
	s.service = services.NewEstateService(
		s.mockEstateRepo,
		services.WithBeneficiaryRepository(s.mockBeneficiaryRepo),
	)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.estateID = uuid.NewString()
}

func (s *EstateServiceTestSuite) ownedEstate(status domain.EstateStatus) *domain.Estate {
	return &domain.Estate{
		EstateID:         s.estateID,
		OwnerUserID:      s.userID,
		DeceasedName:     "Astrid Lindqvist",
		DeceasedPersonNr: "19340512-1234",
		Status:           status,
	}
}

func (s *EstateServiceTestSuite) TestCreateEstate_StartsAsDraft() {
	s.mockEstateRepo.On("SaveEstate", s.ctx, mock.MatchedBy(func(e domain.Estate) bool {
		return e.Status == domain.EstateDraft && e.OwnerUserID == s.userID
	})).Return(nil).Once()

	estate, err := s.service.CreateEstate(s.ctx, dto.CreateEstateRequest{
		DeceasedName:     "Astrid Lindqvist",
		DeceasedPersonNr: "19340512-1234",
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.EstateDraft, estate.Status)
	s.NotEmpty(estate.EstateID)
	s.mockEstateRepo.AssertExpectations(s.T())
}

func (s *EstateServiceTestSuite) TestUpdateEstate_ReadyRequiresReconcilingShares() {
	s.mockEstateRepo.On("FindEstateByID", s.ctx, s.estateID).Return(s.ownedEstate(domain.EstateDraft), nil).Once()
	s.mockBeneficiaryRepo.On("ListBeneficiariesByEstate", s.ctx, s.estateID).Return([]domain.Beneficiary{
		{BeneficiaryID: uuid.NewString(), EstateID: s.estateID, Percentage: decimal.NewFromInt(60)},
		{BeneficiaryID: uuid.NewString(), EstateID: s.estateID, Percentage: decimal.NewFromInt(30)},
	}, nil).Once()

	ready := domain.EstateReady
	_, err := s.service.UpdateEstate(s.ctx, s.estateID, dto.UpdateEstateRequest{Status: &ready}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEstateRepo.AssertNotCalled(s.T(), "UpdateEstate", mock.Anything, mock.Anything)
}

func (s *EstateServiceTestSuite) TestUpdateEstate_ReadyAcceptedWhenSharesSumToHundred() {
	s.mockEstateRepo.On("FindEstateByID", s.ctx, s.estateID).Return(s.ownedEstate(domain.EstateDraft), nil).Once()
	s.mockBeneficiaryRepo.On("ListBeneficiariesByEstate", s.ctx, s.estateID).Return([]domain.Beneficiary{
		{BeneficiaryID: uuid.NewString(), EstateID: s.estateID, Percentage: decimal.NewFromInt(50)},
		{BeneficiaryID: uuid.NewString(), EstateID: s.estateID, Percentage: decimal.NewFromInt(50)},
	}, nil).Once()
	s.mockEstateRepo.On("UpdateEstate", s.ctx, mock.MatchedBy(func(e domain.Estate) bool {
		return e.Status == domain.EstateReady
	})).Return(nil).Once()

	ready := domain.EstateReady
	estate, err := s.service.UpdateEstate(s.ctx, s.estateID, dto.UpdateEstateRequest{Status: &ready}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.EstateReady, estate.Status)
	s.mockEstateRepo.AssertExpectations(s.T())
}

func (s *EstateServiceTestSuite) TestUpdateEstate_SignedSkipsShareCheck() {
	s.mockEstateRepo.On("FindEstateByID", s.ctx, s.estateID).Return(s.ownedEstate(domain.EstateReady), nil).Once()
	s.mockEstateRepo.On("UpdateEstate", s.ctx, mock.Anything).Return(nil).Once()

	signed := domain.EstateSigned
	_, err := s.service.UpdateEstate(s.ctx, s.estateID, dto.UpdateEstateRequest{Status: &signed}, s.userID)

	s.Require().NoError(err)
	s.mockBeneficiaryRepo.AssertNotCalled(s.T(), "ListBeneficiariesByEstate", mock.Anything, mock.Anything)
}

func (s *EstateServiceTestSuite) TestGetEstateByID_NonOwnerGetsNotFound() {
	other := s.ownedEstate(domain.EstateDraft)
	other.OwnerUserID = uuid.NewString()
	s.mockEstateRepo.On("FindEstateByID", s.ctx, s.estateID).Return(other, nil).Once()

	_, err := s.service.GetEstateByID(s.ctx, s.estateID, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestEstateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EstateServiceTestSuite))
}
