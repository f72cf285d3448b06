package services_test

import (
	"context"
	"testing"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mocks ---

type MockEstateAuthorizer struct {
	mock.Mock
}

func (m *MockEstateAuthorizer) AuthorizeEstateAccess(ctx context.Context, estateID string, userID string) (*domain.Estate, error) {
	args := m.Called(ctx, estateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estate), args.Error(1)
}

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssetsByEstate(ctx context.Context, estateID string) ([]domain.Asset, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) FindAllocationByAssetID(ctx context.Context, assetID string) (*domain.Allocation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) ListAllocationsByEstate(ctx context.Context, estateID string) ([]domain.Allocation, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) UpsertAllocation(ctx context.Context, allocation domain.Allocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockAllocationRepository) DeleteAllocationByAssetID(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

type MockBeneficiaryRepository struct {
	mock.Mock
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) ListBeneficiariesByEstate(ctx context.Context, estateID string) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, estateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID string) error {
	args := m.Called(ctx, beneficiaryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type SettlementServiceTestSuite struct {
	suite.Suite
	mockAssets        *MockAssetRepository
	mockAllocations   *MockAllocationRepository
	mockBeneficiaries *MockBeneficiaryRepository
	mockAuthorizer    *MockEstateAuthorizer
	service           *services.SettlementService

	estateID string
	userID   string
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockAssets = new(MockAssetRepository)
	suite.mockAllocations = new(MockAllocationRepository)
	suite.mockBeneficiaries = new(MockBeneficiaryRepository)
	suite.mockAuthorizer = new(MockEstateAuthorizer)
	suite.service = services.NewSettlementService(
		suite.mockAssets,
		suite.mockAllocations,
		suite.mockBeneficiaries,
		suite.mockAuthorizer,
	)
	suite.estateID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *SettlementServiceTestSuite) authorizeOK() {
	estate := &domain.Estate{EstateID: suite.estateID, OwnerUserID: suite.userID}
	suite.mockAuthorizer.On("AuthorizeEstateAccess", mock.Anything, suite.estateID, suite.userID).
		Return(estate, nil).Once()
}

// --- Test Cases ---

func (suite *SettlementServiceTestSuite) TestSummary_Success() {
	ctx := context.Background()
	suite.authorizeOK()

	assets := []domain.Asset{
		{AssetID: "a1", EstateID: suite.estateID, AssetType: "Sparkonto", Amount: decimal.NewFromInt(500000)},
		{AssetID: "a2", EstateID: suite.estateID, AssetType: "Privatlån", Amount: decimal.NewFromInt(100000)},
	}
	beneficiaries := []domain.Beneficiary{
		{BeneficiaryID: "b1", EstateID: suite.estateID, Name: "Anna", Percentage: decimal.NewFromInt(50)},
		{BeneficiaryID: "b2", EstateID: suite.estateID, Name: "Erik", Percentage: decimal.NewFromInt(50)},
	}

	suite.mockAssets.On("ListAssetsByEstate", ctx, suite.estateID).Return(assets, nil).Once()
	suite.mockAllocations.On("ListAllocationsByEstate", ctx, suite.estateID).Return([]domain.Allocation{}, nil).Once()
	suite.mockBeneficiaries.On("ListBeneficiariesByEstate", ctx, suite.estateID).Return(beneficiaries, nil).Once()

	result, err := suite.service.Summary(ctx, suite.estateID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.TotalAssetsValue.Equal(decimal.NewFromInt(400000)))
	suite.True(result.DistributableAmount.Equal(decimal.NewFromInt(400000)))
	suite.True(result.SharesValid)
	suite.Require().Len(result.Distributions, 2)
	suite.True(result.Distributions[0].Amount.Equal(decimal.NewFromInt(200000)))
	suite.mockAssets.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSummary_InvalidShares() {
	ctx := context.Background()
	suite.authorizeOK()

	assets := []domain.Asset{
		{AssetID: "a1", EstateID: suite.estateID, AssetType: "Fonder", Amount: decimal.NewFromInt(100000)},
	}
	beneficiaries := []domain.Beneficiary{
		{BeneficiaryID: "b1", EstateID: suite.estateID, Percentage: decimal.NewFromInt(60)},
		{BeneficiaryID: "b2", EstateID: suite.estateID, Percentage: decimal.NewFromInt(30)},
	}

	suite.mockAssets.On("ListAssetsByEstate", ctx, suite.estateID).Return(assets, nil).Once()
	suite.mockAllocations.On("ListAllocationsByEstate", ctx, suite.estateID).Return([]domain.Allocation{}, nil).Once()
	suite.mockBeneficiaries.On("ListBeneficiariesByEstate", ctx, suite.estateID).Return(beneficiaries, nil).Once()

	result, err := suite.service.Summary(ctx, suite.estateID, suite.userID)

	// Shares not summing to 100 is a validity flag, not an error.
	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.False(result.SharesValid)
	suite.Nil(result.Distributions)
	suite.True(result.TotalAssetsValue.Equal(decimal.NewFromInt(100000)))
}

func (suite *SettlementServiceTestSuite) TestSummary_Unauthorized() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeEstateAccess", mock.Anything, suite.estateID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Summary(ctx, suite.estateID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.mockAssets.AssertNotCalled(suite.T(), "ListAssetsByEstate", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestPreview_NoStorageTouched() {
	ctx := context.Background()
	half := decimal.NewFromInt(50)

	req := dto.SettlementPreviewRequest{
		Assets: []dto.SettlementAssetInput{
			{AssetID: "a1", AssetType: "Aktier", Amount: decimal.NewFromInt(300000)},
			{AssetID: "a2", AssetType: "Kreditkort", Amount: decimal.NewFromInt(20000)},
		},
		Shares: []dto.SettlementShareInput{
			{BeneficiaryID: "b1", Name: "Anna", Percentage: half},
			{BeneficiaryID: "b2", Name: "Erik", Percentage: half},
		},
	}

	result, err := suite.service.Preview(ctx, req)

	suite.Require().NoError(err)
	suite.True(result.DistributableAmount.Equal(decimal.NewFromInt(280000)))
	suite.Require().Len(result.Distributions, 2)
	suite.True(result.Distributions[0].Amount.Equal(decimal.NewFromInt(140000)))
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeEstateAccess", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAssets.AssertNotCalled(suite.T(), "ListAssetsByEstate", mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestPreview_AllocationsReducePool() {
	ctx := context.Background()
	req := dto.SettlementPreviewRequest{
		Assets: []dto.SettlementAssetInput{
			{AssetID: "a1", AssetType: "Sparkonto", Amount: decimal.NewFromInt(400000)},
			{AssetID: "a2", AssetType: "Bil", Amount: decimal.NewFromInt(150000)},
		},
		Allocations: []dto.SettlementAllocationInput{
			{AssetID: "a2", BeneficiaryID: "b1"},
		},
		Shares: []dto.SettlementShareInput{
			{BeneficiaryID: "b1", Percentage: decimal.NewFromInt(100)},
		},
	}

	result, err := suite.service.Preview(ctx, req)

	suite.Require().NoError(err)
	suite.True(result.TotalAssetsValue.Equal(decimal.NewFromInt(550000)))
	suite.True(result.AllocatedAssetValue.Equal(decimal.NewFromInt(150000)))
	suite.True(result.DistributableAmount.Equal(decimal.NewFromInt(400000)))
}

func (suite *SettlementServiceTestSuite) TestPreview_StructuralErrorRejected() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)
	req := dto.SettlementPreviewRequest{
		Assets: []dto.SettlementAssetInput{
			{AssetID: "a1", AssetType: "Sparkonto", Amount: negative},
		},
	}

	result, err := suite.service.Preview(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
