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

type AssetServiceTestSuite struct {
	suite.Suite
	mockAssets      *MockAssetRepository
	mockAllocations *MockAllocationRepository
	mockAuthorizer  *MockEstateAuthorizer
	service         *services.AssetService

	estateID string
	userID   string
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssets = new(MockAssetRepository)
	suite.mockAllocations = new(MockAllocationRepository)
	suite.mockAuthorizer = new(MockEstateAuthorizer)
	suite.service = services.NewAssetService(
		suite.mockAssets,
		services.WithEstateAuthorizer(suite.mockAuthorizer),
		services.WithAllocationRepository(suite.mockAllocations),
	)
	suite.estateID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AssetServiceTestSuite) authorizeOK() {
	estate := &domain.Estate{EstateID: suite.estateID, OwnerUserID: suite.userID}
	suite.mockAuthorizer.On("AuthorizeEstateAccess", mock.Anything, suite.estateID, suite.userID).
		Return(estate, nil).Once()
}

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	suite.authorizeOK()

	req := dto.CreateAssetRequest{
		Bank:      "Handelsbanken",
		AssetType: "Sparkonto",
		Amount:    decimal.NewFromInt(250000),
	}

	suite.mockAssets.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, suite.estateID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.NotEmpty(asset.AssetID)
	suite.Equal(suite.estateID, asset.EstateID)
	suite.Equal(suite.userID, asset.CreatedBy)
	suite.False(asset.IsDebt())
	suite.mockAssets.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_DebtClassifiedByType() {
	ctx := context.Background()
	suite.authorizeOK()

	req := dto.CreateAssetRequest{
		Bank:      "SBAB",
		AssetType: "Bolån",
		Amount:    decimal.NewFromInt(1200000),
	}

	suite.mockAssets.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := suite.service.CreateAsset(ctx, suite.estateID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(asset.IsDebt())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_NegativeAmountRejected() {
	ctx := context.Background()
	suite.authorizeOK()

	req := dto.CreateAssetRequest{
		Bank:      "Swedbank",
		AssetType: "Sparkonto",
		Amount:    decimal.NewFromInt(-100),
	}

	asset, err := suite.service.CreateAsset(ctx, suite.estateID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockAssets.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_LockExceedingAmountRejected() {
	ctx := context.Background()
	suite.authorizeOK()

	lock := decimal.NewFromInt(60000)
	req := dto.CreateAssetRequest{
		Bank:           "SEB",
		AssetType:      "Sparkonto",
		Amount:         decimal.NewFromInt(50000),
		ToRemain:       true,
		AmountToRemain: &lock,
	}

	asset, err := suite.service.CreateAsset(ctx, suite.estateID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_EstateNotOwned() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeEstateAccess", mock.Anything, suite.estateID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateAssetRequest{Bank: "Nordea", AssetType: "Fonder", Amount: decimal.NewFromInt(1000)}

	asset, err := suite.service.CreateAsset(ctx, suite.estateID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(asset)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_Success() {
	ctx := context.Background()
	suite.authorizeOK()

	assetID := uuid.NewString()
	existing := &domain.Asset{
		AssetID:   assetID,
		EstateID:  suite.estateID,
		Bank:      "Nordea",
		AssetType: "Sparkonto",
		Amount:    decimal.NewFromInt(100000),
	}
	newAmount := decimal.NewFromInt(150000)
	req := dto.UpdateAssetRequest{Amount: &newAmount}

	suite.mockAssets.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockAssets.On("UpdateAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	updated, err := suite.service.UpdateAsset(ctx, suite.estateID, assetID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal("Nordea", updated.Bank)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_WrongEstate() {
	ctx := context.Background()
	suite.authorizeOK()

	assetID := uuid.NewString()
	existing := &domain.Asset{
		AssetID:  assetID,
		EstateID: uuid.NewString(), // belongs to another estate
		Amount:   decimal.NewFromInt(100),
	}

	suite.mockAssets.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAsset(ctx, suite.estateID, assetID, dto.UpdateAssetRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockAssets.AssertNotCalled(suite.T(), "UpdateAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_ClearsAllocation() {
	ctx := context.Background()
	suite.authorizeOK()

	assetID := uuid.NewString()
	existing := &domain.Asset{AssetID: assetID, EstateID: suite.estateID, Amount: decimal.NewFromInt(500)}

	suite.mockAssets.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockAllocations.On("DeleteAllocationByAssetID", ctx, assetID).Return(nil).Once()
	suite.mockAssets.On("DeleteAsset", ctx, assetID).Return(nil).Once()

	err := suite.service.DeleteAsset(ctx, suite.estateID, assetID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAllocations.AssertExpectations(suite.T())
	suite.mockAssets.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_NoAllocationIsFine() {
	ctx := context.Background()
	suite.authorizeOK()

	assetID := uuid.NewString()
	existing := &domain.Asset{AssetID: assetID, EstateID: suite.estateID, Amount: decimal.NewFromInt(500)}

	suite.mockAssets.On("FindAssetByID", ctx, assetID).Return(existing, nil).Once()
	suite.mockAllocations.On("DeleteAllocationByAssetID", ctx, assetID).Return(apperrors.ErrNotFound).Once()
	suite.mockAssets.On("DeleteAsset", ctx, assetID).Return(nil).Once()

	err := suite.service.DeleteAsset(ctx, suite.estateID, assetID, suite.userID)

	suite.Require().NoError(err)
}

func (suite *AssetServiceTestSuite) TestListAssets_EmptySliceForNil() {
	ctx := context.Background()
	suite.authorizeOK()

	suite.mockAssets.On("ListAssetsByEstate", ctx, suite.estateID).Return(nil, nil).Once()

	assets, err := suite.service.ListAssets(ctx, suite.estateID, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(assets)
	suite.Empty(assets)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
