package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/alj030327/arvs-fl-04-sub000/internal/handlers"
	"github.com/alj030327/arvs-fl-04-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Summary(ctx context.Context, estateID string, userID string) (*domain.SettlementResult, error) {
	args := m.Called(ctx, estateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockSettlementService) Preview(ctx context.Context, req dto.SettlementPreviewRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

// --- Test Suite ---
type SettlementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSettlementService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SettlementHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "arv-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SettlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.mockService = new(MockSettlementService)

	v1 := suite.router.Group("/api/v1")
	estate := v1.Group("/estates/:estateID")
	handlers.RegisterSettlementRoutes(estate, v1, suite.mockService)
}

// --- Test Cases ---

func (suite *SettlementHandlerTestSuite) TestGetSettlement_Success() {
	estateID := uuid.NewString()
	userID := uuid.NewString()

	result := &domain.SettlementResult{
		TotalAssetsValue:    decimal.NewFromInt(605000),
		AllocatedAssetValue: decimal.Zero,
		DistributableAmount: decimal.NewFromInt(605000),
		SharesValid:         true,
		Distributions: []domain.BeneficiaryDistribution{
			{BeneficiaryID: "b1", Name: "Anna", Percentage: decimal.NewFromInt(50), Amount: decimal.NewFromInt(302500)},
			{BeneficiaryID: "b2", Name: "Erik", Percentage: decimal.NewFromInt(50), Amount: decimal.NewFromInt(302500)},
		},
	}
	suite.mockService.On("Summary", mock.Anything, estateID, userID).Return(result, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/estates/"+estateID+"/settlement", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.SettlementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.DistributableAmount.Equal(decimal.NewFromInt(605000)))
	suite.Equal("605 000 kr", resp.DistributableAmountDisplay)
	suite.True(resp.SharesValid)
	suite.Require().Len(resp.Distributions, 2)
	suite.Equal("302 500 kr", resp.Distributions[0].AmountDisplay)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SettlementHandlerTestSuite) TestGetSettlement_EstateNotFound() {
	estateID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Summary", mock.Anything, estateID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/estates/"+estateID+"/settlement", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SettlementHandlerTestSuite) TestGetSettlement_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/estates/"+uuid.NewString()+"/settlement", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementHandlerTestSuite) TestPreviewSettlement_Success() {
	userID := uuid.NewString()

	body := dto.SettlementPreviewRequest{
		Assets: []dto.SettlementAssetInput{
			{AssetID: "a1", AssetType: "Sparkonto", Amount: decimal.NewFromInt(100000)},
		},
		Shares: []dto.SettlementShareInput{
			{BeneficiaryID: "b1", Name: "Anna", Percentage: decimal.NewFromInt(100)},
		},
	}
	result := &domain.SettlementResult{
		TotalAssetsValue:    decimal.NewFromInt(100000),
		DistributableAmount: decimal.NewFromInt(100000),
		SharesValid:         true,
		Distributions: []domain.BeneficiaryDistribution{
			{BeneficiaryID: "b1", Name: "Anna", Percentage: decimal.NewFromInt(100), Amount: decimal.NewFromInt(100000)},
		},
	}
	suite.mockService.On("Preview", mock.Anything, mock.AnythingOfType("dto.SettlementPreviewRequest")).
		Return(result, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/settlements/preview", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.SettlementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("100 000 kr", resp.TotalAssetsValueDisplay)
}

func (suite *SettlementHandlerTestSuite) TestPreviewSettlement_InvalidBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/settlements/preview", bytes.NewReader([]byte(`{"assets": "nope"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Preview", mock.Anything, mock.Anything)
}

func TestSettlementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}
