package services_test

import (
	"context"
	"testing"

	"github.com/rentledger/rentledger_backend/internal/apperrors"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/core/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PotentialPropertyRepository ---
type MockPotentialPropertyRepository struct {
	mock.Mock
}

func (m *MockPotentialPropertyRepository) SavePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPotentialPropertyRepository) FindPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotentialProperty), args.Error(1)
}

func (m *MockPotentialPropertyRepository) ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PotentialProperty), args.Error(1)
}

func (m *MockPotentialPropertyRepository) UpdatePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPotentialPropertyRepository) DeletePotentialProperty(ctx context.Context, propertyID int64) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

// --- Test Suite ---
type PotentialPropertyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPotentialPropertyRepository
	service  portssvc.PotentialPropertySvcFacade
}

func (suite *PotentialPropertyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPotentialPropertyRepository)
	suite.service = services.NewPotentialPropertyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PotentialPropertyServiceTestSuite) TestCreatePotentialProperty_FinancingDefaults() {
	ctx := context.Background()
	price := decimal.NewFromInt(150000)
	rent := decimal.NewFromInt(1400)
	req := dto.CreatePotentialPropertyRequest{
		Name:                 "Oak St duplex",
		PurchasePrice:        &price,
		EstimatedMonthlyRent: &rent,
	}

	suite.mockRepo.On("SavePotentialProperty", ctx, mock.MatchedBy(func(p *domain.PotentialProperty) bool {
		return p.DownPaymentPercent.Equal(decimal.NewFromInt(20)) &&
			p.InterestRate.Equal(decimal.NewFromInt(7)) &&
			p.LoanTermYears == 30 &&
			p.PropertyManagementPercent.Equal(decimal.NewFromInt(10)) &&
			p.Status == domain.StatusAnalyzing
	})).Return(nil).Once()

	property, err := suite.service.CreatePotentialProperty(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(property)
	suite.Equal(domain.StatusAnalyzing, property.Status)
	suite.Equal(30, property.LoanTermYears)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PotentialPropertyServiceTestSuite) TestEvaluateROI_CashPurchase() {
	ctx := context.Background()
	property := &domain.PotentialProperty{
		PropertyID:           1,
		Name:                 "Cash deal",
		PurchasePrice:        decimal.NewFromInt(100000),
		IsCashPurchase:       true,
		EstimatedMonthlyRent: decimal.NewFromInt(1200),
		Status:               domain.StatusAnalyzing,
	}

	suite.mockRepo.On("FindPotentialPropertyByID", ctx, int64(1)).Return(property, nil).Once()

	got, result, err := suite.service.EvaluateROI(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(property, got)
	suite.Require().NotNil(result)
	// No expenses, so monthly cash flow is the full rent.
	suite.True(result.MonthlyCashFlow.Equal(decimal.NewFromInt(1200)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PotentialPropertyServiceTestSuite) TestEvaluateROI_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindPotentialPropertyByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	got, result, err := suite.service.EvaluateROI(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PotentialPropertyServiceTestSuite) TestAnalyzeAll() {
	ctx := context.Background()
	properties := []domain.PotentialProperty{
		{PropertyID: 1, Name: "A", PurchasePrice: decimal.NewFromInt(80000), IsCashPurchase: true, EstimatedMonthlyRent: decimal.NewFromInt(900), Status: domain.StatusAnalyzing},
		{PropertyID: 2, Name: "B", PurchasePrice: decimal.NewFromInt(120000), IsCashPurchase: true, EstimatedMonthlyRent: decimal.NewFromInt(1100), Status: domain.StatusInterested},
	}

	suite.mockRepo.On("ListPotentialProperties", ctx).Return(properties, nil).Once()

	analyses, err := suite.service.AnalyzeAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(analyses, 2)
	suite.Equal(int64(1), analyses[0].Property.PropertyID)
	suite.Equal(int64(2), analyses[1].Property.PropertyID)
	suite.False(analyses[0].ROI.MonthlyCashFlow.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PotentialPropertyServiceTestSuite) TestUpdatePotentialProperty_StatusTransition() {
	ctx := context.Background()
	price := decimal.NewFromInt(150000)
	rent := decimal.NewFromInt(1400)
	existing := &domain.PotentialProperty{
		PropertyID:           6,
		Name:                 "Oak St duplex",
		PurchasePrice:        price,
		EstimatedMonthlyRent: rent,
		Status:               domain.StatusAnalyzing,
	}
	req := dto.UpdatePotentialPropertyRequest{
		Name:                 "Oak St duplex",
		PurchasePrice:        &price,
		EstimatedMonthlyRent: &rent,
		Status:               "offer_made",
	}

	suite.mockRepo.On("FindPotentialPropertyByID", ctx, int64(6)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePotentialProperty", ctx, mock.MatchedBy(func(p *domain.PotentialProperty) bool {
		return p.PropertyID == 6 && p.Status == domain.StatusOfferMade
	})).Return(nil).Once()

	property, err := suite.service.UpdatePotentialProperty(ctx, 6, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOfferMade, property.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPotentialPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PotentialPropertyServiceTestSuite))
}
