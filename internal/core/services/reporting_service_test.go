package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PropertyRepository ---
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) UpdateProperty(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) DeleteProperty(ctx context.Context, propertyID int64) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockPropertyRepo *MockPropertyRepository
	mockBillRepo     *MockRecurringBillRepository
	mockPaymentRepo  *MockPaymentTrackingRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockPropertyRepo = new(MockPropertyRepository)
	suite.mockBillRepo = new(MockRecurringBillRepository)
	suite.mockPaymentRepo = new(MockPaymentTrackingRepository)
	suite.service = services.NewReportingService(suite.mockPropertyRepo, suite.mockBillRepo, suite.mockPaymentRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestMonthlyReport() {
	ctx := context.Background()
	properties := []domain.Property{
		{PropertyID: 1, Name: "Maple", MonthlyRent: decimal.NewFromInt(2000), PropertyManagementPercent: decimal.NewFromInt(10), IsRental: true},
	}
	november := 11
	bills := []domain.RecurringBill{
		{BillID: 1, Name: "Mortgage", Amount: decimal.NewFromInt(900), EscrowAmount: decimal.NewFromInt(250), Frequency: domain.FrequencyMonthly, Category: domain.CategoryMortgage, IsActive: true},
		{BillID: 2, Name: "Tax", Amount: decimal.NewFromInt(1200), Frequency: domain.FrequencyAnnual, DueMonth: &november, Category: domain.CategoryTaxes, IsActive: true},
	}
	now := time.Now()
	amountPaid := decimal.NewFromInt(1150)
	payments := []domain.PaymentTracking{
		{TrackingID: 1, BillType: domain.BillTypeRecurring, BillID: 1, PaymentMonth: 3, PaymentYear: 2026, IsPaid: true, PaidDate: &now, AmountPaid: &amountPaid},
	}

	suite.mockPropertyRepo.On("ListProperties", ctx).Return(properties, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, portsrepo.BillListFilter{}).Return(bills, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsForPeriod", ctx, 3, 2026).Return(payments, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 3, 2026)

	suite.Require().NoError(err)
	suite.Equal(3, report.Month)
	suite.Equal(2026, report.Year)
	// The annual November tax bill is not due in March.
	suite.Require().Len(report.Bills, 1)
	suite.Equal(int64(1), report.Bills[0].Bill.BillID)
	suite.True(report.Bills[0].IsPaid)
	suite.Require().NotNil(report.Bills[0].Tracking)

	// Income 2000, management 200, bills 900 + 250 escrow.
	suite.True(report.Totals.TotalIncome.Equal(decimal.NewFromInt(2000)))
	suite.True(report.Totals.TotalBills.Equal(decimal.NewFromInt(1150)))
	suite.True(report.Totals.NetIncome.Equal(decimal.NewFromInt(650)))

	suite.True(report.BillTotals.Paid.Equal(decimal.NewFromInt(1150)))
	suite.True(report.BillTotals.Unpaid.IsZero())
	suite.mockPropertyRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestYearlyReport() {
	ctx := context.Background()
	propertyID := int64(1)
	properties := []domain.Property{
		{PropertyID: 1, Name: "Maple", MonthlyRent: decimal.NewFromInt(2000), PropertyManagementPercent: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(200000), IsRental: true},
	}
	bills := []domain.RecurringBill{
		{BillID: 1, PropertyID: &propertyID, Name: "Mortgage", Amount: decimal.NewFromInt(900), Frequency: domain.FrequencyMonthly, Category: domain.CategoryMortgage, IsActive: true},
	}

	suite.mockPropertyRepo.On("ListProperties", ctx).Return(properties, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, portsrepo.BillListFilter{}).Return(bills, nil).Once()

	report, err := suite.service.YearlyReport(ctx, 2026)

	suite.Require().NoError(err)
	suite.Equal(2026, report.Year)
	suite.Require().Len(report.Summary.Months, 12)
	suite.Require().Len(report.Properties, 1)
	suite.Equal("Maple", report.Properties[0].PropertyName)
	// 12 x (2000 - 200 - 900)
	suite.True(report.Summary.Net.Equal(decimal.NewFromInt(10800)))
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_PropertiesError() {
	ctx := context.Background()

	suite.mockPropertyRepo.On("ListProperties", ctx).Return(nil, context.DeadlineExceeded).Once()

	report, err := suite.service.MonthlyReport(ctx, 1, 2026)

	suite.Require().Error(err)
	suite.Nil(report)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
