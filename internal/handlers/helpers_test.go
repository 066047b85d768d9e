package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/handlers"
	"github.com/rentledger/rentledger_backend/internal/platform/config"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
	"github.com/stretchr/testify/mock"
)

// --- Mock PropertyService ---
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyService) GetPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyService) UpdateProperty(ctx context.Context, propertyID int64, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyService) DeleteProperty(ctx context.Context, propertyID int64) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

var _ portssvc.PropertySvcFacade = (*MockPropertyService)(nil)

// --- Mock RecurringBillService ---
type MockRecurringBillService struct {
	mock.Mock
}

func (m *MockRecurringBillService) CreateBill(ctx context.Context, req dto.CreateRecurringBillRequest) (*domain.RecurringBill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringBill), args.Error(1)
}
func (m *MockRecurringBillService) CreateRepair(ctx context.Context, req dto.CreateRepairRequest) (*domain.RecurringBill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringBill), args.Error(1)
}
func (m *MockRecurringBillService) GetBillByID(ctx context.Context, billID int64) (*domain.RecurringBill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringBill), args.Error(1)
}
func (m *MockRecurringBillService) ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.RecurringBill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringBill), args.Error(1)
}
func (m *MockRecurringBillService) UpdateBill(ctx context.Context, billID int64, req dto.UpdateRecurringBillRequest) (*domain.RecurringBill, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringBill), args.Error(1)
}
func (m *MockRecurringBillService) DeleteBill(ctx context.Context, billID int64) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

var _ portssvc.RecurringBillSvcFacade = (*MockRecurringBillService)(nil)

// --- Mock PaymentTrackingService ---
type MockPaymentTrackingService struct {
	mock.Mock
}

func (m *MockPaymentTrackingService) SetPayment(ctx context.Context, req dto.SetPaymentRequest) (*domain.PaymentTracking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTracking), args.Error(1)
}
func (m *MockPaymentTrackingService) ListPaymentsForPeriod(ctx context.Context, month, year int) ([]domain.PaymentTracking, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentTracking), args.Error(1)
}
func (m *MockPaymentTrackingService) MarkAllForPeriod(ctx context.Context, req dto.MarkAllPaymentsRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.PaymentTrackingSvcFacade = (*MockPaymentTrackingService)(nil)

// --- Mock PotentialPropertyService ---
type MockPotentialPropertyService struct {
	mock.Mock
}

func (m *MockPotentialPropertyService) CreatePotentialProperty(ctx context.Context, req dto.CreatePotentialPropertyRequest) (*domain.PotentialProperty, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotentialProperty), args.Error(1)
}
func (m *MockPotentialPropertyService) GetPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotentialProperty), args.Error(1)
}
func (m *MockPotentialPropertyService) ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PotentialProperty), args.Error(1)
}
func (m *MockPotentialPropertyService) UpdatePotentialProperty(ctx context.Context, propertyID int64, req dto.UpdatePotentialPropertyRequest) (*domain.PotentialProperty, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotentialProperty), args.Error(1)
}
func (m *MockPotentialPropertyService) DeletePotentialProperty(ctx context.Context, propertyID int64) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}
func (m *MockPotentialPropertyService) EvaluateROI(ctx context.Context, propertyID int64) (*domain.PotentialProperty, *cashflow.ROIResult, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.PotentialProperty), args.Get(1).(*cashflow.ROIResult), args.Error(2)
}
func (m *MockPotentialPropertyService) AnalyzeAll(ctx context.Context) ([]dto.PotentialPropertyAnalysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PotentialPropertyAnalysis), args.Error(1)
}

var _ portssvc.PotentialPropertySvcFacade = (*MockPotentialPropertyService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) MonthlyReport(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlyReportResponse), args.Error(1)
}
func (m *MockReportingService) YearlyReport(ctx context.Context, year int) (*dto.YearlyReportResponse, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.YearlyReportResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// testServices bundles one mock per facade.
type testServices struct {
	property  *MockPropertyService
	bill      *MockRecurringBillService
	payment   *MockPaymentTrackingService
	potential *MockPotentialPropertyService
	reporting *MockReportingService
}

// newTestRouter wires a gin engine with the real route table over mocks.
func newTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()

	mocks := &testServices{
		property:  new(MockPropertyService),
		bill:      new(MockRecurringBillService),
		payment:   new(MockPaymentTrackingService),
		potential: new(MockPotentialPropertyService),
		reporting: new(MockReportingService),
	}

	container := &portssvc.ServiceContainer{
		Property:          mocks.property,
		RecurringBill:     mocks.bill,
		PaymentTracking:   mocks.payment,
		PotentialProperty: mocks.potential,
		Reporting:         mocks.reporting,
	}

	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{}, container)
	return router, mocks
}
