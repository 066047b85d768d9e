package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
)

type reportingService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepository
	billRepo     portsrepo.RecurringBillRepository
	paymentRepo  portsrepo.PaymentTrackingRepository
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(
	propertyRepo portsrepo.PropertyRepository,
	billRepo portsrepo.RecurringBillRepository,
	paymentRepo portsrepo.PaymentTrackingRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		propertyRepo: propertyRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlyReport assembles the bills due in one month, their payment state and
// the aggregate cash-flow picture.
func (s *reportingService) MonthlyReport(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	bills, err := s.billRepo.ListBills(ctx, portsrepo.BillListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	payments, err := s.paymentRepo.ListPaymentsForPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	paymentsByBill := make(map[int64]*dto.PaymentTrackingResponse, len(payments))
	for i := range payments {
		resp := dto.ToPaymentTrackingResponse(&payments[i])
		paymentsByBill[payments[i].BillID] = &resp
	}

	due := cashflow.BillsDueIn(bills, month, year)

	billRows := make([]dto.BillWithPaymentStatus, len(due))
	for i := range due {
		tracking := paymentsByBill[due[i].BillID]
		billRows[i] = dto.BillWithPaymentStatus{
			Bill:     dto.ToRecurringBillResponse(&due[i]),
			IsPaid:   tracking != nil && tracking.IsPaid,
			Tracking: tracking,
		}
	}

	isPaid := func(billID int64) bool {
		tracking := paymentsByBill[billID]
		return tracking != nil && tracking.IsPaid
	}

	s.LogDebug(ctx, "monthly report assembled",
		slog.Int("month", month),
		slog.Int("year", year),
		slog.Int("bills_due", len(due)))

	return &dto.MonthlyReportResponse{
		Month:      month,
		Year:       year,
		Bills:      billRows,
		Totals:     cashflow.MonthlyTotals(properties, due),
		BillTotals: cashflow.ComputeBillTotals(due, isPaid),
	}, nil
}

// YearlyReport assembles the twelve-month summary and each property's annual
// return for one calendar year.
func (s *reportingService) YearlyReport(ctx context.Context, year int) (*dto.YearlyReportResponse, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	bills, err := s.billRepo.ListBills(ctx, portsrepo.BillListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	breakdowns := make([]cashflow.AnnualBreakdown, len(properties))
	for i := range properties {
		breakdowns[i] = cashflow.PropertyAnnualBreakdown(properties[i], bills, year)
	}

	return &dto.YearlyReportResponse{
		Year:       year,
		Summary:    cashflow.YearlyTotals(properties, bills, year),
		Properties: breakdowns,
	}, nil
}
