package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentledger/rentledger_backend/internal/apperrors"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
)

type recurringBillService struct {
	BaseService
	billRepo portsrepo.RecurringBillRepository
}

// NewRecurringBillService creates the bill management service.
func NewRecurringBillService(billRepo portsrepo.RecurringBillRepository) portssvc.RecurringBillSvcFacade {
	return &recurringBillService{billRepo: billRepo}
}

var _ portssvc.RecurringBillSvcFacade = (*recurringBillService)(nil)

// validateBillSchedule enforces the schedule rules shared by create and
// update: annual bills and one-time entries must name their due month, and
// one-time entries must pin a year.
func validateBillSchedule(frequency domain.BillFrequency, dueMonth *int, isOneTime bool, oneTimeYear *int) error {
	if isOneTime {
		if dueMonth == nil {
			return fmt.Errorf("%w: one-time bills require dueMonth", apperrors.ErrValidation)
		}
		if oneTimeYear == nil {
			return fmt.Errorf("%w: one-time bills require oneTimeYear", apperrors.ErrValidation)
		}
		return nil
	}
	if frequency == domain.FrequencyAnnual && dueMonth == nil {
		return fmt.Errorf("%w: annual bills require dueMonth", apperrors.ErrValidation)
	}
	return nil
}

func (s *recurringBillService) CreateBill(ctx context.Context, req dto.CreateRecurringBillRequest) (*domain.RecurringBill, error) {
	frequency := domain.BillFrequency(req.Frequency)
	if frequency == "" {
		frequency = domain.FrequencyMonthly
	}
	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := validateBillSchedule(frequency, req.DueMonth, req.IsOneTime, req.OneTimeYear); err != nil {
		return nil, err
	}

	bill := domain.RecurringBill{
		PropertyID:   req.PropertyID,
		Name:         req.Name,
		Amount:       decimalOrZero(req.Amount),
		Frequency:    frequency,
		DueMonth:     req.DueMonth,
		Category:     category,
		PaymentLink:  req.PaymentLink,
		Notes:        req.Notes,
		IsOneTime:    req.IsOneTime,
		OneTimeYear:  req.OneTimeYear,
		EscrowAmount: decimalOrZero(req.EscrowAmount),
		IsActive:     isActive,
	}

	if err := s.billRepo.SaveBill(ctx, &bill); err != nil {
		s.LogError(ctx, err, "failed to create bill", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.LogInfo(ctx, "bill created", slog.Int64("bill_id", bill.BillID), slog.String("frequency", string(bill.Frequency)))
	return &bill, nil
}

// CreateRepair records a one-time repair expense as a bill pinned to one
// month. The generated name follows the "January 2026 - new water heater"
// convention the monthly view sorts under.
func (s *recurringBillService) CreateRepair(ctx context.Context, req dto.CreateRepairRequest) (*domain.RecurringBill, error) {
	name := fmt.Sprintf("%s %d - %s", time.Month(req.Month).String(), req.Year, req.Description)

	bill := domain.RecurringBill{
		PropertyID:  req.PropertyID,
		Name:        name,
		Amount:      decimalOrZero(req.Amount),
		Frequency:   domain.FrequencyAnnual,
		DueMonth:    &req.Month,
		Category:    domain.CategoryRepairs,
		Notes:       req.Notes,
		IsOneTime:   true,
		OneTimeYear: &req.Year,
		IsActive:    true,
	}

	if err := s.billRepo.SaveBill(ctx, &bill); err != nil {
		s.LogError(ctx, err, "failed to create repair", slog.String("name", name))
		return nil, fmt.Errorf("failed to create repair: %w", err)
	}

	s.LogInfo(ctx, "repair created", slog.Int64("bill_id", bill.BillID), slog.Int("month", req.Month), slog.Int("year", req.Year))
	return &bill, nil
}

func (s *recurringBillService) GetBillByID(ctx context.Context, billID int64) (*domain.RecurringBill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

func (s *recurringBillService) ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.RecurringBill, error) {
	bills, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list bills")
		return nil, err
	}
	if bills == nil {
		bills = []domain.RecurringBill{}
	}
	return bills, nil
}

func (s *recurringBillService) UpdateBill(ctx context.Context, billID int64, req dto.UpdateRecurringBillRequest) (*domain.RecurringBill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	frequency := domain.BillFrequency(req.Frequency)
	if frequency == "" {
		frequency = bill.Frequency
	}
	if err := validateBillSchedule(frequency, req.DueMonth, req.IsOneTime, req.OneTimeYear); err != nil {
		return nil, err
	}

	bill.PropertyID = req.PropertyID
	bill.Name = req.Name
	bill.Amount = decimalOrZero(req.Amount)
	bill.Frequency = frequency
	bill.DueMonth = req.DueMonth
	if req.Category != "" {
		bill.Category = req.Category
	}
	bill.PaymentLink = req.PaymentLink
	bill.Notes = req.Notes
	bill.IsOneTime = req.IsOneTime
	bill.OneTimeYear = req.OneTimeYear
	bill.EscrowAmount = decimalOrZero(req.EscrowAmount)
	if req.IsActive != nil {
		bill.IsActive = *req.IsActive
	}

	if err := s.billRepo.UpdateBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "failed to update bill", slog.Int64("bill_id", billID))
		return nil, err
	}

	return bill, nil
}

func (s *recurringBillService) DeleteBill(ctx context.Context, billID int64) error {
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		return err
	}
	s.LogInfo(ctx, "bill deleted", slog.Int64("bill_id", billID))
	return nil
}
