package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
)

type paymentTrackingService struct {
	BaseService
	paymentRepo portsrepo.PaymentTrackingRepository
	billRepo    portsrepo.RecurringBillRepository
}

// NewPaymentTrackingService creates the per-period payment state service.
func NewPaymentTrackingService(paymentRepo portsrepo.PaymentTrackingRepository, billRepo portsrepo.RecurringBillRepository) portssvc.PaymentTrackingSvcFacade {
	return &paymentTrackingService{paymentRepo: paymentRepo, billRepo: billRepo}
}

var _ portssvc.PaymentTrackingSvcFacade = (*paymentTrackingService)(nil)

// SetPayment marks one bill paid or unpaid for a period. The write is an
// upsert keyed on (bill, month, year), so toggling is idempotent per period.
func (s *paymentTrackingService) SetPayment(ctx context.Context, req dto.SetPaymentRequest) (*domain.PaymentTracking, error) {
	bill, err := s.billRepo.FindBillByID(ctx, req.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bill %d: %w", req.BillID, err)
	}

	payment := domain.PaymentTracking{
		BillType:     domain.BillTypeRecurring,
		BillID:       bill.BillID,
		PropertyID:   bill.PropertyID,
		PaymentMonth: req.PaymentMonth,
		PaymentYear:  req.PaymentYear,
		IsPaid:       req.IsPaid,
		Notes:        req.Notes,
	}
	if req.PropertyID != nil {
		payment.PropertyID = req.PropertyID
	}

	if req.IsPaid {
		now := time.Now()
		payment.PaidDate = &now
		if req.AmountPaid != nil {
			payment.AmountPaid = req.AmountPaid
		} else {
			cost := cashflow.BillCost(*bill)
			payment.AmountPaid = &cost
		}
	}

	if err := s.paymentRepo.UpsertPayment(ctx, &payment); err != nil {
		s.LogError(ctx, err, "failed to set payment",
			slog.Int64("bill_id", req.BillID),
			slog.Int("month", req.PaymentMonth),
			slog.Int("year", req.PaymentYear))
		return nil, err
	}

	return &payment, nil
}

func (s *paymentTrackingService) ListPaymentsForPeriod(ctx context.Context, month, year int) ([]domain.PaymentTracking, error) {
	payments, err := s.paymentRepo.ListPaymentsForPeriod(ctx, month, year)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments", slog.Int("month", month), slog.Int("year", year))
		return nil, err
	}
	if payments == nil {
		payments = []domain.PaymentTracking{}
	}
	return payments, nil
}

// MarkAllForPeriod flips every bill due in the period to the requested state
// and returns how many rows were written. All rows go through one
// transactional upsert, so the period is never left half-marked.
func (s *paymentTrackingService) MarkAllForPeriod(ctx context.Context, req dto.MarkAllPaymentsRequest) (int, error) {
	bills, err := s.billRepo.ListBills(ctx, portsrepo.BillListFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list bills: %w", err)
	}

	due := cashflow.BillsDueIn(bills, req.PaymentMonth, req.PaymentYear)
	now := time.Now()

	payments := make([]domain.PaymentTracking, 0, len(due))
	for i := range due {
		bill := due[i]
		payment := domain.PaymentTracking{
			BillType:     domain.BillTypeRecurring,
			BillID:       bill.BillID,
			PropertyID:   bill.PropertyID,
			PaymentMonth: req.PaymentMonth,
			PaymentYear:  req.PaymentYear,
			IsPaid:       req.IsPaid,
			Notes:        req.Notes,
		}
		if req.IsPaid {
			paidDate := now
			cost := cashflow.BillCost(bill)
			payment.PaidDate = &paidDate
			payment.AmountPaid = &cost
		}
		payments = append(payments, payment)
	}

	if err := s.paymentRepo.UpsertPayments(ctx, payments); err != nil {
		s.LogError(ctx, err, "failed to mark payments",
			slog.Int("month", req.PaymentMonth),
			slog.Int("year", req.PaymentYear))
		return 0, err
	}

	s.LogInfo(ctx, "marked payments for period",
		slog.Int("count", len(payments)),
		slog.Bool("is_paid", req.IsPaid),
		slog.Int("month", req.PaymentMonth),
		slog.Int("year", req.PaymentYear))
	return len(payments), nil
}
