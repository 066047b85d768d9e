package repositories

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
)

// PaymentTrackingRepository defines persistence for per-period payment state.
// UpsertPayment must be keyed on (bill_type, bill_id, payment_month,
// payment_year): setting the same period twice updates in place and never
// creates a duplicate row.
type PaymentTrackingRepository interface {
	UpsertPayment(ctx context.Context, payment *domain.PaymentTracking) error
	// UpsertPayments writes all rows in one transaction. Either every
	// payment lands or none do.
	UpsertPayments(ctx context.Context, payments []domain.PaymentTracking) error
	ListPaymentsForPeriod(ctx context.Context, month, year int) ([]domain.PaymentTracking, error)
}
