package services

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/dto"
)

// PaymentTrackingSvcFacade exposes per-period payment state. Writes are
// upserts; toggling the same bill and period repeatedly updates one row.
type PaymentTrackingSvcFacade interface {
	SetPayment(ctx context.Context, req dto.SetPaymentRequest) (*domain.PaymentTracking, error)
	ListPaymentsForPeriod(ctx context.Context, month, year int) ([]domain.PaymentTracking, error)
	MarkAllForPeriod(ctx context.Context, req dto.MarkAllPaymentsRequest) (int, error)
}
