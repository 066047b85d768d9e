package repositories

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
)

// BillListFilter narrows ListBills. The zero value lists every active bill.
type BillListFilter struct {
	PropertyID      *int64
	IncludeInactive bool
}

// RecurringBillRepository defines persistence operations for recurring bills.
// List results resolve the owning property's name via a LEFT JOIN, so bills
// whose property has been deleted still come back (with an empty name).
type RecurringBillRepository interface {
	SaveBill(ctx context.Context, bill *domain.RecurringBill) error
	FindBillByID(ctx context.Context, billID int64) (*domain.RecurringBill, error)
	ListBills(ctx context.Context, filter BillListFilter) ([]domain.RecurringBill, error)
	UpdateBill(ctx context.Context, bill *domain.RecurringBill) error
	DeleteBill(ctx context.Context, billID int64) error
}
