package services

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	"github.com/rentledger/rentledger_backend/internal/dto"
)

// RecurringBillSvcFacade exposes recurring-bill management, including
// one-time repair entries (bills flagged is_one_time).
type RecurringBillSvcFacade interface {
	CreateBill(ctx context.Context, req dto.CreateRecurringBillRequest) (*domain.RecurringBill, error)
	CreateRepair(ctx context.Context, req dto.CreateRepairRequest) (*domain.RecurringBill, error)
	GetBillByID(ctx context.Context, billID int64) (*domain.RecurringBill, error)
	ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.RecurringBill, error)
	UpdateBill(ctx context.Context, billID int64, req dto.UpdateRecurringBillRequest) (*domain.RecurringBill, error)
	DeleteBill(ctx context.Context, billID int64) error
}
