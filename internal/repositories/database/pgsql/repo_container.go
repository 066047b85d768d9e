package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PropertyRepo:          newPgxPropertyRepository(dbPool),
		RecurringBillRepo:     newPgxRecurringBillRepository(dbPool),
		PaymentTrackingRepo:   newPgxPaymentTrackingRepository(dbPool),
		PotentialPropertyRepo: newPgxPotentialPropertyRepository(dbPool),
	}
}
