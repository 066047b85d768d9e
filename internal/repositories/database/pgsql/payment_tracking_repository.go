package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	"github.com/rentledger/rentledger_backend/internal/models"
	"github.com/rentledger/rentledger_backend/internal/utils/mapping"
)

type PgxPaymentTrackingRepository struct {
	BaseRepository
}

// newPgxPaymentTrackingRepository creates a new repository for payment state.
func newPgxPaymentTrackingRepository(pool *pgxpool.Pool) portsrepo.PaymentTrackingRepository {
	return &PgxPaymentTrackingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentTrackingRepository = (*PgxPaymentTrackingRepository)(nil)

const upsertPaymentQuery = `
	INSERT INTO payment_tracking (bill_type, bill_id, property_id, payment_month, payment_year, is_paid, paid_date, amount_paid, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (bill_type, bill_id, payment_month, payment_year) DO UPDATE SET
		property_id = EXCLUDED.property_id,
		is_paid = EXCLUDED.is_paid,
		paid_date = EXCLUDED.paid_date,
		amount_paid = EXCLUDED.amount_paid,
		notes = EXCLUDED.notes,
		updated_at = now()
	RETURNING id, created_at, updated_at;
`

// UpsertPayment inserts or updates the payment row for one bill and period.
// The conflict target is the unique index on (bill_type, bill_id,
// payment_month, payment_year), so repeated writes for the same period
// update in place.
func (r *PgxPaymentTrackingRepository) UpsertPayment(ctx context.Context, payment *domain.PaymentTracking) error {
	modelPayment := mapping.ToModelPaymentTracking(*payment)

	err := r.Pool.QueryRow(ctx, upsertPaymentQuery,
		modelPayment.BillType,
		modelPayment.BillID,
		modelPayment.PropertyID,
		modelPayment.PaymentMonth,
		modelPayment.PaymentYear,
		modelPayment.IsPaid,
		modelPayment.PaidDate,
		modelPayment.AmountPaid,
		modelPayment.Notes,
	).Scan(&payment.TrackingID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert payment for bill %d (%d/%d): %w",
			modelPayment.BillID, modelPayment.PaymentMonth, modelPayment.PaymentYear, err)
	}
	return nil
}

// UpsertPayments writes every payment row inside one transaction so a failure
// partway through leaves no half-marked period behind.
func (r *PgxPaymentTrackingRepository) UpsertPayments(ctx context.Context, payments []domain.PaymentTracking) error {
	if len(payments) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for i := range payments {
		modelPayment := mapping.ToModelPaymentTracking(payments[i])
		err := tx.QueryRow(ctx, upsertPaymentQuery,
			modelPayment.BillType,
			modelPayment.BillID,
			modelPayment.PropertyID,
			modelPayment.PaymentMonth,
			modelPayment.PaymentYear,
			modelPayment.IsPaid,
			modelPayment.PaidDate,
			modelPayment.AmountPaid,
			modelPayment.Notes,
		).Scan(&payments[i].TrackingID, &payments[i].CreatedAt, &payments[i].UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert payment for bill %d (%d/%d): %w",
				modelPayment.BillID, modelPayment.PaymentMonth, modelPayment.PaymentYear, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListPaymentsForPeriod retrieves every payment row recorded for one month.
func (r *PgxPaymentTrackingRepository) ListPaymentsForPeriod(ctx context.Context, month, year int) ([]domain.PaymentTracking, error) {
	query := `
		SELECT id, bill_type, bill_id, property_id, payment_month, payment_year, is_paid, paid_date, amount_paid, notes, created_at, updated_at
		FROM payment_tracking
		WHERE payment_month = $1 AND payment_year = $2
		ORDER BY bill_id;
	`
	rows, err := r.Pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for %d/%d: %w", month, year, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentTracking, error) {
		var payment models.PaymentTracking
		err := row.Scan(
			&payment.TrackingID,
			&payment.BillType,
			&payment.BillID,
			&payment.PropertyID,
			&payment.PaymentMonth,
			&payment.PaymentYear,
			&payment.IsPaid,
			&payment.PaidDate,
			&payment.AmountPaid,
			&payment.Notes,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		return payment, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect payment rows: %w", err)
	}

	return mapping.ToDomainPaymentTrackingSlice(modelPayments), nil
}
