package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rentledger/rentledger_backend/internal/apperrors"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	"github.com/rentledger/rentledger_backend/internal/models"
	"github.com/rentledger/rentledger_backend/internal/utils/mapping"
)

type PgxRecurringBillRepository struct {
	BaseRepository
}

// newPgxRecurringBillRepository creates a new repository for recurring bills.
func newPgxRecurringBillRepository(pool *pgxpool.Pool) portsrepo.RecurringBillRepository {
	return &PgxRecurringBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RecurringBillRepository = (*PgxRecurringBillRepository)(nil)

// The LEFT JOIN keeps bills visible after their property is deleted; such
// bills come back with a NULL property_name.
const billSelectColumns = `
	b.id, b.property_id, p.name AS property_name, b.name, b.amount, b.frequency, b.due_month,
	b.category, b.payment_link, b.notes, b.is_one_time, b.one_time_year, b.escrow_amount,
	b.is_active, b.created_at, b.updated_at`

func scanBillRow(row pgx.Row, bill *models.RecurringBill) error {
	return row.Scan(
		&bill.BillID,
		&bill.PropertyID,
		&bill.PropertyName,
		&bill.Name,
		&bill.Amount,
		&bill.Frequency,
		&bill.DueMonth,
		&bill.Category,
		&bill.PaymentLink,
		&bill.Notes,
		&bill.IsOneTime,
		&bill.OneTimeYear,
		&bill.EscrowAmount,
		&bill.IsActive,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)
}

// SaveBill inserts a new recurring bill and fills in its generated ID and
// audit timestamps.
func (r *PgxRecurringBillRepository) SaveBill(ctx context.Context, bill *domain.RecurringBill) error {
	modelBill := mapping.ToModelRecurringBill(*bill)

	query := `
		INSERT INTO recurring_bills (property_id, name, amount, frequency, due_month, category, payment_link, notes, is_one_time, one_time_year, escrow_amount, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelBill.PropertyID,
		modelBill.Name,
		modelBill.Amount,
		modelBill.Frequency,
		modelBill.DueMonth,
		modelBill.Category,
		modelBill.PaymentLink,
		modelBill.Notes,
		modelBill.IsOneTime,
		modelBill.OneTimeYear,
		modelBill.EscrowAmount,
		modelBill.IsActive,
	).Scan(&bill.BillID, &bill.CreatedAt, &bill.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save bill %s: %w", modelBill.Name, err)
	}
	return nil
}

// FindBillByID retrieves a recurring bill by its ID.
func (r *PgxRecurringBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.RecurringBill, error) {
	query := `
		SELECT` + billSelectColumns + `
		FROM recurring_bills b
		LEFT JOIN properties p ON p.id = b.property_id
		WHERE b.id = $1;
	`
	var modelBill models.RecurringBill
	err := scanBillRow(r.Pool.QueryRow(ctx, query, billID), &modelBill)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill %d: %w", billID, err)
	}

	domainBill := mapping.ToDomainRecurringBill(modelBill)
	return &domainBill, nil
}

// ListBills retrieves recurring bills, optionally narrowed to one property.
// Inactive bills are excluded unless the filter asks for them.
func (r *PgxRecurringBillRepository) ListBills(ctx context.Context, filter portsrepo.BillListFilter) ([]domain.RecurringBill, error) {
	query := `
		SELECT` + billSelectColumns + `
		FROM recurring_bills b
		LEFT JOIN properties p ON p.id = b.property_id
		WHERE ($1::bigint IS NULL OR b.property_id = $1)
		  AND ($2::boolean OR b.is_active)
		ORDER BY b.due_month NULLS FIRST, b.name;
	`
	rows, err := r.Pool.Query(ctx, query, filter.PropertyID, filter.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	modelBills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecurringBill, error) {
		var bill models.RecurringBill
		err := scanBillRow(row, &bill)
		return bill, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect bill rows: %w", err)
	}

	return mapping.ToDomainRecurringBillSlice(modelBills), nil
}

// UpdateBill persists changes to an existing recurring bill.
func (r *PgxRecurringBillRepository) UpdateBill(ctx context.Context, bill *domain.RecurringBill) error {
	modelBill := mapping.ToModelRecurringBill(*bill)

	query := `
		UPDATE recurring_bills SET
			property_id = $2,
			name = $3,
			amount = $4,
			frequency = $5,
			due_month = $6,
			category = $7,
			payment_link = $8,
			notes = $9,
			is_one_time = $10,
			one_time_year = $11,
			escrow_amount = $12,
			is_active = $13,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelBill.BillID,
		modelBill.PropertyID,
		modelBill.Name,
		modelBill.Amount,
		modelBill.Frequency,
		modelBill.DueMonth,
		modelBill.Category,
		modelBill.PaymentLink,
		modelBill.Notes,
		modelBill.IsOneTime,
		modelBill.OneTimeYear,
		modelBill.EscrowAmount,
		modelBill.IsActive,
	).Scan(&bill.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update bill %d: %w", modelBill.BillID, err)
	}
	return nil
}

// DeleteBill removes a recurring bill by ID.
func (r *PgxRecurringBillRepository) DeleteBill(ctx context.Context, billID int64) error {
	query := `DELETE FROM recurring_bills WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %d: %w", billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
