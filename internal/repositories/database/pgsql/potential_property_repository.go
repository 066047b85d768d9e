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

type PgxPotentialPropertyRepository struct {
	BaseRepository
}

// newPgxPotentialPropertyRepository creates a new repository for prospective purchases.
func newPgxPotentialPropertyRepository(pool *pgxpool.Pool) portsrepo.PotentialPropertyRepository {
	return &PgxPotentialPropertyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PotentialPropertyRepository = (*PgxPotentialPropertyRepository)(nil)

const potentialPropertyColumns = `
	id, name, address, purchase_price, is_cash_purchase, down_payment_percent, interest_rate,
	loan_term_years, estimated_monthly_rent, property_tax_annual, insurance_annual, hoa_monthly,
	property_management_percent, maintenance_monthly, other_expenses_monthly, notes, status,
	created_at, updated_at`

func scanPotentialPropertyRow(row pgx.Row, prop *models.PotentialProperty) error {
	return row.Scan(
		&prop.PropertyID,
		&prop.Name,
		&prop.Address,
		&prop.PurchasePrice,
		&prop.IsCashPurchase,
		&prop.DownPaymentPercent,
		&prop.InterestRate,
		&prop.LoanTermYears,
		&prop.EstimatedMonthlyRent,
		&prop.PropertyTaxAnnual,
		&prop.InsuranceAnnual,
		&prop.HOAMonthly,
		&prop.PropertyManagementPercent,
		&prop.MaintenanceMonthly,
		&prop.OtherExpensesMonthly,
		&prop.Notes,
		&prop.Status,
		&prop.CreatedAt,
		&prop.UpdatedAt,
	)
}

// SavePotentialProperty inserts a new prospect and fills in its generated ID
// and audit timestamps.
func (r *PgxPotentialPropertyRepository) SavePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error {
	modelProp := mapping.ToModelPotentialProperty(*property)

	query := `
		INSERT INTO potential_properties (name, address, purchase_price, is_cash_purchase, down_payment_percent, interest_rate, loan_term_years, estimated_monthly_rent, property_tax_annual, insurance_annual, hoa_monthly, property_management_percent, maintenance_monthly, other_expenses_monthly, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelProp.Name,
		modelProp.Address,
		modelProp.PurchasePrice,
		modelProp.IsCashPurchase,
		modelProp.DownPaymentPercent,
		modelProp.InterestRate,
		modelProp.LoanTermYears,
		modelProp.EstimatedMonthlyRent,
		modelProp.PropertyTaxAnnual,
		modelProp.InsuranceAnnual,
		modelProp.HOAMonthly,
		modelProp.PropertyManagementPercent,
		modelProp.MaintenanceMonthly,
		modelProp.OtherExpensesMonthly,
		modelProp.Notes,
		modelProp.Status,
	).Scan(&property.PropertyID, &property.CreatedAt, &property.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save potential property %s: %w", modelProp.Name, err)
	}
	return nil
}

// FindPotentialPropertyByID retrieves a prospect by its ID.
func (r *PgxPotentialPropertyRepository) FindPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error) {
	query := `
		SELECT` + potentialPropertyColumns + `
		FROM potential_properties
		WHERE id = $1;
	`
	var modelProp models.PotentialProperty
	err := scanPotentialPropertyRow(r.Pool.QueryRow(ctx, query, propertyID), &modelProp)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find potential property %d: %w", propertyID, err)
	}

	domainProp := mapping.ToDomainPotentialProperty(modelProp)
	return &domainProp, nil
}

// ListPotentialProperties retrieves all prospects, newest first.
func (r *PgxPotentialPropertyRepository) ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error) {
	query := `
		SELECT` + potentialPropertyColumns + `
		FROM potential_properties
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query potential properties: %w", err)
	}
	defer rows.Close()

	modelProps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PotentialProperty, error) {
		var prop models.PotentialProperty
		err := scanPotentialPropertyRow(row, &prop)
		return prop, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect potential property rows: %w", err)
	}

	return mapping.ToDomainPotentialPropertySlice(modelProps), nil
}

// UpdatePotentialProperty persists changes to an existing prospect.
func (r *PgxPotentialPropertyRepository) UpdatePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error {
	modelProp := mapping.ToModelPotentialProperty(*property)

	query := `
		UPDATE potential_properties SET
			name = $2,
			address = $3,
			purchase_price = $4,
			is_cash_purchase = $5,
			down_payment_percent = $6,
			interest_rate = $7,
			loan_term_years = $8,
			estimated_monthly_rent = $9,
			property_tax_annual = $10,
			insurance_annual = $11,
			hoa_monthly = $12,
			property_management_percent = $13,
			maintenance_monthly = $14,
			other_expenses_monthly = $15,
			notes = $16,
			status = $17,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelProp.PropertyID,
		modelProp.Name,
		modelProp.Address,
		modelProp.PurchasePrice,
		modelProp.IsCashPurchase,
		modelProp.DownPaymentPercent,
		modelProp.InterestRate,
		modelProp.LoanTermYears,
		modelProp.EstimatedMonthlyRent,
		modelProp.PropertyTaxAnnual,
		modelProp.InsuranceAnnual,
		modelProp.HOAMonthly,
		modelProp.PropertyManagementPercent,
		modelProp.MaintenanceMonthly,
		modelProp.OtherExpensesMonthly,
		modelProp.Notes,
		modelProp.Status,
	).Scan(&property.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update potential property %d: %w", modelProp.PropertyID, err)
	}
	return nil
}

// DeletePotentialProperty removes a prospect by ID.
func (r *PgxPotentialPropertyRepository) DeletePotentialProperty(ctx context.Context, propertyID int64) error {
	query := `DELETE FROM potential_properties WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete potential property %d: %w", propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
