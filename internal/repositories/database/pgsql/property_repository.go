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

type PgxPropertyRepository struct {
	BaseRepository
}

// newPgxPropertyRepository creates a new repository for owned properties.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepository {
	return &PgxPropertyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PropertyRepository = (*PgxPropertyRepository)(nil)

// SaveProperty inserts a new property and fills in its generated ID and
// audit timestamps.
func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property *domain.Property) error {
	modelProp := mapping.ToModelProperty(*property)

	query := `
		INSERT INTO properties (name, address, monthly_rent, property_management_percent, extra_monthly_expenses, hoa_fee, is_paid_off, is_rental, purchase_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelProp.Name,
		modelProp.Address,
		modelProp.MonthlyRent,
		modelProp.PropertyManagementPercent,
		modelProp.ExtraMonthlyExpenses,
		modelProp.HOAFee,
		modelProp.IsPaidOff,
		modelProp.IsRental,
		modelProp.PurchasePrice,
		modelProp.Notes,
	).Scan(&property.PropertyID, &property.CreatedAt, &property.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save property %s: %w", modelProp.Name, err)
	}
	return nil
}

// FindPropertyByID retrieves a property by its ID.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	query := `
		SELECT id, name, address, monthly_rent, property_management_percent, extra_monthly_expenses, hoa_fee, is_paid_off, is_rental, purchase_price, notes, created_at, updated_at
		FROM properties
		WHERE id = $1;
	`
	var modelProp models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&modelProp.PropertyID,
		&modelProp.Name,
		&modelProp.Address,
		&modelProp.MonthlyRent,
		&modelProp.PropertyManagementPercent,
		&modelProp.ExtraMonthlyExpenses,
		&modelProp.HOAFee,
		&modelProp.IsPaidOff,
		&modelProp.IsRental,
		&modelProp.PurchasePrice,
		&modelProp.Notes,
		&modelProp.CreatedAt,
		&modelProp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property %d: %w", propertyID, err)
	}

	domainProp := mapping.ToDomainProperty(modelProp)
	return &domainProp, nil
}

// ListProperties retrieves all properties ordered by name.
func (r *PgxPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	query := `
		SELECT id, name, address, monthly_rent, property_management_percent, extra_monthly_expenses, hoa_fee, is_paid_off, is_rental, purchase_price, notes, created_at, updated_at
		FROM properties
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	modelProps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Property, error) {
		var prop models.Property
		err := row.Scan(
			&prop.PropertyID,
			&prop.Name,
			&prop.Address,
			&prop.MonthlyRent,
			&prop.PropertyManagementPercent,
			&prop.ExtraMonthlyExpenses,
			&prop.HOAFee,
			&prop.IsPaidOff,
			&prop.IsRental,
			&prop.PurchasePrice,
			&prop.Notes,
			&prop.CreatedAt,
			&prop.UpdatedAt,
		)
		return prop, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect property rows: %w", err)
	}

	return mapping.ToDomainPropertySlice(modelProps), nil
}

// UpdateProperty persists changes to an existing property.
func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property *domain.Property) error {
	modelProp := mapping.ToModelProperty(*property)

	query := `
		UPDATE properties SET
			name = $2,
			address = $3,
			monthly_rent = $4,
			property_management_percent = $5,
			extra_monthly_expenses = $6,
			hoa_fee = $7,
			is_paid_off = $8,
			is_rental = $9,
			purchase_price = $10,
			notes = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelProp.PropertyID,
		modelProp.Name,
		modelProp.Address,
		modelProp.MonthlyRent,
		modelProp.PropertyManagementPercent,
		modelProp.ExtraMonthlyExpenses,
		modelProp.HOAFee,
		modelProp.IsPaidOff,
		modelProp.IsRental,
		modelProp.PurchasePrice,
		modelProp.Notes,
	).Scan(&property.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update property %d: %w", modelProp.PropertyID, err)
	}
	return nil
}

// DeleteProperty removes a property by ID.
func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, propertyID int64) error {
	query := `DELETE FROM properties WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property %d: %w", propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
