package repositories

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
)

// PotentialPropertyRepository defines persistence for prospective purchases.
type PotentialPropertyRepository interface {
	SavePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error
	FindPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error)
	ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error)
	UpdatePotentialProperty(ctx context.Context, property *domain.PotentialProperty) error
	DeletePotentialProperty(ctx context.Context, propertyID int64) error
}
