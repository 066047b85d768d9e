package repositories

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
)

// PropertyRepository defines persistence operations for owned properties.
type PropertyRepository interface {
	SaveProperty(ctx context.Context, property *domain.Property) error
	FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, property *domain.Property) error
	DeleteProperty(ctx context.Context, propertyID int64) error
}
