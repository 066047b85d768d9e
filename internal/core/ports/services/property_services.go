package services

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/dto"
)

// PropertySvcFacade exposes property management operations.
type PropertySvcFacade interface {
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)
	GetPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID int64, req dto.UpdatePropertyRequest) (*domain.Property, error)
	DeleteProperty(ctx context.Context, propertyID int64) error
}
