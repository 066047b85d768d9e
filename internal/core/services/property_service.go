package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// defaultManagementPercent applies when a property is created without one.
var defaultManagementPercent = decimal.NewFromInt(10)

type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepository
}

// NewPropertyService creates the property management service.
func NewPropertyService(propertyRepo portsrepo.PropertyRepository) portssvc.PropertySvcFacade {
	return &propertyService{propertyRepo: propertyRepo}
}

var _ portssvc.PropertySvcFacade = (*propertyService)(nil)

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	managementPercent := defaultManagementPercent
	if req.PropertyManagementPercent != nil {
		managementPercent = *req.PropertyManagementPercent
	}
	isRental := true
	if req.IsRental != nil {
		isRental = *req.IsRental
	}

	property := domain.Property{
		Name:                      req.Name,
		Address:                   req.Address,
		MonthlyRent:               decimalOrZero(req.MonthlyRent),
		PropertyManagementPercent: managementPercent,
		ExtraMonthlyExpenses:      decimalOrZero(req.ExtraMonthlyExpenses),
		HOAFee:                    decimalOrZero(req.HOAFee),
		IsPaidOff:                 req.IsPaidOff,
		IsRental:                  isRental,
		PurchasePrice:             decimalOrZero(req.PurchasePrice),
		Notes:                     req.Notes,
	}

	if err := s.propertyRepo.SaveProperty(ctx, &property); err != nil {
		s.LogError(ctx, err, "failed to create property", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.LogInfo(ctx, "property created", slog.Int64("property_id", property.PropertyID))
	return &property, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list properties")
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	return properties, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID int64, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	property.Name = req.Name
	property.Address = req.Address
	property.MonthlyRent = decimalOrZero(req.MonthlyRent)
	if req.PropertyManagementPercent != nil {
		property.PropertyManagementPercent = *req.PropertyManagementPercent
	}
	property.ExtraMonthlyExpenses = decimalOrZero(req.ExtraMonthlyExpenses)
	property.HOAFee = decimalOrZero(req.HOAFee)
	property.IsPaidOff = req.IsPaidOff
	if req.IsRental != nil {
		property.IsRental = *req.IsRental
	}
	property.PurchasePrice = decimalOrZero(req.PurchasePrice)
	property.Notes = req.Notes

	if err := s.propertyRepo.UpdateProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "failed to update property", slog.Int64("property_id", propertyID))
		return nil, err
	}

	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, propertyID int64) error {
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "property deleted", slog.Int64("property_id", propertyID))
	return nil
}
