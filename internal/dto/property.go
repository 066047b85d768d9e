package dto

import (
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a property.
// Optional numeric fields default server-side: management percent 10,
// everything else 0, isRental true.
type CreatePropertyRequest struct {
	Name                      string           `json:"name" binding:"required"`
	Address                   string           `json:"address"`
	MonthlyRent               *decimal.Decimal `json:"monthlyRent" binding:"required,gte=0"`
	PropertyManagementPercent *decimal.Decimal `json:"propertyManagementPercent" binding:"omitempty,gte=0,lte=100"`
	ExtraMonthlyExpenses      *decimal.Decimal `json:"extraMonthlyExpenses" binding:"omitempty,gte=0"`
	HOAFee                    *decimal.Decimal `json:"hoaFee" binding:"omitempty,gte=0"`
	IsPaidOff                 bool             `json:"isPaidOff"`
	IsRental                  *bool            `json:"isRental"`
	PurchasePrice             *decimal.Decimal `json:"purchasePrice" binding:"omitempty,gte=0"`
	Notes                     string           `json:"notes"`
}

// UpdatePropertyRequest is a full-record update; the caller supplies every
// field it wants kept.
type UpdatePropertyRequest struct {
	Name                      string           `json:"name" binding:"required"`
	Address                   string           `json:"address"`
	MonthlyRent               *decimal.Decimal `json:"monthlyRent" binding:"required,gte=0"`
	PropertyManagementPercent *decimal.Decimal `json:"propertyManagementPercent" binding:"omitempty,gte=0,lte=100"`
	ExtraMonthlyExpenses      *decimal.Decimal `json:"extraMonthlyExpenses" binding:"omitempty,gte=0"`
	HOAFee                    *decimal.Decimal `json:"hoaFee" binding:"omitempty,gte=0"`
	IsPaidOff                 bool             `json:"isPaidOff"`
	IsRental                  *bool            `json:"isRental"`
	PurchasePrice             *decimal.Decimal `json:"purchasePrice" binding:"omitempty,gte=0"`
	Notes                     string           `json:"notes"`
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	PropertyID                int64           `json:"propertyID"`
	Name                      string          `json:"name"`
	Address                   string          `json:"address"`
	MonthlyRent               decimal.Decimal `json:"monthlyRent"`
	PropertyManagementPercent decimal.Decimal `json:"propertyManagementPercent"`
	ExtraMonthlyExpenses      decimal.Decimal `json:"extraMonthlyExpenses"`
	HOAFee                    decimal.Decimal `json:"hoaFee"`
	IsPaidOff                 bool            `json:"isPaidOff"`
	IsRental                  bool            `json:"isRental"`
	PurchasePrice             decimal.Decimal `json:"purchasePrice"`
	Notes                     string          `json:"notes"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// ToPropertyResponse converts a domain Property to its response DTO.
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:                p.PropertyID,
		Name:                      p.Name,
		Address:                   p.Address,
		MonthlyRent:               p.MonthlyRent,
		PropertyManagementPercent: p.PropertyManagementPercent,
		ExtraMonthlyExpenses:      p.ExtraMonthlyExpenses,
		HOAFee:                    p.HOAFee,
		IsPaidOff:                 p.IsPaidOff,
		IsRental:                  p.IsRental,
		PurchasePrice:             p.PurchasePrice,
		Notes:                     p.Notes,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

// ToListPropertyResponse converts domain Properties to response DTOs.
func ToListPropertyResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i := range properties {
		res[i] = ToPropertyResponse(&properties[i])
	}
	return res
}
