package dto

import (
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
	"github.com/shopspring/decimal"
)

// CreatePotentialPropertyRequest defines the data needed to track a
// prospective purchase. Financing fields default server-side: 20% down, 7%
// rate, 30-year term, status analyzing.
type CreatePotentialPropertyRequest struct {
	Name                      string           `json:"name" binding:"required"`
	Address                   string           `json:"address"`
	PurchasePrice             *decimal.Decimal `json:"purchasePrice" binding:"required,gte=0"`
	IsCashPurchase            bool             `json:"isCashPurchase"`
	DownPaymentPercent        *decimal.Decimal `json:"downPaymentPercent" binding:"omitempty,gte=0,lte=100"`
	InterestRate              *decimal.Decimal `json:"interestRate" binding:"omitempty,gte=0"`
	LoanTermYears             *int             `json:"loanTermYears" binding:"omitempty,min=1,max=50"`
	EstimatedMonthlyRent      *decimal.Decimal `json:"estimatedMonthlyRent" binding:"required,gte=0"`
	PropertyTaxAnnual         *decimal.Decimal `json:"propertyTaxAnnual" binding:"omitempty,gte=0"`
	InsuranceAnnual           *decimal.Decimal `json:"insuranceAnnual" binding:"omitempty,gte=0"`
	HOAMonthly                *decimal.Decimal `json:"hoaMonthly" binding:"omitempty,gte=0"`
	PropertyManagementPercent *decimal.Decimal `json:"propertyManagementPercent" binding:"omitempty,gte=0,lte=100"`
	MaintenanceMonthly        *decimal.Decimal `json:"maintenanceMonthly" binding:"omitempty,gte=0"`
	OtherExpensesMonthly      *decimal.Decimal `json:"otherExpensesMonthly" binding:"omitempty,gte=0"`
	Notes                     string           `json:"notes"`
	Status                    string           `json:"status" binding:"omitempty,oneof=analyzing interested offer_made passed purchased"`
}

// UpdatePotentialPropertyRequest is a full-record update.
type UpdatePotentialPropertyRequest struct {
	Name                      string           `json:"name" binding:"required"`
	Address                   string           `json:"address"`
	PurchasePrice             *decimal.Decimal `json:"purchasePrice" binding:"required,gte=0"`
	IsCashPurchase            bool             `json:"isCashPurchase"`
	DownPaymentPercent        *decimal.Decimal `json:"downPaymentPercent" binding:"omitempty,gte=0,lte=100"`
	InterestRate              *decimal.Decimal `json:"interestRate" binding:"omitempty,gte=0"`
	LoanTermYears             *int             `json:"loanTermYears" binding:"omitempty,min=1,max=50"`
	EstimatedMonthlyRent      *decimal.Decimal `json:"estimatedMonthlyRent" binding:"required,gte=0"`
	PropertyTaxAnnual         *decimal.Decimal `json:"propertyTaxAnnual" binding:"omitempty,gte=0"`
	InsuranceAnnual           *decimal.Decimal `json:"insuranceAnnual" binding:"omitempty,gte=0"`
	HOAMonthly                *decimal.Decimal `json:"hoaMonthly" binding:"omitempty,gte=0"`
	PropertyManagementPercent *decimal.Decimal `json:"propertyManagementPercent" binding:"omitempty,gte=0,lte=100"`
	MaintenanceMonthly        *decimal.Decimal `json:"maintenanceMonthly" binding:"omitempty,gte=0"`
	OtherExpensesMonthly      *decimal.Decimal `json:"otherExpensesMonthly" binding:"omitempty,gte=0"`
	Notes                     string           `json:"notes"`
	Status                    string           `json:"status" binding:"omitempty,oneof=analyzing interested offer_made passed purchased"`
}

// PotentialPropertyResponse defines the data returned for a prospective purchase.
type PotentialPropertyResponse struct {
	PropertyID                int64           `json:"propertyID"`
	Name                      string          `json:"name"`
	Address                   string          `json:"address"`
	PurchasePrice             decimal.Decimal `json:"purchasePrice"`
	IsCashPurchase            bool            `json:"isCashPurchase"`
	DownPaymentPercent        decimal.Decimal `json:"downPaymentPercent"`
	InterestRate              decimal.Decimal `json:"interestRate"`
	LoanTermYears             int             `json:"loanTermYears"`
	EstimatedMonthlyRent      decimal.Decimal `json:"estimatedMonthlyRent"`
	PropertyTaxAnnual         decimal.Decimal `json:"propertyTaxAnnual"`
	InsuranceAnnual           decimal.Decimal `json:"insuranceAnnual"`
	HOAMonthly                decimal.Decimal `json:"hoaMonthly"`
	PropertyManagementPercent decimal.Decimal `json:"propertyManagementPercent"`
	MaintenanceMonthly        decimal.Decimal `json:"maintenanceMonthly"`
	OtherExpensesMonthly      decimal.Decimal `json:"otherExpensesMonthly"`
	Notes                     string          `json:"notes"`
	Status                    string          `json:"status"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// PotentialPropertyAnalysis pairs a prospect with its evaluated returns.
type PotentialPropertyAnalysis struct {
	Property PotentialPropertyResponse `json:"property"`
	ROI      cashflow.ROIResult        `json:"roi"`
}

// ToPotentialPropertyResponse converts a domain PotentialProperty to its response DTO.
func ToPotentialPropertyResponse(p *domain.PotentialProperty) PotentialPropertyResponse {
	return PotentialPropertyResponse{
		PropertyID:                p.PropertyID,
		Name:                      p.Name,
		Address:                   p.Address,
		PurchasePrice:             p.PurchasePrice,
		IsCashPurchase:            p.IsCashPurchase,
		DownPaymentPercent:        p.DownPaymentPercent,
		InterestRate:              p.InterestRate,
		LoanTermYears:             p.LoanTermYears,
		EstimatedMonthlyRent:      p.EstimatedMonthlyRent,
		PropertyTaxAnnual:         p.PropertyTaxAnnual,
		InsuranceAnnual:           p.InsuranceAnnual,
		HOAMonthly:                p.HOAMonthly,
		PropertyManagementPercent: p.PropertyManagementPercent,
		MaintenanceMonthly:        p.MaintenanceMonthly,
		OtherExpensesMonthly:      p.OtherExpensesMonthly,
		Notes:                     p.Notes,
		Status:                    string(p.Status),
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

// ToListPotentialPropertyResponse converts domain PotentialProperties to response DTOs.
func ToListPotentialPropertyResponse(properties []domain.PotentialProperty) []PotentialPropertyResponse {
	res := make([]PotentialPropertyResponse, len(properties))
	for i := range properties {
		res[i] = ToPotentialPropertyResponse(&properties[i])
	}
	return res
}
