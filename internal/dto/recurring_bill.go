package dto

import (
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringBillRequest defines the data needed to create a bill.
// Frequency defaults to monthly and category to other.
type CreateRecurringBillRequest struct {
	PropertyID   *int64           `json:"propertyID"`
	Name         string           `json:"name" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Frequency    string           `json:"frequency" binding:"omitempty,oneof=monthly quarterly semi-annual annual"`
	DueMonth     *int             `json:"dueMonth" binding:"omitempty,min=1,max=12"`
	Category     string           `json:"category"`
	PaymentLink  string           `json:"paymentLink" binding:"omitempty,url"`
	Notes        string           `json:"notes"`
	IsOneTime    bool             `json:"isOneTime"`
	OneTimeYear  *int             `json:"oneTimeYear" binding:"omitempty,min=1900"`
	EscrowAmount *decimal.Decimal `json:"escrowAmount" binding:"omitempty,gte=0"`
	IsActive     *bool            `json:"isActive"`
}

// UpdateRecurringBillRequest is a full-record update. Setting isActive false
// soft-deletes the bill; list queries skip it from then on.
type UpdateRecurringBillRequest struct {
	PropertyID   *int64           `json:"propertyID"`
	Name         string           `json:"name" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Frequency    string           `json:"frequency" binding:"omitempty,oneof=monthly quarterly semi-annual annual"`
	DueMonth     *int             `json:"dueMonth" binding:"omitempty,min=1,max=12"`
	Category     string           `json:"category"`
	PaymentLink  string           `json:"paymentLink" binding:"omitempty,url"`
	Notes        string           `json:"notes"`
	IsOneTime    bool             `json:"isOneTime"`
	OneTimeYear  *int             `json:"oneTimeYear" binding:"omitempty,min=1900"`
	EscrowAmount *decimal.Decimal `json:"escrowAmount" binding:"omitempty,gte=0"`
	IsActive     *bool            `json:"isActive"`
}

// CreateRepairRequest records a one-time repair for a specific month. It
// becomes a bill named "<Month> <Year> - <description>" flagged is_one_time.
type CreateRepairRequest struct {
	PropertyID  *int64           `json:"propertyID"`
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	Year        int              `json:"year" binding:"required,min=1900"`
	Notes       string           `json:"notes"`
}

// RecurringBillResponse defines the data returned for a bill. PropertyName is
// empty for general bills and for bills whose property was deleted.
type RecurringBillResponse struct {
	BillID       int64           `json:"billID"`
	PropertyID   *int64          `json:"propertyID"`
	PropertyName string          `json:"propertyName,omitempty"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
	DueMonth     *int            `json:"dueMonth"`
	Category     string          `json:"category"`
	PaymentLink  string          `json:"paymentLink,omitempty"`
	Notes        string          `json:"notes"`
	IsOneTime    bool            `json:"isOneTime"`
	OneTimeYear  *int            `json:"oneTimeYear"`
	EscrowAmount decimal.Decimal `json:"escrowAmount"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToRecurringBillResponse converts a domain RecurringBill to its response DTO.
func ToRecurringBillResponse(b *domain.RecurringBill) RecurringBillResponse {
	return RecurringBillResponse{
		BillID:       b.BillID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		Name:         b.Name,
		Amount:       b.Amount,
		Frequency:    string(b.Frequency),
		DueMonth:     b.DueMonth,
		Category:     b.Category,
		PaymentLink:  b.PaymentLink,
		Notes:        b.Notes,
		IsOneTime:    b.IsOneTime,
		OneTimeYear:  b.OneTimeYear,
		EscrowAmount: b.EscrowAmount,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToListRecurringBillResponse converts domain RecurringBills to response DTOs.
func ToListRecurringBillResponse(bills []domain.RecurringBill) []RecurringBillResponse {
	res := make([]RecurringBillResponse, len(bills))
	for i := range bills {
		res[i] = ToRecurringBillResponse(&bills[i])
	}
	return res
}
