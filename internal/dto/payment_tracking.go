package dto

import (
	"time"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetPaymentRequest marks a bill paid or unpaid for one period. Repeating the
// call for the same (bill, month, year) updates the existing row.
type SetPaymentRequest struct {
	BillID       int64            `json:"billID" binding:"required"`
	PropertyID   *int64           `json:"propertyID"`
	PaymentMonth int              `json:"paymentMonth" binding:"required,min=1,max=12"`
	PaymentYear  int              `json:"paymentYear" binding:"required,min=1900"`
	IsPaid       bool             `json:"isPaid"`
	AmountPaid   *decimal.Decimal `json:"amountPaid" binding:"omitempty,gte=0"`
	Notes        string           `json:"notes"`
}

// MarkAllPaymentsRequest flips every bill due in a period to paid or unpaid.
type MarkAllPaymentsRequest struct {
	PaymentMonth int    `json:"paymentMonth" binding:"required,min=1,max=12"`
	PaymentYear  int    `json:"paymentYear" binding:"required,min=1900"`
	IsPaid       bool   `json:"isPaid"`
	Notes        string `json:"notes"`
}

// PaymentTrackingResponse defines the data returned for a tracking row.
type PaymentTrackingResponse struct {
	TrackingID   int64            `json:"trackingID"`
	BillType     string           `json:"billType"`
	BillID       int64            `json:"billID"`
	PropertyID   *int64           `json:"propertyID"`
	PaymentMonth int              `json:"paymentMonth"`
	PaymentYear  int              `json:"paymentYear"`
	IsPaid       bool             `json:"isPaid"`
	PaidDate     *time.Time       `json:"paidDate"`
	AmountPaid   *decimal.Decimal `json:"amountPaid"`
	Notes        string           `json:"notes"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ToPaymentTrackingResponse converts a domain PaymentTracking to its response DTO.
func ToPaymentTrackingResponse(p *domain.PaymentTracking) PaymentTrackingResponse {
	return PaymentTrackingResponse{
		TrackingID:   p.TrackingID,
		BillType:     p.BillType,
		BillID:       p.BillID,
		PropertyID:   p.PropertyID,
		PaymentMonth: p.PaymentMonth,
		PaymentYear:  p.PaymentYear,
		IsPaid:       p.IsPaid,
		PaidDate:     p.PaidDate,
		AmountPaid:   p.AmountPaid,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToListPaymentTrackingResponse converts domain PaymentTrackings to response DTOs.
func ToListPaymentTrackingResponse(payments []domain.PaymentTracking) []PaymentTrackingResponse {
	res := make([]PaymentTrackingResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentTrackingResponse(&payments[i])
	}
	return res
}
