package mapping

import (
	"database/sql"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelPaymentTracking converts a domain PaymentTracking to a model row.
func ToModelPaymentTracking(d domain.PaymentTracking) models.PaymentTracking {
	m := models.PaymentTracking{
		TrackingID:   d.TrackingID,
		BillType:     d.BillType,
		BillID:       d.BillID,
		PropertyID:   nullInt64FromPtr(d.PropertyID),
		PaymentMonth: d.PaymentMonth,
		PaymentYear:  d.PaymentYear,
		IsPaid:       d.IsPaid,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.PaidDate != nil {
		m.PaidDate = sql.NullTime{Time: *d.PaidDate, Valid: true}
	}
	if d.AmountPaid != nil {
		m.AmountPaid = decimal.NullDecimal{Decimal: *d.AmountPaid, Valid: true}
	}
	return m
}

// ToDomainPaymentTracking converts a model row to a domain PaymentTracking.
func ToDomainPaymentTracking(m models.PaymentTracking) domain.PaymentTracking {
	d := domain.PaymentTracking{
		TrackingID:   m.TrackingID,
		BillType:     m.BillType,
		BillID:       m.BillID,
		PropertyID:   ptrFromNullInt64(m.PropertyID),
		PaymentMonth: m.PaymentMonth,
		PaymentYear:  m.PaymentYear,
		IsPaid:       m.IsPaid,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.PaidDate.Valid {
		t := m.PaidDate.Time
		d.PaidDate = &t
	}
	if m.AmountPaid.Valid {
		amount := m.AmountPaid.Decimal
		d.AmountPaid = &amount
	}
	return d
}

// ToDomainPaymentTrackingSlice converts model rows to domain PaymentTrackings.
func ToDomainPaymentTrackingSlice(ms []models.PaymentTracking) []domain.PaymentTracking {
	ds := make([]domain.PaymentTracking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentTracking(m)
	}
	return ds
}
