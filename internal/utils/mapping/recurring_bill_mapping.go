package mapping

import (
	"database/sql"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/models"
)

func nullInt64FromPtr(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func ptrFromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullInt32FromIntPtr(p *int) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*p), Valid: true}
}

func intPtrFromNullInt32(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}

// ToModelRecurringBill converts a domain RecurringBill to a model RecurringBill.
func ToModelRecurringBill(d domain.RecurringBill) models.RecurringBill {
	return models.RecurringBill{
		BillID:       d.BillID,
		PropertyID:   nullInt64FromPtr(d.PropertyID),
		Name:         d.Name,
		Amount:       d.Amount,
		Frequency:    string(d.Frequency),
		DueMonth:     nullInt32FromIntPtr(d.DueMonth),
		Category:     d.Category,
		PaymentLink:  d.PaymentLink,
		Notes:        d.Notes,
		IsOneTime:    d.IsOneTime,
		OneTimeYear:  nullInt32FromIntPtr(d.OneTimeYear),
		EscrowAmount: d.EscrowAmount,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringBill converts a model RecurringBill to a domain RecurringBill.
func ToDomainRecurringBill(m models.RecurringBill) domain.RecurringBill {
	return domain.RecurringBill{
		BillID:       m.BillID,
		PropertyID:   ptrFromNullInt64(m.PropertyID),
		PropertyName: m.PropertyName.String,
		Name:         m.Name,
		Amount:       m.Amount,
		Frequency:    domain.BillFrequency(m.Frequency),
		DueMonth:     intPtrFromNullInt32(m.DueMonth),
		Category:     m.Category,
		PaymentLink:  m.PaymentLink,
		Notes:        m.Notes,
		IsOneTime:    m.IsOneTime,
		OneTimeYear:  intPtrFromNullInt32(m.OneTimeYear),
		EscrowAmount: m.EscrowAmount,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringBillSlice converts model RecurringBills to domain RecurringBills.
func ToDomainRecurringBillSlice(ms []models.RecurringBill) []domain.RecurringBill {
	ds := make([]domain.RecurringBill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringBill(m)
	}
	return ds
}
