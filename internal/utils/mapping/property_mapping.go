package mapping

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/models"
)

// ToModelProperty converts a domain Property to a model Property.
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:                d.PropertyID,
		Name:                      d.Name,
		Address:                   d.Address,
		MonthlyRent:               d.MonthlyRent,
		PropertyManagementPercent: d.PropertyManagementPercent,
		ExtraMonthlyExpenses:      d.ExtraMonthlyExpenses,
		HOAFee:                    d.HOAFee,
		IsPaidOff:                 d.IsPaidOff,
		IsRental:                  d.IsRental,
		PurchasePrice:             d.PurchasePrice,
		Notes:                     d.Notes,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProperty converts a model Property to a domain Property.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:                m.PropertyID,
		Name:                      m.Name,
		Address:                   m.Address,
		MonthlyRent:               m.MonthlyRent,
		PropertyManagementPercent: m.PropertyManagementPercent,
		ExtraMonthlyExpenses:      m.ExtraMonthlyExpenses,
		HOAFee:                    m.HOAFee,
		IsPaidOff:                 m.IsPaidOff,
		IsRental:                  m.IsRental,
		PurchasePrice:             m.PurchasePrice,
		Notes:                     m.Notes,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPropertySlice converts model Properties to domain Properties.
func ToDomainPropertySlice(ms []models.Property) []domain.Property {
	ds := make([]domain.Property, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProperty(m)
	}
	return ds
}
