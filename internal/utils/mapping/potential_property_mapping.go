package mapping

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/models"
)

// ToModelPotentialProperty converts a domain PotentialProperty to a model row.
func ToModelPotentialProperty(d domain.PotentialProperty) models.PotentialProperty {
	return models.PotentialProperty{
		PropertyID:                d.PropertyID,
		Name:                      d.Name,
		Address:                   d.Address,
		PurchasePrice:             d.PurchasePrice,
		IsCashPurchase:            d.IsCashPurchase,
		DownPaymentPercent:        d.DownPaymentPercent,
		InterestRate:              d.InterestRate,
		LoanTermYears:             d.LoanTermYears,
		EstimatedMonthlyRent:      d.EstimatedMonthlyRent,
		PropertyTaxAnnual:         d.PropertyTaxAnnual,
		InsuranceAnnual:           d.InsuranceAnnual,
		HOAMonthly:                d.HOAMonthly,
		PropertyManagementPercent: d.PropertyManagementPercent,
		MaintenanceMonthly:        d.MaintenanceMonthly,
		OtherExpensesMonthly:      d.OtherExpensesMonthly,
		Notes:                     d.Notes,
		Status:                    string(d.Status),
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPotentialProperty converts a model row to a domain PotentialProperty.
func ToDomainPotentialProperty(m models.PotentialProperty) domain.PotentialProperty {
	return domain.PotentialProperty{
		PropertyID:                m.PropertyID,
		Name:                      m.Name,
		Address:                   m.Address,
		PurchasePrice:             m.PurchasePrice,
		IsCashPurchase:            m.IsCashPurchase,
		DownPaymentPercent:        m.DownPaymentPercent,
		InterestRate:              m.InterestRate,
		LoanTermYears:             m.LoanTermYears,
		EstimatedMonthlyRent:      m.EstimatedMonthlyRent,
		PropertyTaxAnnual:         m.PropertyTaxAnnual,
		InsuranceAnnual:           m.InsuranceAnnual,
		HOAMonthly:                m.HOAMonthly,
		PropertyManagementPercent: m.PropertyManagementPercent,
		MaintenanceMonthly:        m.MaintenanceMonthly,
		OtherExpensesMonthly:      m.OtherExpensesMonthly,
		Notes:                     m.Notes,
		Status:                    domain.PotentialStatus(m.Status),
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPotentialPropertySlice converts model rows to domain PotentialProperties.
func ToDomainPotentialPropertySlice(ms []models.PotentialProperty) []domain.PotentialProperty {
	ds := make([]domain.PotentialProperty, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPotentialProperty(m)
	}
	return ds
}
