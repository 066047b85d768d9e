package domain

import (
	"github.com/shopspring/decimal"
)

// Property represents a rental property that is already owned.
// Percent fields are whole-number percentages (10 means 10%).
type Property struct {
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
	AuditFields
}

// MonthlyManagementCost is the management fee plus any fixed extra expenses
// for one month.
func (p Property) MonthlyManagementCost() decimal.Decimal {
	fee := p.MonthlyRent.Mul(p.PropertyManagementPercent).Div(decimal.NewFromInt(100))
	return fee.Add(p.ExtraMonthlyExpenses)
}
