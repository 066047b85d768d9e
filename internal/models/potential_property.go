package models

import (
	"github.com/shopspring/decimal"
)

// PotentialProperty is the row shape of the potential_properties table.
type PotentialProperty struct {
	PropertyID                int64           `db:"id"`
	Name                      string          `db:"name"`
	Address                   string          `db:"address"`
	PurchasePrice             decimal.Decimal `db:"purchase_price"`
	IsCashPurchase            bool            `db:"is_cash_purchase"`
	DownPaymentPercent        decimal.Decimal `db:"down_payment_percent"`
	InterestRate              decimal.Decimal `db:"interest_rate"`
	LoanTermYears             int             `db:"loan_term_years"`
	EstimatedMonthlyRent      decimal.Decimal `db:"estimated_monthly_rent"`
	PropertyTaxAnnual         decimal.Decimal `db:"property_tax_annual"`
	InsuranceAnnual           decimal.Decimal `db:"insurance_annual"`
	HOAMonthly                decimal.Decimal `db:"hoa_monthly"`
	PropertyManagementPercent decimal.Decimal `db:"property_management_percent"`
	MaintenanceMonthly        decimal.Decimal `db:"maintenance_monthly"`
	OtherExpensesMonthly      decimal.Decimal `db:"other_expenses_monthly"`
	Notes                     string          `db:"notes"`
	Status                    string          `db:"status"`
	AuditFields
}
