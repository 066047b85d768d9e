package models

import (
	"github.com/shopspring/decimal"
)

// Property is the row shape of the properties table.
type Property struct {
	PropertyID                int64           `db:"id"`
	Name                      string          `db:"name"`
	Address                   string          `db:"address"`
	MonthlyRent               decimal.Decimal `db:"monthly_rent"`
	PropertyManagementPercent decimal.Decimal `db:"property_management_percent"`
	ExtraMonthlyExpenses      decimal.Decimal `db:"extra_monthly_expenses"`
	HOAFee                    decimal.Decimal `db:"hoa_fee"`
	IsPaidOff                 bool            `db:"is_paid_off"`
	IsRental                  bool            `db:"is_rental"`
	PurchasePrice             decimal.Decimal `db:"purchase_price"`
	Notes                     string          `db:"notes"`
	AuditFields
}
