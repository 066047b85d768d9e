package domain

import (
	"github.com/shopspring/decimal"
)

// BillFrequency defines how often a recurring bill comes due.
type BillFrequency string

const (
	FrequencyMonthly    BillFrequency = "monthly"
	FrequencyQuarterly  BillFrequency = "quarterly"
	FrequencySemiAnnual BillFrequency = "semi-annual"
	FrequencyAnnual     BillFrequency = "annual"
)

// Common bill categories. Category is a free-form tag; these are the values
// the UI offers.
const (
	CategoryTaxes     = "taxes"
	CategoryInsurance = "insurance"
	CategoryHOA       = "hoa"
	CategoryMortgage  = "mortgage"
	CategoryRepairs   = "repairs"
	CategoryOther     = "other"
)

// RecurringBill represents a bill attached to a property (or a general bill
// when PropertyID is nil). A bill with IsOneTime set is a single-month
// exception rather than a recurring rule; OneTimeYear pins the year it
// applies to.
type RecurringBill struct {
	BillID       int64           `json:"billID"`
	PropertyID   *int64          `json:"propertyID"`
	PropertyName string          `json:"propertyName,omitempty"` // resolved via join, absent for orphaned bills
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    BillFrequency   `json:"frequency"`
	DueMonth     *int            `json:"dueMonth"` // 1-12, required for annual bills
	Category     string          `json:"category"`
	PaymentLink  string          `json:"paymentLink"`
	Notes        string          `json:"notes"`
	IsOneTime    bool            `json:"isOneTime"`
	OneTimeYear  *int            `json:"oneTimeYear"`
	EscrowAmount decimal.Decimal `json:"escrowAmount"` // taxes/insurance impounds bundled with a mortgage payment
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// IsMortgage reports whether the bill is categorised as a mortgage payment.
// Mortgage bills carry a principal-and-interest amount plus an optional
// escrow portion that survives payoff.
func (b RecurringBill) IsMortgage() bool {
	return b.Category == CategoryMortgage
}
