package domain

import (
	"github.com/shopspring/decimal"
)

// PotentialStatus tracks where a prospective purchase sits in the pipeline.
type PotentialStatus string

const (
	StatusAnalyzing  PotentialStatus = "analyzing"
	StatusInterested PotentialStatus = "interested"
	StatusOfferMade  PotentialStatus = "offer_made"
	StatusPassed     PotentialStatus = "passed"
	StatusPurchased  PotentialStatus = "purchased"
)

// PotentialProperty holds the inputs for evaluating a prospective acquisition.
// Rate and percent fields are whole-number percentages.
type PotentialProperty struct {
	PropertyID                int64           `json:"propertyID"`
	Name                      string          `json:"name"`
	Address                   string          `json:"address"`
	PurchasePrice             decimal.Decimal `json:"purchasePrice"`
	IsCashPurchase            bool            `json:"isCashPurchase"`
	DownPaymentPercent        decimal.Decimal `json:"downPaymentPercent"`
	InterestRate              decimal.Decimal `json:"interestRate"` // annual %
	LoanTermYears             int             `json:"loanTermYears"`
	EstimatedMonthlyRent      decimal.Decimal `json:"estimatedMonthlyRent"`
	PropertyTaxAnnual         decimal.Decimal `json:"propertyTaxAnnual"`
	InsuranceAnnual           decimal.Decimal `json:"insuranceAnnual"`
	HOAMonthly                decimal.Decimal `json:"hoaMonthly"`
	PropertyManagementPercent decimal.Decimal `json:"propertyManagementPercent"`
	MaintenanceMonthly        decimal.Decimal `json:"maintenanceMonthly"`
	OtherExpensesMonthly      decimal.Decimal `json:"otherExpensesMonthly"`
	Notes                     string          `json:"notes"`
	Status                    PotentialStatus `json:"status"`
	AuditFields
}
