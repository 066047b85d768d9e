package cashflow

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnnualBreakdown is a per-property view of one year's cash flow and return.
// ROI figures are percentages; both are zero when the purchase price is
// unknown (zero), never a division error.
type AnnualBreakdown struct {
	PropertyID         int64           `json:"propertyID"`
	PropertyName       string          `json:"propertyName"`
	AnnualIncome       decimal.Decimal `json:"annualIncome"`
	AnnualManagement   decimal.Decimal `json:"annualManagement"`
	AnnualBills        decimal.Decimal `json:"annualBills"`
	MortgagePI         decimal.Decimal `json:"mortgagePI"` // principal-and-interest portion, escrow excluded
	NetIncome          decimal.Decimal `json:"netIncome"`
	NetWithoutMortgage decimal.Decimal `json:"netWithoutMortgage"`
	ROI                decimal.Decimal `json:"roi"`
	ROIWithoutMortgage decimal.Decimal `json:"roiWithoutMortgage"`
}

// PropertyAnnualBreakdown computes a property's annual totals for the given
// year from the full bill list. Only bills assigned to the property count;
// general bills (nil property) belong to no property's breakdown.
//
// Bills are annualized by their occurrence count (monthly x12, quarterly x4,
// semi-annual x2, annual x1, one-time x1 when the year matches), costed with
// escrow included. The principal-and-interest of mortgage-category bills is
// tracked separately so a second ROI can be computed as if the mortgage were
// paid off: escrowed taxes and insurance survive payoff, so only the P&I
// component is removed.
func PropertyAnnualBreakdown(property domain.Property, bills []domain.RecurringBill, year int) AnnualBreakdown {
	b := AnnualBreakdown{
		PropertyID:   property.PropertyID,
		PropertyName: property.Name,
		AnnualIncome: property.MonthlyRent.Mul(twelve),
		AnnualBills:  decimal.Zero,
		MortgagePI:   decimal.Zero,
	}
	b.AnnualManagement = property.MonthlyManagementCost().Mul(twelve)

	for _, bill := range bills {
		if bill.PropertyID == nil || *bill.PropertyID != property.PropertyID {
			continue
		}
		occurrences := decimal.NewFromInt(AnnualOccurrences(bill, year))
		b.AnnualBills = b.AnnualBills.Add(BillCost(bill).Mul(occurrences))
		if bill.IsMortgage() {
			b.MortgagePI = b.MortgagePI.Add(bill.Amount.Mul(occurrences))
		}
	}

	b.NetIncome = b.AnnualIncome.Sub(b.AnnualManagement).Sub(b.AnnualBills)
	b.NetWithoutMortgage = b.NetIncome.Add(b.MortgagePI)
	b.ROI = percentOf(b.NetIncome, property.PurchasePrice)
	b.ROIWithoutMortgage = percentOf(b.NetWithoutMortgage, property.PurchasePrice)
	return b
}

// percentOf returns numerator/denominator as a percentage, or zero when the
// denominator is zero.
func percentOf(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator).Mul(hundred)
}
