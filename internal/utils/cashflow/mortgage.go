package cashflow

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Rating buckets a prospective purchase by return quality.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// closingCostRate is the estimated closing costs on financed purchases, as a
// fraction of the purchase price. Cash purchases skip it.
var closingCostRate = decimal.RequireFromString("0.03")

// ROIResult is the full evaluation of a potential purchase.
type ROIResult struct {
	DownPayment          decimal.Decimal `json:"downPayment"`
	LoanAmount           decimal.Decimal `json:"loanAmount"`
	MonthlyMortgage      decimal.Decimal `json:"monthlyMortgage"`
	ClosingCosts         decimal.Decimal `json:"closingCosts"`
	MonthlyPropertyTax   decimal.Decimal `json:"monthlyPropertyTax"`
	MonthlyInsurance     decimal.Decimal `json:"monthlyInsurance"`
	ManagementFee        decimal.Decimal `json:"managementFee"`
	TotalMonthlyExpenses decimal.Decimal `json:"totalMonthlyExpenses"`
	MonthlyCashFlow      decimal.Decimal `json:"monthlyCashFlow"`
	AnnualCashFlow       decimal.Decimal `json:"annualCashFlow"`
	TotalInvestment      decimal.Decimal `json:"totalInvestment"`
	CashOnCashReturn     decimal.Decimal `json:"cashOnCashReturn"`
	CapRate              decimal.Decimal `json:"capRate"`
	Rating               Rating          `json:"rating"`
}

// MortgagePayment computes the fixed monthly payment for a loan using the
// standard amortization formula. A zero rate degenerates to straight
// principal division, and a non-positive term yields zero; there is no
// division by zero.
func MortgagePayment(principal, annualRatePercent decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(years) * 12)
	monthlyRate := annualRatePercent.Div(hundred).Div(twelve)

	if monthlyRate.IsZero() {
		return principal.Div(n)
	}

	// (1+r)^n with an integer exponent is exact in decimal arithmetic.
	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(n)
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// EvaluateROI runs the full evaluation pipeline for a prospective purchase:
// financing, monthly expense stack, cash flow, cash-on-cash return, cap rate
// and the rating ladder. Division guards return zero rather than propagate
// infinities when the purchase price or total investment is zero.
func EvaluateROI(p domain.PotentialProperty) ROIResult {
	var r ROIResult

	if p.IsCashPurchase {
		r.DownPayment = p.PurchasePrice
		r.LoanAmount = decimal.Zero
		r.MonthlyMortgage = decimal.Zero
		r.ClosingCosts = decimal.Zero
	} else {
		r.DownPayment = p.PurchasePrice.Mul(p.DownPaymentPercent).Div(hundred)
		r.LoanAmount = p.PurchasePrice.Sub(r.DownPayment)
		r.MonthlyMortgage = MortgagePayment(r.LoanAmount, p.InterestRate, p.LoanTermYears)
		r.ClosingCosts = p.PurchasePrice.Mul(closingCostRate)
	}

	r.MonthlyPropertyTax = p.PropertyTaxAnnual.Div(twelve)
	r.MonthlyInsurance = p.InsuranceAnnual.Div(twelve)
	r.ManagementFee = p.EstimatedMonthlyRent.Mul(p.PropertyManagementPercent).Div(hundred)

	r.TotalMonthlyExpenses = r.MonthlyMortgage.
		Add(r.MonthlyPropertyTax).
		Add(r.MonthlyInsurance).
		Add(p.HOAMonthly).
		Add(r.ManagementFee).
		Add(p.MaintenanceMonthly).
		Add(p.OtherExpensesMonthly)

	r.MonthlyCashFlow = p.EstimatedMonthlyRent.Sub(r.TotalMonthlyExpenses)
	r.AnnualCashFlow = r.MonthlyCashFlow.Mul(twelve)

	r.TotalInvestment = r.DownPayment.Add(r.ClosingCosts)
	r.CashOnCashReturn = percentOf(r.AnnualCashFlow, r.TotalInvestment)

	// Cap rate ignores financing entirely.
	annualNetIncome := p.EstimatedMonthlyRent.Mul(twelve).
		Sub(p.PropertyTaxAnnual).
		Sub(p.InsuranceAnnual).
		Sub(p.HOAMonthly.Mul(twelve)).
		Sub(r.ManagementFee.Mul(twelve)).
		Sub(p.MaintenanceMonthly.Mul(twelve)).
		Sub(p.OtherExpensesMonthly.Mul(twelve))
	r.CapRate = percentOf(annualNetIncome, p.PurchasePrice)

	if p.IsCashPurchase {
		r.Rating = rateCashPurchase(r.CapRate, r.MonthlyCashFlow)
	} else {
		r.Rating = rateFinancedPurchase(r.CashOnCashReturn, r.MonthlyCashFlow)
	}
	return r
}

// rateCashPurchase applies the cap-rate ladder; first matching tier wins.
func rateCashPurchase(capRate, monthlyCashFlow decimal.Decimal) Rating {
	switch {
	case capRate.GreaterThanOrEqual(decimal.NewFromInt(8)) && monthlyCashFlow.GreaterThan(decimal.NewFromInt(200)):
		return RatingExcellent
	case capRate.GreaterThanOrEqual(decimal.NewFromInt(6)) && monthlyCashFlow.GreaterThan(decimal.Zero):
		return RatingGood
	case capRate.GreaterThanOrEqual(decimal.NewFromInt(4)) || monthlyCashFlow.GreaterThan(decimal.NewFromInt(-100)):
		return RatingFair
	default:
		return RatingPoor
	}
}

// rateFinancedPurchase applies the cash-on-cash ladder; first matching tier wins.
func rateFinancedPurchase(cashOnCash, monthlyCashFlow decimal.Decimal) Rating {
	switch {
	case cashOnCash.GreaterThanOrEqual(decimal.NewFromInt(10)) && monthlyCashFlow.GreaterThan(decimal.NewFromInt(200)):
		return RatingExcellent
	case cashOnCash.GreaterThanOrEqual(decimal.NewFromInt(6)) && monthlyCashFlow.GreaterThan(decimal.Zero):
		return RatingGood
	case cashOnCash.GreaterThanOrEqual(decimal.NewFromInt(3)) || monthlyCashFlow.GreaterThan(decimal.NewFromInt(-100)):
		return RatingFair
	default:
		return RatingPoor
	}
}
