package cashflow

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlySummary aggregates portfolio cash flow for a single month.
type MonthlySummary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalManagement decimal.Decimal `json:"totalManagement"`
	TotalBills      decimal.Decimal `json:"totalBills"`
	NetIncome       decimal.Decimal `json:"netIncome"`
}

// MonthData is one row of a yearly breakdown.
type MonthData struct {
	Month       int             `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Management  decimal.Decimal `json:"management"`
	Bills       decimal.Decimal `json:"bills"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
}

// YearSummary is twelve MonthData rows plus their aggregate.
type YearSummary struct {
	Year              int             `json:"year"`
	Months            []MonthData     `json:"months"`
	Income            decimal.Decimal `json:"income"`
	Management        decimal.Decimal `json:"management"`
	Bills             decimal.Decimal `json:"bills"`
	Net               decimal.Decimal `json:"net"`
	AverageMonthlyNet decimal.Decimal `json:"averageMonthlyNet"`
}

// BillTotals partitions a month's bills into paid and unpaid portions.
type BillTotals struct {
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Unpaid    decimal.Decimal `json:"unpaid"`
	Count     int             `json:"count"`
	PaidCount int             `json:"paidCount"`
}

// BillCost is the cash cost of paying a bill once: its amount plus any escrow
// portion. Escrow is included everywhere bill costs are summed so monthly and
// yearly views agree.
func BillCost(bill domain.RecurringBill) decimal.Decimal {
	return bill.Amount.Add(bill.EscrowAmount)
}

// MonthlyTotals combines property income and the month's resolved bills into
// a cash-flow summary. Empty inputs yield zeroed totals.
func MonthlyTotals(properties []domain.Property, billsDue []domain.RecurringBill) MonthlySummary {
	income := decimal.Zero
	management := decimal.Zero
	for _, p := range properties {
		income = income.Add(p.MonthlyRent)
		management = management.Add(p.MonthlyManagementCost())
	}

	bills := decimal.Zero
	for _, b := range billsDue {
		bills = bills.Add(BillCost(b))
	}

	return MonthlySummary{
		TotalIncome:     income,
		TotalManagement: management,
		TotalBills:      bills,
		NetIncome:       income.Sub(management).Sub(bills),
	}
}

// YearlyTotals resolves and aggregates each calendar month of the given year.
// The yearly aggregate is exactly the sum of the twelve monthly summaries.
func YearlyTotals(properties []domain.Property, bills []domain.RecurringBill, year int) YearSummary {
	summary := YearSummary{
		Year:       year,
		Months:     make([]MonthData, 0, 12),
		Income:     decimal.Zero,
		Management: decimal.Zero,
		Bills:      decimal.Zero,
		Net:        decimal.Zero,
	}

	for month := 1; month <= 12; month++ {
		m := MonthlyTotals(properties, BillsDueIn(bills, month, year))
		summary.Months = append(summary.Months, MonthData{
			Month:       month,
			Income:      m.TotalIncome,
			Management:  m.TotalManagement,
			Bills:       m.TotalBills,
			NetCashFlow: m.NetIncome,
		})
		summary.Income = summary.Income.Add(m.TotalIncome)
		summary.Management = summary.Management.Add(m.TotalManagement)
		summary.Bills = summary.Bills.Add(m.TotalBills)
		summary.Net = summary.Net.Add(m.NetIncome)
	}

	summary.AverageMonthlyNet = summary.Net.Div(twelve)
	return summary
}

// ComputeBillTotals partitions the month's bills by the caller-supplied paid
// predicate, typically a payment-tracking lookup.
func ComputeBillTotals(billsDue []domain.RecurringBill, isPaid func(billID int64) bool) BillTotals {
	totals := BillTotals{
		Total:  decimal.Zero,
		Paid:   decimal.Zero,
		Unpaid: decimal.Zero,
		Count:  len(billsDue),
	}

	for _, b := range billsDue {
		cost := BillCost(b)
		totals.Total = totals.Total.Add(cost)
		if isPaid(b.BillID) {
			totals.Paid = totals.Paid.Add(cost)
			totals.PaidCount++
		}
	}

	totals.Unpaid = totals.Total.Sub(totals.Paid)
	return totals
}
