package dto

import (
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
)

// BillWithPaymentStatus is one bill in the monthly view together with its
// tracked payment state for that period.
type BillWithPaymentStatus struct {
	Bill     RecurringBillResponse    `json:"bill"`
	IsPaid   bool                     `json:"isPaid"`
	Tracking *PaymentTrackingResponse `json:"tracking,omitempty"`
}

// MonthlyReportResponse is the dashboard view for one month: the bills due,
// aggregate cash flow and the paid/unpaid split.
type MonthlyReportResponse struct {
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Bills      []BillWithPaymentStatus `json:"bills"`
	Totals     cashflow.MonthlySummary `json:"totals"`
	BillTotals cashflow.BillTotals     `json:"billTotals"`
}

// YearlyReportResponse is the year view: twelve monthly rows, their
// aggregate, and each property's annual return.
type YearlyReportResponse struct {
	Year       int                        `json:"year"`
	Summary    cashflow.YearSummary       `json:"summary"`
	Properties []cashflow.AnnualBreakdown `json:"properties"`
}
