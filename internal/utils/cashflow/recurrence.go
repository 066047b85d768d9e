// Package cashflow implements the pure cash-flow and ROI arithmetic shared by
// the reporting and analysis services. Every function is deterministic and
// side-effect free; callers supply in-memory snapshots of store data and all
// money values are decimal to avoid floating-point currency drift.
package cashflow

import (
	"github.com/rentledger/rentledger_backend/internal/core/domain"
)

// quarterly and semi-annual bills fire on fixed calendar months for every
// bill, irrespective of the bill's own due month. Anchor months per bill are
// a possible future generalisation; the stored data assumes these calendars.
var (
	quarterlyMonths  = map[int]bool{1: true, 4: true, 7: true, 10: true}
	semiAnnualMonths = map[int]bool{1: true, 7: true}
)

// BillDueIn reports whether a single bill comes due in the given 1-indexed
// calendar month of the given year.
//
// One-time bills match only their exact (due month, year) pair and never
// recur. Otherwise the bill's frequency decides: monthly bills are due every
// period, annual bills in their due month of every year, quarterly bills in
// Jan/Apr/Jul/Oct and semi-annual bills in Jan/Jul. Unknown frequencies are
// never due. Inactive bills are never due; the store filters them, but the
// check is repeated here so unfiltered input cannot resurrect them.
func BillDueIn(bill domain.RecurringBill, month, year int) bool {
	if !bill.IsActive {
		return false
	}

	if bill.IsOneTime {
		return bill.DueMonth != nil && *bill.DueMonth == month &&
			bill.OneTimeYear != nil && *bill.OneTimeYear == year
	}

	switch bill.Frequency {
	case domain.FrequencyMonthly:
		return true
	case domain.FrequencyAnnual:
		return bill.DueMonth != nil && *bill.DueMonth == month
	case domain.FrequencyQuarterly:
		return quarterlyMonths[month]
	case domain.FrequencySemiAnnual:
		return semiAnnualMonths[month]
	}
	return false
}

// BillsDueIn returns the subset of bills due in the given month and year.
// Result order follows input order; callers sort for display.
func BillsDueIn(bills []domain.RecurringBill, month, year int) []domain.RecurringBill {
	due := make([]domain.RecurringBill, 0, len(bills))
	for _, bill := range bills {
		if BillDueIn(bill, month, year) {
			due = append(due, bill)
		}
	}
	return due
}

// AnnualOccurrences returns how many times a bill comes due over the given
// calendar year: 12 for monthly, 4 for quarterly, 2 for semi-annual, 1 for
// annual, and for one-time bills 1 when the year matches and 0 otherwise.
func AnnualOccurrences(bill domain.RecurringBill, year int) int64 {
	if !bill.IsActive {
		return 0
	}
	if bill.IsOneTime {
		if bill.OneTimeYear != nil && *bill.OneTimeYear == year {
			return 1
		}
		return 0
	}
	switch bill.Frequency {
	case domain.FrequencyMonthly:
		return 12
	case domain.FrequencyQuarterly:
		return 4
	case domain.FrequencySemiAnnual:
		return 2
	case domain.FrequencyAnnual:
		return 1
	}
	return 0
}
