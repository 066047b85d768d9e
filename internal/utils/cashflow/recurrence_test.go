package cashflow_test

import (
	"testing"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func activeBill(frequency domain.BillFrequency, dueMonth *int) domain.RecurringBill {
	return domain.RecurringBill{
		BillID:    1,
		Name:      "test bill",
		Amount:    decimal.NewFromInt(100),
		Frequency: frequency,
		DueMonth:  dueMonth,
		IsActive:  true,
	}
}

func TestBillDueIn_Monthly(t *testing.T) {
	bill := activeBill(domain.FrequencyMonthly, nil)
	for month := 1; month <= 12; month++ {
		assert.True(t, cashflow.BillDueIn(bill, month, 2024), "month %d", month)
		assert.True(t, cashflow.BillDueIn(bill, month, 2031), "month %d", month)
	}
}

func TestBillDueIn_Annual(t *testing.T) {
	bill := activeBill(domain.FrequencyAnnual, intPtr(6))
	for month := 1; month <= 12; month++ {
		want := month == 6
		assert.Equal(t, want, cashflow.BillDueIn(bill, month, 2024), "month %d", month)
		// Year is irrelevant for annual bills; they recur every year.
		assert.Equal(t, want, cashflow.BillDueIn(bill, month, 1999), "month %d", month)
	}
}

func TestBillDueIn_AnnualWithoutDueMonth(t *testing.T) {
	bill := activeBill(domain.FrequencyAnnual, nil)
	for month := 1; month <= 12; month++ {
		assert.False(t, cashflow.BillDueIn(bill, month, 2024))
	}
}

func TestBillDueIn_Quarterly(t *testing.T) {
	// Quarterly bills fire on the fixed Jan/Apr/Jul/Oct calendar, regardless
	// of the bill's own due month.
	bill := activeBill(domain.FrequencyQuarterly, intPtr(3))
	dueMonths := map[int]bool{1: true, 4: true, 7: true, 10: true}
	for month := 1; month <= 12; month++ {
		assert.Equal(t, dueMonths[month], cashflow.BillDueIn(bill, month, 2024), "month %d", month)
	}
	assert.False(t, cashflow.BillDueIn(bill, 3, 2024))
	assert.True(t, cashflow.BillDueIn(bill, 4, 2024))
}

func TestBillDueIn_SemiAnnual(t *testing.T) {
	bill := activeBill(domain.FrequencySemiAnnual, intPtr(9))
	for month := 1; month <= 12; month++ {
		want := month == 1 || month == 7
		assert.Equal(t, want, cashflow.BillDueIn(bill, month, 2024), "month %d", month)
	}
}

func TestBillDueIn_OneTime(t *testing.T) {
	bill := activeBill(domain.FrequencyAnnual, intPtr(3))
	bill.IsOneTime = true
	bill.OneTimeYear = intPtr(2024)

	assert.True(t, cashflow.BillDueIn(bill, 3, 2024))
	assert.False(t, cashflow.BillDueIn(bill, 3, 2025))
	assert.False(t, cashflow.BillDueIn(bill, 4, 2024))
}

func TestBillDueIn_OneTimeNeverRecursByFrequency(t *testing.T) {
	// A one-time bill carries a nominal frequency but must never be included
	// because of it.
	bill := activeBill(domain.FrequencyMonthly, intPtr(3))
	bill.IsOneTime = true
	bill.OneTimeYear = intPtr(2024)

	assert.True(t, cashflow.BillDueIn(bill, 3, 2024))
	assert.False(t, cashflow.BillDueIn(bill, 5, 2024))
}

func TestBillDueIn_UnknownFrequency(t *testing.T) {
	bill := activeBill(domain.BillFrequency("weekly"), nil)
	for month := 1; month <= 12; month++ {
		assert.False(t, cashflow.BillDueIn(bill, month, 2024))
	}
}

func TestBillDueIn_InactiveExcluded(t *testing.T) {
	bill := activeBill(domain.FrequencyMonthly, nil)
	bill.IsActive = false
	assert.False(t, cashflow.BillDueIn(bill, 1, 2024))
}

func TestBillsDueIn_FiltersCollection(t *testing.T) {
	monthly := activeBill(domain.FrequencyMonthly, nil)
	monthly.BillID = 1
	annualJune := activeBill(domain.FrequencyAnnual, intPtr(6))
	annualJune.BillID = 2
	quarterly := activeBill(domain.FrequencyQuarterly, nil)
	quarterly.BillID = 3

	bills := []domain.RecurringBill{monthly, annualJune, quarterly}

	due := cashflow.BillsDueIn(bills, 6, 2024)
	ids := make([]int64, 0, len(due))
	for _, b := range due {
		ids = append(ids, b.BillID)
	}
	assert.Equal(t, []int64{1, 2}, ids)

	due = cashflow.BillsDueIn(bills, 7, 2024)
	ids = ids[:0]
	for _, b := range due {
		ids = append(ids, b.BillID)
	}
	assert.Equal(t, []int64{1, 3}, ids)

	assert.Empty(t, cashflow.BillsDueIn(nil, 1, 2024))
}

func TestAnnualOccurrences(t *testing.T) {
	tests := []struct {
		name string
		bill domain.RecurringBill
		year int
		want int64
	}{
		{"monthly", activeBill(domain.FrequencyMonthly, nil), 2024, 12},
		{"quarterly", activeBill(domain.FrequencyQuarterly, nil), 2024, 4},
		{"semi-annual", activeBill(domain.FrequencySemiAnnual, nil), 2024, 2},
		{"annual", activeBill(domain.FrequencyAnnual, intPtr(4)), 2024, 1},
		{"unknown", activeBill(domain.BillFrequency("biweekly"), nil), 2024, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cashflow.AnnualOccurrences(tt.bill, tt.year))
		})
	}

	oneTime := activeBill(domain.FrequencyAnnual, intPtr(4))
	oneTime.IsOneTime = true
	oneTime.OneTimeYear = intPtr(2024)
	assert.Equal(t, int64(1), cashflow.AnnualOccurrences(oneTime, 2024))
	assert.Equal(t, int64(0), cashflow.AnnualOccurrences(oneTime, 2025))

	inactive := activeBill(domain.FrequencyMonthly, nil)
	inactive.IsActive = false
	assert.Equal(t, int64(0), cashflow.AnnualOccurrences(inactive, 2024))
}
