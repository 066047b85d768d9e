package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillTypeRecurring is the discriminator for payments against recurring bills.
// It is the only bill type today; the column exists so other payable kinds can
// share the table later.
const BillTypeRecurring = "recurring_bill"

// PaymentTracking records whether a bill has been paid for a specific
// (month, year) period. At most one row exists per
// (bill_type, bill_id, payment_month, payment_year) tuple; writes are upserts.
type PaymentTracking struct {
	TrackingID   int64            `json:"trackingID"`
	BillType     string           `json:"billType"`
	BillID       int64            `json:"billID"`
	PropertyID   *int64           `json:"propertyID"` // denormalized from the bill
	PaymentMonth int              `json:"paymentMonth"`
	PaymentYear  int              `json:"paymentYear"`
	IsPaid       bool             `json:"isPaid"`
	PaidDate     *time.Time       `json:"paidDate"`
	AmountPaid   *decimal.Decimal `json:"amountPaid"`
	Notes        string           `json:"notes"`
	AuditFields
}
