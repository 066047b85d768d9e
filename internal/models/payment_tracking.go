package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// PaymentTracking is the row shape of the payment_tracking table. The table
// carries a unique index on (bill_type, bill_id, payment_month, payment_year)
// that the upsert keys on.
type PaymentTracking struct {
	TrackingID   int64               `db:"id"`
	BillType     string              `db:"bill_type"`
	BillID       int64               `db:"bill_id"`
	PropertyID   sql.NullInt64       `db:"property_id"`
	PaymentMonth int                 `db:"payment_month"`
	PaymentYear  int                 `db:"payment_year"`
	IsPaid       bool                `db:"is_paid"`
	PaidDate     sql.NullTime        `db:"paid_date"`
	AmountPaid   decimal.NullDecimal `db:"amount_paid"`
	Notes        string              `db:"notes"`
	AuditFields
}
