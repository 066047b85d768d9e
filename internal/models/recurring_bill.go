package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// RecurringBill is the row shape of the recurring_bills table. PropertyName
// comes from a LEFT JOIN on properties and is invalid for orphaned bills.
type RecurringBill struct {
	BillID       int64           `db:"id"`
	PropertyID   sql.NullInt64   `db:"property_id"`
	PropertyName sql.NullString  `db:"property_name"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	Frequency    string          `db:"frequency"`
	DueMonth     sql.NullInt32   `db:"due_month"`
	Category     string          `db:"category"`
	PaymentLink  string          `db:"payment_link"`
	Notes        string          `db:"notes"`
	IsOneTime    bool            `db:"is_one_time"`
	OneTimeYear  sql.NullInt32   `db:"one_time_year"`
	EscrowAmount decimal.Decimal `db:"escrow_amount"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
