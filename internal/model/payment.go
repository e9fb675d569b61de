package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only debit against an owner's balance.
// Mode is free-form: cash, UPI, bank, other.
type Payment struct {
	ID          int64           `gorm:"column:payment_id;primaryKey;autoIncrement"`
	OwnerID     int64           `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Mode        *string
	Notes       *string
	PaymentDate time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (Payment) TableName() string { return "owner_payments" }
