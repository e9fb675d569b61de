package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pass is a flat surcharge credited to the owner's ledger alongside a bill.
type Pass struct {
	ID            int64           `gorm:"column:pass_id;primaryKey;autoIncrement"`
	OwnerID       int64           `gorm:"not null;index"`
	VehicleNumber string          `gorm:"not null"`
	PassAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BillID        *int64          `gorm:"index"`
	PassDate      time.Time       `gorm:"not null;index"`
}

func (Pass) TableName() string { return "owner_passes" }
