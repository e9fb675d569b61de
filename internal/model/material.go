package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a catalog entry. RatePerUnit is the current price; sales copy it
// into Transaction.RateAtSale so later price changes never touch past totals.
type Material struct {
	ID          int64           `gorm:"column:material_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"uniqueIndex;not null"`
	Unit        string          `gorm:"not null;default:'ton'"`
	RatePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
