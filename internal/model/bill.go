package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill groups the transactions created by one sale request.
// TotalAmount = SUM(items.TotalCost) + pass amount when IncludePass.
// DailyBillNo restarts at 1 every calendar day in the business timezone.
type Bill struct {
	ID            int64           `gorm:"column:bill_id;primaryKey;autoIncrement"`
	OwnerID       int64           `gorm:"not null;index"`
	VehicleNumber string          `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DailyBillNo   int             `gorm:"not null"`
	BillDate      time.Time       `gorm:"type:date;not null;index"`
	IncludePass   bool            `gorm:"not null;default:false"`
	// PDFPath is set once the printable document has been generated
	PDFPath       *string   `gorm:"column:pdf_path"`
	BillTimestamp time.Time `gorm:"not null"`

	Owner *Owner        `gorm:"foreignKey:OwnerID"`
	Items []Transaction `gorm:"foreignKey:BillID"`
	Pass  *Pass         `gorm:"foreignKey:BillID"`
}

// Transaction is one material line sold to an owner. RateAtSale is copied from
// the material at creation time and TotalCost = Quantity × RateAtSale.
// Mattam fields are display-only annotations for the printed bill.
type Transaction struct {
	ID                   int64           `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	OwnerID              int64           `gorm:"not null;index"`
	MaterialID           int64           `gorm:"not null;index"`
	VehicleNumber        string          `gorm:"not null"`
	Quantity             decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	RateAtSale           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalCost            decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BillID               *int64          `gorm:"index"`
	Mattam               *string
	GrillMattam          bool      `gorm:"not null;default:false"`
	MattamChecked        bool      `gorm:"not null;default:false"`
	TransactionTimestamp time.Time `gorm:"not null;index"`

	Material *Material `gorm:"foreignKey:MaterialID"`
}
