package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one row of GET /api/owners/:ownerId/ledger, oldest first.
// MaterialName carries the same text as Description for older clients.
type LedgerEntryResponse struct {
	ID            int64            `json:"id"`
	Source        string           `json:"source"`
	EntryDate     time.Time        `json:"entry_date"`
	EntryType     string           `json:"entry_type"`
	Description   string           `json:"description"`
	MaterialName  string           `json:"material_name"`
	VehicleNumber *string          `json:"vehicle_number"`
	Quantity      *decimal.Decimal `json:"quantity"`
	RateAtSale    *decimal.Decimal `json:"rate_at_sale"`
	Amount        decimal.Decimal  `json:"amount"`
	SignedAmount  decimal.Decimal  `json:"signed_amount"`
	CreditAmount  decimal.Decimal  `json:"credit_amount"`
	DebitAmount   decimal.Decimal  `json:"debit_amount"`
	Balance       decimal.Decimal  `json:"balance"`
}
