package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a single sale line outside any bill.
type CreateTransactionRequest struct {
	OwnerID       int64            `json:"owner_id"       validate:"required"`
	MaterialID    int64            `json:"material_id"    validate:"required"`
	VehicleNumber string           `json:"vehicle_number" validate:"required,max=30"`
	Quantity      *decimal.Decimal `json:"quantity"       validate:"required"`
}

// UpdateTransactionRequest corrects a recorded line. Totals are recomputed.
type UpdateTransactionRequest struct {
	VehicleNumber string           `json:"vehicle_number" validate:"required,max=30"`
	Quantity      *decimal.Decimal `json:"quantity"       validate:"required"`
	RateAtSale    *decimal.Decimal `json:"rate_at_sale"   validate:"required,gte=0"`
}

type TransactionResponse struct {
	TransactionID        int64           `json:"transaction_id"`
	OwnerID              int64           `json:"owner_id"`
	MaterialID           int64           `json:"material_id"`
	MaterialName         string          `json:"material_name,omitempty"`
	Unit                 string          `json:"unit,omitempty"`
	VehicleNumber        string          `json:"vehicle_number"`
	Quantity             decimal.Decimal `json:"quantity"`
	RateAtSale           decimal.Decimal `json:"rate_at_sale"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	BillID               *int64          `json:"bill_id"`
	Mattam               *string         `json:"mattam"`
	GrillMattam          bool            `json:"grill_mattam"`
	MattamChecked        bool            `json:"mattam_checked"`
	TransactionTimestamp time.Time       `json:"transaction_timestamp"`
}

type TransactionChangeResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}
