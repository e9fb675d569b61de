package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"       validate:"required"`
	Mode        *string          `json:"mode"         validate:"omitempty,max=30"` // cash | UPI | bank | other
	Notes       *string          `json:"notes"        validate:"omitempty,max=500"`
	PaymentDate *DateOrTime      `json:"payment_date" swaggertype:"string" example:"2026-03-10"` // defaults to now
}

type PaymentResponse struct {
	PaymentID   int64           `json:"payment_id"`
	OwnerID     int64           `json:"owner_id"`
	Amount      decimal.Decimal `json:"amount"`
	Mode        *string         `json:"mode"`
	Notes       *string         `json:"notes"`
	PaymentDate time.Time       `json:"payment_date"`
}
