package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// BillFilter is bound from the query string of GET /api/bills.
type BillFilter struct {
	OwnerID int64  `form:"owner_id"`
	From    string `form:"from"` // YYYY-MM-DD, inclusive
	To      string `form:"to"`   // YYYY-MM-DD, inclusive
	Limit   int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BillItemRequest is one material line. Mattam fields only affect the printed
// bill, never totals.
type BillItemRequest struct {
	MaterialID    int64            `json:"material_id"    validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity"       validate:"required"`
	Mattam        *LooseString     `json:"mattam"`
	GrillMattam   bool             `json:"grill_mattam"`
	MattamChecked bool             `json:"mattam_checked"`
}

type CreateBillRequest struct {
	OwnerID       int64             `json:"owner_id"       validate:"required"`
	VehicleNumber string            `json:"vehicle_number" validate:"required,max=30"`
	Items         []BillItemRequest `json:"items"          validate:"required,min=1,dive"`
	IncludePass   bool              `json:"include_pass"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillResponse struct {
	BillID        int64           `json:"bill_id"`
	OwnerID       int64           `json:"owner_id"`
	OwnerName     string          `json:"owner_name,omitempty"`
	VehicleNumber string          `json:"vehicle_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DailyBillNo   int             `json:"daily_bill_no"`
	BillDate      string          `json:"bill_date"`
	IncludePass   bool            `json:"include_pass"`
	HasDocument   bool            `json:"has_document"`
	BillTimestamp time.Time       `json:"bill_timestamp"`
}

type PassResponse struct {
	PassID        int64           `json:"pass_id"`
	OwnerID       int64           `json:"owner_id"`
	VehicleNumber string          `json:"vehicle_number"`
	PassAmount    decimal.Decimal `json:"pass_amount"`
	BillID        *int64          `json:"bill_id"`
	PassDate      time.Time       `json:"pass_date"`
}

// DocumentOutcome reports the post-commit document step. A failed document
// never undoes the bill.
type DocumentOutcome struct {
	Status string `json:"status"` // generated | failed
	Error  string `json:"error,omitempty"`
}

const (
	DocumentGenerated = "generated"
	DocumentFailed    = "failed"
)

type CreateBillResponse struct {
	Message  string                `json:"message"`
	Bill     BillResponse          `json:"bill"`
	Items    []TransactionResponse `json:"items"`
	Pass     *PassResponse         `json:"pass"`
	Document DocumentOutcome       `json:"document"`
}

type BillDetailResponse struct {
	Bill  BillResponse          `json:"bill"`
	Items []TransactionResponse `json:"items"`
	Pass  *PassResponse         `json:"pass"`
}
