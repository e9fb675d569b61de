package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery is bound from the query string of the report endpoints.
type ReportQuery struct {
	From string `form:"from"` // YYYY-MM-DD
	To   string `form:"to"`   // YYYY-MM-DD
	Sort string `form:"sort"` // name | activity
}

type OwnerSummaryRow struct {
	OwnerID      int64           `json:"owner_id"`
	OwnerName    string          `json:"owner_name"`
	TotalCredit  decimal.Decimal `json:"total_credit"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	Balance      decimal.Decimal `json:"balance"`
	LastActivity *time.Time      `json:"last_activity"`
}

type OwnersSummaryResponse struct {
	From   string            `json:"from"`
	To     string            `json:"to"`
	Owners []OwnerSummaryRow `json:"owners"`
}

type WeeklyItem struct {
	Material string           `json:"material"`
	Qty      *decimal.Decimal `json:"qty"`
	Rate     *decimal.Decimal `json:"rate"`
	Total    decimal.Decimal  `json:"total"`
}

type WeeklyDay struct {
	Date     string          `json:"date"`
	Items    []WeeklyItem    `json:"items"`
	DayTotal decimal.Decimal `json:"day_total"`
	Paid     decimal.Decimal `json:"paid"`
	Balance  decimal.Decimal `json:"balance"`
}

type WeeklyOwner struct {
	OwnerID   int64       `json:"owner_id"`
	OwnerName string      `json:"owner_name"`
	Entries   []WeeklyDay `json:"entries"`
}

type WeeklyReportResponse struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Owners []WeeklyOwner `json:"owners"`
}
