package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateMaterialRequest struct {
	Name        string           `json:"name"          validate:"required,max=120"`
	Unit        string           `json:"unit"          validate:"omitempty,max=20"` // default "ton"
	RatePerUnit *decimal.Decimal `json:"rate_per_unit" validate:"required,gte=0"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateMaterialRequest struct {
	Name        string           `json:"name"          validate:"required,max=120"`
	Unit        string           `json:"unit"          validate:"omitempty,max=20"`
	RatePerUnit *decimal.Decimal `json:"rate_per_unit" validate:"required,gte=0"`
	IsActive    *bool            `json:"is_active"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	MaterialID  int64           `json:"material_id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
	IsActive    bool            `json:"is_active"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
