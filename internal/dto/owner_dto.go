package dto

import "time"

type CreateOwnerRequest struct {
	Name        string  `json:"name"         validate:"required,max=120"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=200"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateOwnerRequest = CreateOwnerRequest

type OwnerResponse struct {
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	ContactInfo *string   `json:"contact_info"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}
