package dto

import "time"

// VehicleFilter is bound from the query string of GET /api/vehicles.
type VehicleFilter struct {
	OwnerID int64  `form:"owner_id" validate:"required"`
	Q       string `form:"q"`
}

type CreateVehicleRequest struct {
	OwnerID       int64  `json:"owner_id"       validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required,max=30"`
}

type VehicleResponse struct {
	VehicleID     int64     `json:"vehicle_id"`
	OwnerID       int64     `json:"owner_id"`
	VehicleNumber string    `json:"vehicle_number"`
	LastUsedAt    time.Time `json:"last_used_at"`
}
