package model

import "time"

// Vehicle remembers plates recently used by an owner for autocomplete.
// It is never authoritative for billing.
type Vehicle struct {
	ID            int64     `gorm:"column:vehicle_id;primaryKey;autoIncrement"`
	OwnerID       int64     `gorm:"not null;uniqueIndex:idx_vehicles_owner_number"`
	VehicleNumber string    `gorm:"not null;uniqueIndex:idx_vehicles_owner_number"`
	LastUsedAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
}
