package model

import "time"

// Owner is a party that picks up material and accumulates a ledger.
type Owner struct {
	ID          int64   `gorm:"column:owner_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"uniqueIndex;not null"`
	ContactInfo *string `gorm:"column:contact_info"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the table name used by the agency's existing database.
func (Owner) TableName() string { return "vehicle_owners" }
