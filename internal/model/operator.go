package model

import "time"

// Operator is a staff account allowed to use the admin API when auth is enabled.
type Operator struct {
	ID           int64  `gorm:"column:operator_id;primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	DisplayName  string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
