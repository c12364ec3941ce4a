package model

import "time"

// MaintenanceAlert is the single active alert for a piece of equipment.
// The unique index on EquipmentID enforces at most one alert per equipment;
// tier changes update the existing row in place.
type MaintenanceAlert struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	EquipmentID string    `gorm:"uniqueIndex;size:128;not null" json:"equipmentId"`
	Tier        string    `gorm:"size:16;not null" json:"tier"`
	Priority    string    `gorm:"size:16;not null" json:"priority"`
	Message     string    `gorm:"not null" json:"message"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Threshold   float64   `gorm:"not null" json:"threshold"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
