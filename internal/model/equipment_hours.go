package model

import "time"

// EquipmentHours is the running total of operating hours for one piece of
// equipment. The row is mutated only inside the same transaction as the
// record write that changes it, and only downward to zero on reset.
type EquipmentHours struct {
	EquipmentID string    `gorm:"primaryKey;size:128" json:"equipmentId"`
	Hours       float64   `gorm:"not null" json:"hours"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
