package model

import "time"

// WorkRecord is one logged operating session for a piece of equipment.
// WorkingHours is computed once at creation and never recomputed, so the
// stored accrual stays stable even if time handling changes later.
type WorkRecord struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	VesselID     string    `gorm:"size:16;index;not null" json:"vesselId"`
	EquipmentID  string    `gorm:"size:128;index;not null" json:"equipmentId"`
	Activity     string    `gorm:"size:128" json:"activity"`
	Status       string    `gorm:"size:64" json:"status"`
	Remarks      string    `json:"remarks"`
	StartTime    time.Time `gorm:"not null" json:"startTime"`
	StopTime     time.Time `gorm:"not null" json:"stopTime"`
	WorkingHours float64   `gorm:"not null" json:"workingHours"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
