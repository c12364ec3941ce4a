package model

import "time"

// Vessel represents a ship registered with the fleet.
type Vessel struct {
	IMONumber string    `gorm:"primaryKey;size:16" json:"imoNumber"`
	Name      string    `gorm:"size:128;not null" json:"vesselName"`
	Type      string    `gorm:"size:32;not null" json:"vesselType"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
