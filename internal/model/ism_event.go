package model

import "time"

// ISMEvent is one entry in the safety management event log: incidents,
// non-conformities, observations, and drills, with an optional corrective
// action and a follow-up status.
type ISMEvent struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	EventType   string    `gorm:"size:32;not null" json:"eventType"`
	Description string    `gorm:"not null" json:"description"`
	Action      string    `json:"action"`
	Status      string    `gorm:"size:32;not null" json:"status"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
