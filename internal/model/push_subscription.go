package model

import "time"

// PushSubscription holds the information for a browser push subscription.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey;size:500" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// SubscriptionEquipment maps a subscription to one equipment name it watches.
type SubscriptionEquipment struct {
	Endpoint    string `gorm:"primaryKey;size:500" json:"endpoint"`
	EquipmentID string `gorm:"primaryKey;size:128" json:"equipmentId"`
}
