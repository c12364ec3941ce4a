package store

import (
	"errors"
	"time"
)

// RecordInput carries a new work session as submitted by the caller.
// WorkingHours is derived here, never supplied.
type RecordInput struct {
	VesselID    string
	EquipmentID string
	Activity    string
	Status      string
	Remarks     string
	StartTime   time.Time
	StopTime    time.Time
}

var (
	// ErrInvalidTimeRange rejects records whose stop time is not after the
	// start time. Nothing is stored on this path.
	ErrInvalidTimeRange = errors.New("stop time must be after start time")

	// ErrUnknownVessel rejects records naming a vessel that was never
	// registered.
	ErrUnknownVessel = errors.New("vessel is not registered")

	// ErrEquipmentNotAllowed rejects records naming equipment outside the
	// vessel type's configured equipment set.
	ErrEquipmentNotAllowed = errors.New("equipment is not configured for the vessel type")

	// ErrDuplicateVessel rejects registration of an IMO number already in use.
	ErrDuplicateVessel = errors.New("vessel already registered")

	// ErrInvalidEventType rejects ISM events outside the closed event type set.
	ErrInvalidEventType = errors.New("unknown ISM event type")

	// ErrInvalidEventStatus rejects ISM events outside the closed status set.
	ErrInvalidEventStatus = errors.New("unknown ISM event status")
)
