// Package schedule holds the static maintenance configuration: per-equipment
// hour thresholds, the tier ladder derived from them, and the per-ship-type
// equipment and activity sets.
package schedule

import "fmt"

// Tier is an escalating maintenance urgency level.
type Tier string

const (
	TierInspection Tier = "inspection"
	TierMinor      Tier = "minor"
	TierMajor      Tier = "major"
)

// Priority maps a tier to its display priority.
func (t Tier) Priority() string {
	switch t {
	case TierMajor:
		return "high"
	case TierMinor:
		return "medium"
	case TierInspection:
		return "low"
	}
	return ""
}

// Rank orders tiers by urgency so callers can tell an escalation from a
// downgrade. Higher is more urgent; an unknown tier ranks below all.
func (t Tier) Rank() int {
	switch t {
	case TierInspection:
		return 1
	case TierMinor:
		return 2
	case TierMajor:
		return 3
	}
	return 0
}

// Thresholds are the ascending hour marks at which each tier becomes due.
type Thresholds struct {
	InspectionHours   float64 `yaml:"inspection_hours"`
	MinorServiceHours float64 `yaml:"minor_service_hours"`
	MajorServiceHours float64 `yaml:"major_service_hours"`
}

// TierFor returns the highest tier the given cumulative hours qualify for.
// ok is false when hours are still below the inspection threshold.
func (t Thresholds) TierFor(hours float64) (Tier, bool) {
	switch {
	case hours >= t.MajorServiceHours:
		return TierMajor, true
	case hours >= t.MinorServiceHours:
		return TierMinor, true
	case hours >= t.InspectionHours:
		return TierInspection, true
	}
	return "", false
}

// ThresholdFor returns the hour mark for one tier.
func (t Thresholds) ThresholdFor(tier Tier) float64 {
	switch tier {
	case TierMajor:
		return t.MajorServiceHours
	case TierMinor:
		return t.MinorServiceHours
	case TierInspection:
		return t.InspectionHours
	}
	return 0
}

// Progress describes how far one equipment is from its next service.
type Progress struct {
	NextService    Tier    `json:"nextService,omitempty"`
	NextThreshold  float64 `json:"nextThreshold"`
	RemainingHours float64 `json:"remainingHours"`
	Percent        float64 `json:"percent"`
	Overdue        bool    `json:"overdue"`
}

// ProgressAt projects the current hours onto the threshold ladder. Past the
// major threshold there is no next service, only an overdue flag.
func (t Thresholds) ProgressAt(hours float64) Progress {
	next := func(threshold float64, tier Tier) Progress {
		pct := hours / threshold * 100
		if pct > 100 {
			pct = 100
		}
		return Progress{
			NextService:    tier,
			NextThreshold:  threshold,
			RemainingHours: threshold - hours,
			Percent:        pct,
		}
	}

	switch {
	case hours < t.InspectionHours:
		return next(t.InspectionHours, TierInspection)
	case hours < t.MinorServiceHours:
		return next(t.MinorServiceHours, TierMinor)
	case hours < t.MajorServiceHours:
		return next(t.MajorServiceHours, TierMajor)
	}
	return Progress{NextThreshold: t.MajorServiceHours, Percent: 100, Overdue: true}
}

// Schedule maps an equipment type name to its thresholds. Equipment outside
// the map accrues hours but never alerts.
type Schedule map[string]Thresholds

// Lookup returns the thresholds for an equipment name, if configured.
func (s Schedule) Lookup(equipmentID string) (Thresholds, bool) {
	t, ok := s[equipmentID]
	return t, ok
}

// AlertMessage renders the human-readable alert text for a tier.
func AlertMessage(tier Tier, equipmentID string, hours float64) string {
	var action string
	switch tier {
	case TierMajor:
		action = "Major service required"
	case TierMinor:
		action = "Minor service required"
	default:
		action = "Inspection required"
	}
	return fmt.Sprintf("%s for %s after %.1f operating hours.", action, equipmentID, hours)
}

// Default returns the built-in maintenance schedule. Config may override
// individual entries or add new ones.
func Default() Schedule {
	return Schedule{
		"Main Engine":        {InspectionHours: 2000, MinorServiceHours: 5000, MajorServiceHours: 10000},
		"Auxiliary Engine":   {InspectionHours: 1500, MinorServiceHours: 4000, MajorServiceHours: 8000},
		"Generator":          {InspectionHours: 1200, MinorServiceHours: 3500, MajorServiceHours: 7000},
		"Boiler":             {InspectionHours: 1000, MinorServiceHours: 3000, MajorServiceHours: 6000},
		"Cargo Pumps":        {InspectionHours: 800, MinorServiceHours: 2000, MajorServiceHours: 4000},
		"Inert Gas System":   {InspectionHours: 1000, MinorServiceHours: 3000, MajorServiceHours: 6000},
		"COW System":         {InspectionHours: 800, MinorServiceHours: 2500, MajorServiceHours: 5000},
		"Container Crane":    {InspectionHours: 500, MinorServiceHours: 2000, MajorServiceHours: 4000},
		"Cargo Crane":        {InspectionHours: 500, MinorServiceHours: 2000, MajorServiceHours: 4000},
		"Reefer System":      {InspectionHours: 800, MinorServiceHours: 2000, MajorServiceHours: 4000},
		"Ventilation System": {InspectionHours: 1000, MinorServiceHours: 2500, MajorServiceHours: 5000},
	}
}
