package store

import (
	"context"
	"fmt"

	"fleet-maintenance-backend/internal/model"
)

// Event types and follow-up statuses form closed sets, mirroring the fixed
// choices on the reporting form.
var (
	ismEventTypes = map[string]bool{
		"incident":      true,
		"nonConformity": true,
		"observation":   true,
		"exercise":      true,
	}
	ismStatuses = map[string]bool{
		"pending":  true,
		"resolved": true,
		"ongoing":  true,
	}
)

func (s *gormStore) AddISMEvent(ctx context.Context, event *model.ISMEvent) error {
	if !ismEventTypes[event.EventType] {
		return ErrInvalidEventType
	}
	if event.Status == "" {
		event.Status = "pending"
	}
	if !ismStatuses[event.Status] {
		return ErrInvalidEventStatus
	}

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to store ISM event: %w", err)
	}
	return nil
}

func (s *gormStore) ListISMEvents(ctx context.Context) ([]model.ISMEvent, error) {
	var events []model.ISMEvent
	if err := s.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list ISM events: %w", err)
	}
	return events, nil
}

func (s *gormStore) DeleteISMEvent(ctx context.Context, id uint64) error {
	if err := s.db.WithContext(ctx).Delete(&model.ISMEvent{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete ISM event %d: %w", id, err)
	}
	return nil
}
