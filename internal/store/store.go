package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleet-maintenance-backend/internal/model"
	"fleet-maintenance-backend/internal/schedule"
)

// Store defines the interface for all database operations. Each mutating
// operation runs in a single transaction: record, hour aggregate, and alert
// state always change together, so no reader sees a half-applied accrual.
// Writes for the same equipment are serialized, so add, delete, and reset
// never interleave on one aggregate.
type Store interface {
	DB() *gorm.DB

	// AddRecord validates and stores a work session, accrues its hours onto
	// the equipment aggregate, and re-evaluates the maintenance tier. The
	// returned alert is non-nil only when it was newly raised or escalated
	// and should be pushed to subscribers.
	AddRecord(ctx context.Context, input RecordInput) (*model.WorkRecord, *model.MaintenanceAlert, error)
	// DeleteRecord reverses a record's accrual and re-evaluates the tier.
	// Unknown ids are a no-op.
	DeleteRecord(ctx context.Context, id uint64) error
	ListRecords(ctx context.Context, vesselID string) ([]model.WorkRecord, error)

	EquipmentHours(ctx context.Context, equipmentID string) (float64, error)
	ListEquipmentHours(ctx context.Context) ([]model.EquipmentHours, error)
	// ResetEquipment models "maintenance performed": hours back to zero and
	// any alert removed.
	ResetEquipment(ctx context.Context, equipmentID string) error

	ListAlerts(ctx context.Context) ([]model.MaintenanceAlert, error)
	// DismissAlert removes one alert by id without touching hours. The next
	// accrual re-creates it if the hours still qualify.
	DismissAlert(ctx context.Context, id string) error

	AddVessel(ctx context.Context, v *model.Vessel) error
	ListVessels(ctx context.Context) ([]model.Vessel, error)

	// AddISMEvent appends one safety event to the ISM log. A missing status
	// defaults to pending.
	AddISMEvent(ctx context.Context, event *model.ISMEvent) error
	ListISMEvents(ctx context.Context) ([]model.ISMEvent, error)
	// DeleteISMEvent ignores unknown ids.
	DeleteISMEvent(ctx context.Context, id uint64) error
}

// equipmentLocks keeps one mutex per equipment id. Mutating transactions for
// the same equipment run one at a time; the database's read-modify-write on
// the hour aggregate would otherwise lose updates under concurrent requests.
type equipmentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (e *equipmentLocks) lock(equipmentID string) func() {
	e.mu.Lock()
	l, ok := e.locks[equipmentID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[equipmentID] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db    *gorm.DB
	sched schedule.Schedule
	locks equipmentLocks
}

// NewGormStore creates a new GORM-backed store evaluating alerts against the
// given maintenance schedule.
func NewGormStore(db *gorm.DB, sched schedule.Schedule) Store {
	return &gormStore{
		db:    db,
		sched: sched,
		locks: equipmentLocks{locks: make(map[string]*sync.Mutex)},
	}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) AddRecord(ctx context.Context, input RecordInput) (*model.WorkRecord, *model.MaintenanceAlert, error) {
	if !input.StopTime.After(input.StartTime) {
		return nil, nil, ErrInvalidTimeRange
	}

	record := model.WorkRecord{
		VesselID:     input.VesselID,
		EquipmentID:  input.EquipmentID,
		Activity:     input.Activity,
		Status:       input.Status,
		Remarks:      input.Remarks,
		StartTime:    input.StartTime,
		StopTime:     input.StopTime,
		WorkingHours: input.StopTime.Sub(input.StartTime).Hours(),
	}

	unlock := s.locks.lock(input.EquipmentID)
	defer unlock()

	var notify *model.MaintenanceAlert
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vessel model.Vessel
		if err := tx.First(&vessel, "imo_number = ?", input.VesselID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownVessel
			}
			return fmt.Errorf("failed to look up vessel %s: %w", input.VesselID, err)
		}

		shipType, ok := schedule.ShipTypes()[vessel.Type]
		if !ok || !shipType.HasEquipment(input.EquipmentID) {
			return ErrEquipmentNotAllowed
		}

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to store work record: %w", err)
		}

		total, err := s.applyHoursDelta(tx, input.EquipmentID, record.WorkingHours)
		if err != nil {
			return err
		}

		notify, err = s.evaluate(tx, input.EquipmentID, total)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &record, notify, nil
}

func (s *gormStore) DeleteRecord(ctx context.Context, id uint64) error {
	// A record's equipment never changes after creation, so it is safe to
	// resolve the lock key before taking the lock.
	var record model.WorkRecord
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up work record %d: %w", id, err)
	}

	unlock := s.locks.lock(record.EquipmentID)
	defer unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.WorkRecord{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete work record %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			// Deleted by a concurrent request while we waited for the lock.
			return nil
		}

		total, err := s.applyHoursDelta(tx, record.EquipmentID, -record.WorkingHours)
		if err != nil {
			return err
		}

		// A decrease can only downgrade or retract, never notify.
		_, err = s.evaluate(tx, record.EquipmentID, total)
		return err
	})
}

func (s *gormStore) ListRecords(ctx context.Context, vesselID string) ([]model.WorkRecord, error) {
	q := s.db.WithContext(ctx).Order("id")
	if vesselID != "" {
		q = q.Where("vessel_id = ?", vesselID)
	}
	var records []model.WorkRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	return records, nil
}

func (s *gormStore) EquipmentHours(ctx context.Context, equipmentID string) (float64, error) {
	var agg model.EquipmentHours
	err := s.db.WithContext(ctx).First(&agg, "equipment_id = ?", equipmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch hours for %s: %w", equipmentID, err)
	}
	return agg.Hours, nil
}

func (s *gormStore) ListEquipmentHours(ctx context.Context) ([]model.EquipmentHours, error) {
	var aggs []model.EquipmentHours
	if err := s.db.WithContext(ctx).Order("equipment_id").Find(&aggs).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment hours: %w", err)
	}
	return aggs, nil
}

func (s *gormStore) ResetEquipment(ctx context.Context, equipmentID string) error {
	unlock := s.locks.lock(equipmentID)
	defer unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.EquipmentHours{}).
			Where("equipment_id = ?", equipmentID).
			Update("hours", 0).Error
		if err != nil {
			return fmt.Errorf("failed to reset hours for %s: %w", equipmentID, err)
		}

		if err := tx.Where("equipment_id = ?", equipmentID).Delete(&model.MaintenanceAlert{}).Error; err != nil {
			return fmt.Errorf("failed to clear alert for %s: %w", equipmentID, err)
		}
		return nil
	})
}

func (s *gormStore) ListAlerts(ctx context.Context) ([]model.MaintenanceAlert, error) {
	var alerts []model.MaintenanceAlert
	if err := s.db.WithContext(ctx).Order("equipment_id").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance alerts: %w", err)
	}
	return alerts, nil
}

func (s *gormStore) DismissAlert(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.MaintenanceAlert{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to dismiss alert %s: %w", id, err)
	}
	return nil
}

func (s *gormStore) AddVessel(ctx context.Context, v *model.Vessel) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "imo_number"}},
		DoNothing: true,
	}).Create(v)
	if result.Error != nil {
		return fmt.Errorf("failed to register vessel %s: %w", v.IMONumber, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateVessel
	}
	return nil
}

func (s *gormStore) ListVessels(ctx context.Context) ([]model.Vessel, error) {
	var vessels []model.Vessel
	if err := s.db.WithContext(ctx).Order("created_at").Find(&vessels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}
	return vessels, nil
}

// applyHoursDelta adjusts the equipment aggregate inside the caller's
// transaction and returns the new total. Totals clamp at zero; a delete past
// a reset would otherwise drive them negative.
func (s *gormStore) applyHoursDelta(tx *gorm.DB, equipmentID string, delta float64) (float64, error) {
	var agg model.EquipmentHours
	err := tx.First(&agg, "equipment_id = ?", equipmentID).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return 0, fmt.Errorf("failed to fetch hours for %s: %w", equipmentID, err)
	}

	agg.EquipmentID = equipmentID
	agg.Hours += delta
	if agg.Hours < 0 {
		agg.Hours = 0
	}

	if created {
		err = tx.Create(&agg).Error
	} else {
		err = tx.Model(&model.EquipmentHours{}).
			Where("equipment_id = ?", equipmentID).
			Update("hours", agg.Hours).Error
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update hours for %s: %w", equipmentID, err)
	}
	return agg.Hours, nil
}

// evaluate maps the new total onto the threshold ladder and reconciles the
// equipment's single alert row: raise, update in place, or retract. Equipment
// without a schedule entry never alerts and existing state is left alone.
// The returned alert is non-nil only for a raise or an escalation.
func (s *gormStore) evaluate(tx *gorm.DB, equipmentID string, total float64) (*model.MaintenanceAlert, error) {
	thresholds, ok := s.sched.Lookup(equipmentID)
	if !ok {
		return nil, nil
	}

	tier, due := thresholds.TierFor(total)
	if !due {
		if err := tx.Where("equipment_id = ?", equipmentID).Delete(&model.MaintenanceAlert{}).Error; err != nil {
			return nil, fmt.Errorf("failed to retract alert for %s: %w", equipmentID, err)
		}
		return nil, nil
	}

	var existing model.MaintenanceAlert
	err := tx.First(&existing, "equipment_id = ?", equipmentID).Error
	raised := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !raised {
		return nil, fmt.Errorf("failed to fetch alert for %s: %w", equipmentID, err)
	}

	alert := model.MaintenanceAlert{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		Tier:        string(tier),
		Priority:    tier.Priority(),
		Message:     schedule.AlertMessage(tier, equipmentID, total),
		Hours:       total,
		Threshold:   thresholds.ThresholdFor(tier),
	}

	if raised {
		if err := tx.Create(&alert).Error; err != nil {
			return nil, fmt.Errorf("failed to create alert for %s: %w", equipmentID, err)
		}
		return &alert, nil
	}

	// Overwrite in place; the id stays stable so a pending dismissal still
	// targets the right row.
	alert.ID = existing.ID
	alert.CreatedAt = existing.CreatedAt
	if err := tx.Save(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to update alert for %s: %w", equipmentID, err)
	}

	if schedule.Tier(alert.Tier).Rank() > schedule.Tier(existing.Tier).Rank() {
		return &alert, nil
	}
	return nil, nil
}
