package repository

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityRepository implements persistence.AvailabilityRepository using GORM
type AvailabilityRepository struct {
	baseRepository
}

// NewAvailabilityRepository creates a new AvailabilityRepository instance
func NewAvailabilityRepository(db *gorm.DB, logger coreport.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{baseRepository: newBaseRepository(db, logger)}
}

func availabilityToEntity(m *model.Availability) *entity.Availability {
	return &entity.Availability{
		ID:            m.ID,
		DoctorID:      m.DoctorID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Status:        entity.SlotStatus(m.Status),
		AppointmentID: m.AppointmentID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func availabilitiesToEntities(models []model.Availability) []*entity.Availability {
	slots := make([]*entity.Availability, 0, len(models))
	for i := range models {
		slots = append(slots, availabilityToEntity(&models[i]))
	}
	return slots
}

// Create inserts a slot
func (r *AvailabilityRepository) Create(ctx context.Context, slot *entity.Availability) error {
	m := &model.Availability{
		ID:            slot.ID,
		DoctorID:      slot.DoctorID,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Status:        string(slot.Status),
		AppointmentID: slot.AppointmentID,
		CreatedAt:     slot.CreatedAt,
		UpdatedAt:     slot.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating slot", err, errs.ErrSlotNotFound, map[string]any{"doctor_id": slot.DoctorID})
	}
	return nil
}

func (r *AvailabilityRepository) get(ctx context.Context, db *gorm.DB, id string) (*entity.Availability, error) {
	var m model.Availability
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting slot", err, errs.ErrSlotNotFound, map[string]any{"slot_id": id})
	}
	return availabilityToEntity(&m), nil
}

// GetByID retrieves a slot
func (r *AvailabilityRepository) GetByID(ctx context.Context, id string) (*entity.Availability, error) {
	return r.get(ctx, r.db, id)
}

// GetByIDForUpdate retrieves a slot and row-locks it for the rest of the transaction
func (r *AvailabilityRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Availability, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Update writes the slot's mutable columns
func (r *AvailabilityRepository) Update(ctx context.Context, slot *entity.Availability) error {
	result := r.db.WithContext(ctx).Model(&model.Availability{}).
		Where("id = ?", slot.ID).
		Updates(map[string]any{
			"start_time":     slot.StartTime,
			"end_time":       slot.EndTime,
			"status":         string(slot.Status),
			"appointment_id": slot.AppointmentID,
			"updated_at":     slot.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating slot", result.Error, errs.ErrSlotNotFound, map[string]any{"slot_id": slot.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrSlotNotFound
	}
	return nil
}

// ListByDoctor returns all of the doctor's slots, earliest first
func (r *AvailabilityRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error) {
	var models []model.Availability
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("start_time asc").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing slots", err, errs.ErrSlotNotFound, map[string]any{"doctor_id": doctorID})
	}
	return availabilitiesToEntities(models), nil
}

// ListOpenByDoctor returns AVAILABLE slots with no appointment, earliest first
func (r *AvailabilityRepository) ListOpenByDoctor(ctx context.Context, doctorID string) ([]*entity.Availability, error) {
	var models []model.Availability
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND status = ? AND appointment_id IS NULL", doctorID, string(entity.SlotAvailable)).
		Order("start_time asc").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing open slots", err, errs.ErrSlotNotFound, map[string]any{"doctor_id": doctorID})
	}
	return availabilitiesToEntities(models), nil
}

// DeleteUnbound deletes the listed slots of the doctor that have no appointment.
// Slots that gained an appointment since they were listed survive.
func (r *AvailabilityRepository) DeleteUnbound(ctx context.Context, doctorID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("doctor_id = ? AND id IN ? AND appointment_id IS NULL", doctorID, ids).
		Delete(&model.Availability{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting slots", result.Error, errs.ErrSlotNotFound, map[string]any{
			"doctor_id": doctorID,
			"count":     len(ids),
		})
	}

	r.logger.Debug("Unbound slots deleted", map[string]any{
		"doctor_id": doctorID,
		"deleted":   result.RowsAffected,
	})
	return result.RowsAffected, nil
}
