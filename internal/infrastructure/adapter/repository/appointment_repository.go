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

// AppointmentRepository implements persistence.AppointmentRepository using GORM
type AppointmentRepository struct {
	baseRepository
}

// NewAppointmentRepository creates a new AppointmentRepository instance
func NewAppointmentRepository(db *gorm.DB, logger coreport.Logger) *AppointmentRepository {
	return &AppointmentRepository{baseRepository: newBaseRepository(db, logger)}
}

func appointmentToEntity(m *model.Appointment) (*entity.Appointment, error) {
	a := &entity.Appointment{
		ID:                 m.ID,
		PatientID:          m.PatientID,
		DoctorID:           m.DoctorID,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		Status:             entity.AppointmentStatus(m.Status),
		PatientDescription: m.PatientDescription,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	var err error
	if m.Patient != nil {
		if a.Patient, err = userToEntity(m.Patient); err != nil {
			return nil, err
		}
	}
	if m.Doctor != nil {
		if a.Doctor, err = userToEntity(m.Doctor); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func appointmentsToEntities(models []model.Appointment) ([]*entity.Appointment, error) {
	appointments := make([]*entity.Appointment, 0, len(models))
	for i := range models {
		a, err := appointmentToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// Create inserts an appointment
func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	m := &model.Appointment{
		ID:                 appointment.ID,
		PatientID:          appointment.PatientID,
		DoctorID:           appointment.DoctorID,
		StartTime:          appointment.StartTime,
		EndTime:            appointment.EndTime,
		Status:             string(appointment.Status),
		PatientDescription: appointment.PatientDescription,
		Notes:              appointment.Notes,
		CreatedAt:          appointment.CreatedAt,
		UpdatedAt:          appointment.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating appointment", err, errs.ErrAppointmentNotFound, map[string]any{
			"patient_id": appointment.PatientID,
			"doctor_id":  appointment.DoctorID,
		})
	}
	return nil
}

func (r *AppointmentRepository) get(ctx context.Context, db *gorm.DB, id string) (*entity.Appointment, error) {
	var m model.Appointment
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting appointment", err, errs.ErrAppointmentNotFound, map[string]any{"appointment_id": id})
	}
	return appointmentToEntity(&m)
}

// GetByID retrieves an appointment
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return r.get(ctx, r.db, id)
}

// GetByIDForUpdate retrieves an appointment and row-locks it for the rest of the transaction
func (r *AppointmentRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Appointment, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Update writes status, notes and description
func (r *AppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	result := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]any{
			"status":              string(appointment.Status),
			"notes":               appointment.Notes,
			"patient_description": appointment.PatientDescription,
			"updated_at":          appointment.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating appointment", result.Error, errs.ErrAppointmentNotFound, map[string]any{
			"appointment_id": appointment.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrAppointmentNotFound
	}
	return nil
}

// ListByDoctorAndStatus returns the doctor's appointments in status with patient data, earliest first
func (r *AppointmentRepository) ListByDoctorAndStatus(ctx context.Context, doctorID string, status entity.AppointmentStatus) ([]*entity.Appointment, error) {
	var models []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ? AND status = ?", doctorID, string(status)).
		Order("start_time asc").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing doctor appointments", err, errs.ErrAppointmentNotFound, map[string]any{
			"doctor_id": doctorID,
			"status":    string(status),
		})
	}
	return appointmentsToEntities(models)
}

// ListByPatient returns the patient's appointments with doctor data, latest first
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*entity.Appointment, error) {
	var models []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("start_time desc").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing patient appointments", err, errs.ErrAppointmentNotFound, map[string]any{
			"patient_id": patientID,
		})
	}
	return appointmentsToEntities(models)
}
