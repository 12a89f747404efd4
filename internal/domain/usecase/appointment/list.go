package appointment

import (
	"context"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
)

// ListUpcoming returns the doctor's scheduled appointments, earliest first
func (s *Service) ListUpcoming(ctx context.Context, doctor *entity.User) ([]*entity.Appointment, error) {
	if err := authz.Require(doctor, authz.ActionViewDoctorAppointments); err != nil {
		return nil, err
	}
	return s.uow.GetAppointmentRepository(ctx).ListByDoctorAndStatus(ctx, doctor.ID, entity.AppointmentScheduled)
}

// ListForPatient returns every appointment of the patient, latest first
func (s *Service) ListForPatient(ctx context.Context, patient *entity.User) ([]*entity.Appointment, error) {
	if err := authz.Require(patient, authz.ActionViewPatientAppointments); err != nil {
		return nil, err
	}
	return s.uow.GetAppointmentRepository(ctx).ListByPatient(ctx, patient.ID)
}
