package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/medimeet/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledAppointment(end time.Time) *Appointment {
	return &Appointment{
		ID:        "a1",
		PatientID: "p1",
		DoctorID:  "d1",
		StartTime: end.Add(-30 * time.Minute),
		EndTime:   end,
		Status:    AppointmentScheduled,
	}
}

func TestNewAppointment(t *testing.T) {
	mockTime := coremocks.NewFixedTimeProvider(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	slot := &Availability{
		ID:        "s1",
		DoctorID:  "d1",
		StartTime: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		Status:    SlotAvailable,
	}

	a, err := NewAppointment("p1", slot, "  headache  ", mockTime)
	require.NoError(t, err)
	assert.Equal(t, AppointmentScheduled, a.Status)
	assert.Equal(t, "d1", a.DoctorID)
	assert.Equal(t, slot.StartTime, a.StartTime)
	assert.Equal(t, slot.EndTime, a.EndTime)
	require.NotNil(t, a.PatientDescription)
	assert.Equal(t, "headache", *a.PatientDescription)

	_, err = NewAppointment("d1", slot, "", mockTime)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestAppointmentIsParticipant(t *testing.T) {
	a := scheduledAppointment(time.Now())
	assert.True(t, a.IsParticipant("p1"))
	assert.True(t, a.IsParticipant("d1"))
	assert.False(t, a.IsParticipant("x"))
	assert.False(t, a.IsParticipant(""))
}

func TestAppointmentCancel(t *testing.T) {
	mockTime := coremocks.NewFixedTimeProvider(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))

	a := scheduledAppointment(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, a.Cancel(mockTime))
	assert.Equal(t, AppointmentCancelled, a.Status)
	assert.True(t, a.IsTerminal())

	err := a.Cancel(mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestAppointmentComplete(t *testing.T) {
	end := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Before end time", func(t *testing.T) {
		mockTime := coremocks.NewFixedTimeProvider(t, end.Add(-time.Minute))
		a := scheduledAppointment(end)

		err := a.Complete(mockTime)
		assert.ErrorIs(t, err, errs.ErrAppointmentNotEnded)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, AppointmentScheduled, a.Status)
	})

	t.Run("Exactly at end time", func(t *testing.T) {
		mockTime := coremocks.NewFixedTimeProvider(t, end)
		a := scheduledAppointment(end)

		require.NoError(t, a.Complete(mockTime))
		assert.Equal(t, AppointmentCompleted, a.Status)
	})

	t.Run("Twice", func(t *testing.T) {
		mockTime := coremocks.NewFixedTimeProvider(t, end.Add(time.Hour))
		a := scheduledAppointment(end)

		require.NoError(t, a.Complete(mockTime))
		err := a.Complete(mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.NotErrorIs(t, err, errs.ErrAppointmentNotEnded)
	})

	t.Run("Cancelled appointment", func(t *testing.T) {
		mockTime := coremocks.NewFixedTimeProvider(t, end.Add(time.Hour))
		a := scheduledAppointment(end)
		a.Status = AppointmentCancelled

		assert.ErrorIs(t, a.Complete(mockTime), errs.ErrInvalidStateTransition)
	})
}

func TestAppointmentSetNotes(t *testing.T) {
	mockTime := coremocks.NewFixedTimeProvider(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	a := scheduledAppointment(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, a.SetNotes("   ", mockTime), errs.ErrValidation)
	assert.Nil(t, a.Notes)

	require.NoError(t, a.SetNotes(" follow up in 2 weeks ", mockTime))
	assert.Equal(t, "follow up in 2 weeks", *a.Notes)
}
