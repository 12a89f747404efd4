package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// AppointmentHandler handles booking and the appointment lifecycle
type AppointmentHandler struct {
	appointments usecase.AppointmentUseCase
	logger       coreport.Logger
}

// NewAppointmentHandler creates a new appointment handler instance
func NewAppointmentHandler(appointments usecase.AppointmentUseCase, logger coreport.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		logger:       logger,
	}
}

// Book handles POST /api/v1/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.BookingRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	appointment, err := h.appointments.BookAppointment(c.Request.Context(), principal.User, req.SlotID, req.Description)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentResponse(appointment))
}

// ListForPatient handles GET /api/v1/appointments
func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	appointments, err := h.appointments.ListForPatient(c.Request.Context(), principal.User)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentResponses(appointments))
}

// ListUpcoming handles GET /api/v1/doctor/appointments
func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	appointments, err := h.appointments.ListUpcoming(c.Request.Context(), principal.User)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentResponses(appointments))
}

// Cancel handles POST /api/v1/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	appointment, err := h.appointments.CancelAppointment(c.Request.Context(), principal.User, c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentResponse(appointment))
}

// Complete handles POST /api/v1/appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	appointment, err := h.appointments.MarkCompleted(c.Request.Context(), principal.User, c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentResponse(appointment))
}

// AddNotes handles POST /api/v1/appointments/:id/notes
func (h *AppointmentHandler) AddNotes(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.NotesRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	appointment, err := h.appointments.AddNotes(c.Request.Context(), principal.User, c.Param("id"), req.Notes)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentResponse(appointment))
}
