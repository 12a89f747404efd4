package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// AvailabilityHandler handles doctors' slots
type AvailabilityHandler struct {
	availability usecase.AvailabilityUseCase
	logger       coreport.Logger
}

// NewAvailabilityHandler creates a new availability handler instance
func NewAvailabilityHandler(availability usecase.AvailabilityUseCase, logger coreport.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		logger:       logger,
	}
}

// SetSlots handles PUT /api/v1/doctor/availability
func (h *AvailabilityHandler) SetSlots(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.SlotRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	slot, err := h.availability.SetAvailabilitySlots(c.Request.Context(), principal.User, req.StartTime, req.EndTime)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSlotResponse(slot))
}

// ListOwn handles GET /api/v1/doctor/availability
func (h *AvailabilityHandler) ListOwn(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	slots, err := h.availability.ListAvailability(c.Request.Context(), principal.User)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSlotResponses(slots))
}

// ListOpen handles GET /api/v1/doctors/:id/slots
func (h *AvailabilityHandler) ListOpen(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	slots, err := h.availability.ListAvailableSlots(c.Request.Context(), principal.User, c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSlotResponses(slots))
}
