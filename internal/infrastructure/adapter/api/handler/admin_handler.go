package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles doctor credential review
type AdminHandler struct {
	onboarding usecase.OnboardingUseCase
	logger     coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(onboarding usecase.OnboardingUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		onboarding: onboarding,
		logger:     logger,
	}
}

// PendingDoctors handles GET /api/v1/admin/doctors/pending
func (h *AdminHandler) PendingDoctors(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	doctors, err := h.onboarding.ListPendingDoctors(c.Request.Context(), principal.User)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponses(doctors))
}

// SetVerification handles POST /api/v1/admin/doctors/:id/verification
func (h *AdminHandler) SetVerification(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.VerificationRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	doctor, err := h.onboarding.SetDoctorVerification(c.Request.Context(), principal.User, c.Param("id"),
		entity.VerificationStatus(req.Status))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(doctor))
}
