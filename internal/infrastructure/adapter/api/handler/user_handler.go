package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles the signed-in user's own account
type UserHandler struct {
	principals usecase.PrincipalUseCase
	onboarding usecase.OnboardingUseCase
	logger     coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	principals usecase.PrincipalUseCase,
	onboarding usecase.OnboardingUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		principals: principals,
		onboarding: onboarding,
		logger:     logger,
	}
}

// Sync handles POST /api/v1/me/sync. It runs before the user exists locally,
// so it authenticates the token itself instead of going through the auth middleware.
func (h *UserHandler) Sync(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		middleware.AbortWithError(c, h.logger, domainerr.ErrUnauthenticated)
		return
	}

	user, err := h.principals.SyncUser(c.Request.Context(), token)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	dashboard, err := h.onboarding.Dashboard(user)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{
		User:          dto.NewUserResponse(user),
		DashboardPath: dashboard,
	})
}

// Me handles GET /api/v1/me
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	dashboard, err := h.onboarding.Dashboard(principal.User)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{
		User:          dto.NewUserResponse(principal.User),
		DashboardPath: dashboard,
	})
}

// SetRole handles POST /api/v1/me/role
func (h *UserHandler) SetRole(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	var req dto.RoleRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.onboarding.SetUserRole(c.Request.Context(), principal.User, usecase.RoleRequest{
		Role:          req.Role,
		Speciality:    req.Speciality,
		Experience:    req.Experience,
		CredentialURL: req.CredentialURL,
		Description:   req.Description,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{
		User:         dto.NewUserResponse(result.User),
		RedirectPath: result.RedirectPath,
	})
}
