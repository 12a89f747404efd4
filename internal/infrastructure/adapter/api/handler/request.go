package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

func principalOrAbort(c *gin.Context, logger coreport.Logger) (*entity.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		middleware.AbortWithError(c, logger, domainerr.ErrUnauthenticated)
		return nil, false
	}
	return principal, true
}

func bindJSON(c *gin.Context, logger coreport.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.AbortWithError(c, logger, domainerr.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

// queryInt reads an optional positive integer query parameter
func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domainerr.NewValidationError(name, "must be a positive integer")
	}
	return n, nil
}
