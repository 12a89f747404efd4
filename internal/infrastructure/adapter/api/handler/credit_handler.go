package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// CreditHandler handles allowance allocation and ledger history
type CreditHandler struct {
	credits usecase.CreditUseCase
	logger  coreport.Logger
}

// NewCreditHandler creates a new credit handler instance
func NewCreditHandler(credits usecase.CreditUseCase, logger coreport.Logger) *CreditHandler {
	return &CreditHandler{
		credits: credits,
		logger:  logger,
	}
}

// Allocate handles POST /api/v1/credits/allocate. Callers without a plan or
// outside the patient role get an unchanged result, not an error.
func (h *CreditHandler) Allocate(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	result, err := h.credits.AllocateMonthlyCredits(c.Request.Context(), principal)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAllocationResponse(result))
}

// History handles GET /api/v1/credits/transactions?limit=N
func (h *CreditHandler) History(c *gin.Context) {
	principal, ok := principalOrAbort(c, h.logger)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	entries, err := h.credits.History(c.Request.Context(), principal.User, limit)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCreditTransactionResponses(entries))
}
