package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/medimeet/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/medimeet/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{domainerr.ErrRoleRequired, http.StatusForbidden},
		{domainerr.ErrUserNotFound, http.StatusNotFound},
		{domainerr.ErrSlotNotFound, http.StatusNotFound},
		{domainerr.NewValidationError("slotId", "required"), http.StatusBadRequest},
		{domainerr.NewInsufficientCreditsError("p1", 2, 1), http.StatusPaymentRequired},
		{domainerr.NewStateTransitionError("appointment", "a1", "CANCELLED", "CANCELLED"), http.StatusConflict},
		{domainerr.ErrAppointmentNotEnded, http.StatusConflict},
		{domainerr.ErrDuplicateUser, http.StatusConflict},
		{fmt.Errorf("%w: commit failed", domainerr.ErrPersistence), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), tt.err.Error())
	}
}

func TestAbortWithError_HidesServerDetails(t *testing.T) {
	router := gin.New()
	router.GET("/persistence", func(c *gin.Context) {
		AbortWithError(c, logger.NewNoopLogger(), fmt.Errorf("%w: connection refused on 10.0.0.5", domainerr.ErrPersistence))
	})
	router.GET("/internal", func(c *gin.Context) {
		AbortWithError(c, logger.NewNoopLogger(), errors.New("nil pointer somewhere"))
	})
	router.GET("/validation", func(c *gin.Context) {
		AbortWithError(c, logger.NewNoopLogger(), domainerr.NewValidationError("experience", "must be between 1 and 70"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/persistence", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, dto.ErrorResponse{Code: domainerr.CodePersistence, Message: "Service temporarily unavailable"}, decodeError(t, rec))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerr.CodeValidation, body.Code)
	assert.Contains(t, body.Message, "experience")
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, rec).Code)
}

func TestBearerToken(t *testing.T) {
	tests := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"valid":        {header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		"lower scheme": {header: "bearer abc", token: "abc", ok: true},
		"missing":      {header: "", ok: false},
		"basic":        {header: "Basic dXNlcjpwYXNz", ok: false},
		"empty token":  {header: "Bearer   ", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func newAuthRouter(t *testing.T, principals *mockusecase.MockPrincipalUseCase, action authz.Action) *gin.Engine {
	t.Helper()

	log := logger.NewNoopLogger()
	router := gin.New()
	router.GET("/protected", Authenticate(principals, log), RequireAction(action, log), func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		require.True(t, ok)
		c.String(http.StatusOK, principal.ID())
	})
	return router
}

func TestAuthenticate(t *testing.T) {
	patient := &entity.Principal{User: &entity.User{ID: "p1", Role: entity.RolePatient}}

	t.Run("no token", func(t *testing.T) {
		principals := mockusecase.NewMockPrincipalUseCase(t)
		router := newAuthRouter(t, principals, authz.ActionBookAppointment)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerr.CodeUnauthenticated, decodeError(t, rec).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		principals := mockusecase.NewMockPrincipalUseCase(t)
		principals.EXPECT().Resolve(mock.Anything, "tok").Return(nil, domainerr.ErrUserNotFound).Once()
		router := newAuthRouter(t, principals, authz.ActionBookAppointment)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("role allowed", func(t *testing.T) {
		principals := mockusecase.NewMockPrincipalUseCase(t)
		principals.EXPECT().Resolve(mock.Anything, "tok").Return(patient, nil).Once()
		router := newAuthRouter(t, principals, authz.ActionBookAppointment)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "p1", rec.Body.String())
	})

	t.Run("role denied", func(t *testing.T) {
		principals := mockusecase.NewMockPrincipalUseCase(t)
		principals.EXPECT().Resolve(mock.Anything, "tok").Return(patient, nil).Once()
		router := newAuthRouter(t, principals, authz.ActionManageAvailability)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerr.CodeRoleRequired, decodeError(t, rec).Code)
	})
}

func TestRequireAction_WithoutAuthenticate(t *testing.T) {
	router := gin.New()
	router.GET("/", RequireAction(authz.ActionReadProfile, logger.NewNoopLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogger_RecordsRequest(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusTeapot &&
			fields["route"] == "/brew/:kind" &&
			fields["status_text"] == "Client Error"
	})).Once()

	router := gin.New()
	router.Use(Logger(log, timeprovider.NewRealTimeProvider()))
	router.GET("/brew/:kind", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew/tea", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://app.medimeet.test"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.medimeet.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.medimeet.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
