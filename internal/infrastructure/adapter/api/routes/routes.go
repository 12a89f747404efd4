package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/medimeet/internal/domain/authz"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Health       *handler.HealthHandler
	User         *handler.UserHandler
	Credit       *handler.CreditHandler
	Availability *handler.AvailabilityHandler
	Appointment  *handler.AppointmentHandler
	Admin        *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	principals usecase.PrincipalUseCase,
	logger coreport.Logger,
) {
	router.GET("/healthz", handlers.Health.Healthz)

	api := router.Group("/api/v1")

	// first sign-in: the user does not exist locally yet
	api.POST("/me/sync", handlers.User.Sync)

	authed := api.Group("", middleware.Authenticate(principals, logger))
	gate := func(action authz.Action) gin.HandlerFunc {
		return middleware.RequireAction(action, logger)
	}

	me := authed.Group("/me")
	{
		me.GET("", gate(authz.ActionReadProfile), handlers.User.Me)
		me.POST("/role", gate(authz.ActionOnboard), handlers.User.SetRole)
	}

	credits := authed.Group("/credits")
	{
		// non-patients get an unchanged result rather than 403
		credits.POST("/allocate", handlers.Credit.Allocate)
		credits.GET("/transactions", gate(authz.ActionViewCredits), handlers.Credit.History)
	}

	doctor := authed.Group("/doctor")
	{
		doctor.PUT("/availability", gate(authz.ActionManageAvailability), handlers.Availability.SetSlots)
		doctor.GET("/availability", gate(authz.ActionManageAvailability), handlers.Availability.ListOwn)
		doctor.GET("/appointments", gate(authz.ActionViewDoctorAppointments), handlers.Appointment.ListUpcoming)
	}

	authed.GET("/doctors/:id/slots", gate(authz.ActionBrowseSlots), handlers.Availability.ListOpen)

	appointments := authed.Group("/appointments")
	{
		appointments.POST("", gate(authz.ActionBookAppointment), handlers.Appointment.Book)
		appointments.GET("", gate(authz.ActionViewPatientAppointments), handlers.Appointment.ListForPatient)
		appointments.POST("/:id/cancel", gate(authz.ActionCancelAppointment), handlers.Appointment.Cancel)
		appointments.POST("/:id/complete", gate(authz.ActionCompleteAppointment), handlers.Appointment.Complete)
		appointments.POST("/:id/notes", gate(authz.ActionAnnotateAppointment), handlers.Appointment.AddNotes)
	}

	admin := authed.Group("/admin", gate(authz.ActionReviewDoctors))
	{
		admin.GET("/doctors/pending", handlers.Admin.PendingDoctors)
		admin.POST("/doctors/:id/verification", handlers.Admin.SetVerification)
	}
}

// MiddlewareConfig selects the optional global middlewares
type MiddlewareConfig struct {
	AllowedOrigins []string
	// RateLimitClient enables the limiter when non-nil
	RateLimitClient redis.UniversalClient
	RateLimit       middleware.RateLimitConfig
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, config MiddlewareConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(config.AllowedOrigins))
	if config.RateLimitClient != nil {
		router.Use(middleware.RateLimiter(config.RateLimitClient, config.RateLimit, logger))
	}
}
