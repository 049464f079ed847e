package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/comclic/clinic-records/docs"
	"github.com/comclic/clinic-records/internal/api/handler"
	"github.com/comclic/clinic-records/internal/api/middleware"
	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/core/service"
)

// Dependencies carries everything the HTTP surface needs.
type Dependencies struct {
	Auth          ports.AuthService
	Patients      ports.PatientService
	Immunizations ports.ImmunizationService
	Finances      ports.FinanceService

	// Readiness maps a dependency name to its health check.
	Readiness map[string]handler.Pinger

	Cookie         handler.CookieConfig
	CORSOrigins    []string
	RequestTimeout time.Duration
	// DisableMetrics skips the Prometheus middleware and /metrics, so tests
	// can build several routers in one process.
	DisableMetrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	if deps.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(deps.RequestTimeout))
	}
	if !deps.DisableMetrics {
		e.Use(echoprometheus.NewMiddleware("clinic"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health checks and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := middleware.Authenticate(deps.Auth, deps.Cookie.Name)
	allow := middleware.RequireRoles

	api := e.Group("/api")
	api.GET("", welcome)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot_password", authHandler.ForgotPassword)
	auth.GET("/forgot_password", authHandler.ForgotPassword)
	auth.POST("/reset_password/:token", authHandler.ResetPassword)
	auth.GET("/is_authenticated", authHandler.IsAuthenticated, authenticated)
	auth.POST("/logout", authHandler.Logout, authenticated)
	auth.GET("/logout", authHandler.Logout, authenticated)

	// --- Patients: doctors only ---
	patientHandler := handler.NewPatientHandler(deps.Patients)
	patients := api.Group("/patients", authenticated, allow(service.Doctors))
	patients.POST("", patientHandler.Create)
	patients.GET("", patientHandler.List)
	patients.GET("/:hospital_no", patientHandler.Get)
	patients.PUT("/:hospital_no", patientHandler.Update)
	patients.DELETE("/:hospital_no", patientHandler.Delete)

	// --- Immunizations ---
	imHandler := handler.NewImmunizationHandler(deps.Immunizations)
	immunizations := api.Group("/immunizations", authenticated)
	immunizations.POST("", imHandler.Create, allow(service.ChewOrEquivalent))
	immunizations.GET("", imHandler.List)
	immunizations.GET("/:card_no", imHandler.Get)
	immunizations.PUT("/:card_no", imHandler.Update, allow(service.ChewOrEquivalent))
	immunizations.DELETE("/:card_no", imHandler.Delete, allow(service.NursesOrDoctors))

	// --- Finances ---
	financeHandler := handler.NewFinanceHandler(deps.Finances)
	finances := api.Group("/finances", authenticated)
	finances.POST("", financeHandler.Create, allow(service.DoctorsOrAccountants))
	finances.GET("", financeHandler.List)
	finances.GET("/:record_id", financeHandler.Get)
	finances.PUT("/:record_id", financeHandler.Update, allow(service.DoctorsOrAccountants))
	finances.DELETE("/:record_id", financeHandler.Delete, allow(service.Doctors))

	return e
}

func welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the COMCLIC API"})
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
