// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-hrm/internal/http_server/controller"
	mid "github.com/half-nothing/simple-hrm/internal/http_server/middleware"
	. "github.com/half-nothing/simple-hrm/internal/interfaces"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
	stopCleanup   chan struct{}
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo, stopCleanup chan struct{}) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
		stopCleanup:   stopCleanup,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	close(hc.stopCleanup)
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func newJwtMiddleware(jwtConfig *config.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(jwtConfig.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	})
}

// registerRoutes mounts every api endpoint, only the login route is reachable without a token
func registerRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc, services *Services, applicationContent *ApplicationContent) {
	logger := applicationContent.Logger()

	userController := controller.NewUserHandler(logger, services.User)
	personnelController := controller.NewPersonnelController(logger, services.Personnel)
	catalogController := controller.NewCatalogController(logger, services.Catalog)
	mandatarioController := controller.NewMandatarioController(logger, services.Mandatario)
	statisticsController := controller.NewStatisticsController(logger, services.Statistics)
	reminderController := controller.NewReminderController(logger, services.Reminder)
	auditLogController := controller.NewAuditLogController(logger, services.Audit)

	apiGroup := e.Group("/api")
	apiGroup.POST("/sessions", userController.UserLogin)
	apiGroup.GET("/sessions", userController.GetToken, jwtMiddleware)
	apiGroup.GET("/profile", userController.GetCurrentUserProfile, jwtMiddleware)
	apiGroup.PATCH("/profile", userController.EditCurrentProfile, jwtMiddleware)

	userGroup := apiGroup.Group("/users", jwtMiddleware)
	userGroup.GET("", userController.GetUsers)
	userGroup.POST("", userController.AddUser)
	userGroup.GET("/roles", userController.GetRoles)
	userGroup.GET("/:uid/profile", userController.GetUserProfile)
	userGroup.PATCH("/:uid/profile", userController.EditProfile)
	userGroup.PUT("/:uid/role", userController.EditUserRole)
	userGroup.PATCH("/:uid/permission", userController.EditUserPermission)
	userGroup.PUT("/:uid/active", userController.EditUserActive)

	personnelGroup := apiGroup.Group("/personnel", jwtMiddleware)
	personnelGroup.GET("", personnelController.GetPersonnelPage)
	personnelGroup.GET("/ranks", personnelController.GetRanks)
	personnelGroup.GET("/:id", personnelController.GetPersonnel)
	personnelGroup.POST("", personnelController.AddPersonnel)
	personnelGroup.PUT("/:id", personnelController.EditPersonnel)
	personnelGroup.DELETE("/:id", personnelController.DeletePersonnel)

	groupGroup := apiGroup.Group("/groups", jwtMiddleware)
	groupGroup.GET("", catalogController.GetGroups)
	groupGroup.POST("", catalogController.AddGroup)
	groupGroup.DELETE("/:id", catalogController.DeleteGroup)

	functionGroup := apiGroup.Group("/functions", jwtMiddleware)
	functionGroup.GET("", catalogController.GetFunctions)
	functionGroup.POST("", catalogController.AddFunction)
	functionGroup.DELETE("/:id", catalogController.DeleteFunction)

	mandatarioGroup := apiGroup.Group("/mandatarios", jwtMiddleware)
	mandatarioGroup.GET("", mandatarioController.GetMandatarioList)
	mandatarioGroup.GET("/:id", mandatarioController.GetMandatario)
	mandatarioGroup.POST("", mandatarioController.AddMandatario)
	mandatarioGroup.PUT("/:id", mandatarioController.EditMandatario)
	mandatarioGroup.DELETE("/:id", mandatarioController.DeleteMandatario)
	mandatarioGroup.PUT("/:id/functions", mandatarioController.SetRequiredFunctions)
	mandatarioGroup.POST("/:id/assignments", mandatarioController.AddAssignment)
	mandatarioGroup.PUT("/:id/assignments/:assignment_id/status", mandatarioController.EditAssignmentStatus)
	mandatarioGroup.DELETE("/:id/assignments/:assignment_id", mandatarioController.DeleteAssignment)

	statisticsGroup := apiGroup.Group("/statistics", jwtMiddleware)
	statisticsGroup.GET("", statisticsController.GetDashboard)
	statisticsGroup.GET("/analytics", statisticsController.GetAnalytics)
	statisticsGroup.GET("/assignments", statisticsController.GetAssignmentReport)

	reminderGroup := apiGroup.Group("/reminders", jwtMiddleware)
	reminderGroup.GET("", reminderController.GetPendingReminders)
	reminderGroup.POST("", reminderController.AddReminder)
	reminderGroup.PUT("/:id", reminderController.EditReminder)
	reminderGroup.PUT("/:id/complete", reminderController.CompleteReminder)
	reminderGroup.DELETE("/:id", reminderController.DeleteReminder)

	auditLogGroup := apiGroup.Group("/audits", jwtMiddleware)
	auditLogGroup.GET("", auditLogController.GetAuditLogs)
}

// NewHttpServer builds the echo instance with middleware and routes but does not start listening
func NewHttpServer(applicationContent *ApplicationContent, services *Services) (*echo.Echo, chan struct{}) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: httpConfig.TimeoutDuration}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))

	secureConfig := middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}
	if httpConfig.SSL.EnableHSTS {
		secureConfig.HSTSMaxAge = httpConfig.SSL.HstsExpiredTime
		secureConfig.HSTSExcludeSubdomains = !httpConfig.SSL.IncludeDomain
	}
	e.Use(middleware.SecureWithConfig(secureConfig))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: httpConfig.CorsOrigins}))
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	limits := httpConfig.Limits
	ipPathLimiter := mid.NewSlidingWindowLimiter(limits.RateLimitDuration, limits.RateLimit)
	cleanupInterval := limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
	}
	stopCleanup := make(chan struct{})
	ipPathLimiter.StartCleanup(cleanupInterval, stopCleanup)
	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	registerRoutes(e, newJwtMiddleware(httpConfig.JWT), services, applicationContent)
	return e, stopCleanup
}

func StartHttpServer(applicationContent *ApplicationContent, services *Services) {
	httpConfig := applicationContent.ConfigManager().Config().Server.HttpServer
	logger := applicationContent.Logger()

	e, stopCleanup := NewHttpServer(applicationContent, services)
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e, stopCleanup))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v", httpConfig.Limits.RateLimit, httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(httpConfig.Address, httpConfig.SSL.CertFile, httpConfig.SSL.KeyFile)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
