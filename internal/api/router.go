package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gridsentry/genset-monitoring/internal/api/handler"
	"github.com/gridsentry/genset-monitoring/internal/api/middleware"
	"github.com/gridsentry/genset-monitoring/internal/core/service"
	"github.com/gridsentry/genset-monitoring/internal/infrastructure/config"
	mongodb "github.com/gridsentry/genset-monitoring/internal/infrastructure/db/mongo"
	redisdb "github.com/gridsentry/genset-monitoring/internal/infrastructure/db/redis"
	"github.com/gridsentry/genset-monitoring/internal/infrastructure/queue"
)

const sessionTTL = 24 * time.Hour

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the ingest dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("genset"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	stationRepo := mongodb.NewStationRepository(db)
	readingRepo := mongodb.NewReadingRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	sessions := redisdb.NewSessionStore(rdb)
	dedup := redisdb.NewDedupChecker(rdb)

	userService := service.NewUserService(userRepo, sessions, cfg.JWTSecret, sessionTTL, log)
	stationService := service.NewStationService(stationRepo)
	telemetryService := service.NewTelemetryService(readingRepo, stationRepo, dedup, log)
	notificationService := service.NewNotificationService(notificationRepo, stationRepo, readingRepo, log)

	dispatcher := queue.NewDispatcher(cfg.IngestWorkers, telemetryService, log)

	authHandler := handler.NewAuthHandler(userService, sessionTTL, cfg.Env == "production")
	userHandler := handler.NewUserHandler(userService)
	stationHandler := handler.NewStationHandler(stationService)
	telemetryHandler := handler.NewTelemetryHandler(telemetryService, dispatcher)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	auth := middleware.Auth(cfg.JWTSecret, sessions)
	admin := middleware.AdminOnly()

	// --- Public routes ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)
	e.POST("/genset-monitoring", telemetryHandler.Push)

	// --- Session-protected routes ---
	e.POST("/users/logout", authHandler.Logout, auth)
	e.GET("/users/me", authHandler.Me, auth)
	e.GET("/stations", stationHandler.List, auth)
	e.GET("/genset-monitoring", telemetryHandler.List, auth)
	e.GET("/notifications/summary/data", notificationHandler.Summary, auth)
	e.GET("/notifications/:userId", notificationHandler.List, auth)
	e.PATCH("/notifications/read/:id", notificationHandler.MarkRead, auth)

	// --- Admin-only routes ---
	e.GET("/users", userHandler.List, auth, admin)
	e.PATCH("/users/approve/:id", userHandler.Approve, auth, admin)
	e.DELETE("/users/:id", userHandler.Delete, auth, admin)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
