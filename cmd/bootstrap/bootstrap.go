package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medshift-scheduler/config"
	deliveryHttp "medshift-scheduler/internal/delivery/http"
	"medshift-scheduler/internal/delivery/http/handler"
	"medshift-scheduler/internal/delivery/http/middleware"
	"medshift-scheduler/internal/infrastructure/cache"
	"medshift-scheduler/internal/infrastructure/database"
	"medshift-scheduler/internal/repository"
	"medshift-scheduler/internal/service"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/jwt"
	"medshift-scheduler/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	employeeRepo := repository.NewEmployeeRepository()
	departmentRepo := repository.NewDepartmentRepository()
	positionRepo := repository.NewPositionRepository()
	locationRepo := repository.NewLocationRepository()
	shiftRepo := repository.NewShiftRepository()
	unavailabilityRepo := repository.NewUnavailabilityRepository()
	templateRepo := repository.NewShiftTemplateRepository()
	swapRepo := repository.NewShiftSwapRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	statsRepo := repository.NewStatsRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	statsService := service.NewStatsService(db, redisClient, log, statsRepo, cfg.Cache)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, employeeRepo, jwtService, redisClient, auditService)
	employeeUsecase := usecase.NewEmployeeUsecase(db, log, userRepo, employeeRepo, departmentRepo, positionRepo, locationRepo, auditService, statsService)
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo, userRepo, auditService, statsService)
	positionUsecase := usecase.NewPositionUsecase(db, log, positionRepo, auditService, statsService)
	locationUsecase := usecase.NewLocationUsecase(db, log, locationRepo, userRepo, auditService, statsService)
	shiftUsecase := usecase.NewShiftUsecase(db, log, shiftRepo, employeeRepo, locationRepo, positionRepo, unavailabilityRepo, auditService, statsService)
	unavailabilityUsecase := usecase.NewUnavailabilityUsecase(db, log, unavailabilityRepo, employeeRepo, auditService)
	templateUsecase := usecase.NewShiftTemplateUsecase(db, log, templateRepo, shiftRepo, employeeRepo, locationRepo, positionRepo, unavailabilityRepo, auditService, statsService)
	swapUsecase := usecase.NewShiftSwapUsecase(db, log, swapRepo, shiftRepo, employeeRepo, unavailabilityRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	employeeHandler := handler.NewEmployeeHandler(employeeUsecase, customValidator)
	departmentHandler := handler.NewDepartmentHandler(departmentUsecase, customValidator)
	positionHandler := handler.NewPositionHandler(positionUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	shiftHandler := handler.NewShiftHandler(shiftUsecase, customValidator)
	unavailabilityHandler := handler.NewUnavailabilityHandler(unavailabilityUsecase, customValidator)
	templateHandler := handler.NewShiftTemplateHandler(templateUsecase, customValidator)
	swapHandler := handler.NewShiftSwapHandler(swapUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsService)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		employeeHandler,
		departmentHandler,
		positionHandler,
		locationHandler,
		shiftHandler,
		unavailabilityHandler,
		templateHandler,
		swapHandler,
		statsHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
