package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vwings/eduadmin/internal/app/controllers"
	"github.com/vwings/eduadmin/internal/app/migrations"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/app/routes"
	"github.com/vwings/eduadmin/internal/app/services"
	"github.com/vwings/eduadmin/internal/config"
	"github.com/vwings/eduadmin/internal/db"
	"github.com/vwings/eduadmin/internal/middleware"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/helpers"
	"github.com/vwings/eduadmin/internal/pkg/logger"
	"github.com/vwings/eduadmin/internal/pkg/websocket"
	"github.com/vwings/eduadmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *repositories.Repositories
	Services *services.Services

	AuthController      *controllers.AuthController
	UserController      *controllers.UserController
	CourseController    *controllers.CourseController
	ClassroomController *controllers.ClassroomController
	FinanceController   *controllers.FinanceController
	AdmissionController *controllers.AdmissionController
	ContentController   *controllers.ContentController

	ChatHub       *websocket.Hub
	ChatHandler   *websocket.Handler
	ChatPersister *websocket.MessagePersister

	JWTService  *auth.JWTService
	FileStorage *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations, aligns
// the identifier sequences with stored data and seeds default records.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	// Raise the identifier sequences past any stored IDs before serving
	// traffic. A corrupt stored ID aborts startup rather than risking
	// duplicate allocations.
	if err := repositories.SyncSequences(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Identifier sequence sync failed")
		dbPool.Close()
		return nil, fmt.Errorf("identifier sequence sync failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// chat hub.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Uploads.StoragePath, filestorage.Policy{
		MaxSize:      cfg.MaxUploadBytes(),
		AllowedTypes: defaultAllowedTypes(),
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService)
	deps.UserController = controllers.NewUserController(deps.Services.UserService)
	deps.CourseController = controllers.NewCourseController(deps.Services.CourseService)
	deps.ClassroomController = controllers.NewClassroomController(deps.Services.ClassroomService)
	deps.FinanceController = controllers.NewFinanceController(deps.Services.FinanceService)
	deps.AdmissionController = controllers.NewAdmissionController(deps.Services.AdmissionService)
	deps.ContentController = controllers.NewContentController(deps.Services.ContentService)

	// Chat hub: persisted through the classroom service, broadcast live
	deps.ChatHub = websocket.NewHub()
	go deps.ChatHub.Run()

	deps.ChatHandler = websocket.NewHandler(deps.ChatHub, deps.Services.ClassroomService)
	deps.ChatPersister = websocket.NewMessagePersister(deps.Services.ClassroomService, deps.ChatHub)
	deps.ChatPersister.Start()

	return deps, nil
}

// defaultAllowedTypes maps each upload class to its content-type allow-list.
func defaultAllowedTypes() map[filestorage.Class][]string {
	return map[filestorage.Class][]string{
		filestorage.ClassImage: {
			"image/jpeg", "image/png", "image/webp", "image/gif",
		},
		filestorage.ClassDocument: {
			"application/pdf", "image/jpeg", "image/png",
		},
		filestorage.ClassVideo: {
			"video/mp4", "video/webm",
		},
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, dbPool *pgxpool.Pool, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(middleware.RequestTimeout(cfg.RequestTimeout()))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.ClassroomController,
		deps.FinanceController,
		deps.AdmissionController,
		deps.ContentController,
		deps.ChatHandler,
		deps.JWTService,
	)

	// Health endpoint including a store round-trip
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
