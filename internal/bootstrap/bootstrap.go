package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mahadqr/timetable-api/internal/app/controllers"
	appRepos "github.com/mahadqr/timetable-api/internal/app/repositories"
	appRoutes "github.com/mahadqr/timetable-api/internal/app/routes"
	appServices "github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/config"
	"github.com/mahadqr/timetable-api/internal/ingest"
	appMiddleware "github.com/mahadqr/timetable-api/internal/middleware"
	"github.com/mahadqr/timetable-api/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ClassService      appServices.ClassService
	AssignmentService appServices.AssignmentService
	UserClassService  appServices.UserClassService
	UserService       appServices.UserService

	ClassController      *appControllers.ClassController
	AssignmentController *appControllers.AssignmentController
	UserClassController  *appControllers.UserClassController
	UserController       *appControllers.UserController

	IngestClient *ingest.Client
	Repos        *appRepos.Repositories
	Logger       zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the store, services, and controllers. The
// store is created here exactly once and injected downward; nothing else in
// the application constructs or reaches the collections.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository)
	deps.UserClassService = appServices.NewUserClassService(deps.Repos.UserClassRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.UserClassController = appControllers.NewUserClassController(deps.UserClassService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	deps.IngestClient = ingest.NewClient(cfg.Ingest.SourceURL, cfg.IngestTimeout(), lgr)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	appRoutes.SetupRouter(router,
		deps.ClassController,
		deps.AssignmentController,
		deps.UserClassController,
		deps.UserController,
	)

	return router
}
