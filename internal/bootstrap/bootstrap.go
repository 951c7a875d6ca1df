package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "registro-api/docs" // Import generated swagger docs
	appControllers "registro-api/internal/app/controllers"
	appMigrations "registro-api/internal/app/migrations"
	appRepos "registro-api/internal/app/repositories"
	appRoutes "registro-api/internal/app/routes"
	appServices "registro-api/internal/app/services"
	"registro-api/internal/config"
	"registro-api/internal/db"
	appMiddleware "registro-api/internal/middleware"
	pkgAuth "registro-api/internal/pkg/auth"
	"registro-api/internal/pkg/helpers"
	"registro-api/internal/pkg/logger"
	"registro-api/internal/pkg/validation"
	"registro-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	UsuarioService    *appServices.UsuarioService
	AlumnoService     *appServices.AlumnoService
	MateriaService    *appServices.MateriaService
	NotaService       *appServices.NotaService
	AuthController    *appControllers.AuthController
	UsuarioController *appControllers.UsuarioController
	AlumnoController  *appControllers.AlumnoController
	MateriaController *appControllers.MateriaController
	NotaController    *appControllers.NotaController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the initial data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create seed data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers, and registers the request validation rules.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterRules(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:     cfg.JWT.Secret,
		TokenLifetime: helpers.ParseDuration(cfg.JWT.TokenLifetime, 5*time.Minute),
		TokenIssuer:   cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UsuarioRepository, deps.JWTService, lgr)
	deps.UsuarioService = appServices.NewUsuarioService(deps.Repos.UsuarioRepository)
	deps.AlumnoService = appServices.NewAlumnoService(deps.Repos.AlumnoRepository)
	deps.MateriaService = appServices.NewMateriaService(deps.Repos.MateriaRepository)
	deps.NotaService = appServices.NewNotaService(
		deps.Repos.NotaRepository,
		deps.Repos.AlumnoRepository,
		deps.Repos.MateriaRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UsuarioController = appControllers.NewUsuarioController(deps.UsuarioService)
	deps.AlumnoController = appControllers.NewAlumnoController(deps.AlumnoService)
	deps.MateriaController = appControllers.NewMateriaController(deps.MateriaService)
	deps.NotaController = appControllers.NewNotaController(deps.NotaService)

	return deps, nil
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

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	origins := strings.Split(cfg.CORS.AllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UsuarioController,
		deps.AlumnoController,
		deps.MateriaController,
		deps.NotaController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
