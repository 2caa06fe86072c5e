package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Loader      *usecase.DoctorLoader
	Directory   usecase.DoctorDirectoryUsecase
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized.
// Logs go to logOutput.
func New(logOutput io.Writer) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App, logOutput)
	app.Log.Info("Configuration loaded successfully")

	// Initialize doctor source, cached in Redis when configured
	source := repository.NewHTTPDoctorSource(nil, cfg.Source.URL, cfg.Source.Timeout, app.Log)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			// the cache is optional, run without it
			app.Log.Warnf("Redis unavailable, continuing without snapshot cache: %+v", err)
		} else {
			app.RedisClient = redisClient
			app.Log.Info("Redis connected successfully")
			source = repository.NewCachedDoctorSource(source, repository.NewRedisSnapshotCache(redisClient, cfg.Redis.TTL), app.Log)
		}
	}

	app.Loader = usecase.NewDoctorLoader(source, app.Log)
	app.Directory = usecase.NewDoctorDirectoryUsecase(app.Loader, app.Log, cfg.Listing)
	app.Server = initializeServer(cfg, app.Log, app.Directory)

	return app, nil
}

// NewWithSource wires the application around an explicit doctor source, skipping Redis.
func NewWithSource(cfg *config.Config, log *logrus.Logger, source domainRepo.DoctorSource) *App {
	app := &App{
		Config: cfg,
		Log:    log,
		Loader: usecase.NewDoctorLoader(source, log),
	}
	app.Directory = usecase.NewDoctorDirectoryUsecase(app.Loader, log, cfg.Listing)
	app.Server = initializeServer(cfg, log, app.Directory)
	return app
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig, output io.Writer) *logrus.Logger {
	if output == nil {
		output = os.Stdout
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(output)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, directory usecase.DoctorDirectoryUsecase) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directory, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, corsMiddleware, requestLoggerMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewBrowseSession starts an interactive session whose location is history.
func (app *App) NewBrowseSession(history *service.History) *usecase.BrowseSession {
	return usecase.NewBrowseSession(app.Loader, history, app.Config.Listing)
}

// Run starts the doctor fetch and the HTTP server, and shuts the server down
// gracefully once ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.Loader.Load()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	err := g.Wait()
	app.Close()
	app.Log.Info("Server shutdown complete")
	return err
}

// Close stops the loader and closes the Redis connection.
func (app *App) Close() {
	if app.Loader != nil {
		app.Loader.Close()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
		app.RedisClient = nil
	}
}
