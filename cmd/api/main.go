package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/domain/usecase/pool"
	"github.com/amirhossein-jamali/studrev/internal/domain/usecase/session"
	userUseCase "github.com/amirhossein-jamali/studrev/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/jsonfile"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/config"
)

// stores bundles the repositories of whichever driver is configured
type stores struct {
	users    persistence.UserRepository
	sets     persistence.QuestionSetRepository
	history  persistence.HistoryRepository
	pinger   handler.Pinger
	shutdown func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.Format == "json", core.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	hasher, err := security.NewPasswordHasher(cfg.Auth.PasswordHashing, cfg.Auth.BcryptCost)
	if err != nil {
		fatal(appLogger, "Invalid password hashing configuration", err)
	}
	if _, plaintext := hasher.(security.PlaintextHasher); plaintext && cfg.Environment == config.Production {
		appLogger.Warn("Passwords are stored in plaintext; set auth.passwordHashing to bcrypt", nil)
	}

	st, err := openStores(context.Background(), cfg, appLogger, tp)
	if err != nil {
		fatal(appLogger, "Failed to open store", err)
	}
	defer func() {
		if err := st.shutdown(); err != nil {
			appLogger.Error("Failed to close store", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	poolService, err := pool.NewService(st.sets, random.NewSourceFromConfig(cfg.Pool.Seed), tp, appLogger, cfg.Pool.SessionSize)
	if err != nil {
		fatal(appLogger, "Invalid pool configuration", err)
	}

	set, created, err := poolService.InitializePool(context.Background())
	if err != nil {
		fatal(appLogger, "Failed to initialize question pool", err)
	}
	appLogger.Info("Question pool ready", map[string]any{
		"records":  len(set.Pool),
		"sessions": set.SessionCount(),
		"created":  created,
	})

	sessionService := session.NewService(poolService, st.users, st.history, tp, appLogger)
	userService := userUseCase.NewUserUseCase(st.users, hasher, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Pool:    handler.NewPoolHandler(poolService, appLogger),
		Session: handler.NewSessionHandler(sessionService, appLogger),
		User:    handler.NewUserHandler(userService, appLogger),
		Health:  handler.NewHealthHandler(st.pinger, appLogger),
	}, cfg.Server.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"store": cfg.Store.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
	case err := <-serverErr:
		appLogger.Error("Server stopped unexpectedly", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStores builds the repositories for the configured driver
func openStores(ctx context.Context, cfg *config.Config, appLogger core.Logger, tp core.TimeProvider) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverJSONFile:
		store, err := jsonfile.Open(cfg.Store.Path, appLogger)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:    jsonfile.NewUserRepository(store),
			sets:     jsonfile.NewQuestionSetRepository(store),
			history:  jsonfile.NewHistoryRepository(store),
			pinger:   store,
			shutdown: func() error { return nil },
		}, nil

	case config.StoreDriverPostgres:
		dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
		db, err := dbManager.Connect(ctx)
		if err != nil {
			return nil, err
		}
		if err := dbManager.Migrate(ctx); err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &stores{
			users:    repository.NewUserRepository(db, tp, appLogger),
			sets:     repository.NewQuestionSetRepository(db, appLogger),
			history:  repository.NewHistoryRepository(db, appLogger),
			pinger:   dbManager,
			shutdown: dbManager.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          config.StoreDriverPostgres,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		MonitorInterval: cfg.Database.MonitorInterval,
	}
}

func fatal(appLogger core.Logger, message string, err error) {
	appLogger.Error(message, map[string]any{
		"error": err.Error(),
	})
	_ = appLogger.Flush()
	os.Exit(1)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Pool.SessionSize <= 0 {
		missingConfigs = append(missingConfigs, "pool.sessionSize")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	switch cfg.Store.Driver {
	case config.StoreDriverJSONFile:
		if strings.TrimSpace(cfg.Store.Path) == "" {
			missingConfigs = append(missingConfigs, "store.path (or SR_STORE_PATH)")
		}
	case config.StoreDriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or SR_DB_HOST)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or SR_DB_USERNAME)")
		}
		if cfg.Database.Name == "" {
			missingConfigs = append(missingConfigs, "database.name (or SR_DB_NAME)")
		}
		if cfg.Database.QueryTimeout <= 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	default:
		return fmt.Errorf("invalid store.driver %q, must be %s or %s",
			cfg.Store.Driver, config.StoreDriverJSONFile, config.StoreDriverPostgres)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production && cfg.Store.Driver == config.StoreDriverPostgres {
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			log.Printf("Warning: database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
		}
	}

	return nil
}
