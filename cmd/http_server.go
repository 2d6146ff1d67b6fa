package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/job-portal/internal"
	"github.com/frahmantamala/job-portal/internal/application"
	applicationPostgres "github.com/frahmantamala/job-portal/internal/application/postgres"
	"github.com/frahmantamala/job-portal/internal/auth"
	authPostgres "github.com/frahmantamala/job-portal/internal/auth/postgres"
	"github.com/frahmantamala/job-portal/internal/core/events"
	"github.com/frahmantamala/job-portal/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/job-portal/internal/dashboard/postgres"
	"github.com/frahmantamala/job-portal/internal/job"
	jobPostgres "github.com/frahmantamala/job-portal/internal/job/postgres"
	"github.com/frahmantamala/job-portal/internal/notification"
	"github.com/frahmantamala/job-portal/internal/transport/rest"
	"github.com/frahmantamala/job-portal/internal/user"
	userPostgres "github.com/frahmantamala/job-portal/internal/user/postgres"
	"github.com/frahmantamala/job-portal/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	lg := deps.Logger

	bus := events.NewEventBus(lg)
	mailer := notification.NewSMTPMailer(cfg.Mail)
	notification.NewSubscriber(mailer, lg).Register(bus)

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	resetTokens := auth.NewResetTokenGenerator(cfg.Security.ResetTokenSecret, cfg.Security.ResetTokenDuration)

	authService := auth.NewService(
		authPostgres.NewRepository(deps.GormDB),
		tokenGen, resetTokens, bus,
		cfg.Mail.ResetBaseURL,
		cfg.Security.BCryptCost,
		lg,
	)

	userService := user.NewService(userPostgres.NewRepository(deps.GormDB), authService, bus, lg)
	jobRepo := jobPostgres.NewRepository(deps.GormDB)
	jobService := job.NewService(jobRepo, lg)
	applicationService := application.NewService(applicationPostgres.NewRepository(deps.GormDB), jobRepo, lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewRepository(deps.DB), lg)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(userService),
		Job:         job.NewHandler(jobService),
		Application: application.NewHandler(applicationService),
		Dashboard:   dashboard.NewHandler(dashboardService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, auth.NewRoleAuthorization(lg), lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the shared pgx connection pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pool so both access paths
// share one set of connections.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
