package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/expense-tracker/internal/handlers"
	"github.com/sbilibin2017/expense-tracker/internal/jwt"
	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/expense-tracker/internal/models"
	"github.com/sbilibin2017/expense-tracker/internal/repositories"
	"github.com/sbilibin2017/expense-tracker/internal/services"
	"github.com/sbilibin2017/expense-tracker/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title expense-tracker API
// @version 1.0.0
// @description Personal-finance tracking backend: accounts, expenses, spending summaries
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtIssuer, jwtAudience, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtIssuer, jwtAudience, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database and JWT configuration. The JWT signing secret
// has no default: its absence is a configuration error surfaced here,
// at startup, not per request.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecret, jwtIssuer, jwtAudience string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "")
	if jwtSecret == "" {
		err = errors.New("JWT_SECRET_KEY is required")
		return
	}
	jwtIssuer = getEnv("JWT_ISSUER", "expense-tracker")
	jwtAudience = getEnv("JWT_AUDIENCE", "expense-tracker")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database and HTTP server, sets up routes,
// applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecret, jwtIssuer, jwtAudience string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := migrations.Run(db.DB); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Initialize JWT service
	tokenService := jwt.New(jwtSecret, jwtIssuer, jwtAudience, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	expenseReadRepo := repositories.NewExpenseReadRepository(db)
	expenseWriteRepo := repositories.NewExpenseWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService)
	expenseService := services.NewExpenseService(expenseReadRepo, expenseWriteRepo)
	summaryService := services.NewSummaryService(expenseReadRepo)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, expenseReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokenService)
	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes
	r.Route("/users", func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/refresh-token", handlers.NewRefreshTokenHandler(authService))
	})

	// Protected routes
	r.Route("/expenses", func(r chi.Router) {
		r.Use(authMiddleware)
		r.With(txMiddleware).Post("/newExpense", handlers.NewCreateExpenseHandler(expenseService))
		r.Get("/getExpenses", handlers.NewListExpensesHandler(expenseService))
		r.Get("/summary", handlers.NewCategorySummaryHandler(summaryService))
		r.Get("/summary/monthly", handlers.NewMonthlySummaryHandler(summaryService))
		r.With(txMiddleware).Delete("/delete-all", handlers.NewDeleteAllExpensesHandler(expenseService))
		r.Get("/{id}", handlers.NewGetExpenseHandler(expenseService))
		r.With(txMiddleware).Put("/{id}", handlers.NewUpdateExpenseHandler(expenseService))
		r.With(txMiddleware).Delete("/{id}", handlers.NewDeleteExpenseHandler(expenseService))
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.RequireRole(models.RoleAdmin))
		r.Get("/users", handlers.NewAdminListUsersHandler(adminService))
		r.Get("/users/{id}", handlers.NewAdminGetUserHandler(adminService))
		r.With(txMiddleware).Delete("/users/{id}", handlers.NewAdminDeleteUserHandler(adminService))
		r.With(txMiddleware).Put("/users/{id}", handlers.NewAdminPromoteUserHandler(adminService))
		r.Get("/expenses", handlers.NewAdminListExpensesHandler(adminService))
		r.Get("/summary", handlers.NewAdminGlobalSummaryHandler(adminService))
		r.Get("/summary/user/{id}", handlers.NewAdminUserSummaryHandler(adminService))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
