package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/stayhub/backend/internal/application/identity"
	rentalapp "github.com/stayhub/backend/internal/application/rental"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stayhub/backend/internal/infrastructure/logger"
	"github.com/stayhub/backend/internal/infrastructure/persistence"
	"github.com/stayhub/backend/internal/interfaces/http/handler"
	"github.com/stayhub/backend/internal/interfaces/http/middleware"
	"github.com/stayhub/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting StayHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// SQLite deployments migrate in-process; PostgreSQL uses cmd/migrate.
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	accountRepo := persistence.NewGormAccountRepository(db.DB)
	listingRepo := persistence.NewGormListingRepository(db.DB)
	amenityRepo := persistence.NewGormAmenityRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)

	tokenService := auth.NewTokenService(cfg.JWT)

	accountService := identityapp.NewAccountService(accountRepo, log)
	authService := identityapp.NewAuthService(accountRepo, tokenService, log)
	listingService := rentalapp.NewListingService(listingRepo, amenityRepo, accountRepo, log)
	amenityService := rentalapp.NewAmenityService(amenityRepo)
	reviewService := rentalapp.NewReviewService(reviewRepo, listingRepo, accountRepo, log)

	bootstrapAdmin(accountRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
	)

	requireAuth := middleware.RequireAuth(tokenService)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewHealthHandler(db)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewAccountHandler(accountService, requireAuth)).
		Register(handler.NewListingHandler(listingService, accountService, amenityService, reviewService, requireAuth)).
		Register(handler.NewAmenityHandler(amenityService, requireAuth)).
		Register(handler.NewReviewHandler(reviewService, requireAuth))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}

// bootstrapAdmin creates the first admin account when the store is empty and
// bootstrap credentials are provided via environment variables.
func bootstrapAdmin(accountRepo identity.AccountRepository, log *zap.Logger) {
	email := os.Getenv("STAYHUB_BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("STAYHUB_BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := accountRepo.Count(ctx)
	if err != nil {
		log.Error("Failed to count accounts for bootstrap", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	admin, err := identity.NewAccount("Admin", "User", email, password, true)
	if err != nil {
		log.Error("Failed to build bootstrap admin account", zap.Error(err))
		return
	}
	if err := accountRepo.Create(ctx, admin); err != nil {
		log.Error("Failed to create bootstrap admin account", zap.Error(err))
		return
	}

	log.Info("Bootstrap admin account created", zap.String("account_id", admin.ID.String()))
}
