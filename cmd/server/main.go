package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sotrama/internal/app"
	"sotrama/internal/config"
	"sotrama/internal/handler"
	"sotrama/internal/logger"
	internalRedis "sotrama/internal/redis"
	"sotrama/internal/repository/sqlite"
	"sotrama/internal/seed"
	"sotrama/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Error("failed to initialize New Relic", zap.Error(err))
		} else {
			logger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// Initialize database.
	db, err := app.NewDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to SQLite", zap.String("path", cfg.Database.Path))

	if err := sqlite.Initialize(ctx, db); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	if err := seed.Seed(ctx, db); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)
	sessionStore := internalRedis.NewSessionStore(redisClient)
	favoriteStore := internalRedis.NewFavoriteStore(redisClient)

	// Initialize repositories.
	agencyRepo := sqlite.NewAgencyRepository(db)
	tripRepo := sqlite.NewTripRepository(db)
	reservationRepo := sqlite.NewReservationRepository(db)
	artisanRepo := sqlite.NewArtisanRepository(db)

	// Initialize services.
	notificationService := service.NewNotificationService()
	tripService := service.NewTripService(db, tripRepo, reservationRepo, cacheStore)
	reservationService := service.NewReservationService(db, tripRepo, reservationRepo, cacheStore, notificationService)
	psp := service.NewMockPSP()
	paymentService := service.NewPaymentService(reservationRepo, tripRepo, lockStore, psp, notificationService)
	ticketService := service.NewTicketService(reservationRepo, tripRepo, agencyRepo)
	sessionService := service.NewSessionService(sessionStore)
	favoriteService := service.NewFavoriteService(favoriteStore, tripRepo)

	// Initialize handlers.
	agencyHandler := handler.NewAgencyHandler(agencyRepo)
	tripHandler := handler.NewTripHandler(tripService)
	reservationHandler := handler.NewReservationHandler(reservationService, paymentService, ticketService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	artisanHandler := handler.NewArtisanHandler(artisanRepo)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AgencyHandler:      agencyHandler,
		TripHandler:        tripHandler,
		ReservationHandler: reservationHandler,
		SessionHandler:     sessionHandler,
		FavoriteHandler:    favoriteHandler,
		ArtisanHandler:     artisanHandler,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
