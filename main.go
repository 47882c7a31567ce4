package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yeremiapane/restaurant-system/config"
	"github.com/yeremiapane/restaurant-system/database"
	"github.com/yeremiapane/restaurant-system/health"
	"github.com/yeremiapane/restaurant-system/kds"
	"github.com/yeremiapane/restaurant-system/messaging"
	"github.com/yeremiapane/restaurant-system/metrics"
	"github.com/yeremiapane/restaurant-system/middlewares"
	"github.com/yeremiapane/restaurant-system/router"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
	"github.com/yeremiapane/restaurant-system/version"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	utils.ConfigureLogger(cfg.LogLevel)
	utils.InfoLogger.Printf("Starting restaurant system (%s)", version.String())

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := prepareDatabase(db, cfg.SeedData); err != nil {
		utils.ErrorLogger.Fatalf("Failed to prepare database: %v", err)
	}

	restaurantMetrics := metrics.NewRestaurantMetrics()
	hub := kds.NewHub()

	publishers := services.MultiPublisher{hub}
	if len(cfg.KafkaBroker) > 0 {
		producer, err := messaging.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to kafka: %v", err)
		}
		defer producer.Close()
		publishers = append(publishers, producer)
		utils.InfoLogger.Printf("Publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	svc := services.NewRestaurantService(db, publishers, restaurantMetrics)

	healthHandler := health.NewHandler(version.Version())
	healthHandler.Register("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	r := router.SetupRouter(router.Dependencies{
		Service:     svc,
		Hub:         hub,
		Metrics:     restaurantMetrics,
		Health:      healthHandler,
		Gatherer:    prometheus.DefaultGatherer,
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Graceful shutdown failed: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	utils.InfoLogger.Println("Server stopped")
}

// prepareDatabase migrates the schema and, when asked, inserts the default data.
func prepareDatabase(db *gorm.DB, seed bool) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	if seed {
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	return nil
}
