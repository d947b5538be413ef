package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liftinglog/lifting-log/internal/api"
	"liftinglog/lifting-log/internal/config"
	"liftinglog/lifting-log/internal/repository/postgres"
	"liftinglog/lifting-log/internal/service"
	"liftinglog/lifting-log/internal/stats"
	"liftinglog/lifting-log/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("starting lifting log server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	// --- Database ---
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := postgres.Connect(ctx, cfg.Database.URI)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("could not connect to postgres")
	}
	defer pool.Close()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), time.Minute)
	defer migrateCancel()
	if err := postgres.Migrate(migrateCtx, pool); err != nil {
		log.WithError(err).Fatal("could not run migrations")
	}
	if err := postgres.SeedDefaults(migrateCtx, pool); err != nil {
		log.WithError(err).Fatal("could not seed default catalog")
	}
	log.Info("database ready")

	// --- File Storage ---
	// Media handling is optional; without a bucket the media endpoints 404.
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.WithError(err).Fatal("could not initialize s3 storage")
		}
	} else {
		log.Warn("no s3 bucket configured, media endpoints disabled")
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)

	// --- Services ---
	analyzer := stats.NewAnalyzer(exerciseRepo)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo, fileStorage)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, analyzer)
	templateService := service.NewTemplateService(templateRepo, exerciseRepo)

	// --- HTTP ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, authService, exerciseService, workoutService, templateService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen and serve error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
