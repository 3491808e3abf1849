package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/logger"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stores is the persistence layer behind the services.
type stores struct {
	users     repository.UserRepository
	diets     repository.DocumentRepository[domain.DietPlan]
	workouts  repository.DocumentRepository[domain.WorkoutPlan]
	progress  repository.DocumentRepository[domain.Progress]
	reminders repository.DocumentRepository[domain.Reminder]
	close     func()
}

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	appLog := logger.New(cfg.Log)
	defer func() { _ = appLog.Sync() }()
	appLog.Info("starting fitness tracker API",
		zap.String("address", cfg.Server.Address),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("enforce_ownership", cfg.Resources.EnforceOwnership),
	)

	// --- Persistence ---
	st, err := openStores(cfg.Database, appLog)
	if err != nil {
		appLog.Fatal("could not open database", zap.Error(err))
	}
	defer st.close()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, appLog.Named("storage"))
		if err != nil {
			appLog.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		appLog.Info("S3 bucket not configured, video uploads disabled")
	}

	// --- Initialize Services ---
	enforce := cfg.Resources.EnforceOwnership
	svcs := api.Services{
		Auth:          service.NewAuthService(st.users, cfg.JWT.Secret, cfg.JWT.Expiration),
		Creators:      service.NewCreatorService(st.users),
		Diets:         service.NewDietPlanService(st.diets, enforce),
		Workouts:      service.NewWorkoutPlanService(st.workouts, enforce),
		Progress:      service.NewProgressService(st.progress, enforce),
		Reminders:     service.NewReminderService(st.reminders, enforce),
		Storage:       fileStorage,
		PresignExpiry: cfg.S3.PresignExpiry,
	}

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(appLog, cfg.Server.CORSOrigins)
	api.SetupRoutes(router, cfg.JWT.Secret, svcs)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLog.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLog.Error("server forced to shutdown", zap.Error(err))
	}
	appLog.Info("server exiting")
}

func openStores(cfg config.DatabaseConfig, appLog *zap.Logger) (*stores, error) {
	switch cfg.Driver {
	case "memory":
		appLog.Warn("using in-memory store, data is lost on exit")
		return &stores{
			users:     memory.NewUserRepository(),
			diets:     memory.NewDocumentRepository[domain.DietPlan](),
			workouts:  memory.NewDocumentRepository[domain.WorkoutPlan](),
			progress:  memory.NewDocumentRepository[domain.Progress](),
			reminders: memory.NewDocumentRepository[domain.Reminder](),
			close:     func() {},
		}, nil

	case "mongo":
		dbClient, err := mongo.ConnectDB(cfg.URI)
		if err != nil {
			return nil, err
		}
		db := dbClient.Database(cfg.Name)
		appLog.Info("database connection established", zap.String("database", cfg.Name))

		go func() { // Index creation runs in the background
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := mongo.EnsureIndexes(ctx, db); err != nil {
				appLog.Error("index creation failed", zap.Error(err))
				return
			}
			appLog.Info("indexes ensured")
		}()

		return &stores{
			users:     mongo.NewMongoUserRepository(db),
			diets:     mongo.NewMongoDocumentRepository[domain.DietPlan](db, mongo.DietPlanCollectionName),
			workouts:  mongo.NewMongoDocumentRepository[domain.WorkoutPlan](db, mongo.WorkoutPlanCollectionName),
			progress:  mongo.NewMongoDocumentRepository[domain.Progress](db, mongo.ProgressCollectionName),
			reminders: mongo.NewMongoDocumentRepository[domain.Reminder](db, mongo.ReminderCollectionName),
			close: func() {
				if err := mongo.DisconnectDB(dbClient); err != nil {
					appLog.Error("failed to disconnect MongoDB", zap.Error(err))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
