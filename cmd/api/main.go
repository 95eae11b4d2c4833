package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/config"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/handler"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/logger"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository/mongodb"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/service"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	ctx := context.Background()

	// Initialize MongoDB client
	mongoClient, err := mongodb.NewClient(ctx, &cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to create MongoDB client", zap.Error(err))
	}
	defer func(mongoClient *mongodb.Client) {
		if err := mongoClient.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB client", zap.Error(err))
		}
	}(mongoClient)

	if err := mongoClient.InitIndexes(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB indexes", zap.Error(err))
	}

	// Initialize repositories
	analyticsRepo := mongodb.NewAnalyticsRepository(mongoClient, log)
	profileRepo := mongodb.NewProfileRepository(mongoClient, log)
	skillRepo := mongodb.NewSkillRepository(mongoClient, log)
	experienceRepo := mongodb.NewExperienceRepository(mongoClient, log)
	blogRepo := mongodb.NewBlogRepository(mongoClient, log)
	projectRepo := mongodb.NewProjectRepository(mongoClient, log)
	contactRepo := mongodb.NewContactRepository(mongoClient, log)
	userRepo := mongodb.NewUserRepository(mongoClient, log)

	// Initialize storage
	s3Store, err := storage.NewS3Store(ctx, cfg.S3, log)
	if err != nil {
		log.Fatal("Failed to create S3 store", zap.Error(err))
	}
	localStore := storage.NewLocalStore(cfg.Upload.LocalDir, cfg.Upload.PublicPath, log)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, log)
	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Fatal("Failed to ensure admin account", zap.Error(err))
	}

	svc := handler.Services{
		Analytics:  service.NewAnalyticsService(analyticsRepo, projectRepo, blogRepo, contactRepo, log),
		Profile:    service.NewProfileService(profileRepo, log),
		Skill:      service.NewSkillService(skillRepo, log),
		Experience: service.NewExperienceService(experienceRepo, log),
		Blog:       service.NewBlogService(blogRepo, log),
		Project:    service.NewProjectService(projectRepo, log),
		Contact:    service.NewContactService(contactRepo, log),
		Auth:       authService,
		Upload:     service.NewUploadService(s3Store, localStore, cfg.Upload.MaxSizeMB, log),
	}

	// Initialize handler
	h := handler.NewHandler(svc, cfg.Upload.LocalDir, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
