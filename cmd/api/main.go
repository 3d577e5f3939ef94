package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"teodity/internal/adapter/api"
	"teodity/internal/adapter/api/handler"
	apimiddleware "teodity/internal/adapter/api/middleware"
	"teodity/internal/adapter/api/router"
	"teodity/internal/adapter/repository"
	"teodity/internal/infrastructure/mail"
	"teodity/internal/infrastructure/storage"
	"teodity/internal/usecase"
	"teodity/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	userRepo, err := repository.NewJSONUserRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open users collection: %v", err)
	}
	productRepo, err := repository.NewJSONProductRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open products collection: %v", err)
	}
	categoryRepo, err := repository.NewJSONCategoryRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open categories collection: %v", err)
	}
	reviewRepo, err := repository.NewJSONReviewRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open reviews collection: %v", err)
	}
	reportRepo, err := repository.NewJSONReportRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open reports collection: %v", err)
	}
	cancellationRepo, err := repository.NewJSONCancellationRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open cancellations collection: %v", err)
	}

	storageClient, err := storage.NewLocalStorageClient(cfg.ImageDir)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	smtpClient := mail.NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	dispatcher := mail.NewDispatcher(smtpClient)
	dispatcher.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userUseCase := usecase.NewUserUseCase(userRepo, productRepo, storageClient)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, categoryRepo, cancellationRepo, storageClient, dispatcher)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo, productRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, userRepo, productRepo, dispatcher)
	suspiciousUseCase := usecase.NewSuspiciousUseCase(cancellationRepo, userRepo)

	handler.Setup(authUseCase, userUseCase, categoryUseCase, productUseCase, reviewUseCase, reportUseCase, suspiciousUseCase, storageClient)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	e.Static("/images", storageClient.Dir())

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
