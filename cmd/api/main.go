package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"cropsight/internal/adapter/api"
	"cropsight/internal/adapter/api/handler"
	apimiddleware "cropsight/internal/adapter/api/middleware"
	"cropsight/internal/adapter/api/router"
	"cropsight/internal/adapter/repository"
	"cropsight/internal/infrastructure/mail"
	"cropsight/internal/infrastructure/storage"
	"cropsight/internal/infrastructure/token"
	"cropsight/internal/usecase"
	"cropsight/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	materialRepo := repository.NewFirestoreMaterialRepository(firestoreClient)
	supplierRepo := repository.NewFirestoreSupplierRepository(firestoreClient)
	vendorRepo := repository.NewFirestoreVendorRepository(firestoreClient)
	stockRepo := repository.NewFirestoreStockRepository(firestoreClient)

	tokenManager := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SenderEmail)

	authUseCase := usecase.NewAuthUseCase(userRepo, supplierRepo, vendorRepo, tokenManager, mailer)
	userUseCase := usecase.NewUserUseCase(userRepo)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo)
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo, materialRepo, materialUseCase)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, materialRepo)
	pricingUseCase := usecase.NewPricingUseCase(supplierRepo)
	stockUseCase := usecase.NewStockUseCase(stockRepo, supplierRepo, materialRepo, storageClient)

	handler.Setup(
		authUseCase,
		userUseCase,
		materialUseCase,
		supplierUseCase,
		vendorUseCase,
		pricingUseCase,
		stockUseCase,
		storageClient,
		tokenManager.Expiry(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
