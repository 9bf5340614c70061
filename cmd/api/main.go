package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arunkarthik0712/travel-planner-backend/internal/config"
	"github.com/arunkarthik0712/travel-planner-backend/internal/controller"
	"github.com/arunkarthik0712/travel-planner-backend/internal/handler"
	"github.com/arunkarthik0712/travel-planner-backend/internal/middleware"
	"github.com/arunkarthik0712/travel-planner-backend/internal/repository"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/database"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/email"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/storage"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
)

func main() {
	// .env is optional; deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	db, err := database.NewDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			zlog.Error("failed to disconnect from database", zap.Error(err))
		}
	}()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		zlog.Fatal("failed to create indexes", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	travelPlanRepo := repository.NewTravelPlanRepository(db)
	discoveryRepo := repository.NewDiscoveryRepository(db)

	// Email service
	var relay email.Relay = email.NewResendRelay(cfg.Email.APIKey)
	if cfg.Email.APIKey == "" {
		zlog.Warn("RESEND_API_KEY not set, emails will only be logged")
		relay = email.NewLogRelay(zlog)
	}
	emailService := email.NewEmailService(relay, cfg.Email.FromAddress, cfg.Email.FromName, zlog)

	// Storage
	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		zlog.Fatal("failed to initialize upload storage", zap.Error(err))
	}

	tokens := jwt.NewManager(cfg.JWTSecret)
	validator := utils.NewValidator()

	// Services
	authService := service.NewAuthService(userRepo, emailService, tokens, cfg.ClientURL, zlog)
	userService := service.NewUserService(userRepo)
	accommodationService := service.NewAccommodationService(accommodationRepo)
	bookingService := service.NewBookingService(bookingRepo, accommodationRepo, userRepo, emailService, zlog)
	destinationService := service.NewDestinationService(destinationRepo)
	travelPlanService := service.NewTravelPlanService(travelPlanRepo, destinationRepo, userRepo, emailService, zlog)
	discoveryService := service.NewDiscoveryService(discoveryRepo, userRepo)
	uploadService := service.NewUploadService(uploader, validator, zlog)

	// Handlers
	handlers := handler.Handlers{
		Auth:          handler.NewAuthHandler(controller.NewAuthController(authService), validator),
		User:          handler.NewUserHandler(controller.NewUserController(userService)),
		Accommodation: handler.NewAccommodationHandler(accommodationService, validator),
		Booking:       handler.NewBookingHandler(bookingService, validator),
		Destination:   handler.NewDestinationHandler(destinationService, validator),
		TravelPlan:    handler.NewTravelPlanHandler(travelPlanService, validator),
		Discovery:     handler.NewDiscoveryHandler(discoveryService, validator),
		Upload:        handler.NewUploadHandler(uploadService),
	}

	// Router
	app := fiber.New(fiber.Config{
		AppName:   "travel-planner",
		BodyLimit: service.MaxUploadFiles*service.MaxUploadFileSize + 1<<20,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	handler.RegisterRoutes(app, handlers, middleware.AuthMiddleware(tokens))

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}

	// Let background emails finish before the process exits.
	emailService.Wait()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newUploader(ctx context.Context, cfg *config.Config) (storage.ImageUploader, error) {
	if cfg.UploadBackend == config.UploadBackendImages {
		return storage.NewCloudflareImages(
			cfg.CloudflareImages.AccountID,
			cfg.CloudflareImages.Token,
			cfg.CloudflareImages.Hash,
		), nil
	}
	return storage.NewR2Storage(ctx, cfg.R2)
}
