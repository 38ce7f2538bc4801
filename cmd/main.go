package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"homekitchen/internal/caching"
	"homekitchen/internal/config"
	"homekitchen/internal/handlers"
	"homekitchen/internal/jobs/background"
	"homekitchen/internal/middleware"
	"homekitchen/internal/repositories"
	"homekitchen/internal/seed"
	"homekitchen/internal/services"
	"homekitchen/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Admin surface is sealed behind a generated secret when none is
	// configured.
	adminSecret := cfg.AdminJWTSecret
	if adminSecret == "" {
		adminSecret = random.String(32)
		log.Printf("WARNING: ADMIN_JWT_SECRET not set, using generated secret: %s", adminSecret)
	}

	// Cache
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Resume storage
	var resumeStorage services.ResumeStorage
	if cfg.ResumeStorage == "minio" {
		resumeStorage, err = services.NewMinioResumeStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
	} else {
		resumeStorage, err = services.NewLocalResumeStorage(cfg.UploadDir)
	}
	if err != nil {
		log.Fatalf("Failed to initialize resume storage: %v", err)
	}

	// Email
	emailSvc := services.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.AdminEmail)

	// Repositories
	menuRepo := repositories.NewMenuRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	careerRepo := repositories.NewCareerRepo(pool)
	contactRepo := repositories.NewContactRepo(pool)
	newsletterRepo := repositories.NewNewsletterRepo(pool)

	// Services
	menuSvc := services.NewMenuService(menuRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, emailSvc)
	careersSvc := services.NewCareersService(careerRepo, resumeStorage, emailSvc, cfg.MaxFileSize)
	contactSvc := services.NewContactService(contactRepo, emailSvc)
	newsletterSvc := services.NewNewsletterService(newsletterRepo)

	// Sample data
	if err := seed.Menu(context.Background(), menuRepo); err != nil {
		log.Printf("Error initializing menu data: %v", err)
	}

	// Handlers
	menuHandlers := handlers.NewMenuHandlers(menuSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	careersHandlers := handlers.NewCareersHandlers(careersSvc)
	contactHandlers := handlers.NewContactHandlers(contactSvc)
	newsletterHandlers := handlers.NewNewsletterHandlers(newsletterSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Background jobs
	scheduler, err := background.NewJobScheduler(menuSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5000"},
		AllowCredentials: true,
	}))
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/", healthHandlers.Root)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")
	api.GET("/health", healthHandlers.HealthCheck)

	// Menu (read-only). The fixed categories route registers before the
	// category parameter route.
	api.GET("/menu", menuHandlers.GetMenu)
	api.GET("/menu/categories", menuHandlers.GetCategories)
	api.GET("/menu/:category", menuHandlers.GetMenuByCategory)

	// Orders
	api.POST("/orders", orderHandlers.PlaceOrder)
	api.GET("/orders/:id", orderHandlers.GetOrder)

	// Careers
	api.POST("/careers", careersHandlers.SubmitApplication)

	// Contact
	api.POST("/contact", contactHandlers.SubmitMessage)

	// Newsletter
	api.POST("/newsletter", newsletterHandlers.Subscribe)
	api.DELETE("/newsletter/:email", newsletterHandlers.Unsubscribe)

	// Admin surface
	admin := api.Group("", middleware.AdminMiddleware(adminSecret))
	admin.PUT("/orders/:id/status", orderHandlers.UpdateOrderStatus)
	admin.GET("/careers/applications", careersHandlers.GetApplications)
	admin.PUT("/careers/applications/:id/status", careersHandlers.UpdateApplicationStatus)
	admin.GET("/contact/messages", contactHandlers.GetMessages)
	admin.GET("/newsletter/subscribers", newsletterHandlers.GetSubscribers)

	log.Printf("Home' Kitchen server starting on %s:%d", cfg.Host, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)))
}
