package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/config"
	controller "github.com/EasonYD88/SURF-application-website/controllers"
	"github.com/EasonYD88/SURF-application-website/middleware"
	"github.com/EasonYD88/SURF-application-website/routes"
	"github.com/EasonYD88/SURF-application-website/storage"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
	"github.com/EasonYD88/SURF-application-website/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "TRACKER: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the document storage backend
	var docStorage storage.Storage
	if config.AppConfig.Redis.Enabled {
		docStorage = storage.NewRedisStorage(
			config.AppConfig.Redis.Address,
			config.AppConfig.Redis.Password,
			config.AppConfig.Redis.DB,
			config.AppConfig.DocumentKey,
		)
	} else {
		fileStorage, err := storage.NewFileStorage(config.AppConfig.DataFile)
		if err != nil {
			logger.Fatalf("Failed to open document storage: %v", err)
		}
		docStorage = fileStorage
	}
	defer docStorage.Close()

	st := store.New(docStorage, log.New(os.Stdout, "STORE: ", log.LstdFlags))
	hub := controller.NewDocumentHub(log.New(os.Stdout, "WS: ", log.LstdFlags))
	mailer := utils.NewMailer(config.AppConfig.SMTP)

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Initialize and start the follow-up reminder worker
	followUpWorker := worker.NewFollowUpWorker(
		st, mailer,
		log.New(os.Stdout, "FOLLOWUP: ", log.LstdFlags),
		config.AppConfig.FollowUpInterval,
		config.AppConfig.FollowUpDigestTo,
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go followUpWorker.Start(ctx)

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Setup routes (registers the 404 fallback, so it goes last)
	routes.SetupRoutes(app, st, hub, mailer)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
