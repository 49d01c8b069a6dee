package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/EasonYD88/SURF-application-website/config"
	controller "github.com/EasonYD88/SURF-application-website/controllers"
	"github.com/EasonYD88/SURF-application-website/middleware"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

func SetupRoutes(app *fiber.App, st *store.Store, hub *controller.DocumentHub, mailer *utils.Mailer) {
	trackerController := controller.NewTrackerController(st, hub, log.New(os.Stdout, "TRACKER: ", log.LstdFlags))
	gatewayController := controller.NewGatewayController(
		config.AppConfig.StorageRoot,
		config.AppConfig.GatewayConfigFile,
		log.New(os.Stdout, "GATEWAY: ", log.LstdFlags),
	)
	mailController := controller.NewMailController(st, mailer, hub, log.New(os.Stdout, "MAIL: ", log.LstdFlags))

	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Document routes
	api.Get("/document", trackerController.GetDocument)
	api.Post("/import", trackerController.ImportDocument)
	api.Get("/export/json", trackerController.ExportJSON)
	api.Get("/export/csv", trackerController.ExportCSV)

	// Project routes
	project := api.Group("/projects")
	project.Post("/", trackerController.CreateProject)
	project.Put("/:id", trackerController.UpdateProject)
	project.Delete("/:id", trackerController.DeleteProject)
	project.Post("/:id/decision", trackerController.EnsureDecision)

	// Outreach routes
	outreach := api.Group("/outreach")
	outreach.Post("/", trackerController.CreateOutreach)
	outreach.Put("/:id", trackerController.UpdateOutreach)
	outreach.Delete("/:id", trackerController.DeleteOutreach)
	outreach.Post("/:id/link", trackerController.LinkOutreach)
	outreach.Post("/:id/unlink", trackerController.UnlinkOutreach)

	// Material routes
	material := api.Group("/materials")
	material.Post("/", trackerController.CreateMaterial)
	material.Put("/:id", trackerController.UpdateMaterial)
	material.Delete("/:id", trackerController.DeleteMaterial)

	// Decision routes
	api.Put("/decisions/:id", trackerController.UpdateDecision)

	// File gateway routes
	api.Get("/config/storage", gatewayController.GetStorageConfig)
	api.Put("/config/storage", gatewayController.UpdateStorageConfig)

	files := api.Group("/files")
	files.Post("/folders", gatewayController.CreateFolder)
	files.Put("/folders", gatewayController.RenameFolder)
	files.Delete("/folders", gatewayController.DeleteFolder)
	files.Post("/upload", gatewayController.UploadFile)
	files.Post("/move", gatewayController.MoveFile)
	files.Delete("/", gatewayController.DeleteFile)
	files.Get("/serve/*", gatewayController.ServeFile)

	// Mail gateway routes; sending is rate limited
	mailRoutes := api.Group("/mail")
	mailRoutes.Post("/send", middleware.MailRateLimiter(), mailController.SendMail)
	mailRoutes.Get("/google", mailController.GoogleOAuth)
	mailRoutes.Get("/google/callback", mailController.GoogleOAuthCallback)
	mailRoutes.Post("/outreach/:id/check", mailController.CheckThread)
	mailRoutes.Get("/outreach/overdue", mailController.CheckOverdue)

	// WebSocket route for document-updated pushes
	app.Get("/api/v1/ws", websocket.New(hub.Handle))

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}
