package routes

import (
	"context"
	"os"

	"transvert-logistics/controllers/auth"
	"transvert-logistics/controllers/chatbot"
	"transvert-logistics/controllers/dashboard"
	"transvert-logistics/controllers/quote"
	"transvert-logistics/controllers/shipment"
	"transvert-logistics/controllers/support"
	"transvert-logistics/logger"
	"transvert-logistics/middleware"
	chatbotService "transvert-logistics/services/chatbot"
	"transvert-logistics/services/lifecycle"
	"transvert-logistics/services/notification"
	"transvert-logistics/services/quotation"
	supportService "transvert-logistics/services/support"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	dispatcher := notification.NewDispatcherFromEnv()
	strict := os.Getenv("STRICT_TRANSITIONS") == "true"
	lifecycleService := lifecycle.NewService(db, dispatcher, strict)
	quotationService := quotation.NewService(db)
	ticketService := supportService.NewService(db)
	chatService := chatbotService.NewServiceFromEnv(context.Background())
	if !chatService.Available() {
		logger.Warning("GEMINI_API_KEY not set, chatbot endpoint will return errors")
	}

	authController := auth.NewAuthController(db, asyncLogger)
	shipmentController := shipment.NewShipmentController(db, lifecycleService, asyncLogger)
	quoteController := quote.NewQuoteController(db, quotationService)
	supportController := support.NewSupportController(db, ticketService, asyncLogger)
	chatbotController := chatbot.NewChatbotController(chatService)
	dashboardController := dashboard.NewDashboardController(db, lifecycleService, ticketService, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "transvert-logistics", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)
	api.Post("/register", authController.Register)

	api.Post("/crear-envio/", shipmentController.StoreAPI)
	api.Post("/cotizar/", quoteController.Quote)
	api.Get("/cotizar/", quoteController.Zones)
	api.Get("/seguimiento/", shipmentController.Track)
	api.Post("/chatbot/", chatbotController.Chat)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authenticated := api.Group("/auth").Use(middleware.Protected())
	authenticated.Get("/profile", authController.Profile)
	authenticated.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Shipment Routes
	===============================================================================*/
	envios := api.Group("/envios").Use(middleware.Protected())
	envios.Post("/", shipmentController.Store)
	envios.Get("/", shipmentController.Index)
	envios.Get("/:id/guia", shipmentController.DownloadLabel)
	envios.Post("/estado", middleware.RequireStaff(), shipmentController.UpdateStatus)

	/*=============================================================================
	| Support Routes
	===============================================================================*/
	soporte := api.Group("/soporte").Use(middleware.Protected())
	soporte.Post("/", supportController.Store)
	soporte.Get("/", supportController.Index)
	soporte.Get("/tickets", middleware.RequireStaff(), supportController.StaffIndex)
	soporte.Post("/tickets/:id/responder", middleware.RequireStaff(), supportController.Respond)

	/*=============================================================================
	| Panel Routes
	===============================================================================*/
	api.Get("/staff/panel", middleware.Protected(), middleware.RequireStaff(), dashboardController.StaffPanel)
	api.Get("/superadmin/panel", middleware.Protected(), middleware.RequireSuperuser(), dashboardController.SuperadminPanel)
}
