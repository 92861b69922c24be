package FiberConfig

import (
	"fmt"
	"time"

	"Puantaj/Config"
	"Puantaj/Controllers"
	"Puantaj/Models"
	"Puantaj/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg Config.AppConfig) {
	// Initialize handlers
	entryController := Controllers.NewEntryController(db)
	wholesalerController := Controllers.NewWholesalerController(db)
	transactionController := Controllers.NewTransactionController(db)
	dashboardController := Controllers.NewDashboardController(db)
	reportController := Controllers.NewReportController(db)
	tipController := Controllers.NewTipController(db)
	settingsController := Controllers.NewSettingsController(db)
	snapshotController := Controllers.NewSnapshotController(db)
	avatarController := Controllers.NewAvatarController(db, cfg.AvatarDir)

	// API group
	api := app.Group("/api")

	// Auth and user management
	api.Post("/Login", Controllers.Login)
	api.Get("/validate-token", Controllers.ValidateToken)
	api.Use("/User", Controllers.User)
	api.Use("/Logout", Controllers.Logout)
	api.Post("/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	api.Patch("/UpdateUser", middleware.Verify(4), Controllers.UpdateUser)
	api.Get("/FetchUsers", middleware.Verify(3), Controllers.FetchUsers)
	api.Delete("/DeleteUser", middleware.Verify(4), Controllers.DeleteUser)
	api.Post("/users/:id/avatar", middleware.Verify(3), avatarController.Upload)

	// Timesheet entry routes
	api.Get("/entries/mine", middleware.Verify(1), entryController.GetMyEntries)
	entries := api.Group("/entries", middleware.Verify(3))
	entries.Get("/", entryController.GetEntries)
	entries.Post("/", entryController.CreateEntry)
	entries.Post("/quick", entryController.QuickEntry)
	entries.Put("/:id", entryController.UpdateEntry)
	entries.Delete("/tips/:date", entryController.DeleteTipsByDate)
	entries.Delete("/:id", entryController.DeleteEntry)

	// Wholesaler routes
	wholesalers := api.Group("/wholesalers", middleware.Verify(3))
	wholesalers.Get("/", wholesalerController.GetWholesalers)
	wholesalers.Post("/", wholesalerController.CreateWholesaler)
	wholesalers.Get("/:id", wholesalerController.GetWholesaler)
	wholesalers.Put("/:id", wholesalerController.UpdateWholesaler)
	wholesalers.Delete("/:id", wholesalerController.DeleteWholesaler)
	wholesalers.Get("/:id/balance", wholesalerController.GetWholesalerBalance)

	// Transaction routes under wholesalers
	wholesalers.Get("/:wholesaler_id/transactions", transactionController.GetWholesalerTransactions)
	wholesalers.Post("/:wholesaler_id/transactions", transactionController.CreateTransaction)

	// Direct transaction routes
	transactions := api.Group("/transactions", middleware.Verify(3))
	transactions.Get("/:id", transactionController.GetTransaction)
	transactions.Put("/:id", transactionController.UpdateTransaction)
	transactions.Delete("/:id", transactionController.DeleteTransaction)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.Verify(3))
	dashboard.Get("/summary", dashboardController.Summary)
	dashboard.Get("/aging", dashboardController.Aging)
	dashboard.Get("/upcoming-vades", dashboardController.UpcomingVades)
	dashboard.Get("/vade-calendar", dashboardController.VadeCalendar)

	// Report routes
	reports := api.Group("/reports", middleware.Verify(3))
	reports.Get("/staff-balances", reportController.StaffBalances)
	reports.Get("/monthly", reportController.Monthly)
	reports.Get("/daily", reportController.Daily)
	reports.Get("/export/monthly", reportController.ExportMonthly)

	// Tip distribution preview
	api.Get("/tips/distribution", middleware.Verify(3), tipController.Distribution)

	// Settings routes
	api.Get("/settings", middleware.Verify(3), settingsController.GetSettings)
	api.Put("/settings", middleware.Verify(3), settingsController.UpdateSettings)

	// Snapshot routes
	api.Get("/snapshot/export", middleware.Verify(4), snapshotController.Export)
	api.Post("/snapshot/import", middleware.Verify(4), snapshotController.Import)

	// Logs API routes
	api.Get("/logs", middleware.Verify(4), Controllers.GetLogs)
	api.Get("/logs/stats", middleware.Verify(4), Controllers.GetLogStats)
}

func FiberConfig(cfg Config.AppConfig) {
	fmt.Println("Server Up...")
	middleware.SecretKey = cfg.JWTSecret
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*", // Allow all origins
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, Models.DB, cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Puantaj",
		})
	})

	// Serve Static Images
	app.Static("/Avatars", "./"+cfg.AvatarDir, fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	app.Listen(":" + cfg.Port)
}
