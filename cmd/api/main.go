package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dj1alilou/windyluxury/internal/config"
	"github.com/dj1alilou/windyluxury/internal/filestore"
	"github.com/dj1alilou/windyluxury/internal/handler"
	"github.com/dj1alilou/windyluxury/internal/imagestore"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/service"
	"github.com/dj1alilou/windyluxury/internal/ws"
	"github.com/dj1alilou/windyluxury/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Storage
	productRepo, orderRepo, categoryRepo, settingsRepo := buildRepos(cfg)

	if err := categoryRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed categories: %v", err)
	}

	images, err := imagestore.NewLocal(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	settingsService := service.NewSettingsService(settingsRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, settingsService, wsHub)
	statsService := service.NewStatsService(productRepo, orderRepo)

	productHandler := handler.NewProductHandler(catalogService, images)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	adminHandler := handler.NewAdminHandler(statsService, orderService)
	uploadHandler := handler.NewUploadHandler(images)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Windy Luxury API v1.0",
		BodyLimit: 25 * 1024 * 1024, // product forms carry up to 4 images
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "storage": cfg.StorageDriver})
	})

	// Catalog
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)
	api.Get("/categories", categoryHandler.GetCategories)

	// Orders
	api.Get("/orders", orderHandler.GetOrders)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders/export/zrexpress", orderHandler.ExportZRExpress)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Put("/orders/:id/status", orderHandler.UpdateStatus)

	// Settings & delivery pricing
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", settingsHandler.UpdateSettings)
	api.Post("/settings/wilayas", settingsHandler.UpsertWilaya)
	api.Delete("/settings/wilayas/:index", settingsHandler.RemoveWilaya)
	api.Post("/settings/wilayas/seed", settingsHandler.SeedWilayas)

	// Admin
	api.Get("/admin/stats", adminHandler.GetStats)
	api.Delete("/admin/cleanup", adminHandler.Cleanup)
	api.Post("/upload", uploadHandler.Upload)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Join(c)
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// buildRepos wires the configured storage backend behind the repository
// interfaces. Both backends serve the exact same API surface.
func buildRepos(cfg *config.Config) (repository.ProductRepository, repository.OrderRepository, repository.CategoryRepository, repository.SettingsRepository) {
	if cfg.StorageDriver == config.DriverFile {
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatal(err)
		}
		return store.Products(), store.Orders(), store.Categories(), store.Settings()
	}

	db := database.ConnectDB(cfg.DatabaseURL)
	db.AutoMigrate(&model.Product{}, &model.Category{}, &model.Order{}, &model.Settings{})

	return repository.NewProductRepo(db), repository.NewOrderRepo(db), repository.NewCategoryRepo(db), repository.NewSettingsRepo(db)
}
