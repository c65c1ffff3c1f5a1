package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-gudang-api/internal/handler"
	"go-gudang-api/internal/middleware"
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/service"
	"go-gudang-api/internal/upload"
	"go-gudang-api/internal/ws"
	"go-gudang-api/pkg/config"
	"go-gudang-api/pkg/database"
	"go-gudang-api/pkg/jwt"
	"go-gudang-api/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLog := logger.New("go-gudang-api", cfg.App.LogLevel)

	// 2. Setup Database
	db, err := database.Connect(cfg.DB)
	if err != nil {
		appLog.Fatal().Err(err).Msg("gagal koneksi database")
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(&model.Admin{}, &model.Produk{}, &model.Variasi{}, &model.Pemasok{}, &model.AlurBarang{}); err != nil {
		appLog.Fatal().Err(err).Msg("gagal migrasi database")
	}

	// 3. Seed default admin
	seedDefaultAdmin(db, appLog)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(appLog)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	uploads := upload.NewManager(cfg.Upload, appLog)

	adminRepo := repository.NewAdminRepo(db)
	produkRepo := repository.NewProdukRepo(db)
	variasiRepo := repository.NewVariasiRepo(db)
	pemasokRepo := repository.NewPemasokRepo(db)
	alurRepo := repository.NewAlurBarangRepo(db)

	adminService := service.NewAdminService(adminRepo, tokens)
	produkService := service.NewProdukService(produkRepo, uploads)
	variasiService := service.NewVariasiService(variasiRepo, produkRepo, uploads)
	pemasokService := service.NewPemasokService(pemasokRepo)
	alurService := service.NewAlurBarangService(alurRepo, variasiRepo, db, wsHub)

	adminHandler := handler.NewAdminHandler(adminService)
	produkHandler := handler.NewProdukHandler(produkService, uploads)
	variasiHandler := handler.NewVariasiHandler(variasiService, uploads)
	pemasokHandler := handler.NewPemasokHandler(pemasokService)
	alurHandler := handler.NewAlurBarangHandler(alurService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Gudang API v1.0",
		BodyLimit: int(cfg.Upload.MaxBytes) + 1024*1024, // ruang untuk field multipart lain
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.App.CORSOrigins}))

	// Static serving untuk file upload
	app.Static("/uploads", cfg.Upload.Dir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API telah berjalan"})
	})

	// 7. Routes
	auth := middleware.RequireAuth(tokens)

	// ============ ADMIN ============
	admin := app.Group("/admin")
	admin.Post("/", adminHandler.Register)
	admin.Post("/login", adminHandler.Login)
	admin.Get("/", auth, adminHandler.List)
	admin.Get("/:id", auth, adminHandler.Get)
	admin.Put("/:id", auth, adminHandler.Update)
	admin.Delete("/:id", auth, adminHandler.Delete)

	// ============ PRODUK ============
	produk := app.Group("/produk")
	produk.Get("/", produkHandler.List)
	produk.Get("/:id", produkHandler.Get)
	produk.Post("/", auth, produkHandler.Create)
	produk.Put("/:id", auth, produkHandler.Update)
	produk.Delete("/:id/foto", auth, produkHandler.DeleteFoto)
	produk.Delete("/:id", auth, produkHandler.Delete)

	// ============ VARIASI ============
	variasi := app.Group("/variasi")
	variasi.Get("/", variasiHandler.List)
	variasi.Get("/:id", variasiHandler.Get)
	variasi.Post("/", auth, variasiHandler.Create)
	variasi.Put("/:id", auth, variasiHandler.Update)
	variasi.Delete("/:id/foto", auth, variasiHandler.DeleteFoto)
	variasi.Delete("/:id", auth, variasiHandler.Delete)

	// ============ PEMASOK ============
	pemasok := app.Group("/pemasok")
	pemasok.Get("/", pemasokHandler.List)
	pemasok.Get("/:id", pemasokHandler.Get)
	pemasok.Post("/", auth, pemasokHandler.Create)
	pemasok.Put("/:id", auth, pemasokHandler.Update)
	pemasok.Delete("/:id", auth, pemasokHandler.Delete)

	// ============ ALUR BARANG ============
	alur := app.Group("/alur-barang", auth)
	alur.Get("/", alurHandler.List)
	alur.Get("/:id", alurHandler.Get)
	alur.Post("/", alurHandler.Create)
	alur.Put("/:id", alurHandler.Update)
	alur.Delete("/:id", alurHandler.Delete)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			appLog.Panic().Err(err).Msg("server berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		appLog.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	appLog.Info().Msg("Server exited")
}

// seedDefaultAdmin creates a bootstrap admin account when the table is empty.
func seedDefaultAdmin(db *gorm.DB, log zerolog.Logger) {
	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	admin := &model.Admin{Username: "admin"}
	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	if err := admin.SetPassword(password); err != nil {
		log.Warn().Err(err).Msg("gagal hash password admin default")
		return
	}

	if err := db.Create(admin).Error; err != nil {
		log.Warn().Err(err).Msg("gagal membuat admin default")
		return
	}
	log.Info().Str("username", admin.Username).Msg("admin default dibuat")
}
