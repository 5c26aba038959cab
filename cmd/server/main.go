package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/snaptext/snaptext-backend/internal/config"
	"github.com/snaptext/snaptext-backend/internal/database"
	"github.com/snaptext/snaptext-backend/internal/handlers"
	"github.com/snaptext/snaptext-backend/internal/middleware"
	"github.com/snaptext/snaptext-backend/internal/ocr"
	"github.com/snaptext/snaptext-backend/internal/routes"
	"github.com/snaptext/snaptext-backend/internal/services"
	"github.com/snaptext/snaptext-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: JWT_SECRET not set. Using the default development key.")
		log.Println("   To generate a key, run: openssl rand -base64 32")
	}

	// Connect to PostgreSQL (account store)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (result cache). Optional: a miss-only cache is fine.
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Recognition results will not be cached")
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB (recognition history). Optional as well.
	log.Printf("Connecting to MongoDB...")
	if err := database.ConnectMongo(cfg.MongoURI); err != nil {
		log.Printf("Warning: Failed to connect to MongoDB: %v", err)
		log.Println("Recognition history will not be available")
	} else {
		if err := services.EnsureRecognitionIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB recognition indexes: %v", err)
		} else {
			log.Println("✅ MongoDB recognition indexes ensured")
		}
	}
	defer database.DisconnectMongo()

	// Recognition engines: constructed once and shared across requests.
	engines := ocr.NewRegistry(
		ocr.NewEasyOCREngine(cfg.EasyOCRURL),
		ocr.NewTesseractEngine(),
	)
	log.Printf("✅ OCR engines registered (easyocr sidecar: %s)", cfg.EasyOCRURL)

	// Wire services into handlers
	accounts := services.NewAccountService(
		store.NewAccountStore(database.PostgresDB),
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
	)
	handlers.InitAccountService(accounts)
	handlers.InitRecognitionService(services.NewRecognitionService(engines))

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		log.Println("✅ Production security headers enabled")
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/signup")
	log.Println("  POST /api/auth/login")
	log.Println("  GET  /api/auth/verify-token")
	log.Println("  POST /api/ocr")
	log.Println("  GET  /api/ocr/history")

	log.Printf("🚀 Snaptext backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
