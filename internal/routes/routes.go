package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaptext/snaptext-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/login", handlers.Login)
	r.Get("/api/auth/verify-token", handlers.VerifyToken)

	// OCR routes
	r.Post("/api/ocr", handlers.RecognizeImage)
	r.Get("/api/ocr/history", handlers.RecognitionHistory)
}
