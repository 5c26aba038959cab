package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/snaptext/snaptext-backend/internal/models"
	"github.com/snaptext/snaptext-backend/internal/ocr"
	"github.com/snaptext/snaptext-backend/internal/services"
)

var recognitionService *services.RecognitionService

// InitRecognitionService wires the OCR orchestrator into the handlers.
func InitRecognitionService(s *services.RecognitionService) {
	recognitionService = s
}

// RecognizeImage handles a multipart upload (field "file") with an optional
// "engine" form field and returns the detected text.
func RecognizeImage(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		log.Printf("ERROR: invalid multipart form: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}

	// The default engine applies only when the field is absent entirely;
	// a present-but-unknown selector must fail, not fall back.
	engine := ocr.DefaultEngine
	if values := r.MultipartForm.Value["engine"]; len(values) > 0 {
		engine = values[0]
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("ERROR: failed to read upload: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	// History attribution is best-effort; the endpoint itself is open.
	accountID := ""
	if token := bearerToken(r); token != "" {
		if id, err := accountService.VerifyToken(r.Context(), token); err == nil {
			accountID = id
		}
	}

	result, err := recognitionService.Recognize(r.Context(), header.Filename, data, engine, accountID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			writeError(w, http.StatusBadRequest, "Unsupported file format")
		case errors.Is(err, ocr.ErrUnsupportedEngine):
			writeError(w, http.StatusBadRequest, "Unsupported OCR engine: "+engine)
		default:
			log.Printf("OCR Error: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HistoryResponse wraps the caller's recent recognitions.
type HistoryResponse struct {
	History []models.RecognitionRecord `json:"history"`
}

// RecognitionHistory returns the authenticated caller's recent recognitions.
func RecognitionHistory(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	accountID, err := accountService.VerifyToken(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	records, err := services.History.Recent(r.Context(), accountID, 50)
	if err != nil {
		log.Printf("ERROR: failed to load recognition history: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	if records == nil {
		records = []models.RecognitionRecord{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{History: records})
}
