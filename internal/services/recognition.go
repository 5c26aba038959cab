package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/snaptext/snaptext-backend/internal/models"
	"github.com/snaptext/snaptext-backend/internal/ocr"
)

// allowedExtensions is the only format gate: the upload's declared extension
// decides whether it is accepted, without content sniffing.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// RecognitionService composes the OCR pipeline: format gate, engine
// dispatch, preprocessing, recognition and normalization, with a result
// cache in front and a history record behind.
type RecognitionService struct {
	engines *ocr.Registry
	cache   *ResultCache
	history *HistoryService
}

func NewRecognitionService(engines *ocr.Registry) *RecognitionService {
	return &RecognitionService{engines: engines, cache: Cache, history: History}
}

// Recognize runs OCR over an uploaded image. accountID may be empty for
// anonymous callers; it only affects history attribution. The engine is
// resolved before any decoding, so an unsupported selector never reaches a
// backend.
func (s *RecognitionService) Recognize(ctx context.Context, fileName string, data []byte, engineName, accountID string) (models.RecognitionResult, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return models.RecognitionResult{}, ErrUnsupportedFormat
	}

	engine, err := s.engines.Get(engineName)
	if err != nil {
		return models.RecognitionResult{}, err
	}

	key := ResultKey(data, engine.Name())
	if text, ok := s.cache.GetText(ctx, key); ok {
		return models.RecognitionResult{DetectedText: text, Language: ocr.LanguageEnglish}, nil
	}

	start := time.Now()

	raster, err := ocr.Preprocess(data)
	if err != nil {
		return models.RecognitionResult{}, fmt.Errorf("OCR processing failed: %w", err)
	}

	raw, err := engine.RecognizeText(ctx, raster)
	if err != nil {
		return models.RecognitionResult{}, fmt.Errorf("OCR processing failed: %w", err)
	}

	text, language := ocr.Normalize(raw)

	s.cache.SetText(ctx, key, text)
	s.history.Record(ctx, models.RecognitionRecord{
		AccountID:    accountID,
		FileName:     fileName,
		Engine:       engine.Name(),
		DetectedText: text,
		Language:     language,
		DurationMS:   time.Since(start).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	})

	return models.RecognitionResult{DetectedText: text, Language: language}, nil
}
